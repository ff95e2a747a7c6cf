package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/nemesix/nemesis-cli/internal/adapters/mirror/supabase"
	statusadapter "github.com/nemesix/nemesis-cli/internal/adapters/render/status"
	tomlrepo "github.com/nemesix/nemesis-cli/internal/adapters/repo/toml"
	chainstore "github.com/nemesix/nemesis-cli/internal/adapters/secrets/chain"
	"github.com/nemesix/nemesis-cli/internal/adapters/taunt/hf"
	"github.com/nemesix/nemesis-cli/internal/application"
	"github.com/nemesix/nemesis-cli/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	envSecretPrefix = "NEMESIS_"

	generatorTokenKey = "generator/token"
	mirrorKeyKey      = "mirror/key"

	mirrorURLKey         = "mirror.url"
	mirrorTableKey       = "mirror.table"
	generatorEndpointKey = "generator.endpoint"
	scorePeriodKey       = "engine.score_period"
	tauntPeriodKey       = "engine.taunt_period"
)

type app struct {
	service        *application.Service
	engine         *application.Engine
	secretStore    ports.SecretStore
	statusRenderer func(application.Status, statusadapter.RenderOptions) (string, error)
	logger         *zap.Logger
	logLevel       zap.AtomicLevel
}

func wireApp() (*app, error) {
	// A .env next to the binary is a convenience, not a requirement.
	_ = godotenv.Load()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	configDir := filepath.Join(homeDir, ".nemesis")

	logger, logLevel := newLogger(configDir)

	cfg := newConfig()
	repo, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire state repository: %w", err)
	}

	secretStore, err := chainstore.NewEnvFirstWithFileFallback(envSecretPrefix, filepath.Join(configDir, "credentials"))
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	mirror := wireMirror(cfg, secretStore)
	generator := wireGenerator(cfg, secretStore)

	service := application.NewService(repo, repo, mirror, generator, ports.SystemClock{}, ports.SystemRand{}, logger)
	engine := application.NewEngine(service, application.EngineConfig{
		ScorePeriod: cfg.GetDuration(scorePeriodKey),
		TauntPeriod: cfg.GetDuration(tauntPeriodKey),
		Logger:      logger,
	})

	return &app{
		service:        service,
		engine:         engine,
		secretStore:    secretStore,
		statusRenderer: statusadapter.Render,
		logger:         logger,
		logLevel:       logLevel,
	}, nil
}

// newConfig binds the non-secret settings. The repository reads
// ~/.nemesis/config.toml into the same instance; environment variables win
// over file values.
func newConfig() *viper.Viper {
	cfg := viper.New()
	_ = cfg.BindEnv(mirrorURLKey, "NEMESIS_MIRROR_URL")
	_ = cfg.BindEnv(mirrorTableKey, "NEMESIS_MIRROR_TABLE")
	_ = cfg.BindEnv(generatorEndpointKey, "NEMESIS_GENERATOR_ENDPOINT")
	cfg.SetDefault(mirrorTableKey, "nemesis")
	return cfg
}

// wireMirror builds the remote row-store client when both URL and key are
// configured. A nil mirror means fully-offline operation.
func wireMirror(cfg *viper.Viper, secrets ports.SecretStore) ports.Mirror {
	baseURL := cfg.GetString(mirrorURLKey)
	if baseURL == "" {
		return nil
	}

	key, err := secrets.Get(context.Background(), mirrorKeyKey)
	if err != nil || key == "" {
		return nil
	}

	return &supabase.Adapter{
		BaseURL:    baseURL,
		AnonKey:    key,
		Table:      cfg.GetString(mirrorTableKey),
		HTTPClient: http.DefaultClient,
		Clock:      ports.SystemClock{},
	}
}

// wireGenerator builds the remote taunt generator when endpoint and token
// are both configured. Without either, every taunt comes from the local
// pool; an endpoint with no token would only produce doomed requests.
func wireGenerator(cfg *viper.Viper, secrets ports.SecretStore) ports.TauntGenerator {
	endpoint := cfg.GetString(generatorEndpointKey)
	if endpoint == "" {
		return nil
	}

	token, err := secrets.Get(context.Background(), generatorTokenKey)
	if err != nil || token == "" {
		return nil
	}

	return &hf.Adapter{
		Endpoint:   endpoint,
		Token:      token,
		HTTPClient: http.DefaultClient,
	}
}

// newLogger writes structured logs to a file under the config dir so they
// never corrupt the TUI. Logging failure degrades to a no-op logger. The
// returned level is raised to debug by the --verbose flag.
func newLogger(configDir string) (*zap.Logger, zap.AtomicLevel) {
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return zap.NewNop(), zap.NewAtomicLevel()
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{filepath.Join(configDir, "nemesis.log")}
	cfg.ErrorOutputPaths = cfg.OutputPaths

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop(), zap.NewAtomicLevel()
	}
	return logger, cfg.Level
}
