package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/nemesix/nemesis-cli/internal/domain"
	"go.uber.org/zap"
)

// generationSkipProbability gates non-forced remote generation: a draw at
// or below it falls straight to the local pool.
const generationSkipProbability = 0.2

// SelectTaunt picks the next taunt. With a configured generator it
// attempts a remote generation (always when forced, otherwise under the
// probability gate) and falls back to the local pool on any failure. The
// result is never empty and the call never fails outward.
func (s *Service) SelectTaunt(ctx context.Context, force bool) string {
	s.mu.Lock()
	session := s.session
	s.mu.Unlock()

	if s.generator != nil && (force || s.rand.Float64() > generationSkipProbability) {
		prompt := buildTauntPrompt(session)
		text, err := s.generator.Generate(ctx, prompt)
		if err != nil {
			s.logger.Warn("taunt generation failed, using local pool", zap.Error(err))
		} else if trimmed := strings.TrimSpace(text); trimmed != "" {
			return trimmed
		}
	}

	pool := domain.FallbackTaunts(session.NemesisType)
	return pool[s.rand.Intn(len(pool))]
}

func buildTauntPrompt(session domain.Session) string {
	name := domain.DisplayName(session.NemesisType)
	return fmt.Sprintf(
		`You are %q, a cold and competitive rival. The user is trying to %q but struggles with %q. Write a short, cutting but motivational taunt. Max 2 sentences.`,
		name, session.Goal, session.Insecurity,
	)
}
