package application

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/nemesix/nemesis-cli/internal/domain"
	"github.com/nemesix/nemesis-cli/internal/ports"
	"go.uber.org/zap"
)

// WorkAcknowledgement is shown immediately after logging work, before any
// taunt arrives.
const WorkAcknowledgement = "Good. But I'm still moving."

// SurrenderLine is the only response to a surrender; surrendering changes
// nothing.
const SurrenderLine = "Giving up confirms they are better than you."

// Service owns the in-memory session and identity. All mutations take the
// service mutex; remote pushes are fire-and-forget and guarded by a
// generation counter so work finishing after a reset cannot resurrect
// cleared state.
type Service struct {
	repo       ports.SessionRepository
	identities ports.IdentityStore
	mirror     ports.Mirror
	generator  ports.TauntGenerator
	clock      ports.Clock
	rand       ports.Rand
	logger     *zap.Logger

	mu         sync.Mutex
	session    domain.Session
	identity   domain.Identity
	generation uint64

	pushes sync.WaitGroup
}

func NewService(repo ports.SessionRepository, identities ports.IdentityStore, mirror ports.Mirror, generator ports.TauntGenerator, clock ports.Clock, rng ports.Rand, logger *zap.Logger) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if rng == nil {
		rng = ports.SystemRand{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		repo:       repo,
		identities: identities,
		mirror:     mirror,
		generator:  generator,
		clock:      clock,
		rand:       rng,
		logger:     logger,
		session:    domain.NewSession(),
	}
}

// Restore loads the locally persisted session, then merges the remote row
// on top of it (remote wins). Every failure past the identity lookup is
// logged and ignored: the app must work fully offline and with a corrupt
// local file.
func (s *Service) Restore(ctx context.Context) error {
	identity, err := s.identities.Current(ctx)
	if err != nil {
		return fmt.Errorf("resolve client identity: %w", err)
	}

	s.mu.Lock()
	s.identity = identity
	generation := s.generation
	s.mu.Unlock()

	session, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.Warn("load local state failed, keeping defaults", zap.Error(err))
		session = domain.NewSession()
	}

	s.mu.Lock()
	if s.generation == generation {
		s.session = session
	}
	s.mu.Unlock()

	s.pullMirror(ctx, identity, generation)

	return nil
}

// pullMirror merges the remote row onto local state. The generation check
// discards a pull that resolves after a reset.
func (s *Service) pullMirror(ctx context.Context, identity domain.Identity, generation uint64) {
	if s.mirror == nil {
		return
	}

	remote, found, err := s.mirror.Pull(ctx, identity)
	if err != nil {
		s.logger.Warn("mirror pull failed", zap.String("identity", string(identity)), zap.Error(err))
		return
	}
	if !found {
		return
	}

	s.mu.Lock()
	if s.generation != generation {
		s.mu.Unlock()
		s.logger.Debug("discarding stale mirror pull", zap.String("identity", string(identity)))
		return
	}
	s.session = remote
	s.mu.Unlock()

	s.saveLocal(ctx)
}

// Summon validates and activates a new session, giving the nemesis its
// head start. Validation failures leave state untouched.
func (s *Service) Summon(ctx context.Context, goal, insecurity string, personaID domain.PersonaID) (domain.Session, error) {
	goal = strings.TrimSpace(goal)
	insecurity = strings.TrimSpace(insecurity)

	s.mu.Lock()
	updated := s.session
	if err := updated.Summon(goal, insecurity, personaID); err != nil {
		s.mu.Unlock()
		return domain.Session{}, err
	}
	s.session = updated
	s.mu.Unlock()

	s.saveLocal(ctx)
	s.pushMirror(ctx)

	return updated, nil
}

// LogWork credits the user and persists. Returns the new session state.
func (s *Service) LogWork(ctx context.Context) (domain.Session, error) {
	s.mu.Lock()
	if !s.session.Active {
		s.mu.Unlock()
		return domain.Session{}, domain.ErrNoActiveSession
	}
	s.session.LogWork()
	updated := s.session
	s.mu.Unlock()

	s.saveLocal(ctx)
	s.pushMirror(ctx)

	return updated, nil
}

// NemesisTick advances the rival by one point; driven by the engine's
// score timer.
func (s *Service) NemesisTick(ctx context.Context) (domain.Session, error) {
	s.mu.Lock()
	if !s.session.Active {
		s.mu.Unlock()
		return domain.Session{}, domain.ErrNoActiveSession
	}
	s.session.NemesisTick()
	updated := s.session
	s.mu.Unlock()

	s.saveLocal(ctx)
	s.pushMirror(ctx)

	return updated, nil
}

// Reset clears local state and identity, requests deletion of the remote
// row (best-effort) and bumps the generation so in-flight remote work is
// discarded. Confirmation is the caller's concern.
func (s *Service) Reset(ctx context.Context) error {
	s.mu.Lock()
	identity := s.identity
	s.session = domain.NewSession()
	s.identity = ""
	s.generation++
	s.mu.Unlock()

	// A push already past its generation check could land after the
	// delete and resurrect the row. Drain in-flight pushes first; new
	// ones are stopped by the bumped generation.
	s.pushes.Wait()

	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear local state: %w", err)
	}
	if err := s.identities.Discard(ctx); err != nil {
		return fmt.Errorf("discard client identity: %w", err)
	}

	if s.mirror != nil && identity != "" {
		if err := s.mirror.Delete(ctx, identity); err != nil {
			s.logger.Warn("mirror delete failed", zap.String("identity", string(identity)), zap.Error(err))
		}
	}

	return nil
}

// Session returns a snapshot of the current state.
func (s *Service) Session() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Status assembles the render-facing view of the session.
func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Status{
		Session:             s.session,
		Identity:            s.identity,
		NemesisName:         domain.DisplayName(s.session.NemesisType),
		MirrorConfigured:    s.mirror != nil,
		GeneratorConfigured: s.generator != nil,
	}
}

// Flush waits for in-flight mirror pushes; one-shot commands call it
// before exiting.
func (s *Service) Flush() {
	s.pushes.Wait()
}

func (s *Service) saveLocal(ctx context.Context) {
	s.mu.Lock()
	session := s.session
	s.mu.Unlock()

	if err := s.repo.Save(ctx, session); err != nil {
		s.logger.Warn("save local state failed", zap.Error(err))
	}
}

// pushMirror issues a fire-and-forget upsert of the full current state.
// Completion order relative to later ticks is not guaranteed and not
// relied upon.
func (s *Service) pushMirror(ctx context.Context) {
	if s.mirror == nil {
		return
	}

	s.mu.Lock()
	identity := s.identity
	session := s.session
	generation := s.generation
	s.mu.Unlock()

	if identity == "" {
		return
	}

	pushCtx := context.WithoutCancel(ctx)
	s.pushes.Add(1)
	go func() {
		defer s.pushes.Done()

		s.mu.Lock()
		stale := s.generation != generation
		s.mu.Unlock()
		if stale {
			return
		}

		if err := s.mirror.Push(pushCtx, identity, session); err != nil {
			s.logger.Warn("mirror push failed", zap.String("identity", string(identity)), zap.Error(err))
		}
	}()
}
