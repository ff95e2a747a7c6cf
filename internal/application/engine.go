package application

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/nemesix/nemesis-cli/internal/domain"
	"github.com/nemesix/nemesis-cli/internal/ports"
	"go.uber.org/zap"
)

const (
	DefaultScorePeriod = 3 * time.Second
	DefaultTauntPeriod = 10 * time.Second

	// tauntTickSkipProbability is the share of taunt ticks that stay
	// silent.
	tauntTickSkipProbability = 0.3
)

type EventKind string

const (
	EventScore EventKind = "score"
	EventTaunt EventKind = "taunt"
)

// Event is emitted on the engine channel after each effective tick so the
// display can refresh. Local mutation always precedes the mirror push.
type Event struct {
	Kind    EventKind
	Session domain.Session
	Taunt   string
}

// Engine drives the two recurring timers of an active session: the score
// timer advancing the nemesis and the taunt timer refreshing the displayed
// taunt. A single goroutine owns both tickers, so timer work is serialized
// without further locking.
type Engine struct {
	service     *Service
	scorePeriod time.Duration
	tauntPeriod time.Duration
	rand        ports.Rand
	logger      *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	events chan Event
}

type EngineConfig struct {
	ScorePeriod time.Duration
	TauntPeriod time.Duration
	Rand        ports.Rand
	Logger      *zap.Logger
}

func NewEngine(service *Service, cfg EngineConfig) *Engine {
	if cfg.ScorePeriod <= 0 {
		cfg.ScorePeriod = DefaultScorePeriod
	}
	if cfg.TauntPeriod <= 0 {
		cfg.TauntPeriod = DefaultTauntPeriod
	}
	if cfg.Rand == nil {
		cfg.Rand = ports.SystemRand{}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Engine{
		service:     service,
		scorePeriod: cfg.ScorePeriod,
		tauntPeriod: cfg.TauntPeriod,
		rand:        cfg.Rand,
		logger:      cfg.Logger,
	}
}

// Start launches the timer loop. A previous run is stopped first so two
// sets of tickers never race on the same session.
func (e *Engine) Start(ctx context.Context) {
	e.Stop()

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	events := make(chan Event, 16)

	e.mu.Lock()
	e.cancel = cancel
	e.done = done
	e.events = events
	e.mu.Unlock()

	go e.loop(runCtx, done, events)
}

// Stop cancels the timer loop and waits for it to exit. Safe to call when
// not running.
func (e *Engine) Stop() {
	e.mu.Lock()
	cancel := e.cancel
	done := e.done
	e.cancel = nil
	e.done = nil
	e.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Events returns the channel for the current run. It is closed when the
// run stops.
func (e *Engine) Events() <-chan Event {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.events
}

func (e *Engine) loop(ctx context.Context, done chan struct{}, events chan Event) {
	defer close(done)
	defer close(events)

	scoreTicker := time.NewTicker(e.scorePeriod)
	defer scoreTicker.Stop()
	tauntTicker := time.NewTicker(e.tauntPeriod)
	defer tauntTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-scoreTicker.C:
			session, err := e.service.NemesisTick(ctx)
			if err != nil {
				if !errors.Is(err, domain.ErrNoActiveSession) {
					e.logger.Warn("score tick failed", zap.Error(err))
				}
				continue
			}
			e.emit(events, Event{Kind: EventScore, Session: session})
		case <-tauntTicker.C:
			if e.rand.Float64() <= tauntTickSkipProbability {
				continue
			}
			taunt := e.service.SelectTaunt(ctx, false)
			e.emit(events, Event{Kind: EventTaunt, Session: e.service.Session(), Taunt: taunt})
		}
	}
}

// emit never blocks the timer loop; when the consumer lags, the event is
// dropped and the next tick repaints anyway.
func (e *Engine) emit(events chan Event, event Event) {
	select {
	case events <- event:
	default:
	}
}
