// Package game owns the three pegs of one puzzle run and drives the solver over them.
package game

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/park285/hanoi-towers/internal/domain"
	"github.com/park285/hanoi-towers/internal/msgcat"
	"github.com/park285/hanoi-towers/internal/peg"
	"github.com/park285/hanoi-towers/internal/solver"
	"go.uber.org/zap"
)

// MaxDisks is the largest disk count whose move total still fits an int64.
const MaxDisks = 63

const defaultWarnDisks = 20

var ErrSessionPlayed = errors.New("game session already played")

type Config struct {
	PegNames  [3]string
	Strategy  solver.Strategy
	WarnDisks int
	// MaxDisks caps accepted disk counts; zero means MaxDisks.
	MaxDisks int
	// Messages supplies user-facing error text; nil loads the embedded catalog.
	Messages *msgcat.Catalog
}

type Service struct {
	cfg    Config
	logger *zap.Logger
	now    func() time.Time
}

// Session is one puzzle: pegs[0] is the source, pegs[1] the utility, pegs[2] the destination.
type Session struct {
	ID        string
	DiskCount int
	StartedAt time.Time

	pegs   [3]*peg.Peg
	start  domain.Snapshot
	played bool
}

type Result struct {
	SessionID string
	DiskCount int
	Moves     int64
	Final     domain.Snapshot
	Duration  time.Duration
}

func NewService(cfg Config, logger *zap.Logger) (*Service, error) {
	seen := make(map[string]struct{}, len(cfg.PegNames))
	for i, name := range cfg.PegNames {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("peg name %d is empty", i)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("peg name %q is repeated", name)
		}
		seen[name] = struct{}{}
		cfg.PegNames[i] = name
	}
	if cfg.Strategy == "" {
		cfg.Strategy = solver.Recursive
	}
	if cfg.Strategy != solver.Recursive && cfg.Strategy != solver.Iterative {
		return nil, fmt.Errorf("unknown solver strategy %q", cfg.Strategy)
	}
	if cfg.WarnDisks <= 0 {
		cfg.WarnDisks = defaultWarnDisks
	}
	if cfg.MaxDisks == 0 {
		cfg.MaxDisks = MaxDisks
	}
	if cfg.MaxDisks < 1 || cfg.MaxDisks > MaxDisks {
		return nil, fmt.Errorf("max disks must be between 1 and %d, got %d", MaxDisks, cfg.MaxDisks)
	}
	if cfg.Messages == nil {
		cat, err := msgcat.New("")
		if err != nil {
			return nil, fmt.Errorf("load messages: %w", err)
		}
		cfg.Messages = cat
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{cfg: cfg, logger: logger, now: time.Now}, nil
}

// NewSession validates n and sets up the pegs with every disk on the source.
func (s *Service) NewSession(n int) (*Session, error) {
	if n < 1 {
		return nil, s.invalidInput("input.too_few", nil)
	}
	if n > s.cfg.MaxDisks {
		return nil, s.invalidInput("input.too_many", map[string]any{"Max": s.cfg.MaxDisks})
	}

	sess := &Session{
		ID:        uuid.NewString(),
		DiskCount: n,
		StartedAt: s.now(),
	}
	for i, name := range s.cfg.PegNames {
		sess.pegs[i] = peg.New(name)
	}
	if err := sess.pegs[0].LoadDescending(n); err != nil {
		return nil, err
	}
	sess.start = sess.snapshot()

	if n > s.cfg.WarnDisks {
		s.logger.Info("large disk count",
			zap.String("session_id", sess.ID),
			zap.Int("disks", n),
			zap.Uint64("moves", domain.MoveCount(n)),
		)
	}
	s.logger.Debug("game session created", zap.String("session_id", sess.ID), zap.Int("disks", n))
	return sess, nil
}

// Play solves the session, handing each move to emit as it is applied.
func (s *Service) Play(sess *Session, emit solver.EmitFunc) (*Result, error) {
	if sess == nil {
		return nil, errors.New("nil game session")
	}
	if sess.played {
		return nil, ErrSessionPlayed
	}
	sess.played = true

	src, util, dst := sess.pegs[0], sess.pegs[1], sess.pegs[2]
	began := s.now()
	s.logger.Info("game started",
		zap.String("session_id", sess.ID),
		zap.Int("disks", sess.DiskCount),
		zap.String("strategy", string(s.cfg.Strategy)),
		zap.Strings("pegs", sess.Pegs()),
	)

	moves, err := solver.Walk(sess.DiskCount, src, dst, util, emit,
		solver.WithStrategy(s.cfg.Strategy),
		solver.WithLayout(src, util, dst),
	)
	elapsed := s.now().Sub(began)
	if err != nil {
		s.logger.Error("game aborted",
			zap.String("session_id", sess.ID),
			zap.Int64("moves", moves),
			zap.Error(err),
		)
		return nil, fmt.Errorf("play session %s: %w", sess.ID, err)
	}

	s.logger.Info("game finished",
		zap.String("session_id", sess.ID),
		zap.Int64("moves", moves),
		zap.Duration("elapsed", elapsed),
	)
	return &Result{
		SessionID: sess.ID,
		DiskCount: sess.DiskCount,
		Moves:     moves,
		Final:     sess.snapshot(),
		Duration:  elapsed,
	}, nil
}

// Start is the configuration before the first move.
func (sess *Session) Start() domain.Snapshot { return sess.start.Clone() }

// Pegs lists the peg names as source, utility, destination.
func (sess *Session) Pegs() []string {
	return []string{sess.pegs[0].Name(), sess.pegs[1].Name(), sess.pegs[2].Name()}
}

func (sess *Session) Source() string { return sess.pegs[0].Name() }

func (sess *Session) snapshot() domain.Snapshot {
	return domain.Snapshot{sess.pegs[0].State(), sess.pegs[1].State(), sess.pegs[2].State()}
}

func (s *Service) invalidInput(key string, data any) error {
	return &domain.GameError{Op: "game.new", Kind: domain.ErrInvalidInput, Msg: s.cfg.Messages.MustRender(key, data)}
}
