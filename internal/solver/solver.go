// Package solver generates the minimal three-peg move sequence and applies it to live pegs.
package solver

import (
	"fmt"
	"strings"

	"github.com/park285/hanoi-towers/internal/domain"
	"github.com/park285/hanoi-towers/internal/peg"
)

type Strategy string

const (
	Recursive Strategy = "recursive"
	Iterative Strategy = "iterative"
)

func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "recursive", "rec":
		return Recursive, nil
	case "iterative", "iter", "stack":
		return Iterative, nil
	default:
		return "", fmt.Errorf("unknown solver strategy %q (expected recursive|iterative)", s)
	}
}

// EmitFunc receives each move right after it has been applied to the pegs.
// A non-nil error stops the walk.
type EmitFunc func(domain.MoveEvent) error

type options struct {
	strategy Strategy
	layout   []*peg.Peg
}

type Option func(*options)

func WithStrategy(s Strategy) Option {
	return func(o *options) { o.strategy = s }
}

// WithLayout sets the peg order used in every snapshot.
// It must list exactly the three pegs being solved.
func WithLayout(pegs ...*peg.Peg) Option {
	return func(o *options) { o.layout = append([]*peg.Peg(nil), pegs...) }
}

// Solve moves n disks from source to destination and returns every move in order.
func Solve(n int, source, destination, utility *peg.Peg, opts ...Option) ([]domain.MoveEvent, error) {
	var events []domain.MoveEvent
	if n >= 1 && n <= 20 {
		events = make([]domain.MoveEvent, 0, domain.MoveCount(n))
	}
	_, err := Walk(n, source, destination, utility, func(ev domain.MoveEvent) error {
		events = append(events, ev)
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	return events, nil
}

// Walk moves n disks from source to destination, calling emit after each move,
// and returns the number of moves made. emit may be nil.
func Walk(n int, source, destination, utility *peg.Peg, emit EmitFunc, opts ...Option) (int64, error) {
	o := options{strategy: Recursive}
	for _, opt := range opts {
		opt(&o)
	}
	if err := Validate(n, source, destination, utility); err != nil {
		return 0, err
	}
	layout := o.layout
	if len(layout) == 0 {
		layout = []*peg.Peg{source, utility, destination}
	} else if err := validateLayout(layout, source, destination, utility); err != nil {
		return 0, err
	}

	w := &walker{layout: layout, emit: emit}
	var err error
	switch o.strategy {
	case Recursive, "":
		err = w.recurse(n, source, destination, utility)
	case Iterative:
		err = w.iterate(n, source, destination, utility)
	default:
		return 0, fmt.Errorf("unknown solver strategy %q", o.strategy)
	}
	return w.moves, err
}

// Validate checks the canonical starting configuration.
func Validate(n int, source, destination, utility *peg.Peg) error {
	invalid := func(pegName, format string, args ...any) error {
		return &domain.GameError{Op: "solver.validate", Kind: domain.ErrInvalidGameState, Peg: pegName, Msg: fmt.Sprintf(format, args...)}
	}
	if n < 1 {
		return invalid("", "disk count %d must be at least 1", n)
	}
	if source == nil || destination == nil || utility == nil {
		return invalid("", "source, destination and utility pegs are required")
	}
	if source == destination || source == utility || destination == utility {
		return invalid("", "pegs must be distinct")
	}
	if got := source.Len(); got != n {
		return invalid(source.Name(), "source holds %d disks, expected %d", got, n)
	}
	for i, size := range source.Contents() {
		if want := n - i; size != want {
			return invalid(source.Name(), "disk at position %d is %d, expected %d", i, size, want)
		}
	}
	if destination.Len() != 0 {
		return invalid(destination.Name(), "destination must start empty")
	}
	if utility.Len() != 0 {
		return invalid(utility.Name(), "utility must start empty")
	}
	return nil
}

func validateLayout(layout []*peg.Peg, pegs ...*peg.Peg) error {
	if len(layout) != len(pegs) {
		return &domain.GameError{Op: "solver.layout", Kind: domain.ErrInvalidGameState, Msg: fmt.Sprintf("layout lists %d pegs, expected %d", len(layout), len(pegs))}
	}
	for _, p := range pegs {
		found := 0
		for _, l := range layout {
			if l == p {
				found++
			}
		}
		if found != 1 {
			return &domain.GameError{Op: "solver.layout", Kind: domain.ErrInvalidGameState, Peg: p.Name(), Msg: "layout must list every peg exactly once"}
		}
	}
	return nil
}

type walker struct {
	layout []*peg.Peg
	emit   EmitFunc
	moves  int64
}

func (w *walker) recurse(n int, source, destination, utility *peg.Peg) error {
	if n == 1 {
		return w.move(source, destination)
	}
	if err := w.recurse(n-1, source, utility, destination); err != nil {
		return err
	}
	if err := w.move(source, destination); err != nil {
		return err
	}
	return w.recurse(n-1, utility, destination, source)
}

func (w *walker) move(from, to *peg.Peg) error {
	step := w.moves + 1
	d, err := from.Pop()
	if err != nil {
		return fmt.Errorf("move %d: %w", step, err)
	}
	if err := to.Push(d); err != nil {
		return fmt.Errorf("move %d: %w", step, err)
	}
	w.moves = step
	if w.emit == nil {
		return nil
	}
	ev := domain.MoveEvent{
		Step:     step,
		Disk:     d.Size,
		From:     from.Name(),
		To:       to.Name(),
		Snapshot: w.snapshot(),
	}
	if err := w.emit(ev); err != nil {
		return fmt.Errorf("emit move %d: %w", step, err)
	}
	return nil
}

func (w *walker) snapshot() domain.Snapshot {
	s := make(domain.Snapshot, len(w.layout))
	for i, p := range w.layout {
		s[i] = p.State()
	}
	return s
}
