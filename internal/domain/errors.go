package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidGameState = errors.New("invalid game state")
	ErrEmptyPeg         = errors.New("empty peg")
	ErrIllegalMove      = errors.New("illegal move")
)

// GameError wraps one of the sentinel kinds with operation context.
type GameError struct {
	Op   string
	Kind error
	Peg  string // optional
	Msg  string
}

func (e *GameError) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := e.Op
	if e.Msg != "" {
		base += ": " + e.Msg
	}
	if e.Peg != "" {
		base += fmt.Sprintf(" (peg=%s)", e.Peg)
	}
	if e.Kind != nil {
		base += fmt.Sprintf(": %v", e.Kind)
	}
	return base
}

func (e *GameError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Kind
}

// IsKind reports whether err is a *GameError of the given kind.
func IsKind(err, kind error) bool {
	var ge *GameError
	if errors.As(err, &ge) {
		return errors.Is(ge.Kind, kind)
	}
	return false
}

// UserMessage returns the Msg of the outermost GameError, falling back to err.Error().
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var ge *GameError
	if errors.As(err, &ge) && ge.Msg != "" {
		return ge.Msg
	}
	return err.Error()
}
