// Package peg holds the stack-disciplined disk container for one named peg.
package peg

import (
	"fmt"

	"github.com/park285/hanoi-towers/internal/domain"
)

// Peg is a named stack of disks, largest at the bottom.
// The zero value is an unnamed empty peg.
type Peg struct {
	name  string
	disks []domain.Disk
}

func New(name string) *Peg {
	return &Peg{name: name}
}

func (p *Peg) Name() string { return p.name }

func (p *Peg) Len() int { return len(p.disks) }

func (p *Peg) Top() (domain.Disk, bool) {
	if len(p.disks) == 0 {
		return domain.Disk{}, false
	}
	return p.disks[len(p.disks)-1], true
}

// Push places d on top. A disk that is not strictly smaller than the current top is rejected.
func (p *Peg) Push(d domain.Disk) error {
	if d.Size < 1 {
		return &domain.GameError{Op: "peg.push", Kind: domain.ErrIllegalMove, Peg: p.name, Msg: fmt.Sprintf("disk size %d is not positive", d.Size)}
	}
	if top, ok := p.Top(); ok && d.Size >= top.Size {
		return &domain.GameError{
			Op:   "peg.push",
			Kind: domain.ErrIllegalMove,
			Peg:  p.name,
			Msg:  fmt.Sprintf("disk %d cannot rest on disk %d", d.Size, top.Size),
		}
	}
	p.disks = append(p.disks, d)
	return nil
}

func (p *Peg) Pop() (domain.Disk, error) {
	if len(p.disks) == 0 {
		return domain.Disk{}, &domain.GameError{Op: "peg.pop", Kind: domain.ErrEmptyPeg, Peg: p.name, Msg: "no disks to remove"}
	}
	last := len(p.disks) - 1
	d := p.disks[last]
	p.disks = p.disks[:last]
	return d, nil
}

// Contents copies the disk sizes from bottom to top.
func (p *Peg) Contents() []int {
	out := make([]int, len(p.disks))
	for i, d := range p.disks {
		out[i] = d.Size
	}
	return out
}

func (p *Peg) State() domain.PegState {
	return domain.PegState{Name: p.name, Disks: p.Contents()}
}

// LoadDescending stacks disks n, n-1, ..., 1 on an empty peg.
func (p *Peg) LoadDescending(n int) error {
	if n < 1 {
		return &domain.GameError{Op: "peg.load", Kind: domain.ErrInvalidGameState, Peg: p.name, Msg: fmt.Sprintf("disk count %d must be at least 1", n)}
	}
	if len(p.disks) != 0 {
		return &domain.GameError{Op: "peg.load", Kind: domain.ErrInvalidGameState, Peg: p.name, Msg: "peg already holds disks"}
	}
	p.disks = make([]domain.Disk, 0, n)
	for size := n; size > 0; size-- {
		if err := p.Push(domain.Disk{Size: size}); err != nil {
			return err
		}
	}
	return nil
}
