package solver

import "github.com/park285/hanoi-towers/internal/peg"

type phase uint8

const (
	phaseDescend phase = iota // solve n-1 onto utility
	phaseMove                 // move the largest disk, then solve n-1 onto destination
	phaseDone
)

type frame struct {
	n                            int
	source, destination, utility *peg.Peg
	phase                        phase
}

// iterate runs the same decomposition as recurse on an explicit frame stack,
// so stack depth no longer grows with n.
func (w *walker) iterate(n int, source, destination, utility *peg.Peg) error {
	stack := make([]frame, 0, n)
	stack = append(stack, frame{n: n, source: source, destination: destination, utility: utility})

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.n == 1 {
			if err := w.move(top.source, top.destination); err != nil {
				return err
			}
			stack = stack[:len(stack)-1]
			continue
		}
		switch top.phase {
		case phaseDescend:
			top.phase = phaseMove
			stack = append(stack, frame{n: top.n - 1, source: top.source, destination: top.utility, utility: top.destination})
		case phaseMove:
			if err := w.move(top.source, top.destination); err != nil {
				return err
			}
			top.phase = phaseDone
			stack = append(stack, frame{n: top.n - 1, source: top.utility, destination: top.destination, utility: top.source})
		default:
			stack = stack[:len(stack)-1]
		}
	}
	return nil
}
