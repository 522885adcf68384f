package domain

import (
	"strconv"
	"strings"
)

// Disk is a single sized disk. Size 1 is the smallest.
type Disk struct {
	Size int
}

// PegState is the bottom-to-top disk sizes of one named peg.
type PegState struct {
	Name  string
	Disks []int
}

// Snapshot is the configuration of every peg at one point in a game, in layout order.
type Snapshot []PegState

// Of returns the disks on the named peg, or nil when no such peg exists.
func (s Snapshot) Of(name string) []int {
	for _, p := range s {
		if p.Name == name {
			return p.Disks
		}
	}
	return nil
}

func (s Snapshot) Names() []string {
	names := make([]string, 0, len(s))
	for _, p := range s {
		names = append(names, p.Name)
	}
	return names
}

// Total counts disks across all pegs.
func (s Snapshot) Total() int {
	n := 0
	for _, p := range s {
		n += len(p.Disks)
	}
	return n
}

func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return nil
	}
	out := make(Snapshot, len(s))
	for i, p := range s {
		d := make([]int, len(p.Disks))
		copy(d, p.Disks)
		out[i] = PegState{Name: p.Name, Disks: d}
	}
	return out
}

func (s Snapshot) String() string {
	parts := make([]string, 0, len(s))
	for _, p := range s {
		var sb strings.Builder
		sb.WriteString(p.Name)
		sb.WriteByte('=')
		sb.WriteByte('[')
		for i, d := range p.Disks {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(d))
		}
		sb.WriteByte(']')
		parts = append(parts, sb.String())
	}
	return strings.Join(parts, " ")
}

// MoveEvent records one single-disk move and the configuration right after it.
type MoveEvent struct {
	Step     int64
	Disk     int
	From     string
	To       string
	Snapshot Snapshot
}

// MoveCount is the minimal number of moves for n disks on three pegs.
// Counts of 64 and above saturate at the uint64 maximum.
func MoveCount(n int) uint64 {
	if n <= 0 {
		return 0
	}
	if n >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<uint(n) - 1
}
