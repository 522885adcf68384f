package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveCount(t *testing.T) {
	for _, tc := range []struct {
		n    int
		want uint64
	}{
		{0, 0},
		{-3, 0},
		{1, 1},
		{2, 3},
		{3, 7},
		{10, 1023},
		{63, 1<<63 - 1},
		{64, ^uint64(0)},
	} {
		assert.Equal(t, tc.want, MoveCount(tc.n), "n=%d", tc.n)
	}
}

func TestSnapshotCloneIsDeep(t *testing.T) {
	s := Snapshot{{Name: "A", Disks: []int{2, 1}}, {Name: "B"}, {Name: "C"}}
	c := s.Clone()
	c[0].Disks[0] = 9

	assert.Equal(t, []int{2, 1}, s.Of("A"))
	assert.Equal(t, 2, s.Total())
	assert.Equal(t, []string{"A", "B", "C"}, s.Names())
	assert.Nil(t, s.Of("Z"))
	assert.Equal(t, "A=[2 1] B=[] C=[]", s.String())
}

func TestSnapshotCloneKeepsEmptyPegsNonNil(t *testing.T) {
	s := Snapshot{{Name: "A", Disks: []int{1}}, {Name: "B", Disks: []int{}}, {Name: "C"}}
	c := s.Clone()

	for _, p := range c {
		assert.NotNil(t, p.Disks, p.Name)
	}
	assert.Equal(t, []int{}, c.Of("B"))
	assert.Equal(t, []int{}, c.Of("C"))
	assert.Equal(t, Snapshot{{Name: "A", Disks: []int{1}}, {Name: "B", Disks: []int{}}, {Name: "C", Disks: []int{}}}, c)
}
