package hanoipresenter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/park285/hanoi-towers/internal/domain"
	"github.com/park285/hanoi-towers/internal/game"
	"github.com/park285/hanoi-towers/internal/msgcat"
	"github.com/park285/hanoi-towers/internal/render"
	"github.com/park285/hanoi-towers/pkg/hanoidto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFormatter(t *testing.T) *Formatter {
	t.Helper()
	cat, err := msgcat.New("")
	require.NoError(t, err)
	return NewFormatter(cat)
}

func playGame(t *testing.T, n int, p *Presenter) {
	t.Helper()
	svc, err := game.NewService(game.Config{PegNames: [3]string{"A", "B", "C"}}, nil)
	require.NoError(t, err)
	sess, err := svc.NewSession(n)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, p.Start(ctx, sess))
	res, err := svc.Play(sess, func(ev domain.MoveEvent) error { return p.Move(ctx, ev) })
	require.NoError(t, err)
	require.NoError(t, p.Finish(ctx, res))
}

func TestTableOutputTwoDisks(t *testing.T) {
	var out strings.Builder
	p := NewPresenter(newFormatter(t), func(s string) error { out.WriteString(s); return nil }, nil)
	playGame(t, 2, p)

	row := func(label, a, b, c string) string {
		return fmt.Sprintf("%-21s%-19s%-19s%-19s", label, a, b, c)
	}
	want := []string{
		fmt.Sprintf("%-20s %-20s ", "Move", "Peg Configuration"),
		strings.Repeat(" ", 21) + fmt.Sprintf("%-18s %-18s %-18s ", "A", "B", "C"),
		row("start", "2 1 ", "", ""),
		row("1 from A to B", "2 ", "1 ", ""),
		row("2 from A to C", "", "1 ", "2 "),
		row("1 from B to C", "", "", "2 1 "),
		"Number of moves required to complete the game: 3",
		"",
	}
	assert.Equal(t, strings.Join(want, "\n"), out.String())
}

func TestFormatterFitWidensColumns(t *testing.T) {
	f := newFormatter(t)
	assert.Equal(t, defaultPegWidth, f.Fit(3).pegWidth)
	assert.Equal(t, 22, f.Fit(10).pegWidth)
	assert.Equal(t, defaultPegWidth, f.pegWidth, "Fit must not mutate the receiver")
}

func TestFormatDisks(t *testing.T) {
	assert.Equal(t, "", FormatDisks(nil))
	assert.Equal(t, "3 2 1 ", FormatDisks([]int{3, 2, 1}))
}

func TestFormatterWithoutCatalogFallsBackToKeys(t *testing.T) {
	f := NewFormatter(nil)
	assert.Equal(t, "summary.moves\n", f.Summary(3))
}

func TestJSONOutput(t *testing.T) {
	var lines []string
	p := NewPresenter(newFormatter(t), func(s string) error { lines = append(lines, s); return nil }, nil, WithJSON())
	playGame(t, 3, p)

	require.Len(t, lines, 1+7+1)

	var start hanoidto.Start
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &start))
	assert.Equal(t, hanoidto.TypeStart, start.Type)
	assert.Equal(t, 3, start.Disks)
	assert.Equal(t, []int{3, 2, 1}, start.Pegs[0].Disks)
	assert.Equal(t, []int{}, start.Pegs[1].Disks)

	var first hanoidto.Move
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &first))
	assert.Equal(t, hanoidto.Move{
		Type: hanoidto.TypeMove, Step: 1, Disk: 1, From: "A", To: "C",
		Pegs: []hanoidto.PegState{{Name: "A", Disks: []int{3, 2}}, {Name: "B", Disks: []int{}}, {Name: "C", Disks: []int{1}}},
	}, first)

	var sum hanoidto.Summary
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &sum))
	assert.Equal(t, hanoidto.TypeSummary, sum.Type)
	assert.EqualValues(t, 7, sum.TotalMoves)
	assert.Equal(t, start.SessionID, sum.SessionID)
	assert.Equal(t, []int{3, 2, 1}, sum.Final[2].Disks)
}

type fakeRenderer struct {
	calls []render.RenderOptions
}

func (f *fakeRenderer) RenderPNG(_ context.Context, snap domain.Snapshot, opts render.RenderOptions) ([]byte, error) {
	f.calls = append(f.calls, opts)
	return []byte(snap.String()), nil
}

func TestFramesAreRenderedPerRow(t *testing.T) {
	r := &fakeRenderer{}
	images := map[string]string{}
	p := NewPresenter(newFormatter(t), nil,
		func(name string, png []byte) error { images[name] = string(png); return nil },
		WithRenderer(r))
	playGame(t, 2, p)

	require.Len(t, r.calls, 4)
	assert.Equal(t, "Start: 2 disks on A", r.calls[0].Caption)
	assert.Nil(t, r.calls[0].Highlight)
	assert.Equal(t, "Move 2: disk 2 from A to C", r.calls[2].Caption)
	assert.Equal(t, &render.Highlight{Disk: 2, From: "A", To: "C"}, r.calls[2].Highlight)
	assert.Equal(t, 2, r.calls[3].DiskCount)

	assert.Equal(t, "A=[2 1] B=[] C=[]", images["frame-000000.png"])
	assert.Equal(t, "A=[] B=[] C=[2 1]", images["frame-000003.png"])
}

func TestSinkErrorStopsGame(t *testing.T) {
	boom := errors.New("broken pipe")
	calls := 0
	p := NewPresenter(newFormatter(t), func(string) error {
		calls++
		if calls == 2 {
			return boom
		}
		return nil
	}, nil)

	svc, err := game.NewService(game.Config{PegNames: [3]string{"A", "B", "C"}}, nil)
	require.NoError(t, err)
	sess, err := svc.NewSession(3)
	require.NoError(t, err)
	require.NoError(t, p.Start(context.Background(), sess))
	_, err = svc.Play(sess, func(ev domain.MoveEvent) error { return p.Move(context.Background(), ev) })
	assert.ErrorIs(t, err, boom)
}
