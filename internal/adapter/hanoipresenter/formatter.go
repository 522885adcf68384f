package hanoipresenter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/park285/hanoi-towers/internal/domain"
	"github.com/park285/hanoi-towers/internal/msgcat"
)

const (
	defaultMoveWidth = 21
	defaultPegWidth  = 19
)

// Formatter renders game values into the fixed-width move table.
type Formatter struct {
	cat       *msgcat.Catalog
	moveWidth int
	pegWidth  int
}

func NewFormatter(cat *msgcat.Catalog) *Formatter {
	return &Formatter{cat: cat, moveWidth: defaultMoveWidth, pegWidth: defaultPegWidth}
}

// Fit returns a formatter whose peg columns are wide enough for n disks on a single peg.
func (f *Formatter) Fit(n int) *Formatter {
	out := *f
	all := make([]int, 0, n)
	for size := n; size > 0; size-- {
		all = append(all, size)
	}
	if w := len(FormatDisks(all)) + 1; w > out.pegWidth {
		out.pegWidth = w
	}
	return &out
}

// Header is the two title lines plus the start row.
func (f *Formatter) Header(start domain.Snapshot) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-*s %-20s \n", f.moveWidth-1, f.text("table.move_header", nil), f.text("table.config_header", nil)))
	sb.WriteString(strings.Repeat(" ", f.moveWidth))
	for _, name := range start.Names() {
		sb.WriteString(fmt.Sprintf("%-*s ", f.pegWidth-1, name))
	}
	sb.WriteByte('\n')
	sb.WriteString(f.row(f.text("table.start", nil), start))
	return sb.String()
}

// Move is one table row: the moved disk and every peg after the move.
func (f *Formatter) Move(ev domain.MoveEvent) string {
	label := f.text("table.move", map[string]any{"Disk": ev.Disk, "From": ev.From, "To": ev.To})
	return f.row(label, ev.Snapshot)
}

func (f *Formatter) Summary(moves int64) string {
	return f.text("summary.moves", map[string]any{"Moves": moves}) + "\n"
}

func (f *Formatter) LargeGameWarning(n int) string {
	return f.text("warn.exponential", map[string]any{"Disks": n, "Moves": domain.MoveCount(n)})
}

// StartCaption and MoveCaption label rendered frames.
func (f *Formatter) StartCaption(n int, source string) string {
	return f.text("render.start", map[string]any{"Disks": n, "Peg": source})
}

func (f *Formatter) MoveCaption(ev domain.MoveEvent) string {
	return f.text("render.move", map[string]any{"Step": ev.Step, "Disk": ev.Disk, "From": ev.From, "To": ev.To})
}

func (f *Formatter) row(label string, snap domain.Snapshot) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-*s", f.moveWidth, label))
	for _, p := range snap {
		sb.WriteString(fmt.Sprintf("%-*s", f.pegWidth, FormatDisks(p.Disks)))
	}
	sb.WriteByte('\n')
	return sb.String()
}

func (f *Formatter) text(key string, data any) string {
	if f == nil || f.cat == nil {
		return key
	}
	return f.cat.MustRender(key, data)
}

// FormatDisks joins sizes bottom to top, each followed by a space.
func FormatDisks(disks []int) string {
	var sb strings.Builder
	for _, d := range disks {
		sb.WriteString(strconv.Itoa(d))
		sb.WriteByte(' ')
	}
	return sb.String()
}
