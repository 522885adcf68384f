package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/park285/hanoi-towers/internal/domain"
)

func boardSVG(snapshot domain.Snapshot, l layout, hl *Highlight) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, l.width, l.height, l.width, l.height)
	sb.WriteByte('\n')

	writeRect(&sb, margin, l.baseY, l.width-margin*2, baseHeight, 4, baseColor, nil)
	for col, p := range snapshot {
		cx := l.columnCenter(col)
		writeRect(&sb, cx-pegWidth/2, l.pegTop, pegWidth, l.baseY-l.pegTop, 3, pegColor, nil)

		for pos, size := range p.Disks {
			rect := l.diskRect(col, pos, size)
			var stroke *color.RGBA
			if hl != nil && hl.To == p.Name && hl.Disk == size && pos == len(p.Disks)-1 {
				stroke = &highlightStroke
			}
			radius := l.diskHeight / 2
			if radius > 4 {
				radius = 4
			}
			writeRect(&sb, rect.Min.X, rect.Min.Y, rect.Dx(), rect.Dy(), radius, diskColor(size), stroke)
		}
	}
	sb.WriteString("</svg>\n")
	return sb.String()
}

func writeRect(sb *strings.Builder, x, y, w, h, rx int, fill color.RGBA, stroke *color.RGBA) {
	fmt.Fprintf(sb, `<rect x="%d" y="%d" width="%d" height="%d" rx="%d" fill="%s"`, x, y, w, h, rx, hexColor(fill))
	if stroke != nil {
		fmt.Fprintf(sb, ` stroke="%s" stroke-width="2"`, hexColor(*stroke))
	}
	sb.WriteString("/>\n")
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
