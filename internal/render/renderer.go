// Package render draws a peg configuration as a PNG image.
package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	imagedraw "image/draw"
	"image/png"
	"strings"

	"github.com/park285/hanoi-towers/internal/domain"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

type Highlight struct {
	Disk int
	From string
	To   string
}

type RenderOptions struct {
	// DiskCount scales the disks; zero means the snapshot's total.
	DiskCount int
	Caption   string
	Highlight *Highlight
}

type BoardRenderer interface {
	RenderPNG(ctx context.Context, snapshot domain.Snapshot, opts RenderOptions) ([]byte, error)
}

type svgBoardRenderer struct{}

func NewSVGBoardRenderer() BoardRenderer {
	return &svgBoardRenderer{}
}

const (
	margin         = 24
	captionHeight  = 36
	labelHeight    = 28
	baseHeight     = 12
	columnWidth    = 200
	pegWidth       = 10
	minDiskWidth   = 24
	maxStackHeight = 320
	maxDiskHeight  = 22
	minDiskHeight  = 3
	pegHeadroom    = 20
)

var (
	backgroundColor = color.RGBA{28, 31, 46, 255}
	baseColor       = color.RGBA{187, 136, 96, 255}
	pegColor        = color.RGBA{233, 207, 163, 255}
	highlightStroke = color.RGBA{255, 228, 120, 255}
	captionColor    = color.RGBA{236, 239, 255, 255}
	labelColor      = color.RGBA{8, 214, 120, 255}

	diskPalette = []color.RGBA{
		{230, 87, 87, 255},
		{240, 160, 70, 255},
		{236, 214, 92, 255},
		{120, 200, 110, 255},
		{80, 180, 220, 255},
		{110, 120, 230, 255},
		{180, 110, 220, 255},
		{220, 120, 170, 255},
	}
)

// layout holds the pixel geometry of one image.
type layout struct {
	width, height int
	disks         int
	diskHeight    int
	baseY         int
	pegTop        int
}

func newLayout(snapshot domain.Snapshot, opts RenderOptions) layout {
	n := opts.DiskCount
	if total := snapshot.Total(); n < total {
		n = total
	}
	if n < 1 {
		n = 1
	}
	dh := maxStackHeight / n
	if dh > maxDiskHeight {
		dh = maxDiskHeight
	}
	if dh < minDiskHeight {
		dh = minDiskHeight
	}
	pegH := dh*n + pegHeadroom
	cols := len(snapshot)
	if cols < 1 {
		cols = 1
	}
	l := layout{
		width:      margin*2 + columnWidth*cols,
		disks:      n,
		diskHeight: dh,
	}
	l.pegTop = margin + captionHeight
	l.baseY = l.pegTop + pegH
	l.height = l.baseY + baseHeight + labelHeight + margin
	return l
}

func (l layout) columnCenter(i int) int {
	return margin + columnWidth*i + columnWidth/2
}

func (l layout) diskWidth(size int) int {
	span := columnWidth - minDiskWidth - 16
	if l.disks <= 1 {
		return minDiskWidth + span
	}
	return minDiskWidth + span*(size-1)/(l.disks-1)
}

// diskRect is the rectangle of the disk at stack position pos (0 = bottom) on column col.
func (l layout) diskRect(col, pos, size int) image.Rectangle {
	cx := l.columnCenter(col)
	w := l.diskWidth(size)
	y := l.baseY - (pos+1)*l.diskHeight
	return image.Rect(cx-w/2, y, cx-w/2+w, y+l.diskHeight-1)
}

func diskColor(size int) color.RGBA {
	if size < 1 {
		size = 1
	}
	return diskPalette[(size-1)%len(diskPalette)]
}

func (r *svgBoardRenderer) RenderPNG(ctx context.Context, snapshot domain.Snapshot, opts RenderOptions) ([]byte, error) {
	if len(snapshot) == 0 {
		return nil, fmt.Errorf("snapshot is empty")
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	l := newLayout(snapshot, opts)
	img := image.NewRGBA(image.Rect(0, 0, l.width, l.height))
	imagedraw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, imagedraw.Src)

	icon, err := oksvg.ReadIconStream(strings.NewReader(boardSVG(snapshot, l, opts.Highlight)))
	if err != nil {
		return nil, fmt.Errorf("parse board svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(l.width), float64(l.height))
	scanner := rasterx.NewScannerGV(l.width, l.height, img, img.Bounds())
	raster := rasterx.NewDasher(l.width, l.height, scanner)
	icon.Draw(raster, 1.0)

	drawLabels(img, snapshot, l, opts.Caption)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return pngBuf.Bytes(), nil
}

func drawLabels(img *image.RGBA, snapshot domain.Snapshot, l layout, caption string) {
	drawer := &font.Drawer{Dst: img, Face: basicfont.Face7x13}
	ascent := basicfont.Face7x13.Metrics().Ascent.Ceil()

	if text := strings.TrimSpace(caption); text != "" {
		drawer.Src = image.NewUniform(captionColor)
		drawer.Dot = fixed.P(margin, margin+ascent)
		drawer.DrawString(text)
	}

	drawer.Src = image.NewUniform(labelColor)
	for i, p := range snapshot {
		w := drawer.MeasureString(p.Name).Round()
		drawer.Dot = fixed.P(l.columnCenter(i)-w/2, l.baseY+baseHeight+ascent+6)
		drawer.DrawString(p.Name)
	}
}
