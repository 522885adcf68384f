package hanoipresenter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/park285/hanoi-towers/internal/domain"
	"github.com/park285/hanoi-towers/internal/game"
	"github.com/park285/hanoi-towers/internal/render"
)

// Presenter delivers table rows (or JSON lines) and optional board frames without coupling to the command layer.
type Presenter struct {
	sendText  func(text string) error
	sendImage func(name string, png []byte) error

	formatter *Formatter
	renderer  render.BoardRenderer
	jsonMode  bool
	diskCount int
}

type Option func(*Presenter)

func WithJSON() Option {
	return func(p *Presenter) { p.jsonMode = true }
}

// WithRenderer enables one PNG frame per row; it has no effect without an image sink.
func WithRenderer(r render.BoardRenderer) Option {
	return func(p *Presenter) { p.renderer = r }
}

func NewPresenter(formatter *Formatter, sendText func(text string) error, sendImage func(name string, png []byte) error, opts ...Option) *Presenter {
	p := &Presenter{
		sendText:  sendText,
		sendImage: sendImage,
		formatter: formatter,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.formatter == nil {
		p.formatter = NewFormatter(nil)
	}
	return p
}

func (p *Presenter) Start(ctx context.Context, sess *game.Session) error {
	if p == nil || sess == nil {
		return nil
	}
	p.diskCount = sess.DiskCount
	p.formatter = p.formatter.Fit(sess.DiskCount)

	if p.jsonMode {
		if err := p.sendJSON(ToDTOStart(sess)); err != nil {
			return err
		}
	} else if err := p.send(p.formatter.Header(sess.Start())); err != nil {
		return err
	}

	return p.frame(ctx, 0, sess.Start(), p.formatter.StartCaption(sess.DiskCount, sess.Source()), nil)
}

func (p *Presenter) Move(ctx context.Context, ev domain.MoveEvent) error {
	if p == nil {
		return nil
	}
	if p.jsonMode {
		if err := p.sendJSON(ToDTOMove(ev)); err != nil {
			return err
		}
	} else if err := p.send(p.formatter.Move(ev)); err != nil {
		return err
	}
	hl := &render.Highlight{Disk: ev.Disk, From: ev.From, To: ev.To}
	return p.frame(ctx, ev.Step, ev.Snapshot, p.formatter.MoveCaption(ev), hl)
}

func (p *Presenter) Finish(ctx context.Context, res *game.Result) error {
	if p == nil || res == nil {
		return nil
	}
	if p.jsonMode {
		return p.sendJSON(ToDTOSummary(res))
	}
	return p.send(p.formatter.Summary(res.Moves))
}

func (p *Presenter) frame(ctx context.Context, step int64, snap domain.Snapshot, caption string, hl *render.Highlight) error {
	if p.renderer == nil || p.sendImage == nil {
		return nil
	}
	img, err := p.renderer.RenderPNG(ctx, snap, render.RenderOptions{DiskCount: p.diskCount, Caption: caption, Highlight: hl})
	if err != nil {
		return fmt.Errorf("render frame %d: %w", step, err)
	}
	return p.sendImage(FrameName(step), img)
}

func (p *Presenter) send(text string) error {
	if p.sendText == nil || text == "" {
		return nil
	}
	return p.sendText(text)
}

func (p *Presenter) sendJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return p.send(string(b) + "\n")
}

func FrameName(step int64) string {
	return fmt.Sprintf("frame-%06d.png", step)
}
