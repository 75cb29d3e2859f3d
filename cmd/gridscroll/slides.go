package main

import (
	"fmt"
	"sync/atomic"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"git.sr.ht/~rockorager/vaxis/vxfw/richtext"
	"github.com/rivo/uniseg"

	"git.sr.ht/~rockorager/gridscroll/demo"
	"git.sr.ht/~rockorager/gridscroll/log"
)

// slides shows one demo at a time. Only the demo on screen is mounted
type slides struct {
	components []demo.Component
	// intro adds a title slide before the demos
	intro bool
	// index of the slide on screen, counting the intro
	current int
	// busy is read by the frame ticker
	busy atomic.Bool
}

func newSlides(intro bool, components ...demo.Component) *slides {
	return &slides{
		components: components,
		intro:      intro,
	}
}

func (s *slides) len() int {
	if s.intro {
		return len(s.components) + 1
	}
	return len(s.components)
}

// component returns the demo on screen, or nil on the intro slide
func (s *slides) component() demo.Component {
	i := s.current
	if s.intro {
		i -= 1
	}
	if i < 0 || i >= len(s.components) {
		return nil
	}
	return s.components[i]
}

// show switches to slide i, mounting its demo
func (s *slides) show(i int) (vxfw.Command, error) {
	if i < 0 || i >= s.len() || i == s.current {
		return nil, nil
	}
	if c := s.component(); c != nil {
		c.Unmount()
	}
	s.current = i
	log.Debug("slides: showing slide %d of %d", i+1, s.len())
	return s.focus()
}

// focus mounts the demo on screen and focuses its grid
func (s *slides) focus() (vxfw.Command, error) {
	c := s.component()
	if c == nil {
		return []vxfw.Command{vxfw.FocusWidgetCmd(s), vxfw.RedrawCmd{}}, nil
	}
	if err := c.Mount(); err != nil {
		return nil, fmt.Errorf("mounting %q: %w", c.Title(), err)
	}
	cmd, err := c.HandleEvent(vxfw.Init{}, vxfw.TargetPhase)
	if err != nil {
		return nil, err
	}
	return []vxfw.Command{cmd, vxfw.RedrawCmd{}}, nil
}

func (s *slides) close() {
	if c := s.component(); c != nil {
		c.Unmount()
	}
}

// CaptureEvent handles the keys which work on every slide
func (s *slides) CaptureEvent(ev vaxis.Event) (vxfw.Command, error) {
	key, ok := ev.(vaxis.Key)
	if !ok || key.EventType == vaxis.EventRelease {
		return nil, nil
	}
	switch {
	case key.Matches('c', vaxis.ModCtrl):
		return vxfw.QuitCmd{}, nil
	case key.Matches(vaxis.KeyRight, vaxis.ModCtrl):
		return s.step(1)
	case key.Matches(vaxis.KeyLeft, vaxis.ModCtrl):
		return s.step(-1)
	}
	return nil, nil
}

func (s *slides) step(d int) (vxfw.Command, error) {
	cmd, err := s.show(s.current + d)
	if err != nil {
		return nil, err
	}
	return []vxfw.Command{cmd, vxfw.ConsumeEventCmd{}}, nil
}

func (s *slides) HandleEvent(ev vaxis.Event, ph vxfw.EventPhase) (vxfw.Command, error) {
	switch ev := ev.(type) {
	case vxfw.Init:
		return s.focus()
	case vaxis.Key:
		if ev.EventType == vaxis.EventRelease {
			return nil, nil
		}
		switch {
		case ev.Matches('q'):
			return vxfw.QuitCmd{}, nil
		case ev.Matches(vaxis.KeyRight) && s.component() == nil:
			return s.step(1)
		case ev.Matches(vaxis.KeyLeft) && s.component() == nil:
			return s.step(-1)
		}
		// number keys jump to a demo
		for i := range s.components {
			if !ev.Matches(rune('1' + i)) {
				continue
			}
			if s.intro {
				i += 1
			}
			return s.step(i - s.current)
		}
	}
	return nil, nil
}

func (s *slides) drawIntro(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	dim := vaxis.Style{Attribute: vaxis.AttrDim}
	segs := []vaxis.Segment{
		{Text: "gridscroll: data grids with overlay scrollbars\n\n"},
	}
	for i, c := range s.components {
		segs = append(segs, vaxis.Segment{
			Text:  fmt.Sprintf("    %d  %s\n", i+1, c.Title()),
			Style: dim,
		})
	}
	segs = append(segs,
		vaxis.Segment{Text: "\n"},
		vaxis.Segment{Text: "    Ctrl+C or q to quit\n", Style: dim},
		vaxis.Segment{Text: "    <Ctrl+Right> next slide\n", Style: dim},
		vaxis.Segment{Text: "    <Ctrl+Left> previous slide", Style: dim},
	)
	return richtext.New(segs).Draw(ctx)
}

func (s *slides) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	if ctx.Max.HasUnboundedHeight() || ctx.Max.HasUnboundedWidth() {
		panic("slides cannot have unbounded height or width")
	}
	w, h := ctx.Max.Width, ctx.Max.Height
	srf := vxfw.NewSurface(w, h, s)
	if h == 0 {
		return srf, nil
	}
	body := vxfw.Size{Width: w, Height: h - 1}

	c := s.component()
	var (
		chS vxfw.Surface
		err error
	)
	if c == nil {
		chS, err = s.drawIntro(ctx.WithConstraints(vxfw.Size{}, body))
	} else {
		chS, err = c.Draw(ctx.WithConstraints(body, body))
	}
	if err != nil {
		return srf, err
	}
	srf.AddChild(0, 0, chS)
	s.busy.Store(c != nil && c.Busy())

	mid := fmt.Sprintf("%d of %d", s.current+1, s.len())
	mw := uniseg.StringWidth(mid)
	col := max(0, (int(w)-mw)/2)
	for _, ch := range ctx.Characters(mid) {
		if col+ch.Width > int(w) {
			break
		}
		srf.WriteCell(uint16(col), h-1, vaxis.Cell{Character: ch})
		col += ch.Width
	}
	return srf, nil
}

// Busy reports whether the demo on screen needs more frames. It is safe to
// call from any goroutine
func (s *slides) Busy() bool {
	return s.busy.Load()
}

var (
	_ vxfw.Widget        = &slides{}
	_ vxfw.EventCapturer = &slides{}
	_ vxfw.EventHandler  = &slides{}
)
