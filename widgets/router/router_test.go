package router

import (
	"testing"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// box records the events it receives and draws its children at fixed origins
type box struct {
	name     string
	size     vxfw.Size
	children []placed
	consume  bool

	got    []vaxis.Mouse
	phases []vxfw.EventPhase
	inits  int
}

type placed struct {
	col, row int
	z        int
	w        *box
}

func (b *box) HandleEvent(ev vaxis.Event, ph vxfw.EventPhase) (vxfw.Command, error) {
	switch ev := ev.(type) {
	case vaxis.Mouse:
		b.got = append(b.got, ev)
		b.phases = append(b.phases, ph)
		if b.consume {
			return vxfw.ConsumeAndRedraw(), nil
		}
		return vxfw.RedrawCmd{}, nil
	case vxfw.Init:
		b.inits += 1
		return vxfw.RedrawCmd{}, nil
	}
	return nil, nil
}

func (b *box) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	s := vxfw.NewSurface(b.size.Width, b.size.Height, b)
	for _, p := range b.children {
		chS, err := p.w.Draw(ctx)
		if err != nil {
			return s, err
		}
		ss := vxfw.NewSubSurface(p.col, p.row, chS)
		ss.ZIndex = p.z
		s.Children = append(s.Children, ss)
	}
	return s, nil
}

func draw(t *testing.T, r *Router) {
	t.Helper()
	_, err := r.Draw(vxfw.DrawContext{
		Max:        vxfw.Size{Width: 80, Height: 24},
		Characters: vaxis.Characters,
	})
	require.NoError(t, err)
}

func TestDispatchUsesLocalCoordinates(t *testing.T) {
	inner := &box{name: "inner", size: vxfw.Size{Width: 10, Height: 5}}
	outer := &box{
		name:     "outer",
		size:     vxfw.Size{Width: 40, Height: 20},
		children: []placed{{col: 5, row: 3, w: inner}},
	}
	r := New(outer)
	draw(t, r)

	_, err := r.Dispatch(vaxis.Mouse{Col: 7, Row: 4})
	require.NoError(t, err)
	require.Len(t, inner.got, 1)
	assert.Equal(t, 2, inner.got[0].Col)
	assert.Equal(t, 1, inner.got[0].Row)
	assert.Equal(t, vxfw.TargetPhase, inner.phases[0])

	require.Len(t, outer.got, 1, "the event bubbles")
	assert.Equal(t, 7, outer.got[0].Col)
	assert.Equal(t, vxfw.BubblePhase, outer.phases[0])

	_, err = r.Dispatch(vaxis.Mouse{Col: 30, Row: 15})
	require.NoError(t, err)
	assert.Len(t, inner.got, 1, "outside the inner box")
	assert.Len(t, outer.got, 2)
}

func TestDispatchStopsWhenConsumed(t *testing.T) {
	inner := &box{size: vxfw.Size{Width: 10, Height: 5}, consume: true}
	outer := &box{
		size:     vxfw.Size{Width: 40, Height: 20},
		children: []placed{{w: inner}},
	}
	r := New(outer)
	draw(t, r)

	cmds, err := r.Dispatch(vaxis.Mouse{Col: 1, Row: 1})
	require.NoError(t, err)
	assert.Len(t, inner.got, 1)
	assert.Empty(t, outer.got)
	assert.True(t, consumes(cmds))
}

func TestDispatchTopmostFirst(t *testing.T) {
	under := &box{size: vxfw.Size{Width: 10, Height: 10}, consume: true}
	over := &box{size: vxfw.Size{Width: 1, Height: 10}, consume: true}
	root := &box{
		size: vxfw.Size{Width: 10, Height: 10},
		children: []placed{
			{col: 9, row: 0, z: 1, w: over},
			{w: under},
		},
	}
	r := New(root)
	draw(t, r)

	_, err := r.Dispatch(vaxis.Mouse{Col: 9, Row: 2})
	require.NoError(t, err)
	require.Len(t, over.got, 1)
	assert.Equal(t, 0, over.got[0].Col)
	assert.Empty(t, under.got)
}

func TestCaptureConsumesMouseOnly(t *testing.T) {
	root := &box{size: vxfw.Size{Width: 10, Height: 10}}
	r := New(root)
	draw(t, r)

	cmd, err := r.CaptureEvent(vaxis.Mouse{Col: 1, Row: 1})
	require.NoError(t, err)
	assert.True(t, consumes(cmd))

	cmd, err = r.CaptureEvent(vaxis.Key{Keycode: 'a'})
	require.NoError(t, err)
	assert.Nil(t, cmd)

	_, err = r.HandleEvent(vxfw.Init{}, vxfw.TargetPhase)
	require.NoError(t, err)
	assert.Equal(t, 1, root.inits)
}
