package frame

import (
	"testing"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fill draws a surface of its maximum size
type fill struct {
	size vxfw.Size
}

func (f *fill) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	f.size = ctx.Max
	return vxfw.NewSurface(ctx.Max.Width, ctx.Max.Height, f), nil
}

func row(s vxfw.Surface, r uint16) string {
	out := ""
	for c := uint16(0); c < s.Size.Width; c += 1 {
		out += s.Buffer[r*s.Size.Width+c].Grapheme
	}
	return out
}

func TestFrame(t *testing.T) {
	child := &fill{}
	f := New(child, "Users")
	s, err := f.Draw(vxfw.DrawContext{
		Max:        vxfw.Size{Width: 12, Height: 4},
		Characters: vaxis.Characters,
	})
	require.NoError(t, err)

	assert.Equal(t, "╭─ Users ──╮", row(s, 0))
	assert.Equal(t, "│", s.Buffer[12].Grapheme)
	assert.Equal(t, "╰──────────╯", row(s, 3))

	require.Len(t, s.Children, 1)
	assert.Equal(t, vxfw.RelativePoint{Col: 1, Row: 1}, s.Children[0].Origin)
	assert.Equal(t, vxfw.Size{Width: 10, Height: 2}, child.size)
}

func TestFrameLongTitle(t *testing.T) {
	f := New(nil, "a very long title")
	s, err := f.Draw(vxfw.DrawContext{
		Max:        vxfw.Size{Width: 10, Height: 3},
		Characters: vaxis.Characters,
	})
	require.NoError(t, err)
	assert.Equal(t, "╭─ a ver─╮", row(s, 0))
	assert.Empty(t, s.Children)
}
