package demo

import (
	"testing"
	"time"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"git.sr.ht/~rockorager/vaxis/vxfw/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~rockorager/gridscroll/scroll"
	"git.sr.ht/~rockorager/gridscroll/widgets/overlay"
	"git.sr.ht/~rockorager/gridscroll/widgets/router"
)

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time {
	return c.t
}

func (c *clock) tick() {
	c.t = c.t.Add(16 * time.Millisecond)
}

func drawContext(w, h uint16) vxfw.DrawContext {
	return vxfw.DrawContext{
		Max:        vxfw.Size{Width: w, Height: h},
		Characters: vaxis.Characters,
	}
}

// settle draws c until it is no longer busy
func settle(t *testing.T, c Component, clk *clock) {
	t.Helper()
	for i := 0; i < 1000; i += 1 {
		_, err := c.Draw(drawContext(100, 40))
		require.NoError(t, err)
		if !c.Busy() {
			return
		}
		clk.tick()
	}
	t.Fatal("component never settled")
}

func TestDataIsSeeded(t *testing.T) {
	a := People(20, NewRand(7))
	b := People(20, NewRand(7))
	assert.Equal(t, a, b)

	ids := map[string]bool{}
	for _, p := range a {
		assert.GreaterOrEqual(t, p.Age, 20)
		assert.Less(t, p.Age, 70)
		assert.Contains(t, Cities, p.City)
		ids[p.ID] = true
	}
	assert.Len(t, ids, 20)
	assert.Equal(t, "Person 1", a[0].Name)
	assert.Equal(t, "person1@example.com", a[0].Email)

	ms := Members(50, NewRand(3))
	require.Len(t, ms, 50)
	for _, m := range ms {
		assert.GreaterOrEqual(t, m.Age, 20)
		assert.Less(t, m.Age, 80)
	}
}

func TestGridsUseDataIDs(t *testing.T) {
	h := NewHover(DefaultHoverOptions(), NewRand(1))
	r, ok := h.Grid().Table.RowAt(0)
	require.True(t, ok)
	assert.Equal(t, h.data[0].ID, r.ID)

	s := NewSynced(DefaultSyncedOptions(), NewRand(1))
	m, ok := s.Grid().Table.RowAt(0)
	require.True(t, ok)
	assert.Equal(t, s.data[0].ID, m.ID)
}

func TestThousands(t *testing.T) {
	tests := map[int]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		1234567: "1,234,567",
		-1000:   "-1,000",
	}
	for n, want := range tests {
		assert.Equal(t, want, thousands(n))
	}
}

func TestPanelDrawsOneLinePerRow(t *testing.T) {
	p := &panel{lines: []*text.Text{
		styled("総データ数", dimStyle),
		text.New("ok"),
	}}
	s, err := p.Draw(drawContext(6, 5))
	require.NoError(t, err)
	assert.Equal(t, vxfw.Size{Width: 6, Height: 2}, s.Size)
	require.Len(t, s.Children, 2)
	assert.Equal(t, 1, s.Children[1].Origin.Row)
	assert.Equal(t, dimStyle, s.Children[0].Surface.Buffer[0].Style)

	s, err = p.Draw(drawContext(6, 1))
	require.NoError(t, err)
	assert.Len(t, s.Children, 1)
}

func TestHoverScrollsToBottomAndTop(t *testing.T) {
	clk := &clock{t: time.Unix(1000, 0)}
	h := NewHover(DefaultHoverOptions(), NewRand(1))
	h.Now = clk.now
	require.NoError(t, h.Mount())
	settle(t, h, clk)

	vp := h.Grid().Viewport()
	sb := h.Scrollbar()
	require.NotNil(t, sb)
	require.True(t, vp.Extent().Content.Height > vp.Extent().View.Height)

	h.ScrollToBottom()
	assert.True(t, h.Busy())
	settle(t, h, clk)
	assert.Equal(t, vp.Extent().Max().Y, vp.ScrollPosition().Y)
	assert.Equal(t, vp.ScrollPosition(), sb.ScrollPosition())

	h.ScrollToTop()
	settle(t, h, clk)
	assert.Equal(t, 0, vp.ScrollPosition().Y)
	assert.Equal(t, vp.ScrollPosition(), sb.ScrollPosition())
}

func TestHoverScrollbarFollowsPointer(t *testing.T) {
	clk := &clock{t: time.Unix(1000, 0)}
	h := NewHover(DefaultHoverOptions(), NewRand(1))
	h.Now = clk.now
	require.NoError(t, h.Mount())
	settle(t, h, clk)

	sb := h.Scrollbar()
	v, _ := sb.Visible()
	assert.False(t, v, "hidden until hovered")

	sb.PointerEnter()
	v, _ = sb.Visible()
	assert.True(t, v)

	sb.PointerLeave()
	clk.t = clk.t.Add(500 * time.Millisecond)
	v, _ = sb.Visible()
	assert.True(t, v, "still inside the delay")

	clk.t = clk.t.Add(400 * time.Millisecond)
	v, _ = sb.Visible()
	assert.False(t, v)
}

func TestHoverDetailsToggle(t *testing.T) {
	h := NewHover(DefaultHoverOptions(), NewRand(1))
	before := h.notes().height()
	cmd, err := h.HandleEvent(vaxis.Key{Keycode: 't'}, vxfw.BubblePhase)
	require.NoError(t, err)
	assert.NotNil(t, cmd)
	assert.Greater(t, h.notes().height(), before)
}

func TestUnmountReleasesListeners(t *testing.T) {
	h := NewHover(DefaultHoverOptions(), NewRand(1))
	destroyed := 0
	h.binding.onDestroy = func() { destroyed += 1 }
	require.NoError(t, h.Mount())

	vp := h.Grid().Viewport()
	sb := h.Scrollbar()
	assert.Equal(t, 1, vp.Listeners())
	assert.Equal(t, 1, sb.Listeners())

	h.Unmount()
	assert.Equal(t, 0, vp.Listeners())
	assert.Equal(t, 0, sb.Listeners())
	assert.True(t, sb.Destroyed())
	assert.Equal(t, 1, destroyed)
	assert.Nil(t, h.Scrollbar())

	h.Unmount()
	assert.Equal(t, 1, destroyed)

	require.NoError(t, h.Mount())
	assert.Equal(t, 1, vp.Listeners())
	assert.NotSame(t, sb, h.Scrollbar())
	h.Unmount()
	assert.Equal(t, 2, destroyed)
}

func TestUnmountedComponentDraws(t *testing.T) {
	s := NewSynced(DefaultSyncedOptions(), NewRand(1))
	_, err := s.Draw(drawContext(80, 24))
	require.NoError(t, err)
	assert.False(t, s.Busy())

	h := NewHover(DefaultHoverOptions(), NewRand(1))
	_, err = h.Draw(drawContext(80, 24))
	require.NoError(t, err)
}

func TestSyncedIsVirtualized(t *testing.T) {
	s := NewSynced(DefaultSyncedOptions(), NewRand(1))
	require.NoError(t, s.Mount())
	defer s.Unmount()
	_, err := s.Draw(drawContext(80, 24))
	require.NoError(t, err)
	assert.Equal(t, 1000, s.Grid().Table.Len())
	assert.Less(t, s.Grid().RenderedRows(), 50)
}

func TestSyncedDragMovesGrid(t *testing.T) {
	clk := &clock{t: time.Unix(1000, 0)}
	s := NewSynced(DefaultSyncedOptions(), NewRand(1))
	s.Now = clk.now
	require.NoError(t, s.Mount())
	defer s.Unmount()

	sb := s.Scrollbar()
	sb.PointerEnter()
	r := router.New(s)
	_, err := r.Draw(drawContext(80, 24))
	require.NoError(t, err)

	// two title rows, then the frame. The gutter is the last column
	// inside the frame
	col, top := 78, 3
	_, err = r.Dispatch(vaxis.Mouse{
		Col:       col,
		Row:       top,
		Button:    vaxis.MouseLeftButton,
		EventType: vaxis.EventPress,
	})
	require.NoError(t, err)
	require.True(t, sb.Dragging())

	_, err = r.Dispatch(vaxis.Mouse{
		Col:       col,
		Row:       top + 10,
		Button:    vaxis.MouseLeftButton,
		EventType: vaxis.EventMotion,
	})
	require.NoError(t, err)

	vp := s.Grid().Viewport()
	assert.Greater(t, vp.ScrollPosition().Y, 0)
	assert.Equal(t, sb.ScrollPosition(), vp.ScrollPosition())

	// the next frame ends the forward
	_, err = r.Draw(drawContext(80, 24))
	require.NoError(t, err)
	assert.Equal(t, scroll.Idle, s.binding.sync.State())
}

func TestSyncedReleaseOverGridEndsDrag(t *testing.T) {
	clk := &clock{t: time.Unix(1000, 0)}
	s := NewSynced(DefaultSyncedOptions(), NewRand(1))
	s.Now = clk.now
	require.NoError(t, s.Mount())
	defer s.Unmount()

	sb := s.Scrollbar()
	_, err := s.body.HandleEvent(vxfw.MouseEnter{}, vxfw.TargetPhase)
	require.NoError(t, err)
	r := router.New(s)
	_, err = r.Draw(drawContext(80, 24))
	require.NoError(t, err)

	col, top := 78, 3
	_, err = r.Dispatch(vaxis.Mouse{
		Col:       col,
		Row:       top,
		Button:    vaxis.MouseLeftButton,
		EventType: vaxis.EventPress,
	})
	require.NoError(t, err)
	require.True(t, sb.Dragging())

	// released over the grid, away from the bar
	_, err = r.Dispatch(vaxis.Mouse{
		Col:       30,
		Row:       top + 4,
		Button:    vaxis.MouseLeftButton,
		EventType: vaxis.EventRelease,
	})
	require.NoError(t, err)
	assert.False(t, sb.Dragging())

	// moving over the gutter without a button
	_, err = r.Dispatch(vaxis.Mouse{
		Col:       col,
		Row:       top + 12,
		Button:    vaxis.MouseNoButton,
		EventType: vaxis.EventMotion,
	})
	require.NoError(t, err)
	_, err = r.Draw(drawContext(80, 24))
	require.NoError(t, err)
	assert.False(t, sb.Dragging())
	assert.Equal(t, 0, sb.ScrollPosition().Y)
	assert.Equal(t, 0, s.Grid().Viewport().ScrollPosition().Y)

	_, err = s.body.HandleEvent(vxfw.MouseLeave{}, vxfw.TargetPhase)
	require.NoError(t, err)
	clk.t = clk.t.Add(2 * time.Second)
	v, _ := sb.Visible()
	assert.False(t, v, "hidden after the delay")
}

func TestSyncedMountRejectsHiddenAxis(t *testing.T) {
	opts := DefaultSyncedOptions()
	opts.Scrollbar.OverflowY = overlay.OverflowHidden
	s := NewSynced(opts, NewRand(1))
	assert.Error(t, s.Mount())
	assert.Nil(t, s.Scrollbar())
}
