package scroll_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~rockorager/gridscroll/scroll"
)

// fakeScroller is a Scroller which applies every position immediately
type fakeScroller struct {
	name    string
	extent  scroll.Extent
	pos     scroll.Position
	emitter scroll.Emitter

	sets      int
	destroyed int
}

func newFake(name string) *fakeScroller {
	return &fakeScroller{
		name: name,
		extent: scroll.Extent{
			Content: scroll.Size{Width: 80, Height: 500},
			View:    scroll.Size{Width: 40, Height: 20},
		},
	}
}

func (f *fakeScroller) ScrollPosition() scroll.Position {
	return f.pos
}

func (f *fakeScroller) SetScrollPosition(pos scroll.Position, immediate bool) {
	f.sets += 1
	f.scrollTo(pos)
}

// scrollTo simulates user input
func (f *fakeScroller) scrollTo(pos scroll.Position) {
	pos = f.extent.Clamp(pos)
	if pos == f.pos {
		return
	}
	f.pos = pos
	f.emitter.Emit(pos)
}

func (f *fakeScroller) OnScroll(fn func(scroll.Position)) func() {
	return f.emitter.Subscribe(fn)
}

func (f *fakeScroller) Destroy() {
	f.destroyed += 1
	f.emitter.Reset()
}

func TestNativeScrollForwardsToOverlay(t *testing.T) {
	native, overlay := newFake("native"), newFake("overlay")
	frames := &scroll.FrameQueue{}
	s := scroll.New(native, overlay, frames)
	defer s.Close()

	native.scrollTo(scroll.Position{X: 3, Y: 42})

	assert.Equal(t, scroll.Position{X: 3, Y: 42}, overlay.ScrollPosition())
	assert.Equal(t, scroll.Forwarding, s.State())
	// the echo from the overlay must not be written back to the native side
	assert.Equal(t, 0, native.sets)
	assert.Equal(t, 1, overlay.sets)
	assert.Equal(t, 1, s.Stats().Suppressed)

	frames.Flush()
	assert.Equal(t, scroll.Idle, s.State())
	assert.Equal(t, 0, frames.Pending())
}

func TestOverlayScrollForwardsToNative(t *testing.T) {
	native, overlay := newFake("native"), newFake("overlay")
	frames := &scroll.FrameQueue{}
	s := scroll.New(native, overlay, frames)
	defer s.Close()

	overlay.scrollTo(scroll.Position{Y: 480})

	assert.Equal(t, scroll.Position{Y: 480}, native.ScrollPosition())
	assert.Equal(t, 0, overlay.sets)
	assert.Equal(t, 1, native.sets)
	assert.Equal(t, scroll.Stats{Forwarded: 1, Suppressed: 1}, s.Stats())
}

func TestGuardReleasedAfterOneFrame(t *testing.T) {
	native, overlay := newFake("native"), newFake("overlay")
	frames := &scroll.FrameQueue{}
	s := scroll.New(native, overlay, frames)
	defer s.Close()

	native.scrollTo(scroll.Position{Y: 10})
	frames.Flush()
	overlay.scrollTo(scroll.Position{Y: 20})

	assert.Equal(t, scroll.Position{Y: 20}, native.ScrollPosition())
	assert.Equal(t, 2, s.Stats().Forwarded)
}

func TestRacingInputIsReconciled(t *testing.T) {
	native, overlay := newFake("native"), newFake("overlay")
	frames := &scroll.FrameQueue{}
	s := scroll.New(native, overlay, frames)
	defer s.Close()

	// wheel on the native side, then a drag on the overlay within the same
	// frame
	native.scrollTo(scroll.Position{Y: 10})
	overlay.scrollTo(scroll.Position{Y: 200})

	// the drag was suppressed by the guard
	assert.Equal(t, scroll.Position{Y: 10}, native.ScrollPosition())

	frames.Flush()
	assert.Equal(t, scroll.Position{Y: 200}, native.ScrollPosition())
	assert.Equal(t, 1, s.Stats().Reconciled)

	frames.Flush()
	assert.Equal(t, scroll.Idle, s.State())
}

func TestConvergesWithinOneFrame(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for run := 0; run < 200; run += 1 {
		native, overlay := newFake("native"), newFake("overlay")
		frames := &scroll.FrameQueue{}
		s := scroll.New(native, overlay, frames)

		n := rng.IntN(50) + 1
		for i := 0; i < n; i += 1 {
			pos := scroll.Position{X: rng.IntN(60), Y: rng.IntN(520)}
			switch rng.IntN(3) {
			case 0:
				native.scrollTo(pos)
			case 1:
				overlay.scrollTo(pos)
			case 2:
				frames.Flush()
			}
		}
		frames.Flush()
		require.Equal(t, native.ScrollPosition(), overlay.ScrollPosition(), "run %d", run)
		s.Close()
	}
}

func TestCloseRemovesSubscriptions(t *testing.T) {
	native, overlay := newFake("native"), newFake("overlay")
	frames := &scroll.FrameQueue{}
	s := scroll.New(native, overlay, frames)
	require.Equal(t, 1, native.emitter.Len())
	require.Equal(t, 1, overlay.emitter.Len())

	s.Close()
	s.Close()
	assert.Equal(t, 0, native.emitter.Len())
	assert.Equal(t, 0, overlay.emitter.Len())

	native.scrollTo(scroll.Position{Y: 5})
	assert.Equal(t, scroll.Position{}, overlay.ScrollPosition())
}

func TestCloseDuringForward(t *testing.T) {
	native, overlay := newFake("native"), newFake("overlay")
	frames := &scroll.FrameQueue{}
	s := scroll.New(native, overlay, frames)

	native.scrollTo(scroll.Position{Y: 5})
	overlay.scrollTo(scroll.Position{Y: 50})
	s.Close()
	frames.Flush()

	assert.Equal(t, scroll.Idle, s.State())
	assert.Equal(t, scroll.Position{Y: 5}, native.ScrollPosition())
}

func TestMissingTargetSkipsSync(t *testing.T) {
	native := newFake("native")
	frames := &scroll.FrameQueue{}
	s := scroll.New(native, nil, frames)
	defer s.Close()

	native.scrollTo(scroll.Position{Y: 5})
	assert.Equal(t, 0, native.emitter.Len())
	assert.Equal(t, scroll.Stats{}, s.Stats())
	assert.Equal(t, 0, frames.Pending())
}
