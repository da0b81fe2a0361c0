package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoopAdvancesAndWraps(t *testing.T) {
	l := &Loop{Frames: 3, TicksPerFrame: 2}
	var frames []int
	for i := 0; i < 7; i++ {
		l.Update()
		frames = append(frames, l.Frame())
	}
	assert.Equal(t, []int{0, 1, 1, 2, 2, 0, 0}, frames)
	assert.Equal(t, 1, l.Cycles)

	l.Restart()
	assert.Equal(t, 0, l.Frame())
	assert.Equal(t, 0, l.Cycles)
}

func TestSingleFrameLoopIsStill(t *testing.T) {
	l := &Loop{Frames: 1, TicksPerFrame: 1}
	l.Update()
	l.Update()
	assert.Equal(t, 0, l.Frame())
}

func TestBob(t *testing.T) {
	b := NewBob(1)
	seen := map[float64]bool{}
	for i := 0; i < 8; i++ {
		seen[BobOffset(b.Frame())] = true
		b.Update()
	}
	assert.True(t, seen[0])
	assert.True(t, seen[-2])
	assert.Equal(t, 0.0, BobOffset(99))
}
