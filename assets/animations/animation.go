// Package animations holds frame counters for procedural sprite effects.
package animations

// Loop steps through Frames frames, holding each for TicksPerFrame updates.
type Loop struct {
	Frames        int
	TicksPerFrame int
	tick          int
	frame         int
	Cycles        int // completed passes through every frame
}

// Update advances one tick.
func (l *Loop) Update() {
	if l.Frames <= 1 {
		return
	}
	l.tick++
	if l.tick < l.TicksPerFrame {
		return
	}
	l.tick = 0
	l.frame++
	if l.frame >= l.Frames {
		l.frame = 0
		l.Cycles++
	}
}

// Frame is the current frame index.
func (l *Loop) Frame() int {
	return l.frame
}

// Restart rewinds to frame zero.
func (l *Loop) Restart() {
	l.tick = 0
	l.frame = 0
	l.Cycles = 0
}

// bobOffsets is a small hop, in pixels, played while the droid walks.
var bobOffsets = []float64{0, -1, -2, -1}

// NewBob returns the walking hop loop.
func NewBob(ticksPerFrame int) *Loop {
	return &Loop{Frames: len(bobOffsets), TicksPerFrame: ticksPerFrame}
}

// BobOffset is the vertical sprite offset for a hop frame.
func BobOffset(frame int) float64 {
	if frame < 0 || frame >= len(bobOffsets) {
		return 0
	}
	return bobOffsets[frame]
}
