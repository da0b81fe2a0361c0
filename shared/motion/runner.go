package motion

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/features/math"

	"github.com/automoto/isodroid/shared/gamemath"
)

// State is the runner's place in the Idle <-> Moving cycle.
type State int

const (
	Idle State = iota
	Moving
)

func (s State) String() string {
	if s == Moving {
		return "Move"
	}
	return "Idle"
}

// Runner plays a queue of segments against a 2D position. Each leg is a pair
// of linear gween tweens (one per axis) started from wherever the previous
// leg ended.
type Runner struct {
	pos    math.Vec2
	facing gamemath.Direction

	queue   []Segment
	index   int
	elapsed float64
	tweenX  *gween.Tween
	tweenY  *gween.Tween

	// OnFacing is called whenever a leg begins.
	OnFacing func(d gamemath.Direction)
	// OnArrive is called once when the last leg completes.
	OnArrive func(pos math.Vec2)
}

// NewRunner returns an idle runner at pos.
func NewRunner(pos math.Vec2, facing gamemath.Direction) *Runner {
	return &Runner{pos: pos, facing: facing}
}

// Position is the current 2D position.
func (r *Runner) Position() math.Vec2 { return r.pos }

// Facing is the heading of the current or last leg.
func (r *Runner) Facing() gamemath.Direction { return r.facing }

// State reports Moving while any leg is pending.
func (r *Runner) State() State {
	if r.index < len(r.queue) {
		return Moving
	}
	return Idle
}

// Remaining is the number of legs not yet finished, including the current one.
func (r *Runner) Remaining() int {
	return len(r.queue) - r.index
}

// Destination returns the target of the last queued leg.
func (r *Runner) Destination() (math.Vec2, bool) {
	if r.State() == Idle {
		return math.Vec2{}, false
	}
	return r.queue[len(r.queue)-1].Target, true
}

// Start drops any pending legs and begins segments from the current
// position. The first leg's facing applies immediately.
func (r *Runner) Start(segments []Segment) {
	r.queue = segments
	r.index = 0
	r.tweenX, r.tweenY = nil, nil
	if len(segments) == 0 {
		return
	}
	r.begin()
}

// Stop cancels all pending legs, leaving the position where it is.
func (r *Runner) Stop() {
	r.queue = nil
	r.index = 0
	r.tweenX, r.tweenY = nil, nil
}

// Teleport cancels motion and places the runner at pos.
func (r *Runner) Teleport(pos math.Vec2, facing gamemath.Direction) {
	r.Stop()
	r.pos = pos
	r.facing = facing
}

// Advance moves time forward by dt seconds. Time left over after a leg
// completes carries into the next one.
func (r *Runner) Advance(dt float64) {
	for dt > 0 && r.State() == Moving {
		seg := r.queue[r.index]
		left := seg.Duration - r.elapsed
		if dt < left {
			r.elapsed += dt
			x, _ := r.tweenX.Update(float32(dt))
			y, _ := r.tweenY.Update(float32(dt))
			r.pos = math.Vec2{X: float64(x), Y: float64(y)}
			return
		}

		dt -= left
		r.pos = seg.Target
		r.index++
		if r.index >= len(r.queue) {
			r.finish()
			return
		}
		r.begin()
	}
}

func (r *Runner) begin() {
	seg := r.queue[r.index]
	r.elapsed = 0
	r.tweenX = gween.New(float32(r.pos.X), float32(seg.Target.X), float32(seg.Duration), ease.Linear)
	r.tweenY = gween.New(float32(r.pos.Y), float32(seg.Target.Y), float32(seg.Duration), ease.Linear)

	r.facing = seg.Facing
	if r.OnFacing != nil {
		r.OnFacing(seg.Facing)
	}
}

func (r *Runner) finish() {
	r.queue = nil
	r.index = 0
	r.tweenX, r.tweenY = nil, nil
	if r.OnArrive != nil {
		r.OnArrive(r.pos)
	}
}
