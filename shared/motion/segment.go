// Package motion turns a grid path into timed, direction-aware movement and
// plays it back against the hero's 2D position.
package motion

import (
	"github.com/yohamta/donburi/features/math"

	"github.com/automoto/isodroid/shared/gamemath"
)

const (
	// DefaultVelocityFactor is the speed in tile widths per second.
	DefaultVelocityFactor = 2.0
	// DefaultDiagonalMultiplier stretches diagonal steps. It is tuned by eye
	// for the 2:1 projection rather than being sqrt(2).
	DefaultDiagonalMultiplier = 1.4
)

// Params are the tile dimensions and timing constants used to build segments.
type Params struct {
	TileWidth          float64
	TileHeight         float64
	Velocity           float64 // pixels per second in 2D space
	DiagonalMultiplier float64
	SectorOffset       float64 // degrees, see gamemath.AngleToDirectionWithOffset
}

// DefaultParams returns the stock timing for a tile size.
func DefaultParams(tileWidth, tileHeight float64) Params {
	return Params{
		TileWidth:          tileWidth,
		TileHeight:         tileHeight,
		Velocity:           tileWidth * DefaultVelocityFactor,
		DiagonalMultiplier: DefaultDiagonalMultiplier,
		SectorOffset:       gamemath.DefaultSectorOffset,
	}
}

// StepDuration is the time for one full orthogonal tile step.
func (p Params) StepDuration() float64 {
	return p.TileWidth / p.Velocity
}

// Segment is one leg of travel: move linearly to Target over Duration
// seconds, facing Facing from the moment the leg begins.
type Segment struct {
	Target   math.Vec2
	Duration float64
	Facing   gamemath.Direction
}

// Build converts path (path[0] being the hero's current cell) into
// len(path)-1 segments. from is the hero's true 2D position, which may be
// part way across a tile when an earlier move was interrupted.
//
// The first leg is timed by its real distance from "from". Every later leg
// is one tile step, stretched by DiagonalMultiplier when diagonal.
func Build(path []gamemath.Cell, from math.Vec2, p Params) []Segment {
	if len(path) < 2 {
		return nil
	}

	segments := make([]Segment, 0, len(path)-1)
	prev := from
	for i := 1; i < len(path); i++ {
		target := gamemath.GridIndexToTwoD(path[i], p.TileWidth, p.TileHeight)
		facing := gamemath.DirectionBetween(prev, target, p.SectorOffset)

		var duration float64
		if i == 1 {
			duration = gamemath.Distance(target, from) / p.Velocity
		} else {
			multiplier := 1.0
			if facing.IsDiagonal() {
				multiplier = p.DiagonalMultiplier
			}
			duration = multiplier * p.StepDuration()
		}

		segments = append(segments, Segment{
			Target:   target,
			Duration: duration,
			Facing:   facing,
		})
		prev = target
	}

	return segments
}

// TotalDuration sums the durations of segments.
func TotalDuration(segments []Segment) float64 {
	total := 0.0
	for _, s := range segments {
		total += s.Duration
	}
	return total
}
