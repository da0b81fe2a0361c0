package gamemath

import (
	stdmath "math"

	"github.com/yohamta/donburi/features/math"
)

// Direction is one of the eight compass headings used for facing.
type Direction int

const (
	N Direction = iota
	NE
	E
	SE
	S
	SW
	W
	NW
)

// DirectionCount is the number of compass sectors.
const DirectionCount = 8

const (
	// SectorWidth is the angular width of one compass sector in degrees.
	SectorWidth = 360.0 / DirectionCount
	// DefaultSectorOffset centres each sector on its heading.
	DefaultSectorOffset = SectorWidth / 2
)

var directionNames = [DirectionCount]string{
	"North", "North East", "East", "South East",
	"South", "South West", "West", "North West",
}

var directionShort = [DirectionCount]string{
	"n", "ne", "e", "se", "s", "sw", "w", "nw",
}

func (d Direction) String() string {
	if !d.Valid() {
		return "Unknown"
	}
	return directionNames[d]
}

// Short returns the lowercase abbreviation used in texture names.
func (d Direction) Short() string {
	if !d.Valid() {
		return "?"
	}
	return directionShort[d]
}

// Valid reports whether d is one of the eight headings.
func (d Direction) Valid() bool {
	return d >= N && d <= NW
}

// IsDiagonal reports whether d is NE, SE, SW or NW.
func (d Direction) IsDiagonal() bool {
	return d.Valid() && d%2 == 1
}

// AngleToDirection maps an angle in degrees (0 = north, clockwise) to the
// nearest compass heading.
func AngleToDirection(degrees float64) Direction {
	return AngleToDirectionWithOffset(degrees, DefaultSectorOffset)
}

// AngleToDirectionWithOffset is AngleToDirection with a custom half-sector
// offset. Sector k covers [45k - offset, 45k + 45 - offset).
func AngleToDirectionWithOffset(degrees, offset float64) Direction {
	degrees = stdmath.Mod(degrees, 360)
	if degrees < 0 {
		degrees += 360
	}

	sector := int(stdmath.Floor((degrees + offset) / SectorWidth))
	sector %= DirectionCount
	if sector < 0 {
		sector += DirectionCount
	}
	return Direction(sector)
}

// Degrees returns the heading angle measured from north toward east for a
// 2D-space delta. Arguments are passed to atan2 as (east, north).
func Degrees(dx, dy float64) float64 {
	return stdmath.Atan2(dx, dy) * (180.0 / stdmath.Pi)
}

// DirectionBetween returns the heading of travel from one 2D point to another.
func DirectionBetween(from, to math.Vec2, offset float64) Direction {
	return AngleToDirectionWithOffset(Degrees(to.X-from.X, to.Y-from.Y), offset)
}
