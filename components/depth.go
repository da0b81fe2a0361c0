package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"

	"github.com/automoto/isodroid/shared/depthsort"
)

// Role decides which isometric layer an entity is drawn in.
type Role int

const (
	// RoleGround entities form the static lower layer and are never sorted.
	RoleGround Role = iota
	// RoleObject entities (walls) are sorted with the agents.
	RoleObject
	// RoleAgent entities move and are sorted every sort frame.
	RoleAgent
)

func (r Role) String() string {
	switch r {
	case RoleGround:
		return "Ground"
	case RoleObject:
		return "Object"
	case RoleAgent:
		return "Agent"
	}
	return "Unknown"
}

// DepthData is an entity's place in isometric draw order.
type DepthData struct {
	Role  Role
	Order int
}

var Depth = donburi.NewComponentType[DepthData]()

type isoNode struct {
	entry *donburi.Entry
}

// NewIsoNode adapts an entity with Object and Depth to the depth sorter.
func NewIsoNode(e *donburi.Entry) depthsort.Drawable {
	return isoNode{entry: e}
}

func (n isoNode) IsoPosition() math.Vec2 {
	return IsoPosition(n.entry)
}

func (n isoNode) SetDrawOrder(z int) {
	Depth.Get(n.entry).Order = z
}
