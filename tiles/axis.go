package tiles

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/constraints"
)

// Epsilon is the tolerance used to decide that a coordinate lies on a
// cutting plane.
//
// It is only consulted for the degenerate case where both non-pivot corners
// of a straddling triangle sit on the plane. Side membership itself is always
// decided with a strict comparison.
const Epsilon = 1e-8

// IsOnPlane checks if coord is within Epsilon of a plane's coordinate.
func IsOnPlane[F constraints.Float](coord, plane F) bool {
	return math.Abs(float64(coord-plane)) < Epsilon
}

// An Axis selects one of the three principal coordinate axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// ParseAxis parses "x", "y" or "z" (case-insensitive).
func ParseAxis(s string) (Axis, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return AxisX, nil
	case "Y":
		return AxisY, nil
	case "Z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("unknown axis %q", s)
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Dimension gets the coordinate of v along the axis.
func (a Axis) Dimension(v Vertex) float64 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	case AxisZ:
		return v.Z
	}
	panic("invalid axis: " + a.String())
}

// CutEdge finds the point on segment v1-v2 whose coordinate along the axis is
// q.
//
// The endpoints must have different coordinates along the axis. The returned
// point has its axis coordinate set to exactly q, and does not depend on the
// order of v1 and v2, so faces sharing an edge get the same cut point.
// The result may differ in the last bits from interpolating directly from v1
// to v2.
func (a Axis) CutEdge(v1, v2 Vertex, q float64) Vertex {
	if a.Dimension(v2) < a.Dimension(v1) {
		v1, v2 = v2, v1
	}
	d1 := a.Dimension(v1)
	t := (q - d1) / (a.Dimension(v2) - d1)
	res := v1.Add(v2.Sub(v1).Scale(t))
	switch a {
	case AxisX:
		res.X = q
	case AxisY:
		res.Y = q
	case AxisZ:
		res.Z = q
	}
	return res
}

// A Plane is an infinite, axis-aligned cutting plane.
type Plane struct {
	Axis  Axis
	Coord float64
}

// Left checks if v is strictly on the lesser side of the plane.
//
// Points exactly on the plane are never on the left.
func (p Plane) Left(v Vertex) bool {
	return p.Axis.Dimension(v) < p.Coord
}

func (p Plane) String() string {
	return fmt.Sprintf("%s=%v", p.Axis, p.Coord)
}
