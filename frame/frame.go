// Package frame converts between angular coordinate representations and the
// flat Cartesian triples consumed by the greatarc package, keeping frame and
// unit bookkeeping out of the pure geometry.
package frame

import (
	"github.com/litescript/ls-sunarc/greatarc"
)

// Coord is an angular position in a spherical coordinate frame. Radius is
// the distance from the frame origin in the adapter's unit; zero means "on
// the adapter's reference sphere".
type Coord struct {
	LonDeg float64
	LatDeg float64
	Radius float64
}

// Adapter flattens frame coordinates to Cartesian triples in a declared
// linear unit and lifts Cartesian sequences back into the frame.
type Adapter interface {
	// ToCartesian converts a coordinate to a Cartesian triple in the
	// adapter's unit, relative to the adapter's origin.
	ToCartesian(c Coord) (greatarc.Vec3, error)

	// FromCartesian converts a sequence of Cartesian triples in the
	// adapter's unit back to frame coordinates.
	FromCartesian(points []greatarc.Vec3) ([]Coord, error)

	// Origin returns the frame's declared origin. It is the sphere center
	// when the caller does not supply one.
	Origin() greatarc.Vec3

	// Unit names the linear unit of the Cartesian triples, e.g. "km".
	Unit() string
}

// ArcThrough samples count points along the great arc from start to end,
// expressed in the adapter's frame. If center is nil the adapter's origin is
// used as the sphere center.
func ArcThrough(a Adapter, start, end Coord, center *Coord, count int) ([]Coord, error) {
	s, e, c, err := flatten(a, start, end, center)
	if err != nil {
		return nil, err
	}
	points, err := greatarc.SampleArc(s, e, c, count)
	if err != nil {
		return nil, err
	}
	return a.FromCartesian(points)
}

// Distance returns the spherical distance between start and end in the
// adapter's unit. If center is nil the adapter's origin is used.
func Distance(a Adapter, start, end Coord, center *Coord) (float64, error) {
	s, e, c, err := flatten(a, start, end, center)
	if err != nil {
		return 0, err
	}
	return greatarc.Distance(s, e, c)
}

// Separation returns the angular separation between start and end in
// radians. If center is nil the adapter's origin is used.
func Separation(a Adapter, start, end Coord, center *Coord) (float64, error) {
	s, e, c, err := flatten(a, start, end, center)
	if err != nil {
		return 0, err
	}
	return greatarc.AngularSeparation(s, e, c)
}

func flatten(a Adapter, start, end Coord, center *Coord) (s, e, c greatarc.Vec3, err error) {
	s, err = a.ToCartesian(start)
	if err != nil {
		return
	}
	e, err = a.ToCartesian(end)
	if err != nil {
		return
	}
	if center == nil {
		c = a.Origin()
		return
	}
	c, err = a.ToCartesian(*center)
	return
}
