package frame

import (
	"fmt"
	"math"

	"github.com/litescript/ls-sunarc/greatarc"
	"github.com/litescript/ls-sunarc/solar"
)

// Heliographic maps heliographic longitude/latitude on a sphere to
// heliocentric Cartesian kilometers. Longitude increases eastward from the
// central meridian, latitude northward from the solar equator.
type Heliographic struct {
	radiusKm float64
}

// NewHeliographic creates a heliographic adapter for a sphere of the given
// radius in kilometers. A zero radius selects the solar radius.
func NewHeliographic(radiusKm float64) *Heliographic {
	if radiusKm == 0 {
		radiusKm = solar.RadiusKm
	}
	return &Heliographic{radiusKm: radiusKm}
}

// SphereRadiusKm returns the adapter's reference sphere radius.
func (h *Heliographic) SphereRadiusKm() float64 {
	return h.radiusKm
}

// ToCartesian implements Adapter. The X axis points through the intersection
// of the central meridian and the equator, Z through the north pole.
func (h *Heliographic) ToCartesian(c Coord) (greatarc.Vec3, error) {
	if c.LatDeg < -90 || c.LatDeg > 90 {
		return greatarc.Vec3{}, fmt.Errorf("%w: latitude %v out of range [-90, 90]",
			greatarc.ErrInvalidArgument, c.LatDeg)
	}

	r := c.Radius
	if r == 0 {
		r = h.radiusKm
	}

	lon := c.LonDeg * math.Pi / 180
	lat := c.LatDeg * math.Pi / 180

	return greatarc.Vec3{
		X: r * math.Cos(lat) * math.Cos(lon),
		Y: r * math.Cos(lat) * math.Sin(lon),
		Z: r * math.Sin(lat),
	}, nil
}

// FromCartesian implements Adapter. Longitudes are returned in (-180, 180].
func (h *Heliographic) FromCartesian(points []greatarc.Vec3) ([]Coord, error) {
	coords := make([]Coord, len(points))
	for i, p := range points {
		r := p.Norm()
		if r == 0 {
			return nil, fmt.Errorf("%w: point %d is at the frame origin",
				greatarc.ErrInvalidArgument, i)
		}
		coords[i] = Coord{
			LonDeg: math.Atan2(p.Y, p.X) * 180 / math.Pi,
			LatDeg: math.Asin(p.Z/r) * 180 / math.Pi,
			Radius: r,
		}
	}
	return coords, nil
}

// Origin implements Adapter: the center of the Sun.
func (h *Heliographic) Origin() greatarc.Vec3 {
	return greatarc.Vec3{}
}

// Unit implements Adapter.
func (h *Heliographic) Unit() string {
	return "km"
}
