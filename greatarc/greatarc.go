package greatarc

import (
	"errors"
	"fmt"
	"math"
)

// collinearTol is the relative tolerance below which the cross product of the
// two radius vectors is treated as zero, leaving the arc's plane undefined.
const collinearTol = 1e-12

var (
	// ErrDegenerateArc is returned when start, end and center are collinear
	// (including antipodal points and points coinciding with the center), so
	// the plane of the arc is undefined.
	ErrDegenerateArc = errors.New("degenerate arc: start, end and center are collinear")

	// ErrInvalidArgument is returned for requests that are malformed rather
	// than geometrically undefined, such as a non-positive sample count.
	ErrInvalidArgument = errors.New("invalid argument")
)

// GreatArc holds the derived properties of the great-circle arc from a start
// point to an end point on a sphere about a center. All fields are computed
// once by Compute and never mutated.
//
// V1 is the vector from the center to the start point and V3 is the vector in
// the plane of V1 and V2, orthogonal to V1, rescaled to the sphere radius.
// Together they form the in-plane basis in which the arc is a pure rotation:
// a point at angle theta from the start is center + V1*cos(theta) + V3*sin(theta).
type GreatArc struct {
	Start  Vec3
	End    Vec3
	Center Vec3

	V1 Vec3 // center to start
	V2 Vec3 // center to end
	V3 Vec3 // in-plane, orthogonal to V1, length R

	R     float64 // sphere radius, ‖V1‖
	Angle float64 // inner angle between V1 and V2, radians, in [0, pi]
	Dist  float64 // arc length on the sphere, R * Angle
}

// Compute derives the great arc from start to end on the sphere centered at
// center. Start and end are assumed to lie at equal radius from the center;
// the radius is taken from the start point.
//
// Compute returns ErrDegenerateArc if either point coincides with the center
// or if the three points are collinear (parallel or antipodal radius
// vectors), since the arc's plane is then undefined.
func Compute(start, end, center Vec3) (GreatArc, error) {
	v1 := start.Sub(center)
	v2 := end.Sub(center)

	r := v1.Norm()
	if r == 0 {
		return GreatArc{}, fmt.Errorf("%w: start coincides with center", ErrDegenerateArc)
	}
	if v2.Norm() == 0 {
		return GreatArc{}, fmt.Errorf("%w: end coincides with center", ErrDegenerateArc)
	}

	cross := v1.Cross(v2)
	crossNorm := cross.Norm()
	if crossNorm <= collinearTol*r*v2.Norm() {
		return GreatArc{}, ErrDegenerateArc
	}

	// The double cross product lies in the plane of v1 and v2 and is exactly
	// orthogonal to v1, giving the second basis vector of the arc's plane.
	v3 := cross.Cross(v1).Normalized().Scale(r)

	// atan2 of the cross norm and dot product stays accurate near 0 and pi,
	// where an arccos formulation loses precision.
	angle := math.Atan2(crossNorm, v1.Dot(v2))

	return GreatArc{
		Start:  start,
		End:    end,
		Center: center,
		V1:     v1,
		V2:     v2,
		V3:     v3,
		R:      r,
		Angle:  angle,
		Dist:   r * angle,
	}, nil
}

// InnerAngle returns the angle subtended at the center by the arc, in
// radians, in [0, pi].
func (a GreatArc) InnerAngle() float64 {
	return a.Angle
}

// Distance returns the arc length on the sphere, in the unit of the input
// vectors.
func (a GreatArc) Distance() float64 {
	return a.Dist
}

// Sample returns count points along the arc, evenly spaced in angle from the
// start to the end inclusive. The first point equals the start and, for
// count >= 2, the last point equals the end, within floating tolerance. For
// count == 1 only the start point is returned.
//
// Sample returns ErrInvalidArgument if count < 1.
func (a GreatArc) Sample(count int) ([]Vec3, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: sample count must be >= 1, got %d", ErrInvalidArgument, count)
	}

	points := make([]Vec3, count)
	points[0] = a.Center.Add(a.V1)
	if count == 1 {
		return points, nil
	}

	step := a.Angle / float64(count-1)
	for i := 1; i < count; i++ {
		theta := step * float64(i)
		p := a.V1.Scale(math.Cos(theta)).Add(a.V3.Scale(math.Sin(theta))).Add(a.Center)
		points[i] = p
	}
	return points, nil
}

// SampleArc computes the arc from start to end about center and returns count
// points along it. See Compute and GreatArc.Sample for the error conditions.
func SampleArc(start, end, center Vec3, count int) ([]Vec3, error) {
	arc, err := Compute(start, end, center)
	if err != nil {
		return nil, err
	}
	return arc.Sample(count)
}

// Distance returns the spherical distance between start and end about center,
// in the unit of the input vectors.
func Distance(start, end, center Vec3) (float64, error) {
	arc, err := Compute(start, end, center)
	if err != nil {
		return 0, err
	}
	return arc.Dist, nil
}

// AngularSeparation returns the angle subtended at the center between start
// and end, in radians.
func AngularSeparation(start, end, center Vec3) (float64, error) {
	arc, err := Compute(start, end, center)
	if err != nil {
		return 0, err
	}
	return arc.Angle, nil
}
