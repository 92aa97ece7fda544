package greatarc

import (
	"errors"
	"math"
	"testing"
)

const tol = 1e-9

func vecsClose(a, b Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestComputeQuarterCircle(t *testing.T) {
	// Unit sphere, start on +X, end on +Y: a 90 degree arc.
	arc, err := Compute(Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if math.Abs(arc.R-1) > tol {
		t.Errorf("R = %v, want 1", arc.R)
	}
	if math.Abs(arc.Angle-math.Pi/2) > tol {
		t.Errorf("Angle = %v, want pi/2", arc.Angle)
	}
	if math.Abs(arc.Dist-math.Pi/2) > tol {
		t.Errorf("Dist = %v, want pi/2", arc.Dist)
	}

	// V3 must be orthogonal to V1, length R, in the plane of V1 and V2.
	if dot := arc.V1.Dot(arc.V3); math.Abs(dot) > tol {
		t.Errorf("V1.Dot(V3) = %v, want 0", dot)
	}
	if n := arc.V3.Norm(); math.Abs(n-arc.R) > tol {
		t.Errorf("V3 norm = %v, want %v", n, arc.R)
	}
	if !vecsClose(arc.V3, Vec3{0, 1, 0}, tol) {
		t.Errorf("V3 = %v, want (0,1,0)", arc.V3)
	}
}

func TestComputeBasisInvariants(t *testing.T) {
	tests := []struct {
		name               string
		start, end, center Vec3
	}{
		{"unit sphere axes", Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{}},
		{"small angle", Vec3{1, 0, 0}, Vec3{0.9999999, 0.000447, 0}, Vec3{}},
		{"near antipodal", Vec3{1, 0, 0}, Vec3{-0.9999999, 0.000447, 0}, Vec3{}},
		{"offset center", Vec3{11, 5, 5}, Vec3{1, 15, 5}, Vec3{1, 5, 5}},
		{"solar scale", Vec3{695508, 0, 0}, Vec3{0, 0, 695508}, Vec3{}},
		{"tilted plane", Vec3{3, 4, 0}, Vec3{0, 4, 3}, Vec3{0, 4, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arc, err := Compute(tt.start, tt.end, tt.center)
			if err != nil {
				t.Fatalf("Compute() error = %v", err)
			}

			relTol := tol * arc.R

			if dot := arc.V1.Dot(arc.V3); math.Abs(dot) > relTol*arc.R {
				t.Errorf("V1.Dot(V3) = %v, want 0", dot)
			}
			if n := arc.V3.Norm(); math.Abs(n-arc.R) > relTol {
				t.Errorf("V3 norm = %v, want R = %v", n, arc.R)
			}
			if arc.Angle < 0 || arc.Angle > math.Pi {
				t.Errorf("Angle = %v, want in [0, pi]", arc.Angle)
			}
			if arc.Dist < 0 {
				t.Errorf("Dist = %v, want >= 0", arc.Dist)
			}
			if math.Abs(arc.Dist-arc.R*arc.Angle) > relTol {
				t.Errorf("Dist = %v, want R*Angle = %v", arc.Dist, arc.R*arc.Angle)
			}
		})
	}
}

func TestComputeDegenerate(t *testing.T) {
	tests := []struct {
		name               string
		start, end, center Vec3
	}{
		{"antipodal through center", Vec3{1, 0, 0}, Vec3{-1, 0, 0}, Vec3{}},
		{"parallel radius vectors", Vec3{1, 0, 0}, Vec3{2, 0, 0}, Vec3{}},
		{"start equals end", Vec3{0, 1, 0}, Vec3{0, 1, 0}, Vec3{}},
		{"start at center", Vec3{}, Vec3{1, 0, 0}, Vec3{}},
		{"end at center", Vec3{1, 0, 0}, Vec3{}, Vec3{}},
		{"all coincident", Vec3{2, 2, 2}, Vec3{2, 2, 2}, Vec3{2, 2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Compute(tt.start, tt.end, tt.center); !errors.Is(err, ErrDegenerateArc) {
				t.Errorf("Compute() error = %v, want ErrDegenerateArc", err)
			}
		})
	}
}

func TestSampleEndpoints(t *testing.T) {
	tests := []struct {
		name               string
		start, end, center Vec3
		count              int
	}{
		{"two points", Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{}, 2},
		{"many points", Vec3{1, 0, 0}, Vec3{0, 0, 1}, Vec3{}, 100},
		{"offset center", Vec3{11, 5, 5}, Vec3{1, 15, 5}, Vec3{1, 5, 5}, 25},
		{"solar radius", Vec3{695508, 0, 0}, Vec3{0, 695508, 0}, Vec3{}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arc, err := Compute(tt.start, tt.end, tt.center)
			if err != nil {
				t.Fatalf("Compute() error = %v", err)
			}
			points, err := arc.Sample(tt.count)
			if err != nil {
				t.Fatalf("Sample(%d) error = %v", tt.count, err)
			}

			if len(points) != tt.count {
				t.Fatalf("len(points) = %d, want %d", len(points), tt.count)
			}

			relTol := tol * arc.R
			if !vecsClose(points[0], tt.start, relTol) {
				t.Errorf("points[0] = %v, want start %v", points[0], tt.start)
			}
			if !vecsClose(points[len(points)-1], tt.end, relTol) {
				t.Errorf("points[last] = %v, want end %v", points[len(points)-1], tt.end)
			}

			// Every sample must stay on the sphere.
			for i, p := range points {
				r := p.Sub(tt.center).Norm()
				if math.Abs(r-arc.R) > relTol {
					t.Errorf("points[%d] radius = %v, want %v", i, r, arc.R)
				}
			}
		})
	}
}

func TestSampleSinglePoint(t *testing.T) {
	arc, err := Compute(Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	points, err := arc.Sample(1)
	if err != nil {
		t.Fatalf("Sample(1) error = %v", err)
	}
	if len(points) != 1 {
		t.Fatalf("len(points) = %d, want 1", len(points))
	}
	if !vecsClose(points[0], Vec3{1, 0, 0}, tol) {
		t.Errorf("points[0] = %v, want start", points[0])
	}
}

func TestSampleInvalidCount(t *testing.T) {
	arc, err := Compute(Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	for _, count := range []int{0, -1, -100} {
		if _, err := arc.Sample(count); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Sample(%d) error = %v, want ErrInvalidArgument", count, err)
		}
	}
}

func TestSampleQuarterCircleMidpoint(t *testing.T) {
	points, err := SampleArc(Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{}, 3)
	if err != nil {
		t.Fatalf("SampleArc() error = %v", err)
	}

	want := []Vec3{
		{1, 0, 0},
		{math.Sqrt2 / 2, math.Sqrt2 / 2, 0},
		{0, 1, 0},
	}
	for i := range want {
		if !vecsClose(points[i], want[i], tol) {
			t.Errorf("points[%d] = %v, want %v", i, points[i], want[i])
		}
	}
}

func TestSampleSymmetry(t *testing.T) {
	start := Vec3{3, 4, 0}
	end := Vec3{0, 4, 3}
	center := Vec3{0, 4, 0}
	const n = 17

	forward, err := SampleArc(start, end, center, n)
	if err != nil {
		t.Fatalf("SampleArc(forward) error = %v", err)
	}
	backward, err := SampleArc(end, start, center, n)
	if err != nil {
		t.Fatalf("SampleArc(backward) error = %v", err)
	}

	for i := 0; i < n; i++ {
		if !vecsClose(forward[i], backward[n-1-i], tol*3) {
			t.Errorf("forward[%d] = %v, want reversed backward %v", i, forward[i], backward[n-1-i])
		}
	}
}

func TestDistanceMatchesAngle(t *testing.T) {
	tests := []struct {
		name               string
		start, end, center Vec3
	}{
		{"unit quarter", Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{}},
		{"offset center", Vec3{11, 5, 5}, Vec3{1, 15, 5}, Vec3{1, 5, 5}},
		{"solar scale", Vec3{695508, 0, 0}, Vec3{0, 0, 695508}, Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist, err := Distance(tt.start, tt.end, tt.center)
			if err != nil {
				t.Fatalf("Distance() error = %v", err)
			}
			sep, err := AngularSeparation(tt.start, tt.end, tt.center)
			if err != nil {
				t.Fatalf("AngularSeparation() error = %v", err)
			}

			r := tt.start.Sub(tt.center).Norm()
			if math.Abs(dist-r*sep) > tol*r {
				t.Errorf("Distance = %v, want r*separation = %v", dist, r*sep)
			}
		})
	}
}

func TestAngularSeparationKnownAngles(t *testing.T) {
	tests := []struct {
		name       string
		start, end Vec3
		wantRad    float64
	}{
		{"90 degrees", Vec3{1, 0, 0}, Vec3{0, 1, 0}, math.Pi / 2},
		{"60 degrees", Vec3{1, 0, 0}, Vec3{0.5, math.Sqrt(3) / 2, 0}, math.Pi / 3},
		{"120 degrees", Vec3{1, 0, 0}, Vec3{-0.5, math.Sqrt(3) / 2, 0}, 2 * math.Pi / 3},
		{"near pi", Vec3{1, 0, 0}, Vec3{-math.Cos(1e-6), math.Sin(1e-6), 0}, math.Pi - 1e-6},
		{"tiny angle", Vec3{1, 0, 0}, Vec3{math.Cos(1e-8), math.Sin(1e-8), 0}, 1e-8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sep, err := AngularSeparation(tt.start, tt.end, Vec3{})
			if err != nil {
				t.Fatalf("AngularSeparation() error = %v", err)
			}
			if math.Abs(sep-tt.wantRad) > tol {
				t.Errorf("AngularSeparation() = %v, want %v", sep, tt.wantRad)
			}
		})
	}
}

func TestSampleArcPropagatesErrors(t *testing.T) {
	if _, err := SampleArc(Vec3{1, 0, 0}, Vec3{-1, 0, 0}, Vec3{}, 10); !errors.Is(err, ErrDegenerateArc) {
		t.Errorf("SampleArc(antipodal) error = %v, want ErrDegenerateArc", err)
	}
	if _, err := SampleArc(Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{}, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("SampleArc(count=0) error = %v, want ErrInvalidArgument", err)
	}
}
