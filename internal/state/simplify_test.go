package state

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/tdewolff/test"
)

func pts(xy ...float64) []Point {
	ps := make([]Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		ps = append(ps, Point{xy[i], xy[i+1]})
	}
	return ps
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		p         []Point
		tolerance float64
		r         []Point
	}{
		{pts(0, 0, 5, 5, 10, 0), 0, pts(0, 0, 5, 5, 10, 0)},
		{pts(0, 0, 1, 0, 2, 0), 0, pts(0, 0, 1, 0, 2, 0)},
		{pts(0, 0, 5, 5, 10, 0), 1, pts(0, 0, 5, 5, 10, 0)},
		{pts(0, 0, 5, 5, 10, 0), 6, pts(0, 0, 10, 0)},
		{pts(0, 0, 1, 0.5, 2, 0, 3, 0.5, 4, 0), 1, pts(0, 0, 4, 0)},
		{pts(0, 0, 1, 0.5, 2, 0, 3, 0.5, 4, 0), 0.4, pts(0, 0, 1, 0.5, 4, 0)},
		{pts(0, 0, 10, 10), 15, pts(0, 0, 10, 10)},
		{pts(3, 4), 15, pts(3, 4)},
		{nil, 15, nil},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.p, tt.tolerance), func(t *testing.T) {
			test.T(t, Simplify(tt.p, tt.tolerance), tt.r)
		})
	}
}

func TestSimplifyDoesNotModifyInput(t *testing.T) {
	p := pts(0, 0, 1, 0.5, 2, 0, 3, 0.5, 4, 0)
	orig := append([]Point(nil), p...)
	Simplify(p, 1)
	test.T(t, p, orig)
}

func randomPolyline(r *rand.Rand, n int) []Point {
	p := make([]Point, n)
	x, y := 0.0, 0.0
	for i := range p {
		x += r.Float64()*20 - 5
		y += r.Float64()*20 - 10
		p[i] = Point{x, y}
	}
	return p
}

func TestSimplifyProperties(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		p := randomPolyline(r, 2+r.Intn(60))
		tolerance := []float64{0, 0.5, 2, 15, 100}[i%5]

		once := Simplify(p, tolerance)
		test.T(t, Simplify(once, tolerance), once, "idempotent")
		test.T(t, once[0], p[0], "first point kept")
		test.T(t, once[len(once)-1], p[len(p)-1], "last point kept")
		test.That(t, len(once) <= len(p))
	}
}

func TestPathString(t *testing.T) {
	tests := []struct {
		p []Point
		r string
	}{
		{pts(0, 0, 5, 5, 10, 0), "M0,0 L5,5 L10,0"},
		{pts(3, 4), "M3,4 L3,4"},
		{pts(1.5, 2.25, -3, 0.125), "M1.5,2.25 L-3,0.125"},
		{nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.r, func(t *testing.T) {
			test.String(t, PathString(tt.p), tt.r)
		})
	}
}

func TestQuantize(t *testing.T) {
	test.Float(t, Quantize(4.7, true), 4)
	test.Float(t, Quantize(-0.2, true), -1)
	test.Float(t, Quantize(4.7, false), 4.7)
	test.String(t, FormatNumber(math.Copysign(0, -1)), "0")
}

func TestSimplifyOptions(t *testing.T) {
	opts := DefaultSimplifyOptions
	test.Float(t, opts.Tolerance(), 15)
	test.Float(t, opts.CurrentTolerance(), 0)

	off := false
	amount := 3.0
	merged := opts.Merge(SimplifyOverrides{SimplifyPaths: &off, Amount: &amount})
	test.T(t, merged, SimplifyOptions{SimplifyPaths: false, SimplifyCurrentPath: false, Amount: 3, RoundPoints: true})
	test.Float(t, merged.Tolerance(), 0)

	on := true
	live := opts.Merge(SimplifyOverrides{SimplifyCurrentPath: &on})
	test.Float(t, live.CurrentTolerance(), 15)
}
