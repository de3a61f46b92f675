package maths

import (
	stderrors "errors"
	"linspace/common/errors"
	"math"
	"testing"
)

const tolerance = 1e-12

func TestLinspaceProperties(t *testing.T) {
	cases := []struct {
		name       string
		start, end float64
		num        int
	}{
		{"ascending", -5, 5, 1000},
		{"descending", 3, -7, 11},
		{"two points", 0, 1, 2},
		{"tiny step", 1, 1 + 1e-9, 50},
		{"constant", 2.5, 2.5, 8},
		{"full float range", -math.MaxFloat64, math.MaxFloat64, 3},
		{"full float range five", -math.MaxFloat64, math.MaxFloat64, 5},
		{"full float range descending", math.MaxFloat64, -math.MaxFloat64, 9},
		{"subnormal", 0, 5e-324, 3},
		{"huge same sign", 1e308, math.MaxFloat64, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			xs, err := Linspace(c.start, c.end, c.num)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(xs) != c.num {
				t.Fatalf("len = %d, want %d", len(xs), c.num)
			}
			if xs[0] != c.start {
				t.Errorf("first = %v, want %v", xs[0], c.start)
			}
			if xs[len(xs)-1] != c.end {
				t.Errorf("last = %v, want %v", xs[len(xs)-1], c.end)
			}
			n := float64(c.num - 1)
			step := c.end/n - c.start/n
			scale := math.Max(1, math.Max(math.Abs(c.start), math.Abs(c.end)))
			for i := 1; i < len(xs); i++ {
				if math.IsNaN(xs[i]) || math.IsInf(xs[i], 0) {
					t.Fatalf("xs[%d] = %v, want a finite value", i, xs[i])
				}
				d := xs[i] - xs[i-1]
				if math.Abs(d-step) > tolerance*scale {
					t.Fatalf("step %d = %v, want %v", i, d, step)
				}
				if c.end >= c.start && d < 0 {
					t.Fatalf("not non-decreasing at %d", i)
				}
				if c.end < c.start && d > 0 {
					t.Fatalf("not non-increasing at %d", i)
				}
			}
		})
	}
}

func TestLinspaceMinusFiveToFive(t *testing.T) {
	xs, err := Linspace(-5.0, 5.0, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if xs[0] != -5.0 || xs[999] != 5.0 {
		t.Fatalf("endpoints = %v, %v", xs[0], xs[999])
	}
	want := -5 + 500*(10.0/999)
	if math.Abs(xs[500]-want) > tolerance {
		t.Errorf("xs[500] = %v, want %v", xs[500], want)
	}
	if math.Abs(xs[500]-0.005005005) > 1e-9 {
		t.Errorf("xs[500] = %v, want about 0.005005", xs[500])
	}
}

func TestLinspaceTwoPoints(t *testing.T) {
	xs, err := Linspace(0.0, 1.0, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(xs) != 2 || xs[0] != 0 || xs[1] != 1 {
		t.Errorf("Linspace(0, 1, 2) = %v, want [0 1]", xs)
	}
}

func TestLinspaceConstant(t *testing.T) {
	xs, err := Linspace(-1.25, -1.25, 7)
	if err != nil {
		t.Fatal(err)
	}
	for i, x := range xs {
		if x != -1.25 {
			t.Errorf("xs[%d] = %v, want -1.25", i, x)
		}
	}
}

func TestLinspaceFloat32(t *testing.T) {
	xs, err := Linspace(float32(-1), float32(1), 5)
	if err != nil {
		t.Fatal(err)
	}
	want := []float32{-1, -0.5, 0, 0.5, 1}
	for i := range want {
		if xs[i] != want[i] {
			t.Errorf("xs[%d] = %v, want %v", i, xs[i], want[i])
		}
	}
}

func TestLinspaceFloat32Extremes(t *testing.T) {
	xs, err := Linspace(float32(-math.MaxFloat32), float32(math.MaxFloat32), 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []float32{-math.MaxFloat32, 0, math.MaxFloat32}
	for i := range want {
		if xs[i] != want[i] {
			t.Errorf("xs[%d] = %v, want %v", i, xs[i], want[i])
		}
	}

	step, err := Step(float32(-math.MaxFloat32), float32(math.MaxFloat32), 3)
	if err != nil || step != math.MaxFloat32 {
		t.Errorf("Step = %v, %v, want MaxFloat32", step, err)
	}
}

func TestLinspaceInvalid(t *testing.T) {
	cases := []struct {
		name       string
		start, end float64
		num        int
	}{
		{"one point", 0, 1, 1},
		{"zero points", 0, 1, 0},
		{"negative points", 0, 1, -3},
		{"nan start", math.NaN(), 1, 10},
		{"inf end", 0, math.Inf(1), 10},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			xs, err := Linspace(c.start, c.end, c.num)
			if !stderrors.Is(err, errors.InvalidArgumentError) {
				t.Fatalf("err = %v, want InvalidArgument", err)
			}
			if xs != nil {
				t.Errorf("expected nil sequence, got %v", xs)
			}
		})
	}
}

func TestStep(t *testing.T) {
	step, err := Step(-5.0, 5.0, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if step != 10.0/999 {
		t.Errorf("step = %v, want %v", step, 10.0/999)
	}
	if _, err := Step(0.0, 1.0, 1); err == nil {
		t.Errorf("expected error for num = 1")
	}

	step, err = Step(-math.MaxFloat64, math.MaxFloat64, 3)
	if err != nil || step != math.MaxFloat64 {
		t.Errorf("Step(-max, max, 3) = %v, %v, want MaxFloat64", step, err)
	}
	if _, err := Step(-math.MaxFloat64, math.MaxFloat64, 2); !stderrors.Is(err, errors.InvalidArgumentError) {
		t.Errorf("Step(-max, max, 2): err = %v, want InvalidArgument", err)
	}
	if step, err := Step(0.0, 5e-324, 2); err != nil || step != 5e-324 {
		t.Errorf("subnormal step = %v, %v", step, err)
	}
}

func TestLogspace(t *testing.T) {
	xs, err := Logspace(0.0, 3.0, 4, 10.0)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{1, 10, 100, 1000}
	for i := range want {
		if math.Abs(xs[i]-want[i]) > 1e-9*want[i] {
			t.Errorf("xs[%d] = %v, want %v", i, xs[i], want[i])
		}
	}

	for _, base := range []float64{0, -2, math.Inf(1), math.NaN()} {
		if _, err := Logspace(0.0, 1.0, 3, base); !stderrors.Is(err, errors.InvalidArgumentError) {
			t.Errorf("base %v: err = %v, want InvalidArgument", base, err)
		}
	}
	if _, err := Logspace(0.0, 1.0, 1, 2.0); !stderrors.Is(err, errors.InvalidArgumentError) {
		t.Errorf("num 1: err = %v, want InvalidArgument", err)
	}
}

func TestLogspaceOverflow(t *testing.T) {
	xs, err := Logspace(0.0, 400.0, 3, 10.0)
	if !stderrors.Is(err, errors.InvalidArgumentError) {
		t.Errorf("err = %v, want InvalidArgument", err)
	}
	if xs != nil {
		t.Errorf("expected no values, got %v", xs)
	}
	if _, err := Logspace(float32(0), float32(50), 2, float32(10)); !stderrors.Is(err, errors.InvalidArgumentError) {
		t.Errorf("float32: err = %v, want InvalidArgument", err)
	}

	// tiny values underflow towards zero, which is representable
	xs, err = Logspace(-400.0, 0.0, 2, 10.0)
	if err != nil {
		t.Fatal(err)
	}
	if xs[0] != 0 || xs[1] != 1 {
		t.Errorf("xs = %v, want [0 1]", xs)
	}
}

func TestElementwise(t *testing.T) {
	in := []float64{-2, 0, 1.5}
	abs := Abs1(in)
	if abs[0] != 2 || abs[1] != 0 || abs[2] != 1.5 {
		t.Errorf("Abs1 = %v", abs)
	}
	if in[0] != -2 {
		t.Errorf("Abs1 modified its input")
	}
	exp := Exp1([]float64{0, 1})
	if exp[0] != 1 || math.Abs(exp[1]-math.E) > tolerance {
		t.Errorf("Exp1 = %v", exp)
	}
	sq := Pow1D([]float64{3, -2}, 2)
	if sq[0] != 9 || sq[1] != 4 {
		t.Errorf("Pow1D = %v", sq)
	}
	sum := Scale1([]float64{1, 2}, 3)
	AddTo(sum, []float64{1, 1})
	if sum[0] != 4 || sum[1] != 7 {
		t.Errorf("Scale1/AddTo = %v", sum)
	}
}
