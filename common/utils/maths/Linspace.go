package maths

import (
	"linspace/common/errors"
	"math"

	"golang.org/x/exp/constraints"
)

func checkBounds[T constraints.Float](start, end T, num int) error {
	if num < 2 {
		return errors.Errorf(errors.InvalidArgumentCode, "num must be at least 2, got %d", num)
	}
	if !isFinite(float64(start)) || !isFinite(float64(end)) {
		return errors.Errorf(errors.InvalidArgumentCode, "bounds must be finite, got [%v, %v]", start, end)
	}
	return nil
}

// Step returns the spacing between consecutive elements of
// Linspace(start, end, num). It fails when the spacing itself is not
// representable, e.g. Step(-MaxFloat64, MaxFloat64, 2).
func Step[T constraints.Float](start, end T, num int) (T, error) {
	if err := checkBounds(start, end, num); err != nil {
		return 0, err
	}
	n := T(num - 1)
	step := (end - start) / n
	if !isFinite(float64(step)) {
		// end - start overflowed; divide first
		step = end/n - start/n
	}
	if !isFinite(float64(step)) {
		return 0, errors.Errorf(errors.InvalidArgumentCode,
			"step between %v and %v over %d points overflows", start, end, num)
	}
	return step, nil
}

// Linspace returns num evenly spaced values over [start, end], like
// numpy.linspace. The first element is exactly start and the last exactly
// end.
func Linspace[T constraints.Float](start, end T, num int) ([]T, error) {
	if err := checkBounds(start, end, num); err != nil {
		return nil, err
	}
	n := T(num - 1)
	result := make([]T, num)
	step := (end - start) / n
	if isFinite(float64(step)) {
		for i := 0; i < num; i++ {
			result[i] = start + T(i)*step
		}
	} else {
		// Bounds of opposite sign near the float limit. Weighting each
		// bound keeps every term, and their sum, finite.
		for i := 0; i < num; i++ {
			result[i] = start*(T(num-1-i)/n) + end*(T(i)/n)
		}
	}
	result[0] = start
	result[num-1] = end
	return result, nil
}

// Logspace returns num values spaced evenly on a log scale, from
// base**lo to base**hi inclusive. Values beyond the float range are an
// error rather than +Inf.
func Logspace[T constraints.Float](lo, hi T, num int, base T) ([]T, error) {
	if !(base > 0) || !isFinite(float64(base)) {
		return nil, errors.Errorf(errors.InvalidArgumentCode, "base must be positive and finite, got %v", base)
	}
	res, err := Linspace(lo, hi, num)
	if err != nil {
		return nil, err
	}
	limit := maxFloat[T]()
	for i, x := range res {
		v := math.Pow(float64(base), float64(x))
		if math.IsInf(v, 0) || v > limit {
			return nil, errors.Errorf(errors.InvalidArgumentCode,
				"%v**%v overflows at element %d", base, x, i)
		}
		res[i] = T(v)
	}
	return res, nil
}

func maxFloat[T constraints.Float]() float64 {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return math.MaxFloat32
	}
	return math.MaxFloat64
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
