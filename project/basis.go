package project

import (
	"linspace/common/errors"
	"linspace/common/utils/maths"
	"math"
)

// STO-nG contraction coefficients and exponents for a zeta = 1.0 1s
// Slater orbital, n = 1..3.
var (
	stoNGCoeff = [][]float64{
		{1.00000},
		{0.678914, 0.430129},
		{0.444635, 0.535328, 0.154329},
	}
	stoNGExpon = [][]float64{
		{0.270950},
		{0.151623, 0.851819},
		{0.109818, 0.405771, 2.227660},
	}
)

const MaxGaussians = 3

// STO evaluates the normalised 1s Slater type orbital at each radius.
func STO(zeta float64, r []float64) ([]float64, error) {
	if !(zeta > 0) || math.IsInf(zeta, 0) {
		return nil, errors.Errorf(errors.InvalidArgumentCode, "zeta must be positive, got %v", zeta)
	}
	norm := math.Sqrt(zeta * zeta * zeta / math.Pi)
	return maths.Scale1(maths.Exp1(maths.Scale1(r, -zeta)), norm), nil
}

// CGF evaluates the STO-nG contracted Gaussian fit of STO(zeta, r).
// Exponents scale with zeta squared.
func CGF(n int, zeta float64, r []float64) ([]float64, error) {
	if n < 1 || n > MaxGaussians {
		return nil, errors.Errorf(errors.InvalidArgumentCode, "STO-nG needs 1 <= n <= %d, got %d", MaxGaussians, n)
	}
	if !(zeta > 0) || math.IsInf(zeta, 0) {
		return nil, errors.Errorf(errors.InvalidArgumentCode, "zeta must be positive, got %v", zeta)
	}
	r2 := maths.Pow1D(r, 2)
	psi := make([]float64, len(r))
	for k, d := range stoNGCoeff[n-1] {
		a := stoNGExpon[n-1][k] * zeta * zeta
		norm := d * math.Pow(2*a/math.Pi, 0.75)
		maths.AddTo(psi, maths.Scale1(maths.Exp1(maths.Scale1(r2, -a)), norm))
	}
	return psi, nil
}
