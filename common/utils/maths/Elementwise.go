package maths

import "math"

func Abs1(arr []float64) []float64 {
	result := make([]float64, len(arr))
	for i := 0; i < len(arr); i++ {
		result[i] = math.Abs(arr[i])
	}
	return result
}

func Exp1(arr []float64) []float64 {
	result := make([]float64, len(arr))
	for i := 0; i < len(arr); i++ {
		result[i] = math.Exp(arr[i])
	}
	return result
}

func Pow1D(data []float64, pow float64) []float64 {
	res := make([]float64, len(data))
	for i, val := range data {
		res[i] = math.Pow(val, pow)
	}
	return res
}

// Scale1 multiplies every element by k.
func Scale1(arr []float64, k float64) []float64 {
	result := make([]float64, len(arr))
	for i := 0; i < len(arr); i++ {
		result[i] = arr[i] * k
	}
	return result
}

// AddTo adds src into dst element by element. Both must have the same length.
func AddTo(dst, src []float64) {
	if len(dst) != len(src) {
		panic("AddTo: length mismatch")
	}
	for i := range src {
		dst[i] += src[i]
	}
}
