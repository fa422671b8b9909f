// Package convert provides checked numeric narrowing.
//
// Every function panics instead of wrapping or saturating when the input does
// not fit the target type. An out-of-range value here means the caller handed
// the renderer geometry it cannot represent, which is a programming error.
package convert

import (
	"fmt"
	"math"
)

func outOfRange(v any, target string) string {
	return fmt.Sprintf("mathil: cannot convert %v to %s: out of range", v, target)
}

// RoundInt32 rounds f to the nearest integer and returns it as an int.
// It panics if the result does not fit in an int32 or f is NaN.
func RoundInt32(f float64) int {
	r := math.Round(f)
	if math.IsNaN(r) || r > math.MaxInt32 || r < math.MinInt32 {
		panic(outOfRange(f, "int32"))
	}
	return int(r)
}

// RoundUint16 rounds f to the nearest integer in [0, 65535].
func RoundUint16(f float64) uint16 {
	r := math.Round(f)
	if math.IsNaN(r) || r > math.MaxUint16 || r < 0 {
		panic(outOfRange(f, "uint16"))
	}
	return uint16(r)
}

// RoundUint32 rounds f to the nearest integer in [0, 4294967295].
func RoundUint32(f float64) uint32 {
	r := math.Round(f)
	if math.IsNaN(r) || r > math.MaxUint32 || r < 0 {
		panic(outOfRange(f, "uint32"))
	}
	return uint32(r)
}

// Uint32 narrows a non-negative int to uint32.
func Uint32(n int) uint32 {
	if n < 0 || uint64(n) > math.MaxUint32 {
		panic(outOfRange(n, "uint32"))
	}
	return uint32(n)
}

// Uint8 converts a value in [0, 255] to a byte, rounding to nearest.
func Uint8(f float64) uint8 {
	r := math.Round(f)
	if math.IsNaN(r) || r > math.MaxUint8 || r < 0 {
		panic(outOfRange(f, "uint8"))
	}
	return uint8(r)
}
