package mathil

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Ease maps animation progress in [0, 1] onto eased progress, usually also in
// [0, 1].
type Ease func(t float64) float64

// EaseArctan is an S-curve built from arctan. It fixes 0, 1/2 and 1 and is
// steepest at 1/2; a larger a gives a sharper S. a must be non-zero.
func EaseArctan(a float64) Ease {
	return func(t float64) float64 {
		return math.Atan(2*a*t-a)/(2*math.Atan(a)) + 0.5
	}
}

// EaseTanh is like EaseArctan but built from tanh, which flattens out faster
// towards the ends.
func EaseTanh(a float64) Ease {
	return func(t float64) float64 {
		return math.Tanh(2*a*t-a)/(2*math.Tanh(a)) + 0.5
	}
}

// EaseTween adapts a gween easing function, such as ease.InOutQuad.
func EaseTween(fn ease.TweenFunc) Ease {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// EaseLinear leaves progress unchanged.
var EaseLinear = EaseTween(ease.Linear)

// Progress returns the eased fraction of the interval [start, start+duration]
// that has elapsed at timestamp, clamped to [0, 1] before easing. A nil e is
// linear.
func Progress(timestamp, start, duration float64, e Ease) float64 {
	t := 1.0
	if duration > 0 {
		t = math.Max(0, math.Min(1, (timestamp-start)/duration))
	} else if timestamp < start {
		t = 0
	}
	if e == nil {
		return t
	}
	return e(t)
}
