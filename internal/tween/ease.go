// Package tween drives time-bounded transitions. A single Driver advances every active
// transition once per frame; a Sequence starts each of its steps when the previous
// step starts, which gives the staggered card cascade.
package tween

import (
	"fmt"
	"strings"

	"cogentcore.org/core/math32"
)

// EaseFunc maps linear progress in [0,1] to eased progress.
type EaseFunc func(t float32) float32

func Linear(t float32) float32 { return t }

func SineInOut(t float32) float32 {
	return -(math32.Cos(math32.Pi*t) - 1) / 2
}

func QuadInOut(t float32) float32 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}

func CubicInOut(t float32) float32 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

func CubicOut(t float32) float32 {
	u := 1 - t
	return 1 - u*u*u
}

var easings = map[string]EaseFunc{
	"linear":       Linear,
	"sine-in-out":  SineInOut,
	"quad-in-out":  QuadInOut,
	"cubic-in-out": CubicInOut,
	"cubic-out":    CubicOut,
}

// ByName looks up an easing curve by its config name, e.g. "sine-in-out".
func ByName(name string) (EaseFunc, error) {
	if e, ok := easings[strings.ToLower(strings.TrimSpace(name))]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("unknown easing %q", name)
}
