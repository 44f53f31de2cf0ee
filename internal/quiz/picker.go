package quiz

import "math/rand"

// Picker returns an index in [0, n). It is only called with n > 0.
type Picker func(n int) int

func UniformPicker(n int) int {
	return rand.Intn(n)
}

func pickOne[T any](candidates []T, pick Picker) (T, bool) {
	var zero T
	if len(candidates) == 0 {
		return zero, false
	}
	return candidates[pick(len(candidates))], true
}
