// Package pricing contains the pure cost and market analytics the platform is
// built around. Every function here is a synchronous computation over records
// already in memory: inputs are never mutated, there is no I/O, and callers
// own persistence and concurrency.
package pricing

import "errors"

// ErrEmptyInput is returned by aggregates that are undefined on an empty
// sequence.
var ErrEmptyInput = errors.New("empty input")

// Sum adds up a sequence. Unlike the other aggregates it is defined on an
// empty slice, yielding 0.
func Sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

// Min returns the smallest value in a non-empty sequence.
func Min(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min, nil
}

// Max returns the largest value in a non-empty sequence.
func Max(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max, nil
}

// Mean returns the arithmetic mean of a non-empty sequence.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	return Sum(values) / float64(len(values)), nil
}
