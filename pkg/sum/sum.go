// Package sum adds up lists of integers.
package sum

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow indicates the sum does not fit in an int.
var ErrOverflow = errors.New("integer overflow")

// Calculate returns the sum of numbers. An empty list sums to zero.
func Calculate(numbers []int) (int, error) {
	total := 0
	for i, n := range numbers {
		if (n > 0 && total > math.MaxInt-n) || (n < 0 && total < math.MinInt-n) {
			return 0, fmt.Errorf("%w: adding %d at index %d", ErrOverflow, n, i)
		}
		total += n
	}
	return total, nil
}
