package random

import (
	"fmt"
	"math"
	"math/rand"
)

// Generates a number between min and max inclusive.
func Range(min, max int) int {
	return rangeFrom(defaultSource{}, min, max)
}

func rangeFrom(src Source, min, max int) int {
	if min > max {
		panic(fmt.Sprintf("min cannot be greater than max: min=%d max=%d", min, max))
	}

	if min == max {
		return min
	}

	// Unsigned arithmetic wraps, so the offset from min covers the full int range.
	span := uint64(max) - uint64(min)
	return int(uint64(min) + uniform(src, span))
}

// uniform returns a number in [0, span] without modulo bias.
func uniform(src Source, span uint64) uint64 {
	if span == math.MaxUint64 {
		return src.Uint64()
	}

	n := span + 1
	limit := math.MaxUint64 - (math.MaxUint64%n+1)%n
	for {
		if v := src.Uint64(); v <= limit {
			return v % n
		}
	}
}

// Source is a uniform source of randomness.
type Source interface {
	Uint64() uint64
}

type defaultSource struct{}

func (defaultSource) Uint64() uint64 { return rand.Uint64() }
