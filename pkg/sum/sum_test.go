package sum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestCalculate(t *testing.T) {
	t.Parallel()

	t.Run("sanity checks", func(t *testing.T) {
		t.Parallel()

		n, err := Calculate([]int{1, 2, 3, 4, 5})
		require.NoError(t, err)
		assert.Equal(t, 15, n)

		n, err = Calculate(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, n)

		n, err = Calculate([]int{-3, 3, math.MaxInt, math.MinInt})
		require.NoError(t, err)
		assert.Equal(t, -1, n)
	})

	t.Run("reports overflow", func(t *testing.T) {
		t.Parallel()

		_, err := Calculate([]int{math.MaxInt, 1})
		assert.ErrorIs(t, err, ErrOverflow)

		_, err = Calculate([]int{math.MinInt, -1})
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("matches arbitrary precision addition", rapid.MakeCheck(func(t *rapid.T) {
		numbers := rapid.SliceOf(rapid.Int()).Draw(t, "numbers")

		got, err := Calculate(numbers)

		want := new(big.Int)
		fits := true
		for _, n := range numbers {
			want.Add(want, big.NewInt(int64(n)))
			if !want.IsInt64() || want.Int64() > math.MaxInt || want.Int64() < math.MinInt {
				fits = false
				break
			}
		}

		if !fits {
			assert.ErrorIs(t, err, ErrOverflow)
			return
		}
		require.NoError(t, err)
		assert.Equal(t, want.Int64(), int64(got))
	}))
}
