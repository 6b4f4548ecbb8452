package num128

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt128From64(t *testing.T) {
	{
		i := Int128From64(-7)

		assert.Equal(t, int64(-1), i.Hi)
		assert.Equal(t, uint64(math.MaxUint64-6), i.Lo)
		assert.True(t, i.IsNegative())
	}

	{
		i := Int128From64(7)

		assert.Equal(t, int64(0), i.Hi)
		assert.Equal(t, uint64(7), i.Lo)
		assert.False(t, i.IsNegative())
	}
}

func TestInt128Cmp(t *testing.T) {
	assert.Equal(t, -1, Int128From64(-1).Cmp(Int128From64(1)))
	assert.Equal(t, -1, Int128From64(-2).Cmp(Int128From64(-1)))
	assert.Equal(t, 0, Int128From64(-1).Cmp(Int128From64(-1)))
	assert.Equal(t, 1, Int128From64(1).Cmp(Int128From64(-1)))

	assert.Equal(t, -1, MinInt128.Cmp(MaxInt128))
	assert.Equal(t, -1, MinInt128.Cmp(Int128From64(0)))
	assert.Equal(t, 1, MaxInt128.Cmp(Int128From64(0)))
}

func TestInt128Add64(t *testing.T) {
	{
		sum, overflow := Int128From64(-3).Add64(5)
		require.False(t, overflow)
		assert.Equal(t, Int128From64(2), sum)
	}

	{
		// the carry propagates into the high limb
		sum, overflow := NewInt128(0, math.MaxUint64).Add64(1)
		require.False(t, overflow)
		assert.Equal(t, NewInt128(1, 0), sum)
	}

	{
		_, overflow := MaxInt128.Add64(1)
		assert.True(t, overflow)
	}

	{
		sum, overflow := MinInt128.Add64(1)
		require.False(t, overflow)
		assert.Equal(t, NewInt128(math.MinInt64, 1), sum)
	}
}

func TestInt128Dec(t *testing.T) {
	{
		diff, underflow := Int128From64(0).Dec()
		require.False(t, underflow)
		assert.Equal(t, Int128From64(-1), diff)
	}

	{
		diff, underflow := NewInt128(1, 0).Dec()
		require.False(t, underflow)
		assert.Equal(t, NewInt128(0, math.MaxUint64), diff)
	}

	{
		_, underflow := MinInt128.Dec()
		assert.True(t, underflow)
	}
}

func TestInt128Extrema(t *testing.T) {
	assert.Equal(t, MinInt128, Int128{}.Min())
	assert.Equal(t, MaxInt128, Int128{}.Max())
	assert.True(t, Int128{}.IsZero())
	assert.False(t, MinInt128.IsZero())
}

func TestInt128String(t *testing.T) {
	assert.Equal(t, "Int128(-42)", Int128From64(-42).String())
	assert.Equal(t, "Int128(42)", Int128From64(42).String())
	assert.Equal(t, "Int128(-170141183460469231731687303715884105728)", MinInt128.String())
	assert.Equal(t, "Int128(170141183460469231731687303715884105727)", MaxInt128.String())
}

func TestInt128Serialization(t *testing.T) {
	i := Int128From64(-123456789)

	restored, consumedBytes, err := Int128FromBytes(i.Bytes())
	require.NoError(t, err)

	assert.Equal(t, i.Length(), consumedBytes)
	assert.Equal(t, i, restored)
}
