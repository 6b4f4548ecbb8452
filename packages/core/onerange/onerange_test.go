package onerange

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClosed(t *testing.T) {
	r := Closed[uint8](0, 255)

	assert.Equal(t, uint8(0), r.Start())
	assert.Equal(t, uint8(255), r.End())
	assert.Equal(t, uint64(1), r.Step())

	assert.True(t, r.Contains(3))
	assert.True(t, r.Contains(0))
	assert.True(t, r.Contains(255))
}

func TestHalfOpen(t *testing.T) {
	r := HalfOpen[int64](0, 100)

	assert.Equal(t, int64(99), r.End())

	assert.True(t, r.Contains(3))
	assert.True(t, r.Contains(99))
	assert.False(t, r.Contains(100))
	assert.False(t, r.Contains(-1))
}

func TestHalfOpenEqualsClosed(t *testing.T) {
	halfOpen := HalfOpen[int16](-40, 40)
	closed := Closed[int16](-40, 39)

	assert.Equal(t, closed, halfOpen)
	for probe := int16(-45); probe <= 45; probe++ {
		assert.Equal(t, closed.Contains(probe), halfOpen.Contains(probe), "probe %d", probe)
	}
}

func TestClosedWithStep(t *testing.T) {
	r := ClosedWithStep[uint32](0, 10, 3)

	assert.Equal(t, uint32(10), r.End())
	assert.Equal(t, uint64(3), r.Step())

	// the step only affects iteration, not containment
	assert.True(t, r.Contains(4))
	assert.True(t, r.Contains(10))
	assert.False(t, r.Contains(11))
}

func TestHalfOpenWithStep(t *testing.T) {
	// the exclusive end is rewritten before the step applies, so the step walks [0, 9]
	r := HalfOpenWithStep[uint32](0, 10, 3)

	assert.Equal(t, uint32(9), r.End())
	assert.Equal(t, []uint32{0, 3, 6, 9}, r.Slice())
}

func TestOpenStart(t *testing.T) {
	{
		r := OpenStartHalfOpen[int32](123)

		assert.Equal(t, MinValue[int32](), r.Start())
		assert.Equal(t, int32(122), r.End())
		assert.True(t, r.Contains(3))
		assert.True(t, r.Contains(-2147483648))
		assert.False(t, r.Contains(123))
	}

	{
		r := OpenStartClosed[uint8](5)

		assert.Equal(t, uint8(0), r.Start())
		assert.Equal(t, []uint8{0, 1, 2, 3, 4, 5}, r.Slice())
	}

	{
		r := OpenStartClosedWithStep[uint8](10, 4)

		assert.Equal(t, []uint8{0, 4, 8}, r.Slice())
	}

	{
		r := OpenStartHalfOpenWithStep[uint8](10, 4)

		assert.Equal(t, []uint8{0, 4, 8}, r.Slice())
		assert.Equal(t, uint8(9), r.End())
	}
}

func TestInvertedRangeIsEmpty(t *testing.T) {
	r := Closed[int8](5, 3)

	assert.True(t, r.IsEmpty())
	assert.False(t, r.Contains(4))
	assert.Empty(t, r.Slice())

	iterator := r.Iterator()
	assert.False(t, iterator.HasNext())

	_, exists := iterator.Next()
	assert.False(t, exists)
}

func TestHalfOpenUnderflowPanics(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		require.True(t, errors.Is(err, ErrBoundUnderflow))
	}()

	HalfOpen[uint8](3, 0)
}

func TestHalfOpenUnderflowPanicsSigned(t *testing.T) {
	require.Panics(t, func() {
		HalfOpen[int16](0, -32768)
	})
	require.Panics(t, func() {
		HalfOpenWithStep[uint64](1, 0, 2)
	})
}

func TestZeroStepPanics(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		require.True(t, errors.Is(err, ErrZeroStep))
	}()

	ClosedWithStep[uint8](0, 5, 0)
}

func TestSerialization(t *testing.T) {
	r := ClosedWithStep[uint16](7, 4242, 13)

	serialized := r.Bytes()
	restored, consumedBytes, err := FromBytes[uint16](serialized)
	require.NoError(t, err)

	assert.Equal(t, len(serialized), consumedBytes)
	assert.Equal(t, r, restored)
}

func TestString(t *testing.T) {
	assert.Contains(t, Closed[uint8](1, 5).String(), "Range")
}
