package num128

import (
	"math"
	"math/big"
	"math/bits"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"
)

// region Int128 ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Int128 is a signed 128-bit integer in two's complement representation, held as two 64-bit limbs.
type Int128 struct {
	Hi int64
	Lo uint64
}

var (
	// MinInt128 is the smallest representable Int128.
	MinInt128 = Int128{Hi: math.MinInt64}

	// MaxInt128 is the largest representable Int128.
	MaxInt128 = Int128{Hi: math.MaxInt64, Lo: ^uint64(0)}
)

// NewInt128 creates an Int128 from its high and low limbs.
func NewInt128(hi int64, lo uint64) (i Int128) {
	return Int128{Hi: hi, Lo: lo}
}

// Int128From64 creates an Int128 from the given int64, extending its sign into the high limb.
func Int128From64(v int64) (i Int128) {
	return Int128{Hi: v >> 63, Lo: uint64(v)}
}

// Int128FromBytes unmarshals an Int128 from a sequence of bytes.
func Int128FromBytes(data []byte) (i Int128, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(data)
	if i.Hi, err = marshalUtil.ReadInt64(); err != nil {
		err = errors.Errorf("failed to parse high limb (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if i.Lo, err = marshalUtil.ReadUint64(); err != nil {
		err = errors.Errorf("failed to parse low limb (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// Cmp compares i to other and returns -1 if i is smaller, 0 if both are equal and 1 if i is bigger.
func (i Int128) Cmp(other Int128) (comparison int) {
	switch {
	case i.Hi < other.Hi, i.Hi == other.Hi && i.Lo < other.Lo:
		return -1
	case i == other:
		return 0
	default:
		return 1
	}
}

// Add64 returns i + v and reports whether the sum overflowed.
func (i Int128) Add64(v uint64) (sum Int128, overflow bool) {
	lo, carry := bits.Add64(i.Lo, v, 0)
	if carry != 0 && i.Hi == math.MaxInt64 {
		return sum, true
	}

	return Int128{Hi: i.Hi + int64(carry), Lo: lo}, false
}

// Dec returns i - 1 and reports whether the subtraction underflowed.
func (i Int128) Dec() (diff Int128, underflow bool) {
	if i == MinInt128 {
		return diff, true
	}
	lo, borrow := bits.Sub64(i.Lo, 1, 0)

	return Int128{Hi: i.Hi - int64(borrow), Lo: lo}, false
}

// IsZero returns true if the Int128 is zero.
func (i Int128) IsZero() (isZero bool) {
	return i == Int128{}
}

// IsNegative returns true if the Int128 is smaller than zero.
func (i Int128) IsNegative() (isNegative bool) {
	return i.Hi < 0
}

// Min returns the smallest representable Int128. The receiver only drives type inference and is ignored.
func (Int128) Min() (min Int128) {
	return MinInt128
}

// Max returns the largest representable Int128. The receiver only drives type inference and is ignored.
func (Int128) Max() (max Int128) {
	return MaxInt128
}

// Length returns the amount of bytes of a serialized Int128.
func (i Int128) Length() int {
	return marshalutil.Int64Size + marshalutil.Uint64Size
}

// Bytes returns a serialized version of the Int128.
func (i Int128) Bytes() (serialized []byte) {
	return marshalutil.New(i.Length()).
		WriteInt64(i.Hi).
		WriteUint64(i.Lo).
		Bytes()
}

// String returns a human-readable version of the Int128.
func (i Int128) String() (humanReadable string) {
	return "Int128(" + i.bigInt().String() + ")"
}

func (i Int128) bigInt() (value *big.Int) {
	value = big.NewInt(i.Hi)

	return value.Add(value.Lsh(value, 64), new(big.Int).SetUint64(i.Lo))
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
