// Package num128 provides fixed-width 128-bit integer value types built from
// two 64-bit limbs. They carry the ordering, checked arithmetic and type
// extrema that the onerange package needs to cover the widths that exceed
// Go's native integers.
package num128

import (
	"math/big"
	"math/bits"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"
)

// region Uint128 //////////////////////////////////////////////////////////////////////////////////////////////////////

// Uint128 is an unsigned 128-bit integer held as two 64-bit limbs.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// MaxUint128 is the largest representable Uint128.
var MaxUint128 = Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}

// NewUint128 creates a Uint128 from its high and low limbs.
func NewUint128(hi, lo uint64) (u Uint128) {
	return Uint128{Hi: hi, Lo: lo}
}

// Uint128From64 creates a Uint128 from the given uint64.
func Uint128From64(v uint64) (u Uint128) {
	return Uint128{Lo: v}
}

// Uint128FromBytes unmarshals a Uint128 from a sequence of bytes.
func Uint128FromBytes(data []byte) (u Uint128, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(data)
	if u.Hi, err = marshalUtil.ReadUint64(); err != nil {
		err = errors.Errorf("failed to parse high limb (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if u.Lo, err = marshalUtil.ReadUint64(); err != nil {
		err = errors.Errorf("failed to parse low limb (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// Cmp compares u to other and returns -1 if u is smaller, 0 if both are equal and 1 if u is bigger.
func (u Uint128) Cmp(other Uint128) (comparison int) {
	switch {
	case u.Hi < other.Hi, u.Hi == other.Hi && u.Lo < other.Lo:
		return -1
	case u == other:
		return 0
	default:
		return 1
	}
}

// Add64 returns u + v and reports whether the sum overflowed.
func (u Uint128) Add64(v uint64) (sum Uint128, overflow bool) {
	var carry uint64
	sum.Lo, carry = bits.Add64(u.Lo, v, 0)
	sum.Hi, carry = bits.Add64(u.Hi, 0, carry)

	return sum, carry != 0
}

// Dec returns u - 1 and reports whether the subtraction underflowed.
func (u Uint128) Dec() (diff Uint128, underflow bool) {
	var borrow uint64
	diff.Lo, borrow = bits.Sub64(u.Lo, 1, 0)
	diff.Hi, borrow = bits.Sub64(u.Hi, 0, borrow)

	return diff, borrow != 0
}

// IsZero returns true if the Uint128 is zero.
func (u Uint128) IsZero() (isZero bool) {
	return u == Uint128{}
}

// Min returns the smallest representable Uint128. The receiver only drives type inference and is ignored.
func (Uint128) Min() (min Uint128) {
	return Uint128{}
}

// Max returns the largest representable Uint128. The receiver only drives type inference and is ignored.
func (Uint128) Max() (max Uint128) {
	return MaxUint128
}

// Length returns the amount of bytes of a serialized Uint128.
func (u Uint128) Length() int {
	return 2 * marshalutil.Uint64Size
}

// Bytes returns a serialized version of the Uint128.
func (u Uint128) Bytes() (serialized []byte) {
	return marshalutil.New(u.Length()).
		WriteUint64(u.Hi).
		WriteUint64(u.Lo).
		Bytes()
}

// String returns a human-readable version of the Uint128.
func (u Uint128) String() (humanReadable string) {
	return "Uint128(" + u.bigInt().String() + ")"
}

func (u Uint128) bigInt() (value *big.Int) {
	value = new(big.Int).SetUint64(u.Hi)

	return value.Or(value.Lsh(value, 64), new(big.Int).SetUint64(u.Lo))
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
