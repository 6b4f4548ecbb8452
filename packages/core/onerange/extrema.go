package onerange

import (
	"unsafe"
)

// region extrema //////////////////////////////////////////////////////////////////////////////////////////////////////

// MinValue returns the smallest value representable by the element type. It is a type-indexed constant that
// depends on T alone; the open-start construction shapes use it to fill the omitted lower bound.
func MinValue[T Value]() (min T) {
	ones := ^min
	if ones > min {
		// unsigned: the complement of zero is the largest value, the minimum is zero
		return min
	}

	return ones << (8*unsafe.Sizeof(min) - 1)
}

// MaxValue returns the largest value representable by the element type. It is a type-indexed constant that
// depends on T alone.
func MaxValue[T Value]() (max T) {
	ones := ^max
	if ones > max {
		return ones
	}

	return ^(ones << (8*unsafe.Sizeof(max) - 1))
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
