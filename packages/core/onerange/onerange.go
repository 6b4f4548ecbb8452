// Package onerange provides canonical integer ranges. Callers construct a
// Range through one of several shapes (closed, half-open, open start, each
// with or without a step) and every shape collapses to the same canonical
// triple of an inclusive start, an inclusive end and a positive step before
// any containment or iteration logic runs.
package onerange

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/generics/lo"
	"github.com/iotaledger/hive.go/serix"
	"github.com/iotaledger/hive.go/stringify"
)

// region Value ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Value is the set of native fixed-width integer types a Range can be built over.
type Value interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Errors ///////////////////////////////////////////////////////////////////////////////////////////////////////

var (
	// ErrBoundUnderflow is wrapped by the panic that is raised when an exclusive end bound sits at the element
	// type's minimum value and can therefore not be rewritten to an inclusive one.
	ErrBoundUnderflow = errors.New("exclusive end bound underflows the element type")

	// ErrZeroStep is wrapped by the panic that is raised when a Range is constructed with a step of 0.
	ErrZeroStep = errors.New("step must be positive")
)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Range ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Range is an immutable ascending sequence of integers, described by the canonical triple of an inclusive start,
// an inclusive end and a positive step. A Range whose start is bigger than its end is empty: it contains no value
// and iterates zero elements.
type Range[T Value] struct {
	start T
	end   T
	step  uint64
}

// Closed returns the Range that covers [start, end] with a unit step.
func Closed[T Value](start, end T) (r Range[T]) {
	return Range[T]{start: start, end: end, step: 1}
}

// HalfOpen returns the Range that covers [start, end) with a unit step.
//
// The exclusive end is rewritten to an inclusive one in the element type's own arithmetic: passing the element
// type's minimum value as end is a contract violation that panics with an error wrapping ErrBoundUnderflow.
func HalfOpen[T Value](start, end T) (r Range[T]) {
	return Range[T]{start: start, end: decrement(end), step: 1}
}

// ClosedWithStep returns the Range that covers [start, end] with the given step.
//
// A step of 0 is a contract violation that panics with an error wrapping ErrZeroStep.
func ClosedWithStep[T Value](start, end T, step uint64) (r Range[T]) {
	return Range[T]{start: start, end: end, step: checkStep(step)}
}

// HalfOpenWithStep returns the Range that covers [start, end) with the given step. The exclusive end is rewritten
// to an inclusive one before the step applies, so the step walks the window [start, end-1].
func HalfOpenWithStep[T Value](start, end T, step uint64) (r Range[T]) {
	return Range[T]{start: start, end: decrement(end), step: checkStep(step)}
}

// OpenStartClosed returns the Range that covers every value from the element type's minimum up to and including end.
func OpenStartClosed[T Value](end T) (r Range[T]) {
	return Closed(MinValue[T](), end)
}

// OpenStartHalfOpen returns the Range that covers every value from the element type's minimum up to but excluding end.
func OpenStartHalfOpen[T Value](end T) (r Range[T]) {
	return HalfOpen(MinValue[T](), end)
}

// OpenStartClosedWithStep returns the Range that covers [MinValue, end] with the given step.
func OpenStartClosedWithStep[T Value](end T, step uint64) (r Range[T]) {
	return ClosedWithStep(MinValue[T](), end, step)
}

// OpenStartHalfOpenWithStep returns the Range that covers [MinValue, end) with the given step.
func OpenStartHalfOpenWithStep[T Value](end T, step uint64) (r Range[T]) {
	return HalfOpenWithStep(MinValue[T](), end, step)
}

// FromBytes unmarshals a Range from a sequence of bytes.
func FromBytes[T Value](data []byte) (r Range[T], consumedBytes int, err error) {
	m := new(rangeModel[T])
	if consumedBytes, err = serix.DefaultAPI.Decode(context.Background(), data, m); err != nil {
		err = errors.Errorf("failed to parse Range (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if m.Step == 0 {
		err = errors.Errorf("failed to parse Range (step is 0): %w", cerrors.ErrParseBytesFailed)
		return
	}
	r.start, r.end, r.step = m.Start, m.End, m.Step

	return
}

// Start returns the inclusive lower bound of the Range.
func (r Range[T]) Start() (start T) {
	return r.start
}

// End returns the inclusive upper bound of the Range.
func (r Range[T]) End() (end T) {
	return r.end
}

// Step returns the stride between successive elements of the Range.
func (r Range[T]) Step() (step uint64) {
	return r.step
}

// IsEmpty returns true if the Range contains no elements.
func (r Range[T]) IsEmpty() (isEmpty bool) {
	return r.start > r.end
}

// Contains returns true if the given item lies within the bounds of the Range (both bounds inclusive). The step
// does not narrow containment, it only affects iteration.
func (r Range[T]) Contains(item T) (contains bool) {
	return r.start <= item && item <= r.end
}

// Bytes returns a serialized version of the Range.
func (r Range[T]) Bytes() (serialized []byte) {
	return lo.PanicOnErr(serix.DefaultAPI.Encode(context.Background(), rangeModel[T]{Start: r.start, End: r.end, Step: r.step}))
}

// String returns a human-readable version of the Range.
func (r Range[T]) String() (humanReadable string) {
	return stringify.Struct("Range",
		stringify.StructField("start", r.start),
		stringify.StructField("end", r.end),
		stringify.StructField("step", r.step),
	)
}

// rangeModel contains the serializable fields of a Range.
type rangeModel[T Value] struct {
	Start T      `serix:"0"`
	End   T      `serix:"1"`
	Step  uint64 `serix:"2"`
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region utils ////////////////////////////////////////////////////////////////////////////////////////////////////////

// decrement rewrites an exclusive end bound to an inclusive one in the element type's own arithmetic.
func decrement[T Value](end T) (inclusiveEnd T) {
	if end == MinValue[T]() {
		panic(errors.Errorf("failed to rewrite exclusive end %v to an inclusive one: %w", end, ErrBoundUnderflow))
	}

	return end - 1
}

// checkStep asserts that the given step is positive.
func checkStep(step uint64) (checkedStep uint64) {
	if step == 0 {
		panic(errors.Errorf("failed to construct Range: %w", ErrZeroStep))
	}

	return step
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
