package onerange

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/stringify"
)

// region Wide /////////////////////////////////////////////////////////////////////////////////////////////////////////

// Wide is the capability set the engine requires from integer implementations that exceed the native widths: a
// total order, checked stride arithmetic and the type extrema. The 128-bit integers of the num128 package satisfy
// it.
type Wide[T any] interface {
	comparable

	// Cmp compares the receiver to other and returns -1, 0 or 1.
	Cmp(other T) int

	// Add64 returns the sum of the receiver and v, reporting overflow instead of wrapping around.
	Add64(v uint64) (sum T, overflow bool)

	// Dec returns the receiver decreased by one, reporting underflow instead of wrapping around.
	Dec() (diff T, underflow bool)

	// Min returns the smallest representable value. The receiver only drives type inference and is ignored.
	Min() T

	// Max returns the largest representable value. The receiver only drives type inference and is ignored.
	Max() T
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region WideRange ////////////////////////////////////////////////////////////////////////////////////////////////////

// WideRange is the counterpart of Range for element types that implement their ordering and arithmetic as methods.
// It supports the same construction shapes and behaves identically for containment and iteration.
type WideRange[T Wide[T]] struct {
	start T
	end   T
	step  uint64
}

// WideClosed returns the WideRange that covers [start, end] with a unit step.
func WideClosed[T Wide[T]](start, end T) (r WideRange[T]) {
	return WideRange[T]{start: start, end: end, step: 1}
}

// WideHalfOpen returns the WideRange that covers [start, end) with a unit step.
//
// Passing the element type's minimum value as end is a contract violation that panics with an error wrapping
// ErrBoundUnderflow.
func WideHalfOpen[T Wide[T]](start, end T) (r WideRange[T]) {
	return WideRange[T]{start: start, end: decrementWide(end), step: 1}
}

// WideClosedWithStep returns the WideRange that covers [start, end] with the given step.
//
// A step of 0 is a contract violation that panics with an error wrapping ErrZeroStep.
func WideClosedWithStep[T Wide[T]](start, end T, step uint64) (r WideRange[T]) {
	return WideRange[T]{start: start, end: end, step: checkStep(step)}
}

// WideHalfOpenWithStep returns the WideRange that covers [start, end) with the given step. The exclusive end is
// rewritten to an inclusive one before the step applies.
func WideHalfOpenWithStep[T Wide[T]](start, end T, step uint64) (r WideRange[T]) {
	return WideRange[T]{start: start, end: decrementWide(end), step: checkStep(step)}
}

// WideOpenStartClosed returns the WideRange that covers every value from the element type's minimum up to and
// including end.
func WideOpenStartClosed[T Wide[T]](end T) (r WideRange[T]) {
	return WideClosed(minWide[T](), end)
}

// WideOpenStartHalfOpen returns the WideRange that covers every value from the element type's minimum up to but
// excluding end.
func WideOpenStartHalfOpen[T Wide[T]](end T) (r WideRange[T]) {
	return WideHalfOpen(minWide[T](), end)
}

// WideOpenStartClosedWithStep returns the WideRange that covers [Min, end] with the given step.
func WideOpenStartClosedWithStep[T Wide[T]](end T, step uint64) (r WideRange[T]) {
	return WideClosedWithStep(minWide[T](), end, step)
}

// WideOpenStartHalfOpenWithStep returns the WideRange that covers [Min, end) with the given step.
func WideOpenStartHalfOpenWithStep[T Wide[T]](end T, step uint64) (r WideRange[T]) {
	return WideHalfOpenWithStep(minWide[T](), end, step)
}

// Start returns the inclusive lower bound of the WideRange.
func (r WideRange[T]) Start() (start T) {
	return r.start
}

// End returns the inclusive upper bound of the WideRange.
func (r WideRange[T]) End() (end T) {
	return r.end
}

// Step returns the stride between successive elements of the WideRange.
func (r WideRange[T]) Step() (step uint64) {
	return r.step
}

// IsEmpty returns true if the WideRange contains no elements.
func (r WideRange[T]) IsEmpty() (isEmpty bool) {
	return r.start.Cmp(r.end) > 0
}

// Contains returns true if the given item lies within the bounds of the WideRange (both bounds inclusive). The
// two three-way comparisons make the result false whenever either comparison reports the item outside the bounds.
func (r WideRange[T]) Contains(item T) (contains bool) {
	return r.start.Cmp(item) <= 0 && item.Cmp(r.end) <= 0
}

// String returns a human-readable version of the WideRange.
func (r WideRange[T]) String() (humanReadable string) {
	return stringify.Struct("WideRange",
		stringify.StructField("start", r.start),
		stringify.StructField("end", r.end),
		stringify.StructField("step", r.step),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region WideIterator /////////////////////////////////////////////////////////////////////////////////////////////////

// WideIterator walks the elements of a WideRange in ascending order. Every call to WideRange.Iterator produces an
// independent WideIterator, so the same WideRange can be walked any number of times.
type WideIterator[T Wide[T]] struct {
	cursor T
	end    T
	step   uint64
	done   bool
}

// Iterator returns a fresh WideIterator over the elements of the WideRange.
func (r WideRange[T]) Iterator() (iterator *WideIterator[T]) {
	return &WideIterator[T]{cursor: r.start, end: r.end, step: r.step, done: r.IsEmpty()}
}

// HasNext returns true if the WideIterator holds at least one more element.
func (i *WideIterator[T]) HasNext() (hasNext bool) {
	return !i.done
}

// Next returns the next element of the walked WideRange, with exists being false once the WideIterator is
// exhausted.
func (i *WideIterator[T]) Next() (element T, exists bool) {
	if i.done {
		return element, false
	}
	element = i.cursor

	if next, overflow := i.cursor.Add64(i.step); overflow || next.Cmp(i.end) > 0 {
		i.done = true
	} else {
		i.cursor = next
	}

	return element, true
}

// ForEach invokes the callback with every element of the WideRange in ascending order.
func (r WideRange[T]) ForEach(callback func(element T)) {
	for iterator := r.Iterator(); iterator.HasNext(); {
		element, _ := iterator.Next()
		callback(element)
	}
}

// Slice returns the elements of the WideRange as a materialized slice.
func (r WideRange[T]) Slice() (elements []T) {
	r.ForEach(func(element T) {
		elements = append(elements, element)
	})

	return elements
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region utils ////////////////////////////////////////////////////////////////////////////////////////////////////////

// decrementWide rewrites an exclusive end bound to an inclusive one through the element type's checked arithmetic.
func decrementWide[T Wide[T]](end T) (inclusiveEnd T) {
	inclusiveEnd, underflow := end.Dec()
	if underflow {
		panic(errors.Errorf("failed to rewrite exclusive end %v to an inclusive one: %w", end, ErrBoundUnderflow))
	}

	return inclusiveEnd
}

// minWide returns the smallest representable value of the element type.
func minWide[T Wide[T]]() (min T) {
	return min.Min()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
