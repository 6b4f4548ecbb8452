package onerange

// region Iterator /////////////////////////////////////////////////////////////////////////////////////////////////////

// Iterator walks the elements of a Range in ascending order. Every call to Range.Iterator produces an independent
// Iterator with its own cursor, so the same Range can be walked any number of times and always yields the same
// sequence.
type Iterator[T Value] struct {
	cursor T
	end    T
	step   uint64
	done   bool
}

// Iterator returns a fresh Iterator over the elements of the Range.
func (r Range[T]) Iterator() (iterator *Iterator[T]) {
	return &Iterator[T]{cursor: r.start, end: r.end, step: r.step, done: r.IsEmpty()}
}

// HasNext returns true if the Iterator holds at least one more element.
func (i *Iterator[T]) HasNext() (hasNext bool) {
	return !i.done
}

// Next returns the next element of the walked Range, with exists being false once the Iterator is exhausted.
func (i *Iterator[T]) Next() (element T, exists bool) {
	if i.done {
		return element, false
	}
	element = i.cursor

	// the remaining distance to the end bound is exact in 64-bit arithmetic for every element width, so the
	// cursor only advances when it cannot overshoot (or wrap around at the type boundary)
	if remaining := uint64(i.end) - uint64(i.cursor); remaining < i.step {
		i.done = true
	} else {
		i.cursor += T(i.step)
	}

	return element, true
}

// ForEach invokes the callback with every element of the Range in ascending order.
func (r Range[T]) ForEach(callback func(element T)) {
	for iterator := r.Iterator(); iterator.HasNext(); {
		element, _ := iterator.Next()
		callback(element)
	}
}

// Slice returns the elements of the Range as a materialized slice.
func (r Range[T]) Slice() (elements []T) {
	r.ForEach(func(element T) {
		elements = append(elements, element)
	})

	return elements
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
