package obj

// minBufferCapacity is the capacity of a buffer after its first growth.
const minBufferCapacity = 32

// Buffer is an append-only growable array.
// Growth is amortized: a full buffer is reallocated to max(32, cap+cap/2) elements and never shrinks.
// The zero value is an empty buffer ready for use.
type Buffer[T any] struct {
	data []T
}

// Len returns the number of elements appended so far.
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// Cap returns the number of elements the buffer can hold before it grows again.
func (b *Buffer[T]) Cap() int {
	return cap(b.data)
}

// At returns the element at index i. It panics if i is out of range.
func (b *Buffer[T]) At(i int) T {
	return b.data[i]
}

// Data returns a view of the buffer contents.
// The view aliases the buffer storage and is only valid until the next append.
//
// Returns:
//   - []T: the logical contents of the buffer
func (b *Buffer[T]) Data() []T {
	return b.data
}

// Append adds a single element.
//
// Parameters:
//   - v: the element to append
func (b *Buffer[T]) Append(v T) {
	b.reserve(1)
	b.data = append(b.data, v)
}

// Append3 adds three elements at once, keeping triple-structured buffers whole.
//
// Parameters:
//   - x, y, z: the elements to append in order
func (b *Buffer[T]) Append3(x, y, z T) {
	b.reserve(3)
	b.data = append(b.data, x, y, z)
}

// reserve makes room for n more elements, growing by the buffer's growth policy.
func (b *Buffer[T]) reserve(n int) {
	if len(b.data)+n <= cap(b.data) {
		return
	}

	newCap := cap(b.data)
	for len(b.data)+n > newCap {
		newCap = max(minBufferCapacity, newCap+newCap/2)
	}

	grown := make([]T, len(b.data), newCap)
	copy(grown, b.data)
	b.data = grown
}

// replace swaps the storage for data, which the buffer takes ownership of.
func (b *Buffer[T]) replace(data []T) {
	b.data = data
}
