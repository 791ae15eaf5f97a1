package cow

// Cloner allows owned types to provide deep copy logic.
// Implementing this interface is required for use with Clone.
//
// The Clone method must return a deep copy where modifications to the
// clone do not affect the original value. For types containing pointers,
// slices, or maps, ensure these are also copied to achieve true
// isolation.
//
// For immutable or plain value types, Clone can simply return the
// receiver:
//
//	func (n Name) Clone() Name { return n }
type Cloner[T any] interface {
	Clone() T
}

// Clone duplicates a container without changing its variant.
//
// An Owned container deep-copies its payload via the Cloner capability.
// A Borrowed container copies only the view header: the clone refers to
// the same backing data, and no allocation or promotion takes place.
func Clone[O interface {
	Viewer[B]
	Cloner[O]
}, B any](c Cow[O, B]) Cow[O, B] {
	if c.borrowed {
		return c
	}
	return Cow[O, B]{owned: c.owned.Clone()}
}
