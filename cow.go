// Package cow provides a generic clone-on-write value container.
//
// A Cow holds either an owned payload or a borrowed view of data owned
// elsewhere, and exposes both through one uniform read-only projection.
// The cost of materializing an owned copy is deferred until mutable
// access is actually requested.
//
// # Variants
//
// A container is in exactly one of two states:
//
//   - Owned: the container exclusively holds a payload of type O.
//   - Borrowed: the container holds a view header of type B (a string,
//     byte slice, pointer, or any other cheap-copy handle) backed by
//     data owned elsewhere.
//
// The zero value of Cow is the Owned variant wrapping the zero payload.
//
// # Capabilities
//
// Operations are gated by small single-method interfaces rather than one
// monolithic constraint, so a concrete owned/view type pair only has to
// satisfy the capabilities it actually uses:
//
//   - Viewer[B]: the owned type exposes its borrowed-shaped view.
//     Required by the container itself; every derived behavior reads
//     through it.
//   - FromViewer[O, B]: an owned value can be constructed from a view.
//     Required by IntoOwned and MakeMut.
//   - TryFromViewer[O, B]: fallible construction from a view. Required
//     by TryIntoOwned and TryMakeMut.
//   - Cloner[O]: deep copy of the owned payload. Required by Clone.
//
// # Basic Usage
//
//	// Borrow defers the copy; nothing is allocated here.
//	c := cow.Borrow[cow.Str, string]("hello")
//
//	// Reads project the view regardless of variant.
//	_ = c.View() // "hello"
//
//	// First mutable access materializes an owned copy.
//	s := cow.MakeMut(&c)
//	*s += ", world"
//
//	c.IsOwned() // true; the borrowed source is untouched
//
// # Derived Behavior
//
// Equality, ordering, hashing, formatting, and serialization all operate
// on the projected view, never on the variant tag. An Owned container
// and a Borrowed container with equal views are equal, hash identically,
// compare identically, and produce identical wire bytes.
//
// # Serialization
//
// Cow implements the marshaler hooks of encoding/json, gopkg.in/yaml.v3,
// and vmihailenco/msgpack, so containers embedded in larger values
// encode transparently as their projected view. Decoding always yields
// the Owned variant; there is no live data to borrow from a wire format.
// The package-level Marshal and Unmarshal helpers provide the same
// bridge through a pluggable Codec.
//
// # Concurrency
//
// A Cow has no internal synchronization. Projection and the derived
// read-only behaviors are safe for concurrent readers; IntoOwned,
// MakeMut, and the decode hooks require exclusive access, the same as
// any Go value.
package cow

import "fmt"

// Cow is a clone-on-write container holding either an owned payload O
// or a borrowed view B.
//
// B should be a cheap-copy view header: string, []T, map, or *T. The
// garbage collector keeps the backing data of a borrowed header alive
// for as long as any container holds it, so no validity window needs to
// be tracked by the caller.
//
// Plain assignment copies the container shallowly: the borrowed case is
// always a header copy, and the owned case is safe exactly when copying
// O by value is. Use Clone for a deep copy of the owned payload.
type Cow[O Viewer[B], B any] struct {
	owned O
	view  B

	// borrowed is false for the Owned variant so that the zero value
	// is Owned(zero O).
	borrowed bool
}

// Own returns a container owning value.
func Own[O Viewer[B], B any](value O) Cow[O, B] {
	return Cow[O, B]{owned: value}
}

// Borrow returns a container holding view without taking ownership of
// its backing data.
//
// The view must be a usable handle: a zero view (nil pointer, nil
// slice) produces a container whose projection is that zero view.
// Borrow performs no validation.
func Borrow[O Viewer[B], B any](view B) Cow[O, B] {
	return Cow[O, B]{view: view, borrowed: true}
}

// IsOwned reports whether the container holds an owned payload.
func (c Cow[O, B]) IsOwned() bool {
	return !c.borrowed
}

// IsBorrowed reports whether the container holds a borrowed view.
func (c Cow[O, B]) IsBorrowed() bool {
	return c.borrowed
}

// View returns the projected read-only view of the container.
//
// For the Borrowed variant this is the held view header; for the Owned
// variant it is derived from the payload via its Viewer capability.
// View never allocates, never mutates, and never promotes.
func (c Cow[O, B]) View() B {
	if c.borrowed {
		return c.view
	}
	return c.owned.View()
}

// String formats the projected view, so a container prints exactly as
// the bare view would.
func (c Cow[O, B]) String() string {
	return fmt.Sprint(c.View())
}
