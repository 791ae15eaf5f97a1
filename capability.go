package cow

// Viewer allows an owned type to expose its borrowed-shaped view.
// This is the container's core capability: projection, comparison,
// hashing, formatting, and serialization all read through it.
//
// View must be cheap and must not mutate the receiver. It should return
// a handle over the receiver's data (the string held by a string-backed
// type, the slice held by a buffer type), not a fresh copy of the data:
//
//	type Name string
//
//	func (n Name) View() string { return string(n) }
type Viewer[B any] interface {
	View() B
}

// Borrower is the alternate projection capability for types that expose
// a borrow-style accessor rather than an as-view conversion. Wrap such
// a type in ViaBorrow to use it as the owned half of a Cow.
type Borrower[B any] interface {
	Borrow() B
}

// ViaBorrow adapts a Borrower into a Viewer. The two access paths agree
// by construction: View forwards to Borrow.
type ViaBorrow[O Borrower[B], B any] struct {
	Owned O
}

// View returns the adapted value's borrowed view.
func (v ViaBorrow[O, B]) View() B {
	return v.Owned.Borrow()
}

// FromViewer allows an owned value to be constructed from a borrowed
// view. This is the promotion capability used by IntoOwned and MakeMut,
// and it is where a clone-on-write container pays its one allocation.
//
// FromView is invoked on the zero value of O as a constructor; it must
// not depend on its receiver. It must copy the view's backing data so
// the result does not alias the borrowed source:
//
//	func (Name) FromView(v string) Name { return Name(strings.Clone(v)) }
type FromViewer[O, B any] interface {
	FromView(B) O
}

// TryFromViewer is the fallible form of FromViewer, for owned types
// whose construction can reject a view (validation, canonicalization).
// The returned error is surfaced to the caller unchanged.
//
// Like FromView, TryFromView is invoked on the zero value of O.
type TryFromViewer[O, B any] interface {
	TryFromView(B) (O, error)
}
