package cow

import "cmp"

// Every comparison in this file reads the projected view, never the
// variant tag: an Owned container and a Borrowed container with equal
// views are indistinguishable to Equal, Compare, and everything derived
// from them.

// Equal reports whether two containers project equal views.
func Equal[O Viewer[B], B comparable](a, b Cow[O, B]) bool {
	return a.View() == b.View()
}

// EqualView reports whether a container's projected view equals a bare
// view value. This is the cross-type equality of a container against
// the borrowed-shaped type itself.
func EqualView[O Viewer[B], B comparable](c Cow[O, B], view B) bool {
	return c.View() == view
}

// EqualFunc is Equal for view types without built-in equality, such as
// byte slices. eq is applied to the two projected views.
func EqualFunc[O Viewer[B], B any](a, b Cow[O, B], eq func(B, B) bool) bool {
	return eq(a.View(), b.View())
}

// Compare orders two containers by their projected views. It returns
// -1, 0, or +1 following the cmp package convention, and is consistent
// with Equal.
func Compare[O Viewer[B], B cmp.Ordered](a, b Cow[O, B]) int {
	return cmp.Compare(a.View(), b.View())
}

// CompareFunc is Compare for view types without a built-in order.
// compare is applied to the two projected views.
func CompareFunc[O Viewer[B], B any](a, b Cow[O, B], compare func(B, B) int) int {
	return compare(a.View(), b.View())
}

// Min returns the smaller of two containers, preferring a when equal.
func Min[O Viewer[B], B cmp.Ordered](a, b Cow[O, B]) Cow[O, B] {
	if Compare(a, b) <= 0 {
		return a
	}
	return b
}

// Max returns the larger of two containers, preferring b when equal.
func Max[O Viewer[B], B cmp.Ordered](a, b Cow[O, B]) Cow[O, B] {
	if Compare(a, b) > 0 {
		return a
	}
	return b
}

// Clamp restricts c to the range [lo, hi] by projected-view order.
// The caller must ensure lo orders at or below hi.
func Clamp[O Viewer[B], B cmp.Ordered](c, lo, hi Cow[O, B]) Cow[O, B] {
	if Compare(c, lo) < 0 {
		return lo
	}
	if Compare(c, hi) > 0 {
		return hi
	}
	return c
}
