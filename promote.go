package cow

import (
	"context"
	"fmt"
	"time"
)

// IntoOwned consumes the container and returns its payload as an owned
// value.
//
// An Owned container gives up its payload directly, with no copy. A
// Borrowed container constructs a fresh payload from the view via the
// FromView capability; this is the call that clones.
func IntoOwned[O interface {
	Viewer[B]
	FromViewer[O, B]
}, B any](c Cow[O, B]) O {
	if !c.borrowed {
		return c.owned
	}
	var zero O
	start := time.Now()
	owned := zero.FromView(c.view)
	emitPromote(context.Background(), typeName[O](), time.Since(start), nil)
	return owned
}

// TryIntoOwned is the fallible form of IntoOwned. On failure the
// conversion's own error is returned unchanged; the container has been
// consumed either way.
func TryIntoOwned[O interface {
	Viewer[B]
	TryFromViewer[O, B]
}, B any](c Cow[O, B]) (O, error) {
	if !c.borrowed {
		return c.owned, nil
	}
	var zero O
	start := time.Now()
	owned, err := zero.TryFromView(c.view)
	emitPromote(context.Background(), typeName[O](), time.Since(start), err)
	if err != nil {
		return zero, err
	}
	return owned, nil
}

// MakeMut returns mutable access to the container's owned payload,
// promoting first if necessary.
//
// An Owned container returns a pointer to its existing payload. A
// Borrowed container materializes an owned payload from the view,
// replaces its state with the Owned variant, and drops the view header.
// Promotion happens at most once per container: every later call is a
// pass-through to the payload already held.
func MakeMut[O interface {
	Viewer[B]
	FromViewer[O, B]
}, B any](c *Cow[O, B]) *O {
	if c.borrowed {
		var zero O
		start := time.Now()
		c.owned = zero.FromView(c.view)
		emitPromote(context.Background(), typeName[O](), time.Since(start), nil)
		var empty B
		c.view = empty
		c.borrowed = false
	}
	return &c.owned
}

// TryMakeMut is the fallible form of MakeMut. On failure the container
// is left exactly as it was: still Borrowed, with the original view
// observable through View. No partial mutation is ever visible.
func TryMakeMut[O interface {
	Viewer[B]
	TryFromViewer[O, B]
}, B any](c *Cow[O, B]) (*O, error) {
	if c.borrowed {
		var zero O
		start := time.Now()
		owned, err := zero.TryFromView(c.view)
		emitPromote(context.Background(), typeName[O](), time.Since(start), err)
		if err != nil {
			return nil, err
		}
		c.owned = owned
		var empty B
		c.view = empty
		c.borrowed = false
	}
	return &c.owned, nil
}

// typeName reports the owned type's name for event emission.
func typeName[O any]() string {
	var zero O
	return fmt.Sprintf("%T", zero)
}
