package cow

import (
	"bytes"
	"strings"
)

// Ready-made owned payloads for the two most common view types, so
// string and byte containers work out of the box.

// Str is an owned string payload viewed as a string.
type Str string

// View returns the string held by s. String conversions between string
// types share backing data, so this never copies.
func (s Str) View() string { return string(s) }

// FromView copies v into a fresh owned string.
func (Str) FromView(v string) Str { return Str(strings.Clone(v)) }

// Clone returns s. Strings are immutable, so no deep copy is needed.
func (s Str) Clone() Str { return s }

// Buf is an owned byte buffer viewed as a byte slice.
type Buf []byte

// View returns the buffer's slice header without copying.
func (b Buf) View() []byte { return b }

// FromView copies v into a fresh buffer that does not alias it.
func (Buf) FromView(v []byte) Buf { return Buf(bytes.Clone(v)) }

// Clone deep-copies the buffer.
func (b Buf) Clone() Buf { return Buf(bytes.Clone(b)) }

// Text is a clone-on-write string container.
type Text = Cow[Str, string]

// Bytes is a clone-on-write byte-slice container.
type Bytes = Cow[Buf, []byte]

// OwnText returns a Text owning s.
func OwnText(s string) Text { return Own[Str, string](Str(s)) }

// BorrowText returns a Text borrowing s. Go strings are immutable, so
// the borrow can never observe mutation of its source.
func BorrowText(s string) Text { return Borrow[Str, string](s) }

// OwnBytes returns a Bytes owning b. The container takes b as-is; the
// caller must not retain and mutate it.
func OwnBytes(b []byte) Bytes { return Own[Buf, []byte](Buf(b)) }

// BorrowBytes returns a Bytes borrowing b. The container never writes
// through the borrowed slice; mutation requires MakeMut, which copies.
func BorrowBytes(b []byte) Bytes { return Borrow[Buf, []byte](b) }
