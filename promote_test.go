package cow_test

import (
	"errors"
	"testing"

	"github.com/zoobzio/cow"
)

func TestIntoOwnedPassThrough(t *testing.T) {
	src := cow.Buf("payload")
	c := cow.Own[cow.Buf, []byte](src)

	got := cow.IntoOwned(c)
	if &got[0] != &src[0] {
		t.Error("IntoOwned() on an Owned container must move the payload, not copy it")
	}
}

func TestIntoOwnedCopiesBorrowed(t *testing.T) {
	src := []byte("payload")
	c := cow.BorrowBytes(src)

	got := cow.IntoOwned(c)
	if string(got) != "payload" {
		t.Errorf("IntoOwned() = %q, want %q", got, "payload")
	}
	if &got[0] == &src[0] {
		t.Error("IntoOwned() on a Borrowed container must not alias the source")
	}
}

func TestMakeMutPromotesOnce(t *testing.T) {
	trackedCopies = 0
	c := cow.Borrow[tracked, string]("data")

	first := cow.MakeMut(&c)
	if !c.IsOwned() {
		t.Fatal("MakeMut() should promote a Borrowed container")
	}
	second := cow.MakeMut(&c)

	if trackedCopies != 1 {
		t.Errorf("payload constructed %d times, want 1", trackedCopies)
	}
	if first != second {
		t.Error("second MakeMut() should return the same payload")
	}
}

func TestMakeMutDoesNotTouchSource(t *testing.T) {
	src := []byte("abc")
	c := cow.BorrowBytes(src)

	m := cow.MakeMut(&c)
	(*m)[0] = 'X'

	if string(src) != "abc" {
		t.Errorf("borrowed source mutated to %q", src)
	}
	if got := c.View(); string(got) != "Xbc" {
		t.Errorf("View() after mutation = %q, want %q", got, "Xbc")
	}
}

func TestMakeMutOwnedInPlace(t *testing.T) {
	c := cow.OwnText("start")

	*cow.MakeMut(&c) += "-edited"

	if got := c.View(); got != "start-edited" {
		t.Errorf("View() = %q, want %q", got, "start-edited")
	}
}

func TestTryIntoOwned(t *testing.T) {
	tests := []struct {
		name    string
		view    string
		want    string
		wantErr error
	}{
		{"valid", "plain", "plain", nil},
		{"invalid", "caf\xc3\xa9", "", errNonASCII},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cow.Borrow[ascii, string](tt.view)
			got, err := cow.TryIntoOwned(c)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("TryIntoOwned() error = %v, want %v", err, tt.wantErr)
			}
			if string(got) != tt.want {
				t.Errorf("TryIntoOwned() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTryIntoOwnedOwnedPassThrough(t *testing.T) {
	c := cow.Own[ascii, string]("safe")
	got, err := cow.TryIntoOwned(c)
	if err != nil {
		t.Fatalf("TryIntoOwned() error = %v", err)
	}
	if got != "safe" {
		t.Errorf("TryIntoOwned() = %q, want %q", got, "safe")
	}
}

func TestTryMakeMutFailureLeavesStateUnchanged(t *testing.T) {
	c := cow.Borrow[ascii, string]("caf\xc3\xa9")

	m, err := cow.TryMakeMut(&c)
	if !errors.Is(err, errNonASCII) {
		t.Fatalf("TryMakeMut() error = %v, want %v", err, errNonASCII)
	}
	if m != nil {
		t.Error("TryMakeMut() should not return a payload on failure")
	}
	if !c.IsBorrowed() {
		t.Error("failed TryMakeMut() must leave the container Borrowed")
	}
	if got := c.View(); got != "caf\xc3\xa9" {
		t.Errorf("View() after failed promotion = %q, want original view", got)
	}
}

func TestTryMakeMutSuccess(t *testing.T) {
	c := cow.Borrow[ascii, string]("plain")

	m, err := cow.TryMakeMut(&c)
	if err != nil {
		t.Fatalf("TryMakeMut() error = %v", err)
	}
	*m += "-er"

	if !c.IsOwned() {
		t.Error("TryMakeMut() should promote on success")
	}
	if got := c.View(); got != "plain-er" {
		t.Errorf("View() = %q, want %q", got, "plain-er")
	}
}
