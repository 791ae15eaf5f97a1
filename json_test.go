package cow_test

import (
	"encoding/json"
	"testing"

	"github.com/zoobzio/cow"
)

func TestMarshalJSONTransparent(t *testing.T) {
	tests := []struct {
		name string
		c    cow.Text
	}{
		{"owned", cow.OwnText("payload")},
		{"borrowed", cow.BorrowText("payload")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.c)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			if string(got) != `"payload"` {
				t.Errorf("Marshal() = %s, want %q", got, `"payload"`)
			}
		})
	}
}

func TestCowFieldEncodesTransparently(t *testing.T) {
	type doc struct {
		Title cow.Text  `json:"title"`
		Body  cow.Bytes `json:"body"`
	}

	in := doc{
		Title: cow.BorrowText("hello"),
		Body:  cow.OwnBytes([]byte("abc")),
	}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	// Byte views encode base64, exactly like a bare []byte field.
	if want := `{"title":"hello","body":"YWJj"}`; string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var out doc
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if !out.Title.IsOwned() || !out.Body.IsOwned() {
		t.Error("decoded containers must be Owned")
	}
	if out.Title.View() != "hello" {
		t.Errorf("Title = %q, want %q", out.Title.View(), "hello")
	}
	if string(out.Body.View()) != "abc" {
		t.Errorf("Body = %q, want %q", out.Body.View(), "abc")
	}
}

func TestUnmarshalJSONInPlace(t *testing.T) {
	c := cow.OwnText("stale")
	if err := json.Unmarshal([]byte(`"current"`), &c); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if !c.IsOwned() || c.View() != "current" {
		t.Errorf("got %q (owned=%v), want owned %q", c.View(), c.IsOwned(), "current")
	}
}

func TestUnmarshalJSONFailureLeavesBorrowed(t *testing.T) {
	c := cow.BorrowText("intact")

	if err := json.Unmarshal([]byte(`{broken`), &c); err == nil {
		t.Fatal("Unmarshal() should fail on malformed input")
	}
	if !c.IsBorrowed() {
		t.Error("failed decode must leave the container Borrowed")
	}
	if got := c.View(); got != "intact" {
		t.Errorf("View() = %q, want %q", got, "intact")
	}
}
