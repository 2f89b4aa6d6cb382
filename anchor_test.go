package folio

import (
	"errors"
	"testing"
)

func TestNewAnchors(t *testing.T) {
	a, err := NewAnchors(Anchor{ID: "a"}, Anchor{ID: "b"}, Anchor{ID: "c"})
	if err != nil {
		t.Fatalf("NewAnchors: %v", err)
	}
	if a.Len() != 3 {
		t.Errorf("Len = %d, want 3", a.Len())
	}
	if a.First() != "a" {
		t.Errorf("First = %q, want a", a.First())
	}
	if a.Index("c") != 2 || a.Index("missing") != -1 {
		t.Errorf("Index: c=%d missing=%d", a.Index("c"), a.Index("missing"))
	}
	ids := a.IDs()
	if len(ids) != 3 || ids[0] != "a" || ids[1] != "b" || ids[2] != "c" {
		t.Errorf("IDs = %v", ids)
	}
}

func TestNewAnchorsErrors(t *testing.T) {
	tests := []struct {
		name string
		list []Anchor
		want error
	}{
		{"empty", nil, ErrNoAnchors},
		{"empty id", []Anchor{{ID: "a"}, {ID: ""}}, ErrEmptyAnchorID},
		{"duplicate", []Anchor{{ID: "a"}, {ID: "b"}, {ID: "a"}}, ErrDuplicateAnchor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAnchors(tt.list...)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewAnchorsCopiesInput(t *testing.T) {
	list := []Anchor{{ID: "a"}, {ID: "b"}}
	a := MustAnchors(list...)
	list[0].ID = "changed"
	if a.At(0).ID != "a" {
		t.Errorf("At(0) = %q, want a", a.At(0).ID)
	}
}

func TestMustAnchorsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustAnchors()
}

func TestZeroAnchors(t *testing.T) {
	var a Anchors
	if a.Len() != 0 || a.First() != "" || a.Index("x") != -1 {
		t.Error("zero Anchors should be empty")
	}
}
