package folio

import (
	"errors"
	"fmt"
)

var (
	// ErrNoAnchors is returned when an anchor sequence is empty.
	ErrNoAnchors = errors.New("folio: anchor sequence is empty")
	// ErrEmptyAnchorID is returned for an anchor without an identifier.
	ErrEmptyAnchorID = errors.New("folio: anchor id is empty")
	// ErrDuplicateAnchor is returned when two anchors share an identifier.
	ErrDuplicateAnchor = errors.New("folio: duplicate anchor id")
	// ErrAnchorNotFound is returned when an id is not part of a sequence or
	// not present in the document.
	ErrAnchorNotFound = errors.New("folio: anchor not found")
)

// Anchor is a named point of interest on the page, usually a section.
type Anchor struct {
	ID    string
	Label string
}

// Anchors is an ordered anchor sequence. Order is visual top-to-bottom order.
// Construct with NewAnchors; the zero value is an empty sequence.
type Anchors struct {
	list  []Anchor
	index map[string]int
}

// NewAnchors validates and returns an ordered anchor sequence.
func NewAnchors(list ...Anchor) (Anchors, error) {
	if len(list) == 0 {
		return Anchors{}, ErrNoAnchors
	}
	index := make(map[string]int, len(list))
	for i, a := range list {
		if a.ID == "" {
			return Anchors{}, fmt.Errorf("anchor %d: %w", i, ErrEmptyAnchorID)
		}
		if _, dup := index[a.ID]; dup {
			return Anchors{}, fmt.Errorf("anchor %q: %w", a.ID, ErrDuplicateAnchor)
		}
		index[a.ID] = i
	}
	cp := make([]Anchor, len(list))
	copy(cp, list)
	return Anchors{list: cp, index: index}, nil
}

// MustAnchors is like NewAnchors but panics on error. Intended for
// package-level literals.
func MustAnchors(list ...Anchor) Anchors {
	a, err := NewAnchors(list...)
	if err != nil {
		panic(err)
	}
	return a
}

// Len returns the number of anchors.
func (a Anchors) Len() int {
	return len(a.list)
}

// At returns the anchor at index i.
func (a Anchors) At(i int) Anchor {
	return a.list[i]
}

// First returns the id of the first anchor, or "" for an empty sequence.
func (a Anchors) First() string {
	if len(a.list) == 0 {
		return ""
	}
	return a.list[0].ID
}

// Index returns the position of id, or -1.
func (a Anchors) Index(id string) int {
	if i, ok := a.index[id]; ok {
		return i
	}
	return -1
}

// IDs returns the anchor ids in order.
func (a Anchors) IDs() []string {
	ids := make([]string, len(a.list))
	for i, an := range a.list {
		ids[i] = an.ID
	}
	return ids
}
