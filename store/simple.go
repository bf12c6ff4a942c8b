package store

import (
	"fmt"
	"io"

	"github.com/cognizone/rmlmapper-go/term"
)

// SimpleStore is the in-memory QuadStore used during mapping evaluation.
// Quads are kept in insertion order in a plain slice with no secondary
// index; membership checks scan the whole buffer. The only serialization it
// implements is N-Quads.
type SimpleStore struct {
	quads []Quad
}

var _ QuadStore = (*SimpleStore)(nil)

// NewSimpleStore returns a store seeded with the given quads, in order.
func NewSimpleStore(quads ...Quad) *SimpleStore {
	return &SimpleStore{quads: quads}
}

// AddQuad appends a quad built from the given terms. The quad is dropped
// silently when subject, predicate or object is nil; a nil graph is allowed
// and places the quad in the default graph.
func (s *SimpleStore) AddQuad(subject, predicate, object, graph term.Term) {
	if subject == nil || predicate == nil || object == nil {
		return
	}
	s.quads = append(s.quads, NewQuad(subject, predicate, object, graph))
}

// Quads returns the backing quad slice. The pattern arguments are ignored:
// this store does not filter, it always returns every buffered quad in
// insertion order. Callers needing pattern matching must filter the result
// themselves. The returned slice is the live buffer and must not be mutated.
func (s *SimpleStore) Quads(subject, predicate, object term.Term, graph ...term.Term) []Quad {
	return s.quads
}

// IsEmpty reports whether the store holds no quads.
func (s *SimpleStore) IsEmpty() bool { return len(s.quads) == 0 }

// Size returns the number of buffered quads.
func (s *SimpleStore) Size() int { return len(s.quads) }

// RemoveDuplicates drops every quad that is structurally equivalent to an
// earlier one. The scan is stable: first occurrences win and relative order
// is preserved. Quadratic in store size, which is acceptable for batch-sized
// buffers.
func (s *SimpleStore) RemoveDuplicates() {
	deduped := make([]Quad, 0, len(s.quads))
	for _, q := range s.quads {
		seen := false
		for _, kept := range deduped {
			if kept.Equal(q) {
				seen = true
				break
			}
		}
		if !seen {
			deduped = append(deduped, q)
		}
	}
	s.quads = deduped
}

// ToNQuads writes the buffered quads to w in the N-Quads line format, one
// period-terminated statement per line, in insertion order. Escaping is the
// terms' responsibility; the store adds none.
func (s *SimpleStore) ToNQuads(w io.Writer) error {
	for _, q := range s.quads {
		if _, err := io.WriteString(w, q.String()+"\n"); err != nil {
			return fmt.Errorf("store: write n-quads: %w", err)
		}
	}
	return nil
}

// ToTurtle always fails with ErrUnsupportedFormat.
func (s *SimpleStore) ToTurtle(w io.Writer) error {
	return NewFormatError(FormatTurtle)
}

// ToJSONLD always fails with ErrUnsupportedFormat.
func (s *SimpleStore) ToJSONLD(w io.Writer) error {
	return NewFormatError(FormatJSONLD)
}

// ToTrix always fails with ErrUnsupportedFormat.
func (s *SimpleStore) ToTrix(w io.Writer) error {
	return NewFormatError(FormatTrix)
}

// ToTrig always fails with ErrUnsupportedFormat.
func (s *SimpleStore) ToTrig(w io.Writer) error {
	return NewFormatError(FormatTrig)
}

// SetNamespaces is a no-op. Namespace bindings only matter for prefixed
// serializations, and this store emits none.
func (s *SimpleStore) SetNamespaces(namespaces []term.Namespace) {}
