package store

import (
	"io"

	"github.com/cognizone/rmlmapper-go/term"
)

// Format identifies an RDF serialization format.
type Format string

// Serialization formats a store may be asked for.
const (
	FormatNQuads Format = "nquads"
	FormatTurtle Format = "turtle"
	FormatJSONLD Format = "jsonld"
	FormatTrix   Format = "trix"
	FormatTrig   Format = "trig"
)

// String returns the format name.
func (f Format) String() string { return string(f) }

// QuadStore buffers quads during mapping evaluation and serializes them on
// demand. Implementations are not required to be safe for concurrent use.
type QuadStore interface {
	// AddQuad buffers a quad built from the given terms. Graph may be nil
	// for the default graph. A quad missing its subject, predicate or
	// object is dropped without error.
	AddQuad(subject, predicate, object, graph term.Term)

	// Quads returns the buffered quads matching the given pattern, where a
	// nil term is a wildcard. At most one graph term may be given; omitting
	// it matches any graph. Implementations may document a weaker contract.
	Quads(subject, predicate, object term.Term, graph ...term.Term) []Quad

	// IsEmpty reports whether the store holds no quads.
	IsEmpty() bool

	// Size returns the number of buffered quads.
	Size() int

	// ToNQuads writes the buffered quads to w in the N-Quads line format,
	// one statement per line, in insertion order.
	ToNQuads(w io.Writer) error

	// ToTurtle writes the buffered quads to w as Turtle.
	ToTurtle(w io.Writer) error

	// ToJSONLD writes the buffered quads to w as JSON-LD.
	ToJSONLD(w io.Writer) error

	// ToTrix writes the buffered quads to w as TriX.
	ToTrix(w io.Writer) error

	// ToTrig writes the buffered quads to w as TriG.
	ToTrig(w io.Writer) error

	// SetNamespaces hands the store the prefix bindings to use for
	// serializations that support prefixing.
	SetNamespaces(namespaces []term.Namespace)
}
