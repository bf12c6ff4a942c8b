// Package store buffers the RDF statements produced during mapping
// evaluation and serializes them once evaluation is done.
//
// # Quads
//
// A Quad is an immutable subject, predicate, object triple with an optional
// named graph. Quads with a nil graph belong to the default graph; a quad in
// the default graph is never equal to one in a named graph, whatever that
// graph is.
//
// # Stores
//
// The QuadStore interface is the buffering contract:
//
//	type QuadStore interface {
//	    AddQuad(subject, predicate, object, graph term.Term)
//	    Quads(subject, predicate, object term.Term, graph ...term.Term) []Quad
//	    IsEmpty() bool
//	    Size() int
//	    ToNQuads(w io.Writer) error
//	    ToTurtle(w io.Writer) error
//	    ToJSONLD(w io.Writer) error
//	    ToTrix(w io.Writer) error
//	    ToTrig(w io.Writer) error
//	    SetNamespaces(namespaces []term.Namespace)
//	}
//
// SimpleStore is the one in-memory implementation: an insertion-ordered
// slice with no secondary index. It serializes N-Quads only; the other
// serializers always fail with ErrUnsupportedFormat, signaling that richer
// output needs a different store implementation. Stores are not safe for
// concurrent mutation.
//
// # Usage
//
//	qs := store.NewSimpleStore()
//	qs.AddQuad(subject, predicate, object, nil)
//	qs.RemoveDuplicates()
//	if err := qs.ToNQuads(os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
package store
