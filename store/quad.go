package store

import "github.com/cognizone/rmlmapper-go/term"

// Quad is a single RDF statement: subject, predicate and object, plus an
// optional named graph. A nil Graph places the statement in the default
// graph. Quads are immutable after construction.
type Quad struct {
	Subject   term.Term
	Predicate term.Term
	Object    term.Term
	// Graph is the named graph, or nil for the default graph.
	Graph term.Term
}

// NewQuad returns a quad for the given terms. Graph may be nil.
func NewQuad(subject, predicate, object, graph term.Term) Quad {
	return Quad{Subject: subject, Predicate: predicate, Object: object, Graph: graph}
}

// Equal reports whether q and other are structurally equivalent: equal
// subject, predicate and object, and either both in the default graph or
// both in the same named graph. A default-graph quad never equals a
// named-graph one.
func (q Quad) Equal(other Quad) bool {
	if q.Subject != other.Subject || q.Predicate != other.Predicate || q.Object != other.Object {
		return false
	}
	if q.Graph == nil || other.Graph == nil {
		return q.Graph == nil && other.Graph == nil
	}
	return q.Graph == other.Graph
}

// String returns the N-Quads statement for the quad, period-terminated,
// without a trailing newline. Term escaping is already applied by the terms
// themselves.
func (q Quad) String() string {
	s := q.Subject.String() + " " + q.Predicate.String() + " " + q.Object.String()
	if q.Graph != nil {
		s += " " + q.Graph.String()
	}
	return s + "."
}
