// Package term defines the RDF term model used across the mapping pipeline:
// IRIs, literals and blank nodes, plus the namespace bindings a store may be
// handed for prefixed serialization.
//
// All term types are comparable value structs. Comparing two Term interface
// values with == is therefore exactly structural equality: same variant and
// same constituent fields. Terms are never compared by identity.
package term

import (
	"strings"

	"github.com/google/uuid"
)

// Kind identifies the variant of a Term.
type Kind uint8

const (
	// KindIRI is an IRI reference.
	KindIRI Kind = iota
	// KindBlankNode is a blank node identifier.
	KindBlankNode
	// KindLiteral is a literal value.
	KindLiteral
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindIRI:
		return "iri"
	case KindBlankNode:
		return "blank node"
	case KindLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// Term is a value that can appear in an RDF statement.
//
// String returns the canonical N-Quads lexical serialization of the term,
// escaping included; consumers such as the quad store write it verbatim.
type Term interface {
	// Kind reports the term variant.
	Kind() Kind
	// Value returns the constituent value without serialization syntax:
	// the IRI string, the blank node identifier, or the literal lexical form.
	Value() string
	// String returns the canonical lexical serialization.
	String() string
}

// IRI is an RDF IRI reference.
type IRI struct {
	// Val is the IRI string, without angle brackets.
	Val string
}

// NewIRI returns an IRI term for the given IRI string.
func NewIRI(iri string) IRI { return IRI{Val: iri} }

// Kind returns KindIRI.
func (i IRI) Kind() Kind { return KindIRI }

// Value returns the IRI string.
func (i IRI) Value() string { return i.Val }

// String returns the IRI wrapped in angle brackets.
func (i IRI) String() string { return "<" + i.Val + ">" }

// BlankNode is an RDF blank node.
type BlankNode struct {
	// ID is the blank node identifier, without the "_:" prefix.
	ID string
}

// NewBlankNode mints a blank node with a fresh UUID identifier. Generated
// identifiers are unique per process, so terms produced by independent
// mapping rules never collide.
func NewBlankNode() BlankNode { return BlankNode{ID: uuid.NewString()} }

// Kind returns KindBlankNode.
func (b BlankNode) Kind() Kind { return KindBlankNode }

// Value returns the blank node identifier.
func (b BlankNode) Value() string { return b.ID }

// String returns the identifier prefixed with "_:".
func (b BlankNode) String() string { return "_:" + b.ID }

// Literal is an RDF literal with an optional datatype or language tag.
// A literal carries at most one of the two; when Lang is set the datatype
// is implied (rdf:langString) and not serialized.
type Literal struct {
	// Lexical is the lexical form.
	Lexical string
	// Datatype is the datatype IRI; the zero IRI means a plain literal.
	Datatype IRI
	// Lang is the language tag, if any.
	Lang string
}

// NewLiteral returns a plain literal.
func NewLiteral(lexical string) Literal { return Literal{Lexical: lexical} }

// NewTypedLiteral returns a literal with the given datatype IRI.
func NewTypedLiteral(lexical, datatype string) Literal {
	return Literal{Lexical: lexical, Datatype: IRI{Val: datatype}}
}

// NewLangLiteral returns a language-tagged literal.
func NewLangLiteral(lexical, lang string) Literal {
	return Literal{Lexical: lexical, Lang: lang}
}

// Kind returns KindLiteral.
func (l Literal) Kind() Kind { return KindLiteral }

// Value returns the lexical form.
func (l Literal) Value() string { return l.Lexical }

// String returns the quoted, escaped lexical form followed by the language
// tag or datatype suffix.
func (l Literal) String() string {
	s := `"` + escapeLiteral(l.Lexical) + `"`
	if l.Lang != "" {
		return s + "@" + l.Lang
	}
	if l.Datatype.Val != "" {
		return s + "^^" + l.Datatype.String()
	}
	return s
}

// escapeLiteral escapes the lexical form for the N-Quads grammar.
func escapeLiteral(s string) string {
	if !strings.ContainsAny(s, "\\\"\n\r\t") {
		return s
	}
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\r`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	return s
}

// Namespace binds a prefix to a namespace IRI. Stores accept namespace sets
// for serializations that support prefixing; implementations without such a
// serialization ignore them.
type Namespace struct {
	// Prefix is the short prefix, e.g. "xsd".
	Prefix string
	// Name is the namespace IRI the prefix expands to.
	Name string
}
