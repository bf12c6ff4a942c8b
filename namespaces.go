package rml

// Well-known vocabulary namespaces used across the pipeline. The access
// package derives its datatype IRIs from XSD; the others exist for callers
// building terms by hand.
const (
	// XSD is the XML Schema datatypes namespace.
	XSD = "http://www.w3.org/2001/XMLSchema#"
	// RDF is the RDF syntax vocabulary namespace.
	RDF = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	// RDFS is the RDF Schema vocabulary namespace.
	RDFS = "http://www.w3.org/2000/01/rdf-schema#"
)

// XSDTerm returns the full IRI of an XML Schema datatype, e.g.
// XSDTerm("integer") == "http://www.w3.org/2001/XMLSchema#integer".
func XSDTerm(local string) string { return XSD + local }

// RDFTerm returns the full IRI of a term in the RDF vocabulary.
func RDFTerm(local string) string { return RDF + local }

// RDFSTerm returns the full IRI of a term in the RDF Schema vocabulary.
func RDFSTerm(local string) string { return RDFS + local }
