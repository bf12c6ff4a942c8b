// Package rml contains the in-memory intermediate layer of an RDF
// generation pipeline.
//
// The pipeline turns relational and tabular sources into RDF statements.
// This module covers the two stateful pieces in the middle of that flow:
//
//   - store: buffers generated statements (quads) before serialization and
//     emits them as N-Quads.
//   - access: executes a query against a configured relational database and
//     streams the result set as CSV, annotated with an inferred XSD
//     datatype per column.
//
// Mapping-rule evaluation, argument parsing and output-file handling are
// collaborators of this module, not part of it; they consume the QuadStore
// and Access contracts defined in the subpackages.
//
// # Packages
//
//   - term: the RDF term model (IRI, Literal, BlankNode) and namespaces
//   - store: the QuadStore contract and the list-backed SimpleStore
//   - dialect: the closed table of relational vendor profiles
//   - access: the Access contract and the relational (RDB) adapter
//
// # Typical flow
//
//	qs := store.NewSimpleStore()
//	qs.AddQuad(subject, predicate, object, nil)
//	qs.RemoveDuplicates()
//	if err := qs.ToNQuads(out); err != nil {
//		// ...
//	}
//
// Independently, a mapping rule backed by a relational source holds an
// access.RDB and reads typed CSV from it:
//
//	rdb := access.NewRDB("localhost:3306/people", dialect.MySQL,
//		"SELECT * FROM persons",
//		access.WithCredentials("demo", "secret"))
//	r, err := rdb.Open(ctx)
//	// rdb.DataTypes() is final once Open has returned.
//
// The root package itself only carries the vocabulary constants shared by
// the subpackages.
package rml
