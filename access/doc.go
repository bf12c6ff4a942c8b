// Package access connects mapping rules to the data sources they read.
//
// An Access produces two things: the raw bytes of one logical source and,
// for tabular sources, the RDF datatype inferred for each column. The
// relational implementation, RDB, runs a single SQL query and materializes
// the result set as CSV text.
//
// # Connection Strings
//
// RDB addresses databases with JDBC-convention URLs built from the vendor
// profile, the data source name and the optional credentials:
//
//	jdbc:<prefix>//<dsn>
//
// Credentials are spliced in first (Oracle inlines them at the ":@" marker,
// every other vendor appends user and password URL parameters), then the
// vendor fixups run: MySQL appends serverTimezone=UTC&useSSL=false, SQL
// Server rewrites parameter separators to semicolons. The transformations
// are fixed, tested vendor quirks, not a general URL builder, and their
// order matters.
//
// # Datatype Inference
//
// Column vendor type names map to XSD datatype IRIs (INTEGER to
// xsd:integer, DOUBLE to xsd:double, TIMESTAMP to xsd:dateTime, and so on).
// Unrecognized type names leave the column untyped. The map is available
// from DataTypes once Open has returned.
//
// # Usage
//
//	rdb := access.NewRDB("localhost:3306/people", dialect.MySQL,
//	    "SELECT * FROM persons",
//	    access.WithCredentials("demo", "secret"),
//	)
//	rc, err := rdb.Open(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rc.Close()
//	// rc streams the CSV text; rdb.DataTypes() has the column datatypes.
//
// # Drivers
//
// The package registers database/sql drivers for the MySQL, PostgreSQL and
// SQLite profiles. Opening a source whose profile names a driver that is
// not compiled in fails with an unknown driver error.
//
// Go drivers take their own DSN syntax rather than JDBC-convention URLs.
// When the two differ, WithDriverDSN supplies the string the driver is
// dialed with; the connection string and the access identity are unchanged.
package access
