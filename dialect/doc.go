// Package dialect describes the relational database vendors the access layer
// can talk to.
//
// A vendor is captured by a Profile: its canonical name, the name of the
// database/sql driver that serves it, and the URL prefix its JDBC-convention
// connection strings start with. Profiles are configuration data; the package
// ships an immutable set and performs no I/O.
//
// # Shipped Profiles
//
// The following vendor profiles are available:
//
//   - MySQL: MySQL and MariaDB
//   - PostgreSQL: PostgreSQL
//   - SQLServer: Microsoft SQL Server
//   - Oracle: Oracle Database (thin driver convention)
//   - DB2: IBM DB2 (AS400 convention)
//   - SQLite: SQLite
//   - H2: H2 in server mode
//
// # Lookup
//
// Profiles are usually selected by the vendor name found in a mapping
// document:
//
//	profile, ok := dialect.Lookup("PostgreSQL")
//	if !ok {
//	    // unknown vendor
//	}
//
// Lookup is case-insensitive and accepts the common aliases "postgres",
// "mssql" and "mariadb".
//
// # Custom Vendors
//
// The shipped set is closed, but a caller may construct a Profile literal for
// an engine not listed here. The access layer treats every profile it does
// not recognize by name as a generic vendor: the connection string becomes
// the plain base form with credentials appended as URL parameters.
package dialect
