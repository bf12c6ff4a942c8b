package dialect

import "strings"

// Profile identifies a relational database vendor: the database/sql driver
// name used to open connections and the URL prefix of the vendor's
// JDBC-convention connection strings.
//
// Profiles are immutable values. Two profiles are interchangeable iff all
// three fields match.
type Profile struct {
	// Name is the canonical vendor name, e.g. "mysql".
	Name string
	// Driver is the database/sql driver name registered for this vendor.
	Driver string
	// Prefix is the vendor part of the JDBC-convention URL, up to but not
	// including the "//" authority marker, e.g. "mysql:" or "oracle:thin:@".
	Prefix string
}

// String returns the canonical vendor name.
func (p Profile) String() string { return p.Name }

// Shipped vendor profiles.
var (
	MySQL      = Profile{Name: "mysql", Driver: "mysql", Prefix: "mysql:"}
	PostgreSQL = Profile{Name: "postgresql", Driver: "postgres", Prefix: "postgresql:"}
	SQLServer  = Profile{Name: "sqlserver", Driver: "sqlserver", Prefix: "sqlserver:"}
	Oracle     = Profile{Name: "oracle", Driver: "oracle", Prefix: "oracle:thin:@"}
	DB2        = Profile{Name: "db2", Driver: "go_ibm_db", Prefix: "as400:"}
	SQLite     = Profile{Name: "sqlite", Driver: "sqlite", Prefix: "sqlite:"}
	H2         = Profile{Name: "h2", Driver: "h2", Prefix: "h2:tcp:"}
)

// profiles maps lower-cased vendor names and their aliases to profiles.
// The table is populated once at init and never mutated afterwards.
var profiles = map[string]Profile{
	"mysql":      MySQL,
	"mariadb":    MySQL,
	"postgresql": PostgreSQL,
	"postgres":   PostgreSQL,
	"sqlserver":  SQLServer,
	"mssql":      SQLServer,
	"oracle":     Oracle,
	"db2":        DB2,
	"sqlite":     SQLite,
	"h2":         H2,
}

// Lookup returns the profile registered under the given vendor name.
// Matching is case-insensitive and tolerates surrounding whitespace and the
// aliases "postgres", "mssql" and "mariadb". The second return value reports
// whether the vendor is known.
func Lookup(vendor string) (Profile, bool) {
	p, ok := profiles[strings.ToLower(strings.TrimSpace(vendor))]
	return p, ok
}
