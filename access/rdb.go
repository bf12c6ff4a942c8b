package access

import (
	"bytes"
	"context"
	"database/sql"
	"hash/fnv"
	"io"
	"log/slog"
	"strings"

	"github.com/cognizone/rmlmapper-go/dialect"
)

// RDB reads one logical source from a relational database. Opening it runs
// a single query and materializes the result set as CSV text with per
// column datatype inference. The six configuration fields are fixed at
// construction and define the adapter's identity; see Equal and Hash.
type RDB struct {
	dsn         string
	profile     dialect.Profile
	username    string
	password    string
	query       string
	contentType string

	driverDSN string
	datatypes map[string]string
}

var _ Access = (*RDB)(nil)

// Option configures an RDB adapter.
type Option func(*RDB)

// WithCredentials sets the username and password spliced into the
// connection string. Credentials only apply when both are non-empty.
func WithCredentials(username, password string) Option {
	return func(r *RDB) {
		r.username = username
		r.password = password
	}
}

// WithContentType overrides the advertised content type of the produced
// stream. The default is "text/csv".
func WithContentType(contentType string) Option {
	return func(r *RDB) {
		r.contentType = contentType
	}
}

// WithDriverDSN sets the data source string handed to the database/sql
// driver, for drivers whose DSN syntax differs from the JDBC convention.
// Identity and ConnectionString are unaffected; when unset, Open dials
// ConnectionString itself.
func WithDriverDSN(dsn string) Option {
	return func(r *RDB) {
		r.driverDSN = dsn
	}
}

// NewRDB returns an adapter for the given data source name, vendor profile
// and SQL query. The query runs verbatim as a single statement on every
// Open call; there is no parameter binding at this layer.
func NewRDB(dsn string, profile dialect.Profile, query string, opts ...Option) *RDB {
	r := &RDB{
		dsn:         dsn,
		profile:     profile,
		query:       query,
		contentType: "text/csv",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ConnectionString builds the JDBC-convention URL for the adapter. The
// credential splice runs first, then the vendor fixups; the fixups assume
// the splice already happened, so the order is fixed.
func (r *RDB) ConnectionString() string {
	cs := "jdbc:" + r.profile.Prefix + "//" + r.dsn
	paramsStarted := false

	if r.username != "" && r.password != "" {
		if r.profile.Name == dialect.Oracle.Name {
			cs = strings.ReplaceAll(cs, ":@", ":"+r.username+"/"+r.password+"@")
		} else if !strings.Contains(cs, "user=") {
			cs += "?user=" + r.username + "&password=" + r.password
			paramsStarted = true
		}
	}

	if r.profile.Name == dialect.MySQL.Name {
		if paramsStarted {
			cs += "&"
		} else {
			cs += "?"
		}
		cs += "serverTimezone=UTC&useSSL=false"
	}

	if r.profile.Name == dialect.SQLServer.Name {
		cs = strings.ReplaceAll(cs, "?", ";")
		cs = strings.ReplaceAll(cs, "&", ";")
		if !strings.HasSuffix(cs, ";") {
			cs += ";"
		}
	}

	return cs
}

// Open connects to the database, executes the query and returns the result
// set as fully materialized CSV text. By the time Open returns the datatype
// map is final; DataTypes reports it. Each call executes the query anew.
// Cancellation comes from ctx alone, no timeout is imposed here: a slow
// query blocks until the context says otherwise. Nothing is retried.
func (r *RDB) Open(ctx context.Context) (io.ReadCloser, error) {
	dsn := r.driverDSN
	if dsn == "" {
		dsn = r.ConnectionString()
	}
	db, err := sql.Open(r.profile.Driver, dsn)
	if err != nil {
		return nil, &Error{Op: OpOpen, Source: r.dsn, Err: err}
	}
	defer closeQuietly(db, "database handle", r.dsn)

	rows, err := db.QueryContext(ctx, r.query)
	if err != nil {
		return nil, &Error{Op: OpQuery, Source: r.dsn, Err: err}
	}
	defer closeQuietly(rows, "result set", r.dsn)

	var buf bytes.Buffer
	datatypes, err := writeCSV(&buf, rows)
	if err != nil {
		return nil, &Error{Op: OpConvert, Source: r.dsn, Err: err}
	}
	r.datatypes = datatypes
	return io.NopCloser(bytes.NewReader(buf.Bytes())), nil
}

// closeQuietly releases a database resource exactly once. Teardown failures
// are logged and swallowed; they never replace the primary error of the
// access.
func closeQuietly(c io.Closer, resource, source string) {
	if err := c.Close(); err != nil {
		slog.Warn("failed to release database resource", "resource", resource, "source", source, "error", err)
	}
}

// DataTypes maps each column label of the last successful Open to the XSD
// datatype IRI inferred from its vendor type. Columns with an unrecognized
// vendor type are absent. The map is nil until Open has succeeded and final
// from then on; an empty result set leaves it empty.
func (r *RDB) DataTypes() map[string]string {
	return r.datatypes
}

// Equal reports whether other is configured identically over all six
// fields. Equal adapters read the same data the same way, so callers may
// deduplicate them.
func (r *RDB) Equal(other *RDB) bool {
	return other != nil &&
		r.dsn == other.dsn &&
		r.profile == other.profile &&
		r.username == other.username &&
		r.password == other.password &&
		r.query == other.query &&
		r.contentType == other.contentType
}

// Hash returns a 64-bit FNV-1a digest over the six configuration fields.
// Equal adapters hash identically, so Hash can key adapter caches.
func (r *RDB) Hash() uint64 {
	h := fnv.New64a()
	for _, field := range []string{r.dsn, r.profile.Name, r.username, r.password, r.query, r.contentType} {
		h.Write([]byte(field))
		h.Write([]byte{0})
	}
	return h.Sum64()
}

// DSN returns the data source name.
func (r *RDB) DSN() string { return r.dsn }

// Profile returns the vendor profile.
func (r *RDB) Profile() dialect.Profile { return r.profile }

// Query returns the SQL query.
func (r *RDB) Query() string { return r.query }

// ContentType returns the advertised content type of the produced stream.
func (r *RDB) ContentType() string { return r.contentType }
