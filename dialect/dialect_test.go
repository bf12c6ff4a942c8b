package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		vendor string
		want   Profile
		ok     bool
	}{
		{name: "mysql", vendor: "mysql", want: MySQL, ok: true},
		{name: "mysql upper", vendor: "MySQL", want: MySQL, ok: true},
		{name: "mariadb alias", vendor: "mariadb", want: MySQL, ok: true},
		{name: "postgresql", vendor: "postgresql", want: PostgreSQL, ok: true},
		{name: "postgres alias", vendor: "Postgres", want: PostgreSQL, ok: true},
		{name: "sqlserver", vendor: "sqlserver", want: SQLServer, ok: true},
		{name: "mssql alias", vendor: "MSSQL", want: SQLServer, ok: true},
		{name: "oracle", vendor: "Oracle", want: Oracle, ok: true},
		{name: "db2", vendor: "db2", want: DB2, ok: true},
		{name: "sqlite", vendor: "SQLite", want: SQLite, ok: true},
		{name: "h2", vendor: "h2", want: H2, ok: true},
		{name: "whitespace trimmed", vendor: "  mysql  ", want: MySQL, ok: true},
		{name: "unknown vendor", vendor: "cassandra", ok: false},
		{name: "empty", vendor: "", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Lookup(tt.vendor)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProfileString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "oracle", Oracle.String())
	assert.Equal(t, "postgresql", PostgreSQL.String())
}
