package access

import (
	"bytes"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnDataType(t *testing.T) {
	t.Parallel()
	tests := []struct {
		typeName string
		want     string
	}{
		{typeName: "BYTEA", want: xsdHexBinary},
		{typeName: "BINARY", want: xsdHexBinary},
		{typeName: "BINARY VARYING", want: xsdHexBinary},
		{typeName: "BINARY LARGE OBJECT", want: xsdHexBinary},
		{typeName: "VARBINARY", want: xsdHexBinary},
		{typeName: "NUMERIC", want: xsdDecimal},
		{typeName: "DECIMAL", want: xsdDecimal},
		{typeName: "SMALLINT", want: xsdInteger},
		{typeName: "INT", want: xsdInteger},
		{typeName: "INT4", want: xsdInteger},
		{typeName: "INT8", want: xsdInteger},
		{typeName: "INTEGER", want: xsdInteger},
		{typeName: "BIGINT", want: xsdInteger},
		{typeName: "FLOAT", want: xsdDouble},
		{typeName: "FLOAT4", want: xsdDouble},
		{typeName: "FLOAT8", want: xsdDouble},
		{typeName: "REAL", want: xsdDouble},
		{typeName: "DOUBLE", want: xsdDouble},
		{typeName: "DOUBLE PRECISION", want: xsdDouble},
		{typeName: "BIT", want: xsdBoolean},
		{typeName: "BOOL", want: xsdBoolean},
		{typeName: "BOOLEAN", want: xsdBoolean},
		{typeName: "DATE", want: xsdDate},
		{typeName: "TIME", want: xsdTime},
		{typeName: "TIMESTAMP", want: xsdDateTime},
		{typeName: "DATETIME", want: xsdDateTime},
		{typeName: "double precision", want: xsdDouble},
		{typeName: "Boolean", want: xsdBoolean},
		{typeName: "varchar", want: ""},
		{typeName: "TEXT", want: ""},
		{typeName: "JSONB", want: ""},
		{typeName: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, columnDataType(tt.typeName))
		})
	}
}

func TestNormalizeValue(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		data     string
		datatype string
		want     string
	}{
		{name: "integral double", data: "3.0", datatype: xsdDouble, want: "3"},
		{name: "fractional double untouched", data: "3.14", datatype: xsdDouble, want: "3.14"},
		{name: "ten point zero", data: "10.0", datatype: xsdDouble, want: "10"},
		{name: "every occurrence goes", data: "10.01", datatype: xsdDouble, want: "11"},
		{name: "non-double keeps the text", data: "3.0", datatype: xsdDecimal, want: "3.0"},
		{name: "untyped keeps the text", data: "3.0", datatype: "", want: "3.0"},
		{name: "null as empty text", data: "", datatype: xsdDouble, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, normalizeValue(tt.data, tt.datatype))
		})
	}
}

// openPersons seeds an in-memory SQLite database so the conversion runs
// against a real engine and real column metadata. Column types stay with
// the text, integer and float storage classes; the driver rewrites values
// of date- and boolean-declared columns into richer Go types, which is the
// mock driver's territory.
func openPersons(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE persons (
		name   TEXT,
		age    INTEGER,
		height DOUBLE
	)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO persons VALUES
		('alice', 30, 1.75),
		('bob', NULL, 3.5)`)
	require.NoError(t, err)
	return db
}

func TestWriteCSV(t *testing.T) {
	t.Run("typed rows", func(t *testing.T) {
		db := openPersons(t)
		rows, err := db.Query(`SELECT name, age, height FROM persons ORDER BY name`)
		require.NoError(t, err)
		defer rows.Close()

		var buf bytes.Buffer
		datatypes, err := writeCSV(&buf, rows)
		require.NoError(t, err)

		want := "name,age,height\n" +
			"alice,30,1.75\n" +
			"bob,,3.5\n"
		assert.Equal(t, want, buf.String())

		assert.Equal(t, map[string]string{
			"age":    xsdInteger,
			"height": xsdDouble,
		}, datatypes, "text columns stay untyped")
	})

	t.Run("empty result set", func(t *testing.T) {
		db := openPersons(t)
		rows, err := db.Query(`SELECT name, age FROM persons WHERE 1 = 0`)
		require.NoError(t, err)
		defer rows.Close()

		var buf bytes.Buffer
		datatypes, err := writeCSV(&buf, rows)
		require.NoError(t, err)

		assert.Equal(t, "name,age\n", buf.String(), "the header survives an empty result")
		require.NotNil(t, datatypes)
		assert.Empty(t, datatypes)
	})

	t.Run("empty label becomes the null header", func(t *testing.T) {
		db := openPersons(t)
		rows, err := db.Query(`SELECT name AS "" FROM persons ORDER BY name`)
		require.NoError(t, err)
		defer rows.Close()

		var buf bytes.Buffer
		datatypes, err := writeCSV(&buf, rows)
		require.NoError(t, err)

		assert.Equal(t, NullHeader+"\nalice\nbob\n", buf.String())
		assert.Empty(t, datatypes, "a text column contributes no datatype")
	})

	t.Run("quoting is delegated to the csv layer", func(t *testing.T) {
		db := openPersons(t)
		_, err := db.Exec(`INSERT INTO persons (name) VALUES ('last, first')`)
		require.NoError(t, err)

		rows, err := db.Query(`SELECT name FROM persons WHERE name = 'last, first'`)
		require.NoError(t, err)
		defer rows.Close()

		var buf bytes.Buffer
		_, err = writeCSV(&buf, rows)
		require.NoError(t, err)
		assert.Equal(t, "name\n\"last, first\"\n", buf.String())
	})
}
