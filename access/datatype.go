package access

import (
	"strings"

	rml "github.com/cognizone/rmlmapper-go"
)

// XSD datatype IRIs assignable to columns.
const (
	xsdHexBinary = rml.XSD + "hexBinary"
	xsdDecimal   = rml.XSD + "decimal"
	xsdInteger   = rml.XSD + "integer"
	xsdDouble    = rml.XSD + "double"
	xsdBoolean   = rml.XSD + "boolean"
	xsdDate      = rml.XSD + "date"
	xsdTime      = rml.XSD + "time"
	xsdDateTime  = rml.XSD + "dateTime"
)

// columnDataType maps a vendor column type name to the XSD datatype IRI for
// literals built from that column. Matching is case-insensitive. The empty
// string means no datatype could be inferred and the column stays untyped.
func columnDataType(typeName string) string {
	switch strings.ToUpper(typeName) {
	case "BYTEA", "BINARY", "BINARY VARYING", "BINARY LARGE OBJECT", "VARBINARY":
		return xsdHexBinary
	case "NUMERIC", "DECIMAL":
		return xsdDecimal
	case "SMALLINT", "INT", "INT4", "INT8", "INTEGER", "BIGINT":
		return xsdInteger
	case "FLOAT", "FLOAT4", "FLOAT8", "REAL", "DOUBLE", "DOUBLE PRECISION":
		return xsdDouble
	case "BIT", "BOOL", "BOOLEAN":
		return xsdBoolean
	case "DATE":
		return xsdDate
	case "TIME":
		return xsdTime
	case "TIMESTAMP", "DATETIME":
		return xsdDateTime
	default:
		return ""
	}
}

// normalizeValue prepares a column value for the CSV output. Double columns
// lose every ".0" occurrence: at least one vendor renders integral doubles
// as "3.0", which downstream object generation must not see.
func normalizeValue(data, datatype string) string {
	if datatype == xsdDouble {
		return strings.ReplaceAll(data, ".0", "")
	}
	return data
}
