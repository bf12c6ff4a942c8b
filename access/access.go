package access

import (
	"context"
	"io"
)

// Access produces the raw bytes of one logical data source together with
// the datatype inferred for each of its columns. An Access is configured
// once and may be opened repeatedly; its configuration also defines its
// identity, so callers can deduplicate equivalent accesses.
type Access interface {
	// Open produces the source bytes. The returned stream is fully
	// materialized: by the time Open returns, the source has been read to
	// the end and DataTypes is final. Every call reads the source anew.
	Open(ctx context.Context) (io.ReadCloser, error)

	// DataTypes maps column labels to the RDF datatype IRIs inferred for
	// them, for sources with a notion of typed columns. The map is only
	// populated by a successful Open.
	DataTypes() map[string]string
}
