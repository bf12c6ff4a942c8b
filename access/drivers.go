package access

// Drivers compiled in for the shipped vendor profiles. A profile whose
// driver is not registered here fails at Open with an unknown driver error.
import (
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)
