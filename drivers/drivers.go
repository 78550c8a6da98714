// Package drivers registers the database/sql drivers dbexec ships dialects
// for. Import it for side effects from the application entry point:
//
//	import _ "github.com/coregx/dbexec/drivers"
//
// Applications that want a subset can instead import the individual drivers
// directly.
package drivers

import (
	// SQL Server: native @Name parameters and output-parameter support.
	_ "github.com/microsoft/go-mssqldb"

	// MySQL.
	_ "github.com/go-sql-driver/mysql"

	// PostgreSQL.
	_ "github.com/lib/pq"

	// SQLite (cgo). Tests use the pure-Go modernc.org/sqlite instead.
	_ "github.com/mattn/go-sqlite3"
)
