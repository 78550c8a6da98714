package dialects

import "strings"

// SQLiteDialect implements the SQLite command dialect. SQLite has no stored
// procedures; only free-text commands are supported.
type SQLiteDialect struct{}

// DefaultSchema returns "" — SQLite has no schema namespaces for routines.
func (d *SQLiteDialect) DefaultSchema() string {
	return ""
}

// QualifyProcedure returns the name unchanged.
func (d *SQLiteDialect) QualifyProcedure(name, _ string) string {
	return name
}

// CallStatement returns the procedure name unchanged. It is never reached in
// practice because SupportsStoredProcedures reports false.
func (d *SQLiteDialect) CallStatement(proc string, _ []string) string {
	return proc
}

// Placeholder returns SQLite placeholder format (always "?").
func (d *SQLiteDialect) Placeholder(_ int) string {
	return "?"
}

// QuoteIdentifier quotes a SQLite identifier using double quotes.
func (d *SQLiteDialect) QuoteIdentifier(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// SupportsStoredProcedures reports false.
func (d *SQLiteDialect) SupportsStoredProcedures() bool {
	return false
}

// SupportsOutputParameters reports false.
func (d *SQLiteDialect) SupportsOutputParameters() bool {
	return false
}

// SupportsNamedParameters reports true; SQLite binds @Name, :Name, and $Name
// parameters natively.
func (d *SQLiteDialect) SupportsNamedParameters() bool {
	return true
}

func init() {
	RegisterDialect("sqlite3", &SQLiteDialect{})
	RegisterDialect("sqlite", &SQLiteDialect{})
}
