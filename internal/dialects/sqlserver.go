package dialects

import (
	"strconv"
	"strings"
)

// SQLServerDialect implements the SQL Server command dialect used with the
// github.com/microsoft/go-mssqldb driver.
type SQLServerDialect struct{}

// DefaultSchema returns "dbo", the SQL Server default schema.
func (d *SQLServerDialect) DefaultSchema() string {
	return "dbo"
}

// QualifyProcedure prefixes an unqualified procedure name with the schema.
func (d *SQLServerDialect) QualifyProcedure(name, schema string) string {
	return qualify(name, schema)
}

// CallStatement returns the bare qualified procedure name. The sqlserver driver
// executes a command consisting of a procedure name as a stored-procedure call
// with its named parameters.
func (d *SQLServerDialect) CallStatement(proc string, _ []string) string {
	return proc
}

// Placeholder returns the native named placeholder "@pN".
func (d *SQLServerDialect) Placeholder(ordinal int) string {
	return "@p" + strconv.Itoa(ordinal)
}

// QuoteIdentifier quotes an identifier using square brackets.
func (d *SQLServerDialect) QuoteIdentifier(s string) string {
	return "[" + strings.ReplaceAll(s, "]", "]]") + "]"
}

// SupportsStoredProcedures reports true.
func (d *SQLServerDialect) SupportsStoredProcedures() bool {
	return true
}

// SupportsOutputParameters reports true; the driver binds sql.Out arguments.
func (d *SQLServerDialect) SupportsOutputParameters() bool {
	return true
}

// SupportsNamedParameters reports true; the driver maps argument names onto
// @Name parameters natively.
func (d *SQLServerDialect) SupportsNamedParameters() bool {
	return true
}

func init() {
	RegisterDialect("sqlserver", &SQLServerDialect{})
}
