package dialects

import "strings"

// MySQLDialect implements the MySQL command dialect used with the
// github.com/go-sql-driver/mysql driver.
type MySQLDialect struct{}

// DefaultSchema returns "" — MySQL procedures resolve against the current database.
func (d *MySQLDialect) DefaultSchema() string {
	return ""
}

// QualifyProcedure prefixes an unqualified procedure name with the schema.
func (d *MySQLDialect) QualifyProcedure(name, schema string) string {
	return qualify(name, schema)
}

// CallStatement renders a CALL statement with one "?" per parameter.
func (d *MySQLDialect) CallStatement(proc string, paramNames []string) string {
	placeholders := make([]string, len(paramNames))
	for i := range paramNames {
		placeholders[i] = "?"
	}
	return "CALL " + proc + "(" + strings.Join(placeholders, ", ") + ")"
}

// Placeholder returns MySQL placeholder format (always "?").
func (d *MySQLDialect) Placeholder(_ int) string {
	return "?"
}

// QuoteIdentifier quotes a MySQL identifier using backticks.
func (d *MySQLDialect) QuoteIdentifier(s string) string {
	return "`" + strings.ReplaceAll(s, "`", "``") + "`"
}

// SupportsStoredProcedures reports true.
func (d *MySQLDialect) SupportsStoredProcedures() bool {
	return true
}

// SupportsOutputParameters reports false; the driver cannot bind sql.Out
// arguments, so OUT parameters must be read back with a follow-up SELECT.
func (d *MySQLDialect) SupportsOutputParameters() bool {
	return false
}

// SupportsNamedParameters reports false; go-sql-driver/mysql rejects any
// argument carrying a name, so values bind positionally against "?".
func (d *MySQLDialect) SupportsNamedParameters() bool {
	return false
}

func init() {
	RegisterDialect("mysql", &MySQLDialect{})
}
