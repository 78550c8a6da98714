package dialects

import (
	"strconv"
	"strings"
)

// PostgresDialect implements the PostgreSQL command dialect used with the
// github.com/lib/pq driver.
type PostgresDialect struct{}

// DefaultSchema returns "public", the PostgreSQL default schema.
func (d *PostgresDialect) DefaultSchema() string {
	return "public"
}

// QualifyProcedure prefixes an unqualified procedure name with the schema.
func (d *PostgresDialect) QualifyProcedure(name, schema string) string {
	return qualify(name, schema)
}

// CallStatement renders a CALL statement with positional $N placeholders.
func (d *PostgresDialect) CallStatement(proc string, paramNames []string) string {
	placeholders := make([]string, len(paramNames))
	for i := range paramNames {
		placeholders[i] = d.Placeholder(i + 1)
	}
	return "CALL " + proc + "(" + strings.Join(placeholders, ", ") + ")"
}

// Placeholder returns PostgreSQL placeholder format ($1, $2, ...).
func (d *PostgresDialect) Placeholder(ordinal int) string {
	return "$" + strconv.Itoa(ordinal)
}

// QuoteIdentifier quotes a PostgreSQL identifier using double quotes.
func (d *PostgresDialect) QuoteIdentifier(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// SupportsStoredProcedures reports true.
func (d *PostgresDialect) SupportsStoredProcedures() bool {
	return true
}

// SupportsOutputParameters reports false; lib/pq does not implement sql.Out.
// INOUT procedure parameters come back as a result set instead.
func (d *PostgresDialect) SupportsOutputParameters() bool {
	return false
}

// SupportsNamedParameters reports false; lib/pq discards argument names and
// binds by position, so values must line up with $N placeholders explicitly.
func (d *PostgresDialect) SupportsNamedParameters() bool {
	return false
}

func init() {
	RegisterDialect("postgres", &PostgresDialect{})
}
