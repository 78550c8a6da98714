// Package dialects provides database-specific command dialects for SQL Server,
// MySQL, PostgreSQL, and SQLite: schema qualification, stored-procedure call
// shaping, placeholder syntax, and output-parameter capability flags.
package dialects

import "strings"

// Dialect defines database-specific command behaviors.
type Dialect interface {
	// DefaultSchema returns the schema prepended to unqualified procedure names.
	DefaultSchema() string
	// QualifyProcedure prefixes name with schema unless name already contains a
	// schema qualifier (a "."). An empty schema leaves the name untouched.
	QualifyProcedure(name, schema string) string
	// CallStatement renders the text the driver executes to invoke a stored
	// procedure with the given parameter names, in binding order.
	CallStatement(proc string, paramNames []string) string
	// Placeholder returns the positional placeholder for the given 1-based ordinal.
	Placeholder(ordinal int) string
	// QuoteIdentifier quotes a schema, table, or procedure identifier.
	QuoteIdentifier(s string) string
	// SupportsStoredProcedures reports whether the database has stored procedures.
	SupportsStoredProcedures() bool
	// SupportsOutputParameters reports whether the driver can bind Output and
	// InputOutput parameters.
	SupportsOutputParameters() bool
	// SupportsNamedParameters reports whether the driver accepts name-addressed
	// arguments. When false, arguments must be bound positionally in insertion
	// order against the dialect's placeholders.
	SupportsNamedParameters() bool
}

var dialects = make(map[string]Dialect)

// RegisterDialect registers a database dialect by driver name.
func RegisterDialect(name string, d Dialect) {
	dialects[name] = d
}

// GetDialect retrieves a registered dialect by driver name, panics if not found.
func GetDialect(name string) Dialect {
	if d, ok := dialects[name]; ok {
		return d
	}
	panic("unsupported dialect: " + name)
}

// qualify implements the shared schema-prefix rule: a name containing "." is
// already qualified and passes through unchanged.
func qualify(name, schema string) string {
	if schema == "" || strings.Contains(name, ".") {
		return name
	}
	return schema + "." + name
}
