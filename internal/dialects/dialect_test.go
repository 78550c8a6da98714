package dialects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDialect(t *testing.T) {
	for _, name := range []string{"sqlserver", "mysql", "postgres", "sqlite3", "sqlite"} {
		require.NotNil(t, GetDialect(name), name)
	}

	assert.Panics(t, func() { GetDialect("oracle") })
}

func TestQualifyProcedure(t *testing.T) {
	tests := []struct {
		name   string
		proc   string
		schema string
		want   string
	}{
		{"unqualified", "GetCustomer", "dbo", "dbo.GetCustomer"},
		{"already qualified", "sales.GetCustomer", "dbo", "sales.GetCustomer"},
		{"empty schema", "GetCustomer", "", "GetCustomer"},
	}

	d := GetDialect("sqlserver")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.QualifyProcedure(tt.proc, tt.schema))
		})
	}
}

func TestSQLServerDialect(t *testing.T) {
	d := &SQLServerDialect{}

	assert.Equal(t, "dbo", d.DefaultSchema())
	assert.Equal(t, "dbo.GetCustomer", d.CallStatement("dbo.GetCustomer", []string{"a", "b"}))
	assert.Equal(t, "@p1", d.Placeholder(1))
	assert.Equal(t, "[week]", d.QuoteIdentifier("week"))
	assert.True(t, d.SupportsStoredProcedures())
	assert.True(t, d.SupportsOutputParameters())
	assert.True(t, d.SupportsNamedParameters())
}

func TestMySQLDialect(t *testing.T) {
	d := &MySQLDialect{}

	assert.Equal(t, "", d.DefaultSchema())
	assert.Equal(t, "CALL GetTotals(?, ?)", d.CallStatement("GetTotals", []string{"a", "b"}))
	assert.Equal(t, "CALL Ping()", d.CallStatement("Ping", nil))
	assert.Equal(t, "?", d.Placeholder(3))
	assert.Equal(t, "`select`", d.QuoteIdentifier("select"))
	assert.True(t, d.SupportsStoredProcedures())
	assert.False(t, d.SupportsOutputParameters())
	assert.False(t, d.SupportsNamedParameters())
}

func TestPostgresDialect(t *testing.T) {
	d := &PostgresDialect{}

	assert.Equal(t, "public", d.DefaultSchema())
	assert.Equal(t, "CALL audit.write($1, $2)", d.CallStatement("audit.write", []string{"a", "b"}))
	assert.Equal(t, "$2", d.Placeholder(2))
	assert.Equal(t, `"select"`, d.QuoteIdentifier("select"))
	assert.True(t, d.SupportsStoredProcedures())
	assert.False(t, d.SupportsOutputParameters())
	assert.False(t, d.SupportsNamedParameters())
}

func TestSQLiteDialect(t *testing.T) {
	d := &SQLiteDialect{}

	assert.Equal(t, "", d.DefaultSchema())
	assert.Equal(t, "x", d.QualifyProcedure("x", "main"))
	assert.False(t, d.SupportsStoredProcedures())
	assert.False(t, d.SupportsOutputParameters())
	assert.True(t, d.SupportsNamedParameters())
}
