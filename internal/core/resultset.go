package core

import "database/sql"

// Table is one tabular result of an executed command.
type Table struct {
	// Name is empty until assigned by a single-table accessor.
	Name    string
	Columns []string
	Rows    [][]any
}

// ResultSet is the full tabular output of an executed command, potentially
// containing multiple tables.
type ResultSet struct {
	Tables []Table
}

// FirstTable returns the first table, assigning defaultName when the table has
// no name. A result set with zero tables fails with ErrNoResult rather than
// returning nil.
func (rs *ResultSet) FirstTable(defaultName string) (*Table, error) {
	if len(rs.Tables) == 0 {
		return nil, ErrNoResult
	}
	table := &rs.Tables[0]
	if table.Name == "" {
		table.Name = defaultName
	}
	return table, nil
}

// buildResultSet drains rows, including any additional result sets, into an
// in-memory ResultSet. A statement that returns no rows object at all (e.g. a
// procedure with only output parameters) yields zero tables.
func buildResultSet(rows *sql.Rows) (*ResultSet, error) {
	rs := &ResultSet{}

	for {
		columns, err := rows.Columns()
		if err != nil {
			return nil, err
		}

		table := Table{Columns: columns}
		for rows.Next() {
			values := make([]any, len(columns))
			scanDests := make([]any, len(columns))
			for i := range values {
				scanDests[i] = &values[i]
			}
			if err := rows.Scan(scanDests...); err != nil {
				return nil, err
			}
			table.Rows = append(table.Rows, values)
		}
		if err := rows.Err(); err != nil {
			return nil, err
		}

		// A result set with no columns carries no table (drivers report this
		// for statements that produce no rowset).
		if len(columns) > 0 {
			rs.Tables = append(rs.Tables, table)
		}

		if !rows.NextResultSet() {
			break
		}
	}

	return rs, nil
}
