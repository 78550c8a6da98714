package core

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/coregx/dbexec/internal/cache"
)

// Fake driver for pipeline tests. It records executed statements with their
// named arguments, returns configured results, and writes configured values
// into sql.Out destinations the way an output-parameter-capable driver does.

type fakeTable struct {
	columns []string
	rows    [][]driver.Value
}

type execRecord struct {
	query string
	args  []driver.NamedValue
}

type fakeEngine struct {
	mu      sync.Mutex
	records []execRecord

	rowsAffected int64
	tables       []fakeTable
	outputs      map[string]any
	execErr      error
	queryErr     error

	// namedArgsUnsupported mirrors drivers like go-sql-driver/mysql that fail
	// any statement carrying a name-addressed argument.
	namedArgsUnsupported bool
}

func (e *fakeEngine) checkArgs(args []driver.NamedValue) error {
	if !e.namedArgsUnsupported {
		return nil
	}
	for _, nv := range args {
		if nv.Name != "" {
			return errors.New("driver does not support the use of named parameters")
		}
	}
	return nil
}

func (e *fakeEngine) record(query string, args []driver.NamedValue) {
	e.mu.Lock()
	e.records = append(e.records, execRecord{query: query, args: args})
	e.mu.Unlock()
}

func (e *fakeEngine) lastRecord() (execRecord, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.records) == 0 {
		return execRecord{}, false
	}
	return e.records[len(e.records)-1], true
}

// writeOutputs copies configured post-execution values into sql.Out holders.
func (e *fakeEngine) writeOutputs(args []driver.NamedValue) {
	for _, nv := range args {
		out, ok := nv.Value.(sql.Out)
		if !ok {
			continue
		}
		value, ok := e.outputs[nv.Name]
		if !ok {
			continue
		}
		if dest, ok := out.Dest.(*any); ok {
			*dest = value
		}
	}
}

type fakeDriver struct {
	engine *fakeEngine
}

func (d *fakeDriver) Open(_ string) (driver.Conn, error) {
	return &fakeConn{engine: d.engine}, nil
}

type fakeConn struct {
	engine *fakeEngine
}

func (c *fakeConn) Prepare(_ string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported by fake driver")
}

func (c *fakeConn) Close() error { return nil }

func (c *fakeConn) Begin() (driver.Tx, error) {
	return nil, driver.ErrSkip
}

// CheckNamedValue accepts sql.Out arguments unchanged and defers everything
// else to the default converter.
func (c *fakeConn) CheckNamedValue(nv *driver.NamedValue) error {
	if _, ok := nv.Value.(sql.Out); ok {
		return nil
	}
	return driver.ErrSkip
}

func (c *fakeConn) ExecContext(_ context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	c.engine.record(query, args)
	if err := c.engine.checkArgs(args); err != nil {
		return nil, err
	}
	if c.engine.execErr != nil {
		return nil, c.engine.execErr
	}
	c.engine.writeOutputs(args)
	return &fakeResult{rowsAffected: c.engine.rowsAffected}, nil
}

func (c *fakeConn) QueryContext(_ context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	c.engine.record(query, args)
	if err := c.engine.checkArgs(args); err != nil {
		return nil, err
	}
	if c.engine.queryErr != nil {
		return nil, c.engine.queryErr
	}
	c.engine.writeOutputs(args)
	return newFakeRows(c.engine.tables), nil
}

type fakeResult struct {
	rowsAffected int64
}

func (r *fakeResult) LastInsertId() (int64, error) { return 0, errors.New("not supported") }
func (r *fakeResult) RowsAffected() (int64, error) { return r.rowsAffected, nil }

type fakeRows struct {
	sets []fakeTable
	cur  int
	row  int
}

func newFakeRows(sets []fakeTable) *fakeRows {
	if len(sets) == 0 {
		// A statement producing no rowset still yields one empty, column-less set.
		sets = []fakeTable{{}}
	}
	return &fakeRows{sets: sets}
}

func (r *fakeRows) Columns() []string {
	return r.sets[r.cur].columns
}

func (r *fakeRows) Close() error { return nil }

func (r *fakeRows) Next(dest []driver.Value) error {
	set := r.sets[r.cur]
	if r.row >= len(set.rows) {
		return io.EOF
	}
	copy(dest, set.rows[r.row])
	r.row++
	return nil
}

func (r *fakeRows) HasNextResultSet() bool {
	return r.cur+1 < len(r.sets)
}

func (r *fakeRows) NextResultSet() error {
	if !r.HasNextResultSet() {
		return io.EOF
	}
	r.cur++
	r.row = 0
	return nil
}

// errOpenFailed simulates a connectivity failure from the handle provider.
var errOpenFailed = errors.New("handle open failed")

var fakeDriverCounter atomic.Uint64

// newFakeService creates a Service backed by a fresh fake engine and an
// isolated handle cache. dialectName selects the command dialect; the handle
// provider always opens the fake driver.
func newFakeService(dialectName string, engine *fakeEngine, opts ...Option) *Service {
	name := fmt.Sprintf("dbexec-fake-%d", fakeDriverCounter.Add(1))
	sql.Register(name, &fakeDriver{engine: engine})

	base := []Option{
		WithHandleCache(cache.NewHandleCache()),
		WithHandleProvider(func(connString string) (*sql.DB, error) {
			return sql.Open(name, connString)
		}),
	}
	return New(dialectName, "server=fake", append(base, opts...)...)
}
