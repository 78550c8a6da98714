package core

import (
	"context"
	"database/sql"
	"time"
)

// CommandKind selects how command text is interpreted by the driver.
type CommandKind int

const (
	// StoredProcedure treats the text as a stored-procedure name.
	StoredProcedure CommandKind = iota
	// Text treats the text as a raw SQL statement.
	Text
)

// String returns the kind name for logs and tracing attributes.
func (k CommandKind) String() string {
	switch k {
	case StoredProcedure:
		return "StoredProcedure"
	case Text:
		return "Text"
	default:
		return "Unknown"
	}
}

// boundArg is one argument attached to a Command. For Output and InputOutput
// directions, out points at the holder the driver writes the post-execution
// value into.
type boundArg struct {
	param *Parameter
	named sql.NamedArg
	out   *any
}

// Command is a driver-level command: text, kind, timeout, and bound arguments,
// ready to run against a database handle. Produced once per invocation by the
// command builder and consumed exactly once.
type Command struct {
	handle *sql.DB
	text   string
	name   string
	kind   CommandKind
	// timeout bounds execution via a context deadline; zero keeps the command's
	// default (the caller's context).
	timeout time.Duration
	// positional drops argument names at execution time for drivers that
	// reject or ignore them (mysql, postgres); values then bind in insertion
	// order against the dialect's placeholders.
	positional bool
	args       []boundArg
}

func newCommand(handle *sql.DB, text, name string, kind CommandKind) *Command {
	return &Command{
		handle: handle,
		text:   text,
		name:   name,
		kind:   kind,
	}
}

// Text returns the text the driver executes.
func (c *Command) Text() string {
	return c.text
}

// Name returns the logical command name: the qualified procedure name for
// stored-procedure commands, the raw SQL text otherwise.
func (c *Command) Name() string {
	return c.name
}

// Kind returns the command kind.
func (c *Command) Kind() CommandKind {
	return c.kind
}

// SetTimeout bounds execution time. Zero means no override.
func (c *Command) SetTimeout(d time.Duration) {
	c.timeout = d
}

// Timeout returns the configured execution bound.
func (c *Command) Timeout() time.Duration {
	return c.timeout
}

// BindInput attaches p as an input argument carrying its current value.
// ReturnValue-direction parameters are bound the same way.
func (c *Command) BindInput(p *Parameter) {
	c.args = append(c.args, boundArg{
		param: p,
		named: sql.Named(p.Name(), p.Value),
	})
}

// BindOutput attaches p as an output argument. No input value is passed; the
// driver writes the post-execution value into the holder.
func (c *Command) BindOutput(p *Parameter) {
	holder := new(any)
	c.args = append(c.args, boundArg{
		param: p,
		named: sql.Named(p.Name(), sql.Out{Dest: holder}),
		out:   holder,
	})
}

// BindInputOutput attaches p as a two-way argument seeded with its current value.
func (c *Command) BindInputOutput(p *Parameter) {
	holder := new(any)
	*holder = p.Value
	c.args = append(c.args, boundArg{
		param: p,
		named: sql.Named(p.Name(), sql.Out{Dest: holder, In: true}),
		out:   holder,
	})
}

// driverArgs renders the bound arguments for database/sql variadic calls.
// Positional commands pass bare values so database/sql assigns ordinals; only
// Input and ReturnValue directions reach this path on positional dialects,
// because none of them support output parameters.
func (c *Command) driverArgs() []any {
	out := make([]any, len(c.args))
	for i, a := range c.args {
		if c.positional {
			out[i] = a.named.Value
		} else {
			out[i] = a.named
		}
	}
	return out
}

// execContext derives the execution context, applying the command timeout when set.
func (c *Command) execContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout > 0 {
		return context.WithTimeout(ctx, c.timeout)
	}
	return ctx, func() {}
}

// Exec runs the command as a non-query and returns the rows affected.
func (c *Command) Exec(ctx context.Context) (int64, error) {
	ctx, cancel := c.execContext(ctx)
	defer cancel()

	result, err := c.handle.ExecContext(ctx, c.text, c.driverArgs()...)
	if err != nil {
		return 0, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		// Some drivers cannot report rows affected; treat as zero.
		return 0, nil
	}
	return rows, nil
}

// Scalar runs the command and returns the first column of the first row.
// A missing row surfaces as sql.ErrNoRows; a NULL value returns nil.
func (c *Command) Scalar(ctx context.Context) (any, error) {
	ctx, cancel := c.execContext(ctx)
	defer cancel()

	var value any
	err := c.handle.QueryRowContext(ctx, c.text, c.driverArgs()...).Scan(&value)
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Query runs the command and drains every result set it returns.
func (c *Command) Query(ctx context.Context) (*ResultSet, error) {
	ctx, cancel := c.execContext(ctx)
	defer cancel()

	rows, err := c.handle.QueryContext(ctx, c.text, c.driverArgs()...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return buildResultSet(rows)
}
