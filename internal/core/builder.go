package core

import (
	"database/sql"
	"strings"
	"time"
)

// BoundCommand carries the resolved handle, the driver command, and the
// parameter collection used to build it from the builder to the executor.
// It is a transfer object with no behavior of its own; Params is nil when no
// population callback was supplied.
type BoundCommand struct {
	Handle  *sql.DB
	Command *Command
	Params  *Params
}

// BuildCommand produces a bound, ready-to-run command.
//
// text is a stored-procedure name or raw SQL depending on kind and must be
// non-blank. For stored procedures, an unqualified name (no ".") is prefixed
// with the Service's schema. When populate is non-nil, a fresh parameter
// collection is created and the callback is invoked synchronously to fill it;
// a nil populate means no parameter collection at all, which skips every
// parameter-related step.
//
// Any failure during handle resolution or binding propagates to the caller;
// no partial command is returned.
func (s *Service) BuildCommand(text string, kind CommandKind, populate func(*Params)) (*BoundCommand, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrInvalidArgument
	}

	var params *Params
	if populate != nil {
		params = NewParams()
		params.defaultSize = s.defaultSize
		populate(params)
	}

	handle, err := s.Handle()
	if err != nil {
		return nil, err
	}

	name := text
	execText := text
	if kind == StoredProcedure {
		if !s.dialect.SupportsStoredProcedures() {
			return nil, ErrStoredProceduresUnsupported
		}
		name = s.dialect.QualifyProcedure(text, s.schema)
		execText = s.dialect.CallStatement(name, paramNames(params))
	}

	cmd := newCommand(handle, execText, name, kind)
	cmd.positional = !s.dialect.SupportsNamedParameters()

	if params != nil && params.Timeout() > 0 {
		cmd.SetTimeout(time.Duration(params.Timeout()) * time.Second)
	}

	if params != nil && params.Len() > 0 {
		if err := s.bindParams(cmd, params); err != nil {
			return nil, err
		}
	}

	return &BoundCommand{Handle: handle, Command: cmd, Params: params}, nil
}

// bindParams attaches every parameter in insertion order, switching on direction.
func (s *Service) bindParams(cmd *Command, params *Params) error {
	var bindErr error
	params.Each(func(p *Parameter) {
		if bindErr != nil {
			return
		}
		switch p.Direction {
		case Output:
			if !s.dialect.SupportsOutputParameters() {
				bindErr = ErrOutputParamsUnsupported
				return
			}
			cmd.BindOutput(p)
		case InputOutput:
			if !s.dialect.SupportsOutputParameters() {
				bindErr = ErrOutputParamsUnsupported
				return
			}
			cmd.BindInputOutput(p)
		default:
			// Input; ReturnValue binds input-like.
			cmd.BindInput(p)
		}
	})
	return bindErr
}

// paramNames lists parameter names in insertion order; nil Params yields nil.
func paramNames(params *Params) []string {
	if params == nil {
		return nil
	}
	names := make([]string, 0, params.Len())
	params.Each(func(p *Parameter) {
		names = append(names, p.Name())
	})
	return names
}
