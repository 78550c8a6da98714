package core

import (
	"context"
	"time"

	"github.com/coregx/dbexec/internal/tracer"
)

// Execute runs one unit of work against a bound command: it times the work,
// emits debug log events around it, traces it, and harvests output parameters
// after success. The work's return value passes through uninterpreted, so the
// same wrapper serves non-query, scalar, and result-set executions.
//
// Execute invokes work exactly once and does not recover from its failure;
// the error returns unchanged and the typed entry points log it with full
// context.
func Execute[T any](s *Service, ctx context.Context, bound *BoundCommand, work func(context.Context) (T, error)) (T, error) {
	cmd := bound.Command
	started := time.Now()

	if s.debugEnabled() {
		s.logger.Debug("executing command",
			"text", cmd.Text(),
			"user", s.user,
			"environment", s.environment,
			"started_at", started.Format(time.RFC3339Nano),
		)
	}

	ctx, span := s.tracer.StartSpan(ctx, "dbexec.execute")
	defer span.End()

	result, err := work(ctx)
	elapsed := time.Since(started)

	var rowsAffected int64
	if n, ok := any(result).(int64); ok {
		rowsAffected = n
	}
	tracer.AddCommandAttributes(span, &tracer.CommandMetadata{
		Text:         cmd.Text(),
		Kind:         cmd.Kind().String(),
		Duration:     elapsed,
		RowsAffected: rowsAffected,
		Error:        err,
		Database:     s.driverName,
		Environment:  s.environment,
	})

	s.invokeHook(ctx, CommandEvent{
		Text:     cmd.Text(),
		Kind:     cmd.Kind(),
		Duration: elapsed,
		Error:    err,
	})

	if err != nil {
		var zero T
		return zero, err
	}

	harvestOutputs(bound)

	if s.debugEnabled() {
		s.logger.Debug("command executed",
			"text", cmd.Text(),
			"elapsed_ms", elapsed.Milliseconds(),
		)
	}

	return result, nil
}

// harvestOutputs copies driver-reported post-execution values back into the
// originating parameter collection for every argument bound with an Output,
// InputOutput, or ReturnValue direction. Input parameters are left untouched.
func harvestOutputs(bound *BoundCommand) {
	if bound.Params == nil {
		return
	}
	for _, arg := range bound.Command.args {
		if arg.out == nil || arg.param.Direction == Input {
			continue
		}
		if p, err := bound.Params.Get(arg.param.Name()); err == nil {
			p.Value = *arg.out
		}
	}
}
