package core

import (
	"context"
	"time"
)

// CommandEvent contains information about an executed command.
// This is passed to CommandHook callbacks for logging, metrics, or tracing.
type CommandEvent struct {
	// Text is the executed command text
	Text string
	// Kind is the command kind
	Kind CommandKind
	// Duration is how long the command took to execute
	Duration time.Duration
	// Error is any error that occurred during execution (nil on success)
	Error error
}

// CommandHook is a callback function invoked after each command execution.
// Use this for metrics, distributed tracing, or debugging.
//
// Example:
//
//	svc := dbexec.New("sqlserver", dsn,
//	    dbexec.WithCommandHook(func(ctx context.Context, e dbexec.CommandEvent) {
//	        slog.Info("command", "text", e.Text, "duration", e.Duration, "err", e.Error)
//	    }))
type CommandHook func(ctx context.Context, event CommandEvent)

// invokeHook calls the command hook if set.
func (s *Service) invokeHook(ctx context.Context, event CommandEvent) {
	if s.hook != nil {
		s.hook(ctx, event)
	}
}
