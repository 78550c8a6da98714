package core

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/coregx/dbexec/internal/cache"
	"github.com/coregx/dbexec/internal/dialects"
	"github.com/coregx/dbexec/internal/logger"
	"github.com/coregx/dbexec/internal/tracer"
)

// processCache is the process-wide handle cache shared by every Service, so at
// most one handle object exists per distinct connection string.
var processCache = cache.NewHandleCache()

// Service is the command-execution façade for one connection string. It builds
// bound commands, executes them with timing, logging and tracing, and harvests
// output parameters. A Service is safe for concurrent use; each invocation gets
// its own parameter collection and bound command.
type Service struct {
	connString      string
	driverName      string
	dialect         dialects.Dialect
	schema          string
	defaultSize     int
	suppressLogging bool
	environment     string
	user            string
	logger          logger.Logger
	summarizer      *logger.Summarizer
	tracer          tracer.Tracer
	handles         *cache.HandleCache
	createHandle    cache.CreateFunc
	hook            CommandHook

	healthMu sync.Mutex
	health   *healthChecker
}

// Option is a functional option for configuring a Service.
type Option func(*Service)

// WithSchema overrides the dialect's default schema for unqualified
// stored-procedure names.
func WithSchema(schema string) Option {
	return func(s *Service) {
		s.schema = schema
	}
}

// WithLogger sets the structured logger. The default is a no-op logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// WithSuppressLogging disables all log output for this Service instance
// without touching the logger configuration.
func WithSuppressLogging(suppress bool) Option {
	return func(s *Service) {
		s.suppressLogging = suppress
	}
}

// WithEnvironment sets the environment name included in log events.
func WithEnvironment(name string) Option {
	return func(s *Service) {
		s.environment = name
	}
}

// WithUser sets the user name included in log events.
func WithUser(name string) Option {
	return func(s *Service) {
		s.user = name
	}
}

// WithTracer sets the tracer. The default is a no-op tracer.
func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// WithCommandHook sets a callback invoked after every command execution.
func WithCommandHook(hook CommandHook) Option {
	return func(s *Service) {
		s.hook = hook
	}
}

// WithHandleProvider replaces how database handles are opened. The default
// provider calls sql.Open with the Service's driver name.
func WithHandleProvider(create cache.CreateFunc) Option {
	return func(s *Service) {
		s.createHandle = create
	}
}

// WithHandleCache replaces the process-wide handle cache. Intended for tests
// that need isolation from other Services.
func WithHandleCache(hc *cache.HandleCache) Option {
	return func(s *Service) {
		s.handles = hc
	}
}

// WithSensitiveFields overrides the parameter names whose values are masked in
// logs.
func WithSensitiveFields(fields []string) Option {
	return func(s *Service) {
		s.summarizer = logger.NewSummarizer(fields)
	}
}

// WithDefaultStringSize overrides the size assigned to string-like parameters
// added without an explicit size. Non-positive values keep the default.
func WithDefaultStringSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.defaultSize = size
		}
	}
}

// New creates a Service for the given driver and connection string.
// The driver name selects the command dialect; unknown drivers panic, matching
// the dialect registry contract.
func New(driverName, connString string, opts ...Option) *Service {
	dialect := dialects.GetDialect(driverName)
	s := &Service{
		connString:  connString,
		driverName:  driverName,
		dialect:     dialect,
		schema:      dialect.DefaultSchema(),
		defaultSize: DefaultStringSize,
		logger:      &logger.NoopLogger{},
		summarizer:  logger.NewSummarizer(nil),
		tracer:      &tracer.NoopTracer{},
		handles:     processCache,
	}
	s.createHandle = func(cs string) (*sql.DB, error) {
		return sql.Open(s.driverName, cs)
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Handle returns the cached database handle for this Service's connection
// string, opening it on first use.
func (s *Service) Handle() (*sql.DB, error) {
	return s.handles.GetOrCreate(s.connString, s.createHandle)
}

// EnableHealthCheck starts a background pinger on the Service's handle.
// Calling it twice replaces the previous checker. Safe to call concurrently
// with Healthy and Close.
func (s *Service) EnableHealthCheck(interval time.Duration) error {
	handle, err := s.Handle()
	if err != nil {
		return err
	}
	checker := newHealthChecker(handle, s.logger, interval)
	checker.start()

	s.healthMu.Lock()
	prev := s.health
	s.health = checker
	s.healthMu.Unlock()

	if prev != nil {
		prev.shutdown()
	}
	return nil
}

// Healthy reports the outcome of the most recent health check. It returns true
// when health checking is not enabled.
func (s *Service) Healthy() bool {
	s.healthMu.Lock()
	checker := s.health
	s.healthMu.Unlock()
	if checker == nil {
		return true
	}
	return checker.isHealthy()
}

// Close stops background work owned by the Service. Cached handles are shared
// process-wide and stay open.
func (s *Service) Close() {
	s.healthMu.Lock()
	checker := s.health
	s.health = nil
	s.healthMu.Unlock()
	if checker != nil {
		checker.shutdown()
	}
}

// loggingEnabled gates every log emission for this Service instance.
func (s *Service) loggingEnabled() bool {
	return !s.suppressLogging
}

// debugEnabled gates per-command debug messages so they are never formatted
// when nothing would be emitted.
func (s *Service) debugEnabled() bool {
	return s.loggingEnabled() && s.logger.DebugEnabled()
}

// describeParams renders the parameter summary for error logs: "None" when no
// collection was built, ordinal-numbered lines otherwise.
func (s *Service) describeParams(params *Params) string {
	if params == nil {
		return s.summarizer.Describe(nil)
	}
	infos := make([]logger.ParamInfo, 0, params.Len())
	params.Each(func(p *Parameter) {
		infos = append(infos, logger.ParamInfo{
			Name:      p.Name(),
			Type:      p.Type.String(),
			Direction: p.Direction.String(),
			Value:     p.Value,
		})
	})
	return s.summarizer.Describe(infos)
}

// logFailure records a failed invocation with enough context to diagnose
// without re-running, then leaves propagation to the caller.
func (s *Service) logFailure(text string, params *Params, err error) {
	if !s.loggingEnabled() {
		return
	}
	s.logger.Error("command execution failed",
		"text", text,
		"params", s.describeParams(params),
		"environment", s.environment,
		"error", err,
	)
}

// ExecuteSpNonQuery runs a stored procedure as a non-query and returns the
// rows affected.
func (s *Service) ExecuteSpNonQuery(ctx context.Context, proc string, populate func(*Params)) (int64, error) {
	return s.executeNonQuery(ctx, proc, StoredProcedure, populate)
}

// ExecuteSQLNonQuery runs raw SQL as a non-query and returns the rows affected.
func (s *Service) ExecuteSQLNonQuery(ctx context.Context, sqlText string, populate func(*Params)) (int64, error) {
	return s.executeNonQuery(ctx, sqlText, Text, populate)
}

// ExecuteSpScalar runs a stored procedure and returns the first column of the
// first row.
func (s *Service) ExecuteSpScalar(ctx context.Context, proc string, populate func(*Params)) (any, error) {
	return s.executeScalar(ctx, proc, StoredProcedure, populate)
}

// ExecuteSQLScalar runs raw SQL and returns the first column of the first row.
func (s *Service) ExecuteSQLScalar(ctx context.Context, sqlText string, populate func(*Params)) (any, error) {
	return s.executeScalar(ctx, sqlText, Text, populate)
}

// ExecuteSpResultSet runs a stored procedure and returns every table it produces.
func (s *Service) ExecuteSpResultSet(ctx context.Context, proc string, populate func(*Params)) (*ResultSet, error) {
	return s.executeResultSet(ctx, proc, StoredProcedure, populate)
}

// ExecuteSQLResultSet runs raw SQL and returns every table it produces.
func (s *Service) ExecuteSQLResultSet(ctx context.Context, sqlText string, populate func(*Params)) (*ResultSet, error) {
	return s.executeResultSet(ctx, sqlText, Text, populate)
}

// ExecuteSpTable runs a stored procedure and returns its first table, named
// after the procedure when the driver reports no name. A result set with zero
// tables fails with ErrNoResult.
func (s *Service) ExecuteSpTable(ctx context.Context, proc string, populate func(*Params)) (*Table, error) {
	return s.executeTable(ctx, proc, StoredProcedure, populate)
}

// ExecuteSQLTable runs raw SQL and returns its first table.
func (s *Service) ExecuteSQLTable(ctx context.Context, sqlText string, populate func(*Params)) (*Table, error) {
	return s.executeTable(ctx, sqlText, Text, populate)
}

func (s *Service) executeNonQuery(ctx context.Context, text string, kind CommandKind, populate func(*Params)) (int64, error) {
	bound, err := s.BuildCommand(text, kind, populate)
	if err != nil {
		s.logFailure(text, nil, err)
		return 0, err
	}

	rows, err := Execute(s, ctx, bound, func(ctx context.Context) (int64, error) {
		return bound.Command.Exec(ctx)
	})
	if err != nil {
		execErr := &ExecutionError{Text: bound.Command.Text(), Err: err}
		s.logFailure(bound.Command.Text(), bound.Params, execErr)
		return 0, execErr
	}
	return rows, nil
}

func (s *Service) executeScalar(ctx context.Context, text string, kind CommandKind, populate func(*Params)) (any, error) {
	bound, err := s.BuildCommand(text, kind, populate)
	if err != nil {
		s.logFailure(text, nil, err)
		return nil, err
	}

	value, err := Execute(s, ctx, bound, func(ctx context.Context) (any, error) {
		return bound.Command.Scalar(ctx)
	})
	if err != nil {
		execErr := &ExecutionError{Text: bound.Command.Text(), Err: err}
		s.logFailure(bound.Command.Text(), bound.Params, execErr)
		return nil, execErr
	}
	return value, nil
}

func (s *Service) executeResultSet(ctx context.Context, text string, kind CommandKind, populate func(*Params)) (*ResultSet, error) {
	rs, _, err := s.queryResultSet(ctx, text, kind, populate)
	return rs, err
}

// queryResultSet runs the query path and also returns the bound command so
// single-table callers can log with the real parameter collection and default
// the table name from the qualified command name.
func (s *Service) queryResultSet(ctx context.Context, text string, kind CommandKind, populate func(*Params)) (*ResultSet, *BoundCommand, error) {
	bound, err := s.BuildCommand(text, kind, populate)
	if err != nil {
		s.logFailure(text, nil, err)
		return nil, nil, err
	}

	rs, err := Execute(s, ctx, bound, func(ctx context.Context) (*ResultSet, error) {
		return bound.Command.Query(ctx)
	})
	if err != nil {
		execErr := &ExecutionError{Text: bound.Command.Text(), Err: err}
		s.logFailure(bound.Command.Text(), bound.Params, execErr)
		return nil, nil, execErr
	}
	return rs, bound, nil
}

func (s *Service) executeTable(ctx context.Context, text string, kind CommandKind, populate func(*Params)) (*Table, error) {
	rs, bound, err := s.queryResultSet(ctx, text, kind, populate)
	if err != nil {
		return nil, err
	}

	// The default table name is the logical command name: the qualified
	// procedure name for stored procedures, the raw text otherwise.
	table, err := rs.FirstTable(bound.Command.Name())
	if err != nil {
		s.logFailure(bound.Command.Name(), bound.Params, err)
		return nil, err
	}
	return table, nil
}
