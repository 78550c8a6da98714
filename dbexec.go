// Package dbexec provides a functional-style command-execution façade over a
// relational database. Callers supply a stored-procedure name or raw SQL plus
// a callback that populates a named-parameter collection; dbexec handles
// command construction, parameter binding (including output, input-output and
// return-value directions), timeout propagation, execution, timing, structured
// logging, and output-parameter retrieval after execution.
package dbexec

import (
	"github.com/coregx/dbexec/internal/cache"
	"github.com/coregx/dbexec/internal/core"
	"github.com/coregx/dbexec/internal/logger"
	"github.com/coregx/dbexec/internal/tracer"
	"github.com/coregx/dbexec/internal/util"
)

type (
	// Service is the command-execution façade for one connection string.
	Service = core.Service
	// Option is a functional option for configuring a Service.
	Option = core.Option
	// Config is the YAML configuration surface for NewFromConfig.
	Config = core.Config

	// Params is an insertion-ordered, uniquely-keyed parameter collection with
	// a per-invocation command timeout.
	Params = core.Params
	// Parameter is a named, typed, directional command argument.
	Parameter = core.Parameter
	// Direction describes how a parameter carries data across an invocation.
	Direction = core.Direction
	// TypeCode is a driver-level type tag for a bound parameter.
	TypeCode = core.TypeCode

	// CommandKind selects stored-procedure versus raw-SQL interpretation.
	CommandKind = core.CommandKind
	// Command is a bound driver-level command ready to execute.
	Command = core.Command
	// BoundCommand carries handle, command, and parameters between the builder
	// and the executor.
	BoundCommand = core.BoundCommand
	// CommandEvent describes one executed command for hook callbacks.
	CommandEvent = core.CommandEvent
	// CommandHook is invoked after each command execution.
	CommandHook = core.CommandHook

	// ResultSet is the tabular output of a command, potentially multiple tables.
	ResultSet = core.ResultSet
	// Table is one tabular result of an executed command.
	Table = core.Table

	// DuplicateParameterError reports an Add with an already-present name.
	DuplicateParameterError = core.DuplicateParameterError
	// ParameterNotFoundError reports a Get for an unknown name.
	ParameterNotFoundError = core.ParameterNotFoundError
	// ExecutionError wraps a driver failure with the command text.
	ExecutionError = core.ExecutionError

	// HandleCache maps connection strings to opened database handles.
	HandleCache = cache.HandleCache

	// Logger is the structured logging interface consumed by dbexec.
	Logger = logger.Logger
	// Tracer is the tracing interface consumed by dbexec.
	Tracer = tracer.Tracer
)

// Parameter directions.
const (
	Input       = core.Input
	Output      = core.Output
	InputOutput = core.InputOutput
	ReturnValue = core.ReturnValue
)

// Parameter type tags.
const (
	TypeBool    = core.TypeBool
	TypeInt32   = core.TypeInt32
	TypeInt64   = core.TypeInt64
	TypeFloat64 = core.TypeFloat64
	TypeDecimal = core.TypeDecimal
	TypeString  = core.TypeString
	TypeBytes   = core.TypeBytes
	TypeTime    = core.TypeTime
	TypeUUID    = core.TypeUUID
)

// Command kinds.
const (
	StoredProcedure = core.StoredProcedure
	Text            = core.Text
)

// Defaults consumed by the parameter model.
const (
	DefaultStringSize = core.DefaultStringSize
	DefaultTimeout    = core.DefaultTimeout
	ReturnValueName   = core.ReturnValueName
)

// Re-export core functions.
var (
	New           = core.New
	NewFromConfig = core.NewFromConfig
	LoadConfig    = core.LoadConfig
	ParseConfig   = core.ParseConfig
	NewParams     = core.NewParams

	// Options
	WithSchema            = core.WithSchema
	WithLogger            = core.WithLogger
	WithSuppressLogging   = core.WithSuppressLogging
	WithEnvironment       = core.WithEnvironment
	WithUser              = core.WithUser
	WithTracer            = core.WithTracer
	WithCommandHook       = core.WithCommandHook
	WithHandleProvider    = core.WithHandleProvider
	WithHandleCache       = core.WithHandleCache
	WithSensitiveFields   = core.WithSensitiveFields
	WithDefaultStringSize = core.WithDefaultStringSize

	// Handle cache
	NewHandleCache = cache.NewHandleCache

	// Logging adapters
	NewSlogAdapter = logger.NewSlogAdapter
	NewZapAdapter  = logger.NewZapAdapter

	// Tracing adapters
	NewOtelTracer = tracer.NewOtelTracer

	// Delimited-string helpers
	JoinInt32 = util.JoinInt32
	JoinInt64 = util.JoinInt64
)

// Sentinel errors.
var (
	ErrInvalidArgument             = core.ErrInvalidArgument
	ErrNoResult                    = core.ErrNoResult
	ErrNegativeTimeout             = core.ErrNegativeTimeout
	ErrStoredProceduresUnsupported = core.ErrStoredProceduresUnsupported
	ErrOutputParamsUnsupported     = core.ErrOutputParamsUnsupported
)
