// Package core provides the core command-execution functionality for dbexec:
// the parameter model, command building and binding, the execute wrapper, and
// the typed entry points.
package core

import (
	"strings"
)

// Direction describes how a parameter carries data across a command invocation.
type Direction int

const (
	// Input parameters carry data into the call and are never mutated.
	Input Direction = iota
	// Output parameters carry data out of the call; no input value is bound.
	Output
	// InputOutput parameters carry data both ways.
	InputOutput
	// ReturnValue represents the routine's scalar return code.
	ReturnValue
)

// String returns the direction name for logs and parameter summaries.
func (d Direction) String() string {
	switch d {
	case Input:
		return "Input"
	case Output:
		return "Output"
	case InputOutput:
		return "InputOutput"
	case ReturnValue:
		return "ReturnValue"
	default:
		return "Unknown"
	}
}

// TypeCode is a driver-level type tag for a bound parameter.
type TypeCode int

// Supported parameter type tags.
const (
	TypeBool TypeCode = iota
	TypeInt32
	TypeInt64
	TypeFloat64
	TypeDecimal
	TypeString
	TypeBytes
	TypeTime
	TypeUUID
)

// String returns the type name for logs and parameter summaries.
func (t TypeCode) String() string {
	switch t {
	case TypeBool:
		return "Bool"
	case TypeInt32:
		return "Int32"
	case TypeInt64:
		return "Int64"
	case TypeFloat64:
		return "Float64"
	case TypeDecimal:
		return "Decimal"
	case TypeString:
		return "String"
	case TypeBytes:
		return "Bytes"
	case TypeTime:
		return "Time"
	case TypeUUID:
		return "UUID"
	default:
		return "Unknown"
	}
}

// stringLike reports whether the type needs a size when bound for output.
func (t TypeCode) stringLike() bool {
	return t == TypeString || t == TypeBytes
}

const (
	// DefaultStringSize is the size used for string-like Output and InputOutput
	// parameters when the caller does not specify one.
	DefaultStringSize = 8000

	// DefaultTimeout is the command timeout in seconds applied to a fresh
	// parameter collection.
	DefaultTimeout = 30

	// ReturnValueName is the name under which a synthetic return-value parameter
	// is resolved. Matching is case-insensitive.
	ReturnValueName = "RETURN_VALUE"
)

// Parameter is a named, typed, directional command argument with optional size.
// Name, Type, Direction and Size are fixed at construction; Value is the only
// mutable field and is overwritten post-execution for non-Input directions.
type Parameter struct {
	name      string
	Type      TypeCode
	Direction Direction
	Size      int
	Value     any
}

// Name returns the parameter name as it was added to the collection.
func (p *Parameter) Name() string {
	return p.name
}

// Params is an insertion-ordered, uniquely-keyed collection of parameters with a
// per-invocation command timeout. One collection is created per Execute* call and
// never shared across concurrent invocations.
type Params struct {
	byName  map[string]*Parameter
	ordered []*Parameter
	timeout int
	// defaultSize is applied to string-like parameters added without an
	// explicit size. The command builder overrides it from the Service.
	defaultSize int
}

// NewParams creates an empty parameter collection with the default timeout.
func NewParams() *Params {
	return &Params{
		byName:      make(map[string]*Parameter),
		timeout:     DefaultTimeout,
		defaultSize: DefaultStringSize,
	}
}

// Add inserts an Input parameter and returns it.
// Fails with DuplicateParameterError if the name is already present.
func (p *Params) Add(name string, typ TypeCode, value any) (*Parameter, error) {
	return p.AddWithDirection(name, typ, value, Input, 0)
}

// AddOutput inserts an Output parameter with the given size and returns it.
// Size is meaningful for string-like types; pass 0 to use the collection's
// default size.
func (p *Params) AddOutput(name string, typ TypeCode, size int) (*Parameter, error) {
	return p.AddWithDirection(name, typ, nil, Output, size)
}

// AddWithDirection inserts a parameter with an explicit direction and size.
// Fails with DuplicateParameterError if the name is already present; the
// collection keeps the first entry. String-like parameters added without a
// size get the collection's default; other types keep zero.
func (p *Params) AddWithDirection(name string, typ TypeCode, value any, dir Direction, size int) (*Parameter, error) {
	if _, exists := p.byName[name]; exists {
		return nil, &DuplicateParameterError{Name: name}
	}
	if size <= 0 && typ.stringLike() {
		size = p.defaultSize
	}
	param := &Parameter{
		name:      name,
		Type:      typ,
		Direction: dir,
		Size:      size,
		Value:     value,
	}
	p.byName[name] = param
	p.ordered = append(p.ordered, param)
	return param, nil
}

// Get looks up a parameter by name. A leading "@" sigil is stripped before the
// lookup. An unknown name fails with ParameterNotFoundError unless it
// case-insensitively equals RETURN_VALUE, in which case a zero-valued Int32
// Output parameter is synthesized once, keyed by the original (non-stripped)
// name, and returned on this and every subsequent call.
func (p *Params) Get(name string) (*Parameter, error) {
	normalized := strings.TrimPrefix(name, "@")
	if param, ok := p.byName[normalized]; ok {
		return param, nil
	}
	if !strings.EqualFold(normalized, ReturnValueName) {
		return nil, &ParameterNotFoundError{Name: name}
	}
	// The synthetic return-value entry is keyed by the original name, sigil and
	// casing included, so repeated lookups through Get hit the normalized path
	// only when the caller used the bare name.
	if param, ok := p.byName[name]; ok {
		return param, nil
	}
	param := &Parameter{
		name:      name,
		Type:      TypeInt32,
		Direction: Output,
	}
	p.byName[name] = param
	p.ordered = append(p.ordered, param)
	return param, nil
}

// Len returns the number of parameters in the collection.
func (p *Params) Len() int {
	return len(p.ordered)
}

// Each calls fn for every parameter in insertion order.
func (p *Params) Each(fn func(*Parameter)) {
	for _, param := range p.ordered {
		fn(param)
	}
}

// All returns the parameters in insertion order. The slice is a copy; the
// parameters are not.
func (p *Params) All() []*Parameter {
	out := make([]*Parameter, len(p.ordered))
	copy(out, p.ordered)
	return out
}

// Timeout returns the command timeout in seconds.
func (p *Params) Timeout() int {
	return p.timeout
}

// SetTimeout sets the command timeout in seconds. Zero means "do not override
// the command's default timeout". Negative values are rejected.
func (p *Params) SetTimeout(seconds int) error {
	if seconds < 0 {
		return ErrNegativeTimeout
	}
	p.timeout = seconds
	return nil
}
