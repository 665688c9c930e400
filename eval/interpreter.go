/*
File    : rebar-go/eval/interpreter.go
*/

// Package eval implements the default execution provider: a tree-walking
// interpreter over compiled parse units. The interpreter owns the parse
// units it compiles (parse nodes borrow tokens from them) and the function
// source records produced by compilation, declaration, and native binding.
package eval

import (
	"github.com/Buckell/rebar-go/env"
	"github.com/Buckell/rebar-go/objects"
	"github.com/Buckell/rebar-go/parser"
)

// functionSource is a callable function record owned by the interpreter.
type functionSource interface {
	call() objects.Value
}

// nativeFunctionSource wraps a host callable.
type nativeFunctionSource struct {
	environment *env.Environment
	fn          env.Callable
}

func (s *nativeFunctionSource) call() objects.Value {
	return s.fn(s.environment)
}

// interpretedFunctionSource is a function compiled from source: a parameter
// list and a borrowed body block. The parse unit the body borrows from is
// kept alive by the interpreter.
type interpretedFunctionSource struct {
	interp *Interpreter
	params []*parser.Expression
	body   []parser.Node
}

// call executes the function body. A fresh call frame starts with an
// argument-binding scope mapping each declared parameter to the
// corresponding entry of the current argument frame.
func (s *interpretedFunctionSource) call() objects.Value {
	f := &frame{interp: s.interp, environment: s.interp.environment}

	f.pushScope()
	argTable := f.locals[len(f.locals)-1]
	for i, param := range s.params {
		if param.Count() == 0 {
			continue
		}
		identifier := param.Operand(param.Count() - 1)
		if identifier.Kind == parser.NodeToken && identifier.Token.IsIdentifier() {
			argTable.Set(s.interp.environment.Intern(identifier.Token.Text), s.interp.environment.Arg(i))
		}
	}

	state := f.evaluateBlock(s.body)
	f.popScope()

	return state.result
}

// Interpreter is the default execution provider.
type Interpreter struct {
	environment *env.Environment
	units       []*parser.ParseUnit
	sources     []functionSource
}

// NewInterpreter creates an interpreter bound to an environment.
func NewInterpreter(e *env.Environment) *Interpreter {
	return &Interpreter{environment: e}
}

// NewEnvironment creates an environment wired to a fresh interpreter as
// its execution provider. This is the usual entry point for hosts.
func NewEnvironment() *env.Environment {
	e := env.New()
	e.SetProvider(NewInterpreter(e))
	return e
}

// Compile takes ownership of a parse unit and returns a function value
// whose record executes the unit's top-level block with no parameters.
func (ip *Interpreter) Compile(unit *parser.ParseUnit) objects.Value {
	ip.units = append(ip.units, unit)
	source := &interpretedFunctionSource{interp: ip, body: unit.Block}
	ip.sources = append(ip.sources, source)
	return objects.NewFunctionValue(&objects.Function{Source: source})
}

// Bind wraps a native callable in a function record.
func (ip *Interpreter) Bind(fn env.Callable) objects.Value {
	source := &nativeFunctionSource{environment: ip.environment, fn: fn}
	ip.sources = append(ip.sources, source)
	return objects.NewFunctionValue(&objects.Function{Source: source})
}

// Call invokes a function record produced by Compile, Bind, or a function
// declaration.
func (ip *Interpreter) Call(source any) objects.Value {
	fs, ok := source.(functionSource)
	if !ok {
		return objects.NewTypeError("invalid function record")
	}
	return fs.call()
}

var _ env.Provider = (*Interpreter)(nil)
