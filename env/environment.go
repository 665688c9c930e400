/*
File    : rebar-go/env/environment.go
*/

// Package env implements the Environment: the owner of the string intern
// pool, the string virtual table, the native-class registry, the parser,
// the global table, the execution provider, and the argument stack.
//
// One Environment per goroutine is the embedding contract. Nothing in the
// runtime synchronizes; sharing an Environment across goroutines is a data
// race.
package env

import (
	"fmt"
	"strings"

	"github.com/Buckell/rebar-go/objects"
	"github.com/Buckell/rebar-go/parser"
)

// Callable is a native function registered by the host. Arguments arrive
// through the environment's argument stack (Arg, ArgCount).
type Callable func(e *Environment) objects.Value

// Provider is the execution provider contract: it compiles parse units and
// binds native callables into function records, and later calls those
// records. The default provider is the tree-walking interpreter in the
// eval package.
type Provider interface {
	Compile(unit *parser.ParseUnit) objects.Value
	Bind(fn Callable) objects.Value
	Call(source any) objects.Value
}

// Environment owns all process-wide interpreter state.
type Environment struct {
	strings       map[string]*objects.String
	stringVTable  *objects.Table
	nativeClasses map[objects.Value]*objects.VirtualTable

	parser   *parser.Parser
	globals  *objects.Table
	provider Provider

	argPosition int
	arguments   [][]objects.Value
}

// New creates an environment without a provider. Most callers should use
// eval.NewEnvironment, which wires the default interpreter in; New exists
// for hosts supplying their own provider through SetProvider.
func New() *Environment {
	return &Environment{
		strings:       make(map[string]*objects.String),
		stringVTable:  objects.NewTable(),
		nativeClasses: make(map[objects.Value]*objects.VirtualTable),
		parser:        parser.NewParser(),
		globals:       objects.NewTable(),
		arguments:     make([][]objects.Value, 1),
	}
}

// SetProvider installs the execution provider.
func (e *Environment) SetProvider(p Provider) {
	e.provider = p
}

// Provider returns the execution provider.
func (e *Environment) Provider() Provider {
	return e.provider
}

// Intern returns the interned string value for text. Two interned strings
// with equal contents share one block, so equality collapses to pointer
// equality. Entries are never evicted; interned strings live as long as
// the environment.
func (e *Environment) Intern(text string) objects.Value {
	if s, ok := e.strings[text]; ok {
		return objects.NewStringValue(s)
	}
	s := objects.NewString(text)
	e.strings[text] = s
	return objects.NewStringValue(s)
}

// StringVirtualTable returns the table of string operator overloads and
// methods, exposed so the host or interpreter can install entries.
func (e *Environment) StringVirtualTable() *objects.Table {
	return e.stringVTable
}

// RegisterNativeClass installs a virtual table under an identifier value,
// replacing any previous registration.
func (e *Environment) RegisterNativeClass(id objects.Value, vt *objects.VirtualTable) *objects.VirtualTable {
	if vt == nil {
		vt = objects.NewVirtualTable()
	}
	e.nativeClasses[id] = vt
	return vt
}

// RegisterNativeClassNamed installs a virtual table under an interned
// string identifier.
func (e *Environment) RegisterNativeClassNamed(name string, vt *objects.VirtualTable) *objects.VirtualTable {
	return e.RegisterNativeClass(e.Intern(name), vt)
}

// GetNativeClass retrieves a registered virtual table.
func (e *Environment) GetNativeClass(id objects.Value) (*objects.VirtualTable, error) {
	vt, ok := e.nativeClasses[id]
	if !ok {
		return nil, fmt.Errorf("native class %s is not registered", id.Inspect())
	}
	return vt, nil
}

// GetNativeClassNamed retrieves a registered virtual table by name.
func (e *Environment) GetNativeClassNamed(name string) (*objects.VirtualTable, error) {
	return e.GetNativeClass(e.Intern(name))
}

// CreateNativeObject allocates a native object carrying data under the
// class registered as id.
func (e *Environment) CreateNativeObject(id objects.Value, data any, destructor objects.Destructor) (objects.Value, error) {
	vt, err := e.GetNativeClass(id)
	if err != nil {
		return objects.Null, err
	}
	return objects.NewNativeObjectValue(objects.NewNativeObject(vt, data, destructor)), nil
}

// GlobalTable returns the global variable table.
func (e *Environment) GlobalTable() *objects.Table {
	return e.globals
}

// CodeParser returns the environment's parser.
func (e *Environment) CodeParser() *parser.Parser {
	return e.parser
}

// CompileString parses source text and hands the unit to the provider,
// returning a callable function value. Lex and parse diagnostics are
// returned as a single error.
func (e *Environment) CompileString(src string) (objects.Value, error) {
	unit := e.parser.Parse(src)
	if e.parser.HasErrors() {
		return objects.Null, fmt.Errorf("%s", strings.Join(e.parser.GetErrors(), "\n"))
	}
	return e.provider.Compile(unit), nil
}

// Bind registers a native callable with the provider, returning a callable
// function value.
func (e *Environment) Bind(fn Callable) objects.Value {
	return e.provider.Bind(fn)
}

// ArgCount returns the argument count of the current top frame.
func (e *Environment) ArgCount() int {
	return len(e.arguments[e.argPosition])
}

// Arg returns the i-th argument of the current top frame, or null when out
// of bounds.
func (e *Environment) Arg(i int) objects.Value {
	if i < 0 || i >= e.ArgCount() {
		return objects.Null
	}
	return e.arguments[e.argPosition][i]
}

// SetArgs copies args onto the current frame.
func (e *Environment) SetArgs(args []objects.Value) {
	e.arguments[e.argPosition] = append(e.arguments[e.argPosition], args...)
}

// IncArgStack pushes a fresh argument frame before a call. Every
// IncArgStack must pair with a DecArgStack.
func (e *Environment) IncArgStack() {
	e.argPosition++
	if len(e.arguments) <= e.argPosition {
		e.arguments = append(e.arguments, nil)
	}
}

// DecArgStack clears and pops the current argument frame.
func (e *Environment) DecArgStack() {
	e.arguments[e.argPosition] = e.arguments[e.argPosition][:0]
	e.argPosition--
}

// CallFunction invokes a provider-owned function record. Implements
// objects.Runtime.
func (e *Environment) CallFunction(source any) objects.Value {
	return e.provider.Call(source)
}

var _ objects.Runtime = (*Environment)(nil)
