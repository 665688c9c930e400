/*
File    : rebar-go/eval/frame.go
*/
package eval

import (
	"github.com/Buckell/rebar-go/env"
	"github.com/Buckell/rebar-go/objects"
)

// frame is the state of a single interpreted call: the stack of local
// scope tables plus the owning interpreter and environment. Each block
// pushes a scope on entry and pops it on exit; variable lookup scans the
// stack top-down and falls back to the global table.
type frame struct {
	interp      *Interpreter
	environment *env.Environment
	locals      []*objects.Table
}

func (f *frame) pushScope() {
	f.locals = append(f.locals, objects.NewTable())
}

func (f *frame) popScope() {
	f.locals = f.locals[:len(f.locals)-1]
}

// findVariable resolves a name to its slot: the first hit scanning the
// local scopes top-down wins, otherwise the global table slot is used
// (auto-inserted).
func (f *frame) findVariable(key objects.Value) *objects.Value {
	for i := len(f.locals); i >= 1; i-- {
		if slot, ok := f.locals[i-1].Slot(key); ok {
			return slot
		}
	}
	return f.environment.GlobalTable().At(key)
}

// returnStatus describes how a block finished.
type returnStatus uint8

const (
	statusNormal returnStatus = iota
	statusFunctionReturn
	statusLoopBreak
	statusLoopContinue
)

// returnState is a block's exit status and, for function returns, its
// value.
type returnState struct {
	status returnStatus
	result objects.Value
}
