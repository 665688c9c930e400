/*
File    : rebar-go/objects/runtime.go
*/
package objects

// Runtime is the slice of the Environment the value domain needs: the
// string intern pool, the string virtual table, the argument stack, and the
// execution provider's call entry point. The env package's Environment
// implements it; the indirection keeps the value domain free of an import
// cycle with the environment.
type Runtime interface {
	// Intern returns the interned string value for text.
	Intern(text string) Value

	// StringVirtualTable returns the table consulted when a string is
	// selected with a string key.
	StringVirtualTable() *Table

	// Argument stack. Each IncArgStack must pair with a DecArgStack.
	IncArgStack()
	DecArgStack()
	SetArgs(args []Value)
	Arg(i int) Value
	ArgCount() int

	// CallFunction invokes a provider-owned function record.
	CallFunction(source any) Value
}

// Function is a function record handle. Source points at a record owned by
// the execution provider (an interpreted body or a bound native callable);
// the provider interprets it in CallFunction.
type Function struct {
	Source any
}

// Call invokes callee with args. Function values route through the
// provider via the argument stack; native objects dispatch to their call
// slot; anything else is a type error.
func Call(rt Runtime, callee Value, args []Value) Value {
	switch callee.kind {
	case KindFunction:
		rt.IncArgStack()
		rt.SetArgs(args)
		result := rt.CallFunction(callee.Function().Source)
		rt.DecArgStack()
		return result

	case KindNativeObject:
		native := callee.Native()
		if native.vtable.Call == nil {
			return NewTypeError("native object is not callable")
		}
		rt.IncArgStack()
		rt.SetArgs(args)
		result := native.vtable.Call(rt, callee)
		rt.DecArgStack()
		return result

	case KindError:
		return callee

	default:
		return NewTypeError("cannot call a %s value", callee.kind)
	}
}

// NewObject dispatches "new callee(args)" to the native-object new slot of
// the receiver's virtual table.
func NewObject(rt Runtime, callee Value, args []Value) Value {
	switch callee.kind {
	case KindNativeObject:
		native := callee.Native()
		if native.vtable.New == nil {
			return NewTypeError("native object has no constructor")
		}
		rt.IncArgStack()
		rt.SetArgs(args)
		result := native.vtable.New(rt, callee)
		rt.DecArgStack()
		return result

	case KindError:
		return callee

	default:
		return NewTypeError("cannot construct from a %s value", callee.kind)
	}
}
