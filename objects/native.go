/*
File    : rebar-go/objects/native.go
*/
package objects

import "runtime"

// BinaryOverload is a two-operand operator slot: self is the native-object
// value the operator dispatched on.
type BinaryOverload func(rt Runtime, self, rhs Value) Value

// UnaryOverload is a single-operand operator slot.
type UnaryOverload func(rt Runtime, self Value) Value

// VirtualTable is a table extended with operator slots. The embedded table
// holds methods and class fields reachable through select; the slots
// overload the language operators for instances carrying this vtable. Nil
// slots report type errors when dispatched.
//
// Prefix and postfix increment/decrement have distinct slots: prefix
// mutates in place and returns the new value, postfix returns a snapshot
// and then mutates.
type VirtualTable struct {
	Table

	Addition       BinaryOverload
	Subtraction    BinaryOverload
	Multiplication BinaryOverload
	Division       BinaryOverload
	Modulus        BinaryOverload
	Exponent       BinaryOverload

	AdditionAssignment       BinaryOverload
	SubtractionAssignment    BinaryOverload
	MultiplicationAssignment BinaryOverload
	DivisionAssignment       BinaryOverload
	ModulusAssignment        BinaryOverload
	ExponentAssignment       BinaryOverload

	BitwiseOr  BinaryOverload
	BitwiseXor BinaryOverload
	BitwiseAnd BinaryOverload
	BitwiseNot UnaryOverload
	ShiftLeft  BinaryOverload
	ShiftRight BinaryOverload

	BitwiseOrAssignment  BinaryOverload
	BitwiseXorAssignment BinaryOverload
	BitwiseAndAssignment BinaryOverload
	ShiftLeftAssignment  BinaryOverload
	ShiftRightAssignment BinaryOverload

	LogicalOr  BinaryOverload
	LogicalAnd BinaryOverload
	LogicalNot UnaryOverload

	Equality        BinaryOverload
	InverseEquality BinaryOverload
	Greater         BinaryOverload
	Lesser          BinaryOverload
	GreaterEquality BinaryOverload
	LesserEquality  BinaryOverload

	PrefixIncrement  UnaryOverload
	PrefixDecrement  UnaryOverload
	PostfixIncrement UnaryOverload
	PostfixDecrement UnaryOverload

	Length       UnaryOverload
	Index        func(rt Runtime, self, key Value) *Value
	Select       BinaryOverload
	RangedSelect func(rt Runtime, self, lower, upper Value) Value

	// Call and New receive their arguments through the runtime's argument
	// stack, like any other callable.
	Call UnaryOverload
	New  UnaryOverload
}

// NewVirtualTable creates a virtual table with an initialized method table
// and empty operator slots.
func NewVirtualTable() *VirtualTable {
	return &VirtualTable{Table: *NewTable()}
}

// Destructor runs before a native object's storage is reclaimed.
type Destructor func(data any)

// NativeObject is a host-provided heap value: a virtual table for operator
// dispatch plus a typed payload. The optional destructor is invoked when
// the object is released, either explicitly through Release or by the
// collector once the object is unreachable.
type NativeObject struct {
	vtable     *VirtualTable
	data       any
	destructor Destructor
	released   bool
}

// NewNativeObject creates a native object carrying data with the given
// virtual table and optional destructor.
func NewNativeObject(vt *VirtualTable, data any, destructor Destructor) *NativeObject {
	n := &NativeObject{vtable: vt, data: data, destructor: destructor}
	if destructor != nil {
		runtime.SetFinalizer(n, func(obj *NativeObject) {
			obj.Release()
		})
	}
	return n
}

// VTable returns the object's virtual table.
func (n *NativeObject) VTable() *VirtualTable {
	return n.vtable
}

// Data returns the typed payload.
func (n *NativeObject) Data() any {
	return n.data
}

// Release runs the destructor, once. Hosts that need deterministic
// teardown call it explicitly; otherwise the finalizer does.
func (n *NativeObject) Release() {
	if n.released {
		return
	}
	n.released = true
	runtime.SetFinalizer(n, nil)
	if n.destructor != nil {
		n.destructor(n.data)
	}
}

// dispatchBinary invokes a binary slot or reports a type error.
func dispatchBinary(rt Runtime, slot BinaryOverload, self, rhs Value, name string) Value {
	if slot == nil {
		return NewTypeError("native object does not overload %s", name)
	}
	return slot(rt, self, rhs)
}

// dispatchUnary invokes a unary slot or reports a type error.
func dispatchUnary(rt Runtime, slot UnaryOverload, self Value, name string) Value {
	if slot == nil {
		return NewTypeError("native object does not overload %s", name)
	}
	return slot(rt, self)
}
