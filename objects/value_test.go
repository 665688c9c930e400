/*
File    : rebar-go/objects/value_test.go
*/
package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRuntime is a minimal Runtime for exercising the value domain without
// an Environment: an intern pool, a string virtual table, and an argument
// stack that starts with one frame.
type testRuntime struct {
	strings map[string]*String
	svt     *Table

	argPosition int
	arguments   [][]Value

	call func(source any) Value
}

func newTestRuntime() *testRuntime {
	return &testRuntime{
		strings:   make(map[string]*String),
		svt:       NewTable(),
		arguments: make([][]Value, 1),
	}
}

func (rt *testRuntime) Intern(text string) Value {
	if s, ok := rt.strings[text]; ok {
		return NewStringValue(s)
	}
	s := NewString(text)
	rt.strings[text] = s
	return NewStringValue(s)
}

func (rt *testRuntime) StringVirtualTable() *Table { return rt.svt }

func (rt *testRuntime) IncArgStack() {
	rt.argPosition++
	if len(rt.arguments) <= rt.argPosition {
		rt.arguments = append(rt.arguments, nil)
	}
}

func (rt *testRuntime) DecArgStack() {
	rt.arguments[rt.argPosition] = rt.arguments[rt.argPosition][:0]
	rt.argPosition--
}

func (rt *testRuntime) SetArgs(args []Value) {
	rt.arguments[rt.argPosition] = append(rt.arguments[rt.argPosition], args...)
}

func (rt *testRuntime) Arg(i int) Value {
	if i < 0 || i >= rt.ArgCount() {
		return Null
	}
	return rt.arguments[rt.argPosition][i]
}

func (rt *testRuntime) ArgCount() int { return len(rt.arguments[rt.argPosition]) }

func (rt *testRuntime) CallFunction(source any) Value {
	if rt.call != nil {
		return rt.call(source)
	}
	return Null
}

func TestValue_Truthiness(t *testing.T) {
	rt := newTestRuntime()

	// Null, boolean false, integer 0 and number 0.0 are falsy; everything
	// else is truthy, including empty strings and containers.
	assert.False(t, Null.Truthy())
	assert.False(t, NewBoolean(false).Truthy())
	assert.False(t, NewInteger(0).Truthy())
	assert.False(t, NewNumber(0.0).Truthy())

	assert.True(t, NewBoolean(true).Truthy())
	assert.True(t, NewInteger(-1).Truthy())
	assert.True(t, NewNumber(0.5).Truthy())
	assert.True(t, rt.Intern("").Truthy())
	assert.True(t, NewTableValue(NewTable()).Truthy())
	assert.True(t, NewArrayValue(NewArray(0)).Truthy())
}

func TestValue_SimpleComparability(t *testing.T) {
	assert.True(t, Null.SimplyComparable())
	assert.True(t, NewBoolean(true).SimplyComparable())
	assert.True(t, NewInteger(3).SimplyComparable())
	assert.True(t, NewNumber(3.5).SimplyComparable())
	assert.True(t, NewFunctionValue(&Function{}).SimplyComparable())

	rt := newTestRuntime()
	assert.False(t, rt.Intern("x").SimplyComparable())
	assert.False(t, NewTableValue(NewTable()).SimplyComparable())
}

func TestValue_ToString(t *testing.T) {
	rt := newTestRuntime()

	assert.Equal(t, "null", Null.ToString())
	assert.Equal(t, "true", NewBoolean(true).ToString())
	assert.Equal(t, "42", NewInteger(42).ToString())
	assert.Equal(t, "1.5", NewNumber(1.5).ToString())
	assert.Equal(t, "abc", rt.Intern("abc").ToString())
	assert.Equal(t, `"abc"`, rt.Intern("abc").Inspect())

	arr := NewArrayOf(NewInteger(1), NewInteger(2))
	assert.Equal(t, "[1, 2]", NewArrayValue(arr).ToString())
}

func TestValue_TableKeys(t *testing.T) {
	rt := newTestRuntime()
	tbl := NewTable()

	// Interned strings with equal contents address the same slot.
	tbl.Set(rt.Intern("key"), NewInteger(1))
	assert.Equal(t, NewInteger(1), tbl.Index(rt.Intern("key")))

	// Integer and number keys with the same numeric value stay distinct.
	tbl.Set(NewInteger(1), NewInteger(10))
	tbl.Set(NewNumber(1.0), NewInteger(20))
	assert.Equal(t, NewInteger(10), tbl.Index(NewInteger(1)))
	assert.Equal(t, NewInteger(20), tbl.Index(NewNumber(1.0)))

	// Absent keys read as null without insertion.
	assert.Equal(t, Null, tbl.Index(rt.Intern("missing")))
	assert.Equal(t, 3, tbl.Len())
}

func TestArray_Views(t *testing.T) {
	arr := NewArrayOf(NewInteger(10), NewInteger(20), NewInteger(30), NewInteger(40))

	view := arr.SubArray(1, 2)
	require.True(t, view.IsView())
	require.Equal(t, 2, view.Size())
	assert.Equal(t, NewInteger(20), *view.At(0))
	assert.Equal(t, NewInteger(30), *view.At(1))

	// Views observe mutations of the parent storage.
	*arr.At(1) = NewInteger(99)
	assert.Equal(t, NewInteger(99), *view.At(0))

	// Views may not grow.
	assert.False(t, view.Push(NewInteger(1)))

	// A view of a view collapses onto the managed array.
	inner := view.SubArray(1, 1)
	require.True(t, inner.IsView())
	assert.Equal(t, NewInteger(30), *inner.At(0))
}

func TestNativeObject_ReleaseRunsDestructorOnce(t *testing.T) {
	released := 0
	vt := NewVirtualTable()
	obj := NewNativeObject(vt, "payload", func(data any) {
		released++
		assert.Equal(t, "payload", data)
	})

	obj.Release()
	obj.Release()
	assert.Equal(t, 1, released)
}

func TestCall_Dispatch(t *testing.T) {
	rt := newTestRuntime()

	// Function values route through the provider with their arguments on
	// the stack.
	var observed []Value
	rt.call = func(source any) Value {
		assert.Equal(t, "record", source)
		observed = append([]Value{}, rt.arguments[rt.argPosition]...)
		return NewInteger(7)
	}
	fn := NewFunctionValue(&Function{Source: "record"})
	result := Call(rt, fn, []Value{NewInteger(1), NewInteger(2)})
	assert.Equal(t, NewInteger(7), result)
	require.Len(t, observed, 2)
	assert.Equal(t, 0, rt.argPosition)

	// Native objects dispatch their call slot.
	vt := NewVirtualTable()
	vt.Call = func(rt Runtime, self Value) Value {
		return rt.Arg(0)
	}
	native := NewNativeObjectValue(NewNativeObject(vt, nil, nil))
	assert.Equal(t, NewInteger(5), Call(rt, native, []Value{NewInteger(5)}))

	// Anything else is a type error.
	assert.True(t, Call(rt, NewInteger(3), nil).IsError())
}
