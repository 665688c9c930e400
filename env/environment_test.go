/*
File    : rebar-go/env/environment_test.go
*/
package env_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Buckell/rebar-go/env"
	"github.com/Buckell/rebar-go/eval"
	"github.com/Buckell/rebar-go/objects"
)

// TestEnvironment_Interning checks the string-interning property: equal
// contents yield the same block, so values compare equal by pointer.
func TestEnvironment_Interning(t *testing.T) {
	e := eval.NewEnvironment()

	first := e.Intern("shared text")
	second := e.Intern("shared text")
	other := e.Intern("different")

	// Same payload pointer, hence equal values.
	assert.Same(t, first.Str(), second.Str())
	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)

	// Interned strings work as table keys across separate interning calls.
	tbl := objects.NewTable()
	tbl.Set(e.Intern("key"), objects.NewInteger(1))
	assert.Equal(t, objects.NewInteger(1), tbl.Index(e.Intern("key")))
}

func TestEnvironment_ArgumentStack(t *testing.T) {
	e := eval.NewEnvironment()

	assert.Equal(t, 0, e.ArgCount())
	assert.Equal(t, objects.Null, e.Arg(0))

	e.IncArgStack()
	e.SetArgs([]objects.Value{objects.NewInteger(1), objects.NewInteger(2)})
	assert.Equal(t, 2, e.ArgCount())
	assert.Equal(t, objects.NewInteger(1), e.Arg(0))
	assert.Equal(t, objects.NewInteger(2), e.Arg(1))
	assert.Equal(t, objects.Null, e.Arg(2))

	// Nested frames shadow the outer frame.
	e.IncArgStack()
	assert.Equal(t, 0, e.ArgCount())
	e.SetArgs([]objects.Value{objects.NewInteger(9)})
	assert.Equal(t, objects.NewInteger(9), e.Arg(0))
	e.DecArgStack()

	// The outer frame is intact after the pop.
	assert.Equal(t, 2, e.ArgCount())
	assert.Equal(t, objects.NewInteger(2), e.Arg(1))
	e.DecArgStack()
	assert.Equal(t, 0, e.ArgCount())
}

func TestEnvironment_NativeClassRegistry(t *testing.T) {
	e := eval.NewEnvironment()

	_, err := e.GetNativeClassNamed("point")
	require.Error(t, err)

	vt := e.RegisterNativeClassNamed("point", nil)
	require.NotNil(t, vt)

	found, err := e.GetNativeClassNamed("point")
	require.NoError(t, err)
	assert.Same(t, vt, found)

	value, err := e.CreateNativeObject(e.Intern("point"), [2]int{1, 2}, nil)
	require.NoError(t, err)
	require.True(t, value.IsNativeObject())
	assert.Equal(t, [2]int{1, 2}, value.Native().Data())
}

func TestEnvironment_CompileAndBind(t *testing.T) {
	e := eval.NewEnvironment()

	compiled, err := e.CompileString(`return 40 + 2;`)
	require.NoError(t, err)
	require.True(t, compiled.IsFunction())
	assert.Equal(t, objects.NewInteger(42), objects.Call(e, compiled, nil))

	// Parse diagnostics surface as an error.
	_, err = e.CompileString(`if (a { broken`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PARSE ERROR")

	// Bound natives read their arguments off the argument stack.
	double := e.Bind(func(inner *env.Environment) objects.Value {
		return objects.NewInteger(inner.Arg(0).Integer() * 2)
	})
	require.True(t, double.IsFunction())
	result := objects.Call(e, double, []objects.Value{objects.NewInteger(21)})
	assert.Equal(t, objects.NewInteger(42), result)
}

func TestEnvironment_FromGo(t *testing.T) {
	e := eval.NewEnvironment()

	assert.Equal(t, objects.Null, e.FromGo(nil))
	assert.Equal(t, objects.NewBoolean(true), e.FromGo(true))
	assert.Equal(t, objects.NewInteger(42), e.FromGo(42))
	assert.Equal(t, objects.NewInteger(7), e.FromGo(uint8(7)))
	assert.Equal(t, objects.NewNumber(1.5), e.FromGo(1.5))
	assert.Equal(t, e.Intern("text"), e.FromGo("text"))

	arr := e.FromGo([]any{1, "two", 3.0})
	require.True(t, arr.IsArray())
	assert.Equal(t, 3, arr.Array().Size())
	assert.Equal(t, objects.NewInteger(1), *arr.Array().At(0))

	tbl := e.FromGo(map[string]any{"a": 1})
	require.True(t, tbl.IsTable())
	assert.Equal(t, objects.NewInteger(1), tbl.Table().Index(e.Intern("a")))

	// Runtime values pass through untouched.
	passthrough := objects.NewInteger(3)
	assert.Equal(t, passthrough, e.FromGo(passthrough))
}
