/*
File    : rebar-go/objects/value.go
*/

// Package objects defines the runtime value domain: a tagged Value with
// null, boolean, integer, number, function, string, table, array, native
// object and error variants, together with the operator dispatch rules
// between them.
//
// Simple variants (null, boolean, integer, number) live entirely in the
// payload word; number payloads are the raw float bits, which is what makes
// the bitwise operators meaningful on numbers. Heap variants share their
// storage through pointers: copying a Value never copies a string, table,
// array or native object.
package objects

import (
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Kind discriminates the Value variants.
type Kind uint8

const (
	KindNull Kind = iota
	KindBoolean
	KindInteger
	KindNumber
	KindFunction
	KindString
	KindTable
	KindArray
	KindNativeObject
	KindError
)

var kindNames = [...]string{
	KindNull:         "null",
	KindBoolean:      "boolean",
	KindInteger:      "integer",
	KindNumber:       "number",
	KindFunction:     "function",
	KindString:       "string",
	KindTable:        "table",
	KindArray:        "array",
	KindNativeObject: "native object",
	KindError:        "error",
}

// String returns the kind's name.
func (k Kind) String() string {
	return kindNames[k]
}

// Value is the tagged runtime value: a kind, a payload word for the simple
// variants, and a pointer for the heap-backed variants. The zero Value is
// Null. Values are valid map keys; interned strings make string keys
// compare by pointer.
type Value struct {
	kind Kind
	data uint64
	ref  any
}

// Null is the null value.
var Null = Value{}

// NewBoolean creates a boolean value.
func NewBoolean(b bool) Value {
	var data uint64
	if b {
		data = 1
	}
	return Value{kind: KindBoolean, data: data}
}

// NewInteger creates an integer value.
func NewInteger(i int64) Value {
	return Value{kind: KindInteger, data: uint64(i)}
}

// NewNumber creates a number value. The payload holds the raw float bits.
func NewNumber(f float64) Value {
	return Value{kind: KindNumber, data: math.Float64bits(f)}
}

// NewFunctionValue wraps a function record.
func NewFunctionValue(f *Function) Value {
	return Value{kind: KindFunction, ref: f}
}

// NewStringValue wraps an interned string block. Strings must come from an
// Environment's intern pool so that equal contents share one block.
func NewStringValue(s *String) Value {
	return Value{kind: KindString, ref: s}
}

// NewTableValue wraps a table.
func NewTableValue(t *Table) Value {
	return Value{kind: KindTable, ref: t}
}

// NewArrayValue wraps an array.
func NewArrayValue(a *Array) Value {
	return Value{kind: KindArray, ref: a}
}

// NewNativeObjectValue wraps a native object.
func NewNativeObjectValue(n *NativeObject) Value {
	return Value{kind: KindNativeObject, ref: n}
}

// Kind returns the value's variant tag.
func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNull() bool         { return v.kind == KindNull }
func (v Value) IsBoolean() bool      { return v.kind == KindBoolean }
func (v Value) IsInteger() bool      { return v.kind == KindInteger }
func (v Value) IsNumber() bool       { return v.kind == KindNumber }
func (v Value) IsFunction() bool     { return v.kind == KindFunction }
func (v Value) IsString() bool       { return v.kind == KindString }
func (v Value) IsTable() bool        { return v.kind == KindTable }
func (v Value) IsArray() bool        { return v.kind == KindArray }
func (v Value) IsNativeObject() bool { return v.kind == KindNativeObject }
func (v Value) IsError() bool        { return v.kind == KindError }

// Boolean returns the boolean payload.
func (v Value) Boolean() bool {
	return v.data != 0
}

// Integer returns the integer payload.
func (v Value) Integer() int64 {
	return int64(v.data)
}

// Number returns the number payload.
func (v Value) Number() float64 {
	return math.Float64frombits(v.data)
}

// Function returns the function record.
func (v Value) Function() *Function {
	return v.ref.(*Function)
}

// Str returns the interned string block.
func (v Value) Str() *String {
	return v.ref.(*String)
}

// Table returns the table.
func (v Value) Table() *Table {
	return v.ref.(*Table)
}

// Array returns the array.
func (v Value) Array() *Array {
	return v.ref.(*Array)
}

// Native returns the native object.
func (v Value) Native() *NativeObject {
	return v.ref.(*NativeObject)
}

// Err returns the error payload.
func (v Value) Err() *Error {
	return v.ref.(*Error)
}

// Truthy evaluates the value as a condition. Null is false; the simple
// variants are false when their payload word is zero, which makes integer 0
// and number 0.0 falsy; errors are false; heap variants are true.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNull:
		return false
	case KindBoolean, KindInteger, KindNumber:
		return v.data != 0
	case KindError:
		return false
	}
	return true
}

// SimplyComparable reports whether the value compares by payload word alone
// (null, boolean, integer, number) or by record pointer (function).
func (v Value) SimplyComparable() bool {
	return v.kind <= KindFunction
}

// ToString renders the value as plain text: string contents are unquoted,
// numbers use the shortest round-trip form. This is the representation used
// by string coercion during '+'.
func (v Value) ToString() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBoolean:
		if v.data != 0 {
			return "true"
		}
		return "false"
	case KindInteger:
		return strconv.FormatInt(v.Integer(), 10)
	case KindNumber:
		return strconv.FormatFloat(v.Number(), 'g', -1, 64)
	case KindFunction:
		return "function"
	case KindString:
		return v.Str().Text()
	case KindTable:
		return v.Table().ToString()
	case KindArray:
		arr := v.Array()
		parts := lo.Map(arr.Values(), func(elem Value, _ int) string {
			return elem.ToString()
		})
		return "[" + strings.Join(parts, ", ") + "]"
	case KindNativeObject:
		return "native object"
	case KindError:
		return v.Err().String()
	}
	return ""
}

// Inspect renders the value for diagnostic display: strings are quoted,
// other variants match ToString.
func (v Value) Inspect() string {
	if v.kind == KindString {
		return strconv.Quote(v.Str().Text())
	}
	return v.ToString()
}
