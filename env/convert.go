/*
File    : rebar-go/env/convert.go
*/
package env

import (
	"github.com/spf13/cast"

	"github.com/Buckell/rebar-go/objects"
)

// FromGo converts a host Go value into a runtime value: nil to null, bools
// and the integer/float families to their variants, strings to interned
// strings, []any slices to arrays, map[string]any maps to tables. Runtime
// values pass through unchanged. Anything else, including other slice and
// map types, is coerced to a string as a last resort, or reported as a type
// error when even that fails.
//
// This is the embedding boundary; inside operator dispatch no coercion of
// this kind ever happens.
func (e *Environment) FromGo(v any) objects.Value {
	switch value := v.(type) {
	case nil:
		return objects.Null
	case objects.Value:
		return value
	case bool:
		return objects.NewBoolean(value)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return objects.NewInteger(cast.ToInt64(value))
	case float32, float64:
		return objects.NewNumber(cast.ToFloat64(value))
	case string:
		return e.Intern(value)
	case []any:
		arr := objects.NewArray(len(value))
		for _, elem := range value {
			arr.Push(e.FromGo(elem))
		}
		return objects.NewArrayValue(arr)
	case map[string]any:
		tbl := objects.NewTable()
		for key, elem := range value {
			tbl.Set(e.Intern(key), e.FromGo(elem))
		}
		return objects.NewTableValue(tbl)
	}

	text, err := cast.ToStringE(v)
	if err != nil {
		return objects.NewTypeError("cannot convert host value of type %T", v)
	}
	return e.Intern(text)
}
