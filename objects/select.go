/*
File    : rebar-go/objects/select.go
*/
package objects

// Index resolves target[key] to an assignable slot. Arrays accept integer
// keys; tables auto-insert a null slot for absent keys; native objects
// dispatch to their index slot. The second result is an error value when
// no slot can be produced.
func Index(rt Runtime, target, key Value) (*Value, Value) {
	if target.kind == KindError {
		return nil, target
	}
	if key.kind == KindError {
		return nil, key
	}

	switch target.kind {
	case KindArray:
		if !key.IsInteger() {
			return nil, NewTypeError("array index must be an integer, not %s", key.kind)
		}
		arr := target.Array()
		if !arr.InBounds(key.Integer()) {
			return nil, NewBoundsError("array index %d out of range [0, %d)", key.Integer(), arr.Size())
		}
		if arr.IsView() {
			return nil, NewTypeError("cannot assign through an array view")
		}
		return arr.At(int(key.Integer())), Null

	case KindTable:
		return target.Table().At(key), Null

	case KindNativeObject:
		native := target.Native()
		if native.vtable.Index == nil {
			return nil, NewTypeError("native object does not overload indexing")
		}
		slot := native.vtable.Index(rt, target, key)
		if slot == nil {
			return nil, NewLookupError("native index produced no slot")
		}
		return slot, Null
	}

	return nil, NewTypeError("cannot index a %s value", target.kind)
}

// Select resolves target[key] to a value without creating slots. Strings
// return the key-th byte for integer keys and consult the environment's
// string virtual table for string keys; arrays return elements; tables
// look up without inserting; native objects try their select slot and fall
// back to their virtual table's method table.
func Select(rt Runtime, target, key Value) Value {
	if target.kind == KindError {
		return target
	}
	if key.kind == KindError {
		return key
	}

	switch target.kind {
	case KindString:
		str := target.Str()
		switch key.kind {
		case KindInteger:
			i := key.Integer()
			if i < 0 || i >= int64(str.Length()) {
				return NewBoundsError("string index %d out of range [0, %d)", i, str.Length())
			}
			return NewInteger(int64(str.ByteAt(int(i))))
		case KindString:
			return rt.StringVirtualTable().Index(key)
		}
		return NewTypeError("cannot select string with %s key", key.kind)

	case KindTable:
		return target.Table().Index(key)

	case KindArray:
		if !key.IsInteger() {
			return NewTypeError("array index must be an integer, not %s", key.kind)
		}
		arr := target.Array()
		if !arr.InBounds(key.Integer()) {
			return NewBoundsError("array index %d out of range [0, %d)", key.Integer(), arr.Size())
		}
		return *arr.At(int(key.Integer()))

	case KindNativeObject:
		native := target.Native()
		if native.vtable.Select != nil {
			if result := native.vtable.Select(rt, target, key); !result.IsNull() {
				return result
			}
		}
		return native.vtable.Table.Index(key)
	}

	return NewTypeError("cannot select from a %s value", target.kind)
}

// normalizeRange resolves negative bounds against size, swaps an inverted
// pair, and checks the result against [0, size).
func normalizeRange(lower, upper, size int64) (int64, int64, bool) {
	if lower < 0 {
		lower = size + lower
	}
	if upper < 0 {
		upper = size + upper
	}
	if lower > upper {
		lower, upper = upper, lower
	}
	if lower < 0 || upper >= size {
		return 0, 0, false
	}
	return lower, upper, true
}

// RangedSelect resolves target[lower:upper] with inclusive bounds.
// Negative bounds count from the end; swapped bounds are reordered.
// Strings produce substrings, arrays produce views sharing the parent
// storage, native objects dispatch to their ranged-select slot.
func RangedSelect(rt Runtime, target, lower, upper Value) Value {
	if target.kind == KindError {
		return target
	}
	if lower.kind == KindError {
		return lower
	}
	if upper.kind == KindError {
		return upper
	}

	switch target.kind {
	case KindString:
		if !lower.IsInteger() || !upper.IsInteger() {
			return NewTypeError("string range bounds must be integers")
		}
		str := target.Str()
		lo, hi, ok := normalizeRange(lower.Integer(), upper.Integer(), int64(str.Length()))
		if !ok {
			return NewBoundsError("string range [%d:%d] out of range [0, %d)",
				lower.Integer(), upper.Integer(), str.Length())
		}
		return rt.Intern(str.Text()[lo : hi+1])

	case KindArray:
		if !lower.IsInteger() || !upper.IsInteger() {
			return NewTypeError("array range bounds must be integers")
		}
		arr := target.Array()
		lo, hi, ok := normalizeRange(lower.Integer(), upper.Integer(), int64(arr.Size()))
		if !ok {
			return NewBoundsError("array range [%d:%d] out of range [0, %d)",
				lower.Integer(), upper.Integer(), arr.Size())
		}
		return NewArrayValue(arr.SubArray(int(lo), int(hi-lo+1)))

	case KindNativeObject:
		native := target.Native()
		if native.vtable.RangedSelect == nil {
			return NewTypeError("native object does not overload ranged selection")
		}
		return native.vtable.RangedSelect(rt, target, lower, upper)
	}

	return NewTypeError("cannot range-select from a %s value", target.kind)
}

// Length implements '#'. Strings report byte length, arrays element count,
// native objects their length slot; every other variant passes through
// unchanged.
func Length(rt Runtime, v Value) Value {
	switch v.kind {
	case KindString:
		return NewInteger(int64(v.Str().Length()))
	case KindArray:
		return NewInteger(int64(v.Array().Size()))
	case KindNativeObject:
		return dispatchUnary(rt, v.Native().vtable.Length, v, "'#'")
	}
	return v
}
