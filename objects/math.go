/*
File    : rebar-go/objects/math.go
*/

// Arithmetic, comparison, logical and bitwise dispatch over the value
// domain. Every operator resolves through a type-pair table: integers and
// numbers promote to numbers when mixed, booleans count as 0/1 beside an
// integer or number under '+' and as the right operand of '-' and '*' (a
// boolean left operand of '-' or '*' with a number, and any boolean under
// '/' or '%', is a type error), strings coerce and concatenate under '+',
// and a native-object left
// operand defers to its virtual-table slot. Unsupported pairs produce type
// errors. Error operands propagate unchanged through every operator.
package objects

import "math"

// propagate returns the first error operand, if any.
func propagate(lhs, rhs Value) (Value, bool) {
	if lhs.kind == KindError {
		return lhs, true
	}
	if rhs.kind == KindError {
		return rhs, true
	}
	return Null, false
}

// boolWord returns the 0/1 arithmetic participation of a boolean payload.
func boolWord(v Value) int64 {
	if v.data != 0 {
		return 1
	}
	return 0
}

// Add implements '+'. String operands coerce the other side and
// concatenate into a fresh interned string; an array left operand appends
// the right value in place and returns the array.
func Add(rt Runtime, lhs, rhs Value) Value {
	if err, ok := propagate(lhs, rhs); ok {
		return err
	}

	switch lhs.kind {
	case KindNull:
		if rhs.IsString() {
			return rt.Intern("null" + rhs.Str().Text())
		}
		return NewTypeError("cannot add null and %s", rhs.kind)

	case KindBoolean:
		switch rhs.kind {
		case KindString:
			return rt.Intern(lhs.ToString() + rhs.Str().Text())
		case KindInteger:
			return NewInteger(rhs.Integer() + boolWord(lhs))
		case KindNumber:
			return NewNumber(rhs.Number() + float64(boolWord(lhs)))
		case KindBoolean:
			if !lhs.Boolean() {
				return NewBoolean(rhs.Boolean())
			}
			return lhs
		}
		return NewTypeError("cannot add boolean and %s", rhs.kind)

	case KindInteger:
		switch rhs.kind {
		case KindBoolean:
			return NewInteger(lhs.Integer() + boolWord(rhs))
		case KindInteger:
			return NewInteger(lhs.Integer() + rhs.Integer())
		case KindNumber:
			return NewNumber(float64(lhs.Integer()) + rhs.Number())
		case KindString:
			return rt.Intern(lhs.ToString() + rhs.Str().Text())
		}
		return NewTypeError("cannot add integer and %s", rhs.kind)

	case KindNumber:
		switch rhs.kind {
		case KindBoolean:
			return NewNumber(lhs.Number() + float64(boolWord(rhs)))
		case KindInteger:
			return NewNumber(lhs.Number() + float64(rhs.Integer()))
		case KindNumber:
			return NewNumber(lhs.Number() + rhs.Number())
		case KindString:
			return rt.Intern(lhs.ToString() + rhs.Str().Text())
		}
		return NewTypeError("cannot add number and %s", rhs.kind)

	case KindString:
		if rhs.IsString() {
			return rt.Intern(lhs.Str().Text() + rhs.Str().Text())
		}
		return rt.Intern(lhs.Str().Text() + rhs.ToString())

	case KindArray:
		arr := lhs.Array()
		if !arr.Push(rhs) {
			return NewTypeError("cannot append through an array view")
		}
		return lhs

	case KindNativeObject:
		return dispatchBinary(rt, lhs.Native().vtable.Addition, lhs, rhs, "'+'")
	}

	return NewTypeError("cannot add %s and %s", lhs.kind, rhs.kind)
}

// Subtract implements '-'.
func Subtract(rt Runtime, lhs, rhs Value) Value {
	if err, ok := propagate(lhs, rhs); ok {
		return err
	}

	switch lhs.kind {
	case KindBoolean:
		if lhs.Boolean() && rhs.IsBoolean() {
			return NewBoolean(!rhs.Boolean())
		}
		return NewTypeError("cannot subtract %s from boolean", rhs.kind)

	case KindInteger:
		switch rhs.kind {
		case KindBoolean:
			return NewInteger(lhs.Integer() - boolWord(rhs))
		case KindInteger:
			return NewInteger(lhs.Integer() - rhs.Integer())
		case KindNumber:
			return NewNumber(float64(lhs.Integer()) - rhs.Number())
		}
		return NewTypeError("cannot subtract %s from integer", rhs.kind)

	case KindNumber:
		switch rhs.kind {
		case KindBoolean:
			return NewNumber(lhs.Number() - float64(boolWord(rhs)))
		case KindInteger:
			return NewNumber(lhs.Number() - float64(rhs.Integer()))
		case KindNumber:
			return NewNumber(lhs.Number() - rhs.Number())
		}
		return NewTypeError("cannot subtract %s from number", rhs.kind)

	case KindNativeObject:
		return dispatchBinary(rt, lhs.Native().vtable.Subtraction, lhs, rhs, "'-'")
	}

	return NewTypeError("cannot subtract %s from %s", rhs.kind, lhs.kind)
}

// Multiply implements '*'. A string left operand with an integer right
// operand produces k-fold repetition.
func Multiply(rt Runtime, lhs, rhs Value) Value {
	if err, ok := propagate(lhs, rhs); ok {
		return err
	}

	switch lhs.kind {
	case KindBoolean:
		if rhs.IsBoolean() {
			return NewBoolean(lhs.Boolean() && rhs.Boolean())
		}
		return NewTypeError("cannot multiply boolean and %s", rhs.kind)

	case KindInteger:
		switch rhs.kind {
		case KindBoolean:
			return NewInteger(lhs.Integer() * boolWord(rhs))
		case KindInteger:
			return NewInteger(lhs.Integer() * rhs.Integer())
		case KindNumber:
			return NewNumber(float64(lhs.Integer()) * rhs.Number())
		}
		return NewTypeError("cannot multiply integer and %s", rhs.kind)

	case KindNumber:
		switch rhs.kind {
		case KindBoolean:
			return NewNumber(lhs.Number() * float64(boolWord(rhs)))
		case KindInteger:
			return NewNumber(lhs.Number() * float64(rhs.Integer()))
		case KindNumber:
			return NewNumber(lhs.Number() * rhs.Number())
		}
		return NewTypeError("cannot multiply number and %s", rhs.kind)

	case KindString:
		if rhs.IsInteger() {
			text := lhs.Str().Text()
			count := rhs.Integer()
			var repeated []byte
			for k := int64(0); k < count; k++ {
				repeated = append(repeated, text...)
			}
			return rt.Intern(string(repeated))
		}
		return NewTypeError("cannot multiply string and %s", rhs.kind)

	case KindNativeObject:
		return dispatchBinary(rt, lhs.Native().vtable.Multiplication, lhs, rhs, "'*'")
	}

	return NewTypeError("cannot multiply %s and %s", lhs.kind, rhs.kind)
}

// Divide implements '/'. Division always produces a number, including for
// two integer operands.
func Divide(rt Runtime, lhs, rhs Value) Value {
	if err, ok := propagate(lhs, rhs); ok {
		return err
	}

	switch lhs.kind {
	case KindInteger:
		switch rhs.kind {
		case KindInteger:
			return NewNumber(float64(lhs.Integer()) / float64(rhs.Integer()))
		case KindNumber:
			return NewNumber(float64(lhs.Integer()) / rhs.Number())
		}
		return NewTypeError("cannot divide integer by %s", rhs.kind)

	case KindNumber:
		switch rhs.kind {
		case KindInteger:
			return NewNumber(lhs.Number() / float64(rhs.Integer()))
		case KindNumber:
			return NewNumber(lhs.Number() / rhs.Number())
		}
		return NewTypeError("cannot divide number by %s", rhs.kind)

	case KindNativeObject:
		return dispatchBinary(rt, lhs.Native().vtable.Division, lhs, rhs, "'/'")
	}

	return NewTypeError("cannot divide %s by %s", lhs.kind, rhs.kind)
}

// Modulus implements '%'. Two integers produce an integer remainder; any
// number operand switches to floating-point remainder.
func Modulus(rt Runtime, lhs, rhs Value) Value {
	if err, ok := propagate(lhs, rhs); ok {
		return err
	}

	switch lhs.kind {
	case KindInteger:
		switch rhs.kind {
		case KindInteger:
			if rhs.Integer() == 0 {
				return NewTypeError("integer modulus by zero")
			}
			return NewInteger(lhs.Integer() % rhs.Integer())
		case KindNumber:
			return NewNumber(math.Mod(float64(lhs.Integer()), rhs.Number()))
		}
		return NewTypeError("cannot take integer modulus with %s", rhs.kind)

	case KindNumber:
		switch rhs.kind {
		case KindInteger:
			return NewNumber(math.Mod(lhs.Number(), float64(rhs.Integer())))
		case KindNumber:
			return NewNumber(math.Mod(lhs.Number(), rhs.Number()))
		}
		return NewTypeError("cannot take number modulus with %s", rhs.kind)

	case KindNativeObject:
		return dispatchBinary(rt, lhs.Native().vtable.Modulus, lhs, rhs, "'%'")
	}

	return NewTypeError("cannot take modulus of %s and %s", lhs.kind, rhs.kind)
}

// Exponentiate implements '^'. Results are always numbers.
func Exponentiate(rt Runtime, lhs, rhs Value) Value {
	if err, ok := propagate(lhs, rhs); ok {
		return err
	}

	numeric := func(v Value) (float64, bool) {
		switch v.kind {
		case KindInteger:
			return float64(v.Integer()), true
		case KindNumber:
			return v.Number(), true
		}
		return 0, false
	}

	if lhs.IsNativeObject() {
		return dispatchBinary(rt, lhs.Native().vtable.Exponent, lhs, rhs, "'^'")
	}

	base, okBase := numeric(lhs)
	exp, okExp := numeric(rhs)
	if !okBase || !okExp {
		return NewTypeError("cannot exponentiate %s and %s", lhs.kind, rhs.kind)
	}
	return NewNumber(math.Pow(base, exp))
}

// Equals implements '=='. Values of different kinds are unequal. Simply
// comparable variants compare by payload word; functions by record;
// strings by interned pointer; tables and arrays by storage identity;
// native objects through their equality slot when present.
func Equals(rt Runtime, lhs, rhs Value) Value {
	if err, ok := propagate(lhs, rhs); ok {
		return err
	}
	if lhs.kind != rhs.kind {
		return NewBoolean(false)
	}

	switch lhs.kind {
	case KindNull, KindBoolean, KindInteger, KindNumber:
		return NewBoolean(lhs.data == rhs.data)
	case KindNativeObject:
		if slot := lhs.Native().vtable.Equality; slot != nil {
			return slot(rt, lhs, rhs)
		}
	}
	return NewBoolean(lhs.ref == rhs.ref)
}

// NotEquals implements '!='.
func NotEquals(rt Runtime, lhs, rhs Value) Value {
	if err, ok := propagate(lhs, rhs); ok {
		return err
	}
	if lhs.kind != rhs.kind {
		return NewBoolean(true)
	}

	switch lhs.kind {
	case KindNull, KindBoolean, KindInteger, KindNumber:
		return NewBoolean(lhs.data != rhs.data)
	case KindNativeObject:
		if slot := lhs.Native().vtable.InverseEquality; slot != nil {
			return slot(rt, lhs, rhs)
		}
	}
	return NewBoolean(lhs.ref != rhs.ref)
}

// compareValues orders the comparable pairs: integer/number against
// integer/number, and string against integer by string length.
func compareValues(lhs, rhs Value) (int, bool) {
	asFloat := func(v Value) (float64, bool) {
		switch v.kind {
		case KindInteger:
			return float64(v.Integer()), true
		case KindNumber:
			return v.Number(), true
		case KindString:
			return float64(v.Str().Length()), true
		}
		return 0, false
	}

	// String-string and other heap pairs have no ordering.
	if lhs.IsString() && !rhs.IsInteger() {
		return 0, false
	}
	if rhs.IsString() && !lhs.IsInteger() {
		return 0, false
	}

	a, okA := asFloat(lhs)
	b, okB := asFloat(rhs)
	if !okA || !okB {
		return 0, false
	}
	switch {
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	}
	return 0, true
}

// Greater implements '>'.
func Greater(rt Runtime, lhs, rhs Value) Value {
	if err, ok := propagate(lhs, rhs); ok {
		return err
	}
	if lhs.IsNativeObject() {
		return dispatchBinary(rt, lhs.Native().vtable.Greater, lhs, rhs, "'>'")
	}
	cmp, ok := compareValues(lhs, rhs)
	if !ok {
		return NewTypeError("cannot order %s and %s", lhs.kind, rhs.kind)
	}
	return NewBoolean(cmp > 0)
}

// Lesser implements '<'.
func Lesser(rt Runtime, lhs, rhs Value) Value {
	if err, ok := propagate(lhs, rhs); ok {
		return err
	}
	if lhs.IsNativeObject() {
		return dispatchBinary(rt, lhs.Native().vtable.Lesser, lhs, rhs, "'<'")
	}
	cmp, ok := compareValues(lhs, rhs)
	if !ok {
		return NewTypeError("cannot order %s and %s", lhs.kind, rhs.kind)
	}
	return NewBoolean(cmp < 0)
}

// GreaterEqual implements '>='.
func GreaterEqual(rt Runtime, lhs, rhs Value) Value {
	if err, ok := propagate(lhs, rhs); ok {
		return err
	}
	if lhs.IsNativeObject() {
		return dispatchBinary(rt, lhs.Native().vtable.GreaterEquality, lhs, rhs, "'>='")
	}
	cmp, ok := compareValues(lhs, rhs)
	if !ok {
		return NewTypeError("cannot order %s and %s", lhs.kind, rhs.kind)
	}
	return NewBoolean(cmp >= 0)
}

// LesserEqual implements '<='.
func LesserEqual(rt Runtime, lhs, rhs Value) Value {
	if err, ok := propagate(lhs, rhs); ok {
		return err
	}
	if lhs.IsNativeObject() {
		return dispatchBinary(rt, lhs.Native().vtable.LesserEquality, lhs, rhs, "'<='")
	}
	cmp, ok := compareValues(lhs, rhs)
	if !ok {
		return NewTypeError("cannot order %s and %s", lhs.kind, rhs.kind)
	}
	return NewBoolean(cmp <= 0)
}

// LogicalNot implements '!'.
func LogicalNot(rt Runtime, lhs Value) Value {
	if lhs.kind == KindError {
		return lhs
	}
	if lhs.IsNativeObject() {
		return dispatchUnary(rt, lhs.Native().vtable.LogicalNot, lhs, "'!'")
	}
	return NewBoolean(!lhs.Truthy())
}

// bitPair reports whether both operands admit bitwise treatment (integer
// or number payload words).
func bitPair(lhs, rhs Value) bool {
	bits := func(v Value) bool { return v.IsInteger() || v.IsNumber() }
	return bits(lhs) && bits(rhs)
}

// BitwiseOr implements '|'. The payload word is operated on directly, so a
// number operand contributes its float bit pattern and the result keeps
// the left operand's kind.
func BitwiseOr(rt Runtime, lhs, rhs Value) Value {
	if err, ok := propagate(lhs, rhs); ok {
		return err
	}
	if bitPair(lhs, rhs) {
		return Value{kind: lhs.kind, data: lhs.data | rhs.data}
	}
	if lhs.IsNativeObject() {
		return dispatchBinary(rt, lhs.Native().vtable.BitwiseOr, lhs, rhs, "'|'")
	}
	return NewTypeError("cannot bitwise-or %s and %s", lhs.kind, rhs.kind)
}

// BitwiseXor implements '>|'.
func BitwiseXor(rt Runtime, lhs, rhs Value) Value {
	if err, ok := propagate(lhs, rhs); ok {
		return err
	}
	if bitPair(lhs, rhs) {
		return Value{kind: lhs.kind, data: lhs.data ^ rhs.data}
	}
	if lhs.IsNativeObject() {
		return dispatchBinary(rt, lhs.Native().vtable.BitwiseXor, lhs, rhs, "'>|'")
	}
	return NewTypeError("cannot bitwise-xor %s and %s", lhs.kind, rhs.kind)
}

// BitwiseAnd implements '&'.
func BitwiseAnd(rt Runtime, lhs, rhs Value) Value {
	if err, ok := propagate(lhs, rhs); ok {
		return err
	}
	if bitPair(lhs, rhs) {
		return Value{kind: lhs.kind, data: lhs.data & rhs.data}
	}
	if lhs.IsNativeObject() {
		return dispatchBinary(rt, lhs.Native().vtable.BitwiseAnd, lhs, rhs, "'&'")
	}
	return NewTypeError("cannot bitwise-and %s and %s", lhs.kind, rhs.kind)
}

// BitwiseNot implements '~'.
func BitwiseNot(rt Runtime, lhs Value) Value {
	if lhs.kind == KindError {
		return lhs
	}
	if lhs.IsInteger() || lhs.IsNumber() {
		return Value{kind: lhs.kind, data: ^lhs.data}
	}
	if lhs.IsNativeObject() {
		return dispatchUnary(rt, lhs.Native().vtable.BitwiseNot, lhs, "'~'")
	}
	return NewTypeError("cannot bitwise-not %s", lhs.kind)
}

// shiftCount validates a shift amount.
func shiftCount(rhs Value) (uint64, bool) {
	s := rhs.Integer()
	if s < 0 || s > 63 {
		return 0, false
	}
	return uint64(s), true
}

// ShiftLeft implements '<<'.
func ShiftLeft(rt Runtime, lhs, rhs Value) Value {
	if err, ok := propagate(lhs, rhs); ok {
		return err
	}
	if rhs.IsInteger() && (lhs.IsInteger() || lhs.IsNumber()) {
		s, ok := shiftCount(rhs)
		if !ok {
			return NewBoundsError("shift count %d out of range", rhs.Integer())
		}
		return Value{kind: lhs.kind, data: lhs.data << s}
	}
	if lhs.IsNativeObject() {
		return dispatchBinary(rt, lhs.Native().vtable.ShiftLeft, lhs, rhs, "'<<'")
	}
	return NewTypeError("cannot shift %s by %s", lhs.kind, rhs.kind)
}

// ShiftRight implements '>>'.
func ShiftRight(rt Runtime, lhs, rhs Value) Value {
	if err, ok := propagate(lhs, rhs); ok {
		return err
	}
	if rhs.IsInteger() && (lhs.IsInteger() || lhs.IsNumber()) {
		s, ok := shiftCount(rhs)
		if !ok {
			return NewBoundsError("shift count %d out of range", rhs.Integer())
		}
		return Value{kind: lhs.kind, data: lhs.data >> s}
	}
	if lhs.IsNativeObject() {
		return dispatchBinary(rt, lhs.Native().vtable.ShiftRight, lhs, rhs, "'>>'")
	}
	return NewTypeError("cannot shift %s by %s", lhs.kind, rhs.kind)
}
