/*
File    : rebar-go/objects/errors.go
*/
package objects

import "fmt"

// ErrorClass categorizes a runtime error value.
type ErrorClass string

const (
	// ErrorLex marks a lexical failure surfaced at runtime.
	ErrorLex ErrorClass = "lex"
	// ErrorParse marks a syntactic failure surfaced at runtime.
	ErrorParse ErrorClass = "parse"
	// ErrorType marks an operator applied to an incompatible variant pair
	// or an unassignable left-hand side.
	ErrorType ErrorClass = "type"
	// ErrorLookup marks an absent key on a map that promises existence.
	ErrorLookup ErrorClass = "lookup"
	// ErrorBounds marks an out-of-range subscript.
	ErrorBounds ErrorClass = "bounds"
)

// Error is the payload of an error value. Failed operations produce error
// values rather than null, so failures stay distinguishable from legitimate
// null results.
type Error struct {
	Class   ErrorClass
	Message string
}

// String formats the error for display.
func (e *Error) String() string {
	return fmt.Sprintf("%s error: %s", e.Class, e.Message)
}

// NewError creates an error value of the given class.
func NewError(class ErrorClass, format string, args ...any) Value {
	return Value{kind: KindError, ref: &Error{Class: class, Message: fmt.Sprintf(format, args...)}}
}

// NewTypeError creates a type-class error value.
func NewTypeError(format string, args ...any) Value {
	return NewError(ErrorType, format, args...)
}

// NewLookupError creates a lookup-class error value.
func NewLookupError(format string, args ...any) Value {
	return NewError(ErrorLookup, format, args...)
}

// NewBoundsError creates a bounds-class error value.
func NewBoundsError(format string, args ...any) Value {
	return NewError(ErrorBounds, format, args...)
}
