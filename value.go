// Igor, a little Lisp-like interpreter in Go

// Package igor implements the Igor value model, environment, reader,
// evaluator and builtin functions.
package igor

import (
	"fmt"
	"strconv"
	"strings"
)

// Type discriminates the variants of Value.
type Type int

// Value types
const (
	TypeError Type = iota
	TypeNumber
	TypeSymbol
	TypeFunction
	TypeSExpr
	TypeQExpr
)

var typeNames = [...]string{
	"Error", "Number", "Symbol", "Function", "S-Expression", "Q-Expression",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Unknown"
	}
	return typeNames[t]
}

// Value is any runtime entity of Igor.
// It is one of Number, *Error, Symbol, *Function, *SExpr and *QExpr.
type Value interface {
	Type() Type
	String() string
}

//----------------------------------------------------------------------

// Number represents a 64-bit signed integer.
type Number int64

func (Number) Type() Type { return TypeNumber }

func (n Number) String() string {
	return strconv.FormatInt(int64(n), 10)
}

// Error represents an error value. It poisons any S-expression that holds it.
type Error struct {
	Msg string
}

// Errorf returns an error value with a formatted message.
func Errorf(format string, args ...interface{}) *Error {
	return &Error{fmt.Sprintf(format, args...)}
}

func (*Error) Type() Type { return TypeError }

func (e *Error) String() string {
	return "Error: " + e.Msg
}

// Error makes *Error usable as a Go error.
func (e *Error) Error() string {
	return e.Msg
}

// Symbol represents a name to be resolved in an environment.
type Symbol string

func (Symbol) Type() Type { return TypeSymbol }

func (s Symbol) String() string {
	return string(s)
}

// Builtin is the Go implementation of a function.
// It takes ownership of args.
type Builtin func(env *Environment, args []Value) Value

// Function represents a builtin function bound to a name.
type Function struct {
	Name string
	Fn   Builtin
}

func (*Function) Type() Type { return TypeFunction }

func (f *Function) String() string {
	return "<function>"
}

// Call applies the function to args.
func (f *Function) Call(env *Environment, args []Value) Value {
	return f.Fn(env, args)
}

// SExpr represents an evaluable list.
type SExpr struct {
	Cells []Value
}

func (*SExpr) Type() Type { return TypeSExpr }

func (x *SExpr) String() string {
	return stringifyCells("(", x.Cells, ")")
}

// QExpr represents a quoted list, which is never evaluated implicitly.
type QExpr struct {
	Cells []Value
}

func (*QExpr) Type() Type { return TypeQExpr }

func (x *QExpr) String() string {
	return stringifyCells("{", x.Cells, "}")
}

func stringifyCells(open string, cells []Value, close string) string {
	ss := make([]string, len(cells))
	for i, c := range cells {
		ss[i] = c.String()
	}
	return open + strings.Join(ss, " ") + close
}

//----------------------------------------------------------------------

// Copy returns a deep copy of v. Lists never share cells with v.
func Copy(v Value) Value {
	switch x := v.(type) {
	case *Error:
		return &Error{x.Msg}
	case *Function:
		return &Function{x.Name, x.Fn}
	case *SExpr:
		return &SExpr{copyCells(x.Cells)}
	case *QExpr:
		return &QExpr{copyCells(x.Cells)}
	}
	return v // Number and Symbol are immutable.
}

func copyCells(cells []Value) []Value {
	if cells == nil {
		return nil
	}
	result := make([]Value, len(cells))
	for i, c := range cells {
		result[i] = Copy(c)
	}
	return result
}

// Check returns v as a Go error if v is an error value, or nil otherwise.
func Check(v Value) error {
	if e, ok := v.(*Error); ok {
		return e
	}
	return nil
}
