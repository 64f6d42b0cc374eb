// Copyright © 2026 The golox authors

// Package lox implements the Lox runtime: values, environments, the static
// scope resolver, and the tree-walking evaluator.
package lox

import (
	"fmt"
	"strconv"

	"github.com/loxlang/golox/parser/ast"
)

// Type is the runtime type tag of a Value.
type Type uint

const (
	LNil Type = iota
	LNumber
	LString
	LBool
	LFun

	numValueTypes
)

func (typ Type) String() string {
	typeStrings := [numValueTypes]string{
		LNil:    "nil",
		LNumber: "number",
		LString: "string",
		LBool:   "bool",
		LFun:    "function",
	}
	if typ >= numValueTypes {
		return "invalid"
	}
	return typeStrings[typ]
}

// Value is a Lox runtime value.  Values are cheaply copyable; strings share
// Go's string storage and functions are held by pointer.
type Value struct {
	Type Type
	Num  float64
	Str  string
	Bool bool
	Fun  *Closure
}

// Nil returns the nil value.
func Nil() Value {
	return Value{Type: LNil}
}

// Number returns a numeric value.
func Number(n float64) Value {
	return Value{Type: LNumber, Num: n}
}

// String returns a string value.
func String(s string) Value {
	return Value{Type: LString, Str: s}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{Type: LBool, Bool: b}
}

// Fun returns a function value wrapping cl.
func Fun(cl *Closure) Value {
	return Value{Type: LFun, Fun: cl}
}

// IsNil returns true for the nil value.
func (v Value) IsNil() bool {
	return v.Type == LNil
}

// Truthy maps v to a boolean for conditionals and the logical operators.
// Zero and the empty string are falsey; functions are always truthy.
func (v Value) Truthy() bool {
	switch v.Type {
	case LNumber:
		return v.Num != 0
	case LString:
		return v.Str != ""
	case LBool:
		return v.Bool
	case LFun:
		return true
	default:
		return false
	}
}

func (v Value) String() string {
	switch v.Type {
	case LNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case LString:
		return v.Str
	case LBool:
		return strconv.FormatBool(v.Bool)
	case LFun:
		return fmt.Sprintf("<fun %s>", v.Fun.Decl.Name)
	default:
		return "nil"
	}
}

// Closure is a callable value: a shared function declaration paired with a
// snapshot of the environment it was declared in.  The captured environment
// never contains a binding for the closure's own name; recursion works by
// injecting the callee's value into each call's activation environment, so a
// closure never holds a reference to itself.
type Closure struct {
	Decl     *ast.Function
	Captured *Env // nil for functions declared at the top level
}
