// Copyright © 2026 The golox authors

package lox

import (
	"fmt"

	"github.com/loxlang/golox/parser/ast"
	"github.com/loxlang/golox/parser/token"
)

// Interp executes resolved statements.  Statement execution follows an
// explicit early-return protocol: a non-nil *Value result means a return
// statement was hit, and every compound statement propagates it upward
// immediately without executing subsequent siblings.  That is how return
// unwinds through nested control flow without panic/recover.
type Interp struct {
	rt      *Runtime
	binds   *Bindings
	globals *Env
}

// New initializes an interpreter reading slot annotations from binds.  The
// Bindings must be the same table populated by the Resolver for every
// statement list passed to Execute.
func New(binds *Bindings, config ...Config) *Interp {
	rt := StandardRuntime()
	for _, fn := range config {
		fn(rt)
	}
	return &Interp{
		rt:      rt,
		binds:   binds,
		globals: NewEnv(),
	}
}

// Runtime returns the interpreter's runtime.
func (i *Interp) Runtime() *Runtime {
	return i.rt
}

// Globals returns the global environment.
func (i *Interp) Globals() *Env {
	return i.globals
}

// Execute runs stmts against the global environment.  It returns the value
// of the last expression statement executed at the top level, which the REPL
// reports back to the user.
func (i *Interp) Execute(stmts []ast.Stmt) (Value, error) {
	last := Nil()
	for _, stmt := range stmts {
		if es, ok := stmt.(*ast.ExprStmt); ok {
			v, err := i.eval(es.Expr, nil)
			if err != nil {
				return Nil(), err
			}
			last = v
			continue
		}
		ret, err := i.exec(stmt, nil)
		if err != nil {
			return Nil(), err
		}
		if ret != nil {
			return *ret, nil
		}
	}
	return last, nil
}

// exec executes a single statement.  locals is the innermost activation
// environment, or nil at the top level where bindings are global.
func (i *Interp) exec(stmt ast.Stmt, locals *Env) (*Value, error) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		_, err := i.eval(s.Expr, locals)
		return nil, err
	case *ast.Print:
		return nil, i.execPrint(s, locals)
	case *ast.If:
		cond, err := i.eval(s.Condition, locals)
		if err != nil {
			return nil, err
		}
		if cond.Truthy() {
			return i.exec(s.Then, locals)
		}
		if s.Else != nil {
			return i.exec(s.Else, locals)
		}
		return nil, nil
	case *ast.Block:
		return i.execBlock(s, locals)
	case *ast.Var:
		v, err := i.eval(s.Init, locals)
		if err != nil {
			return nil, err
		}
		if locals != nil {
			locals.Define(s.Name, v)
		} else {
			i.globals.Define(s.Name, v)
		}
		return nil, nil
	case *ast.While:
		for {
			cond, err := i.eval(s.Condition, locals)
			if err != nil {
				return nil, err
			}
			if !cond.Truthy() {
				return nil, nil
			}
			ret, err := i.exec(s.Body, locals)
			if err != nil || ret != nil {
				return ret, err
			}
		}
	case *ast.Function:
		// Capture before defining the name so the closure's captured
		// environment never holds a cell for the closure itself.
		var captured *Env
		if locals != nil {
			captured = NewCaptureEnv(locals)
		}
		v := Fun(&Closure{Decl: s, Captured: captured})
		if locals != nil {
			locals.Define(s.Name, v)
		} else {
			i.globals.Define(s.Name, v)
		}
		return nil, nil
	case *ast.Return:
		v, err := i.eval(s.Expr, locals)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
	return nil, fmt.Errorf("Cannot execute statement %T", stmt)
}

func (i *Interp) execPrint(s *ast.Print, locals *Env) error {
	for _, expr := range s.Exprs {
		v, err := i.eval(expr, locals)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(i.rt.Stdout, "%s ", v); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(i.rt.Stdout)
	return err
}

func (i *Interp) execBlock(block *ast.Block, locals *Env) (*Value, error) {
	if locals == nil {
		// A top-level block starts a fresh local environment, discarded
		// wholesale when the block exits.
		inner := NewEnv()
		for _, stmt := range block.Stmts {
			ret, err := i.exec(stmt, inner)
			if err != nil || ret != nil {
				return ret, err
			}
		}
		return nil, nil
	}
	locals.PushScope()
	for _, stmt := range block.Stmts {
		ret, err := i.exec(stmt, locals)
		if err != nil || ret != nil {
			locals.PopScope()
			return ret, err
		}
	}
	locals.PopScope()
	return nil, nil
}

func (i *Interp) eval(expr ast.Expr, locals *Env) (Value, error) {
	switch e := expr.(type) {
	case *ast.LiteralBool:
		return Bool(e.Value), nil
	case *ast.LiteralNumber:
		return Number(e.Value), nil
	case *ast.LiteralString:
		return String(e.Value), nil
	case *ast.LiteralNil:
		return Nil(), nil
	case *ast.Grouping:
		return i.eval(e.Inner, locals)
	case *ast.LogicalNot:
		v, err := i.eval(e.Inner, locals)
		if err != nil {
			return Nil(), err
		}
		return Bool(!v.Truthy()), nil
	case *ast.UnaryNegate:
		v, err := i.eval(e.Inner, locals)
		if err != nil {
			return Nil(), err
		}
		if v.Type != LNumber {
			return Nil(), fmt.Errorf("Unary negate expected number")
		}
		return Number(-v.Num), nil
	case *ast.Binary:
		return i.evalBinary(e, locals)
	case *ast.Variable:
		if slot, ok := i.binds.Slot(e); ok && locals != nil {
			return locals.GetSlot(slot), nil
		}
		if v, ok := i.globals.Get(e.Name); ok {
			return v, nil
		}
		return Nil(), fmt.Errorf("Undefined variable %s at line %d", e.Name, e.Line)
	case *ast.Assignment:
		v, err := i.eval(e.Value, locals)
		if err != nil {
			return Nil(), err
		}
		if slot, ok := i.binds.Slot(e); ok && locals != nil {
			locals.SetSlot(slot, v)
			return v, nil
		}
		if i.globals.Set(e.Target, v) {
			return v, nil
		}
		return Nil(), fmt.Errorf("Undefined variable %s at line %d", e.Target, e.Line)
	case *ast.Call:
		return i.evalCall(e, locals)
	}
	return Nil(), fmt.Errorf("Cannot evaluate expression %T", expr)
}

func (i *Interp) evalBinary(e *ast.Binary, locals *Env) (Value, error) {
	// and/or short-circuit: the right operand is only evaluated when the
	// left does not decide the result, and the raw operand value is
	// returned, not a coerced boolean.
	switch e.Operator.Type {
	case token.AND:
		left, err := i.eval(e.Left, locals)
		if err != nil || !left.Truthy() {
			return left, err
		}
		return i.eval(e.Right, locals)
	case token.OR:
		left, err := i.eval(e.Left, locals)
		if err != nil || left.Truthy() {
			return left, err
		}
		return i.eval(e.Right, locals)
	}

	left, err := i.eval(e.Left, locals)
	if err != nil {
		return Nil(), err
	}
	right, err := i.eval(e.Right, locals)
	if err != nil {
		return Nil(), err
	}

	numbers := func() (float64, float64, error) {
		if left.Type != LNumber || right.Type != LNumber {
			return 0, 0, fmt.Errorf("Must be numbers")
		}
		return left.Num, right.Num, nil
	}

	switch e.Operator.Type {
	case token.LESS:
		l, r, err := numbers()
		if err != nil {
			return Nil(), err
		}
		return Bool(l < r), nil
	case token.LESS_EQUAL:
		l, r, err := numbers()
		if err != nil {
			return Nil(), err
		}
		return Bool(l <= r), nil
	case token.GREATER:
		l, r, err := numbers()
		if err != nil {
			return Nil(), err
		}
		return Bool(l > r), nil
	case token.GREATER_EQUAL:
		l, r, err := numbers()
		if err != nil {
			return Nil(), err
		}
		return Bool(l >= r), nil
	case token.EQUAL_EQUAL:
		l, r, err := numbers()
		if err != nil {
			return Nil(), err
		}
		return Bool(l == r), nil
	case token.BANG_EQUAL:
		l, r, err := numbers()
		if err != nil {
			return Nil(), err
		}
		return Bool(l != r), nil
	case token.MINUS:
		l, r, err := numbers()
		if err != nil {
			return Nil(), err
		}
		return Number(l - r), nil
	case token.SLASH:
		l, r, err := numbers()
		if err != nil {
			return Nil(), err
		}
		return Number(l / r), nil
	case token.STAR:
		l, r, err := numbers()
		if err != nil {
			return Nil(), err
		}
		return Number(l * r), nil
	case token.PLUS:
		switch {
		case left.Type == LNumber && right.Type == LNumber:
			return Number(left.Num + right.Num), nil
		case left.Type == LString && right.Type == LString:
			return String(left.Str + right.Str), nil
		default:
			return Nil(), fmt.Errorf("Must be numbers or string")
		}
	}
	return Nil(), fmt.Errorf("Unsupported binary operator '%s'", e.Operator.Text)
}

// evalCall builds a fresh activation environment from the closure's captured
// environment, binds the callee's own name first (direct and indirect
// recursion work without the closure ever storing itself), then binds
// parameters positionally and executes the body.
func (i *Interp) evalCall(call *ast.Call, locals *Env) (Value, error) {
	callee, err := i.eval(call.Callee, locals)
	if err != nil {
		return Nil(), err
	}
	if callee.Type != LFun {
		return Nil(), fmt.Errorf("Cannot call value of type %s at line %d", callee.Type, call.Line)
	}
	decl := callee.Fun.Decl
	if len(call.Args) != decl.Arity() {
		return Nil(), fmt.Errorf("Expected %d arguments but got %d at line %d",
			decl.Arity(), len(call.Args), call.Line)
	}

	args := make([]Value, len(call.Args))
	for n, arg := range call.Args {
		args[n], err = i.eval(arg, locals)
		if err != nil {
			return Nil(), err
		}
	}

	var activation *Env
	if callee.Fun.Captured != nil {
		activation = NewCaptureEnv(callee.Fun.Captured)
	} else {
		activation = NewEnv()
	}
	activation.Define(decl.Name, callee)
	for n, param := range decl.Params {
		activation.Define(param, args[n])
	}

	if p := i.rt.Profiler; p != nil && p.IsEnabled() {
		end := p.Start(callee.Fun)
		defer end()
	}

	for _, stmt := range decl.Body {
		ret, err := i.exec(stmt, activation)
		if err != nil {
			return Nil(), err
		}
		if ret != nil {
			return *ret, nil
		}
	}
	return Nil(), nil
}
