// Copyright © 2026 The golox authors

package lox

import (
	"fmt"

	"github.com/loxlang/golox/parser/ast"
)

// Resolver is the pre-execution static pass that determines, for each
// variable reference and assignment, whether it binds to a local slot or must
// fall back to dynamic global lookup.  It mirrors the interpreter's traversal
// exactly — every scope the interpreter pushes at runtime, the resolver
// pushes on a template environment here — so the slot indices it records
// match runtime binding positions.
//
// The per-function template binds the function's own name ahead of its
// parameters, matching the activation layout built by the interpreter on
// every call.  The value of that self slot is injected per call; the
// *captured* environment of a closure never contains its own name.
type Resolver struct {
	binds     *Bindings
	templates []*Env
}

// NewResolver returns a resolver recording slots into binds.  The same
// Bindings must be shared with the interpreter that will execute the resolved
// statements.
func NewResolver(binds *Bindings) *Resolver {
	return &Resolver{binds: binds}
}

// Resolve statically resolves stmts, stamping slot indices into the shared
// side table.  The first error encountered aborts resolution.
func (r *Resolver) Resolve(stmts []ast.Stmt) error {
	return r.resolveStmts(stmts)
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := r.resolveStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		return r.resolveExpr(s.Expr)
	case *ast.Print:
		for _, expr := range s.Exprs {
			if err := r.resolveExpr(expr); err != nil {
				return err
			}
		}
		return nil
	case *ast.If:
		if err := r.resolveExpr(s.Condition); err != nil {
			return err
		}
		if err := r.resolveStmt(s.Then); err != nil {
			return err
		}
		if s.Else != nil {
			return r.resolveStmt(s.Else)
		}
		return nil
	case *ast.Block:
		return r.resolveBlock(s)
	case *ast.Var:
		// The initializer resolves before the name is defined: a declaration
		// cannot reference itself, it sees any outer binding instead.
		if err := r.resolveExpr(s.Init); err != nil {
			return err
		}
		if top := r.top(); top != nil {
			top.Define(s.Name, Nil())
		}
		return nil
	case *ast.While:
		if err := r.resolveExpr(s.Condition); err != nil {
			return err
		}
		return r.resolveStmt(s.Body)
	case *ast.Function:
		return r.resolveFunction(s)
	case *ast.Return:
		return r.resolveExpr(s.Expr)
	}
	return fmt.Errorf("Cannot resolve statement %T", stmt)
}

// resolveBlock mirrors the interpreter: a block at the top level starts a
// fresh local template, a nested block pushes a scope on the active one.
func (r *Resolver) resolveBlock(block *ast.Block) error {
	top := r.top()
	if top == nil {
		r.templates = append(r.templates, NewEnv())
		err := r.resolveStmts(block.Stmts)
		r.templates = r.templates[:len(r.templates)-1]
		return err
	}
	top.PushScope()
	err := r.resolveStmts(block.Stmts)
	top.PopScope()
	return err
}

func (r *Resolver) resolveFunction(fn *ast.Function) error {
	top := r.top()
	var body *Env
	if top != nil {
		// Snapshot the capture template before the name is defined in the
		// enclosing scope; the interpreter captures in the same order, which
		// keeps the closure's own name out of its captured environment.
		body = NewCaptureEnv(top)
		top.Define(fn.Name, Nil())
	} else {
		body = NewEnv()
	}

	// Activation layout: self-name first, then parameters.
	body.Define(fn.Name, Nil())
	for _, param := range fn.Params {
		body.Define(param, Nil())
	}

	r.templates = append(r.templates, body)
	err := r.resolveStmts(fn.Body)
	r.templates = r.templates[:len(r.templates)-1]
	return err
}

func (r *Resolver) resolveExpr(expr ast.Expr) error {
	switch e := expr.(type) {
	case *ast.LiteralBool, *ast.LiteralNumber, *ast.LiteralString, *ast.LiteralNil:
		return nil
	case *ast.Binary:
		if err := r.resolveExpr(e.Left); err != nil {
			return err
		}
		return r.resolveExpr(e.Right)
	case *ast.Grouping:
		return r.resolveExpr(e.Inner)
	case *ast.LogicalNot:
		return r.resolveExpr(e.Inner)
	case *ast.UnaryNegate:
		return r.resolveExpr(e.Inner)
	case *ast.Variable:
		if top := r.top(); top != nil {
			if idx, ok := top.GetIndex(e.Name); ok {
				r.binds.bind(e, idx)
			}
		}
		return nil
	case *ast.Assignment:
		if err := r.resolveExpr(e.Value); err != nil {
			return err
		}
		if top := r.top(); top != nil {
			if idx, ok := top.GetIndex(e.Target); ok {
				r.binds.bind(e, idx)
			}
		}
		return nil
	case *ast.Call:
		if err := r.resolveExpr(e.Callee); err != nil {
			return err
		}
		for _, arg := range e.Args {
			if err := r.resolveExpr(arg); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("Cannot resolve expression %T", expr)
}

func (r *Resolver) top() *Env {
	if len(r.templates) == 0 {
		return nil
	}
	return r.templates[len(r.templates)-1]
}
