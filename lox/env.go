// Copyright © 2026 The golox authors

package lox

// cell is a shared mutable value slot.  A cell can be held by the defining
// scope and by any closure that captured it; writes through one holder are
// visible to all of them.
type cell struct {
	v Value
}

type binding struct {
	name string
	cell *cell
}

// Env is the runtime variable-binding structure: an ordered sequence of
// bindings plus a stack of scope-boundary offsets.  Lookup resolves to the
// most recently defined matching name, which gives innermost-first shadowing.
// Structural changes (Define, PushScope, PopScope) are exclusive to the
// owning environment; closures only ever mutate through shared cells.
type Env struct {
	vals   []binding
	scopes []int
}

// NewEnv initializes and returns an empty environment.
func NewEnv() *Env {
	return &Env{}
}

// NewCaptureEnv returns a new environment seeded with the enclosing
// environment's current bindings.  Cells are shared, not copied, so later
// mutation of a captured variable is visible through both environments.  A
// single scope boundary is placed at the end of the snapshot: declarations in
// the new environment never leak back into the enclosing one.
func NewCaptureEnv(enclosing *Env) *Env {
	vals := make([]binding, len(enclosing.vals))
	copy(vals, enclosing.vals)
	return &Env{
		vals:   vals,
		scopes: []int{len(vals)},
	}
}

// Define binds name to v in the active scope.  Redeclaring a name already
// bound in the active scope replaces its binding with a fresh cell; closures
// that captured the old cell keep observing the old value.
func (env *Env) Define(name string, v Value) {
	bottom := env.scopeBottom()
	for i := len(env.vals) - 1; i >= bottom; i-- {
		if env.vals[i].name == name {
			env.vals[i].cell = &cell{v: v}
			return
		}
	}
	env.vals = append(env.vals, binding{name: name, cell: &cell{v: v}})
}

// Get returns the value bound to name, searching from the innermost scope
// outward across all scope boundaries.
func (env *Env) Get(name string) (Value, bool) {
	for i := len(env.vals) - 1; i >= 0; i-- {
		if env.vals[i].name == name {
			return env.vals[i].cell.v, true
		}
	}
	return Nil(), false
}

// Set mutates the innermost existing binding for name in place, making the
// write visible to every holder of the cell.  Set reports whether a binding
// was found; it never creates one.
func (env *Env) Set(name string, v Value) bool {
	for i := len(env.vals) - 1; i >= 0; i-- {
		if env.vals[i].name == name {
			env.vals[i].cell.v = v
			return true
		}
	}
	return false
}

// GetIndex returns the slot index of the innermost binding for name.
func (env *Env) GetIndex(name string) (int, bool) {
	for i := len(env.vals) - 1; i >= 0; i-- {
		if env.vals[i].name == name {
			return i, true
		}
	}
	return 0, false
}

// GetSlot reads the binding at a resolver-assigned slot index.
func (env *Env) GetSlot(i int) Value {
	return env.vals[i].cell.v
}

// SetSlot writes through the cell at a resolver-assigned slot index.
func (env *Env) SetSlot(i int, v Value) {
	env.vals[i].cell.v = v
}

// PushScope records the current binding-sequence length as a new scope
// boundary.
func (env *Env) PushScope() {
	env.scopes = append(env.scopes, len(env.vals))
}

// PopScope discards every binding introduced since the matching PushScope.
func (env *Env) PopScope() {
	if len(env.scopes) == 0 {
		env.vals = env.vals[:0]
		return
	}
	top := env.scopes[len(env.scopes)-1]
	env.vals = env.vals[:top]
	env.scopes = env.scopes[:len(env.scopes)-1]
}

// Len returns the current number of bindings.
func (env *Env) Len() int {
	return len(env.vals)
}

// Names returns the bound names from outermost to innermost, including
// shadowed ones.  It is used by the REPL completer.
func (env *Env) Names() []string {
	names := make([]string, len(env.vals))
	for i := range env.vals {
		names[i] = env.vals[i].name
	}
	return names
}

func (env *Env) scopeBottom() int {
	if len(env.scopes) == 0 {
		return 0
	}
	return env.scopes[len(env.scopes)-1]
}
