// Copyright © 2026 The golox authors

package lox

import "github.com/loxlang/golox/parser/ast"

// Bindings is the resolver's side table mapping variable-reference and
// assignment nodes to local slot indices.  Keys are node identities, so the
// AST itself stays immutable.  A node is bound at most once, by the resolver,
// before it is ever evaluated; nodes absent from the table fall back to
// dynamic global lookup.
type Bindings struct {
	slots map[ast.Node]int
}

// NewBindings returns an empty side table.
func NewBindings() *Bindings {
	return &Bindings{slots: make(map[ast.Node]int)}
}

// Slot returns the resolved slot index for node.
func (b *Bindings) Slot(node ast.Node) (int, bool) {
	slot, ok := b.slots[node]
	return slot, ok
}

// Len returns the number of resolved nodes.
func (b *Bindings) Len() int {
	return len(b.slots)
}

func (b *Bindings) bind(node ast.Node, slot int) {
	b.slots[node] = slot
}
