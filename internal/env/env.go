/*
File   : golox/internal/env/env.go

Package env implements spec.md §3/§4.3's lexical scope chain: a named
mapping from identifier to value.Value, with a parent pointer forming a
chain up to the global frame. Frames are shared-ownership and
interior-mutable — multiple *Environment handles may reference the same
frame, which is exactly what makes closures observe post-definition
mutation (spec.md invariant 5). See DESIGN.md for the one deliberate
deviation from the reference scope design this is grounded on (no Copy()).
*/
package env

import "golox/internal/value"

// Environment is one scope frame. A nil Parent marks the global frame.
type Environment struct {
	values map[string]value.Value
	Parent *Environment
}

// NewGlobal creates an empty global frame.
func NewGlobal() *Environment {
	return &Environment{values: make(map[string]value.Value)}
}

// NewChild creates a fresh frame chained to parent. The chain is a linked
// structure, not copied — defining a name in the child never touches the
// parent's bindings, but reads and assignments fall through to it.
func NewChild(parent *Environment) *Environment {
	return &Environment{values: make(map[string]value.Value), Parent: parent}
}

// Define inserts or overwrites name in this frame only. A var declaration
// always lands in the innermost frame, even when an enclosing frame
// already defines the same name (shadowing) — this is also how
// global-scope and inner-scope redeclaration become idempotent overwrites.
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get walks the chain from innermost to global looking for name.
func (e *Environment) Get(name string) (value.Value, bool) {
	for frame := e; frame != nil; frame = frame.Parent {
		if v, ok := frame.values[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign walks the chain from innermost to global and overwrites the
// first frame that defines name. It reports false (without defining
// anything) if no frame in the chain defines name — assignment never
// implicitly declares a new global.
func (e *Environment) Assign(name string, v value.Value) bool {
	for frame := e; frame != nil; frame = frame.Parent {
		if _, ok := frame.values[name]; ok {
			frame.values[name] = v
			return true
		}
	}
	return false
}
