// Package codegen implements the evaluator/code generator of spec §4.5: a
// family of per-construct emitters, each validating its node against a
// shared mutable Context and producing target-language text.
package codegen

import "github.com/poiboi-lang/poiboic/internal/funcs"

// Context carries the mutable state shared across one function's emitters:
// the function table for call resolution, the process-wide set of global
// names, the current function's local scope, and whether emission is
// currently inside a loop body (for BREAK validation).
type Context struct {
	Table   *funcs.Table
	Globals map[string]bool
	locals  map[string]bool
	inLoop  bool
}

// NewContext starts a fresh context for one function, sharing the
// process-wide globals set by reference.
func NewContext(table *funcs.Table, globals map[string]bool) *Context {
	return &Context{Table: table, Globals: globals, locals: make(map[string]bool)}
}

// Clone produces a context for a nested block that must not leak locals
// introduced inside it back out to the caller (the WHILE rule: "locals
// introduced inside the loop are not preserved after the loop"). Globals
// and the function table are shared by reference; locals are copied.
func (c *Context) Clone() *Context {
	locals := make(map[string]bool, len(c.locals))
	for k := range c.locals {
		locals[k] = true
	}
	return &Context{Table: c.Table, Globals: c.Globals, locals: locals, inLoop: c.inLoop}
}

// IsLocal reports whether name is in the current function-local scope.
func (c *Context) IsLocal(name string) bool { return c.locals[name] }

// IsGlobal reports whether name has been declared GLOBAL anywhere in the
// program seen so far.
func (c *Context) IsGlobal(name string) bool { return c.Globals[name] }

// DeclareLocal adds name to the current local scope.
func (c *Context) DeclareLocal(name string) { c.locals[name] = true }

// DeclareGlobal adds name to the process-wide globals set.
func (c *Context) DeclareGlobal(name string) { c.Globals[name] = true }

// EnterLoop returns a child context with is_in_loop set, per the WHILE
// emitter's "clone the context and set is_in_loop = true" rule.
func (c *Context) EnterLoop() *Context {
	child := c.Clone()
	child.inLoop = true
	return child
}

// InLoop reports whether BREAK is currently valid.
func (c *Context) InLoop() bool { return c.inLoop }
