/*
File    : monkey/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package environment implements the name-to-value store the evaluator
consults for every identifier lookup and `let` binding. Scopes nest via
a parent pointer; functions capture their defining Environment by
reference so closures observe later outer bindings, not a snapshot.
*/
package environment

import "github.com/akashmaji946/monkey/objects"

// Environment is a lexical scope: its own bindings plus a link to the
// enclosing scope.
type Environment struct {
	store map[string]objects.Object
	outer *Environment
}

// NewEnvironment creates a root environment with no parent.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]objects.Object)}
}

// NewEnclosedEnvironment creates a child environment nested inside
// outer, used once per function call. Blocks do not get their own
// environment.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Get looks up name in this environment, then walks outward through
// enclosing environments until found or the chain is exhausted.
func (e *Environment) Get(name string) (objects.Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		obj, ok = e.outer.Get(name)
	}
	return obj, ok
}

// Set binds name to val in THIS environment only; it never walks
// outward, so a `let` of a name bound in an enclosing environment
// shadows that binding rather than mutating it.
func (e *Environment) Set(name string, val objects.Object) objects.Object {
	e.store[name] = val
	return val
}
