/*
File    : monkey/objects/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

The builtin table is fixed and small: len, first, last, rest, push,
puts. NewBuiltins binds puts to the given io.Writer so callers (the
REPL, file runner, or a test) can capture its output instead of it
always going to os.Stdout.
*/
package objects

import (
	"fmt"
	"io"
)

func createError(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}

// NewBuiltins returns the fixed builtin table with puts wired to write.
func NewBuiltins(write io.Writer) map[string]*Builtin {
	return map[string]*Builtin{
		"len":   {Fn: builtinLen},
		"first": {Fn: builtinFirst},
		"last":  {Fn: builtinLast},
		"rest":  {Fn: builtinRest},
		"push":  {Fn: builtinPush},
		"puts":  {Fn: builtinPuts(write)},
	}
}

func builtinLen(args ...Object) Object {
	if len(args) != 1 {
		return createError("Wrong number of arguments. Got=%d, want=1", len(args))
	}
	switch arg := args[0].(type) {
	case *String:
		return &Integer{Value: int64(len(arg.Value))}
	case *Array:
		return &Integer{Value: int64(len(arg.Elements))}
	default:
		return createError("Argument to 'len' not supported. Got %s", args[0].Type())
	}
}

func builtinFirst(args ...Object) Object {
	if len(args) != 1 {
		return createError("Wrong number of arguments. Got=%d, want=1", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return createError("Argument to 'first' must be Array. Got %s", args[0].Type())
	}
	if len(arr.Elements) > 0 {
		return arr.Elements[0]
	}
	return NULL
}

func builtinLast(args ...Object) Object {
	if len(args) != 1 {
		return createError("Wrong number of arguments. Got=%d, want=1", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return createError("Argument to 'last' must be Array. Got %s", args[0].Type())
	}
	length := len(arr.Elements)
	if length > 0 {
		return arr.Elements[length-1]
	}
	return NULL
}

func builtinRest(args ...Object) Object {
	if len(args) != 1 {
		return createError("Wrong number of arguments. Got=%d, want=1", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return createError("Argument to 'rest' must be Array. Got %s", args[0].Type())
	}
	length := len(arr.Elements)
	if length > 0 {
		newElements := make([]Object, length-1)
		copy(newElements, arr.Elements[1:length])
		return &Array{Elements: newElements}
	}
	return NULL
}

func builtinPush(args ...Object) Object {
	if len(args) != 2 {
		return createError("Wrong number of arguments. Got=%d, want=2", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return createError("Argument to 'push' must be Array. Got %s", args[0].Type())
	}
	length := len(arr.Elements)
	newElements := make([]Object, length+1)
	copy(newElements, arr.Elements)
	newElements[length] = args[1]
	return &Array{Elements: newElements}
}

func builtinPuts(write io.Writer) BuiltinFunction {
	return func(args ...Object) Object {
		for _, arg := range args {
			fmt.Fprintln(write, arg.Inspect())
		}
		return NULL
	}
}
