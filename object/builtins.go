/*
File    : monkey/object/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import (
	"fmt"
	"io"
)

// createError is a utility for building an *Error from a format string,
// mirroring the rest of the pipeline's "errors are values, not panics"
// rule.
func createError(format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// NewBuiltins returns the fixed name-to-builtin table, consulted by
// identifier lookup when the environment chain misses. out is where
// `puts` writes; the eval package builds its table with os.Stdout and
// eval.SetOutput rebuilds it with another writer (the REPL passes its own,
// tests pass a buffer to capture builtin output).
func NewBuiltins(out io.Writer) map[string]*Builtin {
	return map[string]*Builtin{
		"len":   {Fn: builtinLen},
		"puts":  {Fn: builtinPuts(out)},
		"first": {Fn: builtinFirst},
		"last":  {Fn: builtinLast},
		"rest":  {Fn: builtinRest},
		"push":  {Fn: builtinPush},
	}
}

func builtinLen(args ...Value) Value {
	if len(args) != 1 {
		return createError("wrong number of arguments. got=%d, want=1", len(args))
	}
	switch arg := args[0].(type) {
	case *String:
		return &Integer{Value: int64(len(arg.Value))}
	case *Array:
		return &Integer{Value: int64(len(arg.Elements))}
	default:
		return createError("argument to `len` not supported, got %s", args[0].Type())
	}
}

// builtinPuts returns a builtin bound to out: it writes Inspect(arg) for
// each argument, one per line, and returns Null.
func builtinPuts(out io.Writer) BuiltinFunction {
	return func(args ...Value) Value {
		for _, arg := range args {
			fmt.Fprintln(out, arg.Inspect())
		}
		return NULL
	}
}

func builtinFirst(args ...Value) Value {
	if len(args) != 1 {
		return createError("wrong number of arguments. got=%d, want=1", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return createError("argument to `first` must be ARRAY, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return NULL
	}
	return arr.Elements[0]
}

func builtinLast(args ...Value) Value {
	if len(args) != 1 {
		return createError("wrong number of arguments. got=%d, want=1", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return createError("argument to `last` must be ARRAY, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return NULL
	}
	return arr.Elements[len(arr.Elements)-1]
}

func builtinRest(args ...Value) Value {
	if len(args) != 1 {
		return createError("wrong number of arguments. got=%d, want=1", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return createError("argument to `rest` must be ARRAY, got %s", args[0].Type())
	}
	length := len(arr.Elements)
	if length == 0 {
		return NULL
	}
	newElements := make([]Value, length-1)
	copy(newElements, arr.Elements[1:length])
	return &Array{Elements: newElements}
}

func builtinPush(args ...Value) Value {
	if len(args) != 2 {
		return createError("wrong number of arguments. got=%d, want=2", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return createError("argument to `push` must be ARRAY, got %s", args[0].Type())
	}
	length := len(arr.Elements)
	newElements := make([]Value, length+1)
	copy(newElements, arr.Elements)
	newElements[length] = args[1]
	return &Array{Elements: newElements}
}
