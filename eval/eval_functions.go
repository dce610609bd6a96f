/*
File    : monkey/eval/eval_functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"io"
	"os"

	"github.com/akashmaji946/go-mix/object"
	"github.com/akashmaji946/go-mix/parser"
)

// builtins is the name-to-builtin table consulted by evalIdentifier once
// the environment chain misses. It defaults to writing `puts` output to
// stdout; SetOutput rebinds it, which the REPL and tests use to capture
// or redirect that output.
var builtins = object.NewBuiltins(os.Stdout)

// SetOutput rebuilds the builtin table so that `puts` writes to w. Call
// it before evaluating if output needs to be captured, e.g. in tests or
// when the REPL wants to route through its own writer.
func SetOutput(w io.Writer) {
	builtins = object.NewBuiltins(w)
}

func evalCallExpression(node *parser.CallExpression, env *object.Environment) object.Value {
	function := Eval(node.Function, env)
	if isError(function) {
		return function
	}

	args := evalExpressions(node.Arguments, env)
	if len(args) == 1 && isError(args[0]) {
		return args[0]
	}

	return applyFunction(function, args)
}

// applyFunction accepts either a *object.Function (user-defined) or a
// *object.Builtin. Calling a user function with fewer arguments than
// parameters pads the missing ones with Null rather than raising an
// arity error; calling with more arguments silently ignores the extras.
func applyFunction(fn object.Value, args []object.Value) object.Value {
	switch fn := fn.(type) {
	case *object.Function:
		extendedEnv := extendFunctionEnv(fn, args)
		evaluated := Eval(fn.Body, extendedEnv)
		return unwrapReturnValue(evaluated)
	case *object.Builtin:
		return fn.Fn(args...)
	default:
		return newError("not a function: %s", fn.Type())
	}
}

func extendFunctionEnv(fn *object.Function, args []object.Value) *object.Environment {
	env := object.NewEnclosedEnvironment(fn.Env)

	for i, param := range fn.Parameters {
		if i < len(args) {
			env.Set(param.Value, args[i])
		} else {
			env.Set(param.Value, object.NULL)
		}
	}
	return env
}

// unwrapReturnValue strips the ReturnValue wrapper at the function-call
// boundary — the one place a `return` stops propagating further.
func unwrapReturnValue(val object.Value) object.Value {
	if returnValue, ok := val.(*object.ReturnValue); ok {
		return returnValue.Value
	}
	return val
}
