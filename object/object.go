/*
File    : monkey/object/object.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package object defines the runtime value representation for the Monkey
// language: a tagged union of Integer, Boolean, String, Null, ReturnValue,
// Error, Function, Builtin, Array, and Hash, plus the Environment binding
// model those values are evaluated against.
package object

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/akashmaji946/go-mix/parser"
)

// Type identifies the kind of a Value, used both for dispatch and for the
// `<KIND>` fragment of runtime error messages.
type Type string

const (
	INTEGER_OBJ      Type = "INTEGER"
	BOOLEAN_OBJ      Type = "BOOLEAN"
	STRING_OBJ       Type = "STRING"
	NULL_OBJ         Type = "NULL"
	RETURN_VALUE_OBJ Type = "RETURN_VALUE"
	ERROR_OBJ        Type = "ERROR"
	FUNCTION_OBJ     Type = "FUNCTION"
	BUILTIN_OBJ      Type = "FUNCTION"
	ARRAY_OBJ        Type = "ARRAY"
	HASH_OBJ         Type = "HASH"
)

// Value is the interface every runtime value satisfies: a type tag for
// dispatch and error messages, and a display form for the REPL/builtins.
type Value interface {
	Type() Type
	Inspect() string
}

// Integer is a signed 64-bit integer value.
type Integer struct {
	Value int64
}

func (i *Integer) Type() Type      { return INTEGER_OBJ }
func (i *Integer) Inspect() string { return fmt.Sprintf("%d", i.Value) }

// Boolean is a true/false value. The evaluator hands out exactly two
// instances (object.TRUE, object.FALSE) so boolean identity comparisons
// are cheap and deterministic.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() Type { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string {
	if b.Value {
		return "True"
	}
	return "False"
}

// String is a text value. No escape processing happens anywhere in the
// pipeline, so Value is exactly the bytes between the source quotes.
type String struct {
	Value string
}

func (s *String) Type() Type      { return STRING_OBJ }
func (s *String) Inspect() string { return s.Value }

// Null is the language's sole absent-value singleton.
type Null struct{}

func (n *Null) Type() Type      { return NULL_OBJ }
func (n *Null) Inspect() string { return "null" }

// ReturnValue wraps the operand of a `return` statement so that block
// evaluation can propagate it upward, unopened, until a function call
// boundary unwraps it.
type ReturnValue struct {
	Value Value
}

func (rv *ReturnValue) Type() Type      { return RETURN_VALUE_OBJ }
func (rv *ReturnValue) Inspect() string { return rv.Value.Inspect() }

// Error is a first-class runtime error value. It flows through evaluation
// exactly like any other Value; every sub-evaluator tests for it and
// short-circuits rather than treating it as an exception.
type Error struct {
	Message string
}

func (e *Error) Type() Type      { return ERROR_OBJ }
func (e *Error) Inspect() string { return "ERROR: " + e.Message }

// Function is a user-defined function value: its parameters, its body,
// and the environment captured at the point of definition. That captured
// environment is what makes closures work — and what lets a recursive
// function's environment end up referencing the function itself, a
// tolerated reference cycle (see Environment in environment.go).
type Function struct {
	Parameters []*parser.Identifier
	Body       *parser.BlockStatement
	Env        *Environment
}

func (f *Function) Type() Type { return FUNCTION_OBJ }
func (f *Function) Inspect() string {
	var out bytes.Buffer
	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		params = append(params, p.String())
	}
	out.WriteString("fn(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") {\n")
	out.WriteString(f.Body.String())
	out.WriteString("\n}")
	return out.String()
}

// BuiltinFunction is the Go-side implementation signature for a built-in.
type BuiltinFunction func(args ...Value) Value

// Builtin wraps a native Go function so it can be called like any other
// function value.
type Builtin struct {
	Fn BuiltinFunction
}

func (b *Builtin) Type() Type      { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string { return "builtin function" }

// Array is an ordered, heterogeneous sequence of values.
type Array struct {
	Elements []Value
}

func (a *Array) Type() Type { return ARRAY_OBJ }
func (a *Array) Inspect() string {
	var out bytes.Buffer
	elems := make([]string, 0, len(a.Elements))
	for _, e := range a.Elements {
		elems = append(elems, e.Inspect())
	}
	out.WriteString("[")
	out.WriteString(strings.Join(elems, ", "))
	out.WriteString("]")
	return out.String()
}

// HashKey is the (type, hash) pair used to index a Hash's pairs. Only
// Integer, Boolean, and String implement Hashable.
type HashKey struct {
	Type  Type
	Value uint64
}

// Hashable is implemented by every Value variant usable as a Hash key.
type Hashable interface {
	HashKey() HashKey
}

func (i *Integer) HashKey() HashKey {
	return HashKey{Type: i.Type(), Value: uint64(i.Value)}
}

func (b *Boolean) HashKey() HashKey {
	var v uint64
	if b.Value {
		v = 1
	}
	return HashKey{Type: b.Type(), Value: v}
}

func (s *String) HashKey() HashKey {
	h := fnv.New64a()
	h.Write([]byte(s.Value))
	return HashKey{Type: s.Type(), Value: h.Sum64()}
}

// HashPair holds the original key Value alongside its mapped Value, since
// HashKey alone loses the key's display form.
type HashPair struct {
	Key   Value
	Value Value
}

// Hash is a mapping keyed by HashKey, populated from Hashable keys.
// Iteration order of Pairs is not specified: Inspect() does not promise a
// stable order across calls or across Go runtime versions, since lookup
// by key (not enumeration order) is the only order-sensitive use a
// well-formed program can make of it.
type Hash struct {
	Pairs map[HashKey]HashPair
}

func (h *Hash) Type() Type { return HASH_OBJ }
func (h *Hash) Inspect() string {
	var out bytes.Buffer
	pairs := make([]string, 0, len(h.Pairs))
	for _, pair := range h.Pairs {
		pairs = append(pairs, fmt.Sprintf("%s: %s", pair.Key.Inspect(), pair.Value.Inspect()))
	}
	out.WriteString("{")
	out.WriteString(strings.Join(pairs, ", "))
	out.WriteString("}")
	return out.String()
}
