/*
File   : coffeebean/callable/callable.go
Package: callable

Defines the Callable runtime value variant (spec.md §3): a value with
an arity that can be invoked with arguments to produce a value. Two
realizations -- Builtin and Function -- mirror the teacher's split
between go-mix's std.Builtin callback registry and function.Function's
closure-capturing user function, unified here as value.Value
implementations so a Callable can be stored in a variable, passed as an
argument, and returned, exactly like any other Coffee Bean value.

Actual invocation of a Function's body lives in package interp (it
needs the tree-walking evaluator), not here, avoiding an import cycle:
this package only holds the data each Callable variant carries.
*/
package callable

import (
	"fmt"

	"coffeebean/ast"
	"coffeebean/environment"
	"coffeebean/value"
)

// Callable is implemented by both Builtin and Function. Every Callable
// is also a value.Value (Type/String/Inspect), so it can live anywhere
// a Coffee Bean value can.
type Callable interface {
	value.Value
	Arity() int
	Describe() string
}

// BuiltinFn is the signature every native built-in function implements.
type BuiltinFn func(args []value.Value) (value.Value, error)

// Builtin is a native (Go-implemented) Coffee Bean function, such as
// `clock`. Grounded on go-mix/std.Builtin's {Name, Callback} pair.
type Builtin struct {
	Name     string
	NumArgs  int
	Callback BuiltinFn
}

func (b *Builtin) Type() value.Kind  { return value.CallableKind }
func (b *Builtin) Arity() int        { return b.NumArgs }
func (b *Builtin) Describe() string  { return fmt.Sprintf("<built-in function %s>", b.Name) }
func (b *Builtin) String() string    { return b.Describe() }
func (b *Builtin) Inspect() string   { return b.Describe() }
func (b *Builtin) Invoke(args []value.Value) (value.Value, error) { return b.Callback(args) }

// Function is a user-defined Coffee Bean function, grounded on
// go-mix/function.Function: it captures the declaration AST and the
// environment active when `func` was evaluated, giving it closure
// semantics (spec.md §3: "A captured closure holds a strong reference
// to the scope active at function-declaration time").
type Function struct {
	Declaration *ast.Function
	Closure     *environment.Environment
}

func (f *Function) Type() value.Kind { return value.CallableKind }
func (f *Function) Arity() int       { return len(f.Declaration.Params) }
func (f *Function) Describe() string { return fmt.Sprintf("<function %s>", f.Declaration.Name.Lexeme) }
func (f *Function) String() string   { return f.Describe() }
func (f *Function) Inspect() string  { return f.Describe() }
