/*
File   : coffeebean/interp/interp.go
Package: interp

The tree-walking evaluator: a visitor over ast.Expr/ast.Stmt that
maintains an active environment.Environment and produces/consumes
value.Value. Grounded on go-mix/eval/evaluator.go's Evaluator struct
(an io.Writer output sink, a builtin registry seeded at construction,
a current-scope pointer) but restructured around Go's type-switch
instead of go-mix's per-node-type Eval dispatch table, per spec.md §9's
closed-tagged-union preference.
*/
package interp

import (
	"fmt"
	"io"
	"os"

	"coffeebean/ast"
	"coffeebean/builtin"
	"coffeebean/environment"
	"coffeebean/value"
)

// RuntimeError is a fatal evaluation failure: an undefined variable, a
// type mismatch, an arity mismatch, a non-callable invocation, or an
// out-of-bounds index (spec.md §7). It carries the source line active
// when the failure occurred.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

// SourceLine implements errs.located, see lexer.Error.SourceLine.
func (e *RuntimeError) SourceLine() int { return e.Line }

// returnSignal is the non-local control-transfer mechanism spec.md §5
// asks for: a `return` unwinds as a Go error until Interp.invoke catches
// it at the innermost enclosing function invocation. It must never
// reach a caller outside this package.
type returnSignal struct {
	Value value.Value
}

func (r *returnSignal) Error() string { return "return outside function" }

// Interp holds the state shared across one evaluation run: the global
// scope (pre-populated with built-ins), the currently active scope, the
// output sink `echo` writes to, and a shadow of the line last touched,
// used when an error needs a line but the failing node doesn't carry
// one directly.
type Interp struct {
	Global      *environment.Environment
	env         *environment.Environment
	Writer      io.Writer
	currentLine int
}

// New creates an interpreter with a fresh global scope pre-populated
// with built-ins (spec.md §4.G). Output defaults to os.Stdout, matching
// go-mix/eval.NewEvaluator's default; call SetWriter to redirect it
// (tests capture output this way).
func New() *Interp {
	global := environment.New(nil)
	for name, b := range builtin.All() {
		global.Define(name, b)
	}
	return &Interp{Global: global, env: global, Writer: os.Stdout}
}

// SetWriter redirects echo output, mirroring go-mix/eval.Evaluator.SetWriter.
func (i *Interp) SetWriter(w io.Writer) {
	i.Writer = w
}

// Run executes statements in order against the interpreter's current
// environment (the global scope, or whatever a prior Run left behind --
// the REPL reuses one Interp across input lines so top-level bindings
// persist). Execution halts at the first error.
func (i *Interp) Run(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := i.Exec(stmt); err != nil {
			if _, isReturn := err.(*returnSignal); isReturn {
				return &RuntimeError{Line: i.currentLine, Message: "return outside function"}
			}
			return err
		}
	}
	return nil
}

func (i *Interp) runtimeErrorf(line int, format string, args ...any) error {
	i.currentLine = line
	return &RuntimeError{Line: line, Message: fmt.Sprintf(format, args...)}
}
