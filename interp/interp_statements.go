package interp

import (
	"fmt"

	"coffeebean/ast"
	"coffeebean/callable"
	"coffeebean/environment"
	"coffeebean/value"
)

// Exec executes a single statement against the interpreter's current
// environment.
func (i *Interp) Exec(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		_, err := i.Eval(s.Expression)
		return err

	case *ast.Echo:
		v, err := i.Eval(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.Writer, v.String())
		return nil

	case *ast.Block:
		return i.execBlock(s.Statements, environment.New(i.env))

	case *ast.If:
		cond, err := i.Eval(s.Cond)
		if err != nil {
			return err
		}
		if value.Truthy(cond) {
			return i.Exec(s.Then)
		}
		if s.Else != nil {
			return i.Exec(s.Else)
		}
		return nil

	case *ast.While:
		for {
			cond, err := i.Eval(s.Cond)
			if err != nil {
				return err
			}
			if !value.Truthy(cond) {
				return nil
			}
			// Each iteration gets its own child scope per spec.md §4.G,
			// observable only through closures captured inside the body.
			if err := i.execBlock([]ast.Stmt{s.Body}, environment.New(i.env)); err != nil {
				return err
			}
		}

	case *ast.Function:
		fn := &callable.Function{Declaration: s, Closure: i.env}
		i.env.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.Return:
		v, err := i.Eval(s.Value)
		if err != nil {
			return err
		}
		i.currentLine = s.Keyword.Line
		return &returnSignal{Value: v}

	default:
		return i.runtimeErrorf(i.currentLine, "Unknown statement type %T", stmt)
	}
}

// execBlock runs stmts inside scope, restoring the interpreter's
// previous environment on every exit path (normal, error, or a
// returnSignal unwinding through it) -- mirroring go-mix's
// executeBlock push/defer-pop pattern over scope.Scope.
func (i *Interp) execBlock(stmts []ast.Stmt, scope *environment.Environment) error {
	previous := i.env
	i.env = scope
	defer func() { i.env = previous }()

	for _, stmt := range stmts {
		if err := i.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
