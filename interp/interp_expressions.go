package interp

import (
	"strconv"

	"coffeebean/ast"
	"coffeebean/callable"
	"coffeebean/environment"
	"coffeebean/token"
	"coffeebean/value"
)

// Eval evaluates a single expression against the interpreter's current
// environment, per the rules in spec.md §4.G.
func (i *Interp) Eval(expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return i.evalLiteral(e)
	case *ast.Grouping:
		return i.Eval(e.Inner)
	case *ast.Array:
		return i.evalArray(e)
	case *ast.Unary:
		return i.evalUnary(e)
	case *ast.Binary:
		return i.evalBinary(e)
	case *ast.Logical:
		return i.evalLogical(e)
	case *ast.Assignment:
		return i.evalAssignment(e)
	case *ast.Index:
		return i.evalIndex(e)
	case *ast.IndexAssignment:
		return i.evalIndexAssignment(e)
	case *ast.Call:
		return i.evalCall(e)
	default:
		return nil, i.runtimeErrorf(i.currentLine, "Unknown expression type %T", expr)
	}
}

// evalLiteral decodes a runtime Value from the literal token's kind,
// per spec.md §4.G: numeric parsing is deferred to evaluation time, and
// string/character lexemes have their surrounding quotes stripped here.
func (i *Interp) evalLiteral(lit *ast.Literal) (value.Value, error) {
	tok := lit.Value
	i.currentLine = tok.Line
	switch tok.Kind {
	case token.Null:
		return value.NullValue, nil
	case token.True:
		return value.Bool{Value: true}, nil
	case token.False:
		return value.Bool{Value: false}, nil
	case token.Integer:
		n, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return nil, i.runtimeErrorf(tok.Line, "Invalid integer literal '%s'", tok.Lexeme)
		}
		return value.Int{Value: n}, nil
	case token.Float:
		f, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			return nil, i.runtimeErrorf(tok.Line, "Invalid float literal '%s'", tok.Lexeme)
		}
		return value.Float{Value: f}, nil
	case token.String, token.Character:
		return value.String{Value: stripQuotes(tok.Lexeme)}, nil
	case token.Identifier:
		v, ok := i.env.Get(tok.Lexeme)
		if !ok {
			return nil, i.runtimeErrorf(tok.Line, "Undefined variable '%s'.", tok.Lexeme)
		}
		return v, nil
	default:
		return nil, i.runtimeErrorf(tok.Line, "Unexpected literal token %s", tok.Kind)
	}
}

// stripQuotes removes a single leading and trailing delimiter byte, as
// scanned by lexer.scanDelimited (the lexeme always includes both).
func stripQuotes(lexeme string) string {
	if len(lexeme) >= 2 {
		return lexeme[1 : len(lexeme)-1]
	}
	return lexeme
}

func (i *Interp) evalArray(a *ast.Array) (value.Value, error) {
	elements := make([]value.Value, len(a.Items))
	for idx, item := range a.Items {
		v, err := i.Eval(item)
		if err != nil {
			return nil, err
		}
		elements[idx] = v
	}
	return value.NewArray(elements), nil
}

func (i *Interp) evalUnary(u *ast.Unary) (value.Value, error) {
	i.currentLine = u.Op.Line
	right, err := i.Eval(u.Right)
	if err != nil {
		return nil, err
	}
	switch u.Op.Kind {
	case token.Plus:
		isInt, n, f, err := value.ToNumber(right)
		if err != nil {
			return nil, i.runtimeErrorf(u.Op.Line, "%s", err.Error())
		}
		if isInt {
			return value.Int{Value: n}, nil
		}
		return value.Float{Value: f}, nil
	case token.Minus:
		isInt, n, f, err := value.ToNumber(right)
		if err != nil {
			return nil, i.runtimeErrorf(u.Op.Line, "%s", err.Error())
		}
		if isInt {
			return value.Int{Value: -n}, nil
		}
		return value.Float{Value: -f}, nil
	case token.Bang, token.Not:
		return value.Bool{Value: !value.Truthy(right)}, nil
	default:
		return nil, i.runtimeErrorf(u.Op.Line, "Unknown unary operator %s", u.Op.Kind)
	}
}

func (i *Interp) evalBinary(b *ast.Binary) (value.Value, error) {
	i.currentLine = b.Op.Line
	left, err := i.Eval(b.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.Eval(b.Right)
	if err != nil {
		return nil, err
	}
	switch b.Op.Kind {
	case token.Plus, token.Minus, token.Star, token.Slash:
		return i.evalArithmetic(b.Op, left, right)
	case token.EqEq:
		return value.Bool{Value: value.Equal(left, right)}, nil
	case token.BangEq:
		return value.Bool{Value: !value.Equal(left, right)}, nil
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return i.evalComparison(b.Op, left, right)
	default:
		return nil, i.runtimeErrorf(b.Op.Line, "Unknown binary operator %s", b.Op.Kind)
	}
}

// evalArithmetic implements spec.md §4.G's coercion rule: both operands
// pass through to_number; integer/integer stays integer for + - *,
// division always yields float, and mixing int/float promotes to float.
func (i *Interp) evalArithmetic(op token.Token, left, right value.Value) (value.Value, error) {
	leftIsInt, li, lf, err := value.ToNumber(left)
	if err != nil {
		return nil, i.runtimeErrorf(op.Line, "%s", err.Error())
	}
	rightIsInt, ri, rf, err := value.ToNumber(right)
	if err != nil {
		return nil, i.runtimeErrorf(op.Line, "%s", err.Error())
	}

	if op.Kind == token.Slash {
		if rf == 0 {
			return nil, i.runtimeErrorf(op.Line, "Division by zero.")
		}
		return value.Float{Value: lf / rf}, nil
	}

	bothInt := leftIsInt && rightIsInt
	if bothInt {
		switch op.Kind {
		case token.Plus:
			return value.Int{Value: li + ri}, nil
		case token.Minus:
			return value.Int{Value: li - ri}, nil
		case token.Star:
			return value.Int{Value: li * ri}, nil
		}
	}
	switch op.Kind {
	case token.Plus:
		return value.Float{Value: lf + rf}, nil
	case token.Minus:
		return value.Float{Value: lf - rf}, nil
	case token.Star:
		return value.Float{Value: lf * rf}, nil
	}
	return nil, i.runtimeErrorf(op.Line, "Unknown arithmetic operator %s", op.Kind)
}

// evalComparison implements numeric ordering plus lexicographic string
// ordering, per spec.md §4.G.
func (i *Interp) evalComparison(op token.Token, left, right value.Value) (value.Value, error) {
	if ls, ok := left.(value.String); ok {
		rs, ok := right.(value.String)
		if !ok {
			return nil, i.runtimeErrorf(op.Line, "Cannot compare string to %s", right.Type())
		}
		return value.Bool{Value: compareOrdered(op.Kind, ls.Value < rs.Value, ls.Value == rs.Value)}, nil
	}
	_, _, lf, err := value.ToNumber(left)
	if err != nil {
		return nil, i.runtimeErrorf(op.Line, "%s", err.Error())
	}
	_, _, rf, err := value.ToNumber(right)
	if err != nil {
		return nil, i.runtimeErrorf(op.Line, "%s", err.Error())
	}
	return value.Bool{Value: compareOrdered(op.Kind, lf < rf, lf == rf)}, nil
}

func compareOrdered(kind token.Kind, less, equal bool) bool {
	switch kind {
	case token.Lt:
		return less
	case token.LtEq:
		return less || equal
	case token.Gt:
		return !less && !equal
	case token.GtEq:
		return !less || equal
	default:
		return false
	}
}

func (i *Interp) evalLogical(l *ast.Logical) (value.Value, error) {
	left, err := i.Eval(l.Left)
	if err != nil {
		return nil, err
	}
	switch l.Op.Kind {
	case token.Or:
		if value.Truthy(left) {
			return left, nil
		}
	case token.And:
		if !value.Truthy(left) {
			return left, nil
		}
	}
	return i.Eval(l.Right)
}

func (i *Interp) evalAssignment(a *ast.Assignment) (value.Value, error) {
	v, err := i.Eval(a.Value)
	if err != nil {
		return nil, err
	}
	i.env.Define(a.Name.Lexeme, v)
	return v, nil
}

func (i *Interp) evalIndex(idx *ast.Index) (value.Value, error) {
	target, err := i.Eval(idx.Target)
	if err != nil {
		return nil, err
	}
	arr, ok := target.(*value.Array)
	if !ok {
		return nil, i.runtimeErrorf(i.currentLine, "Can only index arrays")
	}
	index, err := i.Eval(idx.Idx)
	if err != nil {
		return nil, err
	}
	n, ok := index.(value.Int)
	if !ok {
		return nil, i.runtimeErrorf(i.currentLine, "Array index must be an integer")
	}
	if n.Value < 0 || n.Value >= int64(len(arr.Elements)) {
		return nil, i.runtimeErrorf(i.currentLine, "Index out of bounds")
	}
	return arr.Elements[n.Value], nil
}

// evalIndexAssignment implements the Open Question resolution: `a[i] =
// v` mutates the array's backing storage in place, so the write is
// visible through every alias of the same *value.Array.
func (i *Interp) evalIndexAssignment(a *ast.IndexAssignment) (value.Value, error) {
	target, err := i.Eval(a.Target)
	if err != nil {
		return nil, err
	}
	arr, ok := target.(*value.Array)
	if !ok {
		return nil, i.runtimeErrorf(i.currentLine, "Can only index arrays")
	}
	index, err := i.Eval(a.Idx)
	if err != nil {
		return nil, err
	}
	n, ok := index.(value.Int)
	if !ok {
		return nil, i.runtimeErrorf(i.currentLine, "Array index must be an integer")
	}
	if n.Value < 0 || n.Value >= int64(len(arr.Elements)) {
		return nil, i.runtimeErrorf(i.currentLine, "Index out of bounds")
	}
	v, err := i.Eval(a.Value)
	if err != nil {
		return nil, err
	}
	arr.Elements[n.Value] = v
	return v, nil
}

func (i *Interp) evalCall(c *ast.Call) (value.Value, error) {
	callee, err := i.Eval(c.Callee)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(callable.Callable)
	if !ok {
		return nil, i.runtimeErrorf(c.ClosingParen.Line, "Can only call functions.")
	}
	args := make([]value.Value, len(c.Args))
	for idx, argExpr := range c.Args {
		v, err := i.Eval(argExpr)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}
	if fn.Arity() != len(args) {
		return nil, i.runtimeErrorf(c.ClosingParen.Line, "Expected %d arguments but got %d", fn.Arity(), len(args))
	}
	return i.invoke(fn, args, c.ClosingParen.Line)
}

// invoke dispatches a Callable to its concrete realization. This is
// where package interp closes the loop callable.Function left open:
// the closure's captured environment becomes the parent of a fresh
// call-frame scope, params are bound there, and the body runs inside
// it, catching a returnSignal as the call's result.
func (i *Interp) invoke(fn callable.Callable, args []value.Value, line int) (value.Value, error) {
	switch f := fn.(type) {
	case *callable.Builtin:
		v, err := f.Invoke(args)
		if err != nil {
			return nil, i.runtimeErrorf(line, "%s", err.Error())
		}
		return v, nil

	case *callable.Function:
		frame := environment.New(f.Closure)
		for idx, param := range f.Declaration.Params {
			frame.Values[param.Lexeme] = args[idx]
		}
		previous := i.env
		i.env = frame
		defer func() { i.env = previous }()

		for _, stmt := range f.Declaration.Body {
			err := i.Exec(stmt)
			if err == nil {
				continue
			}
			if ret, isReturn := err.(*returnSignal); isReturn {
				return ret.Value, nil
			}
			return nil, err
		}
		return value.NullValue, nil

	default:
		return nil, i.runtimeErrorf(line, "Can only call functions.")
	}
}
