package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"coffeebean/ast"
	"coffeebean/lexer"
	"coffeebean/token"
)

func parseSrc(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	tokens, err := lexer.Tokenize(src)
	assert.NoError(t, err)
	stmts, err := Parse(tokens)
	assert.NoError(t, err)
	return stmts
}

func TestParser_Parse_ArithmeticPrecedence(t *testing.T) {
	stmts := parseSrc(t, "1 + 2 * 3")
	assert.Len(t, stmts, 1)

	exprStmt, ok := stmts[0].(*ast.ExprStmt)
	assert.True(t, ok)

	bin, ok := exprStmt.Expression.(*ast.Binary)
	assert.True(t, ok)
	left, ok := bin.Left.(*ast.Literal)
	assert.True(t, ok)
	assert.Equal(t, "1", left.Value.Lexeme)

	right, ok := bin.Right.(*ast.Binary)
	assert.True(t, ok)
	assert.Equal(t, "2", right.Left.(*ast.Literal).Value.Lexeme)
	assert.Equal(t, "3", right.Right.(*ast.Literal).Value.Lexeme)
}

func TestParser_Parse_GroupingOverridesPrecedence(t *testing.T) {
	stmts := parseSrc(t, "(1 + 2) * 3")
	bin := stmts[0].(*ast.ExprStmt).Expression.(*ast.Binary)
	_, ok := bin.Left.(*ast.Grouping)
	assert.True(t, ok)
}

func TestParser_Parse_AssignmentToIdentifier(t *testing.T) {
	stmts := parseSrc(t, "x = 1")
	assign, ok := stmts[0].(*ast.ExprStmt).Expression.(*ast.Assignment)
	assert.True(t, ok)
	assert.Equal(t, "x", assign.Name.Lexeme)
}

func TestParser_Parse_IndexAssignmentProducesIndexAssignmentNode(t *testing.T) {
	stmts := parseSrc(t, "a[0] = 9")
	assign, ok := stmts[0].(*ast.ExprStmt).Expression.(*ast.IndexAssignment)
	assert.True(t, ok)
	assert.Equal(t, "a", assign.Target.(*ast.Literal).Value.Lexeme)
}

func TestParser_Parse_InvalidAssignmentTargetIsAnError(t *testing.T) {
	tokens, err := lexer.Tokenize("1 = 2")
	assert.NoError(t, err)
	_, err = Parse(tokens)
	assert.Error(t, err)
	var perr *Error
	assert.ErrorAs(t, err, &perr)
}

func TestParser_Parse_BlockStatement(t *testing.T) {
	stmts := parseSrc(t, "do\n  x = 1\nend")
	block, ok := stmts[0].(*ast.Block)
	assert.True(t, ok)
	assert.Len(t, block.Statements, 1)
}

func TestParser_Parse_IfElse(t *testing.T) {
	stmts := parseSrc(t, "if x do\n  echo 1\nend else do\n  echo 2\nend")
	ifStmt, ok := stmts[0].(*ast.If)
	assert.True(t, ok)
	assert.NotNil(t, ifStmt.Then)
	assert.NotNil(t, ifStmt.Else)
}

func TestParser_Parse_WhileLoop(t *testing.T) {
	stmts := parseSrc(t, "while x do\n  echo 1\nend")
	loop, ok := stmts[0].(*ast.While)
	assert.True(t, ok)
	assert.NotNil(t, loop.Body)
}

func TestParser_Parse_FunctionDeclaration(t *testing.T) {
	stmts := parseSrc(t, "func add(a, b) do\n  return a + b\nend")
	fn, ok := stmts[0].(*ast.Function)
	assert.True(t, ok)
	assert.Equal(t, "add", fn.Name.Lexeme)
	assert.Len(t, fn.Params, 2)
	assert.Len(t, fn.Body, 1)
}

func TestParser_Parse_CallChaining(t *testing.T) {
	stmts := parseSrc(t, "f()()")
	call, ok := stmts[0].(*ast.ExprStmt).Expression.(*ast.Call)
	assert.True(t, ok)
	_, ok = call.Callee.(*ast.Call)
	assert.True(t, ok)
}

func TestParser_Parse_ArrayLiteralAndIndex(t *testing.T) {
	stmts := parseSrc(t, "a = {1, 2, 3}\necho a[0]")
	assign := stmts[0].(*ast.ExprStmt).Expression.(*ast.Assignment)
	arr, ok := assign.Value.(*ast.Array)
	assert.True(t, ok)
	assert.Len(t, arr.Items, 3)

	echo := stmts[1].(*ast.Echo)
	_, ok = echo.Expression.(*ast.Index)
	assert.True(t, ok)
}

func TestParser_Parse_OrIsNotChained(t *testing.T) {
	// 'or' is defined as a single non-chaining operator in spec.md §4.D;
	// a second 'or' is left unconsumed after `a or b`, and since 'or'
	// cannot start a new statement, parsing fails there.
	stmts := parseSrc(t, "a or b")
	logical, ok := stmts[0].(*ast.ExprStmt).Expression.(*ast.Logical)
	assert.True(t, ok)
	assert.Equal(t, "a", logical.Left.(*ast.Literal).Value.Lexeme)

	tokens, err := lexer.Tokenize("a or b or c")
	assert.NoError(t, err)
	_, err = Parse(tokens)
	assert.Error(t, err)
}

func TestParser_Parse_NotIsSynonymForBang(t *testing.T) {
	stmts := parseSrc(t, "not x")
	unary, ok := stmts[0].(*ast.ExprStmt).Expression.(*ast.Unary)
	assert.True(t, ok)
	assert.Equal(t, token.Not, unary.Op.Kind)
}

func TestParser_Parse_MissingClosingParenIsParserError(t *testing.T) {
	tokens, err := lexer.Tokenize("(1 + 2")
	assert.NoError(t, err)
	_, err = Parse(tokens)
	assert.Error(t, err)
}

func TestParser_Parse_MissingEndIsParserError(t *testing.T) {
	tokens, err := lexer.Tokenize("do\n echo 1")
	assert.NoError(t, err)
	_, err = Parse(tokens)
	assert.Error(t, err)
}
