package parser

import (
	"coffeebean/ast"
	"coffeebean/token"
)

// expression := assignment
func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

// assignment := or ( '=' assignment )?
//
// The left side must already have parsed as either a bare identifier
// (Literal wrapping an Identifier token, per primary()) or an Index
// expression; anything else on the left of '=' is an invalid target.
func (p *Parser) assignment() (ast.Expr, error) {
	left, err := p.or()
	if err != nil {
		return nil, err
	}
	if !p.match(token.Eq) {
		return left, nil
	}
	value, err := p.assignment()
	if err != nil {
		return nil, err
	}
	switch target := left.(type) {
	case *ast.Literal:
		if target.Value.Kind != token.Identifier {
			return nil, p.errorf("Invalid assignment target.")
		}
		return &ast.Assignment{Name: target.Value, Value: value}, nil
	case *ast.Index:
		return &ast.IndexAssignment{Target: target.Target, Idx: target.Idx, Value: value}, nil
	default:
		return nil, p.errorf("Invalid assignment target.")
	}
}

// or := and ( 'or' and )?  -- a single 'or', not chained, per spec.md §4.D.
func (p *Parser) or() (ast.Expr, error) {
	left, err := p.and()
	if err != nil {
		return nil, err
	}
	if p.check(token.Or) {
		op := p.eat()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		return &ast.Logical{Left: left, Op: op, Right: right}, nil
	}
	return left, nil
}

// and := equality ( 'and' equality )*
func (p *Parser) and() (ast.Expr, error) {
	left, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.check(token.And) {
		op := p.eat()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		left = &ast.Logical{Left: left, Op: op, Right: right}
	}
	return left, nil
}

// equality := comparison (('!='|'==') comparison)*
func (p *Parser) equality() (ast.Expr, error) {
	left, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.check(token.BangEq) || p.check(token.EqEq) {
		op := p.eat()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: op, Right: right}
	}
	return left, nil
}

// comparison := term (('<'|'<='|'>'|'>=') term)*
func (p *Parser) comparison() (ast.Expr, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.check(token.Lt) || p.check(token.LtEq) || p.check(token.Gt) || p.check(token.GtEq) {
		op := p.eat()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: op, Right: right}
	}
	return left, nil
}

// term := factor (('+'|'-') factor)*
func (p *Parser) term() (ast.Expr, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.check(token.Plus) || p.check(token.Minus) {
		op := p.eat()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: op, Right: right}
	}
	return left, nil
}

// factor := unary (('*'|'/') unary)*
func (p *Parser) factor() (ast.Expr, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.check(token.Star) || p.check(token.Slash) {
		op := p.eat()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: op, Right: right}
	}
	return left, nil
}

// unary := ('!'|'not'|'+'|'-') unary | call
func (p *Parser) unary() (ast.Expr, error) {
	if p.check(token.Bang) || p.check(token.Not) || p.check(token.Plus) || p.check(token.Minus) {
		op := p.eat()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: op, Right: right}, nil
	}
	return p.call()
}

// call := index ( '(' args? ')' )*
//
// Loops so a call may itself be applied to another call's result,
// e.g. `f()()`.
func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.index()
	if err != nil {
		return nil, err
	}
	for p.check(token.LParen) {
		p.eat()
		args, err := p.args()
		if err != nil {
			return nil, err
		}
		closing, err := p.expect(token.RParen, "Expected ')' after arguments.")
		if err != nil {
			return nil, err
		}
		expr = &ast.Call{Callee: expr, ClosingParen: closing, Args: args}
	}
	return expr, nil
}

// args := expression (',' expression)*
func (p *Parser) args() ([]ast.Expr, error) {
	var args []ast.Expr
	if p.check(token.RParen) {
		return args, nil
	}
	for {
		arg, err := p.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.match(token.Comma) {
			break
		}
	}
	return args, nil
}

// index := primary ( '[' expression ']' )*
func (p *Parser) index() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.check(token.LBracket) {
		p.eat()
		idx, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RBracket, "Expected ']' after index."); err != nil {
			return nil, err
		}
		expr = &ast.Index{Target: expr, Idx: idx}
	}
	return expr, nil
}

// primary := NULL | TRUE | FALSE | INT | FLOAT | STRING | CHAR | IDENT
//          | '(' expression ')'
//          | '{' (expression (',' expression)*)? '}'
func (p *Parser) primary() (ast.Expr, error) {
	switch p.cur.Kind {
	case token.Null, token.True, token.False, token.Integer, token.Float,
		token.String, token.Character, token.Identifier:
		return &ast.Literal{Value: p.eat()}, nil
	case token.LParen:
		p.eat()
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen, "Expected ')' after expression."); err != nil {
			return nil, err
		}
		return &ast.Grouping{Inner: inner}, nil
	case token.LBrace:
		p.eat()
		items, err := p.arrayItems()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RBrace, "Expected '}' after array literal."); err != nil {
			return nil, err
		}
		return &ast.Array{Items: items}, nil
	default:
		return nil, p.errorf("Expected expression.")
	}
}

// arrayItems := (expression (',' expression)*)?
func (p *Parser) arrayItems() ([]ast.Expr, error) {
	var items []ast.Expr
	if p.check(token.RBrace) {
		return items, nil
	}
	for {
		item, err := p.expression()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if !p.match(token.Comma) {
			break
		}
	}
	return items, nil
}
