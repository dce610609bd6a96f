/*
File    : monkey/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/go-mix/lexer"

// parsePrefixExpression: `<op><right>`, binding right at PREFIX
// precedence so e.g. `-a * b` parses as `(-a) * b`.
func (p *Parser) parsePrefixExpression() Expression {
	expr := &PrefixExpression{Token: p.current, Operator: p.current.Literal}
	p.advance()
	expr.Right = p.parseExpression(PREFIX)
	return expr
}

// parseInfixExpression: `<left> <op> <right>`, left-associative — the
// right operand is parsed at the operator's own precedence.
func (p *Parser) parseInfixExpression(left Expression) Expression {
	expr := &InfixExpression{
		Token:    p.current,
		Operator: p.current.Literal,
		Left:     left,
	}
	precedence := p.currentPrecedence()
	p.advance()
	expr.Right = p.parseExpression(precedence)
	return expr
}

// parseGroupedExpression: `(<expression>)`.
func (p *Parser) parseGroupedExpression() Expression {
	p.advance()
	expr := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	return expr
}

// parseCallExpression: `<callee>(<args>)`.
func (p *Parser) parseCallExpression(fn Expression) Expression {
	expr := &CallExpression{Token: p.current, Function: fn}
	expr.Arguments = p.parseExpressionList(lexer.RPAREN)
	return expr
}

// parseIndexExpression: `<left>[<index>]`.
func (p *Parser) parseIndexExpression(left Expression) Expression {
	expr := &IndexExpression{Token: p.current, Left: left}
	p.advance()
	expr.Index = p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RBRACKET) {
		return nil
	}
	return expr
}

// parseExpressionList parses a comma-separated, possibly empty list of
// expressions terminated by end.
func (p *Parser) parseExpressionList(end lexer.TokenType) []Expression {
	list := []Expression{}

	if p.peekIs(end) {
		p.advance()
		return list
	}

	p.advance()
	list = append(list, p.parseExpression(LOWEST))

	for p.peekIs(lexer.COMMA) {
		p.advance()
		p.advance()
		list = append(list, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(end) {
		return nil
	}
	return list
}
