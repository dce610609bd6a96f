/*
File    : monkey/parser/parser_conditionals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/go-mix/lexer"

// parseIfExpression: `if (<cond>) { <consequence> } else { <alternative> }`.
// The else branch is optional.
func (p *Parser) parseIfExpression() Expression {
	expr := &IfExpression{Token: p.current}

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	p.advance()
	expr.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	expr.Consequence = p.parseBlockStatement()

	if p.peekIs(lexer.ELSE) {
		p.advance()
		if !p.expectPeek(lexer.LBRACE) {
			return nil
		}
		expr.Alternative = p.parseBlockStatement()
	}
	return expr
}
