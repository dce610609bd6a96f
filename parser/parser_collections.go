/*
File    : monkey/parser/parser_collections.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/go-mix/lexer"

// parseArrayLiteral: `[<elements>]`.
func (p *Parser) parseArrayLiteral() Expression {
	arr := &ArrayLiteral{Token: p.current}
	arr.Elements = p.parseExpressionList(lexer.RBRACKET)
	return arr
}

// parseHashLiteral: `{<key>: <value>, ...}`. Pairs are kept in the order
// they were written so String() reproduces the source ordering.
func (p *Parser) parseHashLiteral() Expression {
	hash := &HashLiteral{Token: p.current, Pairs: []HashPair{}}

	for !p.peekIs(lexer.RBRACE) {
		p.advance()
		key := p.parseExpression(LOWEST)

		if !p.expectPeek(lexer.COLON) {
			return nil
		}

		p.advance()
		value := p.parseExpression(LOWEST)

		hash.Pairs = append(hash.Pairs, HashPair{Key: key, Value: value})

		if !p.peekIs(lexer.RBRACE) && !p.expectPeek(lexer.COMMA) {
			return nil
		}
	}

	if !p.expectPeek(lexer.RBRACE) {
		return nil
	}
	return hash
}
