/*
File    : monkey/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/go-mix/lexer"

// parseLetStatement: `let <IDENT> = <expression>;`. The trailing
// semicolon is optional.
func (p *Parser) parseLetStatement() Statement {
	stmt := &LetStatement{Token: p.current}

	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	stmt.Name = &Identifier{Token: p.current, Value: p.current.Literal}

	if !p.expectPeek(lexer.ASSIGN) {
		return nil
	}
	p.advance()

	stmt.Value = p.parseExpression(LOWEST)

	if p.peekIs(lexer.SEMICOLON) {
		p.advance()
	}
	return stmt
}

// parseReturnStatement: `return <expression>;`. The trailing semicolon is
// optional.
func (p *Parser) parseReturnStatement() Statement {
	stmt := &ReturnStatement{Token: p.current}

	p.advance()
	stmt.ReturnValue = p.parseExpression(LOWEST)

	if p.peekIs(lexer.SEMICOLON) {
		p.advance()
	}
	return stmt
}

// parseExpressionStatement parses a bare expression used as a statement,
// with an optional trailing semicolon.
func (p *Parser) parseExpressionStatement() Statement {
	stmt := &ExpressionStatement{Token: p.current}
	stmt.Expression = p.parseExpression(LOWEST)

	if p.peekIs(lexer.SEMICOLON) {
		p.advance()
	}
	return stmt
}

// parseBlockStatement consumes statements until RBRACE or EOF. The
// caller's current token must be LBRACE on entry; current is RBRACE (or
// EOF, on unterminated input) on return.
func (p *Parser) parseBlockStatement() *BlockStatement {
	block := &BlockStatement{Token: p.current, Statements: []Statement{}}

	p.advance()
	for !p.currentIs(lexer.RBRACE) && !p.currentIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.advance()
	}
	return block
}
