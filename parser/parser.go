/*
File    : monkey/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a Pratt (top-down operator-precedence) parser
// that turns a token stream from the lexer into a Program AST.
package parser

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/go-mix/lexer"
)

// Operator precedence levels, lowest to highest. CALL binds tighter than
// any infix operator, INDEX tighter still.
const (
	_ int = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // < >
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x or !x
	CALL        // fn(x)
	INDEX       // arr[x]
)

// precedences is the fixed table mapping an infix operator's token kind to
// its precedence level, per the language's grammar. The prefix/infix
// handlers themselves are not in a fixed table: New registers them into
// per-Parser maps via registerPrefix/registerInfix.
var precedences = map[lexer.TokenType]int{
	lexer.EQ:       EQUALS,
	lexer.NOT_EQ:   EQUALS,
	lexer.LT:       LESSGREATER,
	lexer.GT:       LESSGREATER,
	lexer.PLUS:     SUM,
	lexer.MINUS:    SUM,
	lexer.SLASH:    PRODUCT,
	lexer.ASTERISK: PRODUCT,
	lexer.LPAREN:   CALL,
	lexer.LBRACKET: INDEX,
}

type (
	prefixParseFn func() Expression
	infixParseFn  func(Expression) Expression
)

// Parser holds the token stream and the fixed-size lookahead (current,
// peek) that drives the Pratt algorithm, plus any errors accumulated
// along the way.
type Parser struct {
	lex *lexer.Lexer

	current lexer.Token
	peek    lexer.Token

	errors []string

	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn
}

// New creates a Parser over lex and primes current/peek with the first two
// tokens, then registers the fixed prefix/infix handler tables.
func New(lex *lexer.Lexer) *Parser {
	p := &Parser{lex: lex, errors: []string{}}

	p.prefixParseFns = make(map[lexer.TokenType]prefixParseFn)
	p.registerPrefix(lexer.IDENT, p.parseIdentifier)
	p.registerPrefix(lexer.INT, p.parseIntegerLiteral)
	p.registerPrefix(lexer.STRING, p.parseStringLiteral)
	p.registerPrefix(lexer.TRUE, p.parseBoolean)
	p.registerPrefix(lexer.FALSE, p.parseBoolean)
	p.registerPrefix(lexer.BANG, p.parsePrefixExpression)
	p.registerPrefix(lexer.MINUS, p.parsePrefixExpression)
	p.registerPrefix(lexer.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(lexer.IF, p.parseIfExpression)
	p.registerPrefix(lexer.FUNCTION, p.parseFunctionLiteral)
	p.registerPrefix(lexer.LBRACKET, p.parseArrayLiteral)
	p.registerPrefix(lexer.LBRACE, p.parseHashLiteral)

	p.infixParseFns = make(map[lexer.TokenType]infixParseFn)
	for _, tt := range []lexer.TokenType{
		lexer.PLUS, lexer.MINUS, lexer.SLASH, lexer.ASTERISK,
		lexer.EQ, lexer.NOT_EQ, lexer.LT, lexer.GT,
	} {
		p.registerInfix(tt, p.parseInfixExpression)
	}
	p.registerInfix(lexer.LPAREN, p.parseCallExpression)
	p.registerInfix(lexer.LBRACKET, p.parseIndexExpression)

	p.advance()
	p.advance()
	return p
}

func (p *Parser) registerPrefix(tt lexer.TokenType, fn prefixParseFn) {
	p.prefixParseFns[tt] = fn
}

func (p *Parser) registerInfix(tt lexer.TokenType, fn infixParseFn) {
	p.infixParseFns[tt] = fn
}

// Errors returns every diagnostic collected while parsing. Parsing never
// halts on an error; each missed expectation is recorded here and parsing
// continues from the next token.
func (p *Parser) Errors() []string {
	return p.errors
}

func (p *Parser) addError(format string, args ...interface{}) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

// advance shifts the two-token lookahead window forward by one token.
func (p *Parser) advance() {
	p.current = p.peek
	p.peek = p.lex.NextToken()
}

func (p *Parser) currentIs(tt lexer.TokenType) bool {
	return p.current.Type == tt
}

func (p *Parser) peekIs(tt lexer.TokenType) bool {
	return p.peek.Type == tt
}

// expectPeek advances past peek when it has the expected type, else
// records a diagnostic and leaves the token stream where it was.
func (p *Parser) expectPeek(tt lexer.TokenType) bool {
	if p.peekIs(tt) {
		p.advance()
		return true
	}
	p.peekError(tt)
	return false
}

func (p *Parser) peekError(tt lexer.TokenType) {
	p.addError("expected next token to be %s, got %s instead", tt, p.peek.Type)
}

func (p *Parser) noPrefixParseFnError(tt lexer.TokenType) {
	p.addError("no prefix parse function for %s found", tt)
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peek.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) currentPrecedence() int {
	if pr, ok := precedences[p.current.Type]; ok {
		return pr
	}
	return LOWEST
}

// ParseProgram consumes the entire token stream and builds a Program. It
// always returns a non-nil Program; callers consult Errors() to decide
// whether to trust it.
func (p *Parser) ParseProgram() *Program {
	program := &Program{Statements: []Statement{}}

	for !p.currentIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.advance()
	}
	return program
}

func (p *Parser) parseStatement() Statement {
	switch p.current.Type {
	case lexer.LET:
		return p.parseLetStatement()
	case lexer.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseExpression(precedence int) Expression {
	prefix := p.prefixParseFns[p.current.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.current.Type)
		return nil
	}
	left := prefix()

	for !p.peekIs(lexer.SEMICOLON) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peek.Type]
		if infix == nil {
			return left
		}
		p.advance()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIntegerLiteral() Expression {
	lit := &IntegerLiteral{Token: p.current}
	value, err := strconv.ParseInt(p.current.Literal, 10, 64)
	if err != nil {
		p.addError("could not parse %q as integer", p.current.Literal)
		return nil
	}
	lit.Value = value
	return lit
}

func (p *Parser) parseIdentifier() Expression {
	return &Identifier{Token: p.current, Value: p.current.Literal}
}

func (p *Parser) parseStringLiteral() Expression {
	return &StringLiteral{Token: p.current, Value: p.current.Literal}
}

func (p *Parser) parseBoolean() Expression {
	return &Boolean{Token: p.current, Value: p.currentIs(lexer.TRUE)}
}
