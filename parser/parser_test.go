/*
File    : monkey/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"
	"testing"

	"github.com/akashmaji946/go-mix/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseProgram(t *testing.T, input string) *Program {
	t.Helper()
	p := New(lexer.New(input))
	program := p.ParseProgram()
	require.Empty(t, p.Errors(), "parser errors: %v", p.Errors())
	return program
}

func TestLetStatements(t *testing.T) {
	tests := []struct {
		input              string
		expectedIdentifier string
		expectedValue      interface{}
	}{
		{"let x = 5;", "x", int64(5)},
		{"let y = true;", "y", true},
		{"let foobar = y;", "foobar", "y"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		require.Len(t, program.Statements, 1)

		stmt, ok := program.Statements[0].(*LetStatement)
		require.True(t, ok)
		assert.Equal(t, "let", stmt.TokenLiteral())
		assert.Equal(t, tt.expectedIdentifier, stmt.Name.Value)
		testLiteralExpression(t, stmt.Value, tt.expectedValue)
	}
}

func TestReturnStatements(t *testing.T) {
	tests := []struct {
		input         string
		expectedValue interface{}
	}{
		{"return 5;", int64(5)},
		{"return true;", true},
		{"return foobar;", "foobar"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		require.Len(t, program.Statements, 1)

		stmt, ok := program.Statements[0].(*ReturnStatement)
		require.True(t, ok)
		assert.Equal(t, "return", stmt.TokenLiteral())
		testLiteralExpression(t, stmt.ReturnValue, tt.expectedValue)
	}
}

func TestOperatorPrecedenceParsing(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"a + b + c", "((a + b) + c)"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b * c", "((a * b) * c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a + b / c", "(a + (b / c))"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"5 > 4 == 3 < 4", "((5 > 4) == (3 < 4))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"true", "true"},
		{"false", "false"},
		{"3 > 5 == false", "((3 > 5) == false)"},
		{"1 + (2 + 3) + 4", "((1 + (2 + 3)) + 4)"},
		{"(5 + 5) * 2", "((5 + 5) * 2)"},
		{"-(5 + 5)", "(-(5 + 5))"},
		{"!(true == true)", "(!(true == true))"},
		{"a + add(b * c) + d", "((a + add((b * c))) + d)"},
		{"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))", "add(a, b, 1, (2 * 3), (4 + 5), add(6, (7 * 8)))"},
		{"add(a + b + c * d / f + g)", "add((((a + b) + ((c * d) / f)) + g))"},
		{"a * [1, 2, 3, 4][b * c] * d", "((a * ([1, 2, 3, 4][(b * c)])) * d)"},
		{"add(a * b[2], b[1], 2 * [1, 2][1])", "add((a * (b[2])), (b[1]), (2 * ([1, 2][1])))"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		assert.Equal(t, tt.expected, program.String())
	}
}

func TestIfExpression(t *testing.T) {
	program := parseProgram(t, "if (x < y) { x }")
	require.Len(t, program.Statements, 1)

	stmt := program.Statements[0].(*ExpressionStatement)
	expr, ok := stmt.Expression.(*IfExpression)
	require.True(t, ok)

	testInfixExpression(t, expr.Condition, "x", "<", "y")
	require.Len(t, expr.Consequence.Statements, 1)
	assert.Nil(t, expr.Alternative)
}

func TestIfElseExpression(t *testing.T) {
	program := parseProgram(t, "if (x < y) { x } else { y }")
	stmt := program.Statements[0].(*ExpressionStatement)
	expr := stmt.Expression.(*IfExpression)

	require.NotNil(t, expr.Alternative)
	require.Len(t, expr.Alternative.Statements, 1)
}

func TestFunctionLiteralParsing(t *testing.T) {
	program := parseProgram(t, "fn(x, y) { x + y; }")
	stmt := program.Statements[0].(*ExpressionStatement)
	fn, ok := stmt.Expression.(*FunctionLiteral)
	require.True(t, ok)

	require.Len(t, fn.Parameters, 2)
	assert.Equal(t, "x", fn.Parameters[0].Value)
	assert.Equal(t, "y", fn.Parameters[1].Value)
	require.Len(t, fn.Body.Statements, 1)
}

func TestFunctionParameterParsing(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"fn() {};", []string{}},
		{"fn(x) {};", []string{"x"}},
		{"fn(x, y, z) {};", []string{"x", "y", "z"}},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		stmt := program.Statements[0].(*ExpressionStatement)
		fn := stmt.Expression.(*FunctionLiteral)

		require.Len(t, fn.Parameters, len(tt.expected))
		for i, name := range tt.expected {
			assert.Equal(t, name, fn.Parameters[i].Value)
		}
	}
}

func TestCallExpressionParsing(t *testing.T) {
	program := parseProgram(t, "add(1, 2 * 3, 4 + 5);")
	stmt := program.Statements[0].(*ExpressionStatement)
	call, ok := stmt.Expression.(*CallExpression)
	require.True(t, ok)

	testIdentifier(t, call.Function, "add")
	require.Len(t, call.Arguments, 3)
	testLiteralExpression(t, call.Arguments[0], int64(1))
	testInfixExpression(t, call.Arguments[1], int64(2), "*", int64(3))
	testInfixExpression(t, call.Arguments[2], int64(4), "+", int64(5))
}

func TestStringLiteralExpression(t *testing.T) {
	program := parseProgram(t, `"hello world";`)
	stmt := program.Statements[0].(*ExpressionStatement)
	lit, ok := stmt.Expression.(*StringLiteral)
	require.True(t, ok)
	assert.Equal(t, "hello world", lit.Value)
}

func TestArrayLiteralParsing(t *testing.T) {
	program := parseProgram(t, "[1, 2 * 2, 3 + 3]")
	stmt := program.Statements[0].(*ExpressionStatement)
	arr, ok := stmt.Expression.(*ArrayLiteral)
	require.True(t, ok)
	require.Len(t, arr.Elements, 3)

	testIntegerLiteral(t, arr.Elements[0], 1)
	testInfixExpression(t, arr.Elements[1], int64(2), "*", int64(2))
	testInfixExpression(t, arr.Elements[2], int64(3), "+", int64(3))
}

func TestIndexExpressionParsing(t *testing.T) {
	program := parseProgram(t, "myArray[1 + 1]")
	stmt := program.Statements[0].(*ExpressionStatement)
	idx, ok := stmt.Expression.(*IndexExpression)
	require.True(t, ok)

	testIdentifier(t, idx.Left, "myArray")
	testInfixExpression(t, idx.Index, int64(1), "+", int64(1))
}

func TestHashLiteralsStringKeys(t *testing.T) {
	program := parseProgram(t, `{"one": 1, "two": 2, "three": 3}`)
	stmt := program.Statements[0].(*ExpressionStatement)
	hash, ok := stmt.Expression.(*HashLiteral)
	require.True(t, ok)
	require.Len(t, hash.Pairs, 3)

	expected := map[string]int64{"one": 1, "two": 2, "three": 3}
	for _, pair := range hash.Pairs {
		key, ok := pair.Key.(*StringLiteral)
		require.True(t, ok)
		testIntegerLiteral(t, pair.Value, expected[key.Value])
	}
}

func TestHashLiteralsEmpty(t *testing.T) {
	program := parseProgram(t, "{}")
	stmt := program.Statements[0].(*ExpressionStatement)
	hash := stmt.Expression.(*HashLiteral)
	assert.Empty(t, hash.Pairs)
}

func TestParserErrorRecovery(t *testing.T) {
	p := New(lexer.New("let = 5; let y = 10;"))
	program := p.ParseProgram()
	require.NotEmpty(t, p.Errors())
	// The parser still produces a program and continues past the bad statement.
	assert.NotNil(t, program)
}

// --- shared literal-testing helpers, in the teacher's table-test style ---

func testIntegerLiteral(t *testing.T, expr Expression, value int64) {
	t.Helper()
	il, ok := expr.(*IntegerLiteral)
	require.True(t, ok)
	assert.Equal(t, value, il.Value)
	assert.Equal(t, fmt.Sprintf("%d", value), il.TokenLiteral())
}

func testIdentifier(t *testing.T, expr Expression, value string) {
	t.Helper()
	ident, ok := expr.(*Identifier)
	require.True(t, ok)
	assert.Equal(t, value, ident.Value)
	assert.Equal(t, value, ident.TokenLiteral())
}

func testBooleanLiteral(t *testing.T, expr Expression, value bool) {
	t.Helper()
	b, ok := expr.(*Boolean)
	require.True(t, ok)
	assert.Equal(t, value, b.Value)
}

func testLiteralExpression(t *testing.T, expr Expression, expected interface{}) {
	t.Helper()
	switch v := expected.(type) {
	case int:
		testIntegerLiteral(t, expr, int64(v))
	case int64:
		testIntegerLiteral(t, expr, v)
	case string:
		testIdentifier(t, expr, v)
	case bool:
		testBooleanLiteral(t, expr, v)
	default:
		t.Fatalf("unhandled expected literal type %T", expected)
	}
}

func testInfixExpression(t *testing.T, expr Expression, left interface{}, operator string, right interface{}) {
	t.Helper()
	infix, ok := expr.(*InfixExpression)
	require.True(t, ok)
	testLiteralExpression(t, infix.Left, left)
	assert.Equal(t, operator, infix.Operator)
	testLiteralExpression(t, infix.Right, right)
}
