/*
File    : monkey/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package parser turns a Lexer's token stream into an *ast.Program. It
combines straightforward recursive descent for statements with a Pratt
(top-down operator precedence) parser for expressions: every token
kind that can start an expression registers a prefixParseFn, and every
token kind that can continue one registers an infixParseFn, whose
binding power comes from the precedences table.

Parsing never panics. Every failure is appended to the parser's error
list (read with GetErrors) as a human-readable string and the parser
keeps going, producing a partial AST; evaluation should not be
attempted when HasErrors reports true.
*/
package parser

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/monkey/ast"
	"github.com/akashmaji946/monkey/lexer"
)

// Operator precedence, strictly increasing. Higher binds tighter.
const (
	_ int = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // < >
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x !x
	CALL        // fn(x)
	INDEX       // arr[x]
)

// precedences maps a token kind to its left-binding power when it
// appears as an infix operator. Anything absent from this table binds
// at LOWEST, which is how parseExpression knows to stop.
var precedences = map[lexer.TokenType]int{
	lexer.EQ_OP:        EQUALS,
	lexer.NOT_EQ_OP:    EQUALS,
	lexer.LT_OP:        LESSGREATER,
	lexer.GT_OP:        LESSGREATER,
	lexer.PLUS_OP:      SUM,
	lexer.MINUS_OP:     SUM,
	lexer.SLASH_OP:     PRODUCT,
	lexer.ASTERISK_OP:  PRODUCT,
	lexer.LEFT_PAREN:   CALL,
	lexer.LEFT_BRACKET: INDEX,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser holds the token cursor (cur, peek) and the Pratt dispatch
// tables. Construct with New; the cursor is already primed with the
// first two tokens.
type Parser struct {
	lex *lexer.Lexer

	cur  lexer.Token
	peek lexer.Token

	errors []string

	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn
}

// New builds a Parser over lex, registers every prefix/infix handler,
// and advances twice so cur and peek both hold real tokens.
func New(lex *lexer.Lexer) *Parser {
	p := &Parser{lex: lex}

	p.prefixParseFns = map[lexer.TokenType]prefixParseFn{
		lexer.IDENTIFIER_ID: p.parseIdentifier,
		lexer.INT_LIT:       p.parseIntegerLiteral,
		lexer.STRING_LIT:    p.parseStringLiteral,
		lexer.BANG_OP:       p.parsePrefixExpression,
		lexer.MINUS_OP:      p.parsePrefixExpression,
		lexer.TRUE_KEY:      p.parseBoolean,
		lexer.FALSE_KEY:     p.parseBoolean,
		lexer.LEFT_PAREN:    p.parseGroupedExpression,
		lexer.IF_KEY:        p.parseIfExpression,
		lexer.FUNCTION_KEY:  p.parseFunctionLiteral,
		lexer.LEFT_BRACKET:  p.parseArrayLiteral,
		lexer.LEFT_BRACE:    p.parseHashLiteral,
	}

	p.infixParseFns = map[lexer.TokenType]infixParseFn{
		lexer.PLUS_OP:      p.parseInfixExpression,
		lexer.MINUS_OP:     p.parseInfixExpression,
		lexer.SLASH_OP:     p.parseInfixExpression,
		lexer.ASTERISK_OP:  p.parseInfixExpression,
		lexer.EQ_OP:        p.parseInfixExpression,
		lexer.NOT_EQ_OP:    p.parseInfixExpression,
		lexer.LT_OP:        p.parseInfixExpression,
		lexer.GT_OP:        p.parseInfixExpression,
		lexer.LEFT_PAREN:   p.parseCallExpression,
		lexer.LEFT_BRACKET: p.parseIndexExpression,
	}

	p.advance()
	p.advance()
	return p
}

// GetErrors returns every parse error collected so far, in source order.
func (p *Parser) GetErrors() []string { return p.errors }

// HasErrors reports whether any parse error was recorded.
func (p *Parser) HasErrors() bool { return len(p.errors) > 0 }

func (p *Parser) addError(format string, a ...interface{}) {
	p.errors = append(p.errors, fmt.Sprintf(format, a...))
}

// advance shifts peek into cur and pulls a fresh token from the lexer
// into peek.
func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

func (p *Parser) curTokenIs(t lexer.TokenType) bool { return p.cur.Type == t }
func (p *Parser) peekTokenIs(t lexer.TokenType) bool { return p.peek.Type == t }

// expectPeek checks peek against t; on match it advances and returns
// true. On mismatch it records the standard "expected next token"
// error and returns false without advancing, leaving the cursor where
// the caller can decide how to recover.
func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekTokenIs(t) {
		p.advance()
		return true
	}
	p.addError("Expected next token to be %s, got %s instead.", t, p.peek.Type)
	return false
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peek.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.cur.Type]; ok {
		return pr
	}
	return LOWEST
}

// ParseProgram consumes every token up to EOF and returns the
// resulting Program. Parse failures land in p.errors, not in a panic.
// A let statement missing its name or '=' is omitted from the result;
// other failed statements stay in it with a nil or partial expression.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{Statements: []ast.Statement{}}

	for !p.curTokenIs(lexer.EOF_TYPE) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.advance()
	}
	return program
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Type {
	case lexer.LET_KEY:
		return p.parseLetStatement()
	case lexer.RETURN_KEY:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: p.cur}

	if !p.expectPeek(lexer.IDENTIFIER_ID) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.cur, Value: p.cur.Literal}

	if !p.expectPeek(lexer.ASSIGN_OP) {
		return nil
	}

	p.advance()
	stmt.Value = p.parseExpression(LOWEST)

	if fl, ok := stmt.Value.(*ast.FunctionLiteral); ok {
		fl.Name = stmt.Name.Value
	}

	if p.peekTokenIs(lexer.SEMICOLON_DELIM) {
		p.advance()
	}
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.cur}

	p.advance()
	stmt.ReturnValue = p.parseExpression(LOWEST)

	if p.peekTokenIs(lexer.SEMICOLON_DELIM) {
		p.advance()
	}
	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.cur}
	stmt.Expression = p.parseExpression(LOWEST)

	if p.peekTokenIs(lexer.SEMICOLON_DELIM) {
		p.advance()
	}
	return stmt
}

// parseBlockStatement consumes statements until '}' or EOF. A missing
// closing brace stops at EOF and records an error rather than looping
// forever, which is how the source this parser is descended from
// actually behaved.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.cur, Statements: []ast.Statement{}}

	p.advance()

	for !p.curTokenIs(lexer.RIGHT_BRACE) && !p.curTokenIs(lexer.EOF_TYPE) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.advance()
	}

	if !p.curTokenIs(lexer.RIGHT_BRACE) {
		p.addError("Expected next token to be %s, got %s instead.", lexer.RIGHT_BRACE, p.cur.Type)
	}
	return block
}

// parseExpression is the Pratt core: find a prefix handler for cur,
// call it, then keep absorbing infix operators whose precedence beats
// rbp (the caller's right-binding power). Equal-precedence operators
// do NOT get absorbed (rbp < peekPrecedence, not <=), which is what
// makes left-associative chains left-associative.
func (p *Parser) parseExpression(rbp int) ast.Expression {
	prefix, ok := p.prefixParseFns[p.cur.Type]
	if !ok {
		p.addError("No prefix parse function for %s found", p.cur.Type)
		return nil
	}
	left := prefix()

	for !p.peekTokenIs(lexer.SEMICOLON_DELIM) && rbp < p.peekPrecedence() {
		infix, ok := p.infixParseFns[p.peek.Type]
		if !ok {
			return left
		}
		p.advance()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.cur, Value: p.cur.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: p.cur}

	value, err := strconv.ParseInt(p.cur.Literal, 10, 64)
	if err != nil {
		p.addError("Could not parse '%s' as integer", p.cur.Literal)
		return nil
	}
	lit.Value = value
	return lit
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.cur, Value: p.cur.Literal}
}

func (p *Parser) parseBoolean() ast.Expression {
	return &ast.Boolean{Token: p.cur, Value: p.curTokenIs(lexer.TRUE_KEY)}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.advance()
	exp := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RIGHT_PAREN) {
		return nil
	}
	return exp
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	exp := &ast.PrefixExpression{Token: p.cur, Operator: p.cur.Literal}
	p.advance()
	exp.Right = p.parseExpression(PREFIX)
	return exp
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	exp := &ast.InfixExpression{Token: p.cur, Operator: p.cur.Literal, Left: left}
	precedence := p.curPrecedence()
	p.advance()
	exp.Right = p.parseExpression(precedence)
	return exp
}

func (p *Parser) parseIfExpression() ast.Expression {
	exp := &ast.IfExpression{Token: p.cur}

	if !p.expectPeek(lexer.LEFT_PAREN) {
		return nil
	}
	p.advance()
	exp.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(lexer.RIGHT_PAREN) {
		return nil
	}
	if !p.expectPeek(lexer.LEFT_BRACE) {
		return nil
	}
	exp.Consequence = p.parseBlockStatement()

	if p.peekTokenIs(lexer.ELSE_KEY) {
		p.advance()
		if !p.expectPeek(lexer.LEFT_BRACE) {
			return nil
		}
		exp.Alternative = p.parseBlockStatement()
	}
	return exp
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	lit := &ast.FunctionLiteral{Token: p.cur}

	if !p.expectPeek(lexer.LEFT_PAREN) {
		return nil
	}
	lit.Parameters = p.parseFunctionParameters()

	if !p.expectPeek(lexer.LEFT_BRACE) {
		return nil
	}
	lit.Body = p.parseBlockStatement()
	return lit
}

func (p *Parser) parseFunctionParameters() []*ast.Identifier {
	identifiers := []*ast.Identifier{}

	if p.peekTokenIs(lexer.RIGHT_PAREN) {
		p.advance()
		return identifiers
	}

	p.advance()
	identifiers = append(identifiers, &ast.Identifier{Token: p.cur, Value: p.cur.Literal})

	for p.peekTokenIs(lexer.COMMA_DELIM) {
		p.advance()
		p.advance()
		identifiers = append(identifiers, &ast.Identifier{Token: p.cur, Value: p.cur.Literal})
	}

	if !p.expectPeek(lexer.RIGHT_PAREN) {
		return nil
	}
	return identifiers
}
