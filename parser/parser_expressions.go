/*
File    : monkey/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

The call/array/index/hash productions share one shape - a delimiter-
separated list terminated by a closing token - so parseExpressionList
is factored out and reused by array literals and call arguments.
*/
package parser

import (
	"github.com/akashmaji946/monkey/ast"
	"github.com/akashmaji946/monkey/lexer"
)

func (p *Parser) parseExpressionList(end lexer.TokenType) []ast.Expression {
	list := []ast.Expression{}

	if p.peekTokenIs(end) {
		p.advance()
		return list
	}

	p.advance()
	list = append(list, p.parseExpression(LOWEST))

	for p.peekTokenIs(lexer.COMMA_DELIM) {
		p.advance()
		p.advance()
		list = append(list, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(end) {
		return nil
	}
	return list
}

func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	exp := &ast.CallExpression{Token: p.cur, Function: function}
	exp.Arguments = p.parseExpressionList(lexer.RIGHT_PAREN)
	return exp
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	arr := &ast.ArrayLiteral{Token: p.cur}
	arr.Elements = p.parseExpressionList(lexer.RIGHT_BRACKET)
	return arr
}

func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	exp := &ast.IndexExpression{Token: p.cur, Left: left}

	p.advance()
	exp.Index = p.parseExpression(LOWEST)

	if !p.expectPeek(lexer.RIGHT_BRACKET) {
		return nil
	}
	return exp
}

// parseHashLiteral reads `{ key : value (, key : value)* }`. A trailing
// comma before '}' is not allowed: after each pair the next token must
// be ',' or the closing brace.
func (p *Parser) parseHashLiteral() ast.Expression {
	hash := &ast.HashLiteral{
		Token: p.cur,
		Pairs: make(map[ast.Expression]ast.Expression),
		Order: []ast.Expression{},
	}

	for !p.peekTokenIs(lexer.RIGHT_BRACE) {
		p.advance()
		key := p.parseExpression(LOWEST)

		if !p.expectPeek(lexer.COLON_DELIM) {
			return nil
		}

		p.advance()
		value := p.parseExpression(LOWEST)

		hash.Pairs[key] = value
		hash.Order = append(hash.Order, key)

		if !p.peekTokenIs(lexer.RIGHT_BRACE) && !p.expectPeek(lexer.COMMA_DELIM) {
			return nil
		}
		if p.curTokenIs(lexer.COMMA_DELIM) && p.peekTokenIs(lexer.RIGHT_BRACE) {
			p.addError("Unexpected %s after %s in hash literal", lexer.RIGHT_BRACE, lexer.COMMA_DELIM)
			return nil
		}
	}

	if !p.expectPeek(lexer.RIGHT_BRACE) {
		return nil
	}
	return hash
}
