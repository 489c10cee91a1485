// Package parser builds a tart abstract syntax tree from a token stream.
//
// Grammar:
//
//	program    := expression*
//	expression := STRING | '[' expression* ']'
package parser

import (
	"github.com/ashn-dot-dev/tart/ast"
	"github.com/ashn-dot-dev/tart/parser/lexer"
	"github.com/ashn-dot-dev/tart/parser/token"
)

// Parser consumes a lexer's token stream and builds an ast.Program. The
// current token is fetched eagerly on construction; each call that parses
// an expression leaves the parser positioned on the token after it.
type Parser struct {
	lex *lexer.Lexer
	tok *token.Token
}

// New returns a Parser over the tart source src, attributed to path in
// diagnostics.
func New(path, src string) (*Parser, error) {
	p := &Parser{lex: lexer.New(path, src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// ParseProgram parses the entire token stream into a Program.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for p.tok.Type != token.EOF {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		prog.Exprs = append(prog.Exprs, expr)
	}
	return prog, nil
}

// parseExpression parses a single STRING or bracketed VectorNode. It
// requires an expression to be present; EOF or a stray ']' is an error.
func (p *Parser) parseExpression() (ast.Node, error) {
	switch p.tok.Type {
	case token.STRING:
		node := &ast.StringNode{Location: p.tok.Location, Value: p.tok.Value}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return node, nil
	case token.LBRACKET:
		return p.parseVector()
	case token.RBRACKET:
		return nil, token.Errorf(p.tok.Location, "unexpected %q", "]")
	case token.EOF:
		return nil, token.Errorf(p.tok.Location, "unexpected end of file, expected an expression")
	default:
		return nil, token.Errorf(p.tok.Location, "unexpected token")
	}
}

func (p *Parser) parseVector() (ast.Node, error) {
	loc := p.tok.Location
	if err := p.advance(); err != nil { // consume '['
		return nil, err
	}
	node := &ast.VectorNode{Location: loc}
	for {
		if p.tok.Type == token.EOF {
			return nil, token.Errorf(p.tok.Location, "unexpected end of file, expected %q", "]")
		}
		if p.tok.Type == token.RBRACKET {
			if err := p.advance(); err != nil { // consume ']'
				return nil, err
			}
			return node, nil
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		node.Elements = append(node.Elements, expr)
	}
}
