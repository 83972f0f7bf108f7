// Package parser reads the parenthesized tree notation into syntax
// nodes. It is the reader for the engine's own interchange form, not a
// source-language parser.
package parser

import (
	"errors"

	"github.com/defuture-io/defuture/syntax"
	"github.com/defuture-io/defuture/token"
	"github.com/defuture-io/defuture/utils"
)

type Parser struct {
	tokens  []token.Token
	current int
	err     error
}

func NewParser(tokens []token.Token) *Parser {
	return &Parser{tokens, 0, nil}
}

// ParseNode parses a single tree.
func (p *Parser) ParseNode() (syntax.Node, error) {
	p.err = nil
	node := p.node()

	return node, p.err
}

// ParseProgram parses trees until the end of input.
func (p *Parser) ParseProgram() ([]syntax.Node, error) {
	p.err = nil
	nodes := []syntax.Node{}
	for !p.IsAtEnd() {
		nodes = append(nodes, p.node())
	}

	return nodes, p.err
}

// node = "(" head form ")" ;
func (p *Parser) node() syntax.Node {
	if !p.match(token.LEFTPAREN) {
		p.recover(unexpectedToken(p.peek(), token.LEFTPAREN.String()))
		bad := p.peek()
		p.advance()

		return &syntax.Var{Name: bad}
	}
	p.consume(token.LEFTPAREN)
	head := p.consume(token.IDENT)

	var n syntax.Node
	switch head.Lexeme {
	case "var":
		n = &syntax.Var{Name: p.consume(token.IDENT)}
	case "literal":
		n = p.literal()
	case "access":
		n = &syntax.Access{Receiver: p.node(), Name: p.consume(token.IDENT)}
	case "call":
		n = p.call()
	case "lambda":
		n = p.lambda()
	case "block":
		n = p.block()
	case "let":
		name := p.consume(token.IDENT)
		n = &syntax.Let{Name: name, Expr: p.node()}
	case "return":
		n = &syntax.Return{Value: p.node()}
	case "throw":
		n = &syntax.Throw{Value: p.node()}
	case "if":
		n = p.ifNode()
	case "binary":
		left := p.node()
		op := p.consume(token.OPERATOR)
		n = &syntax.Binary{Left: left, Op: op, Right: p.node()}
	default:
		p.recover(utils.ErrorAt{Where: head, Err: UnknownFormError{Head: head.Lexeme}})
		p.skipForm()

		return &syntax.Var{Name: head}
	}
	p.consume(token.RIGHTPAREN)

	return n
}

// literal = INTEGER | STRING ;
func (p *Parser) literal() syntax.Node {
	if p.match(token.INTEGER) || p.match(token.STRING) {
		return &syntax.Literal{Token: p.advance()}
	}
	p.recover(unexpectedToken(p.peek(), token.INTEGER.String(), token.STRING.String()))

	return &syntax.Literal{Token: p.peek()}
}

// call = node node* ;
func (p *Parser) call() syntax.Node {
	fn := p.node()
	args := []syntax.Node{}
	for !p.match(token.RIGHTPAREN) && !p.IsAtEnd() {
		args = append(args, p.node())
	}

	return &syntax.Call{Fn: fn, Args: args}
}

// lambda = "(" IDENT* ")" node ;
func (p *Parser) lambda() syntax.Node {
	p.consume(token.LEFTPAREN)
	var params []token.Token
	for p.match(token.IDENT) {
		params = append(params, p.advance())
	}
	p.consume(token.RIGHTPAREN)

	return &syntax.Lambda{Params: params, Body: p.node()}
}

// block = node* ;
func (p *Parser) block() syntax.Node {
	stmts := []syntax.Node{}
	for !p.match(token.RIGHTPAREN) && !p.IsAtEnd() {
		stmts = append(stmts, p.node())
	}

	return &syntax.Block{Stmts: stmts}
}

// if = node node node? ;
func (p *Parser) ifNode() syntax.Node {
	cond := p.node()
	then := p.node()
	var els syntax.Node
	if !p.match(token.RIGHTPAREN) && !p.IsAtEnd() {
		els = p.node()
	}

	return &syntax.If{Cond: cond, Then: then, Else: els}
}

// skipForm consumes tokens up to and including the RIGHTPAREN that
// closes the already-opened form, so parsing can continue after an
// unknown head.
func (p *Parser) skipForm() {
	depth := 1
	for depth > 0 && !p.IsAtEnd() {
		switch p.advance().Kind {
		case token.LEFTPAREN:
			depth++
		case token.RIGHTPAREN:
			depth--
		}
	}
}

func (p *Parser) recover(err error) {
	p.err = errors.Join(err, p.err)
}

func (p Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) advance() token.Token {
	if p.IsAtEnd() {
		return p.peek()
	}
	p.current++

	return p.previous()
}

func (p Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p Parser) IsAtEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p Parser) match(kind token.Kind) bool {
	if p.IsAtEnd() {
		return false
	}

	return p.peek().Kind == kind
}

func (p *Parser) consume(kind token.Kind) token.Token {
	if p.match(kind) {
		return p.advance()
	}

	p.recover(unexpectedToken(p.peek(), kind.String()))

	return p.peek()
}

type UnexpectedTokenError struct {
	Expected []string
}

func (e UnexpectedTokenError) Error() string {
	var msg string
	if len(e.Expected) >= 1 {
		msg = e.Expected[0]
	}

	for _, ex := range e.Expected[1:] {
		msg = msg + ", " + ex
	}

	return "unexpected token: expected " + msg
}

type UnknownFormError struct {
	Head string
}

func (e UnknownFormError) Error() string {
	return "unknown form: " + e.Head
}

func unexpectedToken(t token.Token, expected ...string) error {
	return utils.ErrorAt{Where: t, Err: UnexpectedTokenError{Expected: expected}}
}
