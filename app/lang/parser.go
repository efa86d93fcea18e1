package lang

import "strconv"

// MaxDepth bounds how deeply parentheses and unary operators may nest.
const MaxDepth = 64

// Parser holds the state for parsing a token stream.
type Parser struct {
	tokens []Token
	pos    int
	depth  int
}

// Parse parses a token slice produced by Lex into an AST.
//
// Grammar:
//
//	Exp     := Term (('+'|'-') Term)*
//	Term    := Factor (('*'|'/') Factor)*
//	Factor  := ('+'|'-') Factor | Primary
//	Primary := Number Identifier? | '(' Exp ')' Identifier?
func Parse(tokens []Token) (Node, error) {
	p := &Parser{tokens: tokens}

	node, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	// Make sure we consumed everything (except EOF)
	if tok := p.peek(); tok.Type != TOKEN_EOF {
		return nil, &SyntaxError{Col: tok.Pos, Msg: "unexpected token " + strconv.Quote(tok.Literal)}
	}
	return node, nil
}

// ParseExpression lexes and parses an expression without evaluating it.
func ParseExpression(input string) (Node, error) {
	tokens, err := Lex(input)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		end := 0
		if n := len(p.tokens); n > 0 {
			end = p.tokens[n-1].Pos
		}
		return Token{Type: TOKEN_EOF, Pos: end}
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() Token {
	t := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *Parser) enter() error {
	p.depth++
	if p.depth > MaxDepth {
		return &SyntaxError{Col: p.peek().Pos, Msg: "expression nested too deeply"}
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// parseExpression: term ( ("+" | "-") term )*
func (p *Parser) parseExpression() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.peek().Type == TOKEN_PLUSMINUS {
		op := p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: op.Literal[0], Left: left, Right: right}
	}

	return left, nil
}

// parseTerm: factor ( ("*" | "/") factor )*
func (p *Parser) parseTerm() (Node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for p.peek().Type == TOKEN_MULDIV {
		op := p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: op.Literal[0], Left: left, Right: right}
	}

	return left, nil
}

// parseFactor: ("+" | "-") factor | primary
func (p *Parser) parseFactor() (Node, error) {
	if p.peek().Type != TOKEN_PLUSMINUS {
		return p.parsePrimary()
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	op := p.advance()
	operand, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	return &UnaryExpr{Op: op.Literal[0], Operand: operand}, nil
}

// parsePrimary: number unit? | "(" expression ")" unit?
func (p *Parser) parsePrimary() (Node, error) {
	tok := p.peek()

	switch tok.Type {
	case TOKEN_NUMBER:
		return p.parseValue()

	case TOKEN_LPAREN:
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()

		p.advance() // consume '('
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if p.peek().Type != TOKEN_RPAREN {
			return nil, &SyntaxError{Col: p.peek().Pos, Msg: "expected ')'"}
		}
		p.advance() // consume ')'

		var node Node = &ParenExpr{Expr: expr}
		if p.peek().Type == TOKEN_IDENT {
			unit, err := ClassifyUnit(p.advance().Literal)
			if err != nil {
				return nil, err
			}
			node = &UnitExpr{Expr: node, Unit: unit}
		}
		return node, nil

	case TOKEN_EOF:
		return nil, &SyntaxError{Col: tok.Pos, Msg: "unexpected end of expression"}

	default:
		return nil, &SyntaxError{Col: tok.Pos, Msg: "unexpected token " + strconv.Quote(tok.Literal)}
	}
}

// parseValue: NUMBER IDENT?
func (p *Parser) parseValue() (Node, error) {
	numTok := p.advance()
	f, err := strconv.ParseFloat(numTok.Literal, 64)
	if err != nil {
		return nil, &SyntaxError{Col: numTok.Pos, Msg: "invalid number " + strconv.Quote(numTok.Literal)}
	}

	unit := Unitless
	if p.peek().Type == TOKEN_IDENT {
		unit, err = ClassifyUnit(p.advance().Literal)
		if err != nil {
			return nil, err
		}
	}
	return &ValueLit{Raw: numTok.Literal, Unit: unit, Value: f * unit.Factor()}, nil
}
