package filter

import (
	"fmt"

	"github.com/qscaffold/qscaffold/internal/answers"
)

// Parse compiles an expression such as
//
//	preset.lint && preset.typescript && lintConfig === 'prettier'
//
// Precedence from lowest to highest is ||, &&, !, then comparison.
// An empty expression is a syntax error.
func Parse(src string) (Expr, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{src: src, toks: toks}
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, p.errorf(tok, "unexpected %s", describe(tok))
	}
	return expr, nil
}

// MustParse is like Parse but panics on error. It is meant for expressions
// that are fixed at compile time.
func MustParse(src string) Expr {
	e, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return e
}

type parser struct {
	src  string
	toks []token
	pos  int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	tok := p.toks[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) errorf(tok token, format string, args ...interface{}) error {
	return &SyntaxError{Source: p.src, Pos: tok.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) parseOr() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokOr {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = Or{L: left, R: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokAnd {
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = And{L: left, R: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (Expr, error) {
	if p.peek().kind == tokNot {
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Not{X: x}, nil
	}
	return p.parseCompare()
}

func (p *parser) parseCompare() (Expr, error) {
	left, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	tok := p.peek()
	if tok.kind != tokEq && tok.kind != tokNeq {
		return left, nil
	}
	p.next()
	lop, ok := left.(operand)
	if !ok {
		return nil, p.errorf(tok, "left side of %s must be a key or literal", tok.text)
	}
	right, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	rop, ok := right.(operand)
	if !ok {
		return nil, p.errorf(tok, "right side of %s must be a key or literal", tok.text)
	}
	return Compare{Left: lop, Right: rop, Negate: tok.kind == tokNeq}, nil
}

func (p *parser) parseOperand() (Expr, error) {
	tok := p.next()
	switch tok.kind {
	case tokLParen:
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, p.errorf(closing, "expected ')' but found %s", describe(closing))
		}
		return inner, nil
	case tokString:
		return Literal{Value: answers.String(tok.text)}, nil
	case tokIdent:
		switch tok.text {
		case "true":
			return Literal{Value: answers.Bool(true)}, nil
		case "false":
			return Literal{Value: answers.Bool(false)}, nil
		}
		path := []string{tok.text}
		for p.peek().kind == tokDot {
			p.next()
			seg := p.next()
			if seg.kind != tokIdent {
				return nil, p.errorf(seg, "expected key after '.' but found %s", describe(seg))
			}
			path = append(path, seg.text)
		}
		return Ref{Path: path}, nil
	default:
		return nil, p.errorf(tok, "expected key, literal or '(' but found %s", describe(tok))
	}
}

func describe(tok token) string {
	if tok.kind == tokIdent || tok.kind == tokString {
		return fmt.Sprintf("%s %q", tok.kind, tok.text)
	}
	return tok.kind.String()
}
