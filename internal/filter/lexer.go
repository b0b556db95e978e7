package filter

import (
	"fmt"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokDot
	tokNot
	tokAnd
	tokOr
	tokEq
	tokNeq
	tokLParen
	tokRParen
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of expression"
	case tokIdent:
		return "identifier"
	case tokString:
		return "string"
	case tokDot:
		return "'.'"
	case tokNot:
		return "'!'"
	case tokAnd:
		return "'&&'"
	case tokOr:
		return "'||'"
	case tokEq:
		return "'==='"
	case tokNeq:
		return "'!=='"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	}
	return "token"
}

type token struct {
	kind tokenKind
	text string
	pos  int // 1-based column
}

// lex splits src into tokens. Both === and == (and !== / !=) are accepted.
func lex(src string) ([]token, error) {
	var toks []token
	runes := []rune(src)
	i := 0
	for i < len(runes) {
		r := runes[i]
		pos := i + 1
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '(':
			toks = append(toks, token{tokLParen, "(", pos})
			i++
		case r == ')':
			toks = append(toks, token{tokRParen, ")", pos})
			i++
		case r == '.':
			toks = append(toks, token{tokDot, ".", pos})
			i++
		case r == '&':
			if i+1 < len(runes) && runes[i+1] == '&' {
				toks = append(toks, token{tokAnd, "&&", pos})
				i += 2
				continue
			}
			return nil, &SyntaxError{Source: src, Pos: pos, Msg: "expected '&&'"}
		case r == '|':
			if i+1 < len(runes) && runes[i+1] == '|' {
				toks = append(toks, token{tokOr, "||", pos})
				i += 2
				continue
			}
			return nil, &SyntaxError{Source: src, Pos: pos, Msg: "expected '||'"}
		case r == '=':
			n := countRun(runes[i:], '=')
			if n != 2 && n != 3 {
				return nil, &SyntaxError{Source: src, Pos: pos, Msg: "expected '===' or '=='"}
			}
			toks = append(toks, token{tokEq, string(runes[i : i+n]), pos})
			i += n
		case r == '!':
			n := countRun(runes[i+1:], '=')
			switch n {
			case 0:
				toks = append(toks, token{tokNot, "!", pos})
				i++
			case 1, 2:
				toks = append(toks, token{tokNeq, string(runes[i : i+1+n]), pos})
				i += 1 + n
			default:
				return nil, &SyntaxError{Source: src, Pos: pos, Msg: "expected '!==' or '!='"}
			}
		case r == '\'' || r == '"':
			j := i + 1
			for j < len(runes) && runes[j] != r {
				if runes[j] == '\\' && j+1 < len(runes) {
					j++
				}
				j++
			}
			if j >= len(runes) {
				return nil, &SyntaxError{Source: src, Pos: pos, Msg: "unterminated string"}
			}
			toks = append(toks, token{tokString, unescape(runes[i+1 : j]), pos})
			i = j + 1
		case isIdentStart(r):
			j := i + 1
			for j < len(runes) && isIdentPart(runes[j]) {
				j++
			}
			toks = append(toks, token{tokIdent, string(runes[i:j]), pos})
			i = j
		default:
			return nil, &SyntaxError{Source: src, Pos: pos, Msg: fmt.Sprintf("unexpected character %q", r)}
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(runes) + 1})
	return toks, nil
}

func countRun(rs []rune, r rune) int {
	n := 0
	for n < len(rs) && rs[n] == r {
		n++
	}
	return n
}

func unescape(rs []rune) string {
	out := make([]rune, 0, len(rs))
	for i := 0; i < len(rs); i++ {
		if rs[i] == '\\' && i+1 < len(rs) {
			i++
		}
		out = append(out, rs[i])
	}
	return string(out)
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r) || r == '-'
}
