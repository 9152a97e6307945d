package sql

import (
	"fmt"
	"strings"
)

// TokenKind classifies a lexed token.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenWord
	TokenString
	TokenOperator
	TokenLParen
	TokenRParen
	TokenComma
	TokenStar
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "end of command"
	case TokenWord:
		return "word"
	case TokenString:
		return "string"
	case TokenOperator:
		return "operator"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	case TokenComma:
		return "','"
	case TokenStar:
		return "'*'"
	default:
		return "unknown"
	}
}

// Token is one lexeme. Pos and End are byte offsets into the source, so a
// parser can recover the exact original text spanned by several tokens.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int
	End  int
}

// IsKeyword reports whether the token is the word kw, ignoring case.
func (t Token) IsKeyword(kw string) bool {
	return t.Kind == TokenWord && strings.EqualFold(t.Text, kw)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isOperatorChar(c byte) bool {
	return c == '=' || c == '!' || c == '<' || c == '>'
}

func isQuote(c byte) bool {
	return c == '\'' || c == '"'
}

// isWordChar reports whether c can continue a word. Quotes are allowed
// inside a word (O'Brien) but only open a string at the start of a token.
func isWordChar(c byte) bool {
	switch c {
	case '(', ')', ',', '*':
		return false
	}
	return !isSpace(c) && !isOperatorChar(c)
}

// Lex splits a command into a flat token sequence terminated by a TokenEOF.
//
// A quote at the start of a token opens a string ('...' or "...") that becomes
// a single TokenString whose Text keeps the quotes. A quote inside a word, as
// in O'Brien, is part of that word. A run of =, !, < and > becomes one
// TokenOperator, so "==" and "!=" arrive whole and unknown operators such as
// "<=" can be reported by name.
func Lex(src string) ([]Token, error) {
	var toks []Token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case isSpace(c):
			i++
		case c == '(':
			toks = append(toks, Token{Kind: TokenLParen, Text: "(", Pos: i, End: i + 1})
			i++
		case c == ')':
			toks = append(toks, Token{Kind: TokenRParen, Text: ")", Pos: i, End: i + 1})
			i++
		case c == ',':
			toks = append(toks, Token{Kind: TokenComma, Text: ",", Pos: i, End: i + 1})
			i++
		case c == '*':
			toks = append(toks, Token{Kind: TokenStar, Text: "*", Pos: i, End: i + 1})
			i++
		case isQuote(c):
			end := strings.IndexByte(src[i+1:], c)
			if end == -1 {
				return nil, fmt.Errorf("%w: unterminated string starting at offset %d", ErrMalformedCommand, i)
			}
			end += i + 2
			toks = append(toks, Token{Kind: TokenString, Text: src[i:end], Pos: i, End: end})
			i = end
		case isOperatorChar(c):
			start := i
			for i < len(src) && isOperatorChar(src[i]) {
				i++
			}
			toks = append(toks, Token{Kind: TokenOperator, Text: src[start:i], Pos: start, End: i})
		default:
			start := i
			for i < len(src) && isWordChar(src[i]) {
				i++
			}
			toks = append(toks, Token{Kind: TokenWord, Text: src[start:i], Pos: start, End: i})
		}
	}
	toks = append(toks, Token{Kind: TokenEOF, Pos: len(src), End: len(src)})
	return toks, nil
}
