package sql

import (
	"fmt"
	"strings"
)

// parser walks the token sequence of one command.
type parser struct {
	src  string
	toks []Token
	pos  int
}

func (p *parser) peek() Token {
	return p.toks[p.pos]
}

func (p *parser) next() Token {
	t := p.toks[p.pos]
	if t.Kind != TokenEOF {
		p.pos++
	}
	return t
}

// describe renders a token for error messages.
func describe(t Token) string {
	if t.Kind == TokenEOF {
		return "end of command"
	}
	return fmt.Sprintf("%q", t.Text)
}

// expectKeyword consumes the keyword kw or fails naming it.
func (p *parser) expectKeyword(kw string) error {
	t := p.next()
	if !t.IsKeyword(kw) {
		return fmt.Errorf("%w: expected %s, got %s", ErrMalformedCommand, kw, describe(t))
	}
	return nil
}

// expect consumes a token of the given kind or fails naming it.
func (p *parser) expect(kind TokenKind) (Token, error) {
	t := p.next()
	if t.Kind != kind {
		return t, fmt.Errorf("%w: expected %s, got %s", ErrMalformedCommand, kind, describe(t))
	}
	return t, nil
}

// name consumes an identifier; what names it in the error ("table name").
func (p *parser) name(what string) (string, error) {
	t := p.next()
	if t.Kind != TokenWord {
		return "", fmt.Errorf("%w: expected %s, got %s", ErrMalformedCommand, what, describe(t))
	}
	return t.Text, nil
}

// expectEnd fails if anything follows the current position.
func (p *parser) expectEnd() error {
	t := p.peek()
	if t.Kind != TokenEOF {
		return fmt.Errorf("%w: unexpected %s", ErrMalformedCommand, describe(t))
	}
	return nil
}

// span returns the original source text covered by toks[from:to].
func (p *parser) span(from, to int) string {
	if from >= to {
		return ""
	}
	return strings.TrimSpace(p.src[p.toks[from].Pos:p.toks[to-1].End])
}

// parenList consumes "( item, item, ... )" and returns each item as the raw,
// trimmed source text between the commas. "()" yields an empty list.
func (p *parser) parenList(what string) ([]string, error) {
	if _, err := p.expect(TokenLParen); err != nil {
		return nil, fmt.Errorf("%w (%s)", err, what)
	}

	var items []string
	start := p.pos
	for {
		t := p.next()
		switch t.Kind {
		case TokenEOF:
			return nil, fmt.Errorf("%w: expected ')' to close %s", ErrMalformedCommand, what)
		case TokenLParen:
			return nil, fmt.Errorf("%w: unexpected '(' inside %s", ErrMalformedCommand, what)
		case TokenComma, TokenRParen:
			end := p.pos - 1
			item := p.span(start, end)
			if item == "" {
				if t.Kind == TokenRParen && len(items) == 0 {
					return items, nil
				}
				return nil, fmt.Errorf("%w: empty item in %s", ErrMalformedCommand, what)
			}
			items = append(items, item)
			if t.Kind == TokenRParen {
				return items, nil
			}
			start = p.pos
		}
	}
}

// parseWhere parses the optional trailing "WHERE column operator literal".
// The literal is the raw next token, quotes included.
func (p *parser) parseWhere() (*WhereExpr, error) {
	if p.peek().Kind == TokenEOF {
		return nil, nil
	}
	if err := p.expectKeyword("WHERE"); err != nil {
		return nil, err
	}

	col, err := p.name("column name in WHERE clause")
	if err != nil {
		return nil, err
	}
	op, err := p.expect(TokenOperator)
	if err != nil {
		return nil, fmt.Errorf("%w in WHERE clause", err)
	}
	lit := p.next()
	switch lit.Kind {
	case TokenWord, TokenString:
	default:
		return nil, fmt.Errorf("%w: expected literal after %q in WHERE clause, got %s", ErrMalformedCommand, op.Text, describe(lit))
	}
	if err := p.expectEnd(); err != nil {
		return nil, fmt.Errorf("%w (WHERE accepts a single comparison)", err)
	}

	return &WhereExpr{Column: col, Op: op.Text, Literal: lit.Text}, nil
}
