// Package lexer tokenizes stack-language source text into a flat sequence
// of token.Token values for the parser to consume.
//
// The lexical grammar is small: whitespace-separated words,
// '#'-to-end-of-line comments, integer literals, and double-quoted string
// literals with a tiny escape set.
package lexer

import (
	"fmt"
	"go/scanner"
	"strconv"
	"strings"

	"github.com/mna/stackasm/lang/token"
)

// Lex tokenizes src, returning the full token sequence (terminated by an
// EOF token) or a scanner.ErrorList describing every lexical error found.
// filename is used only to annotate error positions.
func Lex(src []byte, filename string) ([]token.Token, error) {
	l := &lexer{src: src, filename: filename, line: 1, col: 1}
	var toks []token.Token
	for {
		tok := l.next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	if len(l.errs) == 0 {
		return toks, nil
	}
	return toks, l.errs.Err()
}

type lexer struct {
	src      []byte
	filename string
	off      int
	line     int
	col      int
	errs     scanner.ErrorList
}

func (l *lexer) errorf(pos token.Pos, format string, args ...any) {
	l.errs.Add(pos.Position(l.filename), fmt.Sprintf(format, args...))
}

func (l *lexer) peekByte() byte {
	if l.off >= len(l.src) {
		return 0
	}
	return l.src[l.off]
}

func (l *lexer) advance() byte {
	b := l.src[l.off]
	l.off++
	if b == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return b
}

func (l *lexer) pos() token.Pos {
	return token.MakePos(l.line, l.col)
}

func (l *lexer) skipWhitespaceAndComments() {
	for l.off < len(l.src) {
		b := l.peekByte()
		switch {
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			l.advance()
		case b == '#':
			for l.off < len(l.src) && l.peekByte() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

// next scans and returns the following token.
func (l *lexer) next() token.Token {
	l.skipWhitespaceAndComments()
	if l.off >= len(l.src) {
		return token.Token{Kind: token.EOF, Pos: l.pos()}
	}

	pos := l.pos()
	if l.peekByte() == '"' {
		return l.scanString(pos)
	}

	start := l.off
	for l.off < len(l.src) {
		b := l.peekByte()
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '#' || b == '"' {
			break
		}
		l.advance()
	}
	word := string(l.src[start:l.off])
	return l.classify(word, pos)
}

func (l *lexer) scanString(pos token.Pos) token.Token {
	l.advance() // opening quote
	var sb strings.Builder
	closed := false
	for l.off < len(l.src) {
		b := l.peekByte()
		if b == '"' {
			l.advance()
			closed = true
			break
		}
		if b == '\\' {
			l.advance()
			if l.off >= len(l.src) {
				break
			}
			esc := l.advance()
			switch esc {
			case '"':
				sb.WriteByte('"')
			case 'n':
				sb.WriteByte('\n')
			case '\\':
				sb.WriteByte('\\')
			default:
				l.errorf(pos, "unsupported escape sequence '\\%c' in string literal", esc)
				sb.WriteByte(esc)
			}
			continue
		}
		if b == '\n' {
			break
		}
		sb.WriteByte(l.advance())
	}
	if !closed {
		l.errorf(pos, "unterminated string literal")
	}
	return token.Token{Kind: token.STRING, Literal: sb.String(), Pos: pos}
}

func (l *lexer) classify(word string, pos token.Pos) token.Token {
	if kind, ok := token.Lookup(word); ok {
		return token.Token{Kind: kind, Literal: word, Pos: pos}
	}
	if isIntegerLiteral(word) {
		if _, err := strconv.ParseInt(word, 10, 64); err != nil {
			l.errorf(pos, "integer literal %q out of range", word)
		}
		return token.Token{Kind: token.INT, Literal: word, Pos: pos}
	}
	return token.Token{Kind: token.IDENT, Literal: word, Pos: pos}
}

// isIntegerLiteral reports whether word matches -?[0-9]+.
func isIntegerLiteral(word string) bool {
	if word == "" {
		return false
	}
	i := 0
	if word[0] == '-' {
		i = 1
	}
	if i == len(word) {
		return false
	}
	for ; i < len(word); i++ {
		if word[i] < '0' || word[i] > '9' {
			return false
		}
	}
	return true
}
