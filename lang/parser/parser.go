// Package parser turns a flat token sequence into an *ir.Program: it
// resolves structured control flow (if/do/while/end) into jump targets and
// collects function declarations into the program's function table.
//
// There is no AST: the language is a linear sequence of words, so the
// parser produces an operator sequence annotated with jump indices,
// mirroring how a one-pass assembler resolves labels.
package parser

import (
	"fmt"
	"go/scanner"
	"strconv"

	"github.com/mna/stackasm/lang/ir"
	"github.com/mna/stackasm/lang/lexer"
	"github.com/mna/stackasm/lang/token"
)

// Parse lexes and parses src into an *ir.Program. filename is used only
// to annotate error positions. The returned error, when non-nil, is a
// scanner.ErrorList.
func Parse(src []byte, filename string) (*ir.Program, error) {
	toks, err := lexer.Lex(src, filename)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, filename: filename, program: ir.NewProgram()}
	p.parseProgram()
	if len(p.errs) == 0 {
		return p.program, nil
	}
	return p.program, p.errs.Err()
}

type parser struct {
	toks     []token.Token
	pos      int
	filename string
	errs     scanner.ErrorList
	program  *ir.Program
}

func (p *parser) cur() token.Token {
	if p.pos >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[p.pos]
}

func (p *parser) advance() token.Token {
	tok := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return tok
}

func (p *parser) expect(k token.Kind) (token.Token, bool) {
	tok := p.cur()
	if tok.Kind != k {
		p.errorf(tok, "expected %s, found %s", k, tok.Kind)
		return tok, false
	}
	return p.advance(), true
}

func (p *parser) errorf(tok token.Token, format string, args ...any) {
	p.errs.Add(tok.Pos.Position(p.filename), fmt.Sprintf(format, args...))
}

// expectWord consumes the current token if it is an IDENT whose literal
// text equals word (used for the contextual `in` keyword, which the
// lexer has no dedicated Kind for).
func (p *parser) expectWord(word string) bool {
	tok := p.cur()
	if tok.Kind != token.IDENT || tok.Literal != word {
		p.errorf(tok, "expected %q, found %s", word, tok.Kind)
		return false
	}
	p.advance()
	return true
}

// parseProgram drives the top-level loop: interspersed func/extern
// declarations feed the function table, everything else accumulates into
// the program's entry-point operator sequence. Both share the same
// control-flow resolution machinery via opBuilder.
func (p *parser) parseProgram() {
	b := newOpBuilder(p)
	for p.cur().Kind != token.EOF {
		switch p.cur().Kind {
		case token.FUNC:
			p.parseFuncDecl()
		case token.EXTERN:
			p.parseExternDecl()
		default:
			b.step(p.advance())
		}
	}
	p.program.Operators = b.finish()
}

// parseBody parses the operator sequence of a function, terminated by a
// bare `end` (one that does not close a nested if/while construct).
func (p *parser) parseBody() []*ir.Operator {
	b := newOpBuilder(p)
	for {
		tok := p.cur()
		if tok.Kind == token.EOF {
			p.errorf(tok, "unexpected end of input inside function body")
			break
		}
		if tok.Kind == token.END && !b.hasOpenConstruct() {
			p.advance()
			break
		}
		b.step(p.advance())
	}
	return b.finish()
}

// openConstruct records a still-unclosed if/while/do while parsing a
// single operator sequence.
type openConstruct struct {
	kind  ir.OperatorKind // IF, WHILE, or DO
	index int             // index of the construct's own operator in ops
}

// opBuilder accumulates an operator sequence one token at a time,
// resolving if/do/while/end into jumps_to links as each `end` closes its
// matching construct.
type opBuilder struct {
	p    *parser
	ops  []*ir.Operator
	open []openConstruct
}

func newOpBuilder(p *parser) *opBuilder {
	return &opBuilder{p: p}
}

func (b *opBuilder) hasOpenConstruct() bool {
	return len(b.open) > 0
}

func (b *opBuilder) finish() []*ir.Operator {
	for _, oc := range b.open {
		b.p.errorf(b.p.cur(), "unclosed %s construct", oc.kind)
	}
	return b.ops
}

// step consumes tok (already advanced past) and appends the operator(s)
// it produces, if any, to b.ops.
func (b *opBuilder) step(tok token.Token) {
	index := len(b.ops)
	switch tok.Kind {
	case token.INT:
		v, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			b.p.errorf(tok, "invalid integer literal %q", tok.Literal)
			return
		}
		b.ops = append(b.ops, &ir.Operator{Kind: ir.PUSH_INTEGER, Operand: v, Token: tok})

	case token.STRING:
		b.ops = append(b.ops, &ir.Operator{Kind: ir.PUSH_STRING, Operand: tok.Literal, Token: tok})

	case token.IF:
		b.open = append(b.open, openConstruct{kind: ir.IF, index: index})
		b.ops = append(b.ops, &ir.Operator{Kind: ir.IF, Token: tok})

	case token.WHILE:
		b.open = append(b.open, openConstruct{kind: ir.WHILE, index: index})
		b.ops = append(b.ops, &ir.Operator{Kind: ir.WHILE, Token: tok})

	case token.DO:
		if len(b.open) == 0 || b.open[len(b.open)-1].kind != ir.WHILE {
			b.p.errorf(tok, "'do' without a preceding 'while'")
			return
		}
		b.open = append(b.open, openConstruct{kind: ir.DO, index: index})
		b.ops = append(b.ops, &ir.Operator{Kind: ir.DO, Token: tok})

	case token.END:
		b.closeConstruct(index, tok)

	default:
		if intr, ok := intrinsicForKind(tok.Kind); ok {
			b.ops = append(b.ops, &ir.Operator{Kind: ir.INTRINSIC, Operand: intr, Token: tok})
			return
		}
		if tok.Kind == token.IDENT {
			b.ops = append(b.ops, &ir.Operator{Kind: ir.CALL, Operand: tok.Literal, Token: tok})
			return
		}
		b.p.errorf(tok, "unexpected token %s", tok.Kind)
	}
}

// closeConstruct resolves an `end` token against the most recently opened
// construct, wiring jumps_to on both the opening operator and (for
// while/do pairs) this END, per the control-flow resolution algorithm: an
// IF's jumps_to is set to this END's index; a DO/WHILE pair has the DO's
// jumps_to set to this END's index (loop exit) and this END's jumps_to
// set back to the WHILE's index (back-branch).
func (b *opBuilder) closeConstruct(endIndex int, tok token.Token) {
	if len(b.open) == 0 {
		b.p.errorf(tok, "'end' without a matching 'if' or 'while'")
		return
	}
	top := b.open[len(b.open)-1]
	b.open = b.open[:len(b.open)-1]

	endOp := &ir.Operator{Kind: ir.END, Token: tok}
	switch top.kind {
	case ir.IF:
		idx := endIndex
		b.ops[top.index].JumpsTo = &idx

	case ir.DO:
		if len(b.open) == 0 || b.open[len(b.open)-1].kind != ir.WHILE {
			b.p.errorf(tok, "'do' is not paired with an enclosing 'while'")
			b.ops = append(b.ops, endOp)
			return
		}
		whileTop := b.open[len(b.open)-1]
		b.open = b.open[:len(b.open)-1]

		doIdx := endIndex
		b.ops[top.index].JumpsTo = &doIdx

		whileIdx := whileTop.index
		endOp.JumpsTo = &whileIdx

	default:
		b.p.errorf(tok, "'end' does not close an 'if' or a 'while'/'do' pair")
	}
	b.ops = append(b.ops, endOp)
}
