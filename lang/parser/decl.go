package parser

import (
	"github.com/mna/stackasm/lang/ir"
	"github.com/mna/stackasm/lang/token"
)

// parseFuncDecl parses `func NAME : T1 T2 -> T3 in ... end` and registers
// the resulting ir.Function in the program's function table.
func (p *parser) parseFuncDecl() {
	p.advance() // 'func'
	nameTok, ok := p.expect(token.IDENT)
	if !ok {
		p.recoverToEnd()
		return
	}
	if _, ok := p.expect(token.COLON); !ok {
		p.recoverToEnd()
		return
	}

	in := p.parseTypeList()
	if _, ok := p.expect(token.ARROW); !ok {
		p.recoverToEnd()
		return
	}
	out := p.parseTypeList()

	if !p.expectWord("in") {
		p.recoverToEnd()
		return
	}

	body := p.parseBody()
	p.program.AddFunction(&ir.Function{
		Name:           nameTok.Literal,
		InputContract:  in,
		OutputContract: out,
		Operators:      body,
	})
}

// parseExternDecl parses `extern NAME : T1 -> T2` and registers the name
// as an externally-defined function with no body.
func (p *parser) parseExternDecl() {
	p.advance() // 'extern'
	nameTok, ok := p.expect(token.IDENT)
	if !ok {
		return
	}
	if _, ok := p.expect(token.COLON); !ok {
		return
	}

	in := p.parseTypeList()
	if _, ok := p.expect(token.ARROW); !ok {
		return
	}
	out := p.parseTypeList()

	p.program.AddFunction(&ir.Function{
		Name:                nameTok.Literal,
		InputContract:       in,
		OutputContract:      out,
		IsExternallyDefined: true,
	})
}

// parseTypeList parses zero or more type names (int, ptr, bool) up to the
// next ARROW or IDENT('in') token.
func (p *parser) parseTypeList() []ir.SemanticType {
	var types []ir.SemanticType
	for p.cur().Kind == token.IDENT {
		typ, ok := semanticTypeForName(p.cur().Literal)
		if !ok {
			break
		}
		p.advance()
		types = append(types, typ)
	}
	return types
}

func semanticTypeForName(name string) (ir.SemanticType, bool) {
	switch name {
	case "int":
		return ir.INTEGER, true
	case "ptr":
		return ir.POINTER, true
	case "bool":
		return ir.BOOLEAN, true
	default:
		return 0, false
	}
}

// recoverToEnd skips tokens until a bare `end` or EOF, used after a
// malformed function signature so one error doesn't cascade into dozens.
func (p *parser) recoverToEnd() {
	depth := 0
	for p.cur().Kind != token.EOF {
		switch p.cur().Kind {
		case token.IF, token.WHILE:
			depth++
		case token.END:
			if depth == 0 {
				p.advance()
				return
			}
			depth--
		}
		p.advance()
	}
}
