package parser

import (
	"github.com/mna/stackasm/lang/ir"
	"github.com/mna/stackasm/lang/token"
)

// intrinsicForKind maps a lexed keyword/symbol Kind to the ir.Intrinsic it
// represents, if any.
func intrinsicForKind(k token.Kind) (ir.Intrinsic, bool) {
	switch k {
	case token.PLUS:
		return ir.PLUS, true
	case token.MINUS:
		return ir.MINUS, true
	case token.STAR:
		return ir.MULTIPLY, true
	case token.SLASH:
		return ir.DIVIDE, true
	case token.PERCENT:
		return ir.MODULUS, true
	case token.INCREMENT:
		return ir.INCREMENT, true
	case token.DECREMENT:
		return ir.DECREMENT, true
	case token.EQUAL:
		return ir.EQUAL, true
	case token.NOT_EQUAL:
		return ir.NOT_EQUAL, true
	case token.LESS_THAN:
		return ir.LESS_THAN, true
	case token.LESS_EQUAL_THAN:
		return ir.LESS_EQUAL_THAN, true
	case token.GREATER_THAN:
		return ir.GREATER_THAN, true
	case token.GREATER_EQUAL_THAN:
		return ir.GREATER_EQUAL_THAN, true
	case token.DROP:
		return ir.DROP, true
	case token.COPY:
		return ir.COPY, true
	case token.SWAP:
		return ir.SWAP, true
	case token.MEMORY_LOAD:
		return ir.MEMORY_LOAD, true
	case token.MEMORY_STORE:
		return ir.MEMORY_STORE, true
	case token.SYSCALL0:
		return ir.SYSCALL0, true
	case token.SYSCALL1:
		return ir.SYSCALL1, true
	case token.SYSCALL2:
		return ir.SYSCALL2, true
	case token.SYSCALL3:
		return ir.SYSCALL3, true
	case token.SYSCALL4:
		return ir.SYSCALL4, true
	case token.SYSCALL5:
		return ir.SYSCALL5, true
	case token.SYSCALL6:
		return ir.SYSCALL6, true
	default:
		return 0, false
	}
}
