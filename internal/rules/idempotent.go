package rules

import "github.com/gnoswap-labs/boolproof/internal/expr"

// IdempotentAndRule rewrites x & x to x. The two children must be fully
// structurally equal (§3 equality); this is the same relaxed equality used
// elsewhere so that, e.g., (p & q) & (q & p) is also recognized.
func IdempotentAndRule(e expr.Expr) (expr.Expr, bool) {
	and, ok := e.(expr.And)
	if !ok {
		return nil, false
	}
	if expr.Equal(and.Left, and.Right) {
		return and.Left, true
	}
	return nil, false
}

// IdempotentOrRule rewrites x | x to x.
func IdempotentOrRule(e expr.Expr) (expr.Expr, bool) {
	or, ok := e.(expr.Or)
	if !ok {
		return nil, false
	}
	if expr.Equal(or.Left, or.Right) {
		return or.Left, true
	}
	return nil, false
}
