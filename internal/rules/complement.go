package rules

import "github.com/gnoswap-labs/boolproof/internal/expr"

func isNegationOf(n expr.Not, other expr.Expr) bool {
	return expr.Equal(n.Child, other)
}

// ComplementAndRule rewrites x & !x or !x & x to F.
func ComplementAndRule(e expr.Expr) (expr.Expr, bool) {
	and, ok := e.(expr.And)
	if !ok {
		return nil, false
	}
	if n, ok := and.Right.(expr.Not); ok && isNegationOf(n, and.Left) {
		return expr.Const{Value: false}, true
	}
	if n, ok := and.Left.(expr.Not); ok && isNegationOf(n, and.Right) {
		return expr.Const{Value: false}, true
	}
	return nil, false
}

// ComplementOrRule rewrites x | !x or !x | x to T.
func ComplementOrRule(e expr.Expr) (expr.Expr, bool) {
	or, ok := e.(expr.Or)
	if !ok {
		return nil, false
	}
	if n, ok := or.Right.(expr.Not); ok && isNegationOf(n, or.Left) {
		return expr.Const{Value: true}, true
	}
	if n, ok := or.Left.(expr.Not); ok && isNegationOf(n, or.Right) {
		return expr.Const{Value: true}, true
	}
	return nil, false
}
