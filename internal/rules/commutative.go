package rules

import "github.com/gnoswap-labs/boolproof/internal/expr"

// CommutativeAndRule rewrites x & y to y & x.
func CommutativeAndRule(e expr.Expr) (expr.Expr, bool) {
	and, ok := e.(expr.And)
	if !ok {
		return nil, false
	}
	return expr.And{Left: and.Right, Right: and.Left}, true
}

// CommutativeOrRule rewrites x | y to y | x.
func CommutativeOrRule(e expr.Expr) (expr.Expr, bool) {
	or, ok := e.(expr.Or)
	if !ok {
		return nil, false
	}
	return expr.Or{Left: or.Right, Right: or.Left}, true
}
