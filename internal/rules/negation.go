package rules

import "github.com/gnoswap-labs/boolproof/internal/expr"

// DoubleNegationRule rewrites !!x to x.
func DoubleNegationRule(e expr.Expr) (expr.Expr, bool) {
	outer, ok := e.(expr.Not)
	if !ok {
		return nil, false
	}
	inner, ok := outer.Child.(expr.Not)
	if !ok {
		return nil, false
	}
	return inner.Child, true
}

// DeMorganAndRule rewrites !(x & y) to !x | !y.
func DeMorganAndRule(e expr.Expr) (expr.Expr, bool) {
	n, ok := e.(expr.Not)
	if !ok {
		return nil, false
	}
	and, ok := n.Child.(expr.And)
	if !ok {
		return nil, false
	}
	return expr.Or{Left: expr.Not{Child: and.Left}, Right: expr.Not{Child: and.Right}}, true
}

// DeMorganOrRule rewrites !(x | y) to !x & !y.
func DeMorganOrRule(e expr.Expr) (expr.Expr, bool) {
	n, ok := e.(expr.Not)
	if !ok {
		return nil, false
	}
	or, ok := n.Child.(expr.Or)
	if !ok {
		return nil, false
	}
	return expr.And{Left: expr.Not{Child: or.Left}, Right: expr.Not{Child: or.Right}}, true
}
