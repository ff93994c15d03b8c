package rules

import "github.com/gnoswap-labs/boolproof/internal/expr"

// AssociativeAndRule rewrites (x & y) & z to x & (y & z), and, symmetrically,
// x & (y & z) to (x & y) & z. The left-nested-to-right-nested direction is
// tried first.
func AssociativeAndRule(e expr.Expr) (expr.Expr, bool) {
	and, ok := e.(expr.And)
	if !ok {
		return nil, false
	}
	if left, ok := and.Left.(expr.And); ok {
		return expr.And{Left: left.Left, Right: expr.And{Left: left.Right, Right: and.Right}}, true
	}
	if right, ok := and.Right.(expr.And); ok {
		return expr.And{Left: expr.And{Left: and.Left, Right: right.Left}, Right: right.Right}, true
	}
	return nil, false
}

// AssociativeOrRule rewrites (x | y) | z to x | (y | z), and, symmetrically,
// x | (y | z) to (x | y) | z. The left-nested-to-right-nested direction is
// tried first.
func AssociativeOrRule(e expr.Expr) (expr.Expr, bool) {
	or, ok := e.(expr.Or)
	if !ok {
		return nil, false
	}
	if left, ok := or.Left.(expr.Or); ok {
		return expr.Or{Left: left.Left, Right: expr.Or{Left: left.Right, Right: or.Right}}, true
	}
	if right, ok := or.Right.(expr.Or); ok {
		return expr.Or{Left: expr.Or{Left: or.Left, Right: right.Left}, Right: right.Right}, true
	}
	return nil, false
}
