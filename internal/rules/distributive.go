package rules

import "github.com/gnoswap-labs/boolproof/internal/expr"

// DistributiveAndOverOrRule rewrites x & (y | z) to (x & y) | (x & z), and
// (y | z) & x to (y & x) | (z & x). The left-side match is preferred when
// both children of the And happen to be Or nodes.
func DistributiveAndOverOrRule(e expr.Expr) (expr.Expr, bool) {
	and, ok := e.(expr.And)
	if !ok {
		return nil, false
	}
	if or, ok := and.Right.(expr.Or); ok {
		x := and.Left
		return expr.Or{
			Left:  expr.And{Left: x, Right: or.Left},
			Right: expr.And{Left: x, Right: or.Right},
		}, true
	}
	if or, ok := and.Left.(expr.Or); ok {
		x := and.Right
		return expr.Or{
			Left:  expr.And{Left: or.Left, Right: x},
			Right: expr.And{Left: or.Right, Right: x},
		}, true
	}
	return nil, false
}

// DistributiveOrOverAndRule rewrites x | (y & z) to (x | y) & (x | z), and
// (y & z) | x to (y | x) & (z | x).
func DistributiveOrOverAndRule(e expr.Expr) (expr.Expr, bool) {
	or, ok := e.(expr.Or)
	if !ok {
		return nil, false
	}
	if and, ok := or.Right.(expr.And); ok {
		x := or.Left
		return expr.And{
			Left:  expr.Or{Left: x, Right: and.Left},
			Right: expr.Or{Left: x, Right: and.Right},
		}, true
	}
	if and, ok := or.Left.(expr.And); ok {
		x := or.Right
		return expr.And{
			Left:  expr.Or{Left: and.Left, Right: x},
			Right: expr.Or{Left: and.Right, Right: x},
		}, true
	}
	return nil, false
}
