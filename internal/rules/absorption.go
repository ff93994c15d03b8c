package rules

import "github.com/gnoswap-labs/boolproof/internal/expr"

// AbsorptionAndRule rewrites x & (x | y) to x, in any of the four
// orientations of which side x/y fall on.
func AbsorptionAndRule(e expr.Expr) (expr.Expr, bool) {
	and, ok := e.(expr.And)
	if !ok {
		return nil, false
	}
	if or, ok := and.Right.(expr.Or); ok {
		if expr.Equal(and.Left, or.Left) || expr.Equal(and.Left, or.Right) {
			return and.Left, true
		}
	}
	if or, ok := and.Left.(expr.Or); ok {
		if expr.Equal(and.Right, or.Left) || expr.Equal(and.Right, or.Right) {
			return and.Right, true
		}
	}
	return nil, false
}

// AbsorptionOrRule rewrites x | (x & y) to x, in any of the four
// orientations of which side x/y fall on.
func AbsorptionOrRule(e expr.Expr) (expr.Expr, bool) {
	or, ok := e.(expr.Or)
	if !ok {
		return nil, false
	}
	if and, ok := or.Right.(expr.And); ok {
		if expr.Equal(or.Left, and.Left) || expr.Equal(or.Left, and.Right) {
			return or.Left, true
		}
	}
	if and, ok := or.Left.(expr.And); ok {
		if expr.Equal(or.Right, and.Left) || expr.Equal(or.Right, and.Right) {
			return or.Right, true
		}
	}
	return nil, false
}
