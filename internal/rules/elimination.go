package rules

import "github.com/gnoswap-labs/boolproof/internal/expr"

// ImplicationEliminationRule rewrites x -> y to !x | y.
func ImplicationEliminationRule(e expr.Expr) (expr.Expr, bool) {
	imp, ok := e.(expr.Implies)
	if !ok {
		return nil, false
	}
	return expr.Or{Left: expr.Not{Child: imp.Left}, Right: imp.Right}, true
}

// BiconditionalEliminationRule rewrites x <-> y to (x -> y) & (y -> x).
func BiconditionalEliminationRule(e expr.Expr) (expr.Expr, bool) {
	iff, ok := e.(expr.Iff)
	if !ok {
		return nil, false
	}
	return expr.And{
		Left:  expr.Implies{Left: iff.Left, Right: iff.Right},
		Right: expr.Implies{Left: iff.Right, Right: iff.Left},
	}, true
}
