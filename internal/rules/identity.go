package rules

import "github.com/gnoswap-labs/boolproof/internal/expr"

func isConst(e expr.Expr, v bool) bool {
	c, ok := e.(expr.Const)
	return ok && c.Value == v
}

// IdentityAndRule rewrites T & x or x & T to x.
func IdentityAndRule(e expr.Expr) (expr.Expr, bool) {
	and, ok := e.(expr.And)
	if !ok {
		return nil, false
	}
	if isConst(and.Left, true) {
		return and.Right, true
	}
	if isConst(and.Right, true) {
		return and.Left, true
	}
	return nil, false
}

// IdentityOrRule rewrites F | x or x | F to x.
func IdentityOrRule(e expr.Expr) (expr.Expr, bool) {
	or, ok := e.(expr.Or)
	if !ok {
		return nil, false
	}
	if isConst(or.Left, false) {
		return or.Right, true
	}
	if isConst(or.Right, false) {
		return or.Left, true
	}
	return nil, false
}

// AnnihilationAndRule rewrites F & x or x & F to F.
func AnnihilationAndRule(e expr.Expr) (expr.Expr, bool) {
	and, ok := e.(expr.And)
	if !ok {
		return nil, false
	}
	if isConst(and.Left, false) || isConst(and.Right, false) {
		return expr.Const{Value: false}, true
	}
	return nil, false
}

// AnnihilationOrRule rewrites T | x or x | T to T.
func AnnihilationOrRule(e expr.Expr) (expr.Expr, bool) {
	or, ok := e.(expr.Or)
	if !ok {
		return nil, false
	}
	if isConst(or.Left, true) || isConst(or.Right, true) {
		return expr.Const{Value: true}, true
	}
	return nil, false
}
