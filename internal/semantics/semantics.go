// Package semantics is a truth-table oracle over propositional
// expressions, used by tests and by the prove command's --verify flag. It
// exists to audit the rule catalogue and search results against
// brute-force enumeration; it is never imported by
// internal/engine or internal/search, which decide equivalence purely
// structurally.
package semantics

import (
	"github.com/gnoswap-labs/boolproof/internal/expr"
)

// Env binds variable names to truth values for one evaluation.
type Env map[string]bool

// Evaluator evaluates an expr.Expr under an Env. A zero-value Evaluator is
// ready to use.
type Evaluator struct{}

// NewEvaluator returns a ready-to-use Evaluator.
func NewEvaluator() *Evaluator { return &Evaluator{} }

// Eval evaluates e under env. Variables missing from env evaluate to
// false; callers that care should populate env from expr.VarNames first.
func (ev *Evaluator) Eval(e expr.Expr, env Env) bool {
	switch n := e.(type) {
	case expr.Var:
		return env[n.Name]
	case expr.Const:
		return n.Value
	case expr.Not:
		return !ev.Eval(n.Child, env)
	case expr.And:
		return ev.Eval(n.Left, env) && ev.Eval(n.Right, env)
	case expr.Or:
		return ev.Eval(n.Left, env) || ev.Eval(n.Right, env)
	case expr.Implies:
		return !ev.Eval(n.Left, env) || ev.Eval(n.Right, env)
	case expr.Iff:
		return ev.Eval(n.Left, env) == ev.Eval(n.Right, env)
	default:
		return false
	}
}

// Equivalent reports whether a and b agree on every assignment of their
// combined variables, by brute-force enumeration over 2^n rows. Intended
// for tests and the --verify diagnostic flag, never for deciding search
// equivalence in the production core.
func Equivalent(a, b expr.Expr) bool {
	names := unionVarNames(a, b)
	ev := NewEvaluator()

	n := len(names)
	for mask := 0; mask < (1 << n); mask++ {
		env := make(Env, n)
		for i, name := range names {
			env[name] = mask&(1<<i) != 0
		}
		if ev.Eval(a, env) != ev.Eval(b, env) {
			return false
		}
	}
	return true
}

// TruthTable returns every (assignment, result) row for e, in the same
// deterministic variable order as expr.VarNames.
type Row struct {
	Assignment Env
	Result     bool
}

func TruthTable(e expr.Expr) []Row {
	names := expr.VarNames(e)
	ev := NewEvaluator()

	n := len(names)
	rows := make([]Row, 0, 1<<n)
	for mask := 0; mask < (1 << n); mask++ {
		env := make(Env, n)
		for i, name := range names {
			env[name] = mask&(1<<i) != 0
		}
		rows = append(rows, Row{Assignment: env, Result: ev.Eval(e, env)})
	}
	return rows
}

func unionVarNames(a, b expr.Expr) []string {
	seen := make(map[string]bool)
	var out []string
	for _, n := range expr.VarNames(a) {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	for _, n := range expr.VarNames(b) {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
