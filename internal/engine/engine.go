// Package engine implements the contextual rewriter: given a whole
// expression, it enumerates every way a single catalogue rule can be
// applied at a single position within it, plus the combined rewrites in
// which the same rule rewrote both children of a binary node.
package engine

import (
	"github.com/gnoswap-labs/boolproof/internal/expr"
	"github.com/gnoswap-labs/boolproof/internal/rules"
)

// Transformation is one (law, description, resulting whole expression)
// triple produced by rewriting some position inside a larger expression.
type Transformation struct {
	Law         rules.LogicLaw
	Description string
	Expr        expr.Expr
}

// Engine enumerates rule applications over expression trees. A zero-value
// Engine is ready to use with the full catalogue; DisableLaw narrows it.
type Engine struct {
	disabled map[rules.LogicLaw]bool
}

// New returns a ready-to-use Engine with the full 21-law catalogue active.
func New() *Engine {
	return &Engine{}
}

// DisableLaw excludes law from GenerateAllTransformations. Used to honor a
// configuration file's disabledLaws list.
func (en *Engine) DisableLaw(law rules.LogicLaw) {
	if en.disabled == nil {
		en.disabled = make(map[rules.LogicLaw]bool)
	}
	en.disabled[law] = true
}

// GenerateAllTransformations produces every expression reachable from e by
// applying exactly one catalogue rule at exactly one position, and also,
// at every binary node, each combination in which that same rule rewrote
// both children (described as "<left> and <right>"). The
// returned slice may contain duplicate resulting expressions (two
// different (rule, position) pairs can produce the same tree); the caller
// (internal/search) is responsible for deduplication. Order is
// deterministic: one rule at a time, in catalogue order, and within a
// rule root-first then children.
func (en *Engine) GenerateAllTransformations(e expr.Expr) []Transformation {
	var out []Transformation
	for _, entry := range rules.All() {
		if en.disabled[entry.Law] {
			continue
		}
		out = append(out, applyRecursively(e, entry.Law, entry.Rule)...)
	}
	return out
}

// ApplyLawRecursively restricts GenerateAllTransformations to a single law.
func (en *Engine) ApplyLawRecursively(e expr.Expr, law rules.LogicLaw) []Transformation {
	rule := func(x expr.Expr) (expr.Expr, bool) { return rules.Apply(law, x) }
	return applyRecursively(e, law, rule)
}

// AreEquivalent reports whether a and b are the same expression under the
// structural/commutative equality of internal/expr. It performs no search
// and no semantic evaluation — it is purely a syntactic check.
func (en *Engine) AreEquivalent(a, b expr.Expr) bool {
	return expr.Equal(a, b)
}

// applyRecursively tries rule at every position of e and reports each hit
// as a Transformation wrapping the whole rewritten expression.
func applyRecursively(e expr.Expr, law rules.LogicLaw, rule rules.Rule) []Transformation {
	var out []Transformation

	if result, ok := rule(e); ok {
		out = append(out, Transformation{Law: law, Description: rules.DescriptionOf(law), Expr: result})
	}

	children := expr.Children(e)
	switch len(children) {
	case 0:
		// Var, Const: nothing further to recurse into.
	case 1:
		for _, t := range applyRecursively(children[0], law, rule) {
			out = append(out, Transformation{
				Law:         law,
				Description: t.Description,
				Expr:        expr.WithChildren(e, []expr.Expr{t.Expr}),
			})
		}
	case 2:
		leftResults := applyRecursively(children[0], law, rule)
		rightResults := applyRecursively(children[1], law, rule)

		for _, t := range leftResults {
			out = append(out, Transformation{
				Law:         law,
				Description: t.Description,
				Expr:        expr.WithChildren(e, []expr.Expr{t.Expr, children[1]}),
			})
		}
		for _, t := range rightResults {
			out = append(out, Transformation{
				Law:         law,
				Description: t.Description,
				Expr:        expr.WithChildren(e, []expr.Expr{children[0], t.Expr}),
			})
		}

		// Both children rewritten by the same rule at any of their
		// positions: collect both result lists by value first (the
		// specification calls out that iterating over an
		// already-consumed slice here is a known source bug not to be
		// reproduced), then combine.
		for _, lt := range leftResults {
			for _, rt := range rightResults {
				out = append(out, Transformation{
					Law:         law,
					Description: lt.Description + " and " + rt.Description,
					Expr:        expr.WithChildren(e, []expr.Expr{lt.Expr, rt.Expr}),
				})
			}
		}
	}

	return out
}
