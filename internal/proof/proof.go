// Package proof holds the ordered, law-justified rewrite chain returned by
// a search: the caller-facing result of the engine and search components.
package proof

import (
	"github.com/gnoswap-labs/boolproof/internal/expr"
	"github.com/gnoswap-labs/boolproof/internal/rules"
)

// Step is one rewrite step in a Proof: the expression after the step, the
// law that justified it, a human-readable description, and its 1-based
// position in the proof.
type Step struct {
	Expr        expr.Expr
	Law         rules.LogicLaw
	Description string
	StepNumber  int
}

// Proof is the ordered rewrite chain from a start expression to a target.
// If FoundTarget is false, Steps is empty and TotalSteps is zero.
type Proof struct {
	Steps       []Step
	FoundTarget bool
	TotalSteps  int
}

// NotFound is the Proof returned when search exhausts its bounds without
// reaching the target.
func NotFound() Proof {
	return Proof{FoundTarget: false}
}

// Assemble builds a Proof from a winning path, renumbering steps 1..N
// regardless of whatever depth values were attached during search, and
// cloning nothing further — steps already carry independently constructed
// expr.Expr values built fresh by each rule application.
func Assemble(path []Step) Proof {
	steps := make([]Step, len(path))
	for i, s := range path {
		steps[i] = Step{
			Expr:        s.Expr,
			Law:         s.Law,
			Description: s.Description,
			StepNumber:  i + 1,
		}
	}
	return Proof{
		Steps:       steps,
		FoundTarget: true,
		TotalSteps:  len(steps),
	}
}
