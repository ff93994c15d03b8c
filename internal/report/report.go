// Package report renders proofs and search diagnostics for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/gnoswap-labs/boolproof/internal/expr"
	"github.com/gnoswap-labs/boolproof/internal/proof"
	"github.com/gnoswap-labs/boolproof/internal/rules"
)

var (
	stepStyle   = color.New(color.FgHiBlue, color.Bold)
	lawStyle    = color.New(color.FgYellow, color.Bold)
	exprStyle   = color.New(color.FgWhite, color.Bold)
	successStyle = color.New(color.FgGreen, color.Bold)
	failureStyle = color.New(color.FgRed, color.Bold)
	dimStyle    = color.New(color.FgHiBlack)
)

// WriteProof renders p to w, one colored line per step, headed by the
// start expression and closed by a pass/fail summary line.
func WriteProof(w io.Writer, start expr.Expr, p proof.Proof) {
	fmt.Fprintf(w, "%s %s\n", dimStyle.Sprint("start:"), exprStyle.Sprint(expr.Print(start)))

	if !p.FoundTarget {
		fmt.Fprintln(w, failureStyle.Sprint("no proof found within the configured search bounds"))
		return
	}

	for _, step := range p.Steps {
		fmt.Fprintf(w, "%s %s  %s\n",
			stepStyle.Sprintf("%3d.", step.StepNumber),
			exprStyle.Sprint(expr.Print(step.Expr)),
			dimStyle.Sprintf("[%s]", lawStyle.Sprint(rules.NameOf(step.Law))),
		)
	}
	fmt.Fprintln(w, successStyle.Sprintf("proved in %d step(s)", p.TotalSteps))
}

// maxDisplayedForms bounds how many forms WriteForms prints before
// collapsing the remainder into a summary line.
const maxDisplayedForms = 20

// WriteForms renders a list of equivalent forms, one per line, numbered,
// truncating the display past maxDisplayedForms entries.
func WriteForms(w io.Writer, forms []expr.Expr) {
	shown := forms
	if len(shown) > maxDisplayedForms {
		shown = shown[:maxDisplayedForms]
	}
	for i, f := range shown {
		fmt.Fprintf(w, "%s %s\n", dimStyle.Sprintf("%3d.", i+1), exprStyle.Sprint(expr.Print(f)))
	}
	if rest := len(forms) - len(shown); rest > 0 {
		fmt.Fprintf(w, "%s\n", dimStyle.Sprintf("... and %d more forms", rest))
	}
}

// FormatProofJSON renders p in a stable, dependency-free textual form
// suitable for --json output; it is hand-built rather than encoding/json
// so callers can stream it without allocating an intermediate struct tree.
func FormatProofJSON(start expr.Expr, p proof.Proof) string {
	var b strings.Builder
	b.WriteString("{")
	fmt.Fprintf(&b, `"start":%q,"found":%t,"steps":[`, expr.Print(start), p.FoundTarget)
	for i, step := range p.Steps {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `{"step":%d,"expr":%q,"law":%q,"description":%q}`,
			step.StepNumber, expr.Print(step.Expr), rules.NameOf(step.Law), step.Description)
	}
	b.WriteString("]}")
	return b.String()
}
