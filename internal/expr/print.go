package expr

import "strings"

// Print renders e in the canonical textual form used both for
// human-readable proof output and, by its length, for search's
// runaway-expansion prune (the visited set is keyed by CanonicalHash):
// variables and constants as-is, negation as "!operand",
// every binary operation fully parenthesised as "(left op right)".
func Print(e Expr) string {
	var b strings.Builder
	print(&b, e)
	return b.String()
}

func print(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case Var:
		b.WriteString(n.Name)
	case Const:
		if n.Value {
			b.WriteString("T")
		} else {
			b.WriteString("F")
		}
	case Not:
		b.WriteByte('!')
		print(b, n.Child)
	case And:
		printBinary(b, n.Left, "&", n.Right)
	case Or:
		printBinary(b, n.Left, "|", n.Right)
	case Implies:
		printBinary(b, n.Left, "->", n.Right)
	case Iff:
		printBinary(b, n.Left, "<->", n.Right)
	}
}

func printBinary(b *strings.Builder, l Expr, op string, r Expr) {
	b.WriteByte('(')
	print(b, l)
	b.WriteByte(' ')
	b.WriteString(op)
	b.WriteByte(' ')
	print(b, r)
	b.WriteByte(')')
}
