package expr

// Equal implements the structural/commutative equality used throughout the
// engine and search as "same expression": roots must agree, and children
// must match pairwise, except that at an And or Or node the two children
// pairs may additionally match after a single swap. The swap is allowed at
// every And/Or node the comparison reaches, so (p & q) | r equals
// (q & p) | r; nothing beyond that swap is tolerated (no regrouping of
// nested And/Or nodes).
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case Var:
		y, ok := b.(Var)
		return ok && x.Name == y.Name
	case Const:
		y, ok := b.(Const)
		return ok && x.Value == y.Value
	case Not:
		y, ok := b.(Not)
		return ok && Equal(x.Child, y.Child)
	case And:
		y, ok := b.(And)
		if !ok {
			return false
		}
		return (Equal(x.Left, y.Left) && Equal(x.Right, y.Right)) ||
			(Equal(x.Left, y.Right) && Equal(x.Right, y.Left))
	case Or:
		y, ok := b.(Or)
		if !ok {
			return false
		}
		return (Equal(x.Left, y.Left) && Equal(x.Right, y.Right)) ||
			(Equal(x.Left, y.Right) && Equal(x.Right, y.Left))
	case Implies:
		y, ok := b.(Implies)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case Iff:
		y, ok := b.(Iff)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	default:
		return false
	}
}
