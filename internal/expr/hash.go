package expr

import (
	"hash/fnv"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// tag disambiguates node kinds inside the hash; arbitrary but fixed.
const (
	tagVar uint64 = iota + 1
	tagConst
	tagNot
	tagAnd
	tagOr
	tagImplies
	tagIff
)

// CanonicalHash computes a structural hash of e that is commutative-aware
// at And/Or nodes: CanonicalHash(A&B) == CanonicalHash(B&A). Search uses
// this, rather than the printed text, to key its visited set — Design
// Notes in the specification call keying by printed text an
// over-approximation, since "p & q" and "q & p" print differently but
// should be treated as already visited. The two children of a commutative
// node are folded through a mapset.Set so the combination step never
// depends on argument order.
func CanonicalHash(e Expr) uint64 {
	switch n := e.(type) {
	case Var:
		return mix(tagVar, stringHash(n.Name))
	case Const:
		v := uint64(0)
		if n.Value {
			v = 1
		}
		return mix(tagConst, v)
	case Not:
		return mix(tagNot, CanonicalHash(n.Child))
	case And:
		return mix(tagAnd, commutativeHash(CanonicalHash(n.Left), CanonicalHash(n.Right)))
	case Or:
		return mix(tagOr, commutativeHash(CanonicalHash(n.Left), CanonicalHash(n.Right)))
	case Implies:
		return mix(mix(tagImplies, CanonicalHash(n.Left)), CanonicalHash(n.Right))
	case Iff:
		return mix(mix(tagIff, CanonicalHash(n.Left)), CanonicalHash(n.Right))
	default:
		return 0
	}
}

// commutativeHash folds two child hashes through a set so that the order
// they were computed in cannot affect the result.
func commutativeHash(a, b uint64) uint64 {
	set := mapset.NewSet[uint64](a, b)
	elems := set.ToSlice()
	sort.Slice(elems, func(i, j int) bool { return elems[i] < elems[j] })
	h := uint64(1469598103934665603) // fnv offset basis, reused as a seed
	for _, v := range elems {
		h = mix(h, v)
	}
	return h
}

func mix(a, b uint64) uint64 {
	// 64-bit variant of the FNV mixing step, applied to two already-hashed
	// values rather than bytes.
	h := a
	h ^= b
	h *= 1099511628211
	return h
}

func stringHash(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}
