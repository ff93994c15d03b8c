// Package search implements the breadth-first proof search over the
// rewrite graph produced by internal/engine.
package search

import (
	"github.com/gnoswap-labs/boolproof/internal/engine"
	"github.com/gnoswap-labs/boolproof/internal/expr"
	"github.com/gnoswap-labs/boolproof/internal/proof"
	"github.com/gnoswap-labs/boolproof/internal/rules"
)

const (
	defaultMaxDepth           = 10
	defaultMaxTransformations = 10000
	maxTextLength             = 200
	maxGeneratedForms         = 50
)

// State names the phase of a single Search run, for introspection and
// logging only — BFS itself is one synchronous loop, not a state machine
// driving control flow.
type State int

const (
	Idle State = iota
	Expanding
	HaltedFound
	HaltedExhausted
	HaltedLimitReached
)

// Observer is a caller-supplied, no-I/O hook a Search reports expansion
// progress to. The core never performs I/O itself; cmd wires an Observer
// to a progress bar.
type Observer interface {
	OnExpand(depth, frontierSize int)
}

// Search runs breadth-first proof search over one start/target pair at a
// time. A Search instance carries no search state (queue, visited set)
// between top-level calls: both are rebuilt on entry to FindProof or
// GenerateEquivalentForms; only the outcome reported by State is kept.
// Search values are independent and share no mutable state, so distinct
// Search instances may run concurrently.
type Search struct {
	maxDepth           int
	maxTransformations int
	engine             *engine.Engine
	observer           Observer
	state              State
}

// New returns a Search with the default bounds (MaxDepth=10,
// MaxTransformations=10000).
func New() *Search {
	return &Search{
		maxDepth:           defaultMaxDepth,
		maxTransformations: defaultMaxTransformations,
		engine:             engine.New(),
		state:              Idle,
	}
}

// SetMaxDepth overrides the BFS depth bound.
func (s *Search) SetMaxDepth(n int) { s.maxDepth = n }

// SetMaxTransformations overrides the exploration-counter bound.
func (s *Search) SetMaxTransformations(n int) { s.maxTransformations = n }

// SetObserver installs a progress observer; pass nil to remove it.
func (s *Search) SetObserver(o Observer) { s.observer = o }

// DisableLaw excludes law from expansion, delegating to the underlying
// Engine. Used to honor a configuration file's disabledLaws list.
func (s *Search) DisableLaw(law rules.LogicLaw) { s.engine.DisableLaw(law) }

// State returns the outcome of the most recently completed run.
func (s *Search) State() State { return s.state }

type queued struct {
	e     expr.Expr
	depth int
	path  []proof.Step
}

// FindProof returns a minimum-length justified rewrite chain from start to
// target, or an unfound Proof if none is reached within the configured
// bounds. BFS dequeues in non-decreasing depth order and every rewrite is
// one edge, so the first path to reach target is minimum-length in rule
// applications.
func (s *Search) FindProof(start, target expr.Expr) proof.Proof {
	s.state = Expanding

	if expr.Equal(start, target) {
		s.state = HaltedFound
		return proof.Assemble(nil)
	}

	visited := map[uint64]bool{expr.CanonicalHash(start): true}
	queue := []queued{{e: start, depth: 0}}
	explored := 0

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if s.observer != nil {
			s.observer.OnExpand(current.depth, len(queue))
		}

		if expr.Equal(current.e, target) {
			s.state = HaltedFound
			return proof.Assemble(current.path)
		}
		if s.pruned(current.e, current.depth) {
			continue
		}

		children := s.expand(current.e)
		explored += len(children)

		for _, t := range children {
			h := expr.CanonicalHash(t.Expr)
			if visited[h] {
				continue
			}
			visited[h] = true

			path := make([]proof.Step, len(current.path), len(current.path)+1)
			copy(path, current.path)
			path = append(path, proof.Step{
				Expr:        t.Expr,
				Law:         t.Law,
				Description: t.Description,
			})

			queue = append(queue, queued{e: t.Expr, depth: current.depth + 1, path: path})
		}

		if explored > s.maxTransformations {
			s.state = HaltedLimitReached
			return proof.NotFound()
		}
	}

	s.state = HaltedExhausted
	return proof.NotFound()
}

// GenerateEquivalentForms runs the same BFS without a target, using
// maxSteps as the BFS depth bound. It records every popped expression
// until the queue empties, the exploration counter overflows, or 50
// forms have been collected. Unlike FindProof, this mode applies no
// canonical-text-length pruning; only the depth bound limits expansion.
// The seed expression is always first.
func (s *Search) GenerateEquivalentForms(e expr.Expr, maxSteps int) []expr.Expr {
	s.state = Expanding
	visited := map[uint64]bool{expr.CanonicalHash(e): true}
	queue := []queued{{e: e, depth: 0}}
	explored := 0

	var results []expr.Expr

	for len(queue) > 0 && explored < s.maxTransformations && len(results) < maxGeneratedForms {
		current := queue[0]
		queue = queue[1:]

		if s.observer != nil {
			s.observer.OnExpand(current.depth, len(queue))
		}

		if current.depth > maxSteps {
			continue
		}

		results = append(results, current.e)

		children := s.expand(current.e)
		explored += len(children)

		for _, t := range children {
			h := expr.CanonicalHash(t.Expr)
			if visited[h] {
				continue
			}
			visited[h] = true
			queue = append(queue, queued{e: t.Expr, depth: current.depth + 1})
		}
	}

	if len(results) >= maxGeneratedForms || explored >= s.maxTransformations {
		s.state = HaltedLimitReached
	} else {
		s.state = HaltedExhausted
	}
	return results
}

// pruned implements the search's pruning predicate: too deep, or the
// canonical text has grown past the runaway-expansion cap. Checked after
// a popped node has already been tested against the target.
func (s *Search) pruned(e expr.Expr, depth int) bool {
	return depth >= s.maxDepth || len(expr.Print(e)) > maxTextLength
}

// expand calls Engine.GenerateAllTransformations on the whole expression
// and also, independently, on each immediate child (wrapped back into the
// parent), matching the specification's widened per-node expansion.
func (s *Search) expand(e expr.Expr) []engine.Transformation {
	out := s.engine.GenerateAllTransformations(e)

	children := expr.Children(e)
	for i, c := range children {
		for _, t := range s.engine.GenerateAllTransformations(c) {
			rebuilt := make([]expr.Expr, len(children))
			copy(rebuilt, children)
			rebuilt[i] = t.Expr
			out = append(out, engine.Transformation{
				Law:         t.Law,
				Description: t.Description,
				Expr:        expr.WithChildren(e, rebuilt),
			})
		}
	}
	return out
}
