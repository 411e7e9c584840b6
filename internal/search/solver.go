package search

import (
	"context"
	"errors"
)

// ErrBudgetExhausted reports that the wall-clock deadline or the node
// budget ran out before the search reached a solution or exhausted the
// tree. It is distinct from infeasibility: the problem remains
// undetermined.
var ErrBudgetExhausted = errors.New("search budget exhausted")

// Solver produces one full assignment for a problem. Returning a nil
// assignment together with a nil error means the problem is proven
// infeasible.
type Solver interface {
	Solve(ctx context.Context, problem Problem) (Assignment, error)
}

// NewBacktrackingSolver returns the sequential engine. Given identical
// problems it always returns the same assignment.
func NewBacktrackingSolver() Solver {
	return &backtrackingSolver{}
}

// NewParallelSolver splits the first decision's candidates across workers,
// each running an isolated sequential search. The first solution wins and
// cancels the siblings.
func NewParallelSolver(workers int) Solver {
	if workers < 1 {
		workers = 1
	}
	return &parallelSolver{workers: workers}
}
