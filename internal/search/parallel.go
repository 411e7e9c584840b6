package search

import "context"

type parallelSolver struct {
	workers int
}

// Solve partitions the first decision's candidates round-robin across
// workers. Each worker owns an isolated search state; whoever completes
// first cancels the rest. The node budget applies per worker.
func (solver *parallelSolver) Solve(ctx context.Context, problem Problem) (Assignment, error) {
	workers := solver.workers
	if workers > len(problem.Subjects) {
		workers = len(problem.Subjects)
	}
	if workers <= 1 || problem.slotCount() == 0 {
		return (&backtrackingSolver{}).Solve(ctx, problem)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type outcome struct {
		assignment Assignment
		err        error
	}
	outcomes := make(chan outcome, workers)

	for worker := range workers {
		domain := make([]int, 0, len(problem.Subjects)/workers+1)
		for candidate := worker; candidate < len(problem.Subjects); candidate += workers {
			domain = append(domain, candidate)
		}
		go func(domain []int) {
			assignment, err := newSearchState(problem).run(ctx, domain)
			outcomes <- outcome{assignment: assignment, err: err}
		}(domain)
	}

	var budgetErr error
	for range workers {
		result := <-outcomes
		if result.assignment != nil {
			cancel()
			return result.assignment, nil
		}
		if result.err != nil && budgetErr == nil {
			budgetErr = result.err
		}
	}
	// Infeasibility is only proven when every subtree exhausted cleanly.
	if budgetErr != nil {
		return nil, budgetErr
	}
	return nil, nil
}
