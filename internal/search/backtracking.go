package search

import "context"

type backtrackingSolver struct{}

func (solver *backtrackingSolver) Solve(ctx context.Context, problem Problem) (Assignment, error) {
	return newSearchState(problem).run(ctx, nil)
}

// frame is one decision of the search: which subject occupies the block
// that begins at slot.
type frame struct {
	slot   int
	next   int // next candidate subject to try, in declaration order
	placed int // subject currently holding the block, or unassigned
}

// searchState holds the mutable bookkeeping of one search. It is owned by
// a single goroutine.
type searchState struct {
	problem   Problem
	assign    Assignment
	remaining []int // occurrences left per subject
	nodes     uint64
}

func newSearchState(problem Problem) *searchState {
	assign := make(Assignment, problem.slotCount())
	for i := range assign {
		assign[i] = unassigned
	}
	remaining := make([]int, len(problem.Subjects))
	for i, subject := range problem.Subjects {
		remaining[i] = subject.Sessions
	}
	return &searchState{problem: problem, assign: assign, remaining: remaining}
}

// run explores block decisions in slot order and returns the first
// complete assignment that satisfies every constraint. rootDomain, when
// non-nil, restricts the candidates of the very first decision so that
// disjoint subtrees can be handed to separate workers.
func (state *searchState) run(ctx context.Context, rootDomain []int) (Assignment, error) {
	total := state.problem.slotCount()
	if total == 0 {
		if state.problem.Demand() > 0 {
			return nil, nil
		}
		return Assignment{}, nil
	}

	stack := make([]frame, 0, total)
	stack = append(stack, frame{slot: 0, placed: unassigned})

	for len(stack) > 0 {
		current := &stack[len(stack)-1]

		// Retract the block from a previous visit before trying the next
		// candidate.
		if current.placed != unassigned {
			state.unplace(current.slot, current.placed)
			current.placed = unassigned
		}

		atRoot := len(stack) == 1 && rootDomain != nil
		domainSize := len(state.problem.Subjects)
		if atRoot {
			domainSize = len(rootDomain)
		}

		advanced := false
		for current.next < domainSize {
			candidate := current.next
			if atRoot {
				candidate = rootDomain[current.next]
			}
			current.next++

			state.nodes++
			if budget := state.problem.NodeBudget; budget > 0 && state.nodes > budget {
				return nil, ErrBudgetExhausted
			}
			if ctx.Err() != nil {
				return nil, ErrBudgetExhausted
			}

			if !state.canPlace(current.slot, candidate) {
				continue
			}
			state.place(current.slot, candidate)
			current.placed = candidate
			advanced = true
			break
		}
		if !advanced {
			stack = stack[:len(stack)-1]
			continue
		}

		nextSlot := current.slot + state.problem.Subjects[current.placed].Duration
		if nextSlot < total {
			stack = append(stack, frame{slot: nextSlot, placed: unassigned})
			continue
		}

		if state.complete() {
			solution := make(Assignment, total)
			copy(solution, state.assign)
			return solution, nil
		}
		// The full grid violates an adjacency relation: the frame stays on
		// the stack so the next iteration retracts the block and moves on.
	}

	return nil, nil
}

// canPlace reports whether subject may occupy the block starting at slot
// without violating any incrementally checkable constraint.
func (state *searchState) canPlace(slot, subject int) bool {
	problem := &state.problem
	sub := problem.Subjects[subject]

	if state.remaining[subject] == 0 {
		return false
	}

	end := slot + sub.Duration
	if end > problem.slotCount() {
		return false
	}
	// A block never crosses a day boundary.
	if problem.SlotDay[end-1] != problem.SlotDay[slot] {
		return false
	}
	for i := slot; i < end; i++ {
		hour := problem.SlotHour[i]
		if hour < sub.AvailFrom || hour >= sub.AvailTo {
			return false
		}
	}
	// Two blocks of the same multi-slot subject must not touch: the merged
	// indices would form a run longer than the subject's duration.
	if sub.Duration > 1 && slot > 0 && state.assign[slot-1] == subject {
		return false
	}
	if pair := problem.NonConsecutive; pair != nil && pair.A != pair.B && slot > 0 {
		previous := state.assign[slot-1]
		if (subject == pair.A && previous == pair.B) || (subject == pair.B && previous == pair.A) {
			return false
		}
	}

	return true
}

func (state *searchState) place(slot, subject int) {
	end := slot + state.problem.Subjects[subject].Duration
	for i := slot; i < end; i++ {
		state.assign[i] = subject
	}
	state.remaining[subject]--
}

func (state *searchState) unplace(slot, subject int) {
	end := slot + state.problem.Subjects[subject].Duration
	for i := slot; i < end; i++ {
		state.assign[i] = unassigned
	}
	state.remaining[subject]++
}

// complete validates the constraints that are only decidable on a full
// grid: consumed quotas and the adjacency relations.
func (state *searchState) complete() bool {
	for _, left := range state.remaining {
		if left != 0 {
			return false
		}
	}

	if pair := state.problem.Consecutive; pair != nil && pair.A != pair.B {
		if !state.adjacentEverywhere(pair.A, pair.B) || !state.adjacentEverywhere(pair.B, pair.A) {
			return false
		}
	}
	if pair := state.problem.NonConsecutive; pair != nil && pair.A != pair.B {
		for i := 0; i+1 < len(state.assign); i++ {
			left, right := state.assign[i], state.assign[i+1]
			if (left == pair.A && right == pair.B) || (left == pair.B && right == pair.A) {
				return false
			}
		}
	}

	return true
}

// adjacentEverywhere reports whether every occurrence of subject has
// partner in the slot immediately before or after it.
func (state *searchState) adjacentEverywhere(subject, partner int) bool {
	for i, occupant := range state.assign {
		if occupant != subject {
			continue
		}
		before := i > 0 && state.assign[i-1] == partner
		after := i+1 < len(state.assign) && state.assign[i+1] == partner
		if !before && !after {
			return false
		}
	}
	return true
}
