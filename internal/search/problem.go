package search

import "github.com/samber/lo"

// Subject is the solver-level view of a schedulable subject. Identity is
// the subject's position in Problem.Subjects; the caller owns the mapping
// back to names.
type Subject struct {
	Sessions  int // weekly occurrences
	Duration  int // slots per occurrence
	AvailFrom int // first admissible start hour, inclusive
	AvailTo   int // last admissible start hour, exclusive
}

// RequiredSlots returns how many slots the subject's weekly occurrences
// consume in total.
func (s Subject) RequiredSlots() int {
	return s.Sessions * s.Duration
}

// Pair identifies two subjects bound by an adjacency relation.
type Pair struct {
	A int
	B int
}

// Problem is a solver-neutral description of one weekly grid. Slots are
// identified by index in day-major order; SlotDay and SlotHour must have
// equal length.
type Problem struct {
	SlotDay  []int // day ordinal per slot
	SlotHour []int // start hour per slot

	Subjects []Subject

	Consecutive    *Pair // every occurrence of A needs an adjacent B and vice versa
	NonConsecutive *Pair // no occurrence of A may touch an occurrence of B

	NodeBudget uint64 // candidate trials before giving up; 0 means unbounded
}

// Assignment maps every slot index to a subject index. A nil Assignment
// stands for a proven-infeasible problem.
type Assignment []int

const unassigned = -1

// Demand returns the total number of slots the subjects require.
func (p Problem) Demand() int {
	return lo.SumBy(p.Subjects, func(s Subject) int { return s.RequiredSlots() })
}

func (p Problem) slotCount() int { return len(p.SlotDay) }
