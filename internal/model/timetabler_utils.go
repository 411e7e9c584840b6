package model

import (
	"fmt"

	"github.com/samber/lo"

	"timegrid/internal/search"
)

// hasFeasibleStart reports whether the grid holds at least one same-day,
// availability-admissible block start for the subject.
func hasFeasibleStart(grid *SlotGrid, subject Subject) bool {
	for start := 0; start+subject.Duration <= len(grid.Slots); start++ {
		if grid.Slots[start+subject.Duration-1].Day != grid.Slots[start].Day {
			continue
		}

		admissible := true
		for i := start; i < start+subject.Duration; i++ {
			hour := grid.Slots[i].Hour
			if hour < subject.AvailStart || hour >= subject.AvailEnd {
				admissible = false
				break
			}
		}
		if admissible {
			return true
		}
	}
	return false
}

// encodeProblem maps the domain view onto the solver-neutral problem.
// Subject identity becomes the declaration index.
func encodeProblem(grid *SlotGrid, subjects []Subject, request Request, nodeBudget uint64) search.Problem {
	dayOrdinal := make(map[string]int, len(grid.Days))
	for ordinal, day := range grid.Days {
		dayOrdinal[day] = ordinal
	}

	return search.Problem{
		SlotDay: lo.Map(grid.Slots, func(slot Slot, _ int) int {
			return dayOrdinal[slot.Day]
		}),
		SlotHour: lo.Map(grid.Slots, func(slot Slot, _ int) int {
			return slot.Hour
		}),
		Subjects: lo.Map(subjects, func(subject Subject, _ int) search.Subject {
			return search.Subject{
				Sessions:  subject.Sessions,
				Duration:  subject.Duration,
				AvailFrom: subject.AvailStart,
				AvailTo:   subject.AvailEnd,
			}
		}),
		Consecutive:    encodePair(request.ConsecutivePair, subjects),
		NonConsecutive: encodePair(request.NonConsecutivePair, subjects),
		NodeBudget:     nodeBudget,
	}
}

// encodePair resolves a named adjacency pair to subject indices. Pairs
// naming an unknown subject or the same subject twice impose nothing.
func encodePair(pair []string, subjects []Subject) *search.Pair {
	if len(pair) != 2 || pair[0] == "" || pair[1] == "" {
		return nil
	}

	first, okFirst := subjectIndex(subjects, pair[0])
	second, okSecond := subjectIndex(subjects, pair[1])
	if !okFirst || !okSecond || first == second {
		return nil
	}

	return &search.Pair{A: first, B: second}
}

func subjectIndex(subjects []Subject, name string) (int, bool) {
	_, index, found := lo.FindIndexOf(subjects, func(subject Subject) bool { return subject.Name == name })
	return index, found
}

// disassemble maps a timetable back onto a total slot assignment. It fails
// when a day, slot, or subject is unknown, a slot is covered twice or not
// at all, or an entry's times disagree with its slot.
func disassemble(timetable Timetable, grid *SlotGrid, subjects []Subject) (search.Assignment, bool) {
	slotByName := lo.SliceToMap(grid.Slots, func(slot Slot) (string, Slot) { return slot.Name, slot })

	assignment := make(search.Assignment, len(grid.Slots))
	for i := range assignment {
		assignment[i] = -1
	}

	for day, entries := range timetable {
		for _, entry := range entries {
			slot, known := slotByName[entry.Slot]
			if !known || slot.Day != day {
				return nil, false
			}
			if entry.StartTime != fmt.Sprintf("%02d:00", slot.Hour) || entry.EndTime != fmt.Sprintf("%02d:00", slot.Hour+1) {
				return nil, false
			}
			subject, found := subjectIndex(subjects, entry.Subject)
			if !found || assignment[slot.Index] != -1 {
				return nil, false
			}
			assignment[slot.Index] = subject
		}
	}

	return assignment, !lo.Contains(assignment, -1)
}

// verifyAssignment re-checks every constraint on a total assignment:
// quotas, availability, multi-slot contiguity with day confinement, and
// the adjacency relations.
func verifyAssignment(assignment search.Assignment, grid *SlotGrid, subjects []Subject, request Request) bool {
	counts := lo.CountValues(assignment)
	for index, subject := range subjects {
		if counts[index] != subject.RequiredSlots() {
			return false
		}
	}

	for slotIndex, occupant := range assignment {
		subject := subjects[occupant]
		hour := grid.Slots[slotIndex].Hour
		if hour < subject.AvailStart || hour >= subject.AvailEnd {
			return false
		}
	}

	for index, subject := range subjects {
		if subject.Duration > 1 && !runsConfined(assignment, grid, index, subject.Duration) {
			return false
		}
	}

	if pair := encodePair(request.ConsecutivePair, subjects); pair != nil {
		if !pairedEverywhere(assignment, pair.A, pair.B) || !pairedEverywhere(assignment, pair.B, pair.A) {
			return false
		}
	}
	if pair := encodePair(request.NonConsecutivePair, subjects); pair != nil {
		for i := 0; i+1 < len(assignment); i++ {
			left, right := assignment[i], assignment[i+1]
			if (left == pair.A && right == pair.B) || (left == pair.B && right == pair.A) {
				return false
			}
		}
	}

	return true
}

// runsConfined groups the subject's slot indices into maximal consecutive
// runs; every run must be exactly duration long and stay within one day.
func runsConfined(assignment search.Assignment, grid *SlotGrid, subject, duration int) bool {
	indices := []int{}
	for slotIndex, occupant := range assignment {
		if occupant == subject {
			indices = append(indices, slotIndex)
		}
	}

	for i := 0; i < len(indices); {
		runStart := i
		for i++; i < len(indices) && indices[i] == indices[i-1]+1; i++ {
		}
		run := indices[runStart:i]
		if len(run) != duration {
			return false
		}
		if grid.Slots[run[0]].Day != grid.Slots[run[len(run)-1]].Day {
			return false
		}
	}
	return true
}

func pairedEverywhere(assignment search.Assignment, subject, partner int) bool {
	for i, occupant := range assignment {
		if occupant != subject {
			continue
		}
		before := i > 0 && assignment[i-1] == partner
		after := i+1 < len(assignment) && assignment[i+1] == partner
		if !before && !after {
			return false
		}
	}
	return true
}
