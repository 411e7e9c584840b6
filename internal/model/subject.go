package model

import (
	"fmt"

	"github.com/samber/lo"
)

const freeSubjectBase = "Free"

// Subject is a normalized course record with its exact weekly slot demand.
type Subject struct {
	Name       string
	Sessions   int
	Duration   int
	AvailStart int
	AvailEnd   int
}

// RequiredSlots returns the number of grid slots the subject consumes per
// week.
func (s Subject) RequiredSlots() int {
	return s.Sessions * s.Duration
}

// normalizeDemand turns courses into subject records and balances their
// demand against the grid capacity. Surplus capacity is either absorbed by
// an injected free-period subject or rejected, depending on allowFree; a
// deficit is always rejected. Runs before any search as an O(1) pre-filter.
func normalizeDemand(courses []Course, totalSlots int, allowFree bool) ([]Subject, error) {
	subjects := lo.Map(courses, func(course Course, _ int) Subject {
		return Subject{
			Name:       course.Name,
			Sessions:   course.SessionsPerWeek,
			Duration:   course.DurationSlots,
			AvailStart: course.AvailStart,
			AvailEnd:   course.AvailEnd,
		}
	})

	required := lo.SumBy(subjects, func(subject Subject) int { return subject.RequiredSlots() })
	switch {
	case totalSlots < required:
		return nil, NewCapacityMismatchError(
			"total available slots (%d) < total required subject-slots (%d); increase working hours or reduce session counts",
			totalSlots, required)
	case totalSlots > required && !allowFree:
		return nil, NewCapacityMismatchError(
			"total available slots (%d) != total required subject-slots (%d); adjust working hours or session counts, or enable free-period padding",
			totalSlots, required)
	case totalSlots > required:
		subjects = append(subjects, freeSubject(subjects, totalSlots-required))
	}

	return subjects, nil
}

// freeSubject builds the synthetic padding subject: unrestricted
// availability, duration 1, absorbing exactly the surplus. Its name is
// disambiguated against the declared subjects.
func freeSubject(subjects []Subject, surplus int) Subject {
	taken := func(name string) bool {
		return lo.ContainsBy(subjects, func(subject Subject) bool { return subject.Name == name })
	}

	name := freeSubjectBase
	for counter := 1; taken(name); counter++ {
		name = fmt.Sprintf("%s_%d", freeSubjectBase, counter)
	}

	return Subject{Name: name, Sessions: surplus, Duration: 1, AvailStart: 0, AvailEnd: 24}
}
