package model

import (
	"fmt"
	"slices"
	"strings"

	"timegrid/internal/search"
)

// Entry is one scheduled hour of the week.
type Entry struct {
	Slot      string `json:"slot"`
	Subject   string `json:"subject"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Timetable maps every weekday (lowercase) to its schedule, sorted by
// start time. Days without working hours map to empty lists. A multi-slot
// occurrence appears as one entry per occupied slot.
type Timetable map[string][]Entry

// assemble walks the final assignment and groups it per day, time-sorted.
func assemble(grid *SlotGrid, subjects []Subject, assignment search.Assignment) Timetable {
	timetable := make(Timetable, len(weekDays))
	for _, day := range weekDays {
		timetable[day] = []Entry{}
	}

	for slotIndex, subjectIndex := range assignment {
		slot := grid.Slots[slotIndex]
		timetable[slot.Day] = append(timetable[slot.Day], Entry{
			Slot:      slot.Name,
			Subject:   subjects[subjectIndex].Name,
			StartTime: fmt.Sprintf("%02d:00", slot.Hour),
			EndTime:   fmt.Sprintf("%02d:00", slot.Hour+1),
		})
	}

	for day := range timetable {
		slices.SortFunc(timetable[day], func(a, b Entry) int {
			return strings.Compare(a.StartTime, b.StartTime)
		})
	}

	return timetable
}
