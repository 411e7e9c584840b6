package model

import (
	"fmt"
	"strings"
)

// lunchHour is reserved: no session may start at it.
const lunchHour = 12

// weekDays lists the seven weekday names in calendar order; responses
// always carry all of them.
var weekDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

var dayAbbreviations = map[string]string{
	"monday":    "M",
	"tuesday":   "T",
	"wednesday": "W",
	"thursday":  "Th",
	"friday":    "F",
	"saturday":  "Sa",
	"sunday":    "Su",
}

// Slot is one atomic schedulable unit of the weekly grid.
type Slot struct {
	Index int
	Name  string // day abbreviation plus 1-based ordinal within the day, e.g. "Th3"
	Day   string // lowercase day name
	Hour  int    // start hour; never the lunch hour
}

// SlotGrid is the ordered slot sequence of one week, day-major in request
// order and hour-major within a day.
type SlotGrid struct {
	Slots  []Slot
	Days   []string       // lowercase day names in request order
	PerDay map[string]int // slot count contributed by each included day
}

// BuildSlotGrid expands the working days into the ordered slot sequence.
// Whenever the running hour lands on the lunch hour it advances past it,
// so a day still contributes exactly TotalHours slots; a day configured to
// start at the lunch hour effectively starts one hour later.
func BuildSlotGrid(days []WorkingDay) (*SlotGrid, error) {
	grid := &SlotGrid{PerDay: make(map[string]int)}

	for _, workingDay := range days {
		day := strings.ToLower(workingDay.Day)
		abbreviation, known := dayAbbreviations[day]
		if !known {
			return nil, NewConfigurationError("unknown working day %q", workingDay.Day)
		}
		if _, duplicate := grid.PerDay[day]; duplicate {
			return nil, NewConfigurationError("working day %q configured twice", workingDay.Day)
		}

		grid.Days = append(grid.Days, day)
		hour := workingDay.StartHour
		for ordinal := 1; ordinal <= workingDay.TotalHours; ordinal++ {
			for hour == lunchHour {
				hour++
			}
			grid.Slots = append(grid.Slots, Slot{
				Index: len(grid.Slots),
				Name:  fmt.Sprintf("%s%d", abbreviation, ordinal),
				Day:   day,
				Hour:  hour,
			})
			hour++
		}
		grid.PerDay[day] = workingDay.TotalHours
	}

	return grid, nil
}
