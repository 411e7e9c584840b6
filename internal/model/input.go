package model

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// WorkingDay declares how many one-hour slots a weekday contributes and
// from which hour they start. Request order fixes slot priority.
type WorkingDay struct {
	Day        string `json:"day" mapstructure:"day" validate:"required"`
	StartHour  int    `json:"start_hour" mapstructure:"start_hour" validate:"min=0,max=23"`
	TotalHours int    `json:"total_hours" mapstructure:"total_hours" validate:"min=1,max=12"`
}

// Course is one subject as supplied by the UI collaborator.
type Course struct {
	Name            string `json:"name" mapstructure:"name" validate:"required"`
	Instructor      string `json:"instructor" mapstructure:"instructor"`
	SessionsPerWeek int    `json:"sessions_per_week" mapstructure:"sessions_per_week" validate:"min=1,max=10"`
	DurationSlots   int    `json:"duration_slots" mapstructure:"duration_slots" validate:"min=1,max=3"`
	AvailStart      int    `json:"avail_start" mapstructure:"avail_start" validate:"min=0,max=23"`
	AvailEnd        int    `json:"avail_end" mapstructure:"avail_end" validate:"min=1,max=24"`
}

// Request is the immutable input of one solve call.
type Request struct {
	WorkingDays        []WorkingDay `json:"working_days" mapstructure:"working_days" validate:"dive"`
	Courses            []Course     `json:"courses" mapstructure:"courses" validate:"dive"`
	ConsecutivePair    []string     `json:"consecutive_pair" mapstructure:"consecutive_pair" validate:"max=2"`
	NonConsecutivePair []string     `json:"non_consecutive_pair" mapstructure:"non_consecutive_pair" validate:"max=2"`
	AllowFreePadding   bool         `json:"allow_free_padding" mapstructure:"allow_free_padding"`
	TimeBudgetSeconds  float64      `json:"time_budget_seconds" mapstructure:"time_budget_seconds" validate:"min=0"`
}

var validate = validator.New()

// RequestFromJson reads a request from a JSON file.
func RequestFromJson(file string) (Request, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Request{}, err
	}

	var requestJson map[string]any
	if err := json.Unmarshal(bytes, &requestJson); err != nil {
		return Request{}, err
	}

	var request Request
	if err := mapstructure.Decode(requestJson, &request); err != nil {
		return Request{}, err
	}

	return request, nil
}

// Validate rejects requests that cannot reach slot construction.
func (r Request) Validate() error {
	if len(r.WorkingDays) == 0 || len(r.Courses) == 0 {
		return NewConfigurationError("no working days or no courses provided")
	}
	if err := validate.Struct(r); err != nil {
		return NewConfigurationError("invalid request: %v", err)
	}

	for _, day := range r.WorkingDays {
		if _, known := dayAbbreviations[strings.ToLower(day.Day)]; !known {
			return NewConfigurationError("unknown working day %q", day.Day)
		}
	}
	if duplicated := lo.FindDuplicatesBy(r.WorkingDays, func(day WorkingDay) string {
		return strings.ToLower(day.Day)
	}); len(duplicated) > 0 {
		return NewConfigurationError("working day %q configured twice", duplicated[0].Day)
	}

	for _, course := range r.Courses {
		if course.AvailStart >= course.AvailEnd {
			return NewConfigurationError("course %q has an empty availability window [%d, %d)",
				course.Name, course.AvailStart, course.AvailEnd)
		}
	}
	if duplicated := lo.FindDuplicatesBy(r.Courses, func(course Course) string {
		return course.Name
	}); len(duplicated) > 0 {
		return NewConfigurationError("course %q declared twice", duplicated[0].Name)
	}

	for _, pair := range [][]string{r.ConsecutivePair, r.NonConsecutivePair} {
		if len(pair) == 1 {
			return NewConfigurationError("adjacency pairs need exactly two course names, got %v", pair)
		}
	}

	return nil
}
