package model

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() Request {
	return Request{
		WorkingDays: []WorkingDay{
			{Day: "Monday", StartHour: 9, TotalHours: 3},
		},
		Courses: []Course{
			{Name: "Networks", Instructor: "Dr. Smith", SessionsPerWeek: 3, DurationSlots: 1, AvailStart: 9, AvailEnd: 17},
		},
	}
}

func TestRequestFromJson(t *testing.T) {
	file := path.Join(t.TempDir(), "request.json")
	payload := `{
		"working_days": [{"day": "Monday", "start_hour": 9, "total_hours": 3}],
		"courses": [{"name": "Networks", "instructor": "Dr. Smith", "sessions_per_week": 3, "duration_slots": 1, "avail_start": 9, "avail_end": 17}],
		"consecutive_pair": [],
		"non_consecutive_pair": [],
		"allow_free_padding": true,
		"time_budget_seconds": 5
	}`
	require.NoError(t, os.WriteFile(file, []byte(payload), 0666))

	request, err := RequestFromJson(file)

	require.NoError(t, err)
	assert.Equal(t, "Monday", request.WorkingDays[0].Day)
	assert.Equal(t, 3, request.WorkingDays[0].TotalHours)
	assert.Equal(t, "Networks", request.Courses[0].Name)
	assert.Equal(t, 3, request.Courses[0].SessionsPerWeek)
	assert.True(t, request.AllowFreePadding)
	assert.Equal(t, 5.0, request.TimeBudgetSeconds)
	assert.NoError(t, request.Validate())
}

func TestRequestValidate(t *testing.T) {
	t.Run("empty request is a configuration error", func(t *testing.T) {
		assert.ErrorIs(t, Request{}.Validate(), NewConfigurationError(""))
	})

	t.Run("no courses is a configuration error", func(t *testing.T) {
		request := validRequest()
		request.Courses = nil

		assert.ErrorIs(t, request.Validate(), NewConfigurationError(""))
	})

	t.Run("unknown day is rejected", func(t *testing.T) {
		request := validRequest()
		request.WorkingDays[0].Day = "Caturday"

		assert.ErrorIs(t, request.Validate(), NewConfigurationError(""))
	})

	t.Run("duplicate course name is rejected", func(t *testing.T) {
		request := validRequest()
		request.Courses = append(request.Courses, request.Courses[0])

		assert.ErrorIs(t, request.Validate(), NewConfigurationError(""))
	})

	t.Run("empty availability window is rejected", func(t *testing.T) {
		request := validRequest()
		request.Courses[0].AvailStart = 17
		request.Courses[0].AvailEnd = 17

		assert.ErrorIs(t, request.Validate(), NewConfigurationError(""))
	})

	t.Run("one-element adjacency pair is rejected", func(t *testing.T) {
		request := validRequest()
		request.ConsecutivePair = []string{"Networks"}

		assert.ErrorIs(t, request.Validate(), NewConfigurationError(""))
	})

	t.Run("session count above the weekly cap is rejected", func(t *testing.T) {
		request := validRequest()
		request.Courses[0].SessionsPerWeek = 11

		assert.ErrorIs(t, request.Validate(), NewConfigurationError(""))
	})
}
