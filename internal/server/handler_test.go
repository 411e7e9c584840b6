package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"timegrid/internal/model"
)

type timetablerMock struct {
	captured  model.Request
	timetable model.Timetable
	err       error
}

func (m *timetablerMock) Build(ctx context.Context, request model.Request) (model.Timetable, error) {
	m.captured = request
	return m.timetable, m.err
}

func postTimetable(handler *TimetableHandler, payload []byte) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/timetable", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Generate(c)
	return w
}

func TestGenerateSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &timetablerMock{
		timetable: model.Timetable{
			"monday": {{Slot: "M1", Subject: "Networks", StartTime: "09:00", EndTime: "10:00"}},
		},
	}
	handler := &TimetableHandler{timetabler: mock}

	payload := []byte(`{
		"working_days": [{"day": "Monday", "start_hour": 9, "total_hours": 1}],
		"courses": [{"name": "Networks", "sessions_per_week": 1, "duration_slots": 1, "avail_start": 9, "avail_end": 17}]
	}`)
	w := postTimetable(handler, payload)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Networks", mock.captured.Courses[0].Name)

	var body map[string][]model.Entry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "M1", body["monday"][0].Slot)
}

func TestGenerateInvalidPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := &TimetableHandler{timetabler: &timetablerMock{}}

	w := postTimetable(handler, []byte(`{"working_days":`))

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Contains(t, body, "error")
}

func TestGenerateDomainError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := &TimetableHandler{timetabler: &timetablerMock{err: model.NewInfeasibleError()}}

	w := postTimetable(handler, []byte(`{"working_days": [], "courses": []}`))

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, model.NewInfeasibleError().Message, body["error"])
}
