package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"timegrid/internal/model"
)

type timetableBuilder interface {
	Build(ctx context.Context, request model.Request) (model.Timetable, error)
}

// TimetableHandler exposes the timetable engine to the UI collaborator.
// Failures are returned as {"error": reason} with the taxonomy's status.
type TimetableHandler struct {
	timetabler timetableBuilder
}

func NewTimetableHandler(timetabler model.Timetabler) *TimetableHandler {
	return &TimetableHandler{timetabler: timetabler}
}

// Generate solves one request and responds with the per-day schedule.
func (h *TimetableHandler) Generate(c *gin.Context) {
	var request model.Request
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request payload: %v", err)})
		return
	}

	timetable, err := h.timetabler.Build(c.Request.Context(), request)
	if err != nil {
		domainErr := model.AsError(err)
		c.JSON(domainErr.Status, gin.H{"error": domainErr.Message})
		return
	}

	c.JSON(http.StatusOK, timetable)
}
