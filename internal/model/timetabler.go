package model

import (
	"context"
	"time"

	"go.uber.org/zap"

	"timegrid/internal/search"
)

// DefaultTimeBudget bounds a solve call when neither the request nor the
// configuration carries a budget.
const DefaultTimeBudget = 10 * time.Second

type Timetabler interface {
	// Build produces one feasible timetable for the request, or a typed
	// error. It is stateless per call and blocks until a solution, proven
	// infeasibility, or the time budget.
	Build(ctx context.Context, request Request) (Timetable, error)

	// Verify independently re-checks a timetable against the request it
	// was built from.
	Verify(timetable Timetable, request Request) bool
}

// TimetablerConfig carries engine defaults applied when the request does
// not override them.
type TimetablerConfig struct {
	TimeBudget time.Duration
	NodeBudget uint64
}

func NewTimetabler(solver search.Solver, logger *zap.Logger, cfg TimetablerConfig) Timetabler {
	return newCspTimetabler(solver, logger, cfg)
}
