package model

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"timegrid/internal/search"
)

type cspTimetabler struct {
	solver search.Solver
	logger *zap.Logger
	cfg    TimetablerConfig
}

func newCspTimetabler(solver search.Solver, logger *zap.Logger, cfg TimetablerConfig) *cspTimetabler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.TimeBudget <= 0 {
		cfg.TimeBudget = DefaultTimeBudget
	}
	return &cspTimetabler{solver: solver, logger: logger, cfg: cfg}
}

func (timetabler *cspTimetabler) Build(ctx context.Context, request Request) (Timetable, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	//** Derive the slot space and the normalized demand
	grid, err := BuildSlotGrid(request.WorkingDays)
	if err != nil {
		return nil, err
	}
	subjects, err := normalizeDemand(request.Courses, len(grid.Slots), request.AllowFreePadding)
	if err != nil {
		return nil, err
	}

	//** Pre-search feasibility: every subject needs at least one admissible block start
	for _, subject := range subjects {
		if !hasFeasibleStart(grid, subject) {
			return nil, NewSubjectUnschedulableError(subject.Name)
		}
	}

	//** Delegate to the search backend
	budget := timetabler.cfg.TimeBudget
	if request.TimeBudgetSeconds > 0 {
		budget = time.Duration(request.TimeBudgetSeconds * float64(time.Second))
	}
	ctx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	started := time.Now()
	assignment, err := timetabler.solver.Solve(ctx, encodeProblem(grid, subjects, request, timetabler.cfg.NodeBudget))
	if errors.Is(err, search.ErrBudgetExhausted) {
		timetabler.logger.Warn("timetable search ran out of budget",
			zap.Duration("budget", budget),
			zap.Int("slots", len(grid.Slots)))
		return nil, NewTimeoutError()
	} else if err != nil {
		return nil, AsError(err)
	} else if assignment == nil {
		return nil, NewInfeasibleError()
	}

	timetabler.logger.Info("timetable built",
		zap.Int("slots", len(grid.Slots)),
		zap.Int("subjects", len(subjects)),
		zap.Duration("elapsed", time.Since(started)))

	return assemble(grid, subjects, assignment), nil
}

func (timetabler *cspTimetabler) Verify(timetable Timetable, request Request) bool {
	grid, err := BuildSlotGrid(request.WorkingDays)
	if err != nil {
		return false
	}
	subjects, err := normalizeDemand(request.Courses, len(grid.Slots), request.AllowFreePadding)
	if err != nil {
		return false
	}

	assignment, ok := disassemble(timetable, grid, subjects)
	if !ok {
		return false
	}

	return verifyAssignment(assignment, grid, subjects, request)
}
