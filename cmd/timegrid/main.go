package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"timegrid/internal/config"
	"timegrid/internal/logger"
	"timegrid/internal/model"
	"timegrid/internal/search"
	"timegrid/internal/server"
)

var (
	filePath   string
	outFile    string
	workers    int
	timeBudget time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "timegrid",
	Short: "Weekly timetable constraint solver",
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve one timetable request from a JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if filePath == "" {
			return fmt.Errorf("an input file must be specified")
		}

		request, err := model.RequestFromJson(filePath)
		if err != nil {
			return fmt.Errorf("cannot parse input file: %w", err)
		}

		timetabler := model.NewTimetabler(newSolver(workers), zap.NewNop(), model.TimetablerConfig{TimeBudget: timeBudget})

		timetable, err := timetabler.Build(context.Background(), request)
		if err != nil {
			domainErr := model.AsError(err)
			if writeErr := emit(map[string]string{"error": domainErr.Message}); writeErr != nil {
				return writeErr
			}
			os.Exit(1)
		}

		if !timetabler.Verify(timetable, request) {
			return fmt.Errorf("verification failed: produced timetable violates its own constraints")
		}

		return emit(timetable)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the timetable engine over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("cannot load configuration: %w", err)
		}

		log, err := logger.New(cfg)
		if err != nil {
			return fmt.Errorf("cannot build logger: %w", err)
		}
		defer func() { _ = log.Sync() }()

		timetabler := model.NewTimetabler(
			newSolver(cfg.Solver.Workers),
			log,
			model.TimetablerConfig{TimeBudget: cfg.Solver.TimeBudget, NodeBudget: cfg.Solver.NodeBudget},
		)

		return server.New(cfg, timetabler, log).Run()
	},
}

func newSolver(workers int) search.Solver {
	if workers > 1 {
		return search.NewParallelSolver(workers)
	}
	return search.NewBacktrackingSolver()
}

// emit writes v as JSON to the output file, or to standard output when no
// file was requested.
func emit(v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cannot marshal output: %w", err)
	}

	if outFile == "" {
		fmt.Println(string(payload))
		return nil
	}
	return os.WriteFile(outFile, payload, 0666)
}

func main() {
	solveCmd.Flags().StringVar(&filePath, "file", "", "Path to the request JSON file")
	solveCmd.Flags().StringVar(&outFile, "out", "", "Path to write the timetable JSON; standard output when empty")
	solveCmd.Flags().IntVar(&workers, "workers", 1, "Parallel search workers; 1 keeps the search deterministic")
	solveCmd.Flags().DurationVar(&timeBudget, "time-budget", model.DefaultTimeBudget, "Wall-clock budget for the search")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
