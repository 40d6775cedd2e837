package domain

import "time"

// DefaultHistoryLimit caps how many historical runs the dashboard shows.
const DefaultHistoryLimit = 20

// TestRun is one recorded execution of the QA suite.
type TestRun struct {
	ID          uint             `json:"id"`
	Suite       string           `json:"suite"`
	Status      string           `json:"status"`
	TotalTests  int              `json:"total_tests"`
	PassedTests int              `json:"passed_tests"`
	FailedTests int              `json:"failed_tests"`
	DurationMs  int              `json:"duration_ms"`
	CreatedAt   time.Time        `json:"created_at"`
	TestCases   []TestCaseResult `json:"testCases"`
}

// TestCaseResult is one case outcome within a run.
type TestCaseResult struct {
	ID           uint    `json:"id"`
	TestRunID    uint    `json:"test_run_id"`
	Name         string  `json:"name"`
	Status       string  `json:"status"`
	DurationMs   int     `json:"duration_ms"`
	ErrorMessage *string `json:"error_message"`
}

// DashboardData is the admin QA dashboard payload.
type DashboardData struct {
	LatestRun      *TestRun  `json:"latestRun"`
	HistoricalRuns []TestRun `json:"historicalRuns"`
}

// TestRunRepository defines the contract for QA run data access.
type TestRunRepository interface {
	FindLatestRun() (*TestRun, error)
	FindRecentRuns(limit int) ([]TestRun, error)
	FindCaseResults(runID uint) ([]TestCaseResult, error)
}
