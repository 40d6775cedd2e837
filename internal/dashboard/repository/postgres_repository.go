package repository

import (
	"database/sql"
	"fmt"

	"github.com/merqado/storefront/internal/dashboard/domain"
)

// PostgresTestRunRepository implements TestRunRepository over plain SQL.
type PostgresTestRunRepository struct {
	db *sql.DB
}

// NewPostgresTestRunRepository creates a new PostgreSQL test run repository
func NewPostgresTestRunRepository(db *sql.DB) *PostgresTestRunRepository {
	return &PostgresTestRunRepository{db: db}
}

const runColumns = `id, suite, status, total_tests, passed_tests, failed_tests, duration_ms, created_at`

func scanRun(row interface{ Scan(...any) error }) (*domain.TestRun, error) {
	run := &domain.TestRun{}
	err := row.Scan(
		&run.ID,
		&run.Suite,
		&run.Status,
		&run.TotalTests,
		&run.PassedTests,
		&run.FailedTests,
		&run.DurationMs,
		&run.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return run, nil
}

// FindLatestRun retrieves the most recent run, or nil when none exist.
func (r *PostgresTestRunRepository) FindLatestRun() (*domain.TestRun, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM test_runs
		ORDER BY created_at DESC
		LIMIT 1
	`, runColumns)

	run, err := scanRun(r.db.QueryRow(query))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find latest run: %w", err)
	}
	return run, nil
}

// FindRecentRuns retrieves the newest runs up to limit.
func (r *PostgresTestRunRepository) FindRecentRuns(limit int) ([]domain.TestRun, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM test_runs
		ORDER BY created_at DESC
		LIMIT $1
	`, runColumns)

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find recent runs: %w", err)
	}
	defer rows.Close()

	runs := []domain.TestRun{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	return runs, nil
}

// FindCaseResults retrieves the case outcomes of one run.
func (r *PostgresTestRunRepository) FindCaseResults(runID uint) ([]domain.TestCaseResult, error) {
	query := `
		SELECT id, test_run_id, name, status, duration_ms, error_message
		FROM test_case_results
		WHERE test_run_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to find case results: %w", err)
	}
	defer rows.Close()

	results := []domain.TestCaseResult{}
	for rows.Next() {
		result := domain.TestCaseResult{}
		err := rows.Scan(
			&result.ID,
			&result.TestRunID,
			&result.Name,
			&result.Status,
			&result.DurationMs,
			&result.ErrorMessage,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan case result: %w", err)
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate case results: %w", err)
	}

	return results, nil
}

// InitSchema creates the QA tables if they don't exist
func (r *PostgresTestRunRepository) InitSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS test_runs (
			id SERIAL PRIMARY KEY,
			suite VARCHAR(100) NOT NULL DEFAULT 'storefront',
			status VARCHAR(20) NOT NULL,
			total_tests INT NOT NULL DEFAULT 0,
			passed_tests INT NOT NULL DEFAULT 0,
			failed_tests INT NOT NULL DEFAULT 0,
			duration_ms INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS test_case_results (
			id SERIAL PRIMARY KEY,
			test_run_id INT NOT NULL REFERENCES test_runs(id),
			name VARCHAR(255) NOT NULL,
			status VARCHAR(20) NOT NULL,
			duration_ms INT NOT NULL DEFAULT 0,
			error_message TEXT
		)
	`

	if _, err := r.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
