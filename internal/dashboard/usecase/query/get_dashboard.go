package query

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/merqado/storefront/internal/dashboard/domain"
	"github.com/merqado/storefront/pkg/apperrors"
)

// GetDashboardQuery represents the QA dashboard query
type GetDashboardQuery struct {
	Limit int
}

// GetDashboardHandler handles the QA dashboard query
type GetDashboardHandler struct {
	repo domain.TestRunRepository
}

// NewGetDashboardHandler creates a new dashboard handler
func NewGetDashboardHandler(repo domain.TestRunRepository) *GetDashboardHandler {
	return &GetDashboardHandler{repo: repo}
}

// Handle fetches the latest and the historical runs, then fans out one
// case-result fetch per run and waits for all of them. The batch is
// all-or-nothing: any single failure aborts it, naming the failed run.
func (h *GetDashboardHandler) Handle(ctx context.Context, q GetDashboardQuery) (*domain.DashboardData, error) {
	limit := q.Limit
	if limit < 1 {
		limit = domain.DefaultHistoryLimit
	}

	latest, err := h.repo.FindLatestRun()
	if err != nil {
		return nil, apperrors.Server(err)
	}

	historical, err := h.repo.FindRecentRuns(limit)
	if err != nil {
		return nil, apperrors.Server(err)
	}

	if err := h.attachCaseResults(ctx, latest, historical); err != nil {
		return nil, apperrors.Server(err)
	}

	return &domain.DashboardData{
		LatestRun:      latest,
		HistoricalRuns: historical,
	}, nil
}

// attachCaseResults loads per-run details concurrently, writing each result
// into its own slot so runs never contend.
func (h *GetDashboardHandler) attachCaseResults(ctx context.Context, latest *domain.TestRun, runs []domain.TestRun) error {
	g, _ := errgroup.WithContext(ctx)

	if latest != nil {
		g.Go(func() error {
			cases, err := h.repo.FindCaseResults(latest.ID)
			if err != nil {
				return fmt.Errorf("run %d: %w", latest.ID, err)
			}
			latest.TestCases = cases
			return nil
		})
	}

	for i := range runs {
		run := &runs[i]
		g.Go(func() error {
			cases, err := h.repo.FindCaseResults(run.ID)
			if err != nil {
				return fmt.Errorf("run %d: %w", run.ID, err)
			}
			run.TestCases = cases
			return nil
		})
	}

	return g.Wait()
}
