package query

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merqado/storefront/internal/dashboard/domain"
	"github.com/merqado/storefront/pkg/apperrors"
)

type fakeTestRunRepo struct {
	latest *domain.TestRun
	runs   []domain.TestRun
	cases  map[uint][]domain.TestCaseResult
	failID uint

	mu         sync.Mutex
	recentArg  int
	caseLookup []uint
}

func (f *fakeTestRunRepo) FindLatestRun() (*domain.TestRun, error) {
	if f.latest == nil {
		return nil, nil
	}
	run := *f.latest
	return &run, nil
}

func (f *fakeTestRunRepo) FindRecentRuns(limit int) ([]domain.TestRun, error) {
	f.recentArg = limit
	runs := make([]domain.TestRun, len(f.runs))
	copy(runs, f.runs)
	return runs, nil
}

func (f *fakeTestRunRepo) FindCaseResults(runID uint) ([]domain.TestCaseResult, error) {
	f.mu.Lock()
	f.caseLookup = append(f.caseLookup, runID)
	f.mu.Unlock()
	if f.failID != 0 && runID == f.failID {
		return nil, errors.New("connection reset")
	}
	return f.cases[runID], nil
}

func TestGetDashboard(t *testing.T) {
	repo := &fakeTestRunRepo{
		latest: &domain.TestRun{ID: 3, Suite: "checkout"},
		runs: []domain.TestRun{
			{ID: 3, Suite: "checkout"},
			{ID: 2, Suite: "catalog"},
		},
		cases: map[uint][]domain.TestCaseResult{
			3: {{ID: 30, Name: "places order"}},
			2: {{ID: 20, Name: "lists products"}, {ID: 21, Name: "filters by category"}},
		},
	}
	handler := NewGetDashboardHandler(repo)

	data, err := handler.Handle(context.Background(), GetDashboardQuery{})
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultHistoryLimit, repo.recentArg)
	require.NotNil(t, data.LatestRun)
	assert.Len(t, data.LatestRun.TestCases, 1)
	require.Len(t, data.HistoricalRuns, 2)
	assert.Len(t, data.HistoricalRuns[0].TestCases, 1)
	assert.Len(t, data.HistoricalRuns[1].TestCases, 2)
}

func TestGetDashboardNoRuns(t *testing.T) {
	repo := &fakeTestRunRepo{}
	handler := NewGetDashboardHandler(repo)

	data, err := handler.Handle(context.Background(), GetDashboardQuery{Limit: 5})
	require.NoError(t, err)

	assert.Equal(t, 5, repo.recentArg)
	assert.Nil(t, data.LatestRun)
	assert.Empty(t, data.HistoricalRuns)
	assert.Empty(t, repo.caseLookup, "no case fetches without runs")
}

func TestGetDashboardPartialFailureAbortsBatch(t *testing.T) {
	repo := &fakeTestRunRepo{
		latest: &domain.TestRun{ID: 3},
		runs: []domain.TestRun{
			{ID: 3},
			{ID: 2},
		},
		cases:  map[uint][]domain.TestCaseResult{3: {{ID: 30}}},
		failID: 2,
	}
	handler := NewGetDashboardHandler(repo)

	_, err := handler.Handle(context.Background(), GetDashboardQuery{})
	require.Error(t, err)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", apperrors.Code(err))
}
