package services

import (
	"context"
	"time"

	"finance-assistant/internal/backend"
	"finance-assistant/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DashboardInputs holds the three fetched collections and the error of each fetch
type DashboardInputs struct {
	Transactions    []models.Transaction
	TransactionsErr error
	Goals           []models.Goal
	GoalsErr        error
	Categories      []models.CategoryStat
	CategoriesErr   error
}

// AggregateDashboard computes the summary. Transactions and goals are required:
// if either failed the summary is an error state naming it, transactions first.
// Categories are optional and count as zero when their fetch failed.
func AggregateDashboard(in DashboardInputs, now time.Time) *models.DashboardSummary {
	summary := &models.DashboardSummary{GeneratedAt: now}

	if failed := hardFailure(in); failed != nil {
		summary.Status = models.DashboardStatusError
		summary.TotalBalance = decimal.Zero
		summary.Error = failed
		return summary
	}

	balance := decimal.Zero
	monthly := 0
	for _, tx := range in.Transactions {
		balance = balance.Add(tx.SignedAmount())
		if tx.InMonthOf(now) {
			monthly++
		}
	}

	active := 0
	for _, goal := range in.Goals {
		if goal.IsActive() {
			active++
		}
	}

	summary.Status = models.DashboardStatusOK
	summary.TotalBalance = balance
	summary.MonthlyTransactionCount = monthly
	summary.ActiveGoalCount = active

	if in.CategoriesErr != nil {
		summary.CategoriesDegraded = true
	} else {
		summary.CategoryCount = len(in.Categories)
	}

	return summary
}

func hardFailure(in DashboardInputs) *models.DashboardError {
	switch {
	case in.TransactionsErr != nil:
		return &models.DashboardError{
			Source:  models.DashboardSourceTransactions,
			Message: "Failed to load transactions",
			Cause:   in.TransactionsErr,
		}
	case in.GoalsErr != nil:
		return &models.DashboardError{
			Source:  models.DashboardSourceGoals,
			Message: "Failed to load savings goals",
			Cause:   in.GoalsErr,
		}
	default:
		return nil
	}
}

type dashboardService struct {
	client         backend.ClientInterface
	categoryPeriod int
	fetchTimeout   time.Duration
	now            func() time.Time
	metrics        MetricsRecorderInterface
	audit          AuditLoggerInterface
}

// NewDashboardService creates the dashboard aggregator. A nil clock uses time.Now.
func NewDashboardService(client backend.ClientInterface, categoryPeriod int, fetchTimeout time.Duration, now func() time.Time, metrics MetricsRecorderInterface) DashboardServiceInterface {
	if now == nil {
		now = time.Now
	}
	return &dashboardService{
		client:         client,
		categoryPeriod: categoryPeriod,
		fetchTimeout:   fetchTimeout,
		now:            now,
		metrics:        metricsOrNoop(metrics),
		audit:          NewAuditLogger(nil),
	}
}

// GetSummary fetches the three collections concurrently and aggregates them.
// Fetch failures are recorded per source and never cancel the other fetches.
func (s *dashboardService) GetSummary(ctx context.Context) *models.DashboardSummary {
	start := time.Now()

	if s.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.fetchTimeout)
		defer cancel()
	}

	var in DashboardInputs
	var g errgroup.Group

	g.Go(func() error {
		in.Transactions, in.TransactionsErr = s.client.ListTransactions(ctx)
		return nil
	})
	g.Go(func() error {
		in.Goals, in.GoalsErr = s.client.ListGoals(ctx)
		return nil
	})
	g.Go(func() error {
		in.Categories, in.CategoriesErr = s.client.CategoryStats(ctx, s.categoryPeriod)
		return nil
	})
	_ = g.Wait()

	s.recordFailure(ctx, models.DashboardSourceTransactions, in.TransactionsErr)
	s.recordFailure(ctx, models.DashboardSourceGoals, in.GoalsErr)
	s.recordFailure(ctx, models.DashboardSourceCategories, in.CategoriesErr)

	summary := AggregateDashboard(in, s.now())

	s.metrics.RecordProcessingTime(MetricDashboardBuild, time.Since(start))
	s.metrics.RecordGauge(MetricCircuitBreakerState, float64(s.client.CircuitState()), map[string]string{"service": "backend"})

	return summary
}

func (s *dashboardService) recordFailure(ctx context.Context, source string, err error) {
	if err == nil {
		return
	}
	s.metrics.IncrementCounter(MetricDashboardFetchFailed, map[string]string{"source": source})
	s.audit.LogDashboardSourceFailed(ctx, source, source != models.DashboardSourceCategories, err)
}
