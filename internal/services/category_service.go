package services

import (
	"context"
	"errors"
	"fmt"

	"finance-assistant/internal/backend"
	"finance-assistant/internal/dto"
	"finance-assistant/internal/models"
	"finance-assistant/internal/validation"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPeriod = errors.New("period must be one of 7, 30, 90 or 365 days")
	ErrInvalidFilter = errors.New("filter must be one of all, income or expense")
)

// DefaultReportPeriod is used when a request does not name a period
const DefaultReportPeriod = 30

var reportPeriods = map[int]bool{7: true, 30: true, 90: true, 365: true}

// NormalizePeriod applies the default period and rejects unsupported ones
func NormalizePeriod(period int) (int, error) {
	if period == 0 {
		return DefaultReportPeriod, nil
	}
	if !reportPeriods[period] {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidPeriod, period)
	}
	return period, nil
}

type categoryService struct {
	formRecorder
	client    backend.ClientInterface
	validator *validation.Validator
}

// NewCategoryService creates the categories page service
func NewCategoryService(client backend.ClientInterface, metrics MetricsRecorderInterface) CategoryServiceInterface {
	return &categoryService{
		formRecorder: newFormRecorder(metrics),
		client:       client,
		validator:    validation.GetValidator(),
	}
}

// Stats returns the category statistics for period narrowed by filter, with
// spending and income totals over the categories that remain.
func (s *categoryService) Stats(ctx context.Context, period int, filter string) (*models.CategoryStatsView, error) {
	period, err := NormalizePeriod(period)
	if err != nil {
		return nil, err
	}
	if filter == "" {
		filter = models.CategoryFilterAll
	}
	if !models.IsValidCategoryFilter(filter) {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidFilter, filter)
	}

	stats, err := s.client.CategoryStats(ctx, period)
	if err != nil {
		return nil, err
	}

	return BuildCategoryStatsView(stats, period, filter), nil
}

// BuildCategoryStatsView filters stats and computes per-type totals
func BuildCategoryStatsView(stats []models.CategoryStat, period int, filter string) *models.CategoryStatsView {
	filtered := make([]models.CategoryStat, 0, len(stats))
	spending := decimal.Zero
	income := decimal.Zero

	for _, stat := range stats {
		if filter != models.CategoryFilterAll && stat.Type != filter {
			continue
		}
		filtered = append(filtered, stat)

		switch stat.Type {
		case models.CategoryTypeExpense:
			spending = spending.Add(stat.TotalSpent.OrZero())
		case models.CategoryTypeIncome:
			income = income.Add(stat.TotalSpent.OrZero())
		}
	}

	return &models.CategoryStatsView{
		Period:        period,
		Filter:        filter,
		Categories:    filtered,
		TotalSpending: spending.StringFixed(2),
		TotalIncome:   income.StringFixed(2),
	}
}

func (s *categoryService) Seed(ctx context.Context) (msg string, err error) {
	defer func() { s.record(ctx, OpSeedCategories, err) }()

	msg, err = s.client.SeedCategories(ctx)
	if err != nil {
		return "", submissionError(OpSeedCategories, err)
	}
	return msg, nil
}

func (s *categoryService) Create(ctx context.Context, req *dto.CategoryRequest) (msg string, err error) {
	defer func() { s.record(ctx, OpCreateCategory, err) }()

	if err := validateForm(s.validator, req); err != nil {
		return "", err
	}

	msg, err = s.client.CreateCategory(ctx, req)
	if err != nil {
		return "", submissionError(OpCreateCategory, err)
	}
	return msg, nil
}

func (s *categoryService) Delete(ctx context.Context, id int) (err error) {
	defer func() { s.record(ctx, OpDeleteCategory, err) }()

	return submissionError(OpDeleteCategory, s.client.DeleteCategory(ctx, id))
}
