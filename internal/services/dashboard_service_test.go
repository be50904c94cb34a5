package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"finance-assistant/internal/backend"
	"finance-assistant/internal/backend/backend_mocks"
	"finance-assistant/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func tx(amount, txType, date string) models.Transaction {
	return models.Transaction{
		Description:     gofakeit.Sentence(5),
		Amount:          models.ParseAmount(amount),
		TransactionType: txType,
		TransactionDate: date,
	}
}

func goalWithStatus(status string) models.Goal {
	return models.Goal{Name: gofakeit.Word(), Status: status}
}

type DashboardServiceSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	client  *backend_mocks.MockClientInterface
	now     time.Time
	service DashboardServiceInterface
}

func (s *DashboardServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.client = backend_mocks.NewMockClientInterface(s.ctrl)
	s.client.EXPECT().CircuitState().Return(backend.StateClosed).AnyTimes()
	s.now = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	s.service = NewDashboardService(s.client, 30, time.Second, func() time.Time { return s.now }, nil)
}

func (s *DashboardServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDashboardServiceSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceSuite))
}

func (s *DashboardServiceSuite) TestAggregate_Balance() {
	summary := AggregateDashboard(DashboardInputs{
		Transactions: []models.Transaction{
			tx("100", models.TransactionTypeIncome, "2026-10-01"),
			tx("40", models.TransactionTypeExpense, "2026-10-02"),
		},
	}, s.now)

	s.Equal(models.DashboardStatusOK, summary.Status)
	s.True(summary.TotalBalance.Equal(decimal.NewFromInt(60)))
	s.Equal("60.00", summary.DisplayBalance())
}

func (s *DashboardServiceSuite) TestAggregate_MalformedAmountsAndTypesContributeZero() {
	summary := AggregateDashboard(DashboardInputs{
		Transactions: []models.Transaction{
			tx("abc", models.TransactionTypeIncome, "2026-10-01"),
			tx("25.50", models.TransactionTypeIncome, "2026-10-01"),
			tx("10", "transfer", "2026-10-01"),
		},
	}, s.now)

	s.True(summary.TotalBalance.Equal(decimal.RequireFromString("25.50")))
	s.Equal(3, summary.MonthlyTransactionCount)
}

func (s *DashboardServiceSuite) TestAggregate_BalanceIgnoresOrder() {
	fixture := []models.Transaction{
		tx("120.10", models.TransactionTypeIncome, "2026-10-01"),
		tx("33.33", models.TransactionTypeExpense, "2026-10-03"),
		tx("abc", models.TransactionTypeIncome, "2026-10-04"),
		tx("15", "transfer", "2026-09-12"),
		tx("0.07", models.TransactionTypeExpense, "2026-08-30"),
		tx("2500", models.TransactionTypeIncome, "not a date"),
	}
	want := AggregateDashboard(DashboardInputs{Transactions: fixture}, s.now).TotalBalance
	s.True(want.Equal(decimal.RequireFromString("2586.70")))

	reversed := make([]models.Transaction, len(fixture))
	for i, t := range fixture {
		reversed[len(fixture)-1-i] = t
	}
	orders := [][]models.Transaction{reversed}
	for range 5 {
		shuffled := append([]models.Transaction(nil), fixture...)
		gofakeit.ShuffleAnySlice(shuffled)
		orders = append(orders, shuffled)
	}

	for _, order := range orders {
		got := AggregateDashboard(DashboardInputs{Transactions: order}, s.now).TotalBalance
		s.True(got.Equal(want), "balance %s != %s", got, want)
	}
}

func (s *DashboardServiceSuite) TestAggregate_MonthlyCountMatchesMonthAndYear() {
	summary := AggregateDashboard(DashboardInputs{
		Transactions: []models.Transaction{
			tx("1", models.TransactionTypeExpense, "2026-10-01"),
			tx("1", models.TransactionTypeExpense, "2026-10-31T23:59:00"),
			tx("1", models.TransactionTypeExpense, "2026-09-30"),
			tx("1", models.TransactionTypeExpense, "2025-10-16"),
			tx("1", models.TransactionTypeExpense, "not a date"),
			tx("1", models.TransactionTypeExpense, ""),
		},
	}, s.now)

	s.Equal(2, summary.MonthlyTransactionCount)
}

func (s *DashboardServiceSuite) TestAggregate_ActiveGoalsIncludeUnknownStatus() {
	summary := AggregateDashboard(DashboardInputs{
		Goals: []models.Goal{
			goalWithStatus(models.GoalStatusCompleted),
			goalWithStatus(models.GoalStatusInProgress),
			goalWithStatus(models.GoalStatusOnHold),
			goalWithStatus("bogus"),
		},
	}, s.now)

	s.Equal(3, summary.ActiveGoalCount)
}

func (s *DashboardServiceSuite) TestAggregate_EmptyInputs() {
	summary := AggregateDashboard(DashboardInputs{}, s.now)

	s.Equal(models.DashboardStatusOK, summary.Status)
	s.True(summary.TotalBalance.IsZero())
	s.Zero(summary.MonthlyTransactionCount)
	s.Zero(summary.ActiveGoalCount)
	s.Zero(summary.CategoryCount)
	s.False(summary.CategoriesDegraded)
	s.Equal(s.now, summary.GeneratedAt)
}

func (s *DashboardServiceSuite) TestAggregate_TransactionsFailureWinsOverGoals() {
	txErr := errors.New("transactions down")
	summary := AggregateDashboard(DashboardInputs{
		TransactionsErr: txErr,
		GoalsErr:        errors.New("goals down"),
	}, s.now)

	s.True(summary.IsError())
	s.Require().NotNil(summary.Error)
	s.Equal(models.DashboardSourceTransactions, summary.Error.Source)
	s.ErrorIs(summary.Error.Cause, txErr)
}

func (s *DashboardServiceSuite) TestGetSummary_AllSourcesOK() {
	s.client.EXPECT().ListTransactions(gomock.Any()).Return([]models.Transaction{
		tx("100", models.TransactionTypeIncome, "2026-10-03"),
		tx("40", models.TransactionTypeExpense, "2026-09-03"),
	}, nil)
	s.client.EXPECT().ListGoals(gomock.Any()).Return([]models.Goal{
		goalWithStatus(models.GoalStatusInProgress),
		goalWithStatus(models.GoalStatusCompleted),
	}, nil)
	s.client.EXPECT().CategoryStats(gomock.Any(), 30).Return(make([]models.CategoryStat, 4), nil)

	summary := s.service.GetSummary(context.Background())

	s.Equal(models.DashboardStatusOK, summary.Status)
	s.Equal("60.00", summary.DisplayBalance())
	s.Equal(1, summary.MonthlyTransactionCount)
	s.Equal(1, summary.ActiveGoalCount)
	s.Equal(4, summary.CategoryCount)
	s.False(summary.CategoriesDegraded)
	s.Nil(summary.Error)
}

func (s *DashboardServiceSuite) TestGetSummary_CategoriesFailureDegrades() {
	s.client.EXPECT().ListTransactions(gomock.Any()).Return([]models.Transaction{
		tx("10", models.TransactionTypeIncome, "2026-10-03"),
	}, nil)
	s.client.EXPECT().ListGoals(gomock.Any()).Return([]models.Goal{goalWithStatus(models.GoalStatusOnHold)}, nil)
	s.client.EXPECT().CategoryStats(gomock.Any(), 30).Return(nil, backend.ErrNetwork)

	summary := s.service.GetSummary(context.Background())

	s.Equal(models.DashboardStatusOK, summary.Status)
	s.Zero(summary.CategoryCount)
	s.True(summary.CategoriesDegraded)
	s.Equal(1, summary.ActiveGoalCount)
	s.Equal("10.00", summary.DisplayBalance())
	s.Nil(summary.Error)
}

func (s *DashboardServiceSuite) TestGetSummary_TransactionsFailure() {
	s.client.EXPECT().ListTransactions(gomock.Any()).Return(nil, &backend.StatusError{Operation: "list transactions", StatusCode: 500})
	s.client.EXPECT().ListGoals(gomock.Any()).Return([]models.Goal{}, nil)
	s.client.EXPECT().CategoryStats(gomock.Any(), 30).Return([]models.CategoryStat{}, nil)

	summary := s.service.GetSummary(context.Background())

	s.True(summary.IsError())
	s.Equal(models.DashboardSourceTransactions, summary.Error.Source)
	s.ErrorIs(summary.Error.Cause, backend.ErrBadStatus)
	s.Zero(summary.ActiveGoalCount)
}

func (s *DashboardServiceSuite) TestGetSummary_GoalsFailure() {
	s.client.EXPECT().ListTransactions(gomock.Any()).Return([]models.Transaction{}, nil)
	s.client.EXPECT().ListGoals(gomock.Any()).Return(nil, backend.ErrMalformedBody)
	s.client.EXPECT().CategoryStats(gomock.Any(), 30).Return(nil, backend.ErrNetwork)

	summary := s.service.GetSummary(context.Background())

	s.True(summary.IsError())
	s.Equal(models.DashboardSourceGoals, summary.Error.Source)
	s.ErrorIs(summary.Error.Cause, backend.ErrMalformedBody)
}
