package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finance-assistant/internal/models"
	"finance-assistant/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DashboardHandlerTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	echo                 *echo.Echo
	mockDashboardService *service_mocks.MockDashboardServiceInterface
	handler              *DashboardHandler
}

func TestDashboardHandlerSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}

func (s *DashboardHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.mockDashboardService = service_mocks.NewMockDashboardServiceInterface(s.ctrl)
	s.handler = NewDashboardHandler(s.mockDashboardService, "£")
}

func (s *DashboardHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DashboardHandlerTestSuite) serve() *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	s.NoError(s.handler.GetSummary(c))
	return rec
}

func (s *DashboardHandlerTestSuite) TestGetSummary_OK() {
	s.mockDashboardService.EXPECT().GetSummary(gomock.Any()).Return(&models.DashboardSummary{
		Status:                  models.DashboardStatusOK,
		TotalBalance:            decimal.NewFromInt(60),
		MonthlyTransactionCount: 2,
		ActiveGoalCount:         1,
		CategoryCount:           3,
		GeneratedAt:             time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	})

	rec := s.serve()

	s.Equal(http.StatusOK, rec.Code)

	var response struct {
		Data models.DashboardSummary `json:"data"`
		Meta dashboardMeta           `json:"meta"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(models.DashboardStatusOK, response.Data.Status)
	s.Equal("£60.00", response.Meta.DisplayBalance)
	s.True(decimal.NewFromInt(60).Equal(response.Data.TotalBalance))
	s.Equal(3, response.Data.CategoryCount)
	s.False(response.Data.CategoriesDegraded)
}

func (s *DashboardHandlerTestSuite) TestGetSummary_CategoriesDegradedIsStillOK() {
	s.mockDashboardService.EXPECT().GetSummary(gomock.Any()).Return(&models.DashboardSummary{
		Status:             models.DashboardStatusOK,
		CategoryCount:      0,
		CategoriesDegraded: true,
	})

	rec := s.serve()

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"categories_degraded":true`)
}

func (s *DashboardHandlerTestSuite) TestGetSummary_TransactionsUnavailable() {
	s.mockDashboardService.EXPECT().GetSummary(gomock.Any()).Return(&models.DashboardSummary{
		Status: models.DashboardStatusError,
		Error: &models.DashboardError{
			Source:  models.DashboardSourceTransactions,
			Message: "list transactions: backend unreachable",
		},
	})

	rec := s.serve()

	s.Equal(http.StatusBadGateway, rec.Code)

	var response dashboardErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("DASHBOARD_001", response.Error.Code)
	s.True(response.Error.Retryable)
	s.Equal([]string{"list transactions: backend unreachable"}, response.Error.Details)
	s.Require().NotNil(response.Data)
	s.Equal(models.DashboardStatusError, response.Data.Status)
}

func (s *DashboardHandlerTestSuite) TestGetSummary_GoalsUnavailable() {
	s.mockDashboardService.EXPECT().GetSummary(gomock.Any()).Return(&models.DashboardSummary{
		Status: models.DashboardStatusError,
		Error:  &models.DashboardError{Source: models.DashboardSourceGoals, Message: "list goals: malformed"},
	})

	rec := s.serve()

	s.Equal(http.StatusBadGateway, rec.Code)
	s.Contains(rec.Body.String(), "DASHBOARD_002")
}
