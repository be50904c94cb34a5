package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-assistant/internal/models"
	"finance-assistant/internal/services"
	"finance-assistant/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AnalyticsHandlerTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	echo                 *echo.Echo
	mockAnalyticsService *service_mocks.MockAnalyticsServiceInterface
	handler              *AnalyticsHandler
}

func TestAnalyticsHandlerSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsHandlerTestSuite))
}

func (s *AnalyticsHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.mockAnalyticsService = service_mocks.NewMockAnalyticsServiceInterface(s.ctrl)
	s.handler = NewAnalyticsHandler(s.mockAnalyticsService)
}

func (s *AnalyticsHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AnalyticsHandlerTestSuite) TestGetReport_Success() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics?period=7", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.mockAnalyticsService.EXPECT().Report(gomock.Any(), 7).Return(&models.Analytics{
		Summary: models.AnalyticsSummary{
			TotalIncome:      models.NewAmount(decimal.NewFromInt(3000)),
			TotalExpenses:    models.NewAmount(decimal.NewFromInt(1200)),
			NetSavings:       models.NewAmount(decimal.NewFromInt(1800)),
			TransactionCount: 14,
		},
	}, nil)

	err := s.handler.GetReport(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"net_savings":1800`)
}

func (s *AnalyticsHandlerTestSuite) TestGetReport_InvalidPeriod() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics?period=45", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.mockAnalyticsService.EXPECT().Report(gomock.Any(), 45).Return(nil, services.ErrInvalidPeriod)

	err := s.handler.GetReport(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *AnalyticsHandlerTestSuite) TestGetReport_NonNumericPeriod() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics?period=week", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler.GetReport(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_003")
}
