package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finance-assistant/internal/dto"
	"finance-assistant/internal/models"
	"finance-assistant/internal/services"
	"finance-assistant/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type CategoryHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	echo                *echo.Echo
	mockCategoryService *service_mocks.MockCategoryServiceInterface
	handler             *CategoryHandler
}

func TestCategoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(CategoryHandlerTestSuite))
}

func (s *CategoryHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.mockCategoryService = service_mocks.NewMockCategoryServiceInterface(s.ctrl)
	s.handler = NewCategoryHandler(s.mockCategoryService)
}

func (s *CategoryHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CategoryHandlerTestSuite) TestGetStats_QueryParams() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories/stats?period=90&filter=expense", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.mockCategoryService.EXPECT().Stats(gomock.Any(), 90, models.CategoryFilterExpense).
		Return(&models.CategoryStatsView{Period: 90, Filter: models.CategoryFilterExpense, TotalSpending: "120.50", TotalIncome: "0.00"}, nil)

	err := s.handler.GetStats(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response struct {
		Data models.CategoryStatsView `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("120.50", response.Data.TotalSpending)
}

func (s *CategoryHandlerTestSuite) TestGetStats_Defaults() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories/stats", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.mockCategoryService.EXPECT().Stats(gomock.Any(), 0, "").
		Return(&models.CategoryStatsView{Period: 30, Filter: models.CategoryFilterAll}, nil)

	err := s.handler.GetStats(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *CategoryHandlerTestSuite) TestGetStats_UnsupportedPeriod() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories/stats?period=12", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.mockCategoryService.EXPECT().Stats(gomock.Any(), 12, "").
		Return(nil, fmt.Errorf("%w: got 12", services.ErrInvalidPeriod))

	err := s.handler.GetStats(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_004")
}

func (s *CategoryHandlerTestSuite) TestGetStats_NonNumericPeriod() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories/stats?period=month", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler.GetStats(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_003")
}

func (s *CategoryHandlerTestSuite) TestSeedCategories() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories/seed", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.mockCategoryService.EXPECT().Seed(gomock.Any()).Return("Default categories created", nil)

	err := s.handler.SeedCategories(c)

	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), "Default categories created")
}

func (s *CategoryHandlerTestSuite) TestCreateCategory() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", strings.NewReader(`{"name":"Pets","type":"expense"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.mockCategoryService.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *dto.CategoryRequest) (string, error) {
			s.Equal("Pets", req.Name)
			s.Equal(models.CategoryTypeExpense, req.Type)
			return "Category created", nil
		})

	err := s.handler.CreateCategory(c)

	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *CategoryHandlerTestSuite) TestDeleteCategory() {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/categories/8", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("8")

	s.mockCategoryService.EXPECT().Delete(gomock.Any(), 8).Return(nil)

	err := s.handler.DeleteCategory(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}
