package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-assistant/internal/models"
	"finance-assistant/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analytics := service_mocks.NewMockAnalyticsServiceInterface(ctrl)
	chat := service_mocks.NewMockChatSessionServiceInterface(ctrl)
	forms := service_mocks.NewMockFormServiceInterface(ctrl)

	e := echo.New()
	RegisterRoutes(e.Group("/api/v1"), Handlers{
		Dashboard:    NewDashboardHandler(service_mocks.NewMockDashboardServiceInterface(ctrl), "$"),
		Chat:         NewChatHandler(chat),
		Transactions: NewTransactionHandler(forms),
		Goals:        NewGoalHandler(forms),
		Categories:   NewCategoryHandler(service_mocks.NewMockCategoryServiceInterface(ctrl)),
		Analytics:    NewAnalyticsHandler(analytics),
	})

	analytics.EXPECT().Report(gomock.Any(), 365).Return(&models.Analytics{}, nil)
	chat.EXPECT().End("abc").Return(nil)
	forms.EXPECT().DeleteGoal(gomock.Any(), 12).Return(nil)

	requests := []struct {
		method string
		target string
		status int
	}{
		{http.MethodGet, "/api/v1/analytics?period=365", http.StatusOK},
		{http.MethodDelete, "/api/v1/chat/sessions/abc", http.StatusNoContent},
		{http.MethodDelete, "/api/v1/goals/12", http.StatusOK},
	}

	for _, r := range requests {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(r.method, r.target, nil))
		assert.Equal(t, r.status, rec.Code, "%s %s", r.method, r.target)
	}
}
