package services

import (
	"context"

	"finance-assistant/internal/backend"
	"finance-assistant/internal/models"
)

type analyticsService struct {
	client backend.ClientInterface
}

func NewAnalyticsService(client backend.ClientInterface) AnalyticsServiceInterface {
	return &analyticsService{client: client}
}

// Report passes the backend's analytics for period through unchanged
func (s *analyticsService) Report(ctx context.Context, period int) (*models.Analytics, error) {
	period, err := NormalizePeriod(period)
	if err != nil {
		return nil, err
	}
	return s.client.Analytics(ctx, period)
}
