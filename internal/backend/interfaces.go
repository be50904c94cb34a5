package backend

import (
	"context"
	"time"

	"finance-assistant/internal/dto"
	"finance-assistant/internal/models"
)

// ClientInterface is the finance backend REST contract used by the services.
// Create and update calls never return a nil entity on success: when the backend
// reply omits it, the submitted payload is returned with the id known to the caller
// (0 on create).
type ClientInterface interface {
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, req *dto.TransactionRequest) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, id int, req *dto.TransactionRequest) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id int) error

	ListGoals(ctx context.Context) ([]models.Goal, error)
	CreateGoal(ctx context.Context, req *dto.GoalRequest) (*models.Goal, error)
	UpdateGoal(ctx context.Context, id int, req *dto.GoalRequest) (*models.Goal, error)
	DeleteGoal(ctx context.Context, id int) error

	CategoryStats(ctx context.Context, period int) ([]models.CategoryStat, error)
	SeedCategories(ctx context.Context) (string, error)
	CreateCategory(ctx context.Context, req *dto.CategoryRequest) (string, error)
	DeleteCategory(ctx context.Context, id int) error

	Analytics(ctx context.Context, period int) (*models.Analytics, error)
	Chat(ctx context.Context, message string) (*dto.ChatResponse, error)

	CircuitState() BreakerState
}

// RequestRecorder observes every backend call; outcome is "ok", "network", "bad_status" or "malformed"
type RequestRecorder interface {
	RecordBackendRequest(operation, outcome string, duration time.Duration)
}
