package services

import (
	"context"
	"time"

	"finance-assistant/internal/dto"
	"finance-assistant/internal/models"
)

// RemoteReasoner produces chat replies from a remote reasoning service
type RemoteReasoner interface {
	Reply(ctx context.Context, message string) (string, error)
	Name() string
}

// ChatResolverInterface turns a user utterance into a bot reply for one session.
// The session is never mutated; the updated session is returned.
type ChatResolverInterface interface {
	Resolve(ctx context.Context, session ChatSession, utterance string) (ChatReply, ChatSession, error)
}

// ChatSessionServiceInterface manages the chat sessions held by this process
type ChatSessionServiceInterface interface {
	Start() ChatSession
	Get(id string) (ChatSession, bool, error)
	Send(ctx context.Context, id, utterance string) (ChatReply, ChatSession, error)
	Reset(id string) (ChatSession, error)
	End(id string) error
}

// DashboardServiceInterface computes the home page summary
type DashboardServiceInterface interface {
	GetSummary(ctx context.Context) *models.DashboardSummary
}

// FormServiceInterface validates and submits create/update/delete forms to the backend
type FormServiceInterface interface {
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, req *dto.TransactionRequest) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, id int, req *dto.TransactionRequest) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id int) error

	ListGoals(ctx context.Context) ([]models.GoalWithProgress, error)
	CreateGoal(ctx context.Context, req *dto.GoalRequest) (*models.Goal, error)
	UpdateGoal(ctx context.Context, id int, req *dto.GoalRequest) (*models.Goal, error)
	DeleteGoal(ctx context.Context, id int) error
}

// CategoryServiceInterface serves the categories page
type CategoryServiceInterface interface {
	Stats(ctx context.Context, period int, filter string) (*models.CategoryStatsView, error)
	Seed(ctx context.Context) (string, error)
	Create(ctx context.Context, req *dto.CategoryRequest) (string, error)
	Delete(ctx context.Context, id int) error
}

// AnalyticsServiceInterface serves the analytics page
type AnalyticsServiceInterface interface {
	Report(ctx context.Context, period int) (*models.Analytics, error)
}

// AuditLoggerInterface records structured audit events
type AuditLoggerInterface interface {
	LogChatRemoteDegraded(ctx context.Context, sessionID, reasoner string, cause error)
	LogChatReplyDiscarded(ctx context.Context, sessionID string, generation int)
	LogDashboardSourceFailed(ctx context.Context, source string, required bool, cause error)
	LogFormRejected(ctx context.Context, operation string, fields map[string]string)
	LogFormSubmissionFailed(ctx context.Context, operation, message string, cause error)
}

// MetricsRecorderInterface records application metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
