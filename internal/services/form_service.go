package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"finance-assistant/internal/backend"
	"finance-assistant/internal/dto"
	"finance-assistant/internal/models"
	"finance-assistant/internal/validation"
)

// ValidationFailure is returned before any backend call when a form is invalid
type ValidationFailure struct {
	Fields map[string]string
}

func (e *ValidationFailure) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+e.Fields[name])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// SubmissionError is a failed backend submission. Message is the backend's
// own message when it sent one, otherwise a generic text for the operation.
type SubmissionError struct {
	Operation string
	Message   string
	Err       error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Operation, e.Message)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// Form operations
const (
	OpCreateTransaction = "create transaction"
	OpUpdateTransaction = "update transaction"
	OpDeleteTransaction = "delete transaction"
	OpCreateGoal        = "create goal"
	OpUpdateGoal        = "update goal"
	OpDeleteGoal        = "delete goal"
	OpSeedCategories    = "seed categories"
	OpCreateCategory    = "create category"
	OpDeleteCategory    = "delete category"
)

var genericSubmissionMessages = map[string]string{
	OpCreateTransaction: "Error creating transaction",
	OpUpdateTransaction: "Error updating transaction",
	OpDeleteTransaction: "Error deleting transaction",
	OpCreateGoal:        "Error creating savings goal",
	OpUpdateGoal:        "Error updating savings goal",
	OpDeleteGoal:        "Error deleting savings goal",
	OpSeedCategories:    "Failed to create default categories",
	OpCreateCategory:    "Failed to create category",
	OpDeleteCategory:    "Failed to delete category",
}

// submissionError wraps a backend failure for op; nil stays nil
func submissionError(op string, err error) error {
	if err == nil {
		return nil
	}

	message, ok := backend.BackendMessage(err)
	if !ok {
		message = genericSubmissionMessages[op]
	}
	return &SubmissionError{Operation: op, Message: message, Err: err}
}

// validateForm runs struct validation and converts the result into a ValidationFailure
func validateForm(v *validation.Validator, form interface{}) error {
	err := v.Struct(form)
	if err == nil {
		return nil
	}
	if fields, ok := validation.FieldMessages(err); ok {
		return &ValidationFailure{Fields: fields}
	}
	return fmt.Errorf("validate form: %w", err)
}

// formRecorder counts form submissions and writes their audit events
type formRecorder struct {
	metrics MetricsRecorderInterface
	audit   AuditLoggerInterface
}

func newFormRecorder(metrics MetricsRecorderInterface) formRecorder {
	return formRecorder{metrics: metricsOrNoop(metrics), audit: NewAuditLogger(nil)}
}

type formService struct {
	formRecorder
	client    backend.ClientInterface
	validator *validation.Validator
	now       func() time.Time
}

// NewFormService creates the transaction and goal form service. A nil clock uses time.Now.
func NewFormService(client backend.ClientInterface, now func() time.Time, metrics MetricsRecorderInterface) FormServiceInterface {
	if now == nil {
		now = time.Now
	}
	return &formService{
		formRecorder: newFormRecorder(metrics),
		client:       client,
		validator:    validation.GetValidator(),
		now:          now,
	}
}

func (s formRecorder) record(ctx context.Context, op string, err error) {
	status := "success"
	var failure *ValidationFailure
	var submission *SubmissionError
	switch {
	case errors.As(err, &failure):
		status = "invalid"
		s.audit.LogFormRejected(ctx, op, failure.Fields)
	case errors.As(err, &submission):
		status = "failed"
		s.audit.LogFormSubmissionFailed(ctx, op, submission.Message, submission.Err)
	case err != nil:
		status = "failed"
		s.audit.LogFormSubmissionFailed(ctx, op, genericSubmissionMessages[op], err)
	}
	s.metrics.IncrementCounter(MetricFormSubmission, map[string]string{"operation": op, "status": status})
}

func (s *formService) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	return s.client.ListTransactions(ctx)
}

func (s *formService) CreateTransaction(ctx context.Context, req *dto.TransactionRequest) (tx *models.Transaction, err error) {
	defer func() { s.record(ctx, OpCreateTransaction, err) }()

	if err := validateForm(s.validator, req); err != nil {
		return nil, err
	}

	tx, err = s.client.CreateTransaction(ctx, req)
	return tx, submissionError(OpCreateTransaction, err)
}

func (s *formService) UpdateTransaction(ctx context.Context, id int, req *dto.TransactionRequest) (tx *models.Transaction, err error) {
	defer func() { s.record(ctx, OpUpdateTransaction, err) }()

	if err := validateForm(s.validator, req); err != nil {
		return nil, err
	}

	tx, err = s.client.UpdateTransaction(ctx, id, req)
	return tx, submissionError(OpUpdateTransaction, err)
}

func (s *formService) DeleteTransaction(ctx context.Context, id int) (err error) {
	defer func() { s.record(ctx, OpDeleteTransaction, err) }()
	return submissionError(OpDeleteTransaction, s.client.DeleteTransaction(ctx, id))
}

// ListGoals returns the goals with their progress computed against the injected clock
func (s *formService) ListGoals(ctx context.Context) ([]models.GoalWithProgress, error) {
	goals, err := s.client.ListGoals(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	views := make([]models.GoalWithProgress, 0, len(goals))
	for _, goal := range goals {
		views = append(views, GoalProgress(goal, now))
	}
	return views, nil
}

func (s *formService) CreateGoal(ctx context.Context, req *dto.GoalRequest) (goal *models.Goal, err error) {
	defer func() { s.record(ctx, OpCreateGoal, err) }()

	if err := validateForm(s.validator, req); err != nil {
		return nil, err
	}

	payload := s.goalDefaults(*req)
	goal, err = s.client.CreateGoal(ctx, &payload)
	return goal, submissionError(OpCreateGoal, err)
}

func (s *formService) UpdateGoal(ctx context.Context, id int, req *dto.GoalRequest) (goal *models.Goal, err error) {
	defer func() { s.record(ctx, OpUpdateGoal, err) }()

	if err := validateForm(s.validator, req); err != nil {
		return nil, err
	}

	goal, err = s.client.UpdateGoal(ctx, id, req)
	return goal, submissionError(OpUpdateGoal, err)
}

func (s *formService) DeleteGoal(ctx context.Context, id int) (err error) {
	defer func() { s.record(ctx, OpDeleteGoal, err) }()
	return submissionError(OpDeleteGoal, s.client.DeleteGoal(ctx, id))
}

// goalDefaults fills what the backend requires on create but the form may omit
func (s *formService) goalDefaults(req dto.GoalRequest) dto.GoalRequest {
	if req.Priority == 0 {
		req.Priority = models.GoalPriorityMedium
	}
	if req.Status == "" {
		req.Status = models.GoalStatusInProgress
	}
	if !req.CurrentAmount.Valid {
		req.CurrentAmount = models.ParseAmount("0")
	}
	if req.CreatedAt == "" {
		req.CreatedAt = s.now().Format("2006-01-02")
	}
	return req
}
