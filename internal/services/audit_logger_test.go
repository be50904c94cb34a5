package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"finance-assistant/internal/backend"
	"finance-assistant/internal/backend/backend_mocks"
	"finance-assistant/internal/dto"
	"finance-assistant/internal/models"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedAuditLogger(buf *bytes.Buffer) AuditLoggerInterface {
	return NewAuditLogger(slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

func decodeEvents(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var events []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var event map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &event))
		events = append(events, event)
	}
	return events
}

func TestTraceIDFromContext(t *testing.T) {
	assert.Equal(t, "", TraceIDFromContext(context.Background()))
	assert.Equal(t, "abc-123", TraceIDFromContext(WithTraceID(context.Background(), "abc-123")))
}

func TestAuditLogger_ChatRemoteDegraded(t *testing.T) {
	var buf bytes.Buffer
	audit := newBufferedAuditLogger(&buf)

	ctx := WithTraceID(context.Background(), "trace-1")
	audit.LogChatRemoteDegraded(ctx, "session-1", "gemini", errors.New("quota exceeded"))

	events := decodeEvents(t, &buf)
	require.Len(t, events, 1)
	assert.Equal(t, "WARN", events[0]["level"])
	assert.Equal(t, "chat_remote_degraded", events[0]["event_type"])
	assert.Equal(t, "session-1", events[0]["session_id"])
	assert.Equal(t, "gemini", events[0]["reasoner"])
	assert.Equal(t, "trace-1", events[0]["trace_id"])
}

func TestAuditLogger_DashboardSourceLevels(t *testing.T) {
	var buf bytes.Buffer
	audit := newBufferedAuditLogger(&buf)

	audit.LogDashboardSourceFailed(context.Background(), models.DashboardSourceGoals, true, backend.ErrNetwork)
	audit.LogDashboardSourceFailed(context.Background(), models.DashboardSourceCategories, false, backend.ErrNetwork)

	events := decodeEvents(t, &buf)
	require.Len(t, events, 2)
	assert.Equal(t, "ERROR", events[0]["level"])
	assert.Equal(t, true, events[0]["required"])
	assert.Equal(t, "WARN", events[1]["level"])
	assert.Equal(t, false, events[1]["required"])
}

func TestAuditLogger_FormRejectedListsFieldsNotValues(t *testing.T) {
	var buf bytes.Buffer
	audit := newBufferedAuditLogger(&buf)

	audit.LogFormRejected(context.Background(), OpCreateGoal, map[string]string{
		"target_amount": "must be a positive amount",
		"name":          "is required",
	})

	events := decodeEvents(t, &buf)
	require.Len(t, events, 1)
	assert.Equal(t, []interface{}{"name", "target_amount"}, events[0]["fields"])
	assert.NotContains(t, buf.String(), "must be a positive amount")
}

func TestFormService_AuditsBackendRejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := backend_mocks.NewMockClientInterface(ctrl)
	client.EXPECT().DeleteGoal(gomock.Any(), 5).
		Return(&backend.StatusError{Operation: "delete goal", StatusCode: 400, Message: "Goal is locked"})

	var buf bytes.Buffer
	svc := NewFormService(client, func() time.Time { return time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC) }, nil).(*formService)
	svc.audit = newBufferedAuditLogger(&buf)

	err := svc.DeleteGoal(WithTraceID(context.Background(), "trace-9"), 5)
	require.Error(t, err)

	events := decodeEvents(t, &buf)
	require.Len(t, events, 1)
	assert.Equal(t, "form_submission_failed", events[0]["event_type"])
	assert.Equal(t, OpDeleteGoal, events[0]["operation"])
	assert.Equal(t, "Goal is locked", events[0]["message"])
	assert.Equal(t, "trace-9", events[0]["trace_id"])
}

func TestFormService_AuditsValidationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var buf bytes.Buffer
	svc := NewFormService(backend_mocks.NewMockClientInterface(ctrl), nil, nil).(*formService)
	svc.audit = newBufferedAuditLogger(&buf)

	_, err := svc.CreateGoal(context.Background(), &dto.GoalRequest{})
	require.Error(t, err)

	events := decodeEvents(t, &buf)
	require.Len(t, events, 1)
	assert.Equal(t, "form_rejected", events[0]["event_type"])
}
