package services

import (
	"context"
	"log/slog"
	"sort"
	"time"
)

type contextKey string

const traceIDKey contextKey = "trace_id"

// WithTraceID returns a copy of ctx carrying the request trace ID for audit events
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// TraceIDFromContext returns the trace ID stored by WithTraceID, or ""
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if traceID, ok := ctx.Value(traceIDKey).(string); ok {
		return traceID
	}
	return ""
}

// AuditLogger writes one structured event per state change worth tracing:
// chat sessions switching to fallback, dashboard sources failing and form submissions failing.
type AuditLogger struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewAuditLogger creates an audit logger; a nil logger uses slog.Default()
func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogger{
		logger: logger,
		now:    time.Now,
	}
}

func (al *AuditLogger) LogChatRemoteDegraded(ctx context.Context, sessionID, reasoner string, cause error) {
	al.logger.WarnContext(ctx, "chat session switched to fallback replies",
		slog.String("event_type", "chat_remote_degraded"),
		slog.String("session_id", sessionID),
		slog.String("reasoner", reasoner),
		slog.String("error", cause.Error()),
		slog.Time("timestamp", al.now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (al *AuditLogger) LogChatReplyDiscarded(ctx context.Context, sessionID string, generation int) {
	al.logger.InfoContext(ctx, "chat reply discarded",
		slog.String("event_type", "chat_reply_discarded"),
		slog.String("session_id", sessionID),
		slog.Int("generation", generation),
		slog.Time("timestamp", al.now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (al *AuditLogger) LogDashboardSourceFailed(ctx context.Context, source string, required bool, cause error) {
	level := slog.LevelWarn
	if required {
		level = slog.LevelError
	}
	al.logger.Log(ctx, level, "dashboard source failed",
		slog.String("event_type", "dashboard_source_failed"),
		slog.String("source", source),
		slog.Bool("required", required),
		slog.String("error", cause.Error()),
		slog.Time("timestamp", al.now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (al *AuditLogger) LogFormRejected(ctx context.Context, operation string, fields map[string]string) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	al.logger.InfoContext(ctx, "form rejected by validation",
		slog.String("event_type", "form_rejected"),
		slog.String("operation", operation),
		slog.Any("fields", names),
		slog.Time("timestamp", al.now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (al *AuditLogger) LogFormSubmissionFailed(ctx context.Context, operation, message string, cause error) {
	al.logger.WarnContext(ctx, "form submission failed",
		slog.String("event_type", "form_submission_failed"),
		slog.String("operation", operation),
		slog.String("message", message),
		slog.String("error", cause.Error()),
		slog.Time("timestamp", al.now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}
