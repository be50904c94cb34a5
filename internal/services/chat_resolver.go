package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"finance-assistant/internal/backend"
	"finance-assistant/internal/models"
)

var (
	ErrEmptyUtterance = errors.New("message cannot be empty")
	ErrReasonerPanic  = errors.New("remote reasoner panicked")
)

// Chat modes reported to the UI
const (
	ChatModeRemote   = "remote"
	ChatModeFallback = "fallback_only"
)

const greetingText = "Hello! I'm your AI-powered Finance Assistant. I can help you with budgeting tips, " +
	"expense analysis, investment advice, and answer questions about your financial data. How can I help you today?"

const apologyText = "I apologize, but I'm having trouble processing your request right now. Please try again in a moment."

// responseRule maps keywords to a canned reply. A rule matches when the
// lower-cased utterance contains any of its keywords.
type responseRule struct {
	name     string
	keywords []string
	reply    string
}

// defaultResponseRules is evaluated in order; the first match wins and the
// last rule has no keywords so it always matches.
var defaultResponseRules = []responseRule{
	{
		name:     "budget",
		keywords: []string{"budget", "budgeting"},
		reply: "Great question about budgeting! Here are some tips: 1) Track all your expenses " +
			"2) Use the 50/30/20 rule (50% needs, 30% wants, 20% savings) 3) Review your budget monthly. " +
			"Would you like me to help you analyze your current spending?",
	},
	{
		name:     "saving",
		keywords: []string{"save", "saving"},
		reply: "Saving money is crucial for financial health! Start with an emergency fund covering 3-6 months of expenses. " +
			"Then consider: automatic transfers to savings, high-yield savings accounts, and investment options. " +
			"What's your current savings goal?",
	},
	{
		name:     "expense",
		keywords: []string{"expense", "spending"},
		reply: "Let's talk about expenses! I can see you have transaction data in this app. " +
			"The key is categorizing expenses into needs vs wants. " +
			"Would you like me to suggest some expense categories or help analyze your spending patterns?",
	},
	{
		name:     "investment",
		keywords: []string{"investment", "invest"},
		reply: "Investing is a great way to grow wealth! Consider: 1) Diversified index funds 2) Emergency fund first " +
			"3) Your risk tolerance 4) Time horizon. Remember, I'm an AI assistant - always consult with a financial " +
			"advisor for personalized investment advice.",
	},
	{
		name:     "debt",
		keywords: []string{"debt", "loan"},
		reply: "Managing debt is important! Try these strategies: 1) List all debts with balances and interest rates " +
			"2) Consider debt avalanche (highest interest first) or snowball method (smallest balance first) " +
			"3) Avoid new debt while paying off existing ones.",
	},
	{
		name:     "goal",
		keywords: []string{"goal", "goals"},
		reply: "Financial goals are the foundation of good money management! Set SMART goals (Specific, Measurable, " +
			"Achievable, Relevant, Time-bound). I see this app has a Goals section - have you set any financial goals there yet?",
	},
	{
		name:     "help",
		keywords: []string{"help", "hi", "hello"},
		reply: "I'm here to help with your finances! I can assist with: budgeting advice, saving strategies, " +
			"expense tracking tips, debt management, goal setting, and general financial guidance. What would you like to explore?",
	},
	{
		name: "default",
		reply: "That's an interesting question! While I focus on financial topics, I can help you with budgeting, saving, " +
			"investing basics, expense tracking, and financial goal setting. Could you ask me something about your finances?",
	},
}

func (r responseRule) matches(lowered string) bool {
	if len(r.keywords) == 0 {
		return true
	}
	for _, keyword := range r.keywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// ChatSession is an immutable snapshot of one conversation
type ChatSession struct {
	ID            string
	RemoteEnabled bool
	Messages      []models.ChatMessage
	Generation    int
	LastActive    time.Time
}

// Mode reports whether the session still tries the remote reasoner
func (s ChatSession) Mode() string {
	if s.RemoteEnabled {
		return ChatModeRemote
	}
	return ChatModeFallback
}

// NewChatSession returns a session holding only the greeting message
func NewChatSession(id string, now time.Time) ChatSession {
	return ChatSession{
		ID:            id,
		RemoteEnabled: true,
		Messages: []models.ChatMessage{{
			ID:        1,
			Text:      greetingText,
			Sender:    models.SenderBot,
			Timestamp: now,
		}},
		LastActive: now,
	}
}

// with returns a copy of s with msg appended; s keeps its own backing array
func (s ChatSession) with(msg models.ChatMessage) ChatSession {
	messages := make([]models.ChatMessage, len(s.Messages), len(s.Messages)+1)
	copy(messages, s.Messages)
	s.Messages = append(messages, msg)
	return s
}

// nextMessageID is the current Unix time in milliseconds, bumped past the
// last id in the session when the clock has not moved on.
func (s ChatSession) nextMessageID(now time.Time) int64 {
	id := now.UnixMilli()
	if n := len(s.Messages); n > 0 && id <= s.Messages[n-1].ID {
		id = s.Messages[n-1].ID + 1
	}
	return id
}

func (s ChatSession) appendMessage(sender, text, source string, now time.Time) (ChatSession, models.ChatMessage) {
	msg := models.ChatMessage{
		ID:        s.nextMessageID(now),
		Text:      text,
		Sender:    sender,
		Timestamp: now,
		Source:    source,
	}
	s = s.with(msg)
	s.LastActive = now
	return s, msg
}

// ChatReply is the outcome of resolving one utterance
type ChatReply struct {
	UserMessage models.ChatMessage
	Message     models.ChatMessage
	// Degraded is true when this utterance switched the session to fallback replies
	Degraded bool
}

type chatResolver struct {
	reasoner      RemoteReasoner
	rules         []responseRule
	remoteTimeout time.Duration
	now           func() time.Time
	metrics       MetricsRecorderInterface
	audit         AuditLoggerInterface
	fallbackReply func(utterance string) string
}

// NewChatResolver creates a resolver that asks reasoner first and falls back
// to the keyword rule table. A nil clock uses time.Now.
func NewChatResolver(reasoner RemoteReasoner, remoteTimeout time.Duration, now func() time.Time, metrics MetricsRecorderInterface) ChatResolverInterface {
	if now == nil {
		now = time.Now
	}
	r := &chatResolver{
		reasoner:      reasoner,
		rules:         defaultResponseRules,
		remoteTimeout: remoteTimeout,
		now:           now,
		metrics:       metricsOrNoop(metrics),
		audit:         NewAuditLogger(nil),
	}
	r.fallbackReply = r.matchRule
	return r
}

func (r *chatResolver) Resolve(ctx context.Context, session ChatSession, utterance string) (ChatReply, ChatSession, error) {
	if strings.TrimSpace(utterance) == "" {
		return ChatReply{}, session, ErrEmptyUtterance
	}

	next, userMsg := session.appendMessage(models.SenderUser, utterance, "", r.now())

	var reply ChatReply
	reply.UserMessage = userMsg

	text, source := "", ""
	if next.RemoteEnabled {
		remoteText, err := r.askRemote(ctx, utterance)
		switch {
		case err == nil:
			text, source = remoteText, models.SourceRemote
		case ctx.Err() != nil:
			// the caller went away; the reasoner is not at fault
			return ChatReply{}, session, fmt.Errorf("resolve chat reply: %w", ctx.Err())
		default:
			r.audit.LogChatRemoteDegraded(ctx, next.ID, r.reasoner.Name(), err)
			next.RemoteEnabled = false
			reply.Degraded = true
			r.metrics.IncrementCounter(MetricChatRemoteDegraded, map[string]string{"reasoner": r.reasoner.Name()})
		}
	}

	if source == "" {
		text, source = r.fallback(utterance)
	}

	next, reply.Message = next.appendMessage(models.SenderBot, text, source, r.now())
	r.metrics.IncrementCounter(MetricChatReply, map[string]string{"source": source})

	return reply, next, nil
}

// askRemote turns a panicking reasoner into a remote failure
func (r *chatResolver) askRemote(ctx context.Context, utterance string) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			text, err = "", fmt.Errorf("%s reasoner: %w: %v", r.reasoner.Name(), ErrReasonerPanic, rec)
		}
	}()

	if r.remoteTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.remoteTimeout)
		defer cancel()
	}

	start := time.Now()
	text, err = r.reasoner.Reply(ctx, utterance)
	r.metrics.RecordProcessingTime(MetricChatRemoteLatency, time.Since(start))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%s reasoner: %w: empty reply", r.reasoner.Name(), backend.ErrMalformedBody)
	}
	return text, nil
}

// fallback never panics; a failure while matching yields the apology
func (r *chatResolver) fallback(utterance string) (text, source string) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("fallback reply failed", "panic", rec)
			text, source = apologyText, models.SourceError
		}
	}()

	return r.fallbackReply(utterance), models.SourceFallback
}

func (r *chatResolver) matchRule(utterance string) string {
	lowered := strings.ToLower(utterance)
	for _, rule := range r.rules {
		if rule.matches(lowered) {
			return rule.reply
		}
	}
	return r.rules[len(r.rules)-1].reply
}
