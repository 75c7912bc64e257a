package chat

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/SreeKumarSeven/anthill-chatbot/internal/facts"
	"github.com/SreeKumarSeven/anthill-chatbot/internal/observability/metrics"
	"github.com/SreeKumarSeven/anthill-chatbot/internal/transcript"
	"github.com/SreeKumarSeven/anthill-chatbot/pkg/logging"
)

var chatTracer = otel.Tracer("anthill.internal.chat")

// errorReply is returned when the language model is unavailable. Served
// with HTTP 200 so the widget renders it like any other reply.
const errorReply = "I apologize, but I'm having trouble processing your request right now. Please try again or contact our team directly at " + facts.Phone + "."

// BookingResponder runs the booking flow for messages the pipeline
// classified as booking requests.
type BookingResponder interface {
	Respond(ctx context.Context, message, userID string) (reply string, startBooking bool)
}

// Router answers chat messages: rule-based classifiers first, then the
// language model with fact correction, with the booking flow as a
// collaborator.
type Router struct {
	classifiers []Classifier
	booking     BookingResponder
	llm         LLMClient
	rewriter    *Rewriter
	history     *HistoryStore
	store       transcript.Store
	metrics     *metrics.ChatMetrics
	logger      *logging.Logger
}

// RouterOption configures optional collaborators.
type RouterOption func(*Router)

// WithHistory attaches a Redis conversation history.
func WithHistory(h *HistoryStore) RouterOption {
	return func(r *Router) { r.history = h }
}

// WithTranscripts attaches the transcript sink.
func WithTranscripts(s transcript.Store) RouterOption {
	return func(r *Router) { r.store = s }
}

// WithMetrics attaches chat metrics.
func WithMetrics(m *metrics.ChatMetrics) RouterOption {
	return func(r *Router) { r.metrics = m }
}

// NewRouter builds the chat pipeline. detector drives the booking
// classifier; responder handles messages it claims.
func NewRouter(detector BookingDetector, responder BookingResponder, llm LLMClient, logger *logging.Logger, opts ...RouterOption) *Router {
	if llm == nil {
		panic("chat: llm client cannot be nil")
	}
	if responder == nil {
		panic("chat: booking responder cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	r := &Router{
		classifiers: DefaultClassifiers(detector),
		booking:     responder,
		llm:         llm,
		rewriter:    NewRewriter(),
		logger:      logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Handle answers one chat turn. The only error it returns is
// ErrEmptyMessage; model failures come back as a normal Response with
// source "error".
func (r *Router) Handle(ctx context.Context, req Request) (Response, error) {
	ctx, span := chatTracer.Start(ctx, "chat.handle")
	defer span.End()

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return Response{}, ErrEmptyMessage
	}

	userID := req.UserID
	if userID == "" {
		userID = DefaultUserID
	}
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	span.SetAttributes(
		attribute.String("anthill.session_id", sessionID),
		attribute.String("anthill.user_id", userID),
	)

	start := time.Now()
	resp := r.answer(ctx, sessionID, message, userID)
	resp.SessionID = sessionID
	span.SetAttributes(attribute.String("anthill.source", resp.Source))

	r.metrics.ObserveMessage(resp.Source, time.Since(start).Seconds())
	r.remember(ctx, sessionID, message, resp.Response)
	r.record(sessionID, userID, message, resp)

	return resp, nil
}

func (r *Router) answer(ctx context.Context, sessionID, message, userID string) Response {
	for _, c := range r.classifiers {
		result := c.Classify(message)
		if !result.Matched() {
			continue
		}
		if result.Intent == IntentBooking {
			reply, startBooking := r.booking.Respond(ctx, message, userID)
			return Response{Response: reply, Source: SourceBooking, ShouldStartBooking: startBooking}
		}
		r.logger.Debug("rule classifier matched", "classifier", c.Name, "kind", result.Kind)
		return Response{Response: result.Response, Source: SourceRuleBased}
	}
	return r.askModel(ctx, sessionID, message)
}

// askModel falls back to the language model and rewrites its answer so
// stale facts never reach the user.
func (r *Router) askModel(ctx context.Context, sessionID, message string) Response {
	ctx, span := chatTracer.Start(ctx, "chat.llm")
	defer span.End()

	messages := []ChatMessage{{Role: ChatRoleSystem, Content: systemPrompt}}
	if r.history != nil {
		prior, err := r.history.Load(ctx, sessionID)
		if err != nil {
			r.logger.Warn("history load failed", "error", err)
		} else {
			messages = append(messages, prior...)
		}
	}
	messages = append(messages, ChatMessage{Role: ChatRoleUser, Content: message})

	raw, err := r.llm.Complete(ctx, messages)
	if err != nil {
		span.RecordError(err)
		r.metrics.ObserveUpstreamFailure()
		r.logger.Error("language model call failed", "error", err)
		return Response{Response: errorReply, Source: SourceError}
	}

	return Response{Response: r.rewriter.Rewrite(raw), Source: SourceLanguageModel}
}

// remember appends the turn to the Redis history. Best-effort.
func (r *Router) remember(ctx context.Context, sessionID, message, reply string) {
	if r.history == nil {
		return
	}
	err := r.history.Append(ctx, sessionID,
		ChatMessage{Role: ChatRoleUser, Content: message},
		ChatMessage{Role: ChatRoleAssistant, Content: reply},
	)
	if err != nil {
		r.logger.Warn("history append failed", "error", err, "session_id", sessionID)
	}
}

// record sends the exchange to the transcript sink. Best-effort.
func (r *Router) record(sessionID, userID, message string, resp Response) {
	if r.store == nil {
		return
	}
	err := r.store.Log(context.Background(), transcript.Entry{
		SessionID:   sessionID,
		UserID:      userID,
		UserMessage: message,
		BotResponse: resp.Response,
		Source:      resp.Source,
	})
	if err != nil {
		r.logger.Warn("transcript log failed", "error", err, "session_id", sessionID)
	}
}
