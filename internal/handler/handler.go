package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/set-night/healthdash/internal/config"
	"github.com/set-night/healthdash/internal/domain"
	"github.com/set-night/healthdash/internal/middleware"
)

type VitalsService interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Vitals, error)
	Create(ctx context.Context, userID uuid.UUID, in domain.VitalsInput) (*domain.Vitals, error)
	Delete(ctx context.Context, userID uuid.UUID, id int64) error
	Summary(ctx context.Context, userID uuid.UUID) (*domain.VitalsSummary, error)
}

type DocumentService interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Document, error)
	Upload(ctx context.Context, userID uuid.UUID, up domain.Upload) (*domain.Document, error)
	Delete(ctx context.Context, userID uuid.UUID, id int64) error
	Summary(ctx context.Context, userID uuid.UUID) (*domain.DocumentSummary, error)
}

type ChatService interface {
	Respond(ctx context.Context, userID uuid.UUID, message string) (*domain.ChatReply, error)
}

// ErrorReporter receives every unclassified failure. It must not block.
type ErrorReporter interface {
	Report(err error, attrs ...any)
}

// Handler holds all dependencies needed by the HTTP endpoints.
type Handler struct {
	cfg       *config.Config
	vitals    VitalsService
	documents DocumentService
	chat      ChatService
	verifier  middleware.TokenVerifier
	limiter   middleware.RateCounter
	reporter  ErrorReporter
}

// Deps contains all dependencies required to construct a Handler.
// Reporter may be nil.
type Deps struct {
	Cfg       *config.Config
	Vitals    VitalsService
	Documents DocumentService
	Chat      ChatService
	Verifier  middleware.TokenVerifier
	Limiter   middleware.RateCounter
	Reporter  ErrorReporter
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		cfg:       deps.Cfg,
		vitals:    deps.Vitals,
		documents: deps.Documents,
		chat:      deps.Chat,
		verifier:  deps.Verifier,
		limiter:   deps.Limiter,
		reporter:  deps.Reporter,
	}
}
