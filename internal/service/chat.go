package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/set-night/healthdash/internal/config"
	"github.com/set-night/healthdash/internal/domain"
	"github.com/set-night/healthdash/internal/repository/sqlc"
)

// Generator produces a completion for a single prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ChatService answers questions using every document of the user as context.
// There is no chunking or ranking: all extracted text goes into one prompt,
// and every document is reported as a source.
type ChatService struct {
	queries sqlc.Querier
	model   Generator
	now     func() time.Time
}

func NewChatService(queries sqlc.Querier, model Generator) *ChatService {
	return &ChatService{queries: queries, model: model, now: time.Now}
}

func (s *ChatService) Respond(ctx context.Context, userID uuid.UUID, message string) (*domain.ChatReply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, domain.ErrEmptyMessage
	}

	rows, err := s.queries.ListDocumentTextsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch documents: %w", err)
	}

	docs := make([]domain.DocumentText, 0, len(rows))
	for _, r := range rows {
		if r.ExtractedText != nil && *r.ExtractedText != "" {
			docs = append(docs, domain.DocumentText{FileName: r.FileName, ExtractedText: *r.ExtractedText})
		}
	}

	if len(docs) == 0 {
		return &domain.ChatReply{
			Response:  s.generate(ctx, userID, generalPrompt(message)),
			Sources:   nil,
			Timestamp: s.now().UTC(),
		}, nil
	}

	sources := make([]string, len(rows))
	for i, r := range rows {
		sources[i] = r.FileName
	}

	return &domain.ChatReply{
		Response:  s.generate(ctx, userID, documentPrompt(message, buildContext(docs))),
		Sources:   sources,
		Timestamp: s.now().UTC(),
	}, nil
}

// generate degrades a failed model call into an apology instead of an error.
// This is the only operation that does not fail loudly.
func (s *ChatService) generate(ctx context.Context, userID uuid.UUID, prompt string) string {
	text, err := s.model.Generate(ctx, prompt)
	if err != nil {
		slog.Error("error generating response", "error", err, "user_id", userID)
		return config.ChatApology + err.Error()
	}
	return text
}

func buildContext(docs []domain.DocumentText) string {
	parts := make([]string, len(docs))
	for i, d := range docs {
		parts[i] = fmt.Sprintf("From %s:\n%s", d.FileName, d.ExtractedText)
	}
	return strings.Join(parts, "\n\n")
}

func documentPrompt(message, docContext string) string {
	return fmt.Sprintf(`You are a helpful health assistant. Use the following context from the user's medical documents to answer their question. If the context doesn't contain relevant information, provide general health advice but always mention that you're not a doctor and they should consult healthcare professionals for medical decisions.

Context from user's documents:
%s

User's question: %s

Please provide a helpful, accurate, and safe response:`, docContext, message)
}

func generalPrompt(message string) string {
	return fmt.Sprintf(`You are a helpful health assistant. The user has asked: %s

Please provide general health information and advice. Always remind them that you're not a doctor and they should consult healthcare professionals for medical decisions.

Response:`, message)
}
