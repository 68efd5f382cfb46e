package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/set-night/healthdash/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChatService(q *memQueries, gen *fakeGenerator) *ChatService {
	s := NewChatService(q, gen)
	s.now = func() time.Time { return clockStart }
	return s
}

func addDocument(t *testing.T, q *memQueries, userID uuid.UUID, name string, text *string) {
	t.Helper()
	params := sqlcDocument(userID, name, fakePublicPrefix+name, 1, "text/plain")
	params.ExtractedText = text
	_, err := q.CreateDocument(context.Background(), params)
	require.NoError(t, err)
}

func ptr(s string) *string { return &s }

func TestChatService_NoDocuments(t *testing.T) {
	gen := &fakeGenerator{reply: "drink water"}
	svc := newTestChatService(newMemQueries(), gen)

	reply, err := svc.Respond(context.Background(), uuid.New(), "How do I stay hydrated?")
	require.NoError(t, err)
	assert.Equal(t, "drink water", reply.Response)
	assert.Nil(t, reply.Sources)
	assert.Equal(t, clockStart, reply.Timestamp)

	require.Len(t, gen.prompts, 1)
	assert.Equal(t, generalPrompt("How do I stay hydrated?"), gen.prompts[0])
	assert.Contains(t, gen.prompts[0], "The user has asked: How do I stay hydrated?")
}

func TestChatService_WithDocuments(t *testing.T) {
	q := newMemQueries()
	user := uuid.New()
	addDocument(t, q, user, "blood.txt", ptr("Hemoglobin 14.2"))
	addDocument(t, q, user, "xray.pdf", ptr("No fractures"))
	addDocument(t, q, uuid.New(), "other.txt", ptr("not mine"))

	for _, message := range []string{"What is my hemoglobin?", "Tell me a joke"} {
		gen := &fakeGenerator{reply: "ok"}
		svc := newTestChatService(q, gen)

		reply, err := svc.Respond(context.Background(), user, message)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"blood.txt", "xray.pdf"}, reply.Sources)

		require.Len(t, gen.prompts, 1)
		prompt := gen.prompts[0]
		assert.Contains(t, prompt, "From blood.txt:\nHemoglobin 14.2")
		assert.Contains(t, prompt, "From xray.pdf:\nNo fractures")
		assert.Contains(t, prompt, "User's question: "+message)
		assert.NotContains(t, prompt, "not mine")
	}
}

func TestChatService_SkipsDocumentsWithoutText(t *testing.T) {
	q := newMemQueries()
	user := uuid.New()
	addDocument(t, q, user, "empty.txt", ptr(""))
	addDocument(t, q, user, "none.pdf", nil)

	t.Run("all empty falls back to general prompt", func(t *testing.T) {
		gen := &fakeGenerator{reply: "ok"}
		reply, err := newTestChatService(q, gen).Respond(context.Background(), user, "hi")
		require.NoError(t, err)
		assert.Nil(t, reply.Sources)
		assert.Equal(t, generalPrompt("hi"), gen.prompts[0])
	})

	t.Run("empty ones still listed as sources", func(t *testing.T) {
		addDocument(t, q, user, "labs.txt", ptr("LDL 90"))
		gen := &fakeGenerator{reply: "ok"}
		reply, err := newTestChatService(q, gen).Respond(context.Background(), user, "hi")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"empty.txt", "none.pdf", "labs.txt"}, reply.Sources)
		assert.NotContains(t, gen.prompts[0], "From empty.txt")
		assert.Contains(t, gen.prompts[0], "From labs.txt:\nLDL 90")
	})
}

func TestChatService_ModelFailureBecomesApology(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	svc := newTestChatService(newMemQueries(), gen)

	reply, err := svc.Respond(context.Background(), uuid.New(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "I apologize, but I'm having trouble generating a response right now. Error: quota exceeded", reply.Response)
}

func TestChatService_StoreFailure(t *testing.T) {
	q := newMemQueries()
	q.fail["ListDocumentTextsByUser"] = errors.New("connection reset")
	gen := &fakeGenerator{reply: "ok"}

	_, err := newTestChatService(q, gen).Respond(context.Background(), uuid.New(), "hello")
	require.ErrorIs(t, err, q.fail["ListDocumentTextsByUser"])
	assert.Empty(t, gen.prompts)
}

func TestChatService_EmptyMessage(t *testing.T) {
	gen := &fakeGenerator{reply: "ok"}
	svc := newTestChatService(newMemQueries(), gen)

	_, err := svc.Respond(context.Background(), uuid.New(), "   \n")
	assert.ErrorIs(t, err, domain.ErrBadInput)
	assert.Empty(t, gen.prompts)
}

func TestBuildContext(t *testing.T) {
	got := buildContext([]domain.DocumentText{
		{FileName: "a.txt", ExtractedText: "one"},
		{FileName: "b.txt", ExtractedText: "two"},
	})
	assert.Equal(t, "From a.txt:\none\n\nFrom b.txt:\ntwo", got)
	assert.Equal(t, 1, strings.Count(documentPrompt("q", got), got))
}
