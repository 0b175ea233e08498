package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/doc-query/internal/adapter"
	"github.com/MKhiriev/doc-query/models"
)

func TestAsk_BlankQuestionNeverHitsNetwork(t *testing.T) {
	for _, q := range []string{"", "   ", "\n\t "} {
		env := newTestEnv(t)

		view := env.services.QueryService.Ask(context.Background(), q)
		assert.Equal(t, "🚫 Please type a question.", view.Status.Text)
		assert.False(t, view.HasAnswer)
	}
}

func TestAsk_Success(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.signedIn(1)
	env.adapter.EXPECT().Ask(ctx, testToken, "What is in chapter 2?").
		Return(models.AnswerResponse{Answer: "Queues and workers."}, nil)

	view := env.services.QueryService.Ask(ctx, "  What is in chapter 2?  ")

	assert.Equal(t, "Answer ready! 🎉", view.Status.Text)
	assert.Equal(t, models.SeveritySuccess, view.Status.Severity)
	assert.Equal(t, "Queues and workers.", view.Answer)
	assert.True(t, view.HasAnswer)
	assert.Equal(t, view, env.services.QueryService.View().Current())
}

func TestAsk_EmptyAnswer(t *testing.T) {
	env := newTestEnv(t)

	env.signedIn(1)
	env.adapter.EXPECT().Ask(gomock.Any(), testToken, "q").Return(models.AnswerResponse{}, nil)

	view := env.services.QueryService.Ask(context.Background(), "q")
	assert.Equal(t, "No answer returned.", view.Answer)
}

func TestAsk_BackendFailure(t *testing.T) {
	env := newTestEnv(t)

	env.signedIn(1)
	env.adapter.EXPECT().Ask(gomock.Any(), testToken, "q").
		Return(models.AnswerResponse{}, &adapter.BackendError{StatusCode: http.StatusInternalServerError, Detail: "Model unavailable"})

	view := env.services.QueryService.Ask(context.Background(), "q")
	assert.Equal(t, "❌ Failed to get answer: Model unavailable", view.Status.Text)
	assert.Equal(t, "Error: Model unavailable", view.Answer)
	assert.True(t, view.HasAnswer)
}

func TestAsk_BackendFailureWithoutDetail(t *testing.T) {
	env := newTestEnv(t)

	env.signedIn(1)
	env.adapter.EXPECT().Ask(gomock.Any(), testToken, "q").
		Return(models.AnswerResponse{}, &adapter.BackendError{StatusCode: http.StatusBadGateway})

	view := env.services.QueryService.Ask(context.Background(), "q")
	assert.Equal(t, "❌ Failed to get answer: Unknown error", view.Status.Text)
	assert.Equal(t, "Error: Unknown error", view.Answer)
}

func TestAsk_NetworkError(t *testing.T) {
	env := newTestEnv(t)

	env.signedIn(1)
	env.adapter.EXPECT().Ask(gomock.Any(), testToken, "q").
		Return(models.AnswerResponse{}, &adapter.TransportError{Err: errors.New("context deadline exceeded")})

	view := env.services.QueryService.Ask(context.Background(), "q")
	assert.Equal(t, "❌ Network error: context deadline exceeded", view.Status.Text)
	assert.False(t, view.HasAnswer)
}

func TestAsk_NotAuthenticated(t *testing.T) {
	env := newTestEnv(t)
	env.signedOut()
	env.expectLoginRedirect()

	view := env.services.QueryService.Ask(context.Background(), "q")
	assert.Equal(t, "🚫 Not authenticated. Please log in.", view.Status.Text)
}

func TestAsk_RejectedCredential(t *testing.T) {
	env := newTestEnv(t)

	env.signedIn(1)
	env.adapter.EXPECT().Ask(gomock.Any(), testToken, "q").
		Return(models.AnswerResponse{}, &adapter.BackendError{StatusCode: http.StatusUnauthorized, Detail: "Token expired"})
	env.session.EXPECT().Clear(gomock.Any()).Return(nil)
	env.expectLoginRedirect()

	view := env.services.QueryService.Ask(context.Background(), "q")
	assert.Equal(t, "❌ Failed to get answer: Token expired", view.Status.Text)
}

func TestAsk_StaleAnswerDiscarded(t *testing.T) {
	env := newTestEnv(t)
	svc := env.services.QueryService

	firstInFlight := make(chan struct{})
	releaseFirst := make(chan struct{})

	env.signedIn(2)
	env.adapter.EXPECT().Ask(gomock.Any(), testToken, "first").
		DoAndReturn(func(context.Context, models.Credential, string) (models.AnswerResponse, error) {
			close(firstInFlight)
			<-releaseFirst
			return models.AnswerResponse{Answer: "first answer"}, nil
		})
	env.adapter.EXPECT().Ask(gomock.Any(), testToken, "second").
		Return(models.AnswerResponse{Answer: "second answer"}, nil)

	firstDone := make(chan models.AnswerView)
	go func() {
		firstDone <- svc.Ask(context.Background(), "first")
	}()

	<-firstInFlight
	second := svc.Ask(context.Background(), "second")
	require.Equal(t, "second answer", second.Answer)

	close(releaseFirst)
	select {
	case first := <-firstDone:
		// the caller still gets its own result
		assert.Equal(t, "first answer", first.Answer)
	case <-time.After(time.Second):
		t.Fatal("first Ask did not return")
	}

	assert.Equal(t, "second answer", svc.View().Current().Answer)
}
