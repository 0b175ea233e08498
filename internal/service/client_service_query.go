package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/doc-query/internal/adapter"
	"github.com/MKhiriev/doc-query/internal/app"
	"github.com/MKhiriev/doc-query/internal/logger"
	"github.com/MKhiriev/doc-query/internal/surface"
	"github.com/MKhiriev/doc-query/internal/validators"
	"github.com/MKhiriev/doc-query/models"
)

type clientQueryService struct {
	adapter   adapter.ServerAdapter
	guard     *sessionGuard
	validator validators.Validator
	logger    *logger.Logger

	view *surface.Surface[models.AnswerView]
}

// newClientQueryService returns the question workflow.
func newClientQueryService(serverAdapter adapter.ServerAdapter, guard *sessionGuard, validator validators.Validator, logger *logger.Logger) QueryService {
	return &clientQueryService{
		adapter:   serverAdapter,
		guard:     guard,
		validator: validator,
		logger:    logger,
		view:      surface.New(models.AnswerView{Status: models.StatusMessage{Workflow: models.WorkflowQuestion}}),
	}
}

func (q *clientQueryService) View() *surface.Surface[models.AnswerView] {
	return q.view
}

// Ask implements [QueryService]. Concurrent calls race; the view shows the
// result of the most recent call only.
func (q *clientQueryService) Ask(ctx context.Context, question string) models.AnswerView {
	ticket := q.view.Begin()
	publish := func(v models.AnswerView) models.AnswerView {
		q.view.Publish(ticket, v)
		return v
	}

	question = strings.TrimSpace(question)
	if err := q.validator.Validate(ctx, models.AskRequest{Question: question}, validators.FieldQuestion); err != nil {
		return publish(models.AnswerView{Status: models.Failure(models.WorkflowQuestion, app.MsgEmptyQuestion)})
	}

	cred, ok := q.guard.credential(ctx)
	if !ok {
		return publish(models.AnswerView{Status: models.Failure(models.WorkflowQuestion, app.MsgNotAuthenticated)})
	}

	publish(models.AnswerView{Status: models.Info(models.WorkflowQuestion, app.MsgAsking)})

	resp, err := q.adapter.Ask(ctx, cred, question)
	if err != nil {
		q.logger.Err(err).Str("func", "clientQueryService.Ask").Msg("question failed")

		f := describeFailure(err)
		view := models.AnswerView{
			Status: models.Failure(models.WorkflowQuestion, f.text(func(d string) string {
				return fmt.Sprintf(app.FmtAskFailed, d)
			})),
		}
		if !f.network {
			view.Answer = fmt.Sprintf(app.FmtAnswerError, f.detail)
			view.HasAnswer = true
		}
		view = publish(view)

		if f.unauthorized {
			q.guard.expire(ctx)
		}
		return view
	}

	answer := resp.Answer
	if strings.TrimSpace(answer) == "" {
		answer = app.MsgNoAnswer
	}

	return publish(models.AnswerView{
		Status:    models.Success(models.WorkflowQuestion, app.MsgAnswerReady),
		Answer:    answer,
		HasAnswer: true,
	})
}
