// Package content implements the question/answer/vote/acceptance operations
// and their notification side effects on top of the domain store.
package content

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Japan1907/StackIt/application/queries"
	"github.com/Japan1907/StackIt/application/store"
	"github.com/Japan1907/StackIt/domain/config"
	"github.com/Japan1907/StackIt/domain/core/entities"
	"github.com/Japan1907/StackIt/domain/core/valueobjects"
	pkgerrors "github.com/Japan1907/StackIt/pkg/errors"
	"github.com/Japan1907/StackIt/pkg/utils"
)

// Service exposes the content operations. All mutations go through the
// store; the service itself holds no state beyond its collaborators.
type Service struct {
	store  *store.Store
	cfg    *config.DomainConfig
	logger *zap.Logger
}

// NewService creates a content service.
func NewService(st *store.Store, cfg *config.DomainConfig, logger *zap.Logger) *Service {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: st, cfg: cfg, logger: logger}
}

// CreateQuestionInput carries the caller-supplied fields of a new question.
// Author is the embedded snapshot of the asking user, copied by value.
type CreateQuestionInput struct {
	Title       string   `validate:"required"`
	Description string   `validate:"required"`
	Author      entities.User
	Tags        []string `validate:"required,min=1,dive,required"`
}

// CreateQuestion validates the input, simulates submission latency, and
// dispatches the new question. Title and description must be non-empty after
// markup stripping and at least one tag is required; violations surface as a
// ValidationError.
func (s *Service) CreateQuestion(ctx context.Context, input CreateQuestionInput) (entities.Question, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return entities.Question{}, err
	}
	if err := s.validateQuestionContent(input.Title, input.Description, input.Tags); err != nil {
		return entities.Question{}, err
	}

	s.simulateLatency()

	now := time.Now()
	question := entities.Question{
		ID:          valueobjects.NewQuestionID(),
		Title:       input.Title,
		Description: input.Description,
		Author:      input.Author.Clone(),
		Tags:        append([]string(nil), input.Tags...),
		Votes:       0,
		Answers:     []entities.Answer{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.store.Dispatch(store.AddQuestion{Question: question})
	s.logger.Info("question created",
		zap.String("questionId", question.ID),
		zap.String("author", question.Author.Username),
		zap.Strings("tags", question.Tags),
	)

	return question, nil
}

// UpdateQuestion merges the patch over the existing question, bumps
// UpdatedAt and dispatches the replacement. A nil return means the id was
// not found, which is a valid outcome rather than an error.
func (s *Service) UpdateQuestion(id string, patch entities.QuestionPatch) *entities.Question {
	existing, ok := s.store.Snapshot().QuestionByID(id)
	if !ok {
		return nil
	}

	merged := patch.Apply(existing)
	merged.UpdatedAt = time.Now()

	s.store.Dispatch(store.UpdateQuestion{Question: merged})
	return &merged
}

// DeleteQuestion removes the question and, transitively, its answers and
// comments. Idempotent: deleting an absent id is a no-op.
func (s *Service) DeleteQuestion(id string) {
	s.store.Dispatch(store.DeleteQuestion{QuestionID: id})
}

// VoteQuestion records a vote on a question. The store applies the delta the
// new vote carries and does not auto-toggle; callers wanting toggle
// semantics map a repeated vote to VoteNone themselves.
func (s *Service) VoteQuestion(id string, vote valueobjects.Vote) error {
	if !vote.IsValid() {
		return pkgerrors.NewValidationError(fmt.Sprintf("invalid vote %q", vote))
	}
	s.store.Dispatch(store.VoteQuestion{QuestionID: id, Vote: vote})
	return nil
}

// VoteAnswer records a vote on an answer.
func (s *Service) VoteAnswer(id string, vote valueobjects.Vote) error {
	if !vote.IsValid() {
		return pkgerrors.NewValidationError(fmt.Sprintf("invalid vote %q", vote))
	}
	s.store.Dispatch(store.VoteAnswer{AnswerID: id, Vote: vote})
	return nil
}

// AddAnswerInput carries the caller-supplied fields of a new answer.
type AddAnswerInput struct {
	Content string `validate:"required"`
	Author  entities.User
}

// AddAnswer appends an answer to the question and, when the answer author
// differs from the question author, notifies the question author. If the
// question does not exist the append is a store no-op and the notification
// target resolves to the empty string (undeliverable, not an error).
func (s *Service) AddAnswer(questionID string, input AddAnswerInput) (entities.Answer, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return entities.Answer{}, err
	}
	if utils.StripMarkup(input.Content) == "" {
		return entities.Answer{}, pkgerrors.NewValidationError("content is required")
	}

	now := time.Now()
	answer := entities.Answer{
		ID:         valueobjects.NewAnswerID(),
		Content:    input.Content,
		Author:     input.Author.Clone(),
		QuestionID: questionID,
		Votes:      0,
		Comments:   []entities.Comment{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	questionAuthorID := ""
	if question, ok := s.store.Snapshot().QuestionByID(questionID); ok {
		questionAuthorID = question.Author.ID
	}

	s.store.Dispatch(store.AddAnswer{QuestionID: questionID, Answer: answer})

	if input.Author.ID != questionAuthorID {
		s.store.Dispatch(store.AddNotification{Notification: entities.Notification{
			ID:        valueobjects.NewNotificationID(),
			UserID:    questionAuthorID,
			Kind:      entities.NotificationAnswer,
			Message:   fmt.Sprintf("%s answered your question", input.Author.Username),
			Read:      false,
			CreatedAt: time.Now(),
			RelatedID: questionID,
		}})
	}

	return answer, nil
}

// AddCommentInput carries the caller-supplied fields of a new comment.
type AddCommentInput struct {
	Content string `validate:"required"`
	Author  entities.User
}

// AddComment appends a comment to an answer and notifies the answer author
// when the comment author differs. Comments are append-only. A nil return
// means the answer was not found.
func (s *Service) AddComment(answerID string, input AddCommentInput) (*entities.Comment, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}

	answer, ok := s.store.Snapshot().AnswerByID(answerID)
	if !ok {
		return nil, nil
	}

	comment := entities.Comment{
		ID:        valueobjects.NewCommentID(),
		Content:   input.Content,
		Author:    input.Author.Clone(),
		AnswerID:  answerID,
		CreatedAt: time.Now(),
	}

	updated := answer.Clone()
	updated.Comments = append(updated.Comments, comment)
	s.store.Dispatch(store.UpdateAnswer{Answer: updated})

	if input.Author.ID != answer.Author.ID {
		s.store.Dispatch(store.AddNotification{Notification: entities.Notification{
			ID:        valueobjects.NewNotificationID(),
			UserID:    answer.Author.ID,
			Kind:      entities.NotificationComment,
			Message:   fmt.Sprintf("%s commented on your answer", input.Author.Username),
			Read:      false,
			CreatedAt: time.Now(),
			RelatedID: answerID,
		}})
	}

	return &comment, nil
}

// AcceptAnswer marks an answer as accepted on its question. Last write wins;
// a later acceptance silently overwrites an earlier one.
func (s *Service) AcceptAnswer(questionID, answerID string) {
	s.store.Dispatch(store.AcceptAnswer{QuestionID: questionID, AnswerID: answerID})
}

// FilterQuestions computes the filtered, sorted question view from the
// current snapshot. Pure with respect to store state.
func (s *Service) FilterQuestions(term string, tags []string, sortBy valueobjects.SortOrder) []entities.Question {
	return queries.FilterQuestions(s.store.Snapshot().Questions, term, tags, sortBy)
}

// AllTags aggregates tag frequencies across all questions, most frequent
// first.
func (s *Service) AllTags() []queries.TagCount {
	return queries.AllTags(s.store.Snapshot().Questions)
}

// validateQuestionContent enforces the rules that struct tags cannot: markup
// stripping and configured length limits.
func (s *Service) validateQuestionContent(title, description string, tags []string) error {
	if utils.StripMarkup(title) == "" {
		return pkgerrors.NewValidationError("title is required")
	}
	if utils.StripMarkup(description) == "" {
		return pkgerrors.NewValidationError("description is required")
	}
	if len([]rune(title)) > s.cfg.MaxTitleLength {
		return pkgerrors.NewValidationError(fmt.Sprintf("title exceeds maximum length of %d characters", s.cfg.MaxTitleLength))
	}
	if len([]rune(description)) > s.cfg.MaxDescriptionLength {
		return pkgerrors.NewValidationError(fmt.Sprintf("description exceeds maximum length of %d characters", s.cfg.MaxDescriptionLength))
	}
	if len(tags) > s.cfg.MaxTagsPerQuestion {
		return pkgerrors.NewValidationError(fmt.Sprintf("at most %d tags are allowed", s.cfg.MaxTagsPerQuestion))
	}
	for _, tag := range tags {
		if len([]rune(tag)) > s.cfg.MaxTagLength {
			return pkgerrors.NewValidationError(fmt.Sprintf("tag %q exceeds maximum length of %d characters", tag, s.cfg.MaxTagLength))
		}
	}
	return nil
}

func (s *Service) simulateLatency() {
	if s.cfg.SimulatedLatency > 0 {
		time.Sleep(s.cfg.SimulatedLatency)
	}
}
