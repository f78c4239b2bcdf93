package store

import (
	"github.com/Japan1907/StackIt/domain/core/entities"
	"github.com/Japan1907/StackIt/domain/core/valueobjects"
)

// Action is a named, structured request to transition the store from one
// snapshot to the next. Any value may be dispatched; types without a
// registered reducer are ignored and leave the snapshot unchanged. That
// permissiveness is part of the store contract, not an oversight.
type Action interface{}

// SetUser replaces the current user. A nil User logs out.
type SetUser struct {
	User *entities.User
}

// SetQuestions replaces the question list wholesale.
type SetQuestions struct {
	Questions []entities.Question
}

// AddQuestion prepends a question (newest-first ordering).
type AddQuestion struct {
	Question entities.Question
}

// UpdateQuestion replaces a question by id; no-op if the id is absent.
type UpdateQuestion struct {
	Question entities.Question
}

// DeleteQuestion removes a question, its answers and their comments; no-op
// if the id is absent.
type DeleteQuestion struct {
	QuestionID string
}

// AddAnswer appends an answer to the question with the given id.
type AddAnswer struct {
	QuestionID string
	Answer     entities.Answer
}

// UpdateAnswer replaces an answer by id across all questions.
type UpdateAnswer struct {
	Answer entities.Answer
}

// VoteQuestion adjusts a question's vote count by the delta the new vote
// carries (+1 up, -1 down, 0 clear) and records the viewer vote state.
type VoteQuestion struct {
	QuestionID string
	Vote       valueobjects.Vote
}

// VoteAnswer is VoteQuestion scoped to an answer.
type VoteAnswer struct {
	AnswerID string
	Vote     valueobjects.Vote
}

// AcceptAnswer sets the accepted answer on a question. Re-acceptance
// silently overwrites the previous choice.
type AcceptAnswer struct {
	QuestionID string
	AnswerID   string
}

// AddNotification prepends a notification.
type AddNotification struct {
	Notification entities.Notification
}

// SetNotifications replaces the notification list wholesale (hydration).
type SetNotifications struct {
	Notifications []entities.Notification
}

// MarkNotificationRead sets read=true on one notification by id; no-op if
// the id is absent.
type MarkNotificationRead struct {
	NotificationID string
}

// SetLoading overwrites the loading flag.
type SetLoading struct {
	Loading bool
}

// SetError overwrites the last-error field; an empty string clears it.
type SetError struct {
	Err string
}
