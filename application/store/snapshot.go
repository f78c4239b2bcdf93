package store

import "github.com/Japan1907/StackIt/domain/core/entities"

// Snapshot is an immutable value capturing the entire store state at one
// point in time. Reducers never mutate a snapshot they were given; they
// return a new value sharing the unchanged slices of the old one.
type Snapshot struct {
	// CurrentUser is nil when nobody is logged in.
	CurrentUser *entities.User

	// Questions is ordered newest first.
	Questions []entities.Question

	// Notifications is ordered newest first.
	Notifications []entities.Notification

	// Loading is set while a simulated-latency operation is in flight.
	Loading bool

	// Err holds the last operation error message; empty means none.
	Err string
}

// QuestionByID returns the question with the given id, or false.
func (s Snapshot) QuestionByID(id string) (entities.Question, bool) {
	for _, q := range s.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return entities.Question{}, false
}

// AnswerByID returns the answer with the given id, searching across all
// questions, or false.
func (s Snapshot) AnswerByID(id string) (entities.Answer, bool) {
	for _, q := range s.Questions {
		if a, ok := q.AnswerByID(id); ok {
			return a, true
		}
	}
	return entities.Answer{}, false
}
