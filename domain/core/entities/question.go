package entities

import (
	"time"

	"github.com/Japan1907/StackIt/domain/core/valueobjects"
)

// Question is the aggregate persisted per entry: the question itself plus
// its ordered answers (which in turn carry their comments). Mutation is by
// full-object replacement; reducers clone a question before changing it so
// earlier snapshots stay intact.
type Question struct {
	ID               string             `json:"id"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	Author           User               `json:"author"`
	Tags             []string           `json:"tags"`
	Votes            int                `json:"votes"`
	Answers          []Answer           `json:"answers"`
	AcceptedAnswerID string             `json:"acceptedAnswerId,omitempty"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
	UserVote         valueobjects.Vote  `json:"userVote,omitempty"`
}

// Clone returns a deep copy: tags, answers and nested comments are all
// copied so the clone shares no mutable state with the original.
func (q Question) Clone() Question {
	cloned := q

	cloned.Tags = make([]string, len(q.Tags))
	copy(cloned.Tags, q.Tags)

	cloned.Answers = make([]Answer, len(q.Answers))
	for i, a := range q.Answers {
		cloned.Answers[i] = a.Clone()
	}

	return cloned
}

// HasTag reports whether the question carries the given tag.
func (q Question) HasTag(tag string) bool {
	for _, t := range q.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AnswerByID returns the answer with the given id, or false.
func (q Question) AnswerByID(id string) (Answer, bool) {
	for _, a := range q.Answers {
		if a.ID == id {
			return a, true
		}
	}
	return Answer{}, false
}

// QuestionPatch carries optional fields for a partial question update.
type QuestionPatch struct {
	Title       *string
	Description *string
	Tags        []string // nil leaves tags unchanged
}

// Apply merges the patch into a deep copy of the question and returns it.
// The caller is responsible for bumping UpdatedAt.
func (p QuestionPatch) Apply(q Question) Question {
	merged := q.Clone()
	if p.Title != nil {
		merged.Title = *p.Title
	}
	if p.Description != nil {
		merged.Description = *p.Description
	}
	if p.Tags != nil {
		merged.Tags = make([]string, len(p.Tags))
		copy(merged.Tags, p.Tags)
	}
	return merged
}
