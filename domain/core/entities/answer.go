package entities

import (
	"time"

	"github.com/Japan1907/StackIt/domain/core/valueobjects"
)

// Answer belongs to exactly one question, referenced by QuestionID.
type Answer struct {
	ID         string            `json:"id"`
	Content    string            `json:"content"`
	Author     User              `json:"author"`
	QuestionID string            `json:"questionId"`
	Votes      int               `json:"votes"`
	Comments   []Comment         `json:"comments"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
	UserVote   valueobjects.Vote `json:"userVote,omitempty"`
}

// Clone returns a deep copy including the comment sequence.
func (a Answer) Clone() Answer {
	cloned := a
	cloned.Comments = make([]Comment, len(a.Comments))
	copy(cloned.Comments, a.Comments)
	return cloned
}
