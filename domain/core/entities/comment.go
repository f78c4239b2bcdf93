package entities

import "time"

// Comment is an append-only remark on an answer. There is no edit or delete
// operation for comments.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Author    User      `json:"author"`
	AnswerID  string    `json:"answerId"`
	CreatedAt time.Time `json:"createdAt"`
}
