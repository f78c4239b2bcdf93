package valueobjects

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entity ids are prefixed, time-ordered strings of the form
// "<prefix>_<unix-millis>_<random>". The prefix makes the entity kind
// readable in persisted records, the millisecond stamp keeps ids roughly
// sortable by creation time, and the random tail guarantees uniqueness for
// ids minted within the same millisecond.
const (
	QuestionIDPrefix     = "q"
	AnswerIDPrefix       = "a"
	CommentIDPrefix      = "c"
	NotificationIDPrefix = "n"
	UserIDPrefix         = "u"
)

const randomIDLength = 9

// NewQuestionID mints a question id.
func NewQuestionID() string { return newID(QuestionIDPrefix) }

// NewAnswerID mints an answer id.
func NewAnswerID() string { return newID(AnswerIDPrefix) }

// NewCommentID mints a comment id.
func NewCommentID() string { return newID(CommentIDPrefix) }

// NewNotificationID mints a notification id.
func NewNotificationID() string { return newID(NotificationIDPrefix) }

// NewUserID mints a user id.
func NewUserID() string { return newID(UserIDPrefix) }

func newID(prefix string) string {
	random := strings.ReplaceAll(uuid.New().String(), "-", "")[:randomIDLength]
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), random)
}
