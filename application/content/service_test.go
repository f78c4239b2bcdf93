package content

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Japan1907/StackIt/application/store"
	"github.com/Japan1907/StackIt/domain/config"
	"github.com/Japan1907/StackIt/domain/core/entities"
	"github.com/Japan1907/StackIt/domain/core/valueobjects"
	pkgerrors "github.com/Japan1907/StackIt/pkg/errors"
)

func newTestService() (*Service, *store.Store) {
	st := store.New(nil)
	return NewService(st, config.TestDomainConfig(), nil), st
}

func alice() entities.User {
	return entities.User{ID: "u1", Username: "alice", Email: "alice@example.com", JoinedAt: time.Now()}
}

func bob() entities.User {
	return entities.User{ID: "u2", Username: "bob", Email: "bob@example.com", JoinedAt: time.Now()}
}

func TestCreateQuestion_Success(t *testing.T) {
	svc, st := newTestService()
	ctx := context.Background()

	q, err := svc.CreateQuestion(ctx, CreateQuestionInput{
		Title:       "How do I use channels?",
		Description: "<p>I need buffered channels.</p>",
		Author:      alice(),
		Tags:        []string{"go", "concurrency"},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, q.ID)
	assert.Regexp(t, `^q_\d+_[0-9a-f]{9}$`, q.ID)
	assert.Equal(t, 0, q.Votes)
	assert.NotNil(t, q.Answers)
	assert.Empty(t, q.Answers)
	assert.Equal(t, "alice", q.Author.Username)
	assert.False(t, q.CreatedAt.IsZero())

	snap := st.Snapshot()
	require.Len(t, snap.Questions, 1)
	assert.Equal(t, q.ID, snap.Questions[0].ID)
}

func TestCreateQuestion_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input CreateQuestionInput
	}{
		{
			name:  "empty title",
			input: CreateQuestionInput{Title: "", Description: "body", Author: alice(), Tags: []string{"go"}},
		},
		{
			name:  "markup-only title",
			input: CreateQuestionInput{Title: "<b></b>", Description: "body", Author: alice(), Tags: []string{"go"}},
		},
		{
			name:  "empty description",
			input: CreateQuestionInput{Title: "t", Description: "", Author: alice(), Tags: []string{"go"}},
		},
		{
			name:  "markup-only description",
			input: CreateQuestionInput{Title: "t", Description: "<p>   </p>", Author: alice(), Tags: []string{"go"}},
		},
		{
			name:  "no tags",
			input: CreateQuestionInput{Title: "t", Description: "body", Author: alice(), Tags: []string{}},
		},
		{
			name:  "blank tag",
			input: CreateQuestionInput{Title: "t", Description: "body", Author: alice(), Tags: []string{"go", ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, st := newTestService()

			_, err := svc.CreateQuestion(context.Background(), tt.input)

			require.Error(t, err)
			assert.True(t, pkgerrors.IsValidation(err), "expected a validation error, got %v", err)
			assert.Empty(t, st.Snapshot().Questions, "rejected input must not reach the store")
		})
	}
}

func TestCreateQuestion_LengthLimits(t *testing.T) {
	svc, _ := newTestService()
	longTitle := make([]rune, 201)
	for i := range longTitle {
		longTitle[i] = 'x'
	}

	_, err := svc.CreateQuestion(context.Background(), CreateQuestionInput{
		Title:       string(longTitle),
		Description: "body",
		Author:      alice(),
		Tags:        []string{"go"},
	})

	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestUpdateQuestion(t *testing.T) {
	svc, st := newTestService()
	q, err := svc.CreateQuestion(context.Background(), CreateQuestionInput{
		Title: "original", Description: "body", Author: alice(), Tags: []string{"go"},
	})
	require.NoError(t, err)

	title := "revised"
	updated := svc.UpdateQuestion(q.ID, entities.QuestionPatch{Title: &title})

	require.NotNil(t, updated)
	assert.Equal(t, "revised", updated.Title)
	assert.Equal(t, "body", updated.Description)
	assert.True(t, updated.UpdatedAt.After(q.UpdatedAt) || updated.UpdatedAt.Equal(q.UpdatedAt))
	assert.Equal(t, "revised", st.Snapshot().Questions[0].Title)

	assert.Nil(t, svc.UpdateQuestion("missing", entities.QuestionPatch{Title: &title}))
}

func TestDeleteQuestion_Idempotent(t *testing.T) {
	svc, st := newTestService()
	q, err := svc.CreateQuestion(context.Background(), CreateQuestionInput{
		Title: "doomed", Description: "body", Author: alice(), Tags: []string{"go"},
	})
	require.NoError(t, err)

	svc.DeleteQuestion(q.ID)
	svc.DeleteQuestion(q.ID)

	assert.Empty(t, st.Snapshot().Questions)
}

func TestVoteQuestion_InvalidVote(t *testing.T) {
	svc, _ := newTestService()

	err := svc.VoteQuestion("q1", valueobjects.Vote("sideways"))
	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))

	err = svc.VoteAnswer("a1", valueobjects.Vote("sideways"))
	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestAddAnswer_CrossAuthorNotifies(t *testing.T) {
	svc, st := newTestService()
	q, err := svc.CreateQuestion(context.Background(), CreateQuestionInput{
		Title: "notify me", Description: "body", Author: alice(), Tags: []string{"go"},
	})
	require.NoError(t, err)

	ans, err := svc.AddAnswer(q.ID, AddAnswerInput{Content: "use select", Author: bob()})
	require.NoError(t, err)
	assert.Regexp(t, `^a_\d+_[0-9a-f]{9}$`, ans.ID)

	snap := st.Snapshot()
	require.Len(t, snap.Questions[0].Answers, 1)
	require.Len(t, snap.Notifications, 1)
	n := snap.Notifications[0]
	assert.Equal(t, alice().ID, n.UserID)
	assert.Equal(t, entities.NotificationAnswer, n.Kind)
	assert.Equal(t, "bob answered your question", n.Message)
	assert.Equal(t, q.ID, n.RelatedID)
	assert.False(t, n.Read)
}

func TestAddAnswer_SelfAnswerDoesNotNotify(t *testing.T) {
	svc, st := newTestService()
	q, err := svc.CreateQuestion(context.Background(), CreateQuestionInput{
		Title: "self answered", Description: "body", Author: alice(), Tags: []string{"go"},
	})
	require.NoError(t, err)

	_, err = svc.AddAnswer(q.ID, AddAnswerInput{Content: "never mind, solved it", Author: alice()})
	require.NoError(t, err)

	assert.Empty(t, st.Snapshot().Notifications)
}

func TestAddAnswer_MissingQuestion(t *testing.T) {
	svc, st := newTestService()

	// The answer lands nowhere; the notification targets the empty user id.
	_, err := svc.AddAnswer("missing", AddAnswerInput{Content: "shouting into the void", Author: bob()})
	require.NoError(t, err)

	snap := st.Snapshot()
	assert.Empty(t, snap.Questions)
	require.Len(t, snap.Notifications, 1)
	assert.Equal(t, "", snap.Notifications[0].UserID)
}

func TestAddComment_CrossAuthorNotifies(t *testing.T) {
	svc, st := newTestService()
	q, err := svc.CreateQuestion(context.Background(), CreateQuestionInput{
		Title: "commented", Description: "body", Author: alice(), Tags: []string{"go"},
	})
	require.NoError(t, err)
	ans, err := svc.AddAnswer(q.ID, AddAnswerInput{Content: "an answer", Author: bob()})
	require.NoError(t, err)

	c, err := svc.AddComment(ans.ID, AddCommentInput{Content: "nice one", Author: alice()})
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Regexp(t, `^c_\d+_[0-9a-f]{9}$`, c.ID)

	snap := st.Snapshot()
	require.Len(t, snap.Questions[0].Answers[0].Comments, 1)

	// One notification from the answer, one from the comment.
	require.Len(t, snap.Notifications, 2)
	comment := snap.Notifications[0]
	assert.Equal(t, bob().ID, comment.UserID)
	assert.Equal(t, entities.NotificationComment, comment.Kind)
	assert.Equal(t, "alice commented on your answer", comment.Message)
}

func TestAddComment_MissingAnswer(t *testing.T) {
	svc, _ := newTestService()

	c, err := svc.AddComment("missing", AddCommentInput{Content: "lost", Author: alice()})
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestAcceptAnswer(t *testing.T) {
	svc, st := newTestService()
	q, err := svc.CreateQuestion(context.Background(), CreateQuestionInput{
		Title: "accepted", Description: "body", Author: alice(), Tags: []string{"go"},
	})
	require.NoError(t, err)
	ans, err := svc.AddAnswer(q.ID, AddAnswerInput{Content: "the one", Author: bob()})
	require.NoError(t, err)

	svc.AcceptAnswer(q.ID, ans.ID)

	assert.Equal(t, ans.ID, st.Snapshot().Questions[0].AcceptedAnswerID)
}

func TestFilterQuestionsAndAllTags_Delegation(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.CreateQuestion(context.Background(), CreateQuestionInput{
		Title: "channels", Description: "body", Author: alice(), Tags: []string{"go", "concurrency"},
	})
	require.NoError(t, err)
	_, err = svc.CreateQuestion(context.Background(), CreateQuestionInput{
		Title: "slices", Description: "body", Author: alice(), Tags: []string{"go"},
	})
	require.NoError(t, err)

	matched := svc.FilterQuestions("channels", nil, valueobjects.SortNewest)
	require.Len(t, matched, 1)
	assert.Equal(t, "channels", matched[0].Title)

	tags := svc.AllTags()
	require.Len(t, tags, 2)
	assert.Equal(t, "go", tags[0].Name)
	assert.Equal(t, 2, tags[0].Count)
}
