package badgerstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Japan1907/StackIt/domain/core/entities"
	"github.com/Japan1907/StackIt/domain/core/valueobjects"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCurrentUserRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, ok, err := s.LoadCurrentUser(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "fresh store must report no current user")

	user := entities.User{
		ID:       "u1",
		Username: "alice",
		Email:    "alice@example.com",
		Bio:      "gopher",
		JoinedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.SaveCurrentUser(ctx, user))

	loaded, ok, err := s.LoadCurrentUser(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, user, loaded)

	require.NoError(t, s.ClearCurrentUser(ctx))
	_, ok, err = s.LoadCurrentUser(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// Clearing twice is fine.
	assert.NoError(t, s.ClearCurrentUser(ctx))
}

func TestQuestionsRoundTrip_NestedAggregates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	loaded, err := s.LoadQuestions(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded, "absent record must load as nil")

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	author := entities.User{ID: "u1", Username: "alice", JoinedAt: now}
	questions := []entities.Question{
		{
			ID:          "q1",
			Title:       "nested",
			Description: "everything round-trips",
			Author:      author,
			Tags:        []string{"go", "storage"},
			Votes:       3,
			UserVote:    valueobjects.VoteUp,
			CreatedAt:   now,
			UpdatedAt:   now,
			Answers: []entities.Answer{
				{
					ID:         "a1",
					Content:    "an answer",
					Author:     entities.User{ID: "u2", Username: "bob", JoinedAt: now},
					QuestionID: "q1",
					Votes:      -1,
					UserVote:   valueobjects.VoteDown,
					CreatedAt:  now,
					UpdatedAt:  now,
					Comments: []entities.Comment{
						{ID: "c1", Content: "a comment", Author: author, AnswerID: "a1", CreatedAt: now},
					},
				},
			},
			AcceptedAnswerID: "a1",
		},
	}
	require.NoError(t, s.SaveQuestions(ctx, questions))

	loaded, err = s.LoadQuestions(ctx)
	require.NoError(t, err)
	assert.Equal(t, questions, loaded)
}

func TestNotificationsRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	notifications := []entities.Notification{
		{
			ID:        "n1",
			UserID:    "u1",
			Kind:      entities.NotificationAnswer,
			Message:   "bob answered your question",
			Read:      true,
			CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			RelatedID: "q1",
		},
	}
	require.NoError(t, s.SaveNotifications(ctx, notifications))

	loaded, err := s.LoadNotifications(ctx)
	require.NoError(t, err)
	assert.Equal(t, notifications, loaded)
}

func TestUsersRoundTrip_KeepsHash(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	users := []entities.Credential{
		{
			User:         entities.User{ID: "u1", Username: "alice", JoinedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
			PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		},
	}
	require.NoError(t, s.SaveUsers(ctx, users))

	loaded, err := s.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, users, loaded)
}

func TestSaveOverwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveQuestions(ctx, []entities.Question{{ID: "q1"}, {ID: "q2"}}))
	require.NoError(t, s.SaveQuestions(ctx, []entities.Question{{ID: "q2"}}))

	loaded, err := s.LoadQuestions(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "q2", loaded[0].ID)
}

func TestContextCancellation(t *testing.T) {
	s := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, s.SaveQuestions(ctx, nil))
	_, err := s.LoadQuestions(ctx)
	assert.Error(t, err)
}

func TestNew_RequiresPath(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}
