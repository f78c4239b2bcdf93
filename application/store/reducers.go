package store

import (
	"github.com/Japan1907/StackIt/domain/core/entities"
)

// The reducers below implement copy-on-write: they rebuild only the slice
// and the entities an action touches, and deep-clone entities on the way in
// so a caller holding the dispatched value cannot reach into store state.

func reduceSetUser(s Snapshot, a Action) Snapshot {
	act := a.(SetUser)
	if act.User == nil {
		s.CurrentUser = nil
		return s
	}
	u := act.User.Clone()
	s.CurrentUser = &u
	return s
}

func reduceSetQuestions(s Snapshot, a Action) Snapshot {
	act := a.(SetQuestions)
	questions := make([]entities.Question, len(act.Questions))
	for i, q := range act.Questions {
		questions[i] = q.Clone()
	}
	s.Questions = questions
	return s
}

func reduceAddQuestion(s Snapshot, a Action) Snapshot {
	act := a.(AddQuestion)
	questions := make([]entities.Question, 0, len(s.Questions)+1)
	questions = append(questions, act.Question.Clone())
	questions = append(questions, s.Questions...)
	s.Questions = questions
	return s
}

func reduceUpdateQuestion(s Snapshot, a Action) Snapshot {
	act := a.(UpdateQuestion)
	s.Questions = replaceQuestion(s.Questions, act.Question.ID, func(entities.Question) entities.Question {
		return act.Question.Clone()
	})
	return s
}

func reduceDeleteQuestion(s Snapshot, a Action) Snapshot {
	act := a.(DeleteQuestion)
	questions := make([]entities.Question, 0, len(s.Questions))
	for _, q := range s.Questions {
		if q.ID != act.QuestionID {
			questions = append(questions, q)
		}
	}
	s.Questions = questions
	return s
}

func reduceAddAnswer(s Snapshot, a Action) Snapshot {
	act := a.(AddAnswer)
	s.Questions = replaceQuestion(s.Questions, act.QuestionID, func(q entities.Question) entities.Question {
		next := q.Clone()
		next.Answers = append(next.Answers, act.Answer.Clone())
		return next
	})
	return s
}

func reduceUpdateAnswer(s Snapshot, a Action) Snapshot {
	act := a.(UpdateAnswer)
	s.Questions = replaceAnswer(s.Questions, act.Answer.ID, func(entities.Answer) entities.Answer {
		return act.Answer.Clone()
	})
	return s
}

func reduceVoteQuestion(s Snapshot, a Action) Snapshot {
	act := a.(VoteQuestion)
	s.Questions = replaceQuestion(s.Questions, act.QuestionID, func(q entities.Question) entities.Question {
		next := q.Clone()
		next.Votes += act.Vote.Delta()
		next.UserVote = act.Vote
		return next
	})
	return s
}

func reduceVoteAnswer(s Snapshot, a Action) Snapshot {
	act := a.(VoteAnswer)
	s.Questions = replaceAnswer(s.Questions, act.AnswerID, func(ans entities.Answer) entities.Answer {
		next := ans.Clone()
		next.Votes += act.Vote.Delta()
		next.UserVote = act.Vote
		return next
	})
	return s
}

func reduceAcceptAnswer(s Snapshot, a Action) Snapshot {
	act := a.(AcceptAnswer)
	s.Questions = replaceQuestion(s.Questions, act.QuestionID, func(q entities.Question) entities.Question {
		next := q.Clone()
		next.AcceptedAnswerID = act.AnswerID
		return next
	})
	return s
}

func reduceAddNotification(s Snapshot, a Action) Snapshot {
	act := a.(AddNotification)
	notifications := make([]entities.Notification, 0, len(s.Notifications)+1)
	notifications = append(notifications, act.Notification.Clone())
	notifications = append(notifications, s.Notifications...)
	s.Notifications = notifications
	return s
}

func reduceSetNotifications(s Snapshot, a Action) Snapshot {
	act := a.(SetNotifications)
	notifications := make([]entities.Notification, len(act.Notifications))
	for i, n := range act.Notifications {
		notifications[i] = n.Clone()
	}
	s.Notifications = notifications
	return s
}

func reduceMarkNotificationRead(s Snapshot, a Action) Snapshot {
	act := a.(MarkNotificationRead)
	notifications := make([]entities.Notification, len(s.Notifications))
	for i, n := range s.Notifications {
		if n.ID == act.NotificationID {
			read := n.Clone()
			read.Read = true
			notifications[i] = read
		} else {
			notifications[i] = n
		}
	}
	s.Notifications = notifications
	return s
}

func reduceSetLoading(s Snapshot, a Action) Snapshot {
	s.Loading = a.(SetLoading).Loading
	return s
}

func reduceSetError(s Snapshot, a Action) Snapshot {
	s.Err = a.(SetError).Err
	return s
}

// replaceQuestion rebuilds the question slice with the question matching id
// replaced by transform(q). The other elements are shared with the input
// slice; if no question matches, the rebuilt slice is element-wise identical.
func replaceQuestion(questions []entities.Question, id string, transform func(entities.Question) entities.Question) []entities.Question {
	next := make([]entities.Question, len(questions))
	for i, q := range questions {
		if q.ID == id {
			next[i] = transform(q)
		} else {
			next[i] = q
		}
	}
	return next
}

// replaceAnswer rebuilds the question slice with the answer matching id
// replaced by transform(a), wherever it lives.
func replaceAnswer(questions []entities.Question, id string, transform func(entities.Answer) entities.Answer) []entities.Question {
	next := make([]entities.Question, len(questions))
	for i, q := range questions {
		replaced := false
		for _, ans := range q.Answers {
			if ans.ID == id {
				replaced = true
				break
			}
		}
		if !replaced {
			next[i] = q
			continue
		}

		cloned := q.Clone()
		for j, ans := range cloned.Answers {
			if ans.ID == id {
				cloned.Answers[j] = transform(q.Answers[j])
			}
		}
		next[i] = cloned
	}
	return next
}
