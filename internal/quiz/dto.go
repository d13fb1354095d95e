package quiz

import (
	"github.com/google/uuid"

	"github.com/saulo-duarte/hikma-lambda/internal/aiquiz"
)

type QuestionView struct {
	Index    int           `json:"index"`
	Question string        `json:"question"`
	Options  []string      `json:"options"`
	Answer   *AnswerResult `json:"answer,omitempty"`
}

// SessionView is what the client sees of a session. Correct answers are only
// revealed for questions that have been answered.
type SessionView struct {
	ID             uuid.UUID         `json:"id"`
	State          State             `json:"state"`
	Source         aiquiz.Source     `json:"source,omitempty"`
	LearnerName    string            `json:"learner_name,omitempty"`
	CurrentIndex   int               `json:"current_index"`
	TotalQuestions int               `json:"total_questions"`
	AnsweredCount  int               `json:"answered_count"`
	Score          int               `json:"score"`
	Current        *QuestionView     `json:"current,omitempty"`
	Message        string            `json:"message,omitempty"`
	Certificate    *CompletionRecord `json:"certificate,omitempty"`
}

type StartResponse struct {
	Session *SessionView `json:"session"`
	Token   string       `json:"token"`
}

type NameRequest struct {
	Name string `json:"name"`
}

type AnswerRequest struct {
	Answer string `json:"answer"`
}

func newSessionView(s *Session) *SessionView {
	v := &SessionView{
		ID:             s.ID,
		State:          s.State,
		Source:         s.Source,
		LearnerName:    s.LearnerName,
		CurrentIndex:   s.CurrentIndex,
		TotalQuestions: len(s.Questions),
		AnsweredCount:  len(s.Answers),
		Score:          s.Score,
	}

	switch s.State {
	case StateInProgress:
		q := s.Questions[s.CurrentIndex]
		cur := &QuestionView{
			Index:    s.CurrentIndex,
			Question: q.Question,
			Options:  append([]string(nil), q.Options...),
		}
		if s.answered() {
			res := s.result(q, s.Answers[s.CurrentIndex])
			cur.Answer = &res
		}
		v.Current = cur
	case StateUnavailable:
		v.Message = UnavailableMessage
	case StateCompleted:
		if s.Record != nil {
			rec := *s.Record
			v.Certificate = &rec
		}
	}
	return v
}
