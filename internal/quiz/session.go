package quiz

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/saulo-duarte/hikma-lambda/internal/aiquiz"
	util "github.com/saulo-duarte/hikma-lambda/internal/utils"
)

// UnavailableMessage is shown when a load produced no questions.
const UnavailableMessage = "لم يتم تحميل الأسئلة. حاول تحديث الصفحة."

var (
	ErrInvalidState  = errors.New("operation not allowed in current quiz state")
	ErrNameRequired  = errors.New("learner name is required")
	ErrNotAnswered   = errors.New("current question has not been answered")
	ErrUnknownOption = errors.New("answer is not one of the question options")
)

// Session is one learner's run through a question set. It is not safe for
// concurrent use; SessionStore serializes access.
type Session struct {
	ID           uuid.UUID
	State        State
	Source       aiquiz.Source
	Questions    []aiquiz.Question
	CurrentIndex int
	Answers      []string
	Score        int
	LearnerName  string
	Record       *CompletionRecord
	CreatedAt    time.Time
	UpdatedAt    time.Time

	gen util.Generation
}

func NewSession(id uuid.UUID, now time.Time) *Session {
	return &Session{
		ID:        id,
		State:     StateLoading,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// BeginLoad discards all progress, enters LOADING and returns the token the
// pending question load must present to FinishLoad.
func (s *Session) BeginLoad() uint64 {
	s.State = StateLoading
	s.Source = ""
	s.Questions = nil
	s.CurrentIndex = 0
	s.Answers = nil
	s.Score = 0
	s.LearnerName = ""
	s.Record = nil
	return s.gen.Next()
}

// Restart is BeginLoad under the name the quiz flow uses.
func (s *Session) Restart() uint64 {
	return s.BeginLoad()
}

// FinishLoad installs a loaded question set. It returns false, leaving the
// session untouched, when token belongs to a superseded load.
func (s *Session) FinishLoad(token uint64, quiz aiquiz.GeneratedQuiz) bool {
	if s.State != StateLoading || !s.gen.IsCurrent(token) {
		return false
	}

	s.Questions = quiz.Questions
	s.Source = quiz.Source
	s.CurrentIndex = 0
	s.Answers = nil
	s.Score = 0

	if len(s.Questions) == 0 {
		s.State = StateUnavailable
		return true
	}
	s.State = StateAwaitingName
	return true
}

func (s *Session) SubmitName(name string) error {
	if s.State != StateAwaitingName {
		return fmt.Errorf("%w: %s", ErrInvalidState, s.State)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	s.LearnerName = name
	s.State = StateInProgress
	return nil
}

func (s *Session) Current() (aiquiz.Question, error) {
	if s.State != StateInProgress || s.CurrentIndex >= len(s.Questions) {
		return aiquiz.Question{}, fmt.Errorf("%w: %s", ErrInvalidState, s.State)
	}
	return s.Questions[s.CurrentIndex], nil
}

func (s *Session) answered() bool {
	return len(s.Answers) > s.CurrentIndex
}

// Answer records the first answer to the current question. Later submissions
// before Next are no-ops that report the recorded answer with Duplicate set.
func (s *Session) Answer(option string) (AnswerResult, error) {
	q, err := s.Current()
	if err != nil {
		return AnswerResult{}, err
	}

	if s.answered() {
		res := s.result(q, s.Answers[s.CurrentIndex])
		res.Duplicate = true
		return res, nil
	}

	if !lo.Contains(q.Options, option) {
		return AnswerResult{}, ErrUnknownOption
	}

	s.Answers = append(s.Answers, option)
	if option == q.CorrectAnswer {
		s.Score++
	}
	return s.result(q, option), nil
}

func (s *Session) result(q aiquiz.Question, selected string) AnswerResult {
	return AnswerResult{
		QuestionIndex: s.CurrentIndex,
		Selected:      selected,
		Correct:       selected == q.CorrectAnswer,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		Score:         s.Score,
		IsLast:        s.CurrentIndex == len(s.Questions)-1,
	}
}

// Next advances past an answered question. After the last one the session
// completes and the returned record is non-nil.
func (s *Session) Next(now time.Time) (*CompletionRecord, error) {
	if _, err := s.Current(); err != nil {
		return nil, err
	}
	if !s.answered() {
		return nil, ErrNotAnswered
	}

	if s.CurrentIndex < len(s.Questions)-1 {
		s.CurrentIndex++
		return nil, nil
	}

	date := util.NewLocalDate(now)
	s.State = StateCompleted
	s.Record = &CompletionRecord{
		ID:             uuid.New(),
		SessionID:      s.ID,
		Name:           s.LearnerName,
		Date:           date,
		DisplayDate:    date.CertificateString(),
		Score:          s.Score,
		TotalQuestions: len(s.Questions),
		Source:         s.Source,
		CompletedAt:    now,
	}
	return s.Record, nil
}
