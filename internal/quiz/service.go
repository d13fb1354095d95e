package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"github.com/saulo-duarte/hikma-lambda/internal/aiquiz"
	"github.com/saulo-duarte/hikma-lambda/internal/config"
	util "github.com/saulo-duarte/hikma-lambda/internal/utils"
)

const (
	defaultCertificateLimit = 50
	maxCertificateLimit     = 200
)

// QuestionSource produces the question set for a session load.
type QuestionSource interface {
	GenerateQuestions(ctx context.Context) aiquiz.GeneratedQuiz
}

type QuizService interface {
	Start(ctx context.Context) (*SessionView, error)
	Get(ctx context.Context, id uuid.UUID) (*SessionView, error)
	SubmitName(ctx context.Context, id uuid.UUID, name string) (*SessionView, error)
	Answer(ctx context.Context, id uuid.UUID, option string) (*AnswerResult, error)
	Next(ctx context.Context, id uuid.UUID) (*SessionView, error)
	Restart(ctx context.Context, id uuid.UUID) (*SessionView, error)
	Certificate(ctx context.Context, id uuid.UUID) (*CompletionRecord, error)
	End(ctx context.Context, id uuid.UUID) error
	ListCertificates(ctx context.Context, limit int) ([]*CompletionRecord, error)
}

type quizService struct {
	store     *SessionStore
	questions QuestionSource
	repo      CertificateRepository
	now       func() time.Time
}

func NewService(store *SessionStore, questions QuestionSource, repo CertificateRepository) QuizService {
	return &quizService{
		store:     store,
		questions: questions,
		repo:      repo,
		now:       time.Now,
	}
}

func (s *quizService) Start(ctx context.Context) (*SessionView, error) {
	log := config.WithContext(ctx)

	id := s.store.Create()
	var token uint64
	if err := s.store.Update(id, func(sess *Session) error {
		token = sess.BeginLoad()
		return nil
	}); err != nil {
		return nil, err
	}

	log.WithField("session_id", id).Info("Quiz session started")
	return s.load(ctx, id, token)
}

func (s *quizService) Restart(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	log := config.WithContext(ctx).WithField("session_id", id)

	var token uint64
	if err := s.store.Update(id, func(sess *Session) error {
		token = sess.Restart()
		return nil
	}); err != nil {
		return nil, err
	}

	log.Info("Quiz session restarted")
	return s.load(ctx, id, token)
}

// load fetches questions without holding the store lock, then applies them
// only if no newer load was started meanwhile.
func (s *quizService) load(ctx context.Context, id uuid.UUID, token uint64) (*SessionView, error) {
	log := config.WithContext(ctx).WithField("session_id", id)

	quiz := s.questions.GenerateQuestions(ctx)

	var view *SessionView
	err := s.store.Update(id, func(sess *Session) error {
		if !sess.FinishLoad(token, quiz) {
			log.Info("Discarding superseded question load")
		}
		view = newSessionView(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if view.State == StateUnavailable {
		log.Warn("Quiz loaded without questions")
	} else {
		log.WithFields(logrus.Fields{
			"source":    quiz.Source,
			"questions": len(quiz.Questions),
		}).Info("Quiz questions loaded")
	}
	return view, nil
}

func (s *quizService) Get(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	var view *SessionView
	if err := s.store.View(id, func(sess *Session) {
		view = newSessionView(sess)
	}); err != nil {
		return nil, err
	}
	return view, nil
}

func (s *quizService) SubmitName(ctx context.Context, id uuid.UUID, name string) (*SessionView, error) {
	var view *SessionView
	err := s.store.Update(id, func(sess *Session) error {
		if err := sess.SubmitName(name); err != nil {
			return err
		}
		view = newSessionView(sess)
		return nil
	})
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Could not submit learner name")
		return nil, err
	}
	return view, nil
}

func (s *quizService) Answer(ctx context.Context, id uuid.UUID, option string) (*AnswerResult, error) {
	log := config.WithContext(ctx).WithField("session_id", id)

	var res AnswerResult
	err := s.store.Update(id, func(sess *Session) error {
		var err error
		res, err = sess.Answer(option)
		return err
	})
	if err != nil {
		log.WithError(err).Warn("Answer rejected")
		return nil, err
	}

	if res.Duplicate {
		log.WithField("question_index", res.QuestionIndex).Debug("Ignoring repeated answer")
	}
	return &res, nil
}

func (s *quizService) Next(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	log := config.WithContext(ctx).WithField("session_id", id)

	var (
		view      *SessionView
		record    *CompletionRecord
		questions []aiquiz.Question
		answers   []string
	)
	err := s.store.Update(id, func(sess *Session) error {
		var err error
		record, err = sess.Next(s.now())
		if err != nil {
			return err
		}
		if record != nil {
			questions = sess.Questions
			answers = append([]string(nil), sess.Answers...)
		}
		view = newSessionView(sess)
		return nil
	})
	if err != nil {
		log.WithError(err).Warn("Could not advance quiz")
		return nil, err
	}

	if record != nil {
		log.WithFields(logrus.Fields{
			"score": record.Score,
			"total": record.TotalQuestions,
		}).Info("Quiz completed")
		if err := s.persist(ctx, record, questions, answers); err != nil {
			log.WithError(err).Error("Failed to save certificate")
		}
	}
	return view, nil
}

func (s *quizService) Certificate(ctx context.Context, id uuid.UUID) (*CompletionRecord, error) {
	var record *CompletionRecord
	err := s.store.View(id, func(sess *Session) {
		if sess.State == StateCompleted && sess.Record != nil {
			rec := *sess.Record
			record = &rec
		}
	})
	if err == nil && record != nil {
		return record, nil
	}
	if err == nil {
		return nil, fmt.Errorf("%w: quiz not completed", ErrInvalidState)
	}

	// The live session may have expired; fall back to the saved certificate.
	cert, repoErr := s.repo.GetBySessionID(ctx, id)
	if errors.Is(repoErr, ErrCertificateNotFound) {
		return nil, err
	}
	if repoErr != nil {
		config.WithContext(ctx).WithError(repoErr).WithField("session_id", id).Error("Failed to load certificate")
		return nil, fmt.Errorf("failed to load certificate: %w", repoErr)
	}
	return toRecord(cert)
}

func (s *quizService) End(ctx context.Context, id uuid.UUID) error {
	if !s.store.Delete(id) {
		return ErrSessionNotFound
	}
	config.WithContext(ctx).WithField("session_id", id).Info("Quiz session ended")
	return nil
}

func (s *quizService) ListCertificates(ctx context.Context, limit int) ([]*CompletionRecord, error) {
	if limit <= 0 {
		limit = defaultCertificateLimit
	}
	if limit > maxCertificateLimit {
		limit = maxCertificateLimit
	}

	certs, err := s.repo.List(ctx, limit)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list certificates")
		return nil, err
	}

	records := make([]*CompletionRecord, 0, len(certs))
	for _, c := range certs {
		rec, err := toRecord(c)
		if err != nil {
			config.WithContext(ctx).WithError(err).WithField("certificate_id", c.ID).Warn("Skipping unreadable certificate")
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *quizService) persist(ctx context.Context, rec *CompletionRecord, questions []aiquiz.Question, answers []string) error {
	cert, err := toCertificate(rec, questions, answers)
	if err != nil {
		return err
	}
	return s.repo.Create(ctx, cert)
}

func toCertificate(rec *CompletionRecord, questions []aiquiz.Question, answers []string) (*Certificate, error) {
	qs, err := json.Marshal(questions)
	if err != nil {
		return nil, fmt.Errorf("failed to encode questions: %w", err)
	}
	as, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode answers: %w", err)
	}

	name, encrypted := rec.Name, false
	if config.CryptoEnabled() {
		enc, err := config.Encrypt(rec.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt learner name: %w", err)
		}
		name, encrypted = enc, true
	}

	return &Certificate{
		ID:             rec.ID,
		SessionID:      rec.SessionID,
		LearnerName:    name,
		NameEncrypted:  encrypted,
		CompletionDate: rec.Date,
		Score:          rec.Score,
		TotalQuestions: rec.TotalQuestions,
		Source:         string(rec.Source),
		Questions:      datatypes.JSON(qs),
		Answers:        datatypes.JSON(as),
		CompletedAt:    rec.CompletedAt,
	}, nil
}

func toRecord(c *Certificate) (*CompletionRecord, error) {
	name := c.LearnerName
	if c.NameEncrypted {
		dec, err := config.Decrypt(c.LearnerName)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt learner name: %w", err)
		}
		name = dec
	}

	date := c.CompletionDate
	if date.IsZero() {
		date = util.NewLocalDate(c.CompletedAt)
	}

	return &CompletionRecord{
		ID:             c.ID,
		SessionID:      c.SessionID,
		Name:           name,
		Date:           date,
		DisplayDate:    date.CertificateString(),
		Score:          c.Score,
		TotalQuestions: c.TotalQuestions,
		Source:         aiquiz.Source(c.Source),
		CompletedAt:    c.CompletedAt,
	}, nil
}
