package quiz

import (
	"time"

	"gorm.io/gorm"
)

type QuizContainer struct {
	Handler *Handler
	Service QuizService
}

// NewQuizContainer wires the quiz flow. A nil db keeps certificates in memory.
func NewQuizContainer(db *gorm.DB, questions QuestionSource, cookieDomain string, sessionTTL time.Duration, sessionLimit int) *QuizContainer {
	var repo CertificateRepository
	if db != nil {
		repo = NewRepository(db)
	} else {
		repo = NewMemoryRepository()
	}

	store := NewSessionStore(sessionTTL, sessionLimit)
	service := NewService(store, questions, repo)
	handler := NewHandler(service, cookieDomain, sessionTTL)

	return &QuizContainer{
		Handler: handler,
		Service: service,
	}
}
