package aiquiz

import (
	"context"

	"github.com/saulo-duarte/hikma-lambda/internal/config"
	"github.com/saulo-duarte/hikma-lambda/internal/gemini"
)

type Service interface {
	// GenerateQuestions always yields a playable set: remote questions when
	// the model answers with valid data, the built-in set otherwise.
	GenerateQuestions(ctx context.Context) GeneratedQuiz
}

type service struct {
	provider gemini.Provider
}

func NewService(provider gemini.Provider) Service {
	return &service{provider: provider}
}

func (s *service) GenerateQuestions(ctx context.Context) GeneratedQuiz {
	log := config.WithContext(ctx)

	raw, err := s.provider.Generate(ctx, gemini.Request{
		Prompt: quizPrompt,
		Schema: ResponseSchema,
	})
	if err != nil {
		log.WithError(err).Warn("[AIQUIZ] Quiz generation failed, using built-in questions")
		return fallback()
	}

	questions, err := ParseQuestions(raw)
	if err != nil {
		log.WithError(err).Warnf("[AIQUIZ] Discarding invalid quiz response, using built-in questions. Raw:\n%s", raw)
		return fallback()
	}

	log.Infof("[AIQUIZ] Generated %d questions", len(questions))
	return GeneratedQuiz{Source: SourceRemote, Questions: questions}
}

func fallback() GeneratedQuiz {
	return GeneratedQuiz{Source: SourceFallback, Questions: FallbackQuestions()}
}
