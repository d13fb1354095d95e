package aiquiz

import "github.com/saulo-duarte/hikma-lambda/internal/gemini"

type AIQuizContainer struct {
	Handler *Handler
	Service Service
}

func NewAIQuizContainer(provider gemini.Provider) *AIQuizContainer {
	service := NewService(provider)
	handler := NewHandler(service)

	return &AIQuizContainer{
		Handler: handler,
		Service: service,
	}
}
