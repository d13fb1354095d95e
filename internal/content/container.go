package content

import "github.com/saulo-duarte/hikma-lambda/internal/gemini"

type ContentContainer struct {
	Handler *Handler
	Service Service
}

func NewContentContainer(provider gemini.Provider) *ContentContainer {
	service := NewService(provider, NewPanelStore())
	handler := NewHandler(service)

	return &ContentContainer{
		Handler: handler,
		Service: service,
	}
}
