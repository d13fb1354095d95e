package content

import (
	"context"
	"errors"
	"strings"

	"github.com/saulo-duarte/hikma-lambda/internal/config"
	"github.com/saulo-duarte/hikma-lambda/internal/gemini"
)

// ErrorContent replaces the generated text whenever the remote call fails.
const ErrorContent = "عذراً، حدث خطأ أثناء محاولة جلب المعلومات. يرجى المحاولة مرة أخرى."

var (
	ErrInvalidCategory = errors.New("category is not served by the content client")
	ErrTopicRequired   = errors.New("topic is required")
)

type Service interface {
	FetchContent(ctx context.Context, category Category, topic string) string
	Display(ctx context.Context, viewer string, category Category, topic string) FetchResponse
	Panel(viewer string, category Category) PanelState
}

type service struct {
	provider gemini.Provider
	panels   *PanelStore
}

func NewService(provider gemini.Provider, panels *PanelStore) Service {
	if panels == nil {
		panels = NewPanelStore()
	}
	return &service{provider: provider, panels: panels}
}

// Validate checks the input constraints of FetchContent.
func Validate(category Category, topic string) error {
	if !category.IsContentCategory() {
		return ErrInvalidCategory
	}
	if strings.TrimSpace(topic) == "" {
		return ErrTopicRequired
	}
	return nil
}

// FetchContent never fails: remote errors become ErrorContent.
func (s *service) FetchContent(ctx context.Context, category Category, topic string) string {
	log := config.WithContext(ctx).WithField("category", category)

	text, err := s.provider.Generate(ctx, gemini.Request{Prompt: BuildPrompt(category, topic)})
	if err != nil {
		log.WithError(err).Error("Error fetching content from Gemini")
		return ErrorContent
	}

	log.Info("Content generated")
	return text
}

// Display fetches content on behalf of a viewer's panel. A viewer re-selecting
// the topic already shown gets the cached text; a response that lost the race
// against a newer selection is returned with Superseded set and not stored.
func (s *service) Display(ctx context.Context, viewer string, category Category, topic string) FetchResponse {
	resp := FetchResponse{Category: category, Topic: topic}
	if viewer == "" {
		resp.Content = s.FetchContent(ctx, category, topic)
		return resp
	}

	token, cached, hit := s.panels.Select(viewer, category, topic)
	if hit {
		resp.Content = cached
		resp.Cached = true
		return resp
	}

	resp.Content = s.FetchContent(ctx, category, topic)
	if !s.panels.Resolve(viewer, category, token, resp.Content) {
		config.WithContext(ctx).WithField("category", category).Info("Discarding superseded content response")
		resp.Superseded = true
	}
	return resp
}

func (s *service) Panel(viewer string, category Category) PanelState {
	return s.panels.Snapshot(viewer, category)
}
