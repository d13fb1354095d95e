package content_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/hikma-lambda/internal/content"
	"github.com/saulo-duarte/hikma-lambda/internal/gemini"
)

type providerFunc func(ctx context.Context, req gemini.Request) (string, error)

func (f providerFunc) Generate(ctx context.Context, req gemini.Request) (string, error) {
	return f(ctx, req)
}

// countingProvider echoes a fixed reply and records the prompts it saw.
type countingProvider struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []string
}

func (p *countingProvider) Generate(_ context.Context, req gemini.Request) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prompts = append(p.prompts, req.Prompt)
	return p.reply, p.err
}

func (p *countingProvider) calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.prompts)
}

func TestBuildPromptContainsPreambleAndTopic(t *testing.T) {
	preamble := content.BuildPrompt(content.CategoryHome, "")
	require.NotEmpty(t, preamble)

	for _, c := range content.AllCategories {
		if !c.IsContentCategory() {
			continue
		}
		t.Run(string(c), func(t *testing.T) {
			topic := "نظام الأفلاج المائي"
			prompt := content.BuildPrompt(c, topic)

			assert.NotEmpty(t, prompt)
			assert.True(t, strings.HasPrefix(prompt, preamble), "prompt must start with the persona preamble")
			assert.Contains(t, prompt, topic)
		})
	}
}

func TestBuildPromptIsDeterministic(t *testing.T) {
	a := content.BuildPrompt(content.CategoryFigures, "أحمد بن ماجد")
	b := content.BuildPrompt(content.CategoryFigures, "أحمد بن ماجد")
	assert.Equal(t, a, b)
}

func TestBuildPromptWithoutInstructionsIsPreambleOnly(t *testing.T) {
	preamble := content.BuildPrompt(content.CategoryHome, "")

	assert.Equal(t, preamble, content.BuildPrompt(content.CategoryQuiz, "anything"))
	assert.Equal(t, preamble, content.BuildPrompt(content.Category("unknown"), "anything"))
}

func TestCategories(t *testing.T) {
	assert.True(t, content.CategoryRights.IsValid())
	assert.False(t, content.Category("sports").IsValid())

	assert.False(t, content.CategoryHome.IsContentCategory())
	assert.False(t, content.CategoryQuiz.IsContentCategory())
	assert.True(t, content.CategoryAsk.IsContentCategory())

	for _, c := range content.AllCategories {
		assert.NotEmpty(t, c.Title(), "category %s needs a title", c)
	}
}

func TestCatalog(t *testing.T) {
	catalog := content.Catalog()
	require.Len(t, catalog, len(content.AllCategories))

	figures, ok := content.FindSection(content.CategoryFigures)
	require.True(t, ok)
	assert.Len(t, figures.Topics, 5)
	assert.Equal(t, content.CategoryFigures.Title(), figures.Label)

	figures.Topics[0].Name = "changed"
	again, _ := content.FindSection(content.CategoryFigures)
	assert.NotEqual(t, "changed", again.Topics[0].Name, "catalog must hand out copies")

	_, ok = content.FindSection(content.Category("nope"))
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, content.Validate(content.CategoryRights, "الحق في التعليم"))
	assert.ErrorIs(t, content.Validate(content.CategoryRights, "   "), content.ErrTopicRequired)
	assert.ErrorIs(t, content.Validate(content.CategoryQuiz, "x"), content.ErrInvalidCategory)
	assert.ErrorIs(t, content.Validate(content.CategoryHome, "x"), content.ErrInvalidCategory)
}

func TestFetchContentReturnsTextVerbatim(t *testing.T) {
	reply := "  **الأفلاج** نظام ري قديم.\n"
	p := &countingProvider{reply: reply}
	svc := content.NewService(p, nil)

	got := svc.FetchContent(context.Background(), content.CategoryHeritage, "نظام الأفلاج المائي")

	assert.Equal(t, reply, got)
	require.Equal(t, 1, p.calls())
	assert.Contains(t, p.prompts[0], "نظام الأفلاج المائي")
}

func TestFetchContentNeverFails(t *testing.T) {
	cases := map[string]gemini.Provider{
		"network error": &countingProvider{err: errors.New("dial tcp: connection refused")},
		"empty payload": &countingProvider{err: gemini.ErrEmptyResponse},
		"canceled": providerFunc(func(ctx context.Context, _ gemini.Request) (string, error) {
			return "", context.Canceled
		}),
	}

	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			svc := content.NewService(p, nil)
			assert.Equal(t, content.ErrorContent, svc.FetchContent(context.Background(), content.CategoryAsk, "لماذا نحتفل بالعيد الوطني؟"))
		})
	}
}

func TestDisplayCachesSameTopic(t *testing.T) {
	p := &countingProvider{reply: "الحق في التعليم مكفول"}
	svc := content.NewService(p, nil)
	viewer := "0b6f5a4e-7d1c-4d8e-9a51-3f1b2c3d4e5f"

	first := svc.Display(context.Background(), viewer, content.CategoryRights, "الحق في التعليم")
	second := svc.Display(context.Background(), viewer, content.CategoryRights, "الحق في التعليم")

	assert.False(t, first.Cached)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Content, second.Content)
	assert.Equal(t, 1, p.calls())

	panel := svc.Panel(viewer, content.CategoryRights)
	assert.Equal(t, "الحق في التعليم", panel.Topic)
	assert.False(t, panel.Loading)
}

func TestDisplayWithoutViewerAlwaysFetches(t *testing.T) {
	p := &countingProvider{reply: "x"}
	svc := content.NewService(p, nil)

	svc.Display(context.Background(), "", content.CategoryRights, "الحق في الحماية")
	svc.Display(context.Background(), "", content.CategoryRights, "الحق في الحماية")

	assert.Equal(t, 2, p.calls())
}

func TestDisplayDiscardsStaleResponse(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	p := providerFunc(func(_ context.Context, req gemini.Request) (string, error) {
		if strings.Contains(req.Prompt, "بطيء") {
			close(started)
			<-release
			return "slow content", nil
		}
		return "fast content", nil
	})
	svc := content.NewService(p, nil)
	viewer := "viewer-1"

	done := make(chan content.FetchResponse)
	go func() {
		done <- svc.Display(context.Background(), viewer, content.CategoryHeritage, "موضوع بطيء")
	}()

	<-started
	fast := svc.Display(context.Background(), viewer, content.CategoryHeritage, "موضوع سريع")
	close(release)
	slow := <-done

	assert.False(t, fast.Superseded)
	assert.True(t, slow.Superseded)

	panel := svc.Panel(viewer, content.CategoryHeritage)
	assert.Equal(t, "موضوع سريع", panel.Topic)
	assert.Equal(t, "fast content", panel.Content)
}

func TestPanelStoreTokens(t *testing.T) {
	store := content.NewPanelStore()

	t1, _, hit := store.Select("v", content.CategoryFigures, "a")
	require.False(t, hit)
	t2, _, _ := store.Select("v", content.CategoryFigures, "b")

	assert.False(t, store.Resolve("v", content.CategoryFigures, t1, "old"))
	assert.True(t, store.Resolve("v", content.CategoryFigures, t2, "new"))
	assert.False(t, store.Resolve("other", content.CategoryFigures, t2, "new"))

	state := store.Snapshot("v", content.CategoryFigures)
	assert.Equal(t, "b", state.Topic)
	assert.Equal(t, "new", state.Content)

	empty := store.Snapshot("v", content.CategoryRights)
	assert.Empty(t, empty.Topic)
	assert.False(t, empty.Loading)
}
