package gemini_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"github.com/saulo-duarte/hikma-lambda/internal/gemini"
)

func fakeGeminiServer(t *testing.T, status int, text string, seen *map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, ":generateContent") {
			http.NotFound(w, r)
			return
		}
		if seen != nil {
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, seen)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"code":500,"message":"boom","status":"INTERNAL"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []any{
				map[string]any{
					"content": map[string]any{
						"role":  "model",
						"parts": []any{map[string]any{"text": text}},
					},
				},
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGeminiProviderGenerate(t *testing.T) {
	var seen map[string]any
	srv := fakeGeminiServer(t, http.StatusOK, "نظام الأفلاج", &seen)

	p, err := gemini.NewGeminiProvider(context.Background(), gemini.Options{
		APIKey:  "test-key",
		Model:   "gemini-2.5-flash",
		BaseURL: srv.URL,
	})
	require.NoError(t, err)

	text, err := p.Generate(context.Background(), gemini.Request{Prompt: "حدثيني عن الأفلاج"})
	require.NoError(t, err)
	assert.Equal(t, "نظام الأفلاج", text)
	assert.Contains(t, seen, "contents")
}

func TestGeminiProviderStructuredRequest(t *testing.T) {
	var seen map[string]any
	srv := fakeGeminiServer(t, http.StatusOK, `{"questions":[]}`, &seen)

	p, err := gemini.NewGeminiProvider(context.Background(), gemini.Options{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), gemini.Request{
		Prompt: "quiz",
		Schema: &genai.Schema{Type: genai.TypeObject},
	})
	require.NoError(t, err)

	generationConfig, ok := seen["generationConfig"].(map[string]any)
	require.True(t, ok, "structured requests must carry a generation config")
	assert.Equal(t, "application/json", generationConfig["responseMimeType"])
}

func TestGeminiProviderServiceError(t *testing.T) {
	srv := fakeGeminiServer(t, http.StatusInternalServerError, "", nil)

	p, err := gemini.NewGeminiProvider(context.Background(), gemini.Options{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), gemini.Request{Prompt: "x"})
	assert.Error(t, err)
}

func TestGeminiProviderEmptyText(t *testing.T) {
	srv := fakeGeminiServer(t, http.StatusOK, "", nil)

	p, err := gemini.NewGeminiProvider(context.Background(), gemini.Options{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), gemini.Request{Prompt: "x"})
	assert.ErrorIs(t, err, gemini.ErrEmptyResponse)
}

func newRecordedProvider(t *testing.T, url string) (gemini.Provider, *tracetest.SpanRecorder) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	p, err := gemini.NewGeminiProvider(context.Background(), gemini.Options{
		APIKey:         "test-key",
		BaseURL:        url,
		TracerProvider: tp,
	})
	require.NoError(t, err)
	return p, recorder
}

func spansByKind(spans []sdktrace.ReadOnlySpan, kind trace.SpanKind) []sdktrace.ReadOnlySpan {
	var out []sdktrace.ReadOnlySpan
	for _, s := range spans {
		if s.SpanKind() == kind {
			out = append(out, s)
		}
	}
	return out
}

func TestGeminiProviderEmitsSpans(t *testing.T) {
	srv := fakeGeminiServer(t, http.StatusOK, "نص", nil)
	p, recorder := newRecordedProvider(t, srv.URL)

	_, err := p.Generate(context.Background(), gemini.Request{Prompt: "x"})
	require.NoError(t, err)

	spans := recorder.Ended()
	clients := spansByKind(spans, trace.SpanKindClient)
	require.NotEmpty(t, clients, "the HTTP call to the model must be traced")

	internal := spansByKind(spans, trace.SpanKindInternal)
	require.Len(t, internal, 1)
	generate := internal[0]
	assert.Equal(t, "gemini.generate", generate.Name())
	assert.Equal(t, generate.SpanContext().TraceID(), clients[0].SpanContext().TraceID())
	assert.Equal(t, codes.Unset, generate.Status().Code)
}

func TestGeminiProviderSpanRecordsFailure(t *testing.T) {
	srv := fakeGeminiServer(t, http.StatusInternalServerError, "", nil)
	p, recorder := newRecordedProvider(t, srv.URL)

	_, err := p.Generate(context.Background(), gemini.Request{Prompt: "x"})
	require.Error(t, err)

	internal := spansByKind(recorder.Ended(), trace.SpanKindInternal)
	require.Len(t, internal, 1)
	assert.Equal(t, codes.Error, internal[0].Status().Code)
}
