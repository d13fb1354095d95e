package content_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/hikma-lambda/internal/content"
)

func newTestRouter(p *countingProvider) http.Handler {
	r := chi.NewRouter()
	r.Mount("/content", content.Routes(content.NewHandler(content.NewService(p, nil))))
	return r
}

func TestHandlerFetchTopic(t *testing.T) {
	p := &countingProvider{reply: "قصة الفخار"}
	router := newTestRouter(p)

	req := httptest.NewRequest(http.MethodPost, "/content/heritage", strings.NewReader(`{"topic":"صناعة الفخار في بهلاء"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp content.FetchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, content.CategoryHeritage, resp.Category)
	assert.Equal(t, "قصة الفخار", resp.Content)
}

func TestHandlerAsk(t *testing.T) {
	p := &countingProvider{reply: "جواب"}
	router := newTestRouter(p)

	req := httptest.NewRequest(http.MethodPost, "/content/ask", strings.NewReader(`{"question":"ما هو الفلج؟"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, p.calls())
	assert.Contains(t, p.prompts[0], "ما هو الفلج؟")
}

func TestHandlerRejectsBadInput(t *testing.T) {
	p := &countingProvider{reply: "x"}
	router := newTestRouter(p)

	cases := []struct {
		name   string
		path   string
		body   string
		header string
	}{
		{"quiz category", "/content/quiz", `{"topic":"x"}`, ""},
		{"home category", "/content/home", `{"topic":"x"}`, ""},
		{"blank topic", "/content/rights", `{"topic":"   "}`, ""},
		{"blank question", "/content/ask", `{"question":""}`, ""},
		{"malformed body", "/content/rights", `{`, ""},
		{"bad viewer", "/content/rights", `{"topic":"x"}`, "not-a-uuid"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tc.path, strings.NewReader(tc.body))
			if tc.header != "" {
				req.Header.Set(content.ViewerHeader, tc.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
	assert.Equal(t, 0, p.calls())
}

func TestHandlerSectionsAndPanel(t *testing.T) {
	p := &countingProvider{reply: "رسم"}
	router := newTestRouter(p)
	viewer := "6f1c1f0e-2b7a-4c11-8d3c-0a9e8b7c6d5e"

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/content/sections/hobbies", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var section content.Section
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&section))
	assert.Len(t, section.Topics, 4)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/content/sections/sports", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/content/hobbies", strings.NewReader(`{"topic":"الرسم والفن التشكيلي"}`))
	req.Header.Set(content.ViewerHeader, viewer)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/content/hobbies/panel", nil)
	req.Header.Set(content.ViewerHeader, viewer)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var panel content.PanelState
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&panel))
	assert.Equal(t, "الرسم والفن التشكيلي", panel.Topic)
	assert.Equal(t, "رسم", panel.Content)
}
