package aiquiz_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/hikma-lambda/internal/aiquiz"
	"github.com/saulo-duarte/hikma-lambda/internal/gemini"
)

type stubProvider struct {
	reply string
	err   error
	last  gemini.Request
}

func (p *stubProvider) Generate(_ context.Context, req gemini.Request) (string, error) {
	p.last = req
	return p.reply, p.err
}

func remoteQuestions(n int) []aiquiz.Question {
	qs := make([]aiquiz.Question, n)
	for i := range qs {
		qs[i] = aiquiz.Question{
			Question:      fmt.Sprintf("سؤال %d", i+1),
			Options:       []string{"أ", "ب", "ج", "د"},
			CorrectAnswer: "ج",
			Explanation:   "شرح",
		}
	}
	return qs
}

func encode(t *testing.T, qs []aiquiz.Question) string {
	t.Helper()
	raw, err := json.Marshal(aiquiz.QuestionResponse{Questions: qs})
	require.NoError(t, err)
	return string(raw)
}

func assertPlayable(t *testing.T, qs []aiquiz.Question) {
	t.Helper()
	require.Len(t, qs, aiquiz.QuestionCount)
	for _, q := range qs {
		require.Len(t, q.Options, aiquiz.OptionCount)
		assert.Contains(t, q.Options, q.CorrectAnswer)
	}
}

func TestFallbackQuestionsAreValid(t *testing.T) {
	qs := aiquiz.FallbackQuestions()

	require.NoError(t, aiquiz.Validate(qs))
	assertPlayable(t, qs)
}

func TestFallbackQuestionsAreCopies(t *testing.T) {
	qs := aiquiz.FallbackQuestions()
	qs[0].Options[0] = "changed"
	qs[1].CorrectAnswer = "changed"

	require.NoError(t, aiquiz.Validate(aiquiz.FallbackQuestions()))
}

func TestGenerateQuestionsRemote(t *testing.T) {
	p := &stubProvider{reply: encode(t, remoteQuestions(5))}
	svc := aiquiz.NewService(p)

	quiz := svc.GenerateQuestions(context.Background())

	assert.Equal(t, aiquiz.SourceRemote, quiz.Source)
	assertPlayable(t, quiz.Questions)
	assert.Equal(t, "سؤال 1", quiz.Questions[0].Question)
	assert.Same(t, aiquiz.ResponseSchema, p.last.Schema, "quiz requests must ask for structured output")
}

func TestGenerateQuestionsAcceptsFencedJSON(t *testing.T) {
	body := encode(t, remoteQuestions(5))
	replies := map[string]string{
		"lowercase tag": "```json\n" + body + "\n```",
		"uppercase tag": "```JSON\n" + body + "\n```",
		"mixed case":    "```Json " + body + "```",
		"no tag":        "```\n" + body + "\n```",
		"surrounded":    "\n  ```json\n" + body + "\n```  \n",
	}

	for name, reply := range replies {
		t.Run(name, func(t *testing.T) {
			quiz := aiquiz.NewService(&stubProvider{reply: reply}).GenerateQuestions(context.Background())
			assert.Equal(t, aiquiz.SourceRemote, quiz.Source)
		})
	}
}

func TestGenerateQuestionsFallsBack(t *testing.T) {
	foreignAnswer := remoteQuestions(5)
	foreignAnswer[2].CorrectAnswer = "هـ"

	threeOptions := remoteQuestions(5)
	threeOptions[4].Options = threeOptions[4].Options[:3]

	cases := map[string]*stubProvider{
		"remote error":          {err: errors.New("503 service unavailable")},
		"empty text":            {reply: "   "},
		"not json":              {reply: "عذراً، لا أستطيع"},
		"schema mismatch":       {reply: `{"questions":[{"question":"q","options":"a,b,c,d","correctAnswer":"a","explanation":"e"}]}`},
		"missing questions":     {reply: `{"items":[]}`},
		"too few questions":     {reply: encode(t, remoteQuestions(3))},
		"too many questions":    {reply: encode(t, remoteQuestions(6))},
		"zero questions":        {reply: `{"questions":[]}`},
		"answer not in options": {reply: encode(t, foreignAnswer)},
		"three options":         {reply: encode(t, threeOptions)},
	}

	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			quiz := aiquiz.NewService(p).GenerateQuestions(context.Background())

			assert.Equal(t, aiquiz.SourceFallback, quiz.Source)
			assert.Equal(t, aiquiz.FallbackQuestions(), quiz.Questions)
			assertPlayable(t, quiz.Questions)
		})
	}
}

func TestParseQuestionsErrors(t *testing.T) {
	_, err := aiquiz.ParseQuestions("")
	assert.ErrorIs(t, err, aiquiz.ErrEmptyResponse)

	_, err = aiquiz.ParseQuestions(`{"questions":"nope"}`)
	assert.ErrorIs(t, err, aiquiz.ErrSchemaMismatch)

	qs := remoteQuestions(5)
	qs[0].CorrectAnswer = "ز"
	_, err = aiquiz.ParseQuestions(encode(t, qs))
	assert.ErrorIs(t, err, aiquiz.ErrAnswerNotInOptions)
}

func TestValidate(t *testing.T) {
	qs := remoteQuestions(5)
	qs[1].Options = []string{"أ", "أ", "ب", "ج"}
	qs[1].CorrectAnswer = "ب"
	assert.ErrorIs(t, aiquiz.Validate(qs), aiquiz.ErrDuplicateOption)

	qs = remoteQuestions(5)
	qs[3].Question = "  "
	assert.ErrorIs(t, aiquiz.Validate(qs), aiquiz.ErrEmptyQuestion)

	qs = remoteQuestions(5)
	qs[0].Options[2] = ""
	assert.ErrorIs(t, aiquiz.Validate(qs), aiquiz.ErrEmptyOption)

	assert.ErrorIs(t, aiquiz.Validate(nil), aiquiz.ErrWrongQuestionCount)
}

func TestHandlerGenerateQuestions(t *testing.T) {
	p := &stubProvider{err: errors.New("offline")}
	r := chi.NewRouter()
	r.Mount("/ai-quiz", aiquiz.Routes(aiquiz.NewHandler(aiquiz.NewService(p))))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ai-quiz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var quiz aiquiz.GeneratedQuiz
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&quiz))
	assert.Equal(t, aiquiz.SourceFallback, quiz.Source)
	assertPlayable(t, quiz.Questions)
}
