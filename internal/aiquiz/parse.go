package aiquiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/xeipuuv/gojsonschema"
)

var (
	ErrEmptyResponse  = errors.New("empty model response")
	ErrSchemaMismatch = errors.New("response does not match the quiz schema")
)

var responseSchema = mustCompileSchema(responseJSONSchema)

func mustCompileSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("aiquiz: invalid response schema: %v", err))
	}
	return schema
}

// ParseQuestions turns raw model output into validated questions.
func ParseQuestions(raw string) ([]Question, error) {
	clean := stripCodeFence(raw)
	if clean == "" {
		return nil, ErrEmptyResponse
	}

	result, err := responseSchema.Validate(gojsonschema.NewStringLoader(clean))
	if err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}
	if !result.Valid() {
		details := lo.Map(result.Errors(), func(e gojsonschema.ResultError, _ int) string {
			return e.String()
		})
		return nil, fmt.Errorf("%w: %s", ErrSchemaMismatch, strings.Join(details, "; "))
	}

	var resp QuestionResponse
	if err := json.Unmarshal([]byte(clean), &resp); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	if err := Validate(resp.Questions); err != nil {
		return nil, err
	}
	return resp.Questions, nil
}

// stripCodeFence removes a markdown fence around the payload, whatever the
// case of its language tag.
func stripCodeFence(raw string) string {
	clean := strings.TrimSpace(raw)
	if !strings.HasPrefix(clean, "```") {
		return clean
	}

	clean = strings.TrimLeft(clean, "`")
	if len(clean) >= 4 && strings.EqualFold(clean[:4], "json") {
		clean = clean[4:]
	}
	clean = strings.TrimSpace(clean)
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}
