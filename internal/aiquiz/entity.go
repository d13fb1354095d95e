package aiquiz

const (
	QuestionCount = 5
	OptionCount   = 4
)

type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

type QuestionResponse struct {
	Questions []Question `json:"questions"`
}

// Source tells where a question set came from.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

type GeneratedQuiz struct {
	Source    Source     `json:"source"`
	Questions []Question `json:"questions"`
}

func (q Question) clone() Question {
	q.Options = append([]string(nil), q.Options...)
	return q
}

func cloneAll(qs []Question) []Question {
	out := make([]Question, len(qs))
	for i, q := range qs {
		out[i] = q.clone()
	}
	return out
}
