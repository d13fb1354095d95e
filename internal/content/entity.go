package content

type Topic struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

type Section struct {
	Category    Category `json:"category"`
	Label       string   `json:"label"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Topics      []Topic  `json:"topics,omitempty"`
}

type FetchRequest struct {
	Topic string `json:"topic"`
}

type AskRequest struct {
	Question string `json:"question"`
}

type FetchResponse struct {
	Category   Category `json:"category"`
	Topic      string   `json:"topic"`
	Content    string   `json:"content"`
	Cached     bool     `json:"cached,omitempty"`
	Superseded bool     `json:"superseded,omitempty"`
}

type PanelState struct {
	Category Category `json:"category"`
	Topic    string   `json:"topic,omitempty"`
	Content  string   `json:"content,omitempty"`
	Loading  bool     `json:"loading"`
}
