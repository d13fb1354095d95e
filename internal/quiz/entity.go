package quiz

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/saulo-duarte/hikma-lambda/internal/aiquiz"
	util "github.com/saulo-duarte/hikma-lambda/internal/utils"
)

// CompletionRecord is the snapshot printed on the learner's certificate.
type CompletionRecord struct {
	ID             uuid.UUID      `json:"id"`
	SessionID      uuid.UUID      `json:"session_id"`
	Name           string         `json:"name"`
	Date           util.LocalDate `json:"date" swaggertype:"string" format:"date"`
	DisplayDate    string         `json:"display_date"`
	Score          int            `json:"score"`
	TotalQuestions int            `json:"total_questions"`
	Source         aiquiz.Source  `json:"source"`
	CompletedAt    time.Time      `json:"completed_at"`
}

// Certificate is the persisted form of a CompletionRecord.
type Certificate struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"session_id"`
	LearnerName    string         `gorm:"type:text;not null" json:"-"`
	NameEncrypted  bool           `gorm:"not null;default:false" json:"-"`
	CompletionDate util.LocalDate `gorm:"type:date;not null" json:"completion_date"`
	Score          int            `gorm:"not null" json:"score"`
	TotalQuestions int            `gorm:"not null" json:"total_questions"`
	Source         string         `gorm:"type:text;not null" json:"source"`
	Questions      datatypes.JSON `gorm:"type:jsonb;not null" json:"questions"`
	Answers        datatypes.JSON `gorm:"type:jsonb;not null" json:"answers"`
	CompletedAt    time.Time      `gorm:"not null;index" json:"completed_at"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

type AnswerResult struct {
	QuestionIndex int    `json:"question_index"`
	Selected      string `json:"selected"`
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
	Duplicate     bool   `json:"duplicate"`
	Score         int    `json:"score"`
	IsLast        bool   `json:"is_last"`
}
