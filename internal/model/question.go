package model

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID                 uint           `gorm:"primarykey" json:"id"`
	ScientificText     string         `json:"scientific_text" gorm:"type:text"`
	TechnologicalText  string         `json:"technological_text" gorm:"type:text"`
	Type               QuestionType   `json:"type" gorm:"not null"`
	NumberAlternatives *int           `json:"number_alternatives,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

// DisplayText joins the two language-track texts, skipping whichever is empty.
func (q Question) DisplayText() string {
	switch {
	case q.ScientificText != "" && q.TechnologicalText != "":
		return q.ScientificText + " / " + q.TechnologicalText
	case q.ScientificText != "":
		return q.ScientificText
	default:
		return q.TechnologicalText
	}
}
