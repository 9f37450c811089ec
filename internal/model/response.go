package model

import (
	"time"

	"gorm.io/gorm"
)

// Response is one evaluator answer to one question within one assessment.
// Text questions fill Text, multiple-choice questions fill Score.
type Response struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	AssessmentID uint           `json:"assessment_id" gorm:"not null;index;uniqueIndex:udx_responses_assessment_question,where:deleted_at IS NULL"`
	QuestionID   uint           `json:"question_id" gorm:"not null;index;uniqueIndex:udx_responses_assessment_question,where:deleted_at IS NULL"`
	Question     Question       `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	Assessment   *Assessment    `json:"-" gorm:"foreignKey:AssessmentID"`
	Text         *string        `json:"response,omitempty" gorm:"column:response;type:text"`
	Score        *float64       `json:"score,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
