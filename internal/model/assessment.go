package model

import (
	"time"

	"gorm.io/gorm"
)

// Assessment pairs one evaluator with one project. Its note is never stored,
// it is recomputed from the responses on every read.
type Assessment struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	EvaluatorID uint           `json:"evaluator_id" gorm:"not null;index;uniqueIndex:udx_assessments_evaluator_project,where:deleted_at IS NULL"`
	ProjectID   uint           `json:"project_id" gorm:"not null;index;uniqueIndex:udx_assessments_evaluator_project,where:deleted_at IS NULL"`
	Evaluator   Evaluator      `json:"evaluator,omitempty" gorm:"foreignKey:EvaluatorID"`
	Project     Project        `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	Responses   []Response     `json:"responses,omitempty" gorm:"foreignKey:AssessmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
