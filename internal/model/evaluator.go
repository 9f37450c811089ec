package model

import (
	"time"

	"gorm.io/gorm"
)

// Evaluator logs in with a 4-digit PIN. The PIN is unique across all
// evaluators, not scoped by year.
type Evaluator struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `json:"name" gorm:"not null"`
	Pin         string         `json:"pin" gorm:"not null;uniqueIndex"`
	Year        int            `json:"year" gorm:"not null;index"`
	Categories  []Category     `json:"categories,omitempty" gorm:"many2many:evaluator_categories;"`
	Assessments []Assessment   `json:"assessments,omitempty" gorm:"foreignKey:EvaluatorID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
