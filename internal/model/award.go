package model

import (
	"time"

	"gorm.io/gorm"
)

// Award is a named prize resolved by ranking scored responses on its
// multiple-choice question set.
type Award struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `json:"name" gorm:"not null"`
	SchoolGrade *SchoolGrade   `json:"school_grade,omitempty"`
	Categories  []Category     `json:"categories,omitempty" gorm:"many2many:award_categories;"`
	Questions   []Question     `json:"questions,omitempty" gorm:"many2many:award_questions;"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
