package model

import (
	"time"

	"gorm.io/gorm"
)

type Student struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `json:"name" gorm:"not null"`
	SchoolGrade SchoolGrade    `json:"school_grade"`
	SchoolType  SchoolType     `json:"school_type"`
	Projects    []Project      `json:"-" gorm:"many2many:project_students;"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
