package model

import (
	"time"

	"gorm.io/gorm"
)

type Project struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `json:"title" gorm:"not null"`
	Year        int            `json:"year" gorm:"not null;index"`
	Type        ProjectType    `json:"type" gorm:"not null"`
	CategoryID  uint           `json:"category_id" gorm:"not null;index"`
	Category    Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Students    []Student      `json:"students,omitempty" gorm:"many2many:project_students;"`
	Assessments []Assessment   `json:"assessments,omitempty" gorm:"foreignKey:ProjectID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// SchoolGrade is taken from the first associated student. Projects have no
// grade of their own, so an empty string means no students are linked yet.
func (p Project) SchoolGrade() SchoolGrade {
	if len(p.Students) == 0 {
		return ""
	}
	return p.Students[0].SchoolGrade
}
