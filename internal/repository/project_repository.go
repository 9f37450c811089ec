package repository

import (
	"sciencefair-backend/internal/model"

	"gorm.io/gorm"
)

// ProjectEvaluationCount carries, for one project, how many of its live
// assessments have at least one response.
type ProjectEvaluationCount struct {
	ProjectID      uint
	EvaluatedCount int
}

type ProjectRepository interface {
	Create(project *model.Project) error
	FindByID(id uint) (*model.Project, error)
	FindByIDWithDetails(id uint) (*model.Project, error)
	FindAllByYear(year int) ([]model.Project, error)
	CountByYear(year int) (int, error)
	// FindUnassignedIDs lists ids of live projects of the given year that the
	// evaluator has no live assessment for yet.
	FindUnassignedIDs(year int, evaluatorID uint) ([]uint, error)
	EvaluationCounts(year int) ([]ProjectEvaluationCount, error)
	Delete(id uint) error
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(project *model.Project) error {
	return r.db.Create(project).Error
}

func (r *projectRepository) FindByID(id uint) (*model.Project, error) {
	var project model.Project
	if err := r.db.Preload("Students").First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) FindByIDWithDetails(id uint) (*model.Project, error) {
	var project model.Project
	err := r.db.
		Preload("Category").
		Preload("Students").
		Preload("Assessments.Responses").
		First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) FindAllByYear(year int) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.
		Preload("Category").
		Preload("Students").
		Preload("Assessments.Responses").
		Where("year = ?", year).
		Order("id ASC").
		Find(&projects).Error
	return projects, err
}

func (r *projectRepository) CountByYear(year int) (int, error) {
	var count int64
	err := r.db.Model(&model.Project{}).Where("year = ?", year).Count(&count).Error
	return int(count), err
}

func (r *projectRepository) FindUnassignedIDs(year int, evaluatorID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&model.Project{}).
		Where("year = ?", year).
		Where("id NOT IN (SELECT project_id FROM assessments WHERE evaluator_id = ? AND deleted_at IS NULL)", evaluatorID).
		Order("id ASC").
		Pluck("id", &ids).Error
	return ids, err
}

func (r *projectRepository) EvaluationCounts(year int) ([]ProjectEvaluationCount, error) {
	var counts []ProjectEvaluationCount
	err := r.db.Raw(`
		SELECT p.id AS project_id, COUNT(a.id) AS evaluated_count
		FROM projects p
		LEFT JOIN assessments a ON a.project_id = p.id
			AND a.deleted_at IS NULL
			AND EXISTS (
				SELECT 1 FROM responses r
				WHERE r.assessment_id = a.id AND r.deleted_at IS NULL
			)
		WHERE p.deleted_at IS NULL AND p.year = ?
		GROUP BY p.id`, year).Scan(&counts).Error
	return counts, err
}

func (r *projectRepository) Delete(id uint) error {
	return r.db.Delete(&model.Project{}, id).Error
}
