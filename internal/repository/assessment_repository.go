package repository

import (
	"sciencefair-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssessmentRepository interface {
	Create(assessment *model.Assessment) error
	FindByID(id uint) (*model.Assessment, error)
	FindByIDWithResponses(id uint) (*model.Assessment, error)
	FindByEvaluator(evaluatorID uint) ([]model.Assessment, error)
	FindByProjectID(projectID uint) ([]model.Assessment, error)
	CountActiveForYear(evaluatorID uint, year int) (int, error)
	ExistsForEvaluatorAndProject(evaluatorID, projectID uint) (bool, error)
	// AssignProjects creates one assessment per project id for the evaluator,
	// inside a single transaction that locks the evaluator row. The count of
	// live assessments is re-checked under the lock so concurrent logins of the
	// same evaluator cannot push the total past maxActive, and project ids the
	// evaluator already holds are skipped. Returns how many were created.
	AssignProjects(evaluatorID uint, year int, projectIDs []uint, maxActive int) (int, error)
	Delete(id uint) error
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Create(assessment *model.Assessment) error {
	return r.db.Create(assessment).Error
}

func (r *assessmentRepository) FindByID(id uint) (*model.Assessment, error) {
	var assessment model.Assessment
	if err := r.db.First(&assessment, id).Error; err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) FindByIDWithResponses(id uint) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.db.
		Preload("Project.Students").
		Preload("Responses.Question").
		First(&assessment, id).Error
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) FindByEvaluator(evaluatorID uint) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.db.
		Preload("Project.Students").
		Preload("Responses").
		Where("evaluator_id = ?", evaluatorID).
		Order("id ASC").
		Find(&assessments).Error
	return assessments, err
}

func (r *assessmentRepository) FindByProjectID(projectID uint) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.db.
		Preload("Responses").
		Where("project_id = ?", projectID).
		Order("id ASC").
		Find(&assessments).Error
	return assessments, err
}

func (r *assessmentRepository) CountActiveForYear(evaluatorID uint, year int) (int, error) {
	var count int64
	err := r.db.Model(&model.Assessment{}).
		Joins("JOIN projects ON projects.id = assessments.project_id AND projects.deleted_at IS NULL").
		Where("assessments.evaluator_id = ? AND projects.year = ?", evaluatorID, year).
		Count(&count).Error
	return int(count), err
}

func (r *assessmentRepository) ExistsForEvaluatorAndProject(evaluatorID, projectID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Assessment{}).
		Where("evaluator_id = ? AND project_id = ?", evaluatorID, projectID).
		Count(&count).Error
	return count > 0, err
}

func (r *assessmentRepository) AssignProjects(evaluatorID uint, year int, projectIDs []uint, maxActive int) (int, error) {
	created := 0
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var evaluator model.Evaluator
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&evaluator, evaluatorID).Error; err != nil {
			return err
		}

		var active int64
		if err := tx.Model(&model.Assessment{}).
			Joins("JOIN projects ON projects.id = assessments.project_id AND projects.deleted_at IS NULL").
			Where("assessments.evaluator_id = ? AND projects.year = ?", evaluatorID, year).
			Count(&active).Error; err != nil {
			return err
		}

		for _, projectID := range projectIDs {
			if int(active)+created >= maxActive {
				break
			}
			var dup int64
			if err := tx.Model(&model.Assessment{}).
				Where("evaluator_id = ? AND project_id = ?", evaluatorID, projectID).
				Count(&dup).Error; err != nil {
				return err
			}
			if dup > 0 {
				continue
			}
			assessment := model.Assessment{EvaluatorID: evaluatorID, ProjectID: projectID}
			if err := tx.Create(&assessment).Error; err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

func (r *assessmentRepository) Delete(id uint) error {
	return r.db.Delete(&model.Assessment{}, id).Error
}
