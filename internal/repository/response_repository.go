package repository

import (
	"sciencefair-backend/internal/model"

	"gorm.io/gorm"
)

type ResponseRepository interface {
	FindByAssessmentID(assessmentID uint) ([]model.Response, error)
	// ReplaceForAssessment swaps the full response set of an assessment in one
	// transaction. Clients resubmit all answers at once, there is no per-response upsert.
	ReplaceForAssessment(assessmentID uint, responses []model.Response) error
	// FindScoredByQuestionIDs returns responses with a non-null score for the given
	// questions, highest score first, ties broken by response id ascending. The
	// assessment, its project and the project's students are preloaded so callers
	// can walk the chain down to a student name.
	FindScoredByQuestionIDs(questionIDs []uint) ([]model.Response, error)
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) FindByAssessmentID(assessmentID uint) ([]model.Response, error) {
	var responses []model.Response
	err := r.db.Preload("Question").
		Where("assessment_id = ?", assessmentID).
		Order("question_id ASC").
		Find(&responses).Error
	return responses, err
}

func (r *responseRepository) ReplaceForAssessment(assessmentID uint, responses []model.Response) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assessment_id = ?", assessmentID).Delete(&model.Response{}).Error; err != nil {
			return err
		}
		if len(responses) == 0 {
			return nil
		}
		for i := range responses {
			responses[i].AssessmentID = assessmentID
		}
		return tx.Create(&responses).Error
	})
}

func (r *responseRepository) FindScoredByQuestionIDs(questionIDs []uint) ([]model.Response, error) {
	if len(questionIDs) == 0 {
		return nil, nil
	}
	var responses []model.Response
	err := r.db.Preload("Assessment.Project.Students").
		Where("question_id IN ? AND score IS NOT NULL", questionIDs).
		Order("score DESC, id ASC").
		Find(&responses).Error
	return responses, err
}
