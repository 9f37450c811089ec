package repository

import (
	"sciencefair-backend/internal/model"

	"gorm.io/gorm"
)

type EvaluatorRepository interface {
	Create(evaluator *model.Evaluator) error
	FindByID(id uint) (*model.Evaluator, error)
	FindByPin(pin string) (*model.Evaluator, error)
	// FindAllPins returns the PINs of every evaluator ever created, including
	// soft-deleted ones, so a recycled PIN can never collide with an old card.
	FindAllPins() ([]string, error)
	Delete(id uint) error
}

type evaluatorRepository struct {
	db *gorm.DB
}

func NewEvaluatorRepository(db *gorm.DB) EvaluatorRepository {
	return &evaluatorRepository{db: db}
}

func (r *evaluatorRepository) Create(evaluator *model.Evaluator) error {
	return r.db.Create(evaluator).Error
}

func (r *evaluatorRepository) FindByID(id uint) (*model.Evaluator, error) {
	var evaluator model.Evaluator
	if err := r.db.Preload("Categories").First(&evaluator, id).Error; err != nil {
		return nil, err
	}
	return &evaluator, nil
}

func (r *evaluatorRepository) FindByPin(pin string) (*model.Evaluator, error) {
	var evaluator model.Evaluator
	if err := r.db.Preload("Categories").Where("pin = ?", pin).First(&evaluator).Error; err != nil {
		return nil, err
	}
	return &evaluator, nil
}

func (r *evaluatorRepository) FindAllPins() ([]string, error) {
	var pins []string
	err := r.db.Unscoped().Model(&model.Evaluator{}).Pluck("pin", &pins).Error
	return pins, err
}

func (r *evaluatorRepository) Delete(id uint) error {
	return r.db.Delete(&model.Evaluator{}, id).Error
}
