package repository

import (
	"sciencefair-backend/internal/model"

	"gorm.io/gorm"
)

type AwardRepository interface {
	Create(award *model.Award) error
	FindByID(id uint) (*model.Award, error)
	FindByIDWithQuestions(id uint) (*model.Award, error)
	FindAll() ([]model.Award, error)
	Delete(id uint) error
}

type awardRepository struct {
	db *gorm.DB
}

func NewAwardRepository(db *gorm.DB) AwardRepository {
	return &awardRepository{db: db}
}

func (r *awardRepository) Create(award *model.Award) error {
	return r.db.Create(award).Error
}

func (r *awardRepository) FindByID(id uint) (*model.Award, error) {
	var award model.Award
	if err := r.db.First(&award, id).Error; err != nil {
		return nil, err
	}
	return &award, nil
}

func (r *awardRepository) FindByIDWithQuestions(id uint) (*model.Award, error) {
	var award model.Award
	err := r.db.
		Preload("Questions").
		Preload("Categories").
		First(&award, id).Error
	if err != nil {
		return nil, err
	}
	return &award, nil
}

func (r *awardRepository) FindAll() ([]model.Award, error) {
	var awards []model.Award
	err := r.db.Preload("Questions").Order("id ASC").Find(&awards).Error
	return awards, err
}

func (r *awardRepository) Delete(id uint) error {
	return r.db.Delete(&model.Award{}, id).Error
}
