package service

import (
	"fmt"

	"sciencefair-backend/internal/dto"
	"sciencefair-backend/internal/model"
	"sciencefair-backend/internal/repository"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// AdminService covers the fair-organizer creation endpoints.
type AdminService interface {
	CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionDTO, error)
	CreateCategory(req dto.CreateCategoryRequest) (*dto.CategoryDTO, error)
	CreateProject(req dto.CreateProjectRequest) (*dto.ProjectSummaryDTO, error)
	CreateAward(req dto.CreateAwardRequest) (*dto.AwardDTO, error)
}

type adminService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
	projectRepo  repository.ProjectRepository
	awardRepo    repository.AwardRepository
}

func NewAdminService(
	questionRepo repository.QuestionRepository,
	categoryRepo repository.CategoryRepository,
	projectRepo repository.ProjectRepository,
	awardRepo repository.AwardRepository,
) AdminService {
	return &adminService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		projectRepo:  projectRepo,
		awardRepo:    awardRepo,
	}
}

func (s *adminService) CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionDTO, error) {
	if req.ScientificText == "" && req.TechnologicalText == "" {
		return nil, fmt.Errorf("a question needs at least one language-track text")
	}
	question := model.Question{
		ScientificText:     req.ScientificText,
		TechnologicalText:  req.TechnologicalText,
		Type:               model.QuestionType(req.Type),
		NumberAlternatives: req.NumberAlternatives,
	}
	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Msg("CreateQuestion: insert failed")
		return nil, fmt.Errorf("creating question: %w", err)
	}
	return questionToDTO(question), nil
}

func (s *adminService) CreateCategory(req dto.CreateCategoryRequest) (*dto.CategoryDTO, error) {
	category := model.Category{Name: req.Name}
	if err := s.categoryRepo.Create(&category); err != nil {
		log.Error().Err(err).Msg("CreateCategory: insert failed")
		return nil, fmt.Errorf("creating category: %w", err)
	}
	return &dto.CategoryDTO{ID: category.ID, Name: category.Name}, nil
}

func (s *adminService) CreateProject(req dto.CreateProjectRequest) (*dto.ProjectSummaryDTO, error) {
	category, err := s.categoryRepo.FindByID(req.CategoryID)
	if err != nil {
		return nil, ErrCategoryNotFound
	}

	project := model.Project{
		Title:      req.Title,
		Year:       req.Year,
		Type:       model.ProjectType(req.Type),
		CategoryID: category.ID,
	}
	for _, studentReq := range req.Students {
		project.Students = append(project.Students, model.Student{
			Name:        studentReq.Name,
			SchoolGrade: model.SchoolGrade(studentReq.SchoolGrade),
			SchoolType:  model.SchoolType(studentReq.SchoolType),
		})
	}

	if err := s.projectRepo.Create(&project); err != nil {
		log.Error().Err(err).Msg("CreateProject: insert failed")
		return nil, fmt.Errorf("creating project: %w", err)
	}

	return &dto.ProjectSummaryDTO{
		ID:          project.ID,
		Title:       project.Title,
		Year:        project.Year,
		Type:        string(project.Type),
		Category:    category.Name,
		SchoolGrade: string(project.SchoolGrade()),
	}, nil
}

func (s *adminService) CreateAward(req dto.CreateAwardRequest) (*dto.AwardDTO, error) {
	award := model.Award{Name: req.Name}
	if req.SchoolGrade != nil {
		grade := model.SchoolGrade(*req.SchoolGrade)
		award.SchoolGrade = &grade
	}
	if len(req.QuestionIDs) > 0 {
		questions, err := s.questionRepo.FindByIDs(req.QuestionIDs)
		if err != nil {
			return nil, fmt.Errorf("loading award questions: %w", err)
		}
		if len(questions) != len(req.QuestionIDs) {
			return nil, ErrQuestionNotFound
		}
		award.Questions = questions
	}
	if len(req.CategoryIDs) > 0 {
		categories, err := s.categoryRepo.FindByIDs(req.CategoryIDs)
		if err != nil {
			return nil, fmt.Errorf("loading award categories: %w", err)
		}
		if len(categories) != len(req.CategoryIDs) {
			return nil, ErrCategoryNotFound
		}
		award.Categories = categories
	}

	if err := s.awardRepo.Create(&award); err != nil {
		log.Error().Err(err).Msg("CreateAward: insert failed")
		return nil, fmt.Errorf("creating award: %w", err)
	}

	var resp dto.AwardDTO
	if err := copier.Copy(&resp, &award); err != nil {
		return nil, fmt.Errorf("preparing award response: %w", err)
	}
	if req.SchoolGrade != nil {
		resp.SchoolGrade = req.SchoolGrade
	}
	for i, question := range award.Questions {
		resp.Questions[i] = *questionToDTO(question)
	}
	return &resp, nil
}

func questionToDTO(question model.Question) *dto.QuestionDTO {
	return &dto.QuestionDTO{
		ID:                 question.ID,
		ScientificText:     question.ScientificText,
		TechnologicalText:  question.TechnologicalText,
		DisplayText:        question.DisplayText(),
		Type:               string(question.Type),
		TypeLabel:          question.Type.Label(),
		NumberAlternatives: question.NumberAlternatives,
		CreatedAt:          question.CreatedAt,
	}
}
