package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"sciencefair-backend/internal/auth"
	"sciencefair-backend/internal/dto"
	"sciencefair-backend/internal/model"
	"sciencefair-backend/internal/repository"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type EvaluatorService interface {
	CreateEvaluator(req dto.CreateEvaluatorRequest) (*dto.EvaluatorDTO, error)
	// Login authenticates by PIN, runs the assignment pass and issues a session
	// token. Assignment failures never block the login: they are reported in
	// the payload and retried on the next login.
	Login(pin string) (*dto.LoginResponse, error)
	GetAssessments(evaluatorID uint) ([]dto.AssessmentSummaryDTO, error)
}

type evaluatorService struct {
	evaluatorRepo  repository.EvaluatorRepository
	categoryRepo   repository.CategoryRepository
	assessmentRepo repository.AssessmentRepository
	assignment     AssignmentService
	grading        GradingService
	jwtSecret      []byte

	mu  sync.Mutex
	rng *rand.Rand
}

func NewEvaluatorService(
	evaluatorRepo repository.EvaluatorRepository,
	categoryRepo repository.CategoryRepository,
	assessmentRepo repository.AssessmentRepository,
	assignment AssignmentService,
	grading GradingService,
	jwtSecret []byte,
	rng *rand.Rand,
) EvaluatorService {
	return &evaluatorService{
		evaluatorRepo:  evaluatorRepo,
		categoryRepo:   categoryRepo,
		assessmentRepo: assessmentRepo,
		assignment:     assignment,
		grading:        grading,
		jwtSecret:      jwtSecret,
		rng:            rng,
	}
}

func (s *evaluatorService) CreateEvaluator(req dto.CreateEvaluatorRequest) (*dto.EvaluatorDTO, error) {
	pins, err := s.evaluatorRepo.FindAllPins()
	if err != nil {
		return nil, fmt.Errorf("loading existing pins: %w", err)
	}
	existing := make(map[string]struct{}, len(pins))
	for _, pin := range pins {
		existing[pin] = struct{}{}
	}

	s.mu.Lock()
	pin, err := GeneratePin(existing, s.rng)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	evaluator := model.Evaluator{
		Name: req.Name,
		Pin:  pin,
		Year: req.Year,
	}
	if len(req.CategoryIDs) > 0 {
		categories, err := s.categoryRepo.FindByIDs(req.CategoryIDs)
		if err != nil {
			return nil, fmt.Errorf("loading categories: %w", err)
		}
		if len(categories) != len(req.CategoryIDs) {
			return nil, ErrCategoryNotFound
		}
		evaluator.Categories = categories
	}

	if err := s.evaluatorRepo.Create(&evaluator); err != nil {
		log.Error().Err(err).Msg("CreateEvaluator: insert failed")
		return nil, fmt.Errorf("creating evaluator: %w", err)
	}

	var resp dto.EvaluatorDTO
	if err := copier.Copy(&resp, &evaluator); err != nil {
		return nil, fmt.Errorf("preparing evaluator response: %w", err)
	}
	return &resp, nil
}

func (s *evaluatorService) Login(pin string) (*dto.LoginResponse, error) {
	evaluator, err := s.evaluatorRepo.FindByPin(pin)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidPin
		}
		return nil, fmt.Errorf("loading evaluator by pin: %w", err)
	}

	resp := dto.LoginResponse{}
	created, err := s.assignment.AssignProjects(evaluator.ID)
	switch {
	case err == nil:
		resp.AssignmentsCreated = created
	case errors.Is(err, ErrNoEligibleProjects):
		// Pool exhausted: a normal state late in the fair, nothing to report.
	default:
		log.Error().Err(err).Uint("evaluatorID", evaluator.ID).Msg("Login: assignment pass failed, login continues")
		resp.AssignmentError = err.Error()
	}

	token, err := auth.GenerateToken(evaluator.ID, evaluator.Year, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}
	resp.Token = token
	if err := copier.Copy(&resp.Evaluator, evaluator); err != nil {
		return nil, fmt.Errorf("preparing login response: %w", err)
	}
	return &resp, nil
}

func (s *evaluatorService) GetAssessments(evaluatorID uint) ([]dto.AssessmentSummaryDTO, error) {
	if _, err := s.evaluatorRepo.FindByID(evaluatorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEvaluatorNotFound
		}
		return nil, fmt.Errorf("loading evaluator: %w", err)
	}

	assessments, err := s.assessmentRepo.FindByEvaluator(evaluatorID)
	if err != nil {
		return nil, fmt.Errorf("loading assessments: %w", err)
	}

	summaries := make([]dto.AssessmentSummaryDTO, 0, len(assessments))
	for _, assessment := range assessments {
		summaries = append(summaries, dto.AssessmentSummaryDTO{
			ID:           assessment.ID,
			ProjectID:    assessment.ProjectID,
			ProjectTitle: assessment.Project.Title,
			HasResponse:  s.grading.HasResponse(assessment.Responses),
			Note:         s.grading.Round2(s.grading.AssessmentNote(assessment.Responses)),
		})
	}
	return summaries, nil
}
