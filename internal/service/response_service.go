package service

import (
	"errors"
	"fmt"

	"sciencefair-backend/internal/dto"
	"sciencefair-backend/internal/model"
	"sciencefair-backend/internal/repository"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ResponseService interface {
	// StoreResponses replaces the assessment's full answer set. Mobile clients
	// resubmit every answer each time, so old rows are dropped and the new set
	// written in one transaction; the round-trip leaves exactly one response
	// per answered question.
	StoreResponses(assessmentID uint, req dto.StoreResponsesRequest) (*dto.AssessmentDTO, error)
	GetAssessment(assessmentID uint) (*dto.AssessmentDTO, error)
}

type responseService struct {
	assessmentRepo repository.AssessmentRepository
	questionRepo   repository.QuestionRepository
	responseRepo   repository.ResponseRepository
	grading        GradingService
}

func NewResponseService(
	assessmentRepo repository.AssessmentRepository,
	questionRepo repository.QuestionRepository,
	responseRepo repository.ResponseRepository,
	grading GradingService,
) ResponseService {
	return &responseService{
		assessmentRepo: assessmentRepo,
		questionRepo:   questionRepo,
		responseRepo:   responseRepo,
		grading:        grading,
	}
}

func (s *responseService) StoreResponses(assessmentID uint, req dto.StoreResponsesRequest) (*dto.AssessmentDTO, error) {
	if _, err := s.assessmentRepo.FindByID(assessmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssessmentNotFound
		}
		return nil, fmt.Errorf("loading assessment: %w", err)
	}

	questionIDs := make([]uint, 0, len(req.Responses))
	seen := make(map[uint]bool, len(req.Responses))
	for _, item := range req.Responses {
		if seen[item.QuestionID] {
			return nil, fmt.Errorf("%w: duplicate response for question %d", ErrAlreadyExists, item.QuestionID)
		}
		seen[item.QuestionID] = true
		questionIDs = append(questionIDs, item.QuestionID)
	}

	questions, err := s.questionRepo.FindByIDs(questionIDs)
	if err != nil {
		return nil, fmt.Errorf("loading questions: %w", err)
	}
	questionMap := make(map[uint]model.Question, len(questions))
	for _, question := range questions {
		questionMap[question.ID] = question
	}

	responses := make([]model.Response, 0, len(req.Responses))
	for _, item := range req.Responses {
		question, exists := questionMap[item.QuestionID]
		if !exists {
			return nil, fmt.Errorf("%w: id %d", ErrQuestionNotFound, item.QuestionID)
		}
		response := model.Response{
			AssessmentID: assessmentID,
			QuestionID:   question.ID,
		}
		// A response carries a score or free text, never both: the question
		// type decides which side of the payload is kept.
		switch question.Type {
		case model.QuestionTypeMultipleChoice:
			response.Score = item.Score
		default:
			response.Text = item.Response
		}
		responses = append(responses, response)
	}

	if err := s.responseRepo.ReplaceForAssessment(assessmentID, responses); err != nil {
		log.Error().Err(err).Uint("assessmentID", assessmentID).Msg("StoreResponses: replacement transaction failed")
		return nil, fmt.Errorf("storing responses: %w", err)
	}

	return s.GetAssessment(assessmentID)
}

func (s *responseService) GetAssessment(assessmentID uint) (*dto.AssessmentDTO, error) {
	assessment, err := s.assessmentRepo.FindByIDWithResponses(assessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssessmentNotFound
		}
		return nil, fmt.Errorf("loading assessment: %w", err)
	}

	var resp dto.AssessmentDTO
	if err := copier.Copy(&resp, assessment); err != nil {
		return nil, fmt.Errorf("preparing assessment response: %w", err)
	}
	resp.HasResponse = s.grading.HasResponse(assessment.Responses)
	resp.Note = s.grading.Round2(s.grading.AssessmentNote(assessment.Responses))
	return &resp, nil
}
