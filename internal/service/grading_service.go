package service

import (
	"math"

	"sciencefair-backend/internal/model"
)

// MaxAssessmentsPerProject is the evaluation target per project and the cap of
// active assessments per evaluator.
const MaxAssessmentsPerProject = 3

// GradingService computes every derived grade in the system. Notes are never
// persisted, they are recomputed from responses on each read, so all methods
// are pure functions of their inputs.
//
// Null-score responses (text answers, or skipped questions) are excluded from
// numerator and denominator at every level. Empty inputs yield 0.0, never an
// error: "nothing to grade yet" is a valid state.
type GradingService interface {
	AssessmentNote(responses []model.Response) float64
	HasResponse(responses []model.Response) bool
	ProjectFinalNote(assessments []model.Assessment) float64
	ProjectQuestionNote(assessments []model.Assessment, questionID uint) float64
	PendingAssessments(assessments []model.Assessment) int
	Round2(value float64) float64
}

type gradingService struct{}

func NewGradingService() GradingService {
	return &gradingService{}
}

// AssessmentNote is the mean score over the assessment's scored responses.
func (s *gradingService) AssessmentNote(responses []model.Response) float64 {
	sum := 0.0
	count := 0
	for _, response := range responses {
		if response.Score == nil {
			continue
		}
		sum += *response.Score
		count++
	}
	if count == 0 {
		return 0.0
	}
	return sum / float64(count)
}

func (s *gradingService) HasResponse(responses []model.Response) bool {
	return len(responses) > 0
}

// ProjectFinalNote averages the notes of the assessments that were actually
// answered. An assessment created but never answered contributes nothing: it
// neither drags the average down nor counts toward completion.
func (s *gradingService) ProjectFinalNote(assessments []model.Assessment) float64 {
	sum := 0.0
	count := 0
	for _, assessment := range assessments {
		if !s.HasResponse(assessment.Responses) {
			continue
		}
		sum += s.AssessmentNote(assessment.Responses)
		count++
	}
	if count == 0 {
		return 0.0
	}
	return sum / float64(count)
}

// ProjectQuestionNote averages the scores for one question across all of the
// project's assessments.
func (s *gradingService) ProjectQuestionNote(assessments []model.Assessment, questionID uint) float64 {
	sum := 0.0
	count := 0
	for _, assessment := range assessments {
		for _, response := range assessment.Responses {
			if response.QuestionID != questionID || response.Score == nil {
				continue
			}
			sum += *response.Score
			count++
		}
	}
	if count == 0 {
		return 0.0
	}
	return sum / float64(count)
}

// PendingAssessments answers "how many more evaluations does this project
// need" against the target of MaxAssessmentsPerProject answered assessments.
func (s *gradingService) PendingAssessments(assessments []model.Assessment) int {
	answered := 0
	for _, assessment := range assessments {
		if s.HasResponse(assessment.Responses) {
			answered++
		}
	}
	if answered >= MaxAssessmentsPerProject {
		return 0
	}
	return MaxAssessmentsPerProject - answered
}

// Round2 rounds for display. Stored values stay unrounded.
func (s *gradingService) Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
