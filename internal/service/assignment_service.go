package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"sciencefair-backend/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AssignmentService fills an evaluator's work queue at login time. Each
// evaluator holds at most MaxAssessmentsPerProject active assessments for
// their year; gaps are filled by sampling uniformly from the year's projects
// the evaluator was not assigned yet.
type AssignmentService interface {
	// AssignProjects returns how many assessments were created. It returns
	// ErrNoEligibleProjects when the evaluator is under the cap but the
	// candidate pool is empty, and wraps repository failures in
	// ErrAssignmentFailed so the login path can keep succeeding.
	AssignProjects(evaluatorID uint) (int, error)
}

type assignmentService struct {
	evaluatorRepo  repository.EvaluatorRepository
	projectRepo    repository.ProjectRepository
	assessmentRepo repository.AssessmentRepository

	mu  sync.Mutex
	rng *rand.Rand
}

func NewAssignmentService(
	evaluatorRepo repository.EvaluatorRepository,
	projectRepo repository.ProjectRepository,
	assessmentRepo repository.AssessmentRepository,
	rng *rand.Rand,
) AssignmentService {
	return &assignmentService{
		evaluatorRepo:  evaluatorRepo,
		projectRepo:    projectRepo,
		assessmentRepo: assessmentRepo,
		rng:            rng,
	}
}

func (s *assignmentService) AssignProjects(evaluatorID uint) (int, error) {
	evaluator, err := s.evaluatorRepo.FindByID(evaluatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrEvaluatorNotFound
		}
		return 0, fmt.Errorf("%w: loading evaluator: %v", ErrAssignmentFailed, err)
	}

	active, err := s.assessmentRepo.CountActiveForYear(evaluator.ID, evaluator.Year)
	if err != nil {
		return 0, fmt.Errorf("%w: counting assessments: %v", ErrAssignmentFailed, err)
	}
	if active >= MaxAssessmentsPerProject {
		return 0, nil
	}

	candidates, err := s.projectRepo.FindUnassignedIDs(evaluator.Year, evaluator.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: listing candidate projects: %v", ErrAssignmentFailed, err)
	}
	if len(candidates) == 0 {
		return 0, ErrNoEligibleProjects
	}

	needed := MaxAssessmentsPerProject - active
	picked := s.sample(candidates, needed)

	created, err := s.assessmentRepo.AssignProjects(evaluator.ID, evaluator.Year, picked, MaxAssessmentsPerProject)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrAssignmentFailed, err)
	}

	log.Info().
		Uint("evaluatorID", evaluator.ID).
		Int("year", evaluator.Year).
		Int("created", created).
		Int("poolSize", len(candidates)).
		Msg("Evaluator assignment pass completed")
	return created, nil
}

// sample picks up to n project ids uniformly at random without replacement.
// Randomizing instead of assigning in id order spreads coverage across the
// fair rather than front-loading low project ids.
func (s *assignmentService) sample(candidates []uint, n int) []uint {
	if n > len(candidates) {
		n = len(candidates)
	}
	s.mu.Lock()
	perm := s.rng.Perm(len(candidates))
	s.mu.Unlock()

	picked := make([]uint, 0, n)
	for _, idx := range perm[:n] {
		picked = append(picked, candidates[idx])
	}
	return picked
}
