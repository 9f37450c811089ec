package service

import (
	"errors"
	"fmt"
	"sort"

	"sciencefair-backend/internal/model"
	"sciencefair-backend/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Sentinels returned instead of errors: an empty ranking is a valid outcome,
// not a failure. NoCompetitorSentinel is the exact string the certificate
// templates print, do not translate it.
const (
	NoCompetitorSentinel = "Não houve competidor"
	NoScoreSentinel      = "-"
)

type AwardService interface {
	// GetWinner resolves the student name holding the 1-indexed position in the
	// award's ranking, or NoCompetitorSentinel when the ranking is too small or
	// a link in the response→assessment→project→student chain is missing. The
	// award's school grade and category set, when present, restrict the
	// ranking pool to projects inside that scope.
	GetWinner(awardID uint, position int) (string, error)
	// GetWinnerScore is GetWinner but returns the score formatted with two
	// decimals, with NoScoreSentinel on the analogous failure paths.
	GetWinnerScore(awardID uint, position int) (string, error)
}

type awardService struct {
	awardRepo    repository.AwardRepository
	responseRepo repository.ResponseRepository
}

func NewAwardService(awardRepo repository.AwardRepository, responseRepo repository.ResponseRepository) AwardService {
	return &awardService{awardRepo: awardRepo, responseRepo: responseRepo}
}

func (s *awardService) GetWinner(awardID uint, position int) (string, error) {
	response, err := s.rankedResponseAt(awardID, position)
	if err != nil {
		return "", err
	}
	if response == nil {
		return NoCompetitorSentinel, nil
	}
	if response.Assessment == nil || response.Assessment.Project.ID == 0 {
		log.Warn().Uint("responseID", response.ID).Msg("GetWinner: ranked response has no project link")
		return NoCompetitorSentinel, nil
	}
	students := response.Assessment.Project.Students
	if len(students) == 0 {
		return NoCompetitorSentinel, nil
	}
	return students[0].Name, nil
}

func (s *awardService) GetWinnerScore(awardID uint, position int) (string, error) {
	response, err := s.rankedResponseAt(awardID, position)
	if err != nil {
		return "", err
	}
	if response == nil || response.Score == nil {
		return NoScoreSentinel, nil
	}
	return fmt.Sprintf("%.2f", *response.Score), nil
}

// rankedResponseAt returns the response at the 1-indexed position of the
// award's ranking, or nil when the ranking is shorter than position. Ranking:
// scored responses on the award's multiple-choice questions, score descending,
// ties broken by response id ascending.
func (s *awardService) rankedResponseAt(awardID uint, position int) (*model.Response, error) {
	award, err := s.awardRepo.FindByIDWithQuestions(awardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAwardNotFound
		}
		return nil, fmt.Errorf("loading award %d: %w", awardID, err)
	}

	var questionIDs []uint
	for _, question := range award.Questions {
		if question.Type == model.QuestionTypeMultipleChoice {
			questionIDs = append(questionIDs, question.ID)
		}
	}
	if len(questionIDs) == 0 {
		return nil, nil
	}

	responses, err := s.responseRepo.FindScoredByQuestionIDs(questionIDs)
	if err != nil {
		return nil, fmt.Errorf("loading scored responses for award %d: %w", awardID, err)
	}

	eligible := make([]model.Response, 0, len(responses))
	for _, response := range responses {
		if matchesScope(award, response) {
			eligible = append(eligible, response)
		}
	}

	// The repository already orders, but re-sorting keeps the tiebreak
	// deterministic regardless of the backing store.
	sort.SliceStable(eligible, func(i, j int) bool {
		if *eligible[i].Score != *eligible[j].Score {
			return *eligible[i].Score > *eligible[j].Score
		}
		return eligible[i].ID < eligible[j].ID
	})

	if position < 1 || position > len(eligible) {
		return nil, nil
	}
	return &eligible[position-1], nil
}

// matchesScope reports whether the response's project falls inside the
// award's school-grade and category scope. An award with neither restriction
// accepts every response; a scoped award drops responses whose
// assessment→project link is missing, since the scope cannot be checked.
func matchesScope(award *model.Award, response model.Response) bool {
	if award.SchoolGrade == nil && len(award.Categories) == 0 {
		return true
	}
	if response.Assessment == nil || response.Assessment.Project.ID == 0 {
		return false
	}
	project := response.Assessment.Project
	if award.SchoolGrade != nil && project.SchoolGrade() != *award.SchoolGrade {
		return false
	}
	if len(award.Categories) > 0 {
		found := false
		for _, category := range award.Categories {
			if category.ID == project.CategoryID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
