package service

import (
	"fmt"
	"math"

	"sciencefair-backend/internal/dto"
	"sciencefair-backend/internal/repository"
)

// DashboardService computes the evaluation-progress cards shown on the fair's
// dashboard. Everything is recomputed from the live dataset on each call.
type DashboardService interface {
	Cards(year int) (*dto.DashboardCardsDTO, error)
}

type dashboardService struct {
	projectRepo repository.ProjectRepository
}

func NewDashboardService(projectRepo repository.ProjectRepository) DashboardService {
	return &dashboardService{projectRepo: projectRepo}
}

func (s *dashboardService) Cards(year int) (*dto.DashboardCardsDTO, error) {
	total, err := s.projectRepo.CountByYear(year)
	if err != nil {
		return nil, fmt.Errorf("counting projects: %w", err)
	}
	counts, err := s.projectRepo.EvaluationCounts(year)
	if err != nil {
		return nil, fmt.Errorf("counting evaluated assessments: %w", err)
	}

	cards := dto.DashboardCardsDTO{TotalProjetos: total}
	for _, count := range counts {
		switch count.EvaluatedCount {
		case 0:
			cards.ProjetosSemAvaliacao++
		case 1:
			cards.Faltam2Avaliacoes++
		case 2:
			cards.Faltam1Avaliacao++
		}
	}
	// faltam_3 is the zero-evaluation bucket under another name.
	cards.Faltam3Avaliacoes = cards.ProjetosSemAvaliacao
	cards.ProjetosAvaliados = total - cards.ProjetosSemAvaliacao

	if total > 0 {
		incomplete := cards.Faltam1Avaliacao + cards.Faltam2Avaliacoes + cards.Faltam3Avaliacoes
		cards.ProgressoGeral = int(math.Round(100 * float64(total-incomplete) / float64(total)))
	}
	return &cards, nil
}
