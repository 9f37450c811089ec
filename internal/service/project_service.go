package service

import (
	"errors"
	"fmt"
	"sort"

	"sciencefair-backend/internal/dto"
	"sciencefair-backend/internal/model"
	"sciencefair-backend/internal/repository"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type ProjectService interface {
	ListProjects(year int) ([]dto.ProjectSummaryDTO, error)
	GetProject(id uint) (*dto.ProjectDetailDTO, error)
}

type projectService struct {
	projectRepo repository.ProjectRepository
	grading     GradingService
}

func NewProjectService(projectRepo repository.ProjectRepository, grading GradingService) ProjectService {
	return &projectService{projectRepo: projectRepo, grading: grading}
}

func (s *projectService) ListProjects(year int) ([]dto.ProjectSummaryDTO, error) {
	projects, err := s.projectRepo.FindAllByYear(year)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	summaries := make([]dto.ProjectSummaryDTO, 0, len(projects))
	for _, project := range projects {
		summaries = append(summaries, dto.ProjectSummaryDTO{
			ID:          project.ID,
			Title:       project.Title,
			Year:        project.Year,
			Type:        string(project.Type),
			Category:    project.Category.Name,
			SchoolGrade: string(project.SchoolGrade()),
			FinalNote:   s.grading.Round2(s.grading.ProjectFinalNote(project.Assessments)),
		})
	}
	return summaries, nil
}

func (s *projectService) GetProject(id uint) (*dto.ProjectDetailDTO, error) {
	project, err := s.projectRepo.FindByIDWithDetails(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("loading project: %w", err)
	}

	var resp dto.ProjectDetailDTO
	if err := copier.Copy(&resp, project); err != nil {
		return nil, fmt.Errorf("preparing project response: %w", err)
	}
	resp.TypeLabel = project.Type.Label()
	resp.SchoolGrade = string(project.SchoolGrade())
	resp.FinalNote = s.grading.Round2(s.grading.ProjectFinalNote(project.Assessments))
	resp.PendingCount = s.grading.PendingAssessments(project.Assessments)

	for i, assessment := range project.Assessments {
		resp.Assessments[i].HasResponse = s.grading.HasResponse(assessment.Responses)
		resp.Assessments[i].Note = s.grading.Round2(s.grading.AssessmentNote(assessment.Responses))
	}

	resp.QuestionNotes = s.questionNotes(project.Assessments)
	return &resp, nil
}

// questionNotes rolls every answered question up to a per-question project
// note, ordered by question id for a stable payload.
func (s *projectService) questionNotes(assessments []model.Assessment) []dto.QuestionNoteDTO {
	questionIDs := make(map[uint]bool)
	for _, assessment := range assessments {
		for _, response := range assessment.Responses {
			if response.Score != nil {
				questionIDs[response.QuestionID] = true
			}
		}
	}

	notes := make([]dto.QuestionNoteDTO, 0, len(questionIDs))
	for questionID := range questionIDs {
		notes = append(notes, dto.QuestionNoteDTO{
			QuestionID: questionID,
			Note:       s.grading.Round2(s.grading.ProjectQuestionNote(assessments, questionID)),
		})
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].QuestionID < notes[j].QuestionID })
	return notes
}
