package service

import (
	"errors"
	"testing"

	"sciencefair-backend/internal/model"
)

// rankedResponse builds a scored response linked to a project with one student.
func rankedResponse(id uint, questionID uint, score float64, student string) model.Response {
	return model.Response{
		ID:         id,
		QuestionID: questionID,
		Score:      floatPtr(score),
		Assessment: &model.Assessment{
			ID: id,
			Project: model.Project{
				ID:       id,
				Title:    "Projeto",
				Students: []model.Student{{Name: student}},
			},
		},
	}
}

func newAwardFixture(scored ...model.Response) AwardService {
	award := model.Award{
		ID:   1,
		Name: "Melhor Projeto Científico",
		Questions: []model.Question{
			{ID: 1, Type: model.QuestionTypeMultipleChoice},
			{ID: 2, Type: model.QuestionTypeText},
		},
	}
	responseRepo := newFakeResponseRepo()
	responseRepo.scored = scored
	return NewAwardService(newFakeAwardRepo(award), responseRepo)
}

func TestGetWinner(t *testing.T) {
	svc := newAwardFixture(
		rankedResponse(1, 1, 7.5, "Joana"),
		rankedResponse(2, 1, 9.8, "Pedro"),
		rankedResponse(3, 1, 8.0, "Luisa"),
	)

	cases := []struct {
		name     string
		position int
		want     string
	}{
		{"first place", 1, "Pedro"},
		{"second place", 2, "Luisa"},
		{"third place", 3, "Joana"},
		{"position beyond ranking", 4, NoCompetitorSentinel},
		{"position zero", 0, NoCompetitorSentinel},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := svc.GetWinner(1, c.position)
			if err != nil {
				t.Fatalf("GetWinner() error: %v", err)
			}
			if got != c.want {
				t.Fatalf("GetWinner(%d) = %q, want %q", c.position, got, c.want)
			}
		})
	}
}

func TestGetWinnerTieBreaksByResponseID(t *testing.T) {
	svc := newAwardFixture(
		rankedResponse(5, 1, 9.0, "Segundo"),
		rankedResponse(2, 1, 9.0, "Primeiro"),
	)

	first, err := svc.GetWinner(1, 1)
	if err != nil {
		t.Fatalf("GetWinner() error: %v", err)
	}
	if first != "Primeiro" {
		t.Fatalf("tie at 9.0 resolved to %q, want the lower response id", first)
	}
}

func TestGetWinnerIgnoresTextQuestions(t *testing.T) {
	// Question 2 is a text question; its responses never enter the ranking.
	svc := newAwardFixture(rankedResponse(1, 2, 10.0, "Invisível"))

	got, err := svc.GetWinner(1, 1)
	if err != nil {
		t.Fatalf("GetWinner() error: %v", err)
	}
	if got != NoCompetitorSentinel {
		t.Fatalf("GetWinner() = %q, want sentinel when only text questions scored", got)
	}
}

func TestGetWinnerMissingStudents(t *testing.T) {
	response := rankedResponse(1, 1, 8.0, "")
	response.Assessment.Project.Students = nil
	svc := newAwardFixture(response)

	got, err := svc.GetWinner(1, 1)
	if err != nil {
		t.Fatalf("GetWinner() error: %v", err)
	}
	if got != NoCompetitorSentinel {
		t.Fatalf("GetWinner() = %q, want sentinel for a project without students", got)
	}
}

func TestGetWinnerUnknownAward(t *testing.T) {
	svc := newAwardFixture()
	if _, err := svc.GetWinner(99, 1); !errors.Is(err, ErrAwardNotFound) {
		t.Fatalf("GetWinner() error = %v, want ErrAwardNotFound", err)
	}
}

// scopedResponse links the response to a project with a category and a single
// student at a given school grade.
func scopedResponse(id uint, score float64, student string, grade model.SchoolGrade, categoryID uint) model.Response {
	return model.Response{
		ID:         id,
		QuestionID: 1,
		Score:      floatPtr(score),
		Assessment: &model.Assessment{
			ID: id,
			Project: model.Project{
				ID:         id,
				Title:      "Projeto",
				CategoryID: categoryID,
				Students:   []model.Student{{Name: student, SchoolGrade: grade}},
			},
		},
	}
}

func TestGetWinnerScopedBySchoolGrade(t *testing.T) {
	grade := model.SchoolGradeMedio
	award := model.Award{
		ID:          1,
		Name:        "Melhor Projeto do Ensino Médio",
		SchoolGrade: &grade,
		Questions:   []model.Question{{ID: 1, Type: model.QuestionTypeMultipleChoice}},
	}
	responseRepo := newFakeResponseRepo()
	responseRepo.scored = []model.Response{
		scopedResponse(1, 9.9, "Fundamental Top", model.SchoolGradeFundamental, 1),
		scopedResponse(2, 8.0, "Medio Winner", model.SchoolGradeMedio, 1),
	}
	svc := NewAwardService(newFakeAwardRepo(award), responseRepo)

	winner, err := svc.GetWinner(1, 1)
	if err != nil {
		t.Fatalf("GetWinner() error: %v", err)
	}
	if winner != "Medio Winner" {
		t.Fatalf("GetWinner() = %q, want the top medio-grade student despite a higher fundamental score", winner)
	}
}

func TestGetWinnerScopedByCategory(t *testing.T) {
	award := model.Award{
		ID:         1,
		Name:       "Melhor Projeto de Robótica",
		Categories: []model.Category{{ID: 2, Name: "Robótica"}},
		Questions:  []model.Question{{ID: 1, Type: model.QuestionTypeMultipleChoice}},
	}
	responseRepo := newFakeResponseRepo()
	responseRepo.scored = []model.Response{
		scopedResponse(1, 9.9, "Química Top", model.SchoolGradeMedio, 1),
		scopedResponse(2, 7.0, "Robótica Winner", model.SchoolGradeMedio, 2),
	}
	svc := NewAwardService(newFakeAwardRepo(award), responseRepo)

	winner, err := svc.GetWinner(1, 1)
	if err != nil {
		t.Fatalf("GetWinner() error: %v", err)
	}
	if winner != "Robótica Winner" {
		t.Fatalf("GetWinner() = %q, want the top in-category student", winner)
	}

	score, err := svc.GetWinnerScore(1, 1)
	if err != nil {
		t.Fatalf("GetWinnerScore() error: %v", err)
	}
	if score != "7.00" {
		t.Fatalf("GetWinnerScore() = %q, want the in-category winner's score", score)
	}
}

func TestGetWinnerScopedAwardDropsUnlinkedResponses(t *testing.T) {
	grade := model.SchoolGradeMedio
	award := model.Award{
		ID:          1,
		Name:        "Melhor Projeto do Ensino Médio",
		SchoolGrade: &grade,
		Questions:   []model.Question{{ID: 1, Type: model.QuestionTypeMultipleChoice}},
	}
	responseRepo := newFakeResponseRepo()
	responseRepo.scored = []model.Response{
		{ID: 1, QuestionID: 1, Score: floatPtr(9.9)}, // no assessment link
	}
	svc := NewAwardService(newFakeAwardRepo(award), responseRepo)

	winner, err := svc.GetWinner(1, 1)
	if err != nil {
		t.Fatalf("GetWinner() error: %v", err)
	}
	if winner != NoCompetitorSentinel {
		t.Fatalf("GetWinner() = %q, want sentinel when scope cannot be checked", winner)
	}
}

func TestGetWinnerScore(t *testing.T) {
	svc := newAwardFixture(
		rankedResponse(1, 1, 9.8, "Pedro"),
		rankedResponse(2, 1, 7.456, "Joana"),
	)

	cases := []struct {
		name     string
		position int
		want     string
	}{
		{"formatted with two decimals", 1, "9.80"},
		{"rounded half up", 2, "7.46"},
		{"empty slot", 3, NoScoreSentinel},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := svc.GetWinnerScore(1, c.position)
			if err != nil {
				t.Fatalf("GetWinnerScore() error: %v", err)
			}
			if got != c.want {
				t.Fatalf("GetWinnerScore(%d) = %q, want %q", c.position, got, c.want)
			}
		})
	}
}
