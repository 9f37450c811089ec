package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"sciencefair-backend/internal/auth"
	"sciencefair-backend/internal/dto"
	"sciencefair-backend/internal/model"
)

var testSecret = []byte("test-secret")

func newEvaluatorFixture(assignment AssignmentService) (*fakeEvaluatorRepo, *fakeAssessmentRepo, EvaluatorService) {
	evaluatorRepo := newFakeEvaluatorRepo()
	assessmentRepo := newFakeAssessmentRepo(newFakeResponseRepo())
	svc := NewEvaluatorService(
		evaluatorRepo,
		newFakeCategoryRepo(model.Category{ID: 1, Name: "Robótica"}),
		assessmentRepo,
		assignment,
		NewGradingService(),
		testSecret,
		rand.New(rand.NewSource(11)),
	)
	return evaluatorRepo, assessmentRepo, svc
}

func TestCreateEvaluatorGeneratesUniquePin(t *testing.T) {
	evaluatorRepo, _, svc := newEvaluatorFixture(&fakeAssignmentService{})

	first, err := svc.CreateEvaluator(dto.CreateEvaluatorRequest{Name: "Ana", Year: 2026, CategoryIDs: []uint{1}})
	if err != nil {
		t.Fatalf("CreateEvaluator() error: %v", err)
	}
	if len(first.Pin) != 4 {
		t.Fatalf("Pin = %q, want 4 digits", first.Pin)
	}

	second, err := svc.CreateEvaluator(dto.CreateEvaluatorRequest{Name: "Bruno", Year: 2026})
	if err != nil {
		t.Fatalf("CreateEvaluator() error: %v", err)
	}
	if first.Pin == second.Pin {
		t.Fatalf("two evaluators got the same pin %q", first.Pin)
	}
	if len(evaluatorRepo.evaluators) != 2 {
		t.Fatalf("stored evaluators = %d, want 2", len(evaluatorRepo.evaluators))
	}
}

func TestCreateEvaluatorUnknownCategory(t *testing.T) {
	_, _, svc := newEvaluatorFixture(&fakeAssignmentService{})
	_, err := svc.CreateEvaluator(dto.CreateEvaluatorRequest{Name: "Ana", Year: 2026, CategoryIDs: []uint{99}})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("CreateEvaluator() error = %v, want ErrCategoryNotFound", err)
	}
}

func TestLoginIssuesToken(t *testing.T) {
	evaluatorRepo, _, svc := newEvaluatorFixture(&fakeAssignmentService{created: 3})
	evaluatorRepo.Create(&model.Evaluator{Name: "Ana", Pin: "4321", Year: 2026})

	resp, err := svc.Login("4321")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if resp.AssignmentsCreated != 3 {
		t.Errorf("AssignmentsCreated = %d, want 3", resp.AssignmentsCreated)
	}
	if resp.AssignmentError != "" {
		t.Errorf("AssignmentError = %q, want empty", resp.AssignmentError)
	}
	if resp.Evaluator.Name != "Ana" {
		t.Errorf("Evaluator.Name = %q, want Ana", resp.Evaluator.Name)
	}

	claims, err := auth.ValidateToken(resp.Token, testSecret)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.EvaluatorID != 1 || claims.Year != 2026 {
		t.Fatalf("claims = %+v, want evaluator 1 year 2026", claims)
	}
}

func TestLoginInvalidPin(t *testing.T) {
	_, _, svc := newEvaluatorFixture(&fakeAssignmentService{})
	if _, err := svc.Login("0000"); !errors.Is(err, ErrInvalidPin) {
		t.Fatalf("Login() error = %v, want ErrInvalidPin", err)
	}
}

func TestLoginSurvivesAssignmentFailure(t *testing.T) {
	assignment := &fakeAssignmentService{err: errors.New("deadlock detected")}
	evaluatorRepo, _, svc := newEvaluatorFixture(assignment)
	evaluatorRepo.Create(&model.Evaluator{Name: "Ana", Pin: "4321", Year: 2026})

	resp, err := svc.Login("4321")
	if err != nil {
		t.Fatalf("Login() must succeed despite assignment failure, got: %v", err)
	}
	if resp.Token == "" {
		t.Error("Token empty after login")
	}
	if resp.AssignmentError == "" {
		t.Error("AssignmentError empty, want the failure surfaced in the payload")
	}
}

func TestLoginEmptyPoolStaysSilent(t *testing.T) {
	assignment := &fakeAssignmentService{err: ErrNoEligibleProjects}
	evaluatorRepo, _, svc := newEvaluatorFixture(assignment)
	evaluatorRepo.Create(&model.Evaluator{Name: "Ana", Pin: "4321", Year: 2026})

	resp, err := svc.Login("4321")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if resp.AssignmentError != "" {
		t.Fatalf("AssignmentError = %q, an exhausted pool is not an error", resp.AssignmentError)
	}
}

func TestGetAssessments(t *testing.T) {
	evaluatorRepo, assessmentRepo, svc := newEvaluatorFixture(&fakeAssignmentService{})
	evaluatorRepo.Create(&model.Evaluator{Name: "Ana", Pin: "4321", Year: 2026})
	assessmentRepo.Create(&model.Assessment{
		EvaluatorID: 1,
		ProjectID:   7,
		Project:     model.Project{ID: 7, Title: "Horta Inteligente"},
	})
	assessmentRepo.responses.byAssessment[1] = []model.Response{
		{QuestionID: 1, Score: floatPtr(8.125)},
		{QuestionID: 2, Score: floatPtr(9)},
	}

	summaries, err := svc.GetAssessments(1)
	if err != nil {
		t.Fatalf("GetAssessments() error: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("summaries = %d, want 1", len(summaries))
	}
	summary := summaries[0]
	if summary.ProjectTitle != "Horta Inteligente" {
		t.Errorf("ProjectTitle = %q", summary.ProjectTitle)
	}
	if !summary.HasResponse {
		t.Error("HasResponse = false for an answered assessment")
	}
	if summary.Note != 8.56 {
		t.Errorf("Note = %v, want 8.56 (mean rounded to two decimals)", summary.Note)
	}
}

// PIN draws and assignment sampling run on separate goroutines in production
// (admin creates evaluators while logins assign projects). Each service owns
// an independent random source, mirroring the process wiring, so neither draw
// shares state with the other. Run with -race.
func TestEvaluatorCreationAndAssignmentRunConcurrently(t *testing.T) {
	const rounds = 16

	assignmentEvaluators := newFakeEvaluatorRepo()
	assignmentProjects := newFakeProjectRepo()
	assignmentProjects.unassigned = []uint{1, 2, 3, 4, 5}
	for i := 0; i < rounds; i++ {
		assignmentEvaluators.Create(&model.Evaluator{Name: "Avaliador", Pin: fmt.Sprintf("%04d", i), Year: 2026})
	}
	assignment := NewAssignmentService(
		assignmentEvaluators,
		assignmentProjects,
		newFakeAssessmentRepo(newFakeResponseRepo()),
		rand.New(rand.NewSource(1)),
	)

	svc := NewEvaluatorService(
		newFakeEvaluatorRepo(),
		newFakeCategoryRepo(),
		newFakeAssessmentRepo(newFakeResponseRepo()),
		&fakeAssignmentService{},
		NewGradingService(),
		testSecret,
		rand.New(rand.NewSource(2)),
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			if _, err := svc.CreateEvaluator(dto.CreateEvaluatorRequest{Name: "Novo", Year: 2026}); err != nil {
				t.Errorf("CreateEvaluator() error: %v", err)
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			if _, err := assignment.AssignProjects(uint(i + 1)); err != nil {
				t.Errorf("AssignProjects(%d) error: %v", i+1, err)
			}
		}
	}()
	wg.Wait()
}

func TestGetAssessmentsUnknownEvaluator(t *testing.T) {
	_, _, svc := newEvaluatorFixture(&fakeAssignmentService{})
	if _, err := svc.GetAssessments(42); !errors.Is(err, ErrEvaluatorNotFound) {
		t.Fatalf("GetAssessments() error = %v, want ErrEvaluatorNotFound", err)
	}
}
