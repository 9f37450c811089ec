package service

import (
	"sort"

	"sciencefair-backend/internal/model"
	"sciencefair-backend/internal/repository"

	"gorm.io/gorm"
)

// In-memory repository fakes shared by the service tests.

type fakeEvaluatorRepo struct {
	evaluators map[uint]*model.Evaluator
	nextID     uint
	pins       []string
	createErr  error
}

func newFakeEvaluatorRepo() *fakeEvaluatorRepo {
	return &fakeEvaluatorRepo{evaluators: make(map[uint]*model.Evaluator)}
}

func (f *fakeEvaluatorRepo) Create(evaluator *model.Evaluator) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	evaluator.ID = f.nextID
	f.evaluators[evaluator.ID] = evaluator
	f.pins = append(f.pins, evaluator.Pin)
	return nil
}

func (f *fakeEvaluatorRepo) FindByID(id uint) (*model.Evaluator, error) {
	evaluator, ok := f.evaluators[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return evaluator, nil
}

func (f *fakeEvaluatorRepo) FindByPin(pin string) (*model.Evaluator, error) {
	for _, evaluator := range f.evaluators {
		if evaluator.Pin == pin {
			return evaluator, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEvaluatorRepo) FindAllPins() ([]string, error) { return f.pins, nil }
func (f *fakeEvaluatorRepo) Delete(id uint) error           { delete(f.evaluators, id); return nil }

type fakeProjectRepo struct {
	projects      map[uint]*model.Project
	unassigned    []uint
	evalCounts    []repository.ProjectEvaluationCount
	total         int
	unassignedErr error
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[uint]*model.Project)}
}

func (f *fakeProjectRepo) Create(project *model.Project) error {
	project.ID = uint(len(f.projects) + 1)
	f.projects[project.ID] = project
	return nil
}

func (f *fakeProjectRepo) FindByID(id uint) (*model.Project, error) {
	project, ok := f.projects[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return project, nil
}

func (f *fakeProjectRepo) FindByIDWithDetails(id uint) (*model.Project, error) {
	return f.FindByID(id)
}

func (f *fakeProjectRepo) FindAllByYear(year int) ([]model.Project, error) {
	var projects []model.Project
	for _, project := range f.projects {
		if project.Year == year {
			projects = append(projects, *project)
		}
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i].ID < projects[j].ID })
	return projects, nil
}

func (f *fakeProjectRepo) CountByYear(year int) (int, error) { return f.total, nil }

func (f *fakeProjectRepo) FindUnassignedIDs(year int, evaluatorID uint) ([]uint, error) {
	return f.unassigned, f.unassignedErr
}

func (f *fakeProjectRepo) EvaluationCounts(year int) ([]repository.ProjectEvaluationCount, error) {
	return f.evalCounts, nil
}

func (f *fakeProjectRepo) Delete(id uint) error { delete(f.projects, id); return nil }

type fakeAssessmentRepo struct {
	assessments map[uint]*model.Assessment
	nextID      uint
	responses   *fakeResponseRepo
	assignErr   error
}

func newFakeAssessmentRepo(responses *fakeResponseRepo) *fakeAssessmentRepo {
	return &fakeAssessmentRepo{assessments: make(map[uint]*model.Assessment), responses: responses}
}

func (f *fakeAssessmentRepo) Create(assessment *model.Assessment) error {
	f.nextID++
	assessment.ID = f.nextID
	f.assessments[assessment.ID] = assessment
	return nil
}

func (f *fakeAssessmentRepo) FindByID(id uint) (*model.Assessment, error) {
	assessment, ok := f.assessments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return assessment, nil
}

func (f *fakeAssessmentRepo) FindByIDWithResponses(id uint) (*model.Assessment, error) {
	assessment, err := f.FindByID(id)
	if err != nil {
		return nil, err
	}
	loaded := *assessment
	if f.responses != nil {
		loaded.Responses = f.responses.byAssessment[id]
	}
	return &loaded, nil
}

func (f *fakeAssessmentRepo) FindByEvaluator(evaluatorID uint) ([]model.Assessment, error) {
	var assessments []model.Assessment
	for _, assessment := range f.assessments {
		if assessment.EvaluatorID != evaluatorID {
			continue
		}
		loaded := *assessment
		if f.responses != nil {
			loaded.Responses = f.responses.byAssessment[assessment.ID]
		}
		assessments = append(assessments, loaded)
	}
	sort.Slice(assessments, func(i, j int) bool { return assessments[i].ID < assessments[j].ID })
	return assessments, nil
}

func (f *fakeAssessmentRepo) FindByProjectID(projectID uint) ([]model.Assessment, error) {
	var assessments []model.Assessment
	for _, assessment := range f.assessments {
		if assessment.ProjectID == projectID {
			assessments = append(assessments, *assessment)
		}
	}
	return assessments, nil
}

func (f *fakeAssessmentRepo) CountActiveForYear(evaluatorID uint, year int) (int, error) {
	count := 0
	for _, assessment := range f.assessments {
		if assessment.EvaluatorID == evaluatorID {
			count++
		}
	}
	return count, nil
}

func (f *fakeAssessmentRepo) ExistsForEvaluatorAndProject(evaluatorID, projectID uint) (bool, error) {
	for _, assessment := range f.assessments {
		if assessment.EvaluatorID == evaluatorID && assessment.ProjectID == projectID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAssessmentRepo) AssignProjects(evaluatorID uint, year int, projectIDs []uint, maxActive int) (int, error) {
	if f.assignErr != nil {
		return 0, f.assignErr
	}
	active, _ := f.CountActiveForYear(evaluatorID, year)
	created := 0
	for _, projectID := range projectIDs {
		if active+created >= maxActive {
			break
		}
		if exists, _ := f.ExistsForEvaluatorAndProject(evaluatorID, projectID); exists {
			continue
		}
		assessment := &model.Assessment{EvaluatorID: evaluatorID, ProjectID: projectID}
		f.nextID++
		assessment.ID = f.nextID
		f.assessments[assessment.ID] = assessment
		created++
	}
	return created, nil
}

func (f *fakeAssessmentRepo) Delete(id uint) error { delete(f.assessments, id); return nil }

type fakeResponseRepo struct {
	byAssessment map[uint][]model.Response
	scored       []model.Response
	nextID       uint
	replaceErr   error
}

func newFakeResponseRepo() *fakeResponseRepo {
	return &fakeResponseRepo{byAssessment: make(map[uint][]model.Response)}
}

func (f *fakeResponseRepo) FindByAssessmentID(assessmentID uint) ([]model.Response, error) {
	return f.byAssessment[assessmentID], nil
}

func (f *fakeResponseRepo) ReplaceForAssessment(assessmentID uint, responses []model.Response) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	stored := make([]model.Response, 0, len(responses))
	for _, response := range responses {
		f.nextID++
		response.ID = f.nextID
		response.AssessmentID = assessmentID
		stored = append(stored, response)
	}
	f.byAssessment[assessmentID] = stored
	return nil
}

func (f *fakeResponseRepo) FindScoredByQuestionIDs(questionIDs []uint) ([]model.Response, error) {
	wanted := make(map[uint]bool, len(questionIDs))
	for _, id := range questionIDs {
		wanted[id] = true
	}
	var responses []model.Response
	for _, response := range f.scored {
		if wanted[response.QuestionID] && response.Score != nil {
			responses = append(responses, response)
		}
	}
	return responses, nil
}

type fakeQuestionRepo struct {
	questions map[uint]*model.Question
}

func newFakeQuestionRepo(questions ...model.Question) *fakeQuestionRepo {
	repo := &fakeQuestionRepo{questions: make(map[uint]*model.Question)}
	for i := range questions {
		question := questions[i]
		repo.questions[question.ID] = &question
	}
	return repo
}

func (f *fakeQuestionRepo) Create(question *model.Question) error {
	question.ID = uint(len(f.questions) + 1)
	f.questions[question.ID] = question
	return nil
}

func (f *fakeQuestionRepo) FindByID(id uint) (*model.Question, error) {
	question, ok := f.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return question, nil
}

func (f *fakeQuestionRepo) FindByIDs(ids []uint) ([]model.Question, error) {
	var questions []model.Question
	for _, id := range ids {
		if question, ok := f.questions[id]; ok {
			questions = append(questions, *question)
		}
	}
	return questions, nil
}

func (f *fakeQuestionRepo) FindAll() ([]model.Question, error) {
	var questions []model.Question
	for _, question := range f.questions {
		questions = append(questions, *question)
	}
	return questions, nil
}

func (f *fakeQuestionRepo) Delete(id uint) error { delete(f.questions, id); return nil }

type fakeCategoryRepo struct {
	categories map[uint]*model.Category
}

func newFakeCategoryRepo(categories ...model.Category) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{categories: make(map[uint]*model.Category)}
	for i := range categories {
		category := categories[i]
		repo.categories[category.ID] = &category
	}
	return repo
}

func (f *fakeCategoryRepo) Create(category *model.Category) error {
	category.ID = uint(len(f.categories) + 1)
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) FindByID(id uint) (*model.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return category, nil
}

func (f *fakeCategoryRepo) FindByIDs(ids []uint) ([]model.Category, error) {
	var categories []model.Category
	for _, id := range ids {
		if category, ok := f.categories[id]; ok {
			categories = append(categories, *category)
		}
	}
	return categories, nil
}

func (f *fakeCategoryRepo) FindAll() ([]model.Category, error) {
	var categories []model.Category
	for _, category := range f.categories {
		categories = append(categories, *category)
	}
	return categories, nil
}

type fakeAwardRepo struct {
	awards map[uint]*model.Award
}

func newFakeAwardRepo(awards ...model.Award) *fakeAwardRepo {
	repo := &fakeAwardRepo{awards: make(map[uint]*model.Award)}
	for i := range awards {
		award := awards[i]
		repo.awards[award.ID] = &award
	}
	return repo
}

func (f *fakeAwardRepo) Create(award *model.Award) error {
	award.ID = uint(len(f.awards) + 1)
	f.awards[award.ID] = award
	return nil
}

func (f *fakeAwardRepo) FindByID(id uint) (*model.Award, error) {
	award, ok := f.awards[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return award, nil
}

func (f *fakeAwardRepo) FindByIDWithQuestions(id uint) (*model.Award, error) {
	return f.FindByID(id)
}

func (f *fakeAwardRepo) FindAll() ([]model.Award, error) {
	var awards []model.Award
	for _, award := range f.awards {
		awards = append(awards, *award)
	}
	return awards, nil
}

func (f *fakeAwardRepo) Delete(id uint) error { delete(f.awards, id); return nil }

type fakeAssignmentService struct {
	created int
	err     error
}

func (f *fakeAssignmentService) AssignProjects(evaluatorID uint) (int, error) {
	return f.created, f.err
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
