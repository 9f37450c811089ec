package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type QuestionDTO struct {
	ID                 uint      `json:"id"`
	ScientificText     string    `json:"scientific_text"`
	TechnologicalText  string    `json:"technological_text"`
	DisplayText        string    `json:"display_text"`
	Type               string    `json:"type"`
	TypeLabel          string    `json:"type_label"`
	NumberAlternatives *int      `json:"number_alternatives,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

type CategoryDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type StudentDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	SchoolGrade string `json:"school_grade"`
	SchoolType  string `json:"school_type"`
}

type ResponseDTO struct {
	ID         uint     `json:"id"`
	QuestionID uint     `json:"question_id"`
	Text       *string  `json:"response,omitempty"`
	Score      *float64 `json:"score,omitempty"`
}

type AssessmentDTO struct {
	ID          uint          `json:"id"`
	EvaluatorID uint          `json:"evaluator_id"`
	ProjectID   uint          `json:"project_id"`
	HasResponse bool          `json:"has_response"`
	Note        float64       `json:"note"`
	Responses   []ResponseDTO `json:"responses,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// AssessmentSummaryDTO is what an evaluator sees in their work list.
type AssessmentSummaryDTO struct {
	ID           uint    `json:"id"`
	ProjectID    uint    `json:"project_id"`
	ProjectTitle string  `json:"project_title"`
	HasResponse  bool    `json:"has_response"`
	Note         float64 `json:"note"`
}

type QuestionNoteDTO struct {
	QuestionID uint    `json:"question_id"`
	Note       float64 `json:"note"`
}

type ProjectSummaryDTO struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Year        int     `json:"year"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	SchoolGrade string  `json:"school_grade"`
	FinalNote   float64 `json:"final_note"`
}

type ProjectDetailDTO struct {
	ID            uint              `json:"id"`
	Title         string            `json:"title"`
	Year          int               `json:"year"`
	Type          string            `json:"type"`
	TypeLabel     string            `json:"type_label"`
	Category      CategoryDTO       `json:"category"`
	SchoolGrade   string            `json:"school_grade"`
	Students      []StudentDTO      `json:"students"`
	Assessments   []AssessmentDTO   `json:"assessments"`
	FinalNote     float64           `json:"final_note"`
	PendingCount  int               `json:"pending_count"`
	QuestionNotes []QuestionNoteDTO `json:"question_notes"`
}

type EvaluatorDTO struct {
	ID         uint          `json:"id"`
	Name       string        `json:"name"`
	Pin        string        `json:"pin"`
	Year       int           `json:"year"`
	Categories []CategoryDTO `json:"categories,omitempty"`
}

// LoginResponse reports the session token plus what the login-time assignment
// pass did. AssignmentError is informational: login succeeds even when the
// assignment batch failed, the next login retries it.
type LoginResponse struct {
	Token              string       `json:"token"`
	Evaluator          EvaluatorDTO `json:"evaluator"`
	AssignmentsCreated int          `json:"assignments_created"`
	AssignmentError    string       `json:"assignment_error,omitempty"`
}

type AwardDTO struct {
	ID          uint          `json:"id"`
	Name        string        `json:"name"`
	SchoolGrade *string       `json:"school_grade,omitempty"`
	Questions   []QuestionDTO `json:"questions,omitempty"`
}

type AwardWinnerDTO struct {
	AwardID  uint   `json:"award_id"`
	Position int    `json:"position"`
	Winner   string `json:"winner"`
}

type AwardWinnerScoreDTO struct {
	AwardID  uint   `json:"award_id"`
	Position int    `json:"position"`
	Score    string `json:"score"`
}

// DashboardCardsDTO keeps the Portuguese field names the fair's frontend and
// report templates consume.
type DashboardCardsDTO struct {
	TotalProjetos        int `json:"total_projetos"`
	ProjetosSemAvaliacao int `json:"projetos_sem_avaliacao"`
	ProjetosAvaliados    int `json:"projetos_avaliados"`
	Faltam1Avaliacao     int `json:"faltam_1_avaliacao"`
	Faltam2Avaliacoes    int `json:"faltam_2_avaliacoes"`
	Faltam3Avaliacoes    int `json:"faltam_3_avaliacoes"`
	ProgressoGeral       int `json:"progresso_geral"`
}
