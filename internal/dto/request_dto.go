package dto

// LoginRequest authenticates an evaluator by their 4-digit PIN.
type LoginRequest struct {
	Pin string `json:"pin" binding:"required,len=4,numeric"`
}

// ResponseItemDTO is one answer inside a full resubmission. Text questions use
// Response, multiple-choice questions use Score; the other field is ignored.
type ResponseItemDTO struct {
	QuestionID uint     `json:"question_id" binding:"required"`
	Response   *string  `json:"response"`
	Score      *float64 `json:"score"`
}

// StoreResponsesRequest replaces the full answer set of an assessment. Clients
// always resubmit every answer, so old responses are dropped first.
type StoreResponsesRequest struct {
	Responses []ResponseItemDTO `json:"responses" binding:"required,dive"`
}

type CreateQuestionRequest struct {
	ScientificText     string `json:"scientific_text"`
	TechnologicalText  string `json:"technological_text"`
	Type               string `json:"type" binding:"required,oneof=MULTIPLE_CHOICE TEXT"`
	NumberAlternatives *int   `json:"number_alternatives"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type StudentRequest struct {
	Name        string `json:"name" binding:"required"`
	SchoolGrade string `json:"school_grade" binding:"omitempty,oneof=FUNDAMENTAL MEDIO"`
	SchoolType  string `json:"school_type" binding:"omitempty,oneof=PUBLIC PRIVATE"`
}

type CreateProjectRequest struct {
	Title      string           `json:"title" binding:"required"`
	Year       int              `json:"year" binding:"required"`
	Type       string           `json:"type" binding:"required,oneof=SCIENTIFIC TECHNOLOGICAL"`
	CategoryID uint             `json:"category_id" binding:"required"`
	Students   []StudentRequest `json:"students" binding:"omitempty,dive"`
}

type CreateEvaluatorRequest struct {
	Name        string `json:"name" binding:"required"`
	Year        int    `json:"year" binding:"required"`
	CategoryIDs []uint `json:"category_ids"`
}

type CreateAwardRequest struct {
	Name        string  `json:"name" binding:"required"`
	SchoolGrade *string `json:"school_grade" binding:"omitempty,oneof=FUNDAMENTAL MEDIO"`
	CategoryIDs []uint  `json:"category_ids"`
	QuestionIDs []uint  `json:"question_ids"`
}
