package service

import "errors"

// Domain error kinds. Handlers translate these to HTTP statuses; the login
// path additionally treats ErrNoEligibleProjects as a normal outcome.
var (
	ErrEvaluatorNotFound  = errors.New("evaluator not found")
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrAwardNotFound      = errors.New("award not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrInvalidPin         = errors.New("invalid pin")
	ErrNoEligibleProjects = errors.New("no eligible projects to assign")
	ErrAssignmentFailed   = errors.New("assignment transaction failed")
	ErrAlreadyExists      = errors.New("already exists")
	ErrPinExhausted       = errors.New("no unused pin available")
)
