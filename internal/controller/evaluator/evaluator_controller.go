package evaluator

import (
	"errors"
	"net/http"
	"strconv"

	"sciencefair-backend/config"
	"sciencefair-backend/internal/auth"
	"sciencefair-backend/internal/dto"
	"sciencefair-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type EvaluatorController struct {
	evaluatorService service.EvaluatorService
	responseService  service.ResponseService
	projectService   service.ProjectService
	fairYear         int
}

func NewEvaluatorController(
	evaluatorService service.EvaluatorService,
	responseService service.ResponseService,
	projectService service.ProjectService,
	cfg *config.Config,
) *EvaluatorController {
	return &EvaluatorController{
		evaluatorService: evaluatorService,
		responseService:  responseService,
		projectService:   projectService,
		fairYear:         cfg.FairYear,
	}
}

// Login godoc
// @Summary Evaluator login by PIN
// @Description Authenticates by PIN, runs the project-assignment pass and returns a session token. Assignment failures do not block the login.
// @Tags Evaluator
// @Accept json
// @Produce json
// @Param login_data body dto.LoginRequest true "4-digit PIN"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /login [post]
func (c *EvaluatorController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.evaluatorService.Login(req.Pin)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPin) {
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid PIN"})
			return
		}
		log.Error().Err(err).Msg("Evaluator Login: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Login failed"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetMyAssessments godoc
// @Summary List the authenticated evaluator's assessments
// @Tags Evaluator
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.AssessmentSummaryDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /evaluators/me/assessments [get]
func (c *EvaluatorController) GetMyAssessments(ctx *gin.Context) {
	evaluatorID := ctx.GetUint(auth.ContextEvaluatorID)
	assessments, err := c.evaluatorService.GetAssessments(evaluatorID)
	if err != nil {
		if errors.Is(err, service.ErrEvaluatorNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Evaluator not found"})
			return
		}
		log.Error().Err(err).Uint("evaluatorID", evaluatorID).Msg("GetMyAssessments: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve assessments"})
		return
	}
	ctx.JSON(http.StatusOK, assessments)
}

// GetAssessment godoc
// @Summary Get one assessment with its responses and computed note
// @Tags Evaluator
// @Produce json
// @Security BearerAuth
// @Param assessment_id path int true "Assessment ID"
// @Success 200 {object} dto.AssessmentDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /assessments/{assessment_id} [get]
func (c *EvaluatorController) GetAssessment(ctx *gin.Context) {
	assessmentID, err := strconv.ParseUint(ctx.Param("assessment_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Assessment ID format"})
		return
	}
	assessment, err := c.responseService.GetAssessment(uint(assessmentID))
	if err != nil {
		if errors.Is(err, service.ErrAssessmentNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Assessment not found"})
			return
		}
		log.Error().Err(err).Uint64("assessmentID", assessmentID).Msg("GetAssessment: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve assessment"})
		return
	}
	ctx.JSON(http.StatusOK, assessment)
}

// StoreResponses godoc
// @Summary Replace all responses of an assessment
// @Description The full answer set is resubmitted and replaces whatever was stored before, leaving one response per answered question.
// @Tags Evaluator
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param assessment_id path int true "Assessment ID"
// @Param responses body dto.StoreResponsesRequest true "Full answer set"
// @Success 200 {object} dto.AssessmentDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /assessments/{assessment_id}/responses [put]
func (c *EvaluatorController) StoreResponses(ctx *gin.Context) {
	assessmentID, err := strconv.ParseUint(ctx.Param("assessment_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Assessment ID format"})
		return
	}
	var req dto.StoreResponsesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	assessment, err := c.responseService.StoreResponses(uint(assessmentID), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAssessmentNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Assessment not found"})
		case errors.Is(err, service.ErrQuestionNotFound), errors.Is(err, service.ErrAlreadyExists):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid responses", Details: []string{err.Error()}})
		default:
			log.Error().Err(err).Uint64("assessmentID", assessmentID).Msg("StoreResponses: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to store responses"})
		}
		return
	}
	ctx.JSON(http.StatusOK, assessment)
}

// ListProjects godoc
// @Summary List projects of a fair year with their final notes
// @Tags Projects
// @Produce json
// @Param year query int false "Fair year (defaults to the configured FAIR_YEAR)"
// @Success 200 {array} dto.ProjectSummaryDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /projects [get]
func (c *EvaluatorController) ListProjects(ctx *gin.Context) {
	year := c.fairYear
	if raw := ctx.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid year"})
			return
		}
		year = parsed
	} else if year == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Missing year and no fair year configured"})
		return
	}
	projects, err := c.projectService.ListProjects(year)
	if err != nil {
		log.Error().Err(err).Int("year", year).Msg("ListProjects: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve projects"})
		return
	}
	ctx.JSON(http.StatusOK, projects)
}

// GetProject godoc
// @Summary Project details with final note and per-question notes
// @Tags Projects
// @Produce json
// @Param project_id path int true "Project ID"
// @Success 200 {object} dto.ProjectDetailDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /projects/{project_id} [get]
func (c *EvaluatorController) GetProject(ctx *gin.Context) {
	projectID, err := strconv.ParseUint(ctx.Param("project_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Project ID format"})
		return
	}
	project, err := c.projectService.GetProject(uint(projectID))
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Project not found"})
			return
		}
		log.Error().Err(err).Uint64("projectID", projectID).Msg("GetProject: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve project"})
		return
	}
	ctx.JSON(http.StatusOK, project)
}
