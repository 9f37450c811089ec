package admin

import (
	"errors"
	"net/http"
	"strconv"

	"sciencefair-backend/config"
	"sciencefair-backend/internal/dto"
	"sciencefair-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AdminController struct {
	adminService     service.AdminService
	evaluatorService service.EvaluatorService
	dashboardService service.DashboardService
	awardService     service.AwardService
	fairYear         int
}

func NewAdminController(
	adminService service.AdminService,
	evaluatorService service.EvaluatorService,
	dashboardService service.DashboardService,
	awardService service.AwardService,
	cfg *config.Config,
) *AdminController {
	return &AdminController{
		adminService:     adminService,
		evaluatorService: evaluatorService,
		dashboardService: dashboardService,
		awardService:     awardService,
		fairYear:         cfg.FairYear,
	}
}

// CreateQuestion godoc
// @Summary (Admin) Create an evaluation question
// @Tags Admin
// @Accept json
// @Produce json
// @Param question_data body dto.CreateQuestionRequest true "Question data"
// @Success 201 {object} dto.QuestionDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/questions [post]
func (c *AdminController) CreateQuestion(ctx *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	question, err := c.adminService.CreateQuestion(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateQuestion: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create question", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// CreateCategory godoc
// @Summary (Admin) Create a project category
// @Tags Admin
// @Accept json
// @Produce json
// @Param category_data body dto.CreateCategoryRequest true "Category data"
// @Success 201 {object} dto.CategoryDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/categories [post]
func (c *AdminController) CreateCategory(ctx *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	category, err := c.adminService.CreateCategory(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateCategory: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create category", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, category)
}

// CreateProject godoc
// @Summary (Admin) Register a project with its students
// @Tags Admin
// @Accept json
// @Produce json
// @Param project_data body dto.CreateProjectRequest true "Project data"
// @Success 201 {object} dto.ProjectSummaryDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/projects [post]
func (c *AdminController) CreateProject(ctx *gin.Context) {
	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	project, err := c.adminService.CreateProject(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateProject: service error")
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrCategoryNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{Message: "Failed to create project", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, project)
}

// CreateEvaluator godoc
// @Summary (Admin) Register an evaluator; a unique 4-digit PIN is generated
// @Tags Admin
// @Accept json
// @Produce json
// @Param evaluator_data body dto.CreateEvaluatorRequest true "Evaluator data"
// @Success 201 {object} dto.EvaluatorDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/evaluators [post]
func (c *AdminController) CreateEvaluator(ctx *gin.Context) {
	var req dto.CreateEvaluatorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	evaluator, err := c.evaluatorService.CreateEvaluator(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateEvaluator: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create evaluator", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, evaluator)
}

// CreateAward godoc
// @Summary (Admin) Create an award tied to a question set
// @Tags Admin
// @Accept json
// @Produce json
// @Param award_data body dto.CreateAwardRequest true "Award data"
// @Success 201 {object} dto.AwardDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/awards [post]
func (c *AdminController) CreateAward(ctx *gin.Context) {
	var req dto.CreateAwardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	award, err := c.adminService.CreateAward(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateAward: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create award", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, award)
}

// GetDashboardCards godoc
// @Summary (Admin) Evaluation-progress counters for the dashboard
// @Tags Admin
// @Produce json
// @Param year query int false "Fair year (defaults to the configured FAIR_YEAR)"
// @Success 200 {object} dto.DashboardCardsDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/dashboard/cards [get]
func (c *AdminController) GetDashboardCards(ctx *gin.Context) {
	year, ok := c.yearOrDefault(ctx)
	if !ok {
		return
	}
	cards, err := c.dashboardService.Cards(year)
	if err != nil {
		log.Error().Err(err).Int("year", year).Msg("Admin GetDashboardCards: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to compute dashboard cards"})
		return
	}
	ctx.JSON(http.StatusOK, cards)
}

// GetAwardWinner godoc
// @Summary (Admin) Resolve the award winner at a ranking position
// @Tags Admin
// @Produce json
// @Param award_id path int true "Award ID"
// @Param position query int true "1-indexed ranking position"
// @Success 200 {object} dto.AwardWinnerDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/awards/{award_id}/winner [get]
func (c *AdminController) GetAwardWinner(ctx *gin.Context) {
	awardID, position, ok := c.awardParams(ctx)
	if !ok {
		return
	}
	winner, err := c.awardService.GetWinner(awardID, position)
	if err != nil {
		c.awardError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.AwardWinnerDTO{AwardID: awardID, Position: position, Winner: winner})
}

// GetAwardWinnerScore godoc
// @Summary (Admin) Score held by the award winner at a ranking position
// @Tags Admin
// @Produce json
// @Param award_id path int true "Award ID"
// @Param position query int true "1-indexed ranking position"
// @Success 200 {object} dto.AwardWinnerScoreDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/awards/{award_id}/winner-score [get]
func (c *AdminController) GetAwardWinnerScore(ctx *gin.Context) {
	awardID, position, ok := c.awardParams(ctx)
	if !ok {
		return
	}
	score, err := c.awardService.GetWinnerScore(awardID, position)
	if err != nil {
		c.awardError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.AwardWinnerScoreDTO{AwardID: awardID, Position: position, Score: score})
}

// yearOrDefault reads the year query parameter, falling back to the
// configured fair year when the parameter is absent.
func (c *AdminController) yearOrDefault(ctx *gin.Context) (int, bool) {
	if raw := ctx.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid year"})
			return 0, false
		}
		return year, true
	}
	if c.fairYear == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Missing year and no fair year configured"})
		return 0, false
	}
	return c.fairYear, true
}

func (c *AdminController) awardParams(ctx *gin.Context) (uint, int, bool) {
	awardID, err := strconv.ParseUint(ctx.Param("award_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Award ID format"})
		return 0, 0, false
	}
	position, err := strconv.Atoi(ctx.DefaultQuery("position", "1"))
	if err != nil || position < 1 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid position"})
		return 0, 0, false
	}
	return uint(awardID), position, true
}

func (c *AdminController) awardError(ctx *gin.Context, err error) {
	log.Error().Err(err).Msg("Admin award resolution: service error")
	if errors.Is(err, service.ErrAwardNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Award not found"})
		return
	}
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to resolve award", Details: []string{err.Error()}})
}
