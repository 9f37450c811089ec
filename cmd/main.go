package main

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"sciencefair-backend/config"
	"sciencefair-backend/database"
	_ "sciencefair-backend/docs" // Swagger docs - auto-generated
	"sciencefair-backend/internal/auth"
	adminctrl "sciencefair-backend/internal/controller/admin"
	evaluatorctrl "sciencefair-backend/internal/controller/evaluator"
	"sciencefair-backend/internal/logger"
	"sciencefair-backend/internal/model"
	"sciencefair-backend/internal/repository"
	"sciencefair-backend/internal/service"
)

// @title Science Fair Grading API
// @version 1.0
// @description Grading and evaluator-assignment backend for a school science fair: assessments, responses, computed notes, award ranking and the evaluation dashboard.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories layer
		fx.Provide(
			repository.NewQuestionRepository,
			repository.NewResponseRepository,
			repository.NewAssessmentRepository,
			repository.NewProjectRepository,
			repository.NewEvaluatorRepository,
			repository.NewAwardRepository,
			repository.NewCategoryRepository,
		),

		// Services layer
		fx.Provide(
			service.NewGradingService,
			func(
				evaluatorRepo repository.EvaluatorRepository,
				projectRepo repository.ProjectRepository,
				assessmentRepo repository.AssessmentRepository,
			) service.AssignmentService {
				return service.NewAssignmentService(evaluatorRepo, projectRepo, assessmentRepo, NewRand())
			},
			service.NewAwardService,
			service.NewDashboardService,
			service.NewProjectService,
			service.NewResponseService,
			service.NewAdminService,
			func(
				evaluatorRepo repository.EvaluatorRepository,
				categoryRepo repository.CategoryRepository,
				assessmentRepo repository.AssessmentRepository,
				assignment service.AssignmentService,
				grading service.GradingService,
				cfg *config.Config,
			) service.EvaluatorService {
				return service.NewEvaluatorService(
					evaluatorRepo, categoryRepo, assessmentRepo,
					assignment, grading, []byte(cfg.JWTSecret), NewRand(),
				)
			},
		),

		// API controllers layer
		fx.Provide(
			adminctrl.NewAdminController,
			evaluatorctrl.NewEvaluatorController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

// NewRand builds a fresh random source per consumer. *rand.Rand is not safe
// for concurrent use, so each service that samples gets its own instance and
// guards it with its own mutex.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	adminCtrl *adminctrl.AdminController,
	evaluatorCtrl *evaluatorctrl.EvaluatorController,
) {
	jwtSecret := []byte(cfg.JWTSecret)

	// Admin routes (prefixed with /api/v1/admin)
	adminGroup := router.Group("/api/v1/admin")
	{
		adminGroup.POST("/questions", adminCtrl.CreateQuestion)
		adminGroup.POST("/categories", adminCtrl.CreateCategory)
		adminGroup.POST("/projects", adminCtrl.CreateProject)
		adminGroup.POST("/evaluators", adminCtrl.CreateEvaluator)
		adminGroup.POST("/awards", adminCtrl.CreateAward)
		adminGroup.GET("/dashboard/cards", adminCtrl.GetDashboardCards)
		adminGroup.GET("/awards/:award_id/winner", adminCtrl.GetAwardWinner)
		adminGroup.GET("/awards/:award_id/winner-score", adminCtrl.GetAwardWinnerScore)
	}

	// Public + evaluator routes (prefixed with /api/v1)
	apiGroup := router.Group("/api/v1")
	{
		apiGroup.POST("/login", evaluatorCtrl.Login)
		apiGroup.GET("/projects", evaluatorCtrl.ListProjects)
		apiGroup.GET("/projects/:project_id", evaluatorCtrl.GetProject)

		authGroup := apiGroup.Group("")
		authGroup.Use(auth.Middleware(jwtSecret))
		authGroup.GET("/evaluators/me/assessments", evaluatorCtrl.GetMyAssessments)
		authGroup.GET("/assessments/:assessment_id", evaluatorCtrl.GetAssessment)
		authGroup.PUT("/assessments/:assessment_id/responses", evaluatorCtrl.StoreResponses)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Science fair API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Category{},
		&model.Question{},
		&model.Student{},
		&model.Project{},
		&model.Evaluator{},
		&model.Assessment{},
		&model.Response{},
		&model.Award{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
