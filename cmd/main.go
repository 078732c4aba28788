package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/thanhvu/formforge/config"
	"github.com/thanhvu/formforge/database"
	_ "github.com/thanhvu/formforge/docs" // Swagger docs - auto-generated
	builderctrl "github.com/thanhvu/formforge/internal/controller/builder"
	publicctrl "github.com/thanhvu/formforge/internal/controller/public"
	"github.com/thanhvu/formforge/internal/logger"
	"github.com/thanhvu/formforge/internal/middleware"
	"github.com/thanhvu/formforge/internal/model"
	"github.com/thanhvu/formforge/internal/repository"
	"github.com/thanhvu/formforge/internal/service"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title FormForge API
// @version 1.0
// @description Form builder API: create forms, share them through public links, collect responses and bridge ticketing forms into the helpdesk.
// @contact.name API Support
// @contact.email support@example.com
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
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewFormRepository,
			repository.NewQuestionRepository,
			repository.NewOptionRepository,
			repository.NewAnswerRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewFormService,
			service.NewQuestionService,
			service.NewOptionService,
			service.NewResponseService,
			service.NewTicketService,
			service.NewGeneratorService,
			func(
				formRepo repository.FormRepository,
				questionRepo repository.QuestionRepository,
				ticketSvc service.TicketService,
				db *gorm.DB,
			) service.SubmissionService {
				return service.NewSubmissionService(formRepo, questionRepo, ticketSvc, db)
			},
		),

		// API Controllers Layer
		fx.Provide(
			builderctrl.NewFormController,
			builderctrl.NewQuestionController,
			builderctrl.NewResultController,
			builderctrl.NewTemplateController,
			publicctrl.NewFormController,
			publicctrl.NewTicketController,
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

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.DebugMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	formCtrl *builderctrl.FormController,
	questionCtrl *builderctrl.QuestionController,
	resultCtrl *builderctrl.ResultController,
	templateCtrl *builderctrl.TemplateController,
	publicFormCtrl *publicctrl.FormController,
	ticketCtrl *publicctrl.TicketController,
) {
	api := router.Group("/api/v1")

	// Builder routes: owner token required.
	forms := api.Group("/forms", middleware.AuthRequired(cfg.JWTSecret))
	{
		forms.POST("", formCtrl.CreateForm)
		forms.GET("", formCtrl.ListForms)
		forms.POST("/from-template", formCtrl.CreateFormFromTemplate)
		forms.POST("/generate", formCtrl.GenerateForm)
		forms.GET("/:form_id", formCtrl.GetForm)
		forms.PATCH("/:form_id", formCtrl.RenameForm)
		forms.DELETE("/:form_id", formCtrl.DeleteForm)
		forms.POST("/:form_id/publish", formCtrl.TogglePublish)

		forms.POST("/:form_id/questions", questionCtrl.CreateQuestion)
		forms.GET("/:form_id/questions", questionCtrl.ListQuestions)
		forms.PATCH("/:form_id/questions/:question_id", questionCtrl.UpdateQuestion)
		forms.DELETE("/:form_id/questions/:question_id", questionCtrl.DeleteQuestion)
		forms.POST("/:form_id/questions/:question_id/options", questionCtrl.CreateOption)
		forms.PATCH("/:form_id/questions/:question_id/options/:option_id", questionCtrl.UpdateOption)
		forms.DELETE("/:form_id/questions/:question_id/options/:option_id", questionCtrl.DeleteOption)

		forms.GET("/:form_id/responses", resultCtrl.ListResponses)
		forms.GET("/:form_id/responses/matrix", resultCtrl.ResponseMatrix)
		forms.GET("/:form_id/responses/export", resultCtrl.ExportResponses)
		forms.GET("/:form_id/responses/summary", resultCtrl.ResponseSummary)
	}

	templates := api.Group("/templates", middleware.AuthRequired(cfg.JWTSecret))
	{
		templates.GET("", templateCtrl.ListTemplates)
		templates.GET("/:template_id", templateCtrl.GetTemplate)
	}

	// Public routes: no token needed, but an owner token lets drafts through.
	publicForms := api.Group("/public/forms", middleware.OptionalAuth(cfg.JWTSecret))
	{
		publicForms.GET("/:public_id", publicFormCtrl.GetForm)
		publicForms.POST("/:public_id/submit", publicFormCtrl.SubmitForm)
	}

	api.POST("/tickets", ticketCtrl.CreateTicket)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("FormForge API server starting on port %s", cfg.Server.Port)
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
		&model.Form{},
		&model.Question{},
		&model.Option{},
		&model.Response{},
		&model.Answer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
