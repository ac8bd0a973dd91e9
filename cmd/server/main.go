package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sanketgaikwad/portfolio-api/adapters/event"
	httpAdapter "github.com/sanketgaikwad/portfolio-api/adapters/http"
	"github.com/sanketgaikwad/portfolio-api/adapters/llm"
	"github.com/sanketgaikwad/portfolio-api/adapters/media_storage"
	"github.com/sanketgaikwad/portfolio-api/adapters/persistence"
	"github.com/sanketgaikwad/portfolio-api/internal/application/store"
	authUC "github.com/sanketgaikwad/portfolio-api/internal/application/usecase/auth"
	exportUC "github.com/sanketgaikwad/portfolio-api/internal/application/usecase/export"
	mediaUC "github.com/sanketgaikwad/portfolio-api/internal/application/usecase/media"
	suggestUC "github.com/sanketgaikwad/portfolio-api/internal/application/usecase/suggest"
	"github.com/sanketgaikwad/portfolio-api/internal/config"
	"github.com/sanketgaikwad/portfolio-api/pkg/auth"
	"github.com/sanketgaikwad/portfolio-api/pkg/logger"
	"github.com/sanketgaikwad/portfolio-api/pkg/tracing"
)

func main() {
	fmt.Println("Start Portfolio API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	if cfg.Tracing.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "portfolio-api")
		if err != nil {
			log.Fatalf("FATAL: cannot init tracing: %v", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = tp.Shutdown(ctx)
		}()
	}

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot init Kafka: %v", err)
	}
	defer kafkaClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	repos := store.Repositories{
		Profile:        persistence.NewPostgresProfileRepo(dbPool, appLogger),
		Education:      persistence.NewPostgresEducationRepo(dbPool, appLogger),
		Internships:    persistence.NewPostgresInternshipRepo(dbPool, appLogger),
		Projects:       persistence.NewPostgresProjectRepo(dbPool, appLogger),
		Certifications: persistence.NewPostgresCertificationRepo(dbPool, appLogger),
		Contacts:       persistence.NewPostgresContactRepo(dbPool, appLogger),
	}

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize uploader: %v", err)
	}
	suggester, err := llm.NewOpenAISuggesterAdapter(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize suggester: %v", err)
	}

	// Content store
	snapshotCache := persistence.NewSnapshotCache(redisClient, 5*time.Minute, appLogger)
	contentStore := store.New(repos, appLogger,
		store.WithPublisher(kafkaClient),
		store.WithCache(snapshotCache),
	)
	if err := contentStore.Load(context.Background()); err != nil {
		log.Fatalf("FATAL: cannot load content store: %v", err)
	}

	// Credential verification: a configured static admin wins, otherwise
	// fall back to the users table.
	var verifier auth.CredentialVerifier
	if cfg.Auth.AdminEmail != "" {
		verifier = auth.NewStaticVerifier(cfg.Auth.AdminEmail, cfg.Auth.AdminPassword)
	} else {
		verifier = authUC.NewRepoVerifier(userRepo)
	}

	// Use Cases
	loginUseCase := authUC.NewLoginUseCase(verifier, jwtSvc, appLogger)
	ingestFileUseCase := mediaUC.NewIngestFileUseCase(uploader, appLogger)
	suggestUseCase := suggestUC.NewSuggestContentUseCase(suggester, appLogger)
	exportUseCase := exportUC.NewExportUseCase(contentStore, uploader, appLogger)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(loginUseCase)
	portfolioHandler := httpAdapter.NewPortfolioHandler(contentStore, snapshotCache, appLogger)
	profileHandler := httpAdapter.NewProfileHandler(contentStore, appLogger)
	educationHandler := httpAdapter.NewEducationHandler(contentStore)
	internshipHandler := httpAdapter.NewInternshipHandler(contentStore)
	projectHandler := httpAdapter.NewProjectHandler(contentStore)
	certificationHandler := httpAdapter.NewCertificationHandler(contentStore)
	contactHandler := httpAdapter.NewContactHandler(contentStore, kafkaClient, appLogger)
	mediaHandler := httpAdapter.NewMediaHandler(ingestFileUseCase, appLogger)
	suggestHandler := httpAdapter.NewSuggestHandler(suggestUseCase)
	exportHandler := httpAdapter.NewExportHandler(exportUseCase)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)

	// Setup Gin router
	router := gin.Default()
	router.Use(httpAdapter.ErrorMiddleware(appLogger))

	api := router.Group("/api")
	{

		admin := api.Group("/admin")
		{

			adminAuth := admin.Group("/auth")
			adminAuth.POST("/login", authHandler.Login)

			adminPrivate := admin.Group("/")
			adminPrivate.Use(authMiddleware)
			{

				adminPrivate.GET("/health-auth", func(c *gin.Context) {

					adminID, ok := httpAdapter.GetAdminIDFromGinContext(c)
					if !ok {
						c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot get admin id from context"})
						return
					}
					c.JSON(http.StatusOK, gin.H{
						"status":   "OK",
						"message":  "Authentication middleware is working!",
						"admin_id": adminID,
					})
				})

				adminPrivate.GET("/state", portfolioHandler.GetState)
				adminPrivate.POST("/seed", portfolioHandler.Seed)
				adminPrivate.POST("/export", exportHandler.ExportContent)

				adminPrivate.GET("/profile", profileHandler.GetProfile)
				adminPrivate.PUT("/profile", profileHandler.UpdateProfile)

				educations := adminPrivate.Group("/education")
				{
					educations.POST("", educationHandler.CreateEducation)
					educations.PUT("/:id", educationHandler.UpdateEducation)
					educations.DELETE("/:id", educationHandler.DeleteEducation)
				}

				internships := adminPrivate.Group("/internships")
				{
					internships.POST("", internshipHandler.CreateInternship)
					internships.PUT("/:id", internshipHandler.UpdateInternship)
					internships.DELETE("/:id", internshipHandler.DeleteInternship)
				}

				projects := adminPrivate.Group("/projects")
				{
					projects.POST("", projectHandler.CreateProject)
					projects.PUT("/:id", projectHandler.UpdateProject)
					projects.DELETE("/:id", projectHandler.DeleteProject)
				}

				ongoing := adminPrivate.Group("/ongoing-projects")
				{
					ongoing.POST("", projectHandler.CreateOngoingProject)
					ongoing.PUT("/:id", projectHandler.UpdateOngoingProject)
					ongoing.DELETE("/:id", projectHandler.DeleteOngoingProject)
				}

				certifications := adminPrivate.Group("/certifications")
				{
					certifications.POST("", certificationHandler.CreateCertification)
					certifications.PUT("/:id", certificationHandler.UpdateCertification)
					certifications.DELETE("/:id", certificationHandler.DeleteCertification)
				}

				contacts := adminPrivate.Group("/contacts")
				{
					contacts.GET("", contactHandler.ListContacts)
					contacts.PATCH("/:id/read", contactHandler.MarkRead)
					contacts.DELETE("/:id", contactHandler.DeleteContact)
				}

				adminPrivate.POST("/media", mediaHandler.UploadFile)
				adminPrivate.POST("/suggest", suggestHandler.SuggestContent)
			}
		}

		public := api.Group("/")
		{
			public.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
			public.GET("/portfolio", portfolioHandler.GetPortfolio)
			public.POST("/contact", contactHandler.CreateContact)
		}
	}

	log.Printf("Server running on port %s", cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Cannot run server: %v", err)
	}
}
