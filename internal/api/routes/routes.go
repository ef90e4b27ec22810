package routes

import (
	"fmt"
	"net/http"

	"legal-workspace-backend/internal/api/handlers"
	"legal-workspace-backend/internal/api/middleware"
	"legal-workspace-backend/internal/auth"
	"legal-workspace-backend/internal/config"
	"legal-workspace-backend/internal/database/models"
	"legal-workspace-backend/internal/logger"
	"legal-workspace-backend/internal/mailer"
	"legal-workspace-backend/internal/repository"
	"legal-workspace-backend/internal/service"
	"legal-workspace-backend/internal/storage"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// APIPrefix is where every application route is mounted
const APIPrefix = "/legal-api"

// Version is reported by the health endpoint
const Version = "1.0.0"

// Handlers groups the HTTP handlers mounted by NewRouter
type Handlers struct {
	Health     *handlers.HealthHandler
	Invite     *handlers.InviteHandler
	Workspace  *handlers.WorkspaceHandler
	Account    *handlers.AccountHandler
	Document   *handlers.DocumentHandler
	Research   *handlers.ResearchHandler
	Extraction *handlers.ExtractionHandler
}

// SetupRoutes wires repositories, services and handlers from configuration and returns the router
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	tokenService, err := auth.NewTokenService(&auth.AuthConfig{
		JWTSecret:  cfg.JWTSecret,
		TokenTTL:   cfg.JWTTTL(),
		BcryptCost: cfg.BcryptCost,
	})
	if err != nil {
		return nil, err
	}

	// Object storage is optional; without it uploads answer 503 and deletions skip stored files
	var store service.ObjectStore
	if cfg.StorageEnabled() {
		objectStore, err := storage.NewObjectStore(&storage.Config{
			Region:          cfg.AWSRegion,
			Bucket:          cfg.AWSBucketName,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
			Endpoint:        cfg.AWSS3Endpoint,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize object storage: %w", err)
		}
		store = objectStore
	} else {
		logger.New().Warn("AWS_BUCKET_NAME is not set, document storage is disabled")
	}

	var mail service.Mailer
	if cfg.Mailer == "smtp" {
		mail = mailer.NewSMTPMailer(&mailer.Config{
			SMTPHost:     cfg.SMTPHost,
			SMTPPort:     cfg.SMTPPort,
			SMTPUsername: cfg.SMTPUsername,
			SMTPPassword: cfg.SMTPPassword,
			FromEmail:    cfg.SMTPFromEmail,
			FromName:     cfg.SMTPFromName,
		})
	} else {
		mail = mailer.NewConsoleMailer()
	}

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	repos := repository.NewRepositories(db)
	tx := repository.NewTransactor(db)

	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	tokens := auth.NewRandomTokenGenerator()

	// Initialize services
	seatService := service.NewSeatService(repos, cfg.DefaultSeatLimit)
	inviteService := service.NewInviteService(repos, tx, tokens, hasher, mail, validator, service.InviteConfig{
		TTL:              cfg.InviteTTL(),
		FrontendURL:      cfg.FrontendURL,
		DefaultSeatLimit: cfg.DefaultSeatLimit,
		StrictSeatLimit:  cfg.StrictSeatLimit,
	})
	workspaceService := service.NewWorkspaceService(repos, tx, store, validator)
	accountService := service.NewAccountService(repos, tx, hasher, tokenService, tokens, mail, store, validator, service.AccountConfig{
		DefaultSeatLimit: cfg.DefaultSeatLimit,
		PasswordResetTTL: cfg.PasswordResetTTL(),
		SignedURLTTL:     cfg.SignedURLTTL(),
		FrontendURL:      cfg.FrontendURL,
	})
	documentService := service.NewDocumentService(repos, store, service.NewTextConverter(), service.DocumentConfig{
		SignedURLTTL:   cfg.SignedURLTTL(),
		MaxUploadBytes: cfg.MaxUploadBytes(),
	})
	researchService := service.NewResearchService(repos, validator)
	extractionService := service.NewExtractionService(repos, tx, validator)

	// Initialize handlers
	h := &Handlers{
		Health:     handlers.NewHealthHandler(db, Version),
		Invite:     handlers.NewInviteHandler(inviteService, seatService),
		Workspace:  handlers.NewWorkspaceHandler(workspaceService),
		Account:    handlers.NewAccountHandler(accountService, cfg.MaxUploadBytes()),
		Document:   handlers.NewDocumentHandler(documentService, cfg.MaxUploadBytes()),
		Research:   handlers.NewResearchHandler(researchService),
		Extraction: handlers.NewExtractionHandler(extractionService),
	}

	return NewRouter(cfg, h, auth.NewAuthMiddleware(tokenService)), nil
}

// NewRouter mounts the handlers on a new gin engine
func NewRouter(cfg *config.Config, h *Handlers, authMiddleware *auth.AuthMiddleware) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.MaxMultipartMemory = cfg.MaxUploadBytes()

	// Health check routes
	router.GET("/health", h.Health.Health)
	router.GET("/health/ready", h.Health.Ready)
	router.GET("/health/live", h.Health.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group(APIPrefix)

	// Unauthenticated routes share a per-client rate limit
	public := api.Group("", middleware.RateLimitByIP(middleware.PerMinute(cfg.RateLimitPublicPerMinute)))
	{
		public.POST("/create-admin", h.Account.CreateAdmin)
		public.POST("/login", h.Account.Login)
		public.POST("/request-reset-password", h.Account.RequestPasswordReset)
		public.POST("/reset-password", h.Account.ResetPassword)
		public.POST("/accept-invite", h.Invite.AcceptInvite)
	}

	authed := api.Group("", authMiddleware.RequireAuth())
	ownerOnly := authMiddleware.RequireRole(models.RoleOwner)
	{
		// Invites and seats
		authed.POST("/send-invite", ownerOnly, h.Invite.SendInvite)
		authed.GET("/all-invites", h.Invite.ListSentInvites)
		authed.DELETE("/invite/:inviteId", h.Invite.RevokeInvite)
		authed.GET("/seat-usage", ownerOnly, h.Invite.SeatUsage)

		// Workspaces
		authed.POST("/workspaces", ownerOnly, h.Workspace.CreateWorkspace)
		authed.GET("/get-workspaces", h.Workspace.ListUserWorkspaces)
		authed.DELETE("/workspace/:workspaceId", h.Workspace.DeleteWorkspace)

		// Accounts
		authed.GET("/users", ownerOnly, h.Account.ListUsers)
		authed.GET("/user", h.Account.GetUser)
		authed.PATCH("/user/profile", h.Account.UpdateProfile)
		authed.DELETE("/users/:userId", h.Account.DeleteUser)

		// Documents
		authed.POST("/upload-documents", h.Document.UploadDocuments)
		authed.GET("/list-documents/:workspaceId", h.Document.ListDocuments)
		authed.DELETE("/delete-document/:fileId", h.Document.DeleteDocument)
		authed.GET("/get-signed-url", h.Document.GetSignedURL)

		// Research
		authed.POST("/follow-case", h.Research.FollowCase)
		authed.GET("/get-followed-cases", h.Research.GetFollowedCases)
		authed.GET("/get-followed-cases-by-court", h.Research.GetFollowedCasesByCourt)
		authed.DELETE("/unfollow-case", h.Research.UnfollowCase)

		// Extractions
		authed.POST("/save-extraction", h.Extraction.SaveExtraction)
		authed.GET("/extracted-data-workspace/:workspaceId", h.Extraction.ListByWorkspace)
		authed.GET("/extracted-data-id/:id", h.Extraction.GetByID)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{Error: "Route not found"})
	})

	return router
}
