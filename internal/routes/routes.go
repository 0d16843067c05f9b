package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/esteticapro/clinic-manager/internal/audit"
	"github.com/esteticapro/clinic-manager/internal/cache"
	"github.com/esteticapro/clinic-manager/internal/config"
	"github.com/esteticapro/clinic-manager/internal/export"
	"github.com/esteticapro/clinic-manager/internal/gateway"
	"github.com/esteticapro/clinic-manager/internal/handlers"
	"github.com/esteticapro/clinic-manager/internal/logger"
	"github.com/esteticapro/clinic-manager/internal/media"
	"github.com/esteticapro/clinic-manager/internal/middleware"
	"github.com/esteticapro/clinic-manager/internal/store"
	"github.com/esteticapro/clinic-manager/internal/timezone"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log logger.Logger) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	loc := timezone.Location(cfg.Timezone)

	tables := gateway.NewTables(db)
	domainStore := store.New(tables, log)

	cacheClient := cache.NewRedisClient(cfg.RedisAddr)

	storage := media.NewS3Storage(
		cfg.AWSRegion,
		cfg.AWSAccessKeyID,
		cfg.AWSSecretAccessKey,
		cfg.S3Bucket,
		cfg.S3BaseURL,
	)

	generator := export.Noop{Log: log}

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	clientHandler := handlers.NewClientHandler(domainStore, loc)
	collaboratorHandler := handlers.NewCollaboratorHandler(domainStore, storage)
	serviceHandler := handlers.NewServiceHandler(domainStore)
	categoryHandler := handlers.NewCategoryHandler(domainStore)
	leadHandler := handlers.NewLeadHandler(domainStore, tables.Leads, generator)

	agendaHandler := handlers.NewAgendaHandler(
		domainStore,
		tables.Agenda,
		tables.Services,
		auditDispatcher,
		loc,
	)

	transactionHandler := handlers.NewTransactionHandler(
		domainStore,
		tables.Transactions,
		generator,
		auditDispatcher,
		loc,
	)

	dashboardHandler := handlers.NewDashboardHandler(domainStore, cacheClient, log, loc)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.PATCH("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			secured.GET("/collaborators", collaboratorHandler.List)
			secured.POST("/collaborators", collaboratorHandler.Create)
			secured.PATCH("/collaborators/:id", collaboratorHandler.Update)
			secured.DELETE("/collaborators/:id", collaboratorHandler.Delete)
			secured.POST("/collaborators/:id/photo", collaboratorHandler.UploadPhoto)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.GET("/categories", categoryHandler.List)
			secured.POST("/categories", categoryHandler.Create)
			secured.PATCH("/categories/:id", categoryHandler.Update)
			secured.DELETE("/categories/:id", categoryHandler.Delete)

			secured.GET("/leads", leadHandler.List)
			secured.POST("/leads", leadHandler.Create)
			secured.PATCH("/leads/:id", leadHandler.Update)
			secured.DELETE("/leads/:id", leadHandler.Delete)
			secured.POST("/leads/:id/export", leadHandler.Export)

			// ------------------------------
			// AGENDA
			// ------------------------------
			secured.GET("/agenda", agendaHandler.List)
			secured.GET("/agenda/month", agendaHandler.Month)
			secured.POST("/agenda", agendaHandler.Create)
			secured.PATCH("/agenda/:id", agendaHandler.Update)
			secured.DELETE("/agenda/:id", agendaHandler.Delete)

			secured.GET("/transactions", transactionHandler.List)
			secured.POST("/transactions", transactionHandler.Create)
			secured.PATCH("/transactions/:id", transactionHandler.Update)
			secured.DELETE("/transactions/:id", transactionHandler.Delete)
			secured.POST("/transactions/export", transactionHandler.Export)

			secured.GET("/dashboard", dashboardHandler.Summary)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
