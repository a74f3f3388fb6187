package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	appealusecases "crest/internal/application/appeal/usecases"
	auditusecases "crest/internal/application/audit/usecases"
	authusecases "crest/internal/application/auth/usecases"
	moderationusecases "crest/internal/application/moderation/usecases"
	appnotif "crest/internal/application/notification"
	notifusecases "crest/internal/application/notification/usecases"
	ticketusecases "crest/internal/application/ticket/usecases"
	"crest/internal/domain/ticket"
	"crest/internal/infrastructure/auth"
	"crest/internal/infrastructure/config"
	"crest/internal/infrastructure/email"
	"crest/internal/infrastructure/permission"
	"crest/internal/infrastructure/pubsub"
	"crest/internal/infrastructure/repository"
	"crest/internal/interfaces/http/handlers"
	"crest/internal/interfaces/http/middleware"
	"crest/internal/interfaces/http/routes"
	"crest/internal/shared/logger"
)

// Router assembles the HTTP surface: repositories, use cases, handlers,
// middleware and routes.
type Router struct {
	engine        *gin.Engine
	eventsHandler *handlers.EventsHandler
}

// NewRouter creates the HTTP router with all dependencies wired.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	switch cfg.Server.Mode {
	case "production", "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	// Repositories
	ticketRepo := repository.NewTicketRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	reportRepo := repository.NewReportRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	userRepo := repository.NewUserRepository(db)
	appealRepo := repository.NewAppealRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	contentRepo := repository.NewContentRepository(db)

	// Infrastructure services
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	enforcer, err := permission.NewEnforcer(db, log)
	if err != nil {
		return nil, err
	}

	changeFeed := pubsub.NewRedisChangeFeed(redisClient, log)

	// The fanout nil-checks its sender; a disabled mailer stays a true
	// nil interface so notifications are logged and skipped.
	var emailSender appnotif.EmailSender
	if cfg.Email.Enabled {
		emailSender = email.NewSMTPEmailService(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
			BaseURL:     cfg.Server.BaseURL,
		})
	}

	fanout := appnotif.NewFanoutService(notificationRepo, userRepo, emailSender, log)
	numberGen := ticket.NewDefaultNumberGenerator()

	// Use cases
	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, numberGen, fanout, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, userRepo, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, userRepo, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, fanout, changeFeed, log)
	deleteTicketUC := ticketusecases.NewDeleteTicketUseCase(ticketRepo, messageRepo, changeFeed, log)
	transferTicketUC := ticketusecases.NewTransferTicketUseCase(ticketRepo, messageRepo, userRepo, fanout, changeFeed, log)
	appendMessageUC := ticketusecases.NewAppendMessageUseCase(ticketRepo, messageRepo, userRepo, fanout, changeFeed, log)
	loadConversationUC := ticketusecases.NewLoadConversationUseCase(ticketRepo, messageRepo, userRepo, log)
	lockTicketUC := ticketusecases.NewLockTicketUseCase(ticketRepo, changeFeed, log)
	unlockTicketUC := ticketusecases.NewUnlockTicketUseCase(ticketRepo, changeFeed, log)

	createReportUC := moderationusecases.NewCreateReportUseCase(reportRepo, fanout, log)
	listReportsUC := moderationusecases.NewListReportsUseCase(reportRepo, userRepo, log)
	claimReportUC := moderationusecases.NewClaimReportUseCase(reportRepo, changeFeed, log)
	resolveReportUC := moderationusecases.NewResolveReportUseCase(reportRepo, userRepo, contentRepo, auditRepo, fanout, changeFeed, log)
	dismissReportUC := moderationusecases.NewDismissReportUseCase(reportRepo, auditRepo, fanout, changeFeed, log)

	submitAppealUC := appealusecases.NewSubmitAppealUseCase(appealRepo, fanout, log)
	listAppealsUC := appealusecases.NewListAppealsUseCase(appealRepo, userRepo, log)
	decideAppealUC := appealusecases.NewDecideAppealUseCase(appealRepo, userRepo, auditRepo, fanout, log)

	listNotificationsUC := notifusecases.NewListNotificationsUseCase(notificationRepo, log)
	getUnreadCountUC := notifusecases.NewGetUnreadCountUseCase(notificationRepo, log)
	markAsReadUC := notifusecases.NewMarkAsReadUseCase(notificationRepo, log)
	markAllAsReadUC := notifusecases.NewMarkAllAsReadUseCase(notificationRepo, log)

	listAuditLogUC := auditusecases.NewListAuditLogUseCase(auditRepo, log)
	loginUC := authusecases.NewLoginUseCase(userRepo, jwtService, log)

	// Handlers
	ticketHandler := handlers.NewTicketHandler(
		createTicketUC, listTicketsUC, getTicketUC, updateTicketUC,
		deleteTicketUC, transferTicketUC, appendMessageUC,
		loadConversationUC, lockTicketUC, unlockTicketUC,
	)
	reportHandler := handlers.NewReportHandler(
		createReportUC, listReportsUC, claimReportUC, resolveReportUC, dismissReportUC,
	)
	appealHandler := handlers.NewAppealHandler(submitAppealUC, listAppealsUC, decideAppealUC)
	notificationHandler := handlers.NewNotificationHandler(
		listNotificationsUC, getUnreadCountUC, markAsReadUC, markAllAsReadUC,
	)
	auditHandler := handlers.NewAuditHandler(listAuditLogUC)
	authHandler := handlers.NewAuthHandler(loginUC)
	eventsHandler := handlers.NewEventsHandler(changeFeed, log)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)
	permissionMiddleware := middleware.NewPermissionMiddleware(enforcer, log)

	// Routes
	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler: authHandler,
	})
	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:        ticketHandler,
		AuthMiddleware:       authMiddleware,
		PermissionMiddleware: permissionMiddleware,
	})
	routes.SetupReportRoutes(engine, &routes.ReportRouteConfig{
		ReportHandler:        reportHandler,
		AuthMiddleware:       authMiddleware,
		PermissionMiddleware: permissionMiddleware,
	})
	routes.SetupAppealRoutes(engine, &routes.AppealRouteConfig{
		AppealHandler:        appealHandler,
		AuthMiddleware:       authMiddleware,
		PermissionMiddleware: permissionMiddleware,
	})
	routes.SetupNotificationRoutes(engine, &routes.NotificationRouteConfig{
		NotificationHandler: notificationHandler,
		AuthMiddleware:      authMiddleware,
	})
	routes.SetupAuditRoutes(engine, &routes.AuditRouteConfig{
		AuditHandler:         auditHandler,
		AuthMiddleware:       authMiddleware,
		PermissionMiddleware: permissionMiddleware,
	})
	routes.SetupEventRoutes(engine, &routes.EventRouteConfig{
		EventsHandler:        eventsHandler,
		AuthMiddleware:       authMiddleware,
		PermissionMiddleware: permissionMiddleware,
	})

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return &Router{
		engine:        engine,
		eventsHandler: eventsHandler,
	}, nil
}

// Engine returns the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// StartEventFeed begins streaming change events to SSE clients.
func (r *Router) StartEventFeed(ctx context.Context) {
	r.eventsHandler.Start(ctx)
}
