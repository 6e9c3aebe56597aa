package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/legalsuite/case-management/internal/api/handler"
	"github.com/legalsuite/case-management/internal/api/middleware"
	"github.com/legalsuite/case-management/internal/core/domain"
	"github.com/legalsuite/case-management/internal/core/service"
	"github.com/legalsuite/case-management/internal/infrastructure/db/postgres"
	"github.com/legalsuite/case-management/internal/infrastructure/db/redis"
	"github.com/legalsuite/case-management/internal/infrastructure/mail"
	"github.com/legalsuite/case-management/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("legalsuite"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Repositories ---
	identityRepo := postgres.NewIdentityRepository(db)
	passcodeRepo := postgres.NewPasscodeRepository(db)
	clientRepo := postgres.NewClientRepository(db)
	caseRepo := postgres.NewCaseRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	paymentRepo := postgres.NewPaymentRepository(db)
	templateRepo := postgres.NewTemplateRepository(db)
	documentRepo := postgres.NewDocumentRepository(db)

	// --- Infrastructure ---
	mailer := mail.NewSMTPMailer(mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}, log)
	otpLimiter := redis.NewRequestLimiter(rdb, cfg.OTP.RequestLimit, cfg.OTP.RequestWindow)

	// --- Services ---
	authService := service.NewAuthService(identityRepo, cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)
	otpService := service.NewOTPService(passcodeRepo, identityRepo, clientRepo, mailer, otpLimiter, authService, cfg.OTP.TTL, log)
	clientService := service.NewClientService(clientRepo, log)
	caseService := service.NewCaseService(caseRepo, clientRepo, log)
	appointmentService := service.NewAppointmentService(appointmentRepo, clientRepo, identityRepo, log)
	paymentService := service.NewPaymentService(paymentRepo, clientRepo, log)
	templateService := service.NewTemplateService(templateRepo)
	documentService := service.NewDocumentService(documentRepo, caseRepo)
	dashboardService := service.NewDashboardService(caseRepo, clientRepo, appointmentRepo)
	portalService := service.NewPortalService(caseRepo, paymentRepo)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	otpHandler := handler.NewOTPHandler(otpService)
	clientHandler := handler.NewClientHandler(clientService, caseService, paymentService)
	caseHandler := handler.NewCaseHandler(caseService, documentService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	templateHandler := handler.NewTemplateHandler(templateService)
	documentHandler := handler.NewDocumentHandler(documentService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	portalHandler := handler.NewPortalHandler(portalService)

	authRequired := middleware.Auth(cfg.JWTSecret)
	staffOnly := middleware.RBAC(domain.RoleAdmin, domain.RoleAdvocate, domain.RoleStaff)
	clientOnly := middleware.RBAC(domain.RoleClient)

	// --- Public routes ---
	e.POST("/register/advocate", authHandler.RegisterAdvocate)
	e.POST("/register/client", authHandler.RegisterClient)
	e.POST("/login", authHandler.Login)
	e.POST("/token/refresh", authHandler.Refresh)
	e.POST("/otp/request", otpHandler.Request)
	e.POST("/otp/verify", otpHandler.Verify)
	e.GET("/advocates/active", authHandler.ActiveAdvocates)

	// --- Authenticated, any role ---
	e.GET("/user/profile", authHandler.Profile, authRequired)
	// Booking is open to every signed-in role: clients book themselves,
	// staff book on a client's behalf.
	e.POST("/appointments", appointmentHandler.Book, authRequired)

	// --- Practice routes (advocate side) ---
	practice := e.Group("", authRequired, staffOnly)
	practice.GET("/clients", clientHandler.List)
	practice.POST("/clients", clientHandler.Create)
	practice.GET("/clients/:id", clientHandler.Get)
	practice.PUT("/clients/:id", clientHandler.Update)
	practice.DELETE("/clients/:id", clientHandler.Delete)
	practice.GET("/clients/:id/cases", clientHandler.Cases)
	practice.GET("/clients/:id/payments", clientHandler.Payments)
	practice.POST("/clients/:id/payments", clientHandler.CreatePayment)

	practice.GET("/cases", caseHandler.List)
	practice.POST("/cases", caseHandler.Create)
	practice.GET("/cases/:id", caseHandler.Get)
	practice.PUT("/cases/:id", caseHandler.Update)
	practice.DELETE("/cases/:id", caseHandler.Delete)
	practice.GET("/cases/:id/documents", caseHandler.Documents)
	practice.GET("/hearings", caseHandler.Hearings)

	practice.GET("/appointments", appointmentHandler.List)
	practice.PUT("/appointments/:id/status", appointmentHandler.UpdateStatus)

	practice.GET("/templates", templateHandler.List)
	practice.POST("/templates", templateHandler.Create)
	practice.GET("/templates/:id", templateHandler.Get)
	practice.DELETE("/templates/:id", templateHandler.Delete)

	practice.GET("/documents", documentHandler.List)
	practice.POST("/documents", documentHandler.Create)

	practice.GET("/dashboard/stats", dashboardHandler.Stats)

	// --- Client portal ---
	portal := e.Group("/client", authRequired, clientOnly)
	portal.GET("/cases", portalHandler.Cases)
	portal.GET("/hearings", portalHandler.Hearings)
	portal.GET("/payments", portalHandler.Payments)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
