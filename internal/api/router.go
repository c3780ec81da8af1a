package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/visapro/visapro-api/docs"
	"github.com/visapro/visapro-api/internal/api/handler"
	"github.com/visapro/visapro-api/internal/api/middleware"
	"github.com/visapro/visapro-api/internal/core/domain"
	"github.com/visapro/visapro-api/internal/core/service"
	"github.com/visapro/visapro-api/internal/infrastructure/config"
	mongorepo "github.com/visapro/visapro-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/visapro/visapro-api/internal/infrastructure/db/redis"
	"github.com/visapro/visapro-api/internal/infrastructure/mail"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("visapro"))

	// --- Repositories ---
	userRepo := mongorepo.NewUserRepository(db)
	countryRepo := mongorepo.NewCountryRepository(db)
	hotelRepo := mongorepo.NewHotelRepository(db)
	tourRepo := mongorepo.NewTourRepository(db)
	packageRepo := mongorepo.NewPackageRepository(db)
	categoryRepo := mongorepo.NewVisaCategoryRepository(db)
	documentRepo := mongorepo.NewVisaDocumentRepository(db)

	// --- Services ---
	issuer := service.NewTokenIssuer(cfg.Auth.AccessSecret, cfg.Auth.RefreshSecret, cfg.Auth.AccessTTL, cfg.Auth.RefreshTTL)
	denylist := redisinfra.NewTokenDenylist(rdb)
	cache := redisinfra.NewListingCache(rdb)
	mailer := mail.NewLogMailer(log)

	gate := service.NewAuthGate(userRepo, cfg.Auth.AccessSecret, cfg.Auth.SuperAdminID)
	authService := service.NewAuthService(userRepo, issuer, denylist, mailer, cfg.Auth.BcryptCost, log)
	userService := service.NewUserService(userRepo, log)
	countryService := service.NewCountryService(countryRepo, log)
	hotelService := service.NewHotelService(hotelRepo, log)
	tourService := service.NewTourService(tourRepo, log)
	packageService := service.NewPackageService(packageRepo, cache, log)
	categoryService := service.NewVisaCategoryService(categoryRepo, log)
	documentService := service.NewVisaDocumentService(documentRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	countryHandler := handler.NewCountryHandler(countryService)
	hotelHandler := handler.NewHotelHandler(hotelService)
	tourHandler := handler.NewTourHandler(tourService)
	packageHandler := handler.NewPackageHandler(packageService)
	categoryHandler := handler.NewVisaCategoryHandler(categoryService)
	documentHandler := handler.NewVisaDocumentHandler(documentService)

	// --- Auth middleware ---
	authed := middleware.Authenticate(gate)
	adminOnly := middleware.RequireRoles(gate, domain.RoleAdmin, domain.RoleSuperAdmin)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	v1 := e.Group("/v1")

	// --- Auth routes ---
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh-token", authHandler.Refresh)
	auth.POST("/logout", authHandler.Logout)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.POST("/reset-password", authHandler.ResetPassword)
	auth.POST("/change-password", authHandler.ChangePassword, authed)

	// --- User routes: own profile first, then admin management ---
	users := v1.Group("/users")
	users.GET("/me", userHandler.Me, authed)
	users.PATCH("/me", userHandler.UpdateMe, authed)
	users.GET("", userHandler.List, authed, adminOnly)
	users.GET("/:id", userHandler.Get, authed, adminOnly)
	users.PATCH("/:id/status", userHandler.ChangeStatus, authed, adminOnly)
	users.PATCH("/:id/role", userHandler.ChangeRole, authed, adminOnly)
	users.DELETE("/:id", userHandler.Delete, authed, adminOnly)

	// --- Country routes: public reads, admin writes ---
	countries := v1.Group("/countries")
	countries.GET("", countryHandler.List)
	countries.GET("/active", countryHandler.Active)
	countries.GET("/featured", countryHandler.Featured)
	countries.GET("/slug/:slug", countryHandler.GetBySlug)
	countries.GET("/:id", countryHandler.Get)
	countries.POST("", countryHandler.Create, authed, adminOnly)
	countries.PUT("/:id", countryHandler.Update, authed, adminOnly)
	countries.DELETE("/:id", countryHandler.Delete, authed, adminOnly)

	// --- Hotel routes ---
	hotels := v1.Group("/hotels")
	hotels.GET("", hotelHandler.List)
	hotels.GET("/active", hotelHandler.Active)
	hotels.GET("/featured", hotelHandler.Featured)
	hotels.GET("/slug/:slug", hotelHandler.GetBySlug)
	hotels.GET("/:id", hotelHandler.Get)
	hotels.POST("", hotelHandler.Create, authed, adminOnly)
	hotels.PUT("/:id", hotelHandler.Update, authed, adminOnly)
	hotels.DELETE("/:id", hotelHandler.Delete, authed, adminOnly)

	// --- Tour routes ---
	tours := v1.Group("/tours")
	tours.GET("", tourHandler.List)
	tours.GET("/active", tourHandler.Active)
	tours.GET("/featured", tourHandler.Featured)
	tours.GET("/slug/:slug", tourHandler.GetBySlug)
	tours.GET("/:id", tourHandler.Get)
	tours.POST("", tourHandler.Create, authed, adminOnly)
	tours.PUT("/:id", tourHandler.Update, authed, adminOnly)
	tours.DELETE("/:id", tourHandler.Delete, authed, adminOnly)

	// --- Hajj/Umrah package routes ---
	packages := v1.Group("/packages")
	packages.GET("", packageHandler.List)
	packages.GET("/featured", packageHandler.Featured)
	packages.GET("/slug/:slug", packageHandler.GetBySlug)
	packages.GET("/:id", packageHandler.Get)
	packages.POST("", packageHandler.Create, authed, adminOnly)
	packages.PUT("/:id", packageHandler.Update, authed, adminOnly)
	packages.DELETE("/:id", packageHandler.Delete, authed, adminOnly)

	// --- Visa category routes ---
	categories := v1.Group("/visa-categories")
	categories.GET("", categoryHandler.List)
	categories.GET("/active", categoryHandler.Active)
	categories.GET("/slug/:slug", categoryHandler.GetBySlug)
	categories.GET("/:id", categoryHandler.Get)
	categories.POST("", categoryHandler.Create, authed, adminOnly)
	categories.PUT("/:id", categoryHandler.Update, authed, adminOnly)
	categories.DELETE("/:id", categoryHandler.Delete, authed, adminOnly)

	// --- Visa document routes: owner reads, admin management ---
	documents := v1.Group("/visa-documents", authed)
	documents.GET("/my", documentHandler.Mine)
	documents.GET("/:id", documentHandler.Get)
	documents.GET("", documentHandler.List, adminOnly)
	documents.POST("", documentHandler.Create, adminOnly)
	documents.PUT("/:id", documentHandler.Update, adminOnly)
	documents.DELETE("/:id", documentHandler.Delete, adminOnly)

	return e
}
