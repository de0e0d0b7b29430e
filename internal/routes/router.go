package routes

import (
	"fmt"
	"net/http"

	"github.com/AyushiSrivastava11/VRV-Backend/internal/config"
	"github.com/AyushiSrivastava11/VRV-Backend/internal/delivery/http/handler"
	"github.com/AyushiSrivastava11/VRV-Backend/internal/infrastructure/database/postgres"
	"github.com/AyushiSrivastava11/VRV-Backend/internal/logger"
	"github.com/AyushiSrivastava11/VRV-Backend/internal/middleware"
	"github.com/AyushiSrivastava11/VRV-Backend/internal/notification"
	customerUsecase "github.com/AyushiSrivastava11/VRV-Backend/internal/usecase/customer"
	menuUsecase "github.com/AyushiSrivastava11/VRV-Backend/internal/usecase/menu"
	staffUsecase "github.com/AyushiSrivastava11/VRV-Backend/internal/usecase/staff"
	"github.com/AyushiSrivastava11/VRV-Backend/pkg/token"
	"github.com/AyushiSrivastava11/VRV-Backend/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Services bundles the wired usecases so main can run background jobs.
type Services struct {
	Staff    *staffUsecase.Service
	Customer *customerUsecase.Service
	Menu     *menuUsecase.Service
}

func SetupRoutes(
	cfg *config.Config,
	db *postgres.DB,
	mailer notification.Mailer,
	sms notification.SMSSender,
) (*gin.Engine, *Services) {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware order: recovery, request id, logging, security headers,
	// CORS, request size limit, rate limit.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	router.NoRoute(func(c *gin.Context) {
		utils.ErrorResponse(c, http.StatusNotFound,
			fmt.Sprintf("Cannot find %s on this server", c.Request.URL.Path))
	})

	codec := token.NewCodec(token.Config{
		ActivationSecret: cfg.JWT.ActivationSecret,
		ActivationTTL:    cfg.JWT.ActivationTTL(),
		AccessSecret:     cfg.JWT.AccessSecret,
		AccessTTL:        cfg.JWT.AccessTTL(),
		RefreshSecret:    cfg.JWT.RefreshSecret,
		RefreshTTL:       cfg.JWT.RefreshTTL(),
		CustomerSecret:   cfg.JWT.CustomerSecret,
		CustomerTTL:      cfg.JWT.CustomerTTL(),
	})
	secureCookies := cfg.Server.Environment == "production"

	staffRepo := postgres.NewStaffRepository(db)
	refreshTokenRepo := postgres.NewRefreshTokenRepository(db)
	staffService := staffUsecase.NewService(staffRepo, refreshTokenRepo, codec, mailer)
	staffHandler := handler.NewStaffHandler(staffService, codec, secureCookies)

	customerRepo := postgres.NewCustomerRepository(db)
	customerService := customerUsecase.NewService(customerRepo, codec, sms, cfg.JWT.OTPTTL())
	customerHandler := handler.NewCustomerHandler(customerService, codec, secureCookies)

	menuRepo := postgres.NewMenuRepository(db)
	menuService := menuUsecase.NewService(menuRepo)
	menuHandler := handler.NewMenuHandler(menuService)

	staffAuth := middleware.AuthMiddleware(codec, staffRepo)
	customerAuth := middleware.CustomerAuthMiddleware(codec, customerRepo)

	v1 := router.Group("/api/v1")
	{
		adminGroup := v1.Group("/admin")
		{
			staffHandler.RegisterRoutes(adminGroup)

			protected := adminGroup.Group("")
			protected.Use(staffAuth)
			{
				staffHandler.RegisterProtectedRoutes(protected)

				admin := protected.Group("")
				admin.Use(middleware.AdminOnly())
				{
					staffHandler.RegisterAdminRoutes(admin)
				}
			}
		}

		userGroup := v1.Group("/user")
		{
			customerHandler.RegisterRoutes(userGroup)

			authed := userGroup.Group("")
			authed.Use(customerAuth)
			{
				customerHandler.RegisterProtectedRoutes(authed)
			}
		}

		menuGroup := v1.Group("/menu")
		{
			menuHandler.RegisterRoutes(menuGroup)

			menuAdmin := menuGroup.Group("")
			menuAdmin.Use(staffAuth, middleware.AdminOnly())
			{
				menuHandler.RegisterAdminRoutes(menuAdmin)
			}
		}
	}

	logger.Info("All routes initialized")

	return router, &Services{
		Staff:    staffService,
		Customer: customerService,
		Menu:     menuService,
	}
}
