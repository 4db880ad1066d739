package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/arumugam1010/sri-Devi-snacks-sub000/docs"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/adapter/api/controller"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/adapter/api/route"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/adapter/repository"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/infrastructure/database"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/service"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/pkg/logger"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/pkg/middleware"
)

// App holds the application and its dependencies.
type App struct {
	router *gin.Engine
	db     *database.PostgresDB
	logger logger.Logger

	billController    *controller.BillController
	shopController    *controller.ShopController
	productController *controller.ProductController
	userController    *controller.UserController
}

// NewApp wires the database, repositories, services and controllers.
func NewApp() (*App, error) {
	log := logger.NewLogger()

	config := database.NewPostgresConfigFromEnv()
	db, err := database.NewPostgresDB(config)
	if err != nil {
		return nil, err
	}

	billRepo := repository.NewBillRepository(db)
	shopRepo := repository.NewShopRepository(db)
	productRepo := repository.NewProductRepository(db)
	userRepo := repository.NewUserRepository(db)

	billing := service.NewBillingService(billRepo, shopRepo, productRepo, userRepo, db, log)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	return &App{
		router:            router,
		db:                db,
		logger:            log,
		billController:    controller.NewBillController(billing, log),
		shopController:    controller.NewShopController(shopRepo, log),
		productController: controller.NewProductController(productRepo, log),
		userController:    controller.NewUserController(userRepo, log),
	}, nil
}

// SetupRoutes mounts every endpoint under basePath.
func (a *App) SetupRoutes(basePath string) {
	api := a.router.Group(basePath)

	api.GET("/health", func(c *gin.Context) {
		if err := a.db.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	route.RegisterBillRoutes(api, a.billController)
	route.RegisterShopBillRoutes(api, a.billController)
	route.RegisterShopRoutes(api, a.shopController, a.productController)
	route.RegisterProductRoutes(api, a.productController)
	route.RegisterUserRoutes(api, a.userController)

	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Start runs the HTTP server until SIGINT/SIGTERM, then drains in-flight
// requests before returning.
func (a *App) Start() error {
	addr := ":" + getEnv("SERVER_PORT", "8080")

	srv := &http.Server{
		Addr:    addr,
		Handler: a.router,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		a.logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// Close releases the application's resources.
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
