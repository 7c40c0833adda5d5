package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RedEye75/SmartZone-Server/controllers"
	"github.com/RedEye75/SmartZone-Server/infra"
	"github.com/RedEye75/SmartZone-Server/middlewares"
	"github.com/RedEye75/SmartZone-Server/repositories"
	"github.com/RedEye75/SmartZone-Server/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

func setupRouter(db *mongo.Database, cfg *infra.Config, logger zerolog.Logger) *gin.Engine {
	userRepository := repositories.NewUserRepository(db, logger)
	productRepository := repositories.NewProductRepository(db, logger)
	categoryRepository := repositories.NewCategoryRepository(db, logger)
	bookingRepository := repositories.NewBookingRepository(db, logger)

	authService := services.NewAuthService(userRepository, cfg.AccessToken, cfg.TokenTTL)
	userService := services.NewUserService(userRepository)
	productService := services.NewProductService(productRepository)
	categoryService := services.NewCategoryService(categoryRepository)
	bookingService := services.NewBookingService(bookingRepository)

	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(userService)
	productController := controllers.NewProductController(productService)
	categoryController := controllers.NewCategoryController(categoryService)
	bookingController := controllers.NewBookingController(bookingService)

	r := gin.Default()
	r.Use(cors.Default())

	verified := r.Group("", middlewares.VerifyJWT(authService))
	admin := r.Group("", middlewares.VerifyJWT(authService), middlewares.AdminOnly(userService))

	r.GET("/", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "smartzone server running")
	})

	r.GET("/categories", categoryController.FindAll)
	r.GET("/brandCategory", categoryController.FindNames)
	r.GET("/products", productController.FindAll)
	r.GET("/product/:id", productController.FindByCategory)
	r.GET("/jwt", authController.GetToken)
	r.GET("/buyer", userController.FindBuyers)
	r.GET("/seller", userController.FindSellers)
	r.GET("/users", userController.FindAll)
	r.POST("/users", userController.Create)
	r.GET("/users/admin/:email", userController.IsAdmin)
	r.GET("/users/seller/:email", userController.IsSeller)
	r.POST("/bookings", bookingController.Create)

	verified.GET("/bookings", bookingController.FindByEmail)

	// The upstream service registered GET /products a second time behind
	// the admin guard; gin rejects duplicate registrations, so the strict
	// variant lives on its own path until the intended split is confirmed.
	admin.GET("/products/admin", productController.FindAll)
	admin.POST("/products", productController.Create)
	admin.DELETE("/products/:id", productController.Delete)
	admin.PUT("/users/admin/:id", userController.Verify)
	admin.DELETE("/seller/:id", userController.Delete)
	admin.DELETE("/buyer/:id", userController.Delete)

	return r
}

func main() {
	infra.Initialize()

	cfg, err := infra.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := infra.NewLogger(cfg)

	client, db, err := infra.SetupDB(context.Background(), cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to set up database")
	}

	r := setupRouter(db, cfg, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
	}
	if err := client.Disconnect(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to disconnect from database")
	}
	logger.Info().Msg("server exited")
}
