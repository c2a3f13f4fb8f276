package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"yourtour/cmd/fx/account_fx"
	"yourtour/cmd/fx/controllers_fx"
	"yourtour/cmd/fx/db_fx"
	"yourtour/cmd/fx/facts_fx"
	"yourtour/cmd/fx/memcache_fx"
	"yourtour/cmd/fx/navigation_fx"
	"yourtour/cmd/fx/trips_fx"
	"yourtour/cmd/fx/visits_fx"
	"yourtour/internal/api/controllers"
	"yourtour/internal/infra"
	"yourtour/internal/seed"
	"yourtour/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		navigation_fx.Module,
		facts_fx.Module,
		trips_fx.Module,
		visits_fx.Module,
		controllers_fx.Module,

		fx.Invoke(RunMigrations),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func RunMigrations(db *gorm.DB) error {
	return seed.Run(db)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	navigationController *controllers.NavigationController,
	visitController *controllers.VisitController,
	historyController *controllers.HistoryController,
	factsController *controllers.FactsController,
	badgeController *controllers.BadgeController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		navigationController,
		visitController,
		historyController,
		factsController,
		badgeController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	navigationController *controllers.NavigationController,
	visitController *controllers.VisitController,
	historyController *controllers.HistoryController,
	factsController *controllers.FactsController,
	badgeController *controllers.BadgeController) {

	authGroup := r.Group("/auth")
	authGroup.POST("/register", accountController.Register)
	authGroup.POST("/login", accountController.Login)
	authGroup.POST("/refresh", accountController.Refresh)
	authGroup.POST("/logout", accountController.Logout)

	profileGroup := r.Group("/profile", middleware.JWTAuthMiddleware())
	profileGroup.GET("", accountController.GetProfile)
	profileGroup.POST("/update", accountController.UpdateProfile)

	navigationGroup := r.Group("/navigation", middleware.JWTAuthMiddleware())
	navigationGroup.GET("/geocode/:address", navigationController.Geocode)
	navigationGroup.GET("/reverse", navigationController.ReverseGeocode)
	navigationGroup.GET("/nearest-city", navigationController.NearestCity)
	navigationGroup.POST("/directions", navigationController.Directions)

	visitsGroup := r.Group("/visits", middleware.JWTAuthMiddleware())
	visitsGroup.POST("", visitController.RecordVisit)

	historyGroup := r.Group("/history", middleware.JWTAuthMiddleware())
	historyGroup.GET("", historyController.ListTrips)
	historyGroup.GET("/trip/:id", historyController.TripCities)
	historyGroup.GET("/location/:id", historyController.GetLocation)
	historyGroup.GET("/location/:id/similar", historyController.SimilarLocations)

	generateGroup := r.Group("/generate", middleware.JWTAuthMiddleware())
	generateGroup.GET("/city/:city/:state", factsController.GenerateCityFacts)

	badgesGroup := r.Group("/badges", middleware.JWTAuthMiddleware())
	badgesGroup.GET("", badgeController.ListBadges)
}
