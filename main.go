package main

import (
	"log"

	"hotelmate/config"
	"hotelmate/jobs"
	"hotelmate/routes"
	"hotelmate/services"
	"hotelmate/services/logger"
	"hotelmate/services/notification"
)

func main() {
	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	appLogger := logger.NewDefaultLogger(logger.ParseLevel(config.GetEnv("LOG_LEVEL")))

	var cache services.Cache = services.NewMemoryCache()
	if config.RedisClient != nil {
		cache = services.NewRedisCache(config.RedisClient)
	}

	gridService := services.NewRateGridService(services.RateGridServiceOptions{
		DB:       config.DB,
		Cache:    cache,
		Notifier: notification.NewMelodyService(m),
		Logger:   appLogger,
	})

	if err := jobs.InitCronJobs(c, gridService); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	secret := config.JWTSecret()
	if len(secret) == 0 {
		log.Println("Warning: JWT_SECRET chưa được cấu hình, các API ghi sẽ từ chối mọi token")
	}

	routes.SetupRoutes(router, routes.Deps{
		Grid:      gridService,
		Melody:    m,
		JWTSecret: secret,
		Logger:    appLogger,
	})

	port := config.GetEnvDefault("PORT", "8083")
	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
