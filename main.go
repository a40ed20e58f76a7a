// @title Brazilian E-commerce Analytics API
// @version 1.0
// @description Filter-and-aggregate backend for the order analytics dashboard
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/DreKwasi/brazilian-ecom-analysis/config"
	_ "github.com/DreKwasi/brazilian-ecom-analysis/docs"
	"github.com/DreKwasi/brazilian-ecom-analysis/middleware"
	"github.com/DreKwasi/brazilian-ecom-analysis/routes"
	"github.com/DreKwasi/brazilian-ecom-analysis/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	config.InitLogger()

	// Warm the loader caches up front so the first interaction doesn't pay
	// for the parquet read. A load failure is fatal: the files are static,
	// retrying would not help. The startup load is not bounded by the
	// per-interaction budget.
	for _, addGeo := range []bool{false, true} {
		if _, err := services.LoadOrders(context.Background(), addGeo); err != nil {
			logrus.Fatalf("failed to load order dataset (add_geo=%t): %v", addGeo, err)
		}
	}
	if _, err := services.LoadCalendarNames(); err != nil {
		logrus.Fatalf("failed to load calendar names: %v", err)
	}

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))
	router.Use(middleware.RequestLogger())

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(100, time.Minute))

	routes.SetupAnalyticsRoutes(api)
	logrus.Info("analytics routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addr := config.ServerAddr()
	logrus.Infof("server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		logrus.Fatalf("server exited: %v", err)
	}
}
