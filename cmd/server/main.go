package main

import (
	"log"

	"neet-rank-predictor/internal/config"
	"neet-rank-predictor/internal/handlers"
	"neet-rank-predictor/internal/middleware"
	"neet-rank-predictor/internal/quizdata"
	"neet-rank-predictor/internal/services"

	_ "neet-rank-predictor/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           NEET Rank Predictor API
// @version         1.0
// @description     Performance analysis, insights and rank prediction from NEET practice quiz data
// @host            localhost:8000
// @BasePath        /

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	client := quizdata.NewClient(cfg.DataDir)
	missing, err := client.CheckDataDir()
	if err != nil {
		log.Fatalf("failed to check data directory: %v", err)
	}
	if len(missing) > 0 {
		log.Printf("data directory %s is missing %v, affected reports will be empty", cfg.DataDir, missing)
	}

	rankTable, err := config.LoadRankTable(cfg.RankTablePath)
	if err != nil {
		log.Fatalf("failed to load rank table: %v", err)
	}

	reportService := services.NewReportService(client, rankTable)

	systemHandler := handlers.NewSystemHandler(client)
	reportHandler := handlers.NewReportHandler(reportService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
	}))
	r.Use(middleware.RequestID())

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	handlers.RegisterRoutes(r, systemHandler, reportHandler)

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
