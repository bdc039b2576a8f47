package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/momentumhq/momentum-backend/internal/config"
	"github.com/momentumhq/momentum-backend/internal/handlers"
	"github.com/momentumhq/momentum-backend/internal/logger"
	"github.com/momentumhq/momentum-backend/internal/middleware"
	"github.com/momentumhq/momentum-backend/internal/repository"
	"github.com/momentumhq/momentum-backend/internal/scheduler"
	"github.com/momentumhq/momentum-backend/internal/service"
	"github.com/momentumhq/momentum-backend/pkg/oracle"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	// Initialize logging
	logCfg := logger.DefaultConfig()
	if lvl := os.Getenv("MOMENTUM_LOG_LEVEL"); lvl != "" {
		logCfg.Level = logger.ParseLevel(lvl)
	}
	if cfg.Server.Env != "production" {
		logCfg.Format = "text"
	}
	logger.SetDefault(logger.New(logCfg))

	logger.Info("starting Momentum API server",
		logger.String("env", cfg.Server.Env),
		logger.String("database_path", cfg.Database.Path),
	)

	// Open SQLite storage
	db, err := repository.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	pointRepo := repository.NewDataPointRepository(db)
	insightRepo := repository.NewInsightRepository(db)
	reportRepo := repository.NewReportRepository(db)
	goalRepo := repository.NewGoalRepository(db)

	// Initialize the remote oracle when configured
	var oracleClient *oracle.Client
	if cfg.Oracle.Enabled {
		oracleClient = oracle.NewClient(cfg.Oracle.URL, cfg.Oracle.APIKey, cfg.Oracle.Timeout)
		logger.Info("analysis oracle enabled", logger.String("url", cfg.Oracle.URL))
	}

	// Initialize services
	pointService := service.NewDataPointService(pointRepo)
	analysisService := service.NewAnalysisService(pointService, insightRepo, oracleClient)
	reportService := service.NewReportService(pointRepo, insightRepo, reportRepo)
	insightService := service.NewInsightService(insightRepo)
	goalService := service.NewGoalService(goalRepo)

	// Initialize handlers
	pointHandler := handlers.NewDataPointHandler(pointService)
	analyticsHandler := handlers.NewAnalyticsHandler(pointService, analysisService)
	insightsHandler := handlers.NewInsightsHandler(insightService)
	reportHandler := handlers.NewReportHandler(reportService)
	goalHandler := handlers.NewGoalHandler(goalService)

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimit())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Data point routes
		v1.POST("/datapoints", pointHandler.SubmitMeasurement)
		v1.GET("/datapoints", pointHandler.GetDataPoints)
		v1.GET("/datapoints/range", pointHandler.GetDataPointRange)

		// Analytics routes
		v1.GET("/analytics/score", analyticsHandler.GetScore)
		v1.GET("/analytics/trends", analyticsHandler.GetTrends)
		v1.GET("/analytics/patterns", analyticsHandler.GetPatterns)
		v1.GET("/analytics/analyze", analyticsHandler.Analyze)

		// Insight routes
		v1.GET("/insights", insightsHandler.GetInsights)
		v1.POST("/insights/:id/read", insightsHandler.MarkRead)

		// Report routes
		v1.GET("/reports", reportHandler.ListReports)
		v1.POST("/reports", middleware.RateLimitReports(), reportHandler.GenerateReport)
		v1.GET("/reports/:id", reportHandler.GetReport)
		v1.GET("/reports/:id/export", reportHandler.ExportReport)

		// Goal routes
		v1.GET("/goals", goalHandler.ListGoals)
		v1.POST("/goals", goalHandler.CreateGoal)
		v1.GET("/goals/:id", goalHandler.GetGoal)
		v1.PUT("/goals/:id/progress", goalHandler.UpdateProgress)
		v1.POST("/goals/:id/archive", goalHandler.ArchiveGoal)
	}

	// Start the report scheduler when enabled
	if cfg.Scheduler.Enabled {
		sched := scheduler.New(cfg.Scheduler, reportService)
		if err := sched.Start(); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}
		defer sched.Stop()
	}

	logger.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
