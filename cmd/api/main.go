package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"option-pricer/internal/api/handlers"
	"option-pricer/internal/api/middleware"
	"option-pricer/internal/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", *cfgPath, err)
		}
		cfg = loaded
	}

	// Environment overrides for container deployments.
	if port := os.Getenv("API_PORT"); port != "" {
		cfg.Server.Port = port
	}
	if os.Getenv("API_ENV") == "production" {
		cfg.Server.Mode = "release"
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	priceHandler := handlers.NewPriceHandler()
	payoffHandler := handlers.NewPayoffHandler()
	formHandler := handlers.NewFormHandler(cfg.Defaults)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Interactive HTML form
	router.GET("/", formHandler.Show)
	router.POST("/", formHandler.Price)

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/price/lattice", priceHandler.RunLattice)
		api.POST("/price/montecarlo", priceHandler.RunMonteCarlo)
		api.GET("/payoffs", payoffHandler.ListPayoffs)
	}

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
