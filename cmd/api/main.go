package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/helalifaker/Project-2052-sub001/internal/api/handlers"
	"github.com/helalifaker/Project-2052-sub001/internal/api/middleware"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	timeout := 25 * time.Second
	if v := os.Getenv("CALC_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Fatalf("invalid CALC_TIMEOUT %q: %v", v, err)
		}
		timeout = d
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	calcHandler := handlers.NewCalculateHandler(timeout)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	v1 := router.Group("/api/v1")
	{
		v1.POST("/calculate", calcHandler.Calculate)
		v1.POST("/sensitivity", calcHandler.Sensitivity)
	}

	log.Printf("listening on :%s (calculation timeout %s)", port, timeout)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
