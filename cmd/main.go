package main

import (
	"log"
	"os"
	"time"

	"jnv-po/internal/cronjob"
	"jnv-po/internal/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}

	router := gin.Default()
	routes.RegisterRoutes(router)

	cronjob.Start()

	port := os.Getenv("port")
	log.Printf("Starting server on port: %s ,as time: %s\n", port, time.Now())
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Could not start server: %s\n", err)
	}
}
