package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/moonkaicuzui/hwk-loadplan/internal/cronjob"
	"github.com/moonkaicuzui/hwk-loadplan/internal/routes"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("no .env file found, using process environment")
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
