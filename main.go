package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"spacare-backend/repository"
	"spacare-backend/routes"
	"spacare-backend/services"
	"spacare-backend/storage"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	dbPath := os.Getenv("SPA_DB_PATH")
	if dbPath == "" {
		dbPath = "spa.db"
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	// Seed the default catalog on first run
	repository.NewPackages(store).GetAll()

	reminders := services.NewReminderService(store)
	reminders.StartScheduler()
	defer reminders.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(store)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
