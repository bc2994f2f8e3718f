package main

import (
	"log"
	"os"

	"github.com/01moynul/inventory-golang/internal/database"
	"github.com/01moynul/inventory-golang/internal/handlers"
	"github.com/01moynul/inventory-golang/internal/routes"
	"github.com/01moynul/inventory-golang/internal/services"
	"github.com/01moynul/inventory-golang/internal/store"
	"github.com/joho/godotenv"
)

func main() {
	// --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	// --- Database Connection ---
	db, err := database.OpenDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// --- Schema Initialization ---
	if err := database.CreateTables(db); err != nil {
		log.Fatalf("Failed to initialize database schema: %v", err)
	}

	// --- Application Setup ---
	// Stores and services are constructed once here and injected into the
	// Handlers struct; no hidden shared state anywhere else.
	categoryStore := store.NewCategoryStore(db)
	productStore := store.NewProductStore(db)

	app := &handlers.Handlers{
		Categories: services.NewCategoryService(categoryStore),
		Products:   services.NewProductService(productStore, categoryStore),
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app)

	// --- Start Server ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("Starting inventory API server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
