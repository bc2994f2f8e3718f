package main

import (
	"flag"
	"log"

	"github.com/01moynul/inventory-golang/internal/database"
	"github.com/joho/godotenv"
)

// Standalone schema management tool: creates the tables by default, or
// drops / resets them with -action.
func main() {
	action := flag.String("action", "create", "one of: create, drop, reset")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	db, err := database.OpenDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	switch *action {
	case "create":
		err = database.CreateTables(db)
	case "drop":
		err = database.DropTables(db)
	case "reset":
		err = database.ResetTables(db)
	default:
		log.Fatalf("Unknown action %q (want create, drop or reset)", *action)
	}

	if err != nil {
		log.Fatalf("Database initialization failed: %v", err)
	}
	log.Println("Database initialization complete")
}
