package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/infrastructure/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	config := database.NewPostgresConfigFromEnv()

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "migrations"
	}

	if len(os.Args) > 1 && os.Args[1] == "down" {
		if err := database.RollbackMigration(config, migrationsPath); err != nil {
			log.Fatalf("rollback failed: %v", err)
		}
		log.Println("rolled back one migration")
		return
	}

	if err := database.RunMigrations(config, migrationsPath); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	log.Println("migrations applied")
}
