package main

import (
	"log"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	app, err := NewApp()
	if err != nil {
		log.Fatalf("failed to start application: %v", err)
	}
	defer app.Close()

	app.SetupRoutes("/api/v1")

	if err := app.Start(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
