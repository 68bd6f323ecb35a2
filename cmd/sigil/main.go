package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/aussiebroadwan/sigil/internal/openpgp/app"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := app.LoadConfig()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
