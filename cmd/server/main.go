package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/adrianocesar/processos-backend-go/internal/api"
	"github.com/adrianocesar/processos-backend-go/internal/config"
	"github.com/adrianocesar/processos-backend-go/internal/dataset"
	"github.com/adrianocesar/processos-backend-go/internal/geo"
	"github.com/adrianocesar/processos-backend-go/internal/handler"
	"github.com/adrianocesar/processos-backend-go/internal/service"
)

func main() {
	// .env is optional; real environment variables take precedence.
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment from .env")
	}

	cfg := config.Load()

	// A missing or unparsable source is terminal: no charts can render
	// without it, so refuse to start rather than serve an empty dashboard.
	records, err := dataset.Load(cfg.DataPath)
	if err != nil {
		log.Fatal("Failed to load record source: ", err)
	}

	resolver := geo.NewResolver(geo.DefaultTribunalExclusions())
	binner := geo.NewBinner(resolver, geo.DefaultMunicipalityIndex())
	svc := service.NewDashboardService(records, binner)

	router := api.SetupRouter(handler.NewDashboardHandler(svc))

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
