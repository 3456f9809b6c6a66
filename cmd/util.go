package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/rbeaulieu03/portfolio-simulator/api"
	"github.com/rbeaulieu03/portfolio-simulator/internal/repository"
	"github.com/rbeaulieu03/portfolio-simulator/internal/service"
	"github.com/rbeaulieu03/portfolio-simulator/internal/util"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	priceRepository := repository.NewAdjustedPriceRepository(dbConn)
	simulationRequestRepository := repository.NewSimulationRequestRepository()
	priceService := service.NewPriceService(dbConn, priceRepository)

	return &api.ApiHandler{
		Db:                          dbConn,
		PriceService:                priceService,
		SimulationRequestRepository: simulationRequestRepository,
	}, nil
}
