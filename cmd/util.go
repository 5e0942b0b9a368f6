package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"portfoliotracker/api"
	"portfoliotracker/internal/repository"
	"portfoliotracker/internal/service"
	"portfoliotracker/internal/util"
	"portfoliotracker/pkg/fxrates"

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

	gptRepository, err := repository.NewGptRepository(secrets.ChatGPTApiKey)
	if err != nil {
		return nil, err
	}

	transactionRepository := repository.NewTransactionRepository()
	marketDataRepository := repository.NewMarketDataRepository()
	alpacaRepository := repository.NewAlpacaRepository(secrets.Alpaca.ApiKey, secrets.Alpaca.ApiSecret, secrets.Alpaca.Endpoint)
	currencyRateRepository := repository.NewCurrencyRateRepository(fxrates.NewClient())

	currencyService := service.NewCurrencyService(currencyRateRepository)
	performanceService := service.NewPerformanceService(
		dbConn,
		transactionRepository,
		marketDataRepository,
		currencyService,
	)
	transactionService := service.NewTransactionService(dbConn, transactionRepository)

	apiHandler := &api.ApiHandler{
		Db:                   dbConn,
		PerformanceService:   performanceService,
		TransactionService:   transactionService,
		MarketDataRepository: marketDataRepository,
		AlpacaRepository:     alpacaRepository,
		GptRepository:        gptRepository,
		ApiRequestRepository: repository.ApiRequestRepositoryHandler{},
		JwtDecodeToken:       secrets.Jwt,
	}

	return apiHandler, nil
}
