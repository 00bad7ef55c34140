package main

import (
	"log"

	"gosearch/models"
	"gosearch/web"

	"github.com/rohanthewiz/logger"
)

func main() {
	cfg, err := models.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	logger.SetLogLevel(cfg.LogLevel)

	// LogSearcher only logs each query; plug a real Searcher in here
	srv := web.NewServer(cfg, models.LogSearcher{})
	logger.Info("Starting GoSearch Web", "address", cfg.Address)
	log.Fatal(web.Run(srv, cfg))
}
