package main

import (
	"context"
	"log"

	"github.com/kolbask4/CollegeActivityApp/internal/app/cli"
	"github.com/kolbask4/CollegeActivityApp/internal/config"
	"github.com/kolbask4/CollegeActivityApp/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogLevel)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
