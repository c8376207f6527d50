package main

import (
	"os"
	"rentdesk/config"
	"rentdesk/helper"
	"rentdesk/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	logger.InitLogger()

	cfg := config.Get()
	logger.Configure(cfg)

	if len(os.Args) < 2 {
		log.Fatal().Msg("Migration direction is required: up, down, step-up or drop")
	}

	if err := helper.Runner(cfg, os.Args[1]); err != nil {
		log.Fatal().Err(err).Str("direction", os.Args[1]).Msg("Migration failed")
	}
}
