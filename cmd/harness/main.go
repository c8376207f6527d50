package main

import (
	"rentdesk/config"
	"rentdesk/shared/logger"
)

func main() {
	logger.InitLogger()

	cfg := config.Get()
	logger.Configure(cfg)

	Execute()
}
