package main

import (
	"context"

	"hoteldesk/config"
	"hoteldesk/di"
	"hoteldesk/shared/logger"
)

func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.SetLogLevel(cfg)

	desk := di.InitializeDesk()
	desk.Run(context.Background())
}
