package main

import (
	"bytestudio_backend/internal/app"
	"bytestudio_backend/internal/logger"
)

func main() {
	if err := app.Run(); err != nil {
		logger.Fatal("server exited", "error", err)
	}
}
