package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"ngo-cms-backend/pkg/container"
	"ngo-cms-backend/pkg/logger"
)

func main() {
	// .env chỉ tồn tại ở local dev; production dùng real env vars
	_ = godotenv.Load()

	env := os.Getenv("APP_ENV")
	logger.Init(env)

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	c, err := container.NewContainer(context.Background())
	if err != nil {
		logger.Error("failed to initialize application", err)
		os.Exit(1)
	}
	defer c.Cleanup()

	router := SetupRouter(c)

	if err := Serve(router, c.Config.App.Port); err != nil {
		logger.Error("server exited with error", err)
		os.Exit(1)
	}
}
