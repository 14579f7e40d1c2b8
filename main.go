package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/chickens/chatterbox/config"
	"github.com/chickens/chatterbox/models"
	"github.com/chickens/chatterbox/routes"
	"github.com/chickens/chatterbox/utils"
)

func main() {
	// .env is a local-development convenience; the real environment wins.
	_ = godotenv.Load()

	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(&models.User{}, &models.Post{}, &models.Comment{}, &models.ChatMessage{})

	if err := os.MkdirAll(cfg.AvatarDir, 0o755); err != nil {
		utils.Sugar.Fatalf("failed to create avatar directory %s: %v", cfg.AvatarDir, err)
	}

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
