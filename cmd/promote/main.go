package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"CivicConnectAPI/internal/config"
	"CivicConnectAPI/internal/service"
)

// Promotes an existing user to admin. Usage:
//
//	promote -email user@example.com
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	email := flag.String("email", "", "email of the user to promote")
	flag.Parse()

	if *email == "" {
		slog.Error("The -email flag is required")
		os.Exit(1)
	}

	cfg := config.LoadAppConfig()

	cfg.DBMigrate = false

	client := config.InitEnt(cfg)
	defer func() {
		if err := client.Close(); err != nil {
			slog.Error("Error closing database connection", "error", err)
		}
	}()

	userService := service.NewUserService(client, cfg)

	promoted, err := userService.PromoteToAdmin(context.Background(), *email)
	if err != nil {
		slog.Error("Failed to promote user", "error", err, "email", *email)
		os.Exit(1)
	}

	slog.Info("User promoted to admin", "userID", promoted.ID, "email", promoted.Email)
}
