package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"CivicConnectAPI/internal/adapter"
	"CivicConnectAPI/internal/bootstrap"
	"CivicConnectAPI/internal/config"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.LoadAppConfig()

	client := config.InitEnt(cfg)
	defer func() {
		if err := client.Close(); err != nil {
			slog.Error("Error closing database connection", "error", err)
		}
	}()

	s3Client := config.NewS3Client(cfg)
	if s3Client == nil {
		slog.Warn("S3 client not configured, photo uploads disabled")
	}

	redisAdapter, err := adapter.NewRedisAdapter(cfg)
	if err != nil {
		slog.Warn("Redis unavailable, geocode caching disabled", "error", err)
		redisAdapter = nil
	}

	httpClient := config.NewHTTPClient()
	validate := config.NewValidator()
	chiMux := config.NewChi(cfg)

	bootstrap.Init(cfg, client, validate, s3Client, httpClient, redisAdapter, chiMux)

	addr := fmt.Sprintf(":%s", cfg.AppPort)
	slog.Info("Starting CivicConnectAPI", "port", cfg.AppPort)

	if err := http.ListenAndServe(addr, chiMux); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
