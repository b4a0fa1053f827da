package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"

	"github.com/mikz/CSOB-Info24-webhook/internal/api"
	"github.com/mikz/CSOB-Info24-webhook/internal/config"
	"github.com/mikz/CSOB-Info24-webhook/internal/models"
	"github.com/mikz/CSOB-Info24-webhook/internal/parser"
	"github.com/mikz/CSOB-Info24-webhook/internal/webhook"
)

func main() {
	// File mode: extract transactions from saved email bodies and print them
	// as JSON. Useful for checking captured emails against the patterns.
	if len(os.Args) > 1 {
		for _, path := range os.Args[1:] {
			if err := processFile(path); err != nil {
				fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", path, err)
				os.Exit(1)
			}
		}
		return
	}

	cfg := config.Load()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           cfg.LogLevel,
		Prefix:          "info24",
	})

	hook := webhook.New(cfg.WebhookURL)
	handler := api.NewHandler(hook, logger)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	handler.RegisterRoutes(app)

	logger.Info("listening", "addr", cfg.ListenAddr)
	if err := app.Listen(cfg.ListenAddr); err != nil {
		logger.Fatal("server stopped", "err", err)
	}
}

func processFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	transactions, err := parser.Extract(string(data))
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	// nil marshals to JSON null, not []
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	out, err := json.MarshalIndent(transactions, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
