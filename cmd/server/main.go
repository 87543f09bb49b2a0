package main

import (
	"fmt"
	"log"
	"os"

	"github.com/scanlens/backend/config"
	httpDelivery "github.com/scanlens/backend/internal/delivery/http"
	"github.com/scanlens/backend/internal/infrastructure/barcodelookup"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting BarcodeLookup proxy v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Upstream timeout: %s", cfg.Upstream.Timeout)

	// The proxy always talks to BarcodeLookup.com directly; the API key stays
	// server-side here and never reaches a browser.
	client := barcodelookup.NewClient(
		cfg.Provider.BarcodeLookup.APIKey,
		cfg.Provider.BarcodeLookup.BaseURL,
		cfg.Upstream.Timeout,
	)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		client.SetDebug(true)
		log.Printf("BarcodeLookup client debug mode enabled")
	}

	if key := cfg.Provider.BarcodeLookup.APIKey; key != "" {
		log.Printf("BarcodeLookup API configured: %s (key: %s...)", cfg.Provider.BarcodeLookup.BaseURL, key[:min(8, len(key))])
	} else {
		log.Printf("WARNING: BarcodeLookup API configured: %s (key: NOT CONFIGURED - API calls will fail!)", cfg.Provider.BarcodeLookup.BaseURL)
	}

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(client)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)
	log.Printf("Available endpoints:")
	log.Printf("   GET  /                    - Server info")
	log.Printf("   GET  /health              - Health check")
	log.Printf("   GET  /api/lookup/:barcode - Lookup product by barcode")
	log.Printf("   GET  /api/search?q=       - Search products")

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
