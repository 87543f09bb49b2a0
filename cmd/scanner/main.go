package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/scanlens/backend/config"
	"github.com/scanlens/backend/internal/domain"
	"github.com/scanlens/backend/internal/infrastructure/provider"
	"github.com/scanlens/backend/internal/usecase"
)

// keyboardEngine adapts wedge-scanner input to the scan engine contract. Each
// stdin line is already a completed decode, so there is no pipeline to stop.
type keyboardEngine struct{}

func (keyboardEngine) Stop(ctx context.Context) error { return nil }

// consoleSink renders lookup lifecycle updates on stdout.
type consoleSink struct{}

func (consoleSink) ShowLoading(barcode domain.Barcode) {
	fmt.Printf("Looking up %s...\n", barcode)
}

func (consoleSink) ShowResult(result domain.LookupResult) {
	switch result.Status {
	case domain.StatusFound:
		out, err := json.MarshalIndent(result.Product, "", "  ")
		if err != nil {
			fmt.Printf("Found: %s\n", result.Product.Title)
			return
		}
		fmt.Println(string(out))
	case domain.StatusNotFound:
		fmt.Printf("No product found (%s)\n", result.Reason)
	default:
		fmt.Printf("Lookup failed [%s]: %s\n", result.Kind, result.Message)
	}
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	adapter, search, err := provider.NewAdapter(cfg)
	if err != nil {
		log.Fatalf("Failed to build provider adapter: %v", err)
	}

	gateway := usecase.NewLookupGateway(adapter, search)
	controller := usecase.NewScanController(keyboardEngine{}, gateway, consoleSink{})

	log.Printf("Active provider: %s", gateway.Provider())
	fmt.Println("Scan or type a barcode and press enter (Ctrl-D to quit):")

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		// One scan session per line: arm, decode, then reset so the same
		// code can be looked up again on the next line.
		controller.Start()
		controller.HandleDecode(ctx, text, "keyboard")
		controller.Reset()
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}
}

func init() {
	// Keep log output off stdout so results stay pipeable
	log.SetFlags(log.Ldate | log.Ltime)
	log.SetOutput(os.Stderr)
}
