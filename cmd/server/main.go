package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/ldamico/sueldos-comercio/internal/adapters/calcsvc"
	"github.com/ldamico/sueldos-comercio/internal/handlers"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		slog.Warn("error loading .env file", "err", err)
	}
	calcURL := os.Getenv("CALC_URL")
	if calcURL == "" {
		calcURL = "http://localhost:9090"
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	h := handlers.New(calcsvc.New(calcURL))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := h.LoadMetadata(ctx); err != nil {
		// The form still starts; the failure shows up in the monthly slot.
		slog.Warn("metadata fetch failed", "url", calcURL, "err", err)
	}
	cancel()

	log.Printf("Estimador de sueldos running on http://localhost:%s", port)
	log.Printf("Calculation service: %s", calcURL)
	if err := http.ListenAndServe(":"+port, h.Routes()); err != nil {
		log.Fatal(err)
	}
}
