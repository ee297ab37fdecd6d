// Command maestro-import loads a maestro JSON export into the SQLite scale
// master used by the calculation stub. Re-running replaces the whole table.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	json "github.com/goccy/go-json"
	"github.com/joho/godotenv"

	"github.com/ldamico/sueldos-comercio/internal/adapters/sqlite"
	"github.com/ldamico/sueldos-comercio/internal/domain"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		slog.Warn("error loading .env file", "err", err)
	}

	file := flag.String("file", "maestro.json", "maestro export to import")
	flag.Parse()

	dsn := os.Getenv("DB_PATH")
	if dsn == "" {
		dsn = "escalas.db"
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("failed to read maestro: %v", err)
	}
	var maestro struct {
		Escala []domain.FilaEscala `json:"escala"`
	}
	if err := json.Unmarshal(raw, &maestro); err != nil {
		log.Fatalf("failed to parse maestro: %v", err)
	}
	if len(maestro.Escala) == 0 {
		log.Fatalf("maestro %s has no escala rows", *file)
	}

	repo, err := sqlite.New(dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer repo.Close()

	if err := repo.Replace(context.Background(), maestro.Escala); err != nil {
		log.Fatalf("import failed: %v", err)
	}
	log.Printf("Imported %d scale rows from %s into %s", len(maestro.Escala), *file, dsn)
}
