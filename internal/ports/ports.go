package ports

import (
	"context"

	"github.com/ldamico/sueldos-comercio/internal/domain"
)

// CalculationService is the remote payroll engine boundary. The service
// owns all arithmetic and bounds checking; the form only assembles inputs
// and interprets outputs.
type CalculationService interface {
	Metadata(ctx context.Context) (*domain.Metadata, error)
	CalcularMensual(ctx context.Context, in *domain.EntradaMensual) (*domain.ResultadoMensual, error)
	CalcularFinal(ctx context.Context, in *domain.EntradaFinal) (*domain.ResultadoFinal, error)
}

// EscalaRepository defines the scale-master store behind the stub
// calculation service.
type EscalaRepository interface {
	// Replace swaps the whole scale table for a fresh import.
	Replace(ctx context.Context, filas []domain.FilaEscala) error
	// Find returns the scale row for an exact (rama, agrup, categoría,
	// mes) match, or nil when there is none.
	Find(ctx context.Context, rama, agrup, categoria, mes string) (*domain.FilaEscala, error)
	// Metadata builds the dropdown metadata (tree + months) from the
	// stored rows.
	Metadata(ctx context.Context) (*domain.Metadata, error)
}
