// Package calcengine implements the payroll arithmetic served by the stub
// calculation service: the monthly remuneration breakdown and the
// final-settlement breakdown under the Comercio labor agreement.
package calcengine

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/ldamico/sueldos-comercio/internal/domain"
)

// ErrEscalaNoEncontrada is returned when no scale row matches the selected
// rama/agrupamiento/categoría/mes. The stub service maps it to a 422 with
// the message as detail.
var ErrEscalaNoEncontrada = errors.New("No se encontro escala para los parametros seleccionados")

// EscalaFinder looks up a single scale row. Satisfied by
// ports.EscalaRepository.
type EscalaFinder interface {
	Find(ctx context.Context, rama, agrup, categoria, mes string) (*domain.FilaEscala, error)
}

// MesesSemestre returns how many months of the current semester have
// elapsed at mes (YYYY-MM): Jan..Jun map to 1..6, Jul..Dec map to 1..6.
// Unparsable input counts as 1.
func MesesSemestre(mes string) int {
	if len(mes) < 7 {
		return 1
	}
	m, err := strconv.Atoi(mes[5:7])
	if err != nil || m < 1 || m > 12 {
		return 1
	}
	if m <= 6 {
		return m
	}
	return m - 6
}

// PorcentajeAntiguedad returns the seniority percentage for a rama:
// Agua Potable pays 2% per year, every other rama 1% per year.
func PorcentajeAntiguedad(rama string, anios float64) float64 {
	if strings.EqualFold(strings.TrimSpace(rama), "AGUA POTABLE") {
		return 0.02 * anios
	}
	return 0.01 * anios
}

// Mensual computes a monthly remuneration breakdown from the scale row the
// selection points at.
func Mensual(ctx context.Context, escalas EscalaFinder, in *domain.EntradaMensual) (*domain.ResultadoMensual, error) {
	fila, err := escalas.Find(ctx, in.Rama, in.Agrup, in.Categoria, in.Mes)
	if err != nil {
		return nil, err
	}
	if fila == nil {
		return nil, ErrEscalaNoEncontrada
	}

	basico := fila.Basico
	noRem := fila.NoRem
	sumaFija := fila.SumaFija
	nrTotal := noRem + sumaFija

	apct := PorcentajeAntiguedad(in.Rama, in.AniosAntig)
	antigRem := basico * apct
	antigNR := nrTotal * apct

	presRem := (basico + antigRem) / 12
	presNR := (nrTotal + antigNR) / 12

	remBase := basico + antigRem + presRem
	nrBase := nrTotal + antigNR + presNR

	mesesSem := MesesSemestre(in.Mes)
	var sacRem, sacNR float64
	if in.IncluirSAC {
		factor := float64(mesesSem) / 12
		sacRem = remBase * factor
		sacNR = nrBase * factor
	}

	// Deduction bases: jubilación and PAMI run on the remunerative base
	// only; obra social, FAECYS and sindicato also reach the
	// non-remunerative amounts and the proportional SAC.
	baseSindical := remBase + nrBase + sacRem + sacNR

	jub := remBase * 0.11
	pami := remBase * 0.03
	faecys := baseSindical * 0.005
	var sindicato float64
	if in.Afiliado && in.SindPct > 0 {
		sindicato = baseSindical * in.SindPct / 100
	}
	var obraSocial, osecac100 float64
	if in.Osecac {
		obraSocial = baseSindical * 0.03
		osecac100 = 100
	}

	descuentos := jub + pami + faecys + sindicato + obraSocial + osecac100 + in.Adelanto

	totalRem := remBase + sacRem
	totalNR := nrBase + sacNR

	return &domain.ResultadoMensual{
		Escala: domain.EscalaMensual{Basico: basico, NoRem: noRem, SumaFija: sumaFija},
		Conceptos: domain.ConceptosMensual{
			AntigRem:       antigRem,
			AntigNR:        antigNR,
			PresentismoRem: presRem,
			PresentismoNR:  presNR,
			SACRem:         sacRem,
			SACNR:          sacNR,
		},
		Totales: domain.TotalesMensual{
			TotalRem:   totalRem,
			TotalNoRem: totalNR,
			Descuentos: descuentos,
			Neto:       totalRem + totalNR - descuentos,
		},
		Descuentos: domain.DescuentosMensual{
			Jubilacion11: jub,
			PAMI3:        pami,
			FAECYS05:     faecys,
			Sindicato:    sindicato,
			ObraSocial3:  obraSocial,
			Osecac100:    osecac100,
			Adelanto:     in.Adelanto,
		},
		Meta: domain.MetaMensual{
			MesesSemestre: mesesSem,
			IncluyeSAC:    in.IncluirSAC,
		},
	}, nil
}
