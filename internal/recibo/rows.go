// Package recibo maps calculation results into the ordered display rows of
// a pay estimate. Which concepts appear and which column each amount is
// routed to is display policy owned here, not by the calculation service.
package recibo

import "github.com/ldamico/sueldos-comercio/internal/domain"

type column int

const (
	remunerativo column = iota
	noRemunerativo // non-remunerative for monthly, indemnizable for final
	deduccion
)

// regla is one line of a breakdown: a label, the column its amount routes
// to, and whether the line shows even when the amount is zero.
type regla[T any] struct {
	concepto string
	col      column
	monto    func(*T) float64
	siempre  bool
}

// buildRows walks a rule table in order, skipping zero-valued optional
// lines and routing each amount into exactly one column.
func buildRows[T any](res *T, reglas []regla[T]) []domain.DisplayRow {
	rows := make([]domain.DisplayRow, 0, len(reglas))
	for _, rg := range reglas {
		v := rg.monto(res)
		if v == 0 && !rg.siempre {
			continue
		}
		row := domain.DisplayRow{Concepto: rg.concepto}
		switch rg.col {
		case remunerativo:
			row.Remunerativo = v
		case noRemunerativo:
			row.NoRemunerativo = v
		case deduccion:
			row.Deduccion = v
		}
		rows = append(rows, row)
	}
	return rows
}

// reglasMensual is the fixed line order of a monthly estimate. Básico,
// Presentismo and the four core deductions always print; the rest only
// when the service returned a non-zero amount.
var reglasMensual = []regla[domain.ResultadoMensual]{
	{"Básico", remunerativo, func(r *domain.ResultadoMensual) float64 { return r.Escala.Basico }, true},
	{"Antigüedad", remunerativo, func(r *domain.ResultadoMensual) float64 { return r.Conceptos.AntigRem }, false},
	{"Presentismo", remunerativo, func(r *domain.ResultadoMensual) float64 { return r.Conceptos.PresentismoRem }, true},
	{"SAC proporcional", remunerativo, func(r *domain.ResultadoMensual) float64 { return r.Conceptos.SACRem }, false},
	{"No Remunerativo (Acuerdo)", noRemunerativo, func(r *domain.ResultadoMensual) float64 { return r.Escala.NoRem }, false},
	{"Suma Fija No Remunerativa", noRemunerativo, func(r *domain.ResultadoMensual) float64 { return r.Escala.SumaFija }, false},
	{"Antigüedad s/ No Remunerativo", noRemunerativo, func(r *domain.ResultadoMensual) float64 { return r.Conceptos.AntigNR }, false},
	{"Presentismo s/ No Remunerativo", noRemunerativo, func(r *domain.ResultadoMensual) float64 { return r.Conceptos.PresentismoNR }, false},
	{"SAC s/ No Remunerativo", noRemunerativo, func(r *domain.ResultadoMensual) float64 { return r.Conceptos.SACNR }, false},
	{"Jubilación 11%", deduccion, func(r *domain.ResultadoMensual) float64 { return r.Descuentos.Jubilacion11 }, true},
	{"Ley 19.032 (PAMI) 3%", deduccion, func(r *domain.ResultadoMensual) float64 { return r.Descuentos.PAMI3 }, true},
	{"Obra Social 3%", deduccion, func(r *domain.ResultadoMensual) float64 { return r.Descuentos.ObraSocial3 }, true},
	{"FAECYS 0,5%", deduccion, func(r *domain.ResultadoMensual) float64 { return r.Descuentos.FAECYS05 }, true},
	{"Sindicato", deduccion, func(r *domain.ResultadoMensual) float64 { return r.Descuentos.Sindicato }, false},
	{"OSECAC $100", deduccion, func(r *domain.ResultadoMensual) float64 { return r.Descuentos.Osecac100 }, false},
	{"Adelanto de sueldo", deduccion, func(r *domain.ResultadoMensual) float64 { return r.Descuentos.Adelanto }, false},
}

// reglasFinal is the fixed line order of a final settlement. Every line is
// optional and every amount lands in the indemnizable column; a settlement
// never shows a remunerative or deduction breakdown.
var reglasFinal = []regla[domain.ResultadoFinal]{
	{"Vacaciones no gozadas", noRemunerativo, func(r *domain.ResultadoFinal) float64 { return r.Conceptos.VacNoGozadas }, false},
	{"SAC s/ Vacaciones", noRemunerativo, func(r *domain.ResultadoFinal) float64 { return r.Conceptos.SACVac }, false},
	{"Indemnización Art. 245", noRemunerativo, func(r *domain.ResultadoFinal) float64 { return r.Conceptos.Art245 }, false},
	{"Indemnización Art. 248", noRemunerativo, func(r *domain.ResultadoFinal) float64 { return r.Conceptos.Art248 }, false},
	{"Preaviso", noRemunerativo, func(r *domain.ResultadoFinal) float64 { return r.Conceptos.Preaviso }, false},
	{"SAC s/ Preaviso", noRemunerativo, func(r *domain.ResultadoFinal) float64 { return r.Conceptos.SACPreaviso }, false},
}

// RowsMensual builds the display rows of a monthly result.
func RowsMensual(res *domain.ResultadoMensual) []domain.DisplayRow {
	return buildRows(res, reglasMensual)
}

// RowsFinal builds the display rows of a final-settlement result.
func RowsFinal(res *domain.ResultadoFinal) []domain.DisplayRow {
	return buildRows(res, reglasFinal)
}
