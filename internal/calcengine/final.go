package calcengine

import (
	"fmt"
	"time"

	"github.com/ldamico/sueldos-comercio/internal/domain"
)

const fechaISO = "2006-01-02"

// AniosIndemnizatorios counts the years for Art. 245 purposes: each
// complete year plus one more when the trailing fraction reaches three
// months.
func AniosIndemnizatorios(ingreso, egreso time.Time) int {
	if !egreso.After(ingreso) {
		return 0
	}

	years := egreso.Year() - ingreso.Year()
	anniv := time.Date(ingreso.Year()+years, ingreso.Month(), ingreso.Day(), 0, 0, 0, 0, time.UTC)
	if egreso.Before(anniv) {
		years--
		anniv = time.Date(ingreso.Year()+years, ingreso.Month(), ingreso.Day(), 0, 0, 0, 0, time.UTC)
	}

	months := (egreso.Year()-anniv.Year())*12 + int(egreso.Month()-anniv.Month())
	if egreso.Day() < anniv.Day() {
		months--
	}
	if months >= 3 {
		years++
	}
	return years
}

// Final computes a final-settlement breakdown. Dates arrive as YYYY-MM-DD
// tokens; a malformed non-empty date is a calculation failure, not a
// silent default.
func Final(in *domain.EntradaFinal) (*domain.ResultadoFinal, error) {
	tipo := in.Tipo
	if tipo == "" {
		tipo = domain.TipoDespidoSinCausa
	}

	anios := 0
	if in.FechaIngreso != "" && in.FechaEgreso != "" {
		ingreso, err := time.Parse(fechaISO, in.FechaIngreso)
		if err != nil {
			return nil, fmt.Errorf("fecha_ingreso: %w", err)
		}
		egreso, err := time.Parse(fechaISO, in.FechaEgreso)
		if err != nil {
			return nil, fmt.Errorf("fecha_egreso: %w", err)
		}
		anios = AniosIndemnizatorios(ingreso, egreso)
	}

	var art245, art248 float64
	if tipo == domain.TipoDespidoSinCausa {
		art245 = in.MejorSalario * float64(anios)
	}
	// Art. 248: half the Art. 245 indemnity, same base and years.
	if tipo == domain.TipoFallecimiento {
		art248 = in.MejorSalario * float64(anios) * 0.5
	}

	var vacInd, sacVac float64
	if in.VacNoGozadasDias > 0 {
		vacInd = in.MejorSalario / 25 * in.VacNoGozadasDias
		if in.IncluirSACVac {
			sacVac = vacInd / 12
		}
	}

	var preaviso, sacPre float64
	if tipo == domain.TipoDespidoSinCausa && in.PreavisoDias > 0 {
		preaviso = in.MejorSalario * in.PreavisoDias / 30
		if in.IncluirSACPreaviso {
			sacPre = preaviso / 12
		}
	}

	total := art245 + art248 + vacInd + sacVac + preaviso + sacPre

	return &domain.ResultadoFinal{
		Meta: domain.MetaFinal{
			Tipo:                 tipo,
			AniosIndemnizatorios: anios,
		},
		Conceptos: domain.ConceptosFinal{
			VacNoGozadas: vacInd,
			SACVac:       sacVac,
			Art245:       art245,
			Art248:       art248,
			Preaviso:     preaviso,
			SACPreaviso:  sacPre,
		},
		Totales: domain.TotalesFinal{
			TotalIndemnizatorio: total,
			Neto:                total,
		},
	}, nil
}
