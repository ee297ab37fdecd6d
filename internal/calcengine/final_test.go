package calcengine_test

import (
	"testing"
	"time"

	"github.com/ldamico/sueldos-comercio/internal/calcengine"
	"github.com/ldamico/sueldos-comercio/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAniosIndemnizatorios(t *testing.T) {
	cases := []struct {
		name             string
		ingreso, egreso  time.Time
		want             int
	}{
		{"exact years", date(2015, 3, 1), date(2020, 3, 1), 5},
		{"fraction under three months", date(2015, 3, 1), date(2020, 5, 20), 5},
		{"fraction of exactly three months", date(2015, 3, 1), date(2020, 6, 1), 6},
		{"fraction over three months", date(2015, 3, 1), date(2020, 8, 15), 6},
		{"under one year but over three months", date(2023, 1, 10), date(2023, 7, 1), 1},
		{"under three months total", date(2024, 1, 1), date(2024, 2, 15), 0},
		{"egreso before ingreso", date(2024, 1, 1), date(2023, 1, 1), 0},
		{"same day", date(2024, 1, 1), date(2024, 1, 1), 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := calcengine.AniosIndemnizatorios(c.ingreso, c.egreso); got != c.want {
				t.Fatalf("got %d, want %d", got, c.want)
			}
		})
	}
}

func TestFinalDespidoSinCausa(t *testing.T) {
	res, err := calcengine.Final(&domain.EntradaFinal{
		Tipo:               domain.TipoDespidoSinCausa,
		FechaIngreso:       "2018-02-01",
		FechaEgreso:        "2024-08-01",
		MejorSalario:       900000,
		VacNoGozadasDias:   10,
		IncluirSACVac:      true,
		PreavisoDias:       30,
		IncluirSACPreaviso: true,
	})
	if err != nil {
		t.Fatalf("Final: %v", err)
	}

	if res.Meta.AniosIndemnizatorios != 7 { // 6 years + 6-month fraction
		t.Fatalf("anios = %d", res.Meta.AniosIndemnizatorios)
	}
	if res.Conceptos.Art245 != 900000*7 {
		t.Fatalf("art245 = %v", res.Conceptos.Art245)
	}
	if res.Conceptos.Art248 != 0 {
		t.Fatalf("art248 = %v, want 0 for despido", res.Conceptos.Art248)
	}
	if res.Conceptos.VacNoGozadas != 900000.0/25*10 {
		t.Fatalf("vacaciones = %v", res.Conceptos.VacNoGozadas)
	}
	if res.Conceptos.SACVac != res.Conceptos.VacNoGozadas/12 {
		t.Fatalf("sac vacaciones = %v", res.Conceptos.SACVac)
	}
	if res.Conceptos.Preaviso != 900000 {
		t.Fatalf("preaviso = %v", res.Conceptos.Preaviso)
	}
	if res.Conceptos.SACPreaviso != 75000 {
		t.Fatalf("sac preaviso = %v", res.Conceptos.SACPreaviso)
	}

	sum := res.Conceptos.Art245 + res.Conceptos.VacNoGozadas + res.Conceptos.SACVac +
		res.Conceptos.Preaviso + res.Conceptos.SACPreaviso
	if res.Totales.TotalIndemnizatorio != sum || res.Totales.Neto != sum {
		t.Fatalf("totales = %+v, want %v", res.Totales, sum)
	}
}

func TestFinalFallecimientoHalvesIndemnity(t *testing.T) {
	res, err := calcengine.Final(&domain.EntradaFinal{
		Tipo:         domain.TipoFallecimiento,
		FechaIngreso: "2014-01-01",
		FechaEgreso:  "2024-01-01",
		MejorSalario: 500000,
		PreavisoDias: 30, // ignored: notice pay only applies to despido
	})
	if err != nil {
		t.Fatalf("Final: %v", err)
	}
	if res.Conceptos.Art245 != 0 {
		t.Fatalf("art245 = %v", res.Conceptos.Art245)
	}
	if res.Conceptos.Art248 != 500000*10*0.5 {
		t.Fatalf("art248 = %v", res.Conceptos.Art248)
	}
	if res.Conceptos.Preaviso != 0 {
		t.Fatalf("preaviso = %v", res.Conceptos.Preaviso)
	}
}

func TestFinalRenunciaOnlyVacationPay(t *testing.T) {
	res, err := calcengine.Final(&domain.EntradaFinal{
		Tipo:             domain.TipoRenuncia,
		FechaIngreso:     "2020-01-01",
		FechaEgreso:      "2024-01-01",
		MejorSalario:     400000,
		VacNoGozadasDias: 5,
	})
	if err != nil {
		t.Fatalf("Final: %v", err)
	}
	if res.Conceptos.Art245 != 0 || res.Conceptos.Art248 != 0 || res.Conceptos.Preaviso != 0 {
		t.Fatalf("renuncia should only pay vacation: %+v", res.Conceptos)
	}
	if res.Conceptos.VacNoGozadas != 400000.0/25*5 {
		t.Fatalf("vacaciones = %v", res.Conceptos.VacNoGozadas)
	}
	if res.Conceptos.SACVac != 0 {
		t.Fatalf("sac vacaciones = %v, flag was off", res.Conceptos.SACVac)
	}
}

func TestFinalEmptyDatesCountZeroYears(t *testing.T) {
	res, err := calcengine.Final(&domain.EntradaFinal{MejorSalario: 100000})
	if err != nil {
		t.Fatalf("Final: %v", err)
	}
	if res.Meta.AniosIndemnizatorios != 0 || res.Conceptos.Art245 != 0 {
		t.Fatalf("result = %+v", res)
	}
	if res.Meta.Tipo != domain.TipoDespidoSinCausa {
		t.Fatalf("tipo = %q, want default", res.Meta.Tipo)
	}
}

func TestFinalRejectsMalformedDates(t *testing.T) {
	_, err := calcengine.Final(&domain.EntradaFinal{
		FechaIngreso: "01/02/2018",
		FechaEgreso:  "2024-08-01",
	})
	if err == nil {
		t.Fatal("expected an error for a malformed date")
	}
}
