package calcengine_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/ldamico/sueldos-comercio/internal/calcengine"
	"github.com/ldamico/sueldos-comercio/internal/domain"
)

type fixedEscala struct {
	fila *domain.FilaEscala
	err  error
}

func (f fixedEscala) Find(ctx context.Context, rama, agrup, categoria, mes string) (*domain.FilaEscala, error) {
	return f.fila, f.err
}

func close2(a, b float64) bool { return math.Abs(a-b) < 0.01 }

func TestMesesSemestre(t *testing.T) {
	cases := []struct {
		mes  string
		want int
	}{
		{"2024-01", 1},
		{"2024-06", 6},
		{"2024-07", 1},
		{"2024-12", 6},
		{"", 1},
		{"garbage", 1},
		{"2024-xx", 1},
	}
	for _, c := range cases {
		if got := calcengine.MesesSemestre(c.mes); got != c.want {
			t.Errorf("MesesSemestre(%q) = %d, want %d", c.mes, got, c.want)
		}
	}
}

func TestPorcentajeAntiguedad(t *testing.T) {
	if got := calcengine.PorcentajeAntiguedad("Comercio", 5); got != 0.05 {
		t.Fatalf("comercio = %v", got)
	}
	if got := calcengine.PorcentajeAntiguedad("agua potable", 5); got != 0.10 {
		t.Fatalf("agua potable = %v", got)
	}
}

func TestMensualBreakdown(t *testing.T) {
	escalas := fixedEscala{fila: &domain.FilaEscala{
		Rama: "Comercio", Agrup: "Administrativos", Categoria: "A", Mes: "2024-03",
		Basico: 600000, NoRem: 90000, SumaFija: 30000,
	}}

	in := &domain.EntradaMensual{
		Rama: "Comercio", Agrup: "Administrativos", Categoria: "A", Mes: "2024-03",
		AniosAntig: 10, Osecac: true, Afiliado: true, SindPct: 2,
		IncluirSAC: true, Adelanto: 50000,
	}
	res, err := calcengine.Mensual(context.Background(), escalas, in)
	if err != nil {
		t.Fatalf("Mensual: %v", err)
	}

	// antigüedad 10% of básico / NR total
	if !close2(res.Conceptos.AntigRem, 60000) || !close2(res.Conceptos.AntigNR, 12000) {
		t.Fatalf("antigüedad = %v / %v", res.Conceptos.AntigRem, res.Conceptos.AntigNR)
	}
	// presentismo: (base + antigüedad) / 12
	if !close2(res.Conceptos.PresentismoRem, 55000) || !close2(res.Conceptos.PresentismoNR, 11000) {
		t.Fatalf("presentismo = %v / %v", res.Conceptos.PresentismoRem, res.Conceptos.PresentismoNR)
	}
	// SAC proration: March is month 3 of the semester → factor 3/12
	remBase, nrBase := 715000.0, 143000.0
	if !close2(res.Conceptos.SACRem, remBase/4) || !close2(res.Conceptos.SACNR, nrBase/4) {
		t.Fatalf("sac = %v / %v", res.Conceptos.SACRem, res.Conceptos.SACNR)
	}

	if !close2(res.Descuentos.Jubilacion11, remBase*0.11) {
		t.Fatalf("jubilación = %v", res.Descuentos.Jubilacion11)
	}
	if !close2(res.Descuentos.PAMI3, remBase*0.03) {
		t.Fatalf("pami = %v", res.Descuentos.PAMI3)
	}
	baseSindical := remBase + nrBase + remBase/4 + nrBase/4
	if !close2(res.Descuentos.FAECYS05, baseSindical*0.005) {
		t.Fatalf("faecys = %v", res.Descuentos.FAECYS05)
	}
	if !close2(res.Descuentos.Sindicato, baseSindical*0.02) {
		t.Fatalf("sindicato = %v", res.Descuentos.Sindicato)
	}
	if !close2(res.Descuentos.ObraSocial3, baseSindical*0.03) {
		t.Fatalf("obra social = %v", res.Descuentos.ObraSocial3)
	}
	if res.Descuentos.Osecac100 != 100 || res.Descuentos.Adelanto != 50000 {
		t.Fatalf("fixed deductions = %+v", res.Descuentos)
	}

	if !close2(res.Totales.Neto, res.Totales.TotalRem+res.Totales.TotalNoRem-res.Totales.Descuentos) {
		t.Fatalf("neto = %v, totals %+v", res.Totales.Neto, res.Totales)
	}
	if res.Meta.MesesSemestre != 3 || !res.Meta.IncluyeSAC {
		t.Fatalf("meta = %+v", res.Meta)
	}
}

func TestMensualWithoutOptIns(t *testing.T) {
	escalas := fixedEscala{fila: &domain.FilaEscala{Basico: 120000}}
	res, err := calcengine.Mensual(context.Background(), escalas, &domain.EntradaMensual{Mes: "2024-08"})
	if err != nil {
		t.Fatalf("Mensual: %v", err)
	}
	if res.Descuentos.ObraSocial3 != 0 || res.Descuentos.Osecac100 != 0 || res.Descuentos.Sindicato != 0 {
		t.Fatalf("opt-in deductions should be zero: %+v", res.Descuentos)
	}
	if res.Conceptos.SACRem != 0 || res.Conceptos.SACNR != 0 {
		t.Fatalf("sac should be zero: %+v", res.Conceptos)
	}
}

func TestMensualUnknownScale(t *testing.T) {
	_, err := calcengine.Mensual(context.Background(), fixedEscala{}, &domain.EntradaMensual{})
	if !errors.Is(err, calcengine.ErrEscalaNoEncontrada) {
		t.Fatalf("err = %v", err)
	}
}
