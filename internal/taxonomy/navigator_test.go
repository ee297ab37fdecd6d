package taxonomy_test

import (
	"reflect"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/ldamico/sueldos-comercio/internal/domain"
	"github.com/ldamico/sueldos-comercio/internal/taxonomy"
)

func mustMeta(t *testing.T, raw string) *domain.Metadata {
	t.Helper()
	var m domain.Metadata
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("decode metadata: %v", err)
	}
	return &m
}

func loaded(t *testing.T, raw string) *taxonomy.Navigator {
	t.Helper()
	m := mustMeta(t, raw)
	n := taxonomy.New()
	n.LoadTree(&m.Tree, m.Months)
	return n
}

const metaComercio = `{
	"tree": {"Comercio": {"Administrativos": ["A", "B"]}},
	"months": {"Comercio||Administrativos||A": ["2024-01"]}
}`

func TestLoadTreeSelectsFirstOfEverything(t *testing.T) {
	n := loaded(t, metaComercio)

	if got := n.RamaOptions(); !reflect.DeepEqual(got, []string{"Comercio"}) {
		t.Fatalf("rama options = %v", got)
	}
	if got := n.AgrupOptions(); !reflect.DeepEqual(got, []string{"Administrativos"}) {
		t.Fatalf("agrup options = %v", got)
	}
	if got := n.CategoriaOptions(); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Fatalf("categoria options = %v", got)
	}
	if got := n.MesOptions(); !reflect.DeepEqual(got, []string{"2024-01"}) {
		t.Fatalf("mes options = %v", got)
	}

	want := taxonomy.Selection{Rama: "Comercio", Agrup: "Administrativos", Categoria: "A", Mes: "2024-01"}
	if got := n.Selection(); got != want {
		t.Fatalf("selection = %+v, want %+v", got, want)
	}
}

func TestSetCategoriaWithoutMonthsYieldsEmptyPlaceholder(t *testing.T) {
	n := loaded(t, metaComercio)

	n.SetCategoria("B")

	if got := n.MesOptions(); !reflect.DeepEqual(got, []string{taxonomy.MesPlaceholder}) {
		t.Fatalf("mes options = %q, want single empty placeholder", got)
	}
	if got := n.Selection().Mes; got != "" {
		t.Fatalf("mes selection = %q, want empty", got)
	}
}

func TestRamaWithoutAgrupamientosCascadesPlaceholders(t *testing.T) {
	n := loaded(t, `{"tree": {"Vacía": null}, "months": {}}`)

	n.SetRama("Vacía")

	if got := n.AgrupOptions(); !reflect.DeepEqual(got, []string{taxonomy.Placeholder}) {
		t.Fatalf("agrup options = %v, want dash placeholder", got)
	}
	if got := n.CategoriaOptions(); !reflect.DeepEqual(got, []string{taxonomy.Placeholder}) {
		t.Fatalf("categoria options = %v, want dash placeholder", got)
	}
	if got := n.MesOptions(); !reflect.DeepEqual(got, []string{taxonomy.MesPlaceholder}) {
		t.Fatalf("mes options = %q, want empty placeholder", got)
	}

	want := taxonomy.Selection{Rama: "Vacía", Agrup: taxonomy.Placeholder, Categoria: taxonomy.Placeholder, Mes: ""}
	if got := n.Selection(); got != want {
		t.Fatalf("selection = %+v, want %+v", got, want)
	}
}

func TestSetRamaIsIdempotent(t *testing.T) {
	n := loaded(t, metaComercio)

	n.SetRama("Comercio")
	first := struct {
		agrup, cat, mes []string
		sel             taxonomy.Selection
	}{n.AgrupOptions(), n.CategoriaOptions(), n.MesOptions(), n.Selection()}

	n.SetRama("Comercio")
	if !reflect.DeepEqual(n.AgrupOptions(), first.agrup) ||
		!reflect.DeepEqual(n.CategoriaOptions(), first.cat) ||
		!reflect.DeepEqual(n.MesOptions(), first.mes) ||
		n.Selection() != first.sel {
		t.Fatalf("second SetRama diverged: %v/%v/%v %+v", n.AgrupOptions(), n.CategoriaOptions(), n.MesOptions(), n.Selection())
	}
}

func TestCascadeDropsStaleLeafSelection(t *testing.T) {
	n := loaded(t, `{
		"tree": {
			"Comercio": {"Administrativos": ["A", "B"]},
			"Turismo": {"Guías": ["Senior"]}
		},
		"months": {
			"Comercio||Administrativos||A": ["2024-01"],
			"Turismo||Guías||Senior": ["2024-02", "2024-03"]
		}
	}`)

	n.SetCategoria("B") // move off the defaults
	n.SetRama("Turismo")

	want := taxonomy.Selection{Rama: "Turismo", Agrup: "Guías", Categoria: "Senior", Mes: "2024-02"}
	if got := n.Selection(); got != want {
		t.Fatalf("selection = %+v, want %+v", got, want)
	}
	if got := n.MesOptions(); !reflect.DeepEqual(got, []string{"2024-02", "2024-03"}) {
		t.Fatalf("mes options = %v", got)
	}
}

func TestLoadTreeReplacesPriorSnapshot(t *testing.T) {
	n := loaded(t, metaComercio)

	m2 := mustMeta(t, `{
		"tree": {"Cereales": {"Depósito": ["Peón"]}},
		"months": {"Cereales||Depósito||Peón": ["2025-06"]}
	}`)
	n.LoadTree(&m2.Tree, m2.Months)

	if got := n.RamaOptions(); !reflect.DeepEqual(got, []string{"Cereales"}) {
		t.Fatalf("rama options = %v", got)
	}
	want := taxonomy.Selection{Rama: "Cereales", Agrup: "Depósito", Categoria: "Peón", Mes: "2025-06"}
	if got := n.Selection(); got != want {
		t.Fatalf("selection = %+v, want %+v", got, want)
	}
}

// Key order of the tree object must survive decoding; selector options are
// presented in source order, not resorted.
func TestTreeKeyOrderPreserved(t *testing.T) {
	n := loaded(t, `{
		"tree": {
			"Zeta": {"Z2": ["c"], "A1": ["d"]},
			"Alfa": {"M": ["e"]}
		},
		"months": {}
	}`)

	if got := n.RamaOptions(); !reflect.DeepEqual(got, []string{"Zeta", "Alfa"}) {
		t.Fatalf("rama options = %v, want source order", got)
	}
	if got := n.AgrupOptions(); !reflect.DeepEqual(got, []string{"Z2", "A1"}) {
		t.Fatalf("agrup options = %v, want source order", got)
	}
}
