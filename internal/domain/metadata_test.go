package domain_test

import (
	"reflect"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/ldamico/sueldos-comercio/internal/domain"
)

func TestClassificationTreeRoundTripKeepsOrder(t *testing.T) {
	raw := `{"Turismo":{"Guías":["Senior","Junior"]},"Comercio":{"Administrativos":["A"],"Vendedores":["B","C"]}}`

	var tree domain.ClassificationTree
	if err := json.Unmarshal([]byte(raw), &tree); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got := tree.Ramas(); !reflect.DeepEqual(got, []string{"Turismo", "Comercio"}) {
		t.Fatalf("ramas = %v", got)
	}
	if got := tree.Agrupamientos("Comercio"); !reflect.DeepEqual(got, []string{"Administrativos", "Vendedores"}) {
		t.Fatalf("agrupamientos = %v", got)
	}
	if got := tree.Categorias("Comercio", "Vendedores"); !reflect.DeepEqual(got, []string{"B", "C"}) {
		t.Fatalf("categorias = %v", got)
	}

	out, err := json.Marshal(tree)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != raw {
		t.Fatalf("round trip changed the tree:\n got %s\nwant %s", out, raw)
	}
}

func TestClassificationTreeToleratesNullAndEmpty(t *testing.T) {
	var tree domain.ClassificationTree
	if err := json.Unmarshal([]byte(`{"Fúnebres":null,"Agua Potable":{}}`), &tree); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := tree.Ramas(); !reflect.DeepEqual(got, []string{"Fúnebres", "Agua Potable"}) {
		t.Fatalf("ramas = %v", got)
	}
	if got := tree.Agrupamientos("Fúnebres"); len(got) != 0 {
		t.Fatalf("agrupamientos of null rama = %v, want none", got)
	}
	if got := tree.Agrupamientos("Agua Potable"); len(got) != 0 {
		t.Fatalf("agrupamientos of empty rama = %v, want none", got)
	}
}

func TestClassificationTreeAddDeduplicates(t *testing.T) {
	var tree domain.ClassificationTree
	tree.Add("Comercio", "Administrativos", "A")
	tree.Add("Comercio", "Administrativos", "A")
	tree.Add("Comercio", "Administrativos", "B")

	if got := tree.Categorias("Comercio", "Administrativos"); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Fatalf("categorias = %v", got)
	}
}

func TestMonthsIndexLookup(t *testing.T) {
	idx := domain.MonthsIndex{
		"Comercio||Administrativos||A": {"2024-01", "2024-02"},
	}
	if got := idx.Lookup("Comercio", "Administrativos", "A"); !reflect.DeepEqual(got, []string{"2024-01", "2024-02"}) {
		t.Fatalf("lookup = %v", got)
	}
	if got := idx.Lookup("Comercio", "Administrativos", "B"); got != nil {
		t.Fatalf("missing key lookup = %v, want nil", got)
	}
}
