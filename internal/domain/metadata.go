package domain

import (
	"bytes"
	"fmt"
	"sort"

	json "github.com/goccy/go-json"
)

// MonthsKeySep joins rama, agrupamiento and categoría into the composite
// key of the months index. Must match the calculation service.
const MonthsKeySep = "||"

// MonthsKey builds the composite lookup key for a (rama, agrup, categoría)
// triple. There is no partial-key lookup.
func MonthsKey(rama, agrup, categoria string) string {
	return rama + MonthsKeySep + agrup + MonthsKeySep + categoria
}

// MonthsIndex maps a composite key to the ordered YYYY-MM tokens that have
// a scale row for that category.
type MonthsIndex map[string][]string

// Lookup returns the months for a triple, or nil when the key is absent.
func (m MonthsIndex) Lookup(rama, agrup, categoria string) []string {
	return m[MonthsKey(rama, agrup, categoria)]
}

// ClassificationTree is the read-only rama → agrupamiento → categorías
// lookup table. JSON object key order is preserved on decode so selector
// options keep the order the calculation service provided them in.
type ClassificationTree struct {
	ramas  []string
	agrups map[string][]string // rama → agrupamientos
	cats   map[string][]string // rama + sep + agrup → categorías
}

// Add appends a leaf, creating rama and agrupamiento entries on first
// sight and skipping duplicate categorías. Used when building metadata
// from scale rows; decoded trees never mutate.
func (t *ClassificationTree) Add(rama, agrup, categoria string) {
	if t.agrups == nil {
		t.agrups = map[string][]string{}
		t.cats = map[string][]string{}
	}
	if _, ok := t.agrups[rama]; !ok {
		t.ramas = append(t.ramas, rama)
		t.agrups[rama] = nil
	}
	key := rama + MonthsKeySep + agrup
	if _, ok := t.cats[key]; !ok {
		t.agrups[rama] = append(t.agrups[rama], agrup)
		t.cats[key] = nil
	}
	for _, c := range t.cats[key] {
		if c == categoria {
			return
		}
	}
	t.cats[key] = append(t.cats[key], categoria)
}

// SortLeaves sorts every categoría list in place. Rama and agrupamiento
// order stays as inserted.
func (t *ClassificationTree) SortLeaves() {
	for k := range t.cats {
		sort.Strings(t.cats[k])
	}
}

// Ramas returns all branch names in source order.
func (t *ClassificationTree) Ramas() []string { return t.ramas }

// Agrupamientos returns the groupings of a rama in source order, or nil.
func (t *ClassificationTree) Agrupamientos(rama string) []string {
	return t.agrups[rama]
}

// Categorias returns the categorías of a (rama, agrup) pair, or nil.
func (t *ClassificationTree) Categorias(rama, agrup string) []string {
	return t.cats[rama+MonthsKeySep+agrup]
}

// UnmarshalJSON decodes the nested {rama: {agrup: [categorías]}} object
// with a token walk so key order survives the round trip.
func (t *ClassificationTree) UnmarshalJSON(data []byte) error {
	*t = ClassificationTree{
		agrups: map[string][]string{},
		cats:   map[string][]string{},
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil { // JSON null: empty tree
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("classification tree: expected object, got %v", tok)
	}
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		rama := tok.(string)
		t.ramas = append(t.ramas, rama)
		t.agrups[rama] = nil

		tok, err = dec.Token()
		if err != nil {
			return err
		}
		if tok == nil {
			continue
		}
		if d, ok := tok.(json.Delim); !ok || d != '{' {
			return fmt.Errorf("classification tree: rama %q: expected object, got %v", rama, tok)
		}
		for dec.More() {
			tok, err = dec.Token()
			if err != nil {
				return err
			}
			agrup := tok.(string)
			var cats []string
			if err := dec.Decode(&cats); err != nil {
				return fmt.Errorf("classification tree: %s/%s: %w", rama, agrup, err)
			}
			t.agrups[rama] = append(t.agrups[rama], agrup)
			t.cats[rama+MonthsKeySep+agrup] = cats
		}
		if _, err = dec.Token(); err != nil { // closing }
			return err
		}
	}
	_, err = dec.Token() // closing }
	return err
}

// MarshalJSON emits the nested object with ramas and agrupamientos in
// source order.
func (t ClassificationTree) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, rama := range t.ramas {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(rama)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteString(":{")
		for j, agrup := range t.agrups[rama] {
			if j > 0 {
				buf.WriteByte(',')
			}
			k, err = json.Marshal(agrup)
			if err != nil {
				return nil, err
			}
			buf.Write(k)
			buf.WriteByte(':')
			cats := t.cats[rama+MonthsKeySep+agrup]
			if cats == nil {
				cats = []string{}
			}
			v, err := json.Marshal(cats)
			if err != nil {
				return nil, err
			}
			buf.Write(v)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Metadata is the snapshot fetched once at startup: the classification
// tree plus the months index. Read-only for the session lifetime.
type Metadata struct {
	Tree   ClassificationTree `json:"tree"`
	Months MonthsIndex        `json:"months"`
}
