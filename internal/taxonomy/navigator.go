// Package taxonomy keeps the four scale selectors (rama, agrupamiento,
// categoría, mes) mutually consistent against the classification tree.
// Every selection change cascades downstream and rebuilds the affected
// option lists wholesale; a selector is never left with zero options.
package taxonomy

import "github.com/ldamico/sueldos-comercio/internal/domain"

// Placeholder is the single option shown for an agrupamiento or categoría
// level that has no entries in the tree.
const Placeholder = "—"

// MesPlaceholder is the single option shown when a categoría has no months
// indexed. It is deliberately distinct from Placeholder: an empty mes is a
// valid absence-signal for the request builder, not an error.
const MesPlaceholder = ""

// Selection holds the current value of each selector.
type Selection struct {
	Rama      string
	Agrup     string
	Categoria string
	Mes       string
}

// Navigator owns the metadata snapshot and the option lists of the three
// dependent selectors. Not safe for concurrent use on its own; the HTTP
// handler serializes access.
type Navigator struct {
	tree   *domain.ClassificationTree
	months domain.MonthsIndex

	sel       Selection
	agrupOpts []string
	catOpts   []string
	mesOpts   []string
}

func New() *Navigator { return &Navigator{} }

// Loaded reports whether a metadata snapshot has been installed.
func (n *Navigator) Loaded() bool { return n.tree != nil }

// LoadTree installs a metadata snapshot, fully replacing any prior state,
// and selects the first rama so every selector starts consistent.
func (n *Navigator) LoadTree(tree *domain.ClassificationTree, months domain.MonthsIndex) {
	n.tree = tree
	n.months = months
	n.sel = Selection{}

	rama := ""
	if ramas := tree.Ramas(); len(ramas) > 0 {
		rama = ramas[0]
	}
	n.SetRama(rama)
}

// SetRama selects a rama and cascades: agrupamiento options are recomputed
// from the tree in source order, and the first one is selected, which in
// turn cascades into categoría and mes.
func (n *Navigator) SetRama(rama string) {
	n.sel.Rama = rama
	opts := n.tree.Agrupamientos(rama)
	if len(opts) == 0 {
		opts = []string{Placeholder}
	}
	n.agrupOpts = opts
	n.SetAgrup(opts[0])
}

// SetAgrup selects an agrupamiento under the current rama and cascades
// into categoría and mes.
func (n *Navigator) SetAgrup(agrup string) {
	n.sel.Agrup = agrup
	opts := n.tree.Categorias(n.sel.Rama, agrup)
	if len(opts) == 0 {
		opts = []string{Placeholder}
	}
	n.catOpts = opts
	n.SetCategoria(opts[0])
}

// SetCategoria selects a categoría and recomputes the month options from
// the months index; a missing or empty entry degrades to the empty-string
// placeholder.
func (n *Navigator) SetCategoria(categoria string) {
	n.sel.Categoria = categoria
	opts := n.months.Lookup(n.sel.Rama, n.sel.Agrup, categoria)
	if len(opts) == 0 {
		opts = []string{MesPlaceholder}
	}
	n.mesOpts = opts
	n.sel.Mes = opts[0]
}

// SetMes selects a month. Nothing is downstream of mes.
func (n *Navigator) SetMes(mes string) { n.sel.Mes = mes }

// Selection returns the current value of all four selectors.
func (n *Navigator) Selection() Selection { return n.sel }

// RamaOptions returns all ramas in source order.
func (n *Navigator) RamaOptions() []string {
	if n.tree == nil {
		return nil
	}
	return n.tree.Ramas()
}

func (n *Navigator) AgrupOptions() []string     { return n.agrupOpts }
func (n *Navigator) CategoriaOptions() []string { return n.catOpts }
func (n *Navigator) MesOptions() []string       { return n.mesOpts }
