package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/a-h/templ"

	"github.com/ldamico/sueldos-comercio/internal/adapters/pdf"
	"github.com/ldamico/sueldos-comercio/internal/domain"
	"github.com/ldamico/sueldos-comercio/internal/ports"
	"github.com/ldamico/sueldos-comercio/internal/recibo"
	"github.com/ldamico/sueldos-comercio/internal/taxonomy"
	"github.com/ldamico/sueldos-comercio/internal/templates"
)

type Handler struct {
	svc ports.CalculationService

	// mu serializes navigator access: cascade handlers mutate the shared
	// selection state while overlapping requests render option lists
	// from it, and net/http serves each request on its own goroutine.
	mu  sync.Mutex
	nav *taxonomy.Navigator

	// metaErr holds the metadata fetch failure, surfaced in the monthly
	// error slot on the index page. Guarded by mu.
	metaErr string
}

func New(svc ports.CalculationService) *Handler {
	return &Handler{svc: svc, nav: taxonomy.New()}
}

// LoadMetadata fetches the classification snapshot once at startup. A
// failure leaves the navigator unloaded and is rendered into the monthly
// error slot instead of crashing the form.
func (h *Handler) LoadMetadata(ctx context.Context) error {
	meta, err := h.svc.Metadata(ctx)
	h.mu.Lock()
	defer h.mu.Unlock()
	if err != nil {
		h.metaErr = err.Error()
		return err
	}
	h.nav.LoadTree(&meta.Tree, meta.Months)
	h.metaErr = ""
	return nil
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.index)
	mux.HandleFunc("GET /escala/agrupamientos", h.agrupamientos)
	mux.HandleFunc("GET /escala/categorias", h.categorias)
	mux.HandleFunc("GET /escala/meses", h.meses)
	mux.HandleFunc("POST /calc/mensual", h.calcMensual)
	mux.HandleFunc("POST /calc/final", h.calcFinal)
	mux.HandleFunc("POST /calc/mensual/pdf", h.pdfMensual)
	mux.HandleFunc("POST /calc/final/pdf", h.pdfFinal)
	return mux
}

// selectorView snapshots the current option lists. Callers hold mu.
func (h *Handler) selectorView() templates.SelectorView {
	return templates.SelectorView{
		Ramas:      h.nav.RamaOptions(),
		Agrups:     h.nav.AgrupOptions(),
		Categorias: h.nav.CategoriaOptions(),
		Meses:      h.nav.MesOptions(),
		Sel:        h.nav.Selection(),
	}
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	render(w, r, templates.Index(templates.IndexView{
		Selector:  h.selectorView(),
		MetaError: h.metaErr,
	}))
}

// ── Cascading selectors ───────────────────────────────────────────────────────

func (h *Handler) agrupamientos(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.nav.Loaded() {
		render(w, r, templates.ErrorMensaje(h.metaErr))
		return
	}
	h.nav.SetRama(r.FormValue("rama"))
	render(w, r, templates.Agrupamientos(h.selectorView()))
}

func (h *Handler) categorias(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.nav.Loaded() {
		render(w, r, templates.ErrorMensaje(h.metaErr))
		return
	}
	// Re-sync the rama in case the form and the navigator drifted (e.g.
	// after a server restart mid-session).
	if rama := r.FormValue("rama"); rama != h.nav.Selection().Rama {
		h.nav.SetRama(rama)
	}
	h.nav.SetAgrup(r.FormValue("agrup"))
	render(w, r, templates.Categorias(h.selectorView()))
}

func (h *Handler) meses(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.nav.Loaded() {
		render(w, r, templates.ErrorMensaje(h.metaErr))
		return
	}
	if rama := r.FormValue("rama"); rama != h.nav.Selection().Rama {
		h.nav.SetRama(rama)
	}
	if agrup := r.FormValue("agrup"); agrup != h.nav.Selection().Agrup {
		h.nav.SetAgrup(agrup)
	}
	h.nav.SetCategoria(r.FormValue("categoria"))
	render(w, r, templates.Meses(h.selectorView()))
}

// ── Calculations ──────────────────────────────────────────────────────────────

func (h *Handler) calcMensual(w http.ResponseWriter, r *http.Request) {
	in := parseEntradaMensual(r)
	res, err := h.svc.CalcularMensual(r.Context(), in)
	if err != nil {
		slog.Warn("cálculo mensual falló", "err", err)
		render(w, r, templates.ErrorMensaje(err.Error()))
		return
	}
	render(w, r, templates.ResultadoMensual(templates.MensualView{
		Rows:    recibo.RowsMensual(res),
		Totales: res.Totales,
	}))
}

func (h *Handler) calcFinal(w http.ResponseWriter, r *http.Request) {
	in := parseEntradaFinal(r)
	res, err := h.svc.CalcularFinal(r.Context(), in)
	if err != nil {
		slog.Warn("liquidación final falló", "err", err)
		render(w, r, templates.ErrorMensaje(err.Error()))
		return
	}
	render(w, r, templates.ResultadoFinal(templates.FinalView{
		Rows:    recibo.RowsFinal(res),
		Totales: res.Totales,
		Anios:   res.Meta.AniosIndemnizatorios,
	}))
}

// ── PDF receipts ──────────────────────────────────────────────────────────────

func (h *Handler) pdfMensual(w http.ResponseWriter, r *http.Request) {
	in := parseEntradaMensual(r)
	res, err := h.svc.CalcularMensual(r.Context(), in)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	doc := pdf.Recibo{
		Titulo:    "Estimación de sueldo mensual",
		Subtitulo: fmt.Sprintf("%s · %s · %s · %s", in.Rama, in.Agrup, in.Categoria, in.Mes),
		Rows:      recibo.RowsMensual(res),
		Totales: []pdf.TotalLine{
			{Concepto: "Total remunerativo", Monto: res.Totales.TotalRem},
			{Concepto: "Total no remunerativo", Monto: res.Totales.TotalNoRem},
			{Concepto: "Total deducciones", Monto: res.Totales.Descuentos},
			{Concepto: "Neto", Monto: res.Totales.Neto},
		},
	}
	servePDF(w, doc, "sueldo_mensual")
}

func (h *Handler) pdfFinal(w http.ResponseWriter, r *http.Request) {
	in := parseEntradaFinal(r)
	res, err := h.svc.CalcularFinal(r.Context(), in)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	doc := pdf.Recibo{
		Titulo:    "Estimación de liquidación final",
		Subtitulo: fmt.Sprintf("%s · ingreso %s · egreso %s · %d años computados", res.Meta.Tipo, in.FechaIngreso, in.FechaEgreso, res.Meta.AniosIndemnizatorios),
		Rows:      recibo.RowsFinal(res),
		Totales: []pdf.TotalLine{
			{Concepto: "Total indemnizatorio", Monto: res.Totales.TotalIndemnizatorio},
			{Concepto: "Neto", Monto: res.Totales.Neto},
		},
	}
	servePDF(w, doc, "liquidacion_final")
}

func servePDF(w http.ResponseWriter, doc pdf.Recibo, prefix string) {
	filename := fmt.Sprintf("%s_%s.pdf", prefix, time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	if err := doc.Write(w); err != nil {
		slog.Warn("PDF no generado", "err", err)
	}
}

// ── Form parsing ──────────────────────────────────────────────────────────────

// parseEntradaMensual reads the monthly form. FormValue parses the body
// lazily and skips undecodable pairs, so malformed fields fall back to
// the same zero defaults as any other bad input.
func parseEntradaMensual(r *http.Request) *domain.EntradaMensual {
	return &domain.EntradaMensual{
		Rama:       r.FormValue("rama"),
		Agrup:      r.FormValue("agrup"),
		Categoria:  r.FormValue("categoria"),
		Mes:        r.FormValue("mes"),
		AniosAntig: parseMonto(r.FormValue("anios_antig")),
		Osecac:     parseMarca(r.FormValue("osecac")),
		Afiliado:   parseMarca(r.FormValue("afiliado")),
		SindPct:    parseMonto(r.FormValue("sind_pct")),
		IncluirSAC: parseMarca(r.FormValue("incluir_sac_proporcional")),
		Adelanto:   parseMonto(r.FormValue("adelanto")),
	}
}

func parseEntradaFinal(r *http.Request) *domain.EntradaFinal {
	tipo := r.FormValue("tipo")
	if tipo == "" {
		tipo = domain.TipoDespidoSinCausa
	}
	return &domain.EntradaFinal{
		Tipo:               tipo,
		FechaIngreso:       r.FormValue("fecha_ingreso"),
		FechaEgreso:        r.FormValue("fecha_egreso"),
		MejorSalario:       parseMonto(r.FormValue("mejor_salario")),
		VacNoGozadasDias:   parseMonto(r.FormValue("vac_no_gozadas_dias")),
		IncluirSACVac:      parseMarca(r.FormValue("incluir_sac_vac")),
		PreavisoDias:       parseMonto(r.FormValue("preaviso_dias")),
		IncluirSACPreaviso: parseMarca(r.FormValue("incluir_sac_preaviso")),
	}
}

// parseMonto reads a numeric form field. Bad input coerces to 0 — bounds
// checking belongs to the calculation service, not the form. A comma
// decimal with dot thousand separators ("1.234,56") is tolerated.
func parseMonto(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseMarca reads a checkbox: browsers send "on" when ticked and omit
// the field otherwise.
func parseMarca(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "1", "true", "si", "sí":
		return true
	}
	return false
}

// render writes a templ component to the response.
func render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
