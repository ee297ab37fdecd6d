// Package templates renders the estimator pages and htmx fragments.
//
// NOTE: In a full project these would be .templ files compiled via
// `templ generate`. They are inlined here as html/template blocks wrapped
// in templ.ComponentFunc for zero-codegen portability; swap to templ by
// moving each block to its own .templ file.
package templates

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/ldamico/sueldos-comercio/internal/domain"
	"github.com/ldamico/sueldos-comercio/internal/taxonomy"
)

// SelectorView carries the option lists and current selection of the
// cascading scale selectors.
type SelectorView struct {
	Ramas      []string
	Agrups     []string
	Categorias []string
	Meses      []string
	Sel        taxonomy.Selection
}

// IndexView is the full-page view model.
type IndexView struct {
	Selector  SelectorView
	MetaError string // metadata fetch failure, shown in the monthly slot
}

// MensualView is the rendered monthly breakdown.
type MensualView struct {
	Rows    []domain.DisplayRow
	Totales domain.TotalesMensual
}

// FinalView is the rendered settlement breakdown.
type FinalView struct {
	Rows    []domain.DisplayRow
	Totales domain.TotalesFinal
	Anios   int
}

var tmpl = template.Must(template.New("sueldos").Funcs(template.FuncMap{
	"money": money,
}).Parse(pageHTML))

func component(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return tmpl.ExecuteTemplate(w, name, data)
	})
}

// Index renders the whole form page.
func Index(v IndexView) templ.Component { return component("page", v) }

// Agrupamientos renders the agrupamiento selector plus everything
// downstream of it (categoría and mes).
func Agrupamientos(v SelectorView) templ.Component { return component("dep-agrup", v) }

// Categorias renders the categoría selector plus the mes selector.
func Categorias(v SelectorView) templ.Component { return component("dep-categoria", v) }

// Meses renders the mes selector alone.
func Meses(v SelectorView) templ.Component { return component("dep-mes", v) }

// ResultadoMensual renders the monthly rows and totals into the monthly
// result slot.
func ResultadoMensual(v MensualView) templ.Component { return component("resultado-mensual", v) }

// ResultadoFinal renders the settlement rows and totals into the final
// result slot.
func ResultadoFinal(v FinalView) templ.Component { return component("resultado-final", v) }

// ErrorMensaje renders a scoped failure message; it swaps into the same
// slot as the mode's result, so it never disturbs the other mode.
func ErrorMensaje(msg string) templ.Component { return component("error", msg) }

const pageHTML = `
{{define "dep-mes"}}
<label class="campo">Mes
	<select name="mes">
		{{range .Meses}}<option value="{{.}}" {{if eq . $.Sel.Mes}}selected{{end}}>{{.}}</option>{{end}}
	</select>
</label>
{{end}}

{{define "dep-categoria"}}
<label class="campo">Categoría
	<select name="categoria" hx-get="/escala/meses" hx-target="#dep-mes" hx-include="closest form">
		{{range .Categorias}}<option value="{{.}}" {{if eq . $.Sel.Categoria}}selected{{end}}>{{.}}</option>{{end}}
	</select>
</label>
<span id="dep-mes">{{template "dep-mes" .}}</span>
{{end}}

{{define "dep-agrup"}}
<label class="campo">Agrupamiento
	<select name="agrup" hx-get="/escala/categorias" hx-target="#dep-categoria" hx-include="closest form">
		{{range .Agrups}}<option value="{{.}}" {{if eq . $.Sel.Agrup}}selected{{end}}>{{.}}</option>{{end}}
	</select>
</label>
<span id="dep-categoria">{{template "dep-categoria" .}}</span>
{{end}}

{{define "selector"}}
<label class="campo">Rama
	<select name="rama" hx-get="/escala/agrupamientos" hx-target="#dep-agrup" hx-include="closest form">
		{{range .Ramas}}<option value="{{.}}" {{if eq . $.Sel.Rama}}selected{{end}}>{{.}}</option>{{end}}
	</select>
</label>
<span id="dep-agrup">{{template "dep-agrup" .}}</span>
{{end}}

{{define "filas"}}
<table class="recibo">
	<thead>
		<tr><th>Concepto</th><th>Remunerativo</th><th>No Rem. / Indemniz.</th><th>Deducción</th></tr>
	</thead>
	<tbody>
		{{range .}}
		<tr>
			<td>{{.Concepto}}</td>
			<td class="monto">{{if .Remunerativo}}{{money .Remunerativo}}{{end}}</td>
			<td class="monto">{{if .NoRemunerativo}}{{money .NoRemunerativo}}{{end}}</td>
			<td class="monto">{{if .Deduccion}}{{money .Deduccion}}{{end}}</td>
		</tr>
		{{end}}
	</tbody>
</table>
{{end}}

{{define "resultado-mensual"}}
{{template "filas" .Rows}}
<dl class="totales">
	<dt>Total remunerativo</dt><dd>{{money .Totales.TotalRem}}</dd>
	<dt>Total no remunerativo</dt><dd>{{money .Totales.TotalNoRem}}</dd>
	<dt>Total deducciones</dt><dd>{{money .Totales.Descuentos}}</dd>
	<dt class="neto">Neto</dt><dd class="neto">{{money .Totales.Neto}}</dd>
</dl>
{{end}}

{{define "resultado-final"}}
{{template "filas" .Rows}}
<dl class="totales">
	<dt>Total indemnizatorio</dt><dd>{{money .Totales.TotalIndemnizatorio}}</dd>
	<dt class="neto">Neto</dt><dd class="neto">{{money .Totales.Neto}}</dd>
	<dt>Años computados</dt><dd>{{.Anios}}</dd>
</dl>
{{end}}

{{define "error"}}
<p class="error">{{.}}</p>
{{end}}

{{define "page"}}
<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Sueldos Comercio · Estimador</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<style>
  body { font-family: system-ui, sans-serif; background: #f5f0e8; color: #0d1117; max-width: 960px; margin: 0 auto; padding: 1rem; }
  h1 { font-size: 1.3rem; }
  .tabs button { padding: 0.4rem 1rem; border: 1px solid #b8a898; background: #e8e0cc; cursor: pointer; }
  .tabs button.activa { background: #fff; border-bottom: none; font-weight: 600; }
  .panel { background: #fff; border: 1px solid #b8a898; padding: 1rem; }
  .campo { display: inline-block; margin: 0.3rem 0.8rem 0.3rem 0; font-size: 0.85rem; }
  .campo select, .campo input { display: block; padding: 0.3rem; border: 1px solid #b8a898; min-width: 10rem; }
  .acciones { margin-top: 0.8rem; }
  .acciones button { padding: 0.45rem 1.2rem; border: 1px solid #0d1117; background: #2c6e49; color: #fff; cursor: pointer; }
  .acciones button.secundario { background: #fff; color: #0d1117; }
  table.recibo { border-collapse: collapse; width: 100%; margin-top: 1rem; font-size: 0.9rem; }
  table.recibo th, table.recibo td { border: 1px solid #b8a898; padding: 0.35rem 0.5rem; text-align: left; }
  table.recibo td.monto { text-align: right; font-variant-numeric: tabular-nums; }
  dl.totales { display: grid; grid-template-columns: auto auto; width: fit-content; gap: 0.2rem 2rem; margin-top: 0.8rem; }
  dl.totales dd { text-align: right; font-variant-numeric: tabular-nums; margin: 0; }
  dl.totales .neto { font-weight: 700; }
  .error { color: #c0392b; border: 1px solid #c0392b; padding: 0.5rem; background: #fdf0ee; }
</style>
</head>
<body>
<h1>Estimador de sueldos · Convenio Comercio</h1>

<div class="tabs">
	<button type="button" class="activa" onclick="verPanel('mensual', this)">Sueldo mensual</button>
	<button type="button" onclick="verPanel('final', this)">Liquidación final</button>
</div>

<div id="panel-mensual" class="panel">
	<form method="post" action="/calc/mensual/pdf">
		{{template "selector" .Selector}}
		<br>
		<label class="campo">Años de antigüedad <input type="number" name="anios_antig" value="0" min="0" step="1"></label>
		<label class="campo">% sindicato <input type="number" name="sind_pct" value="0" min="0" step="0.1"></label>
		<label class="campo">Adelanto de sueldo <input type="number" name="adelanto" value="0" min="0" step="0.01"></label>
		<br>
		<label class="campo"><input type="checkbox" name="osecac" checked> Aporta OSECAC</label>
		<label class="campo"><input type="checkbox" name="afiliado"> Afiliado al sindicato</label>
		<label class="campo"><input type="checkbox" name="incluir_sac_proporcional"> Incluir SAC proporcional</label>
		<div class="acciones">
			<button type="button" hx-post="/calc/mensual" hx-target="#resultado-mensual" hx-include="closest form">Calcular</button>
			<button type="submit" class="secundario">Descargar PDF</button>
		</div>
	</form>
	<div id="resultado-mensual">
		{{if .MetaError}}{{template "error" .MetaError}}{{end}}
	</div>
</div>

<div id="panel-final" class="panel" hidden>
	<form method="post" action="/calc/final/pdf">
		<label class="campo">Tipo
			<select name="tipo">
				<option value="DESPIDO_SIN_CAUSA">Despido sin causa</option>
				<option value="RENUNCIA">Renuncia</option>
				<option value="FALLECIMIENTO">Fallecimiento</option>
			</select>
		</label>
		<label class="campo">Fecha de ingreso <input type="date" name="fecha_ingreso"></label>
		<label class="campo">Fecha de egreso <input type="date" name="fecha_egreso"></label>
		<br>
		<label class="campo">Mejor salario <input type="number" name="mejor_salario" value="0" min="0" step="0.01"></label>
		<label class="campo">Vacaciones no gozadas (días) <input type="number" name="vac_no_gozadas_dias" value="0" min="0" step="1"></label>
		<label class="campo">Preaviso (días) <input type="number" name="preaviso_dias" value="0" min="0" step="1"></label>
		<br>
		<label class="campo"><input type="checkbox" name="incluir_sac_vac" checked> SAC sobre vacaciones</label>
		<label class="campo"><input type="checkbox" name="incluir_sac_preaviso"> SAC sobre preaviso</label>
		<div class="acciones">
			<button type="button" hx-post="/calc/final" hx-target="#resultado-final" hx-include="closest form">Calcular</button>
			<button type="submit" class="secundario">Descargar PDF</button>
		</div>
	</form>
	<div id="resultado-final"></div>
</div>

<script>
function verPanel(cual, btn) {
	document.getElementById('panel-mensual').hidden = cual !== 'mensual';
	document.getElementById('panel-final').hidden = cual !== 'final';
	document.querySelectorAll('.tabs button').forEach(function (b) { b.classList.remove('activa'); });
	btn.classList.add('activa');
}
</script>
</body>
</html>
{{end}}
`
