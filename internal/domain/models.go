package domain

// Settlement types accepted by the calculation service.
const (
	TipoDespidoSinCausa = "DESPIDO_SIN_CAUSA"
	TipoRenuncia        = "RENUNCIA"
	TipoFallecimiento   = "FALLECIMIENTO"
)

// EntradaMensual is the monthly calculation request body. Field names and
// defaults follow the calculation service contract; numeric fields are
// already coerced (bad input becomes 0, never an error).
type EntradaMensual struct {
	Rama       string  `json:"rama"`
	Agrup      string  `json:"agrup"`
	Categoria  string  `json:"categoria"`
	Mes        string  `json:"mes"`
	AniosAntig float64 `json:"anios_antig"`
	Osecac     bool    `json:"osecac"`
	Afiliado   bool    `json:"afiliado"`
	SindPct    float64 `json:"sind_pct"`
	IncluirSAC bool    `json:"incluir_sac_proporcional"`
	Adelanto   float64 `json:"adelanto"`
}

// EntradaFinal is the final-settlement calculation request body. Dates are
// passed through as opaque YYYY-MM-DD tokens; calendar validation belongs
// to the calculation service.
type EntradaFinal struct {
	Tipo               string  `json:"tipo"`
	FechaIngreso       string  `json:"fecha_ingreso"`
	FechaEgreso        string  `json:"fecha_egreso"`
	MejorSalario       float64 `json:"mejor_salario"`
	VacNoGozadasDias   float64 `json:"vac_no_gozadas_dias"`
	IncluirSACVac      bool    `json:"incluir_sac_vac"`
	PreavisoDias       float64 `json:"preaviso_dias"`
	IncluirSACPreaviso bool    `json:"incluir_sac_preaviso"`
}

// EscalaMensual is the base-scale sub-record of a monthly result.
type EscalaMensual struct {
	Basico   float64 `json:"basico"`
	NoRem    float64 `json:"no_rem"`
	SumaFija float64 `json:"suma_fija"`
}

// ConceptosMensual holds the additively present wage concepts.
type ConceptosMensual struct {
	AntigRem       float64 `json:"antig_rem"`
	AntigNR        float64 `json:"antig_nr"`
	PresentismoRem float64 `json:"presentismo_rem"`
	PresentismoNR  float64 `json:"presentismo_nr"`
	SACRem         float64 `json:"sac_rem"`
	SACNR          float64 `json:"sac_nr"`
}

// DescuentosMensual is the deductions-detail sub-record.
type DescuentosMensual struct {
	Jubilacion11 float64 `json:"jubilacion_11"`
	PAMI3        float64 `json:"pami_3"`
	FAECYS05     float64 `json:"faecys_0_5"`
	Sindicato    float64 `json:"sindicato"`
	ObraSocial3  float64 `json:"obra_social_3"`
	Osecac100    float64 `json:"osecac_100"`
	Adelanto     float64 `json:"adelanto"`
}

// TotalesMensual carries the running totals, displayed verbatim.
type TotalesMensual struct {
	TotalRem   float64 `json:"total_rem"`
	TotalNoRem float64 `json:"total_no_rem"`
	Descuentos float64 `json:"descuentos"`
	Neto       float64 `json:"neto"`
}

// MetaMensual is informational; the form does not render it.
type MetaMensual struct {
	MesesSemestre int    `json:"meses_semestre"`
	IncluyeSAC    bool   `json:"incluye_sac"`
	CalculoID     string `json:"calculo_id,omitempty"`
}

// ResultadoMensual is the monthly calculation result. Immutable once
// received; consumed exactly once to build display rows.
type ResultadoMensual struct {
	Escala     EscalaMensual     `json:"escala"`
	Conceptos  ConceptosMensual  `json:"conceptos"`
	Totales    TotalesMensual    `json:"totales"`
	Descuentos DescuentosMensual `json:"detalles_descuentos"`
	Meta       MetaMensual       `json:"meta"`
}

// ConceptosFinal holds the settlement concepts, all indemnizable.
type ConceptosFinal struct {
	VacNoGozadas float64 `json:"vacaciones_no_gozadas"`
	SACVac       float64 `json:"sac_sobre_vacaciones"`
	Art245       float64 `json:"indemnizacion_art_245"`
	Art248       float64 `json:"indemnizacion_art_248"`
	Preaviso     float64 `json:"preaviso"`
	SACPreaviso  float64 `json:"sac_sobre_preaviso"`
}

// TotalesFinal carries the settlement totals.
type TotalesFinal struct {
	TotalIndemnizatorio float64 `json:"total_indemnizatorio"`
	Neto                float64 `json:"neto"`
}

// MetaFinal echoes the settlement type and carries the integer count of
// years counted for severance purposes.
type MetaFinal struct {
	Tipo                 string `json:"tipo"`
	AniosIndemnizatorios int    `json:"anios_indemnizatorios"`
	CalculoID            string `json:"calculo_id,omitempty"`
}

// ResultadoFinal is the final-settlement calculation result.
type ResultadoFinal struct {
	Meta      MetaFinal      `json:"meta"`
	Conceptos ConceptosFinal `json:"conceptos"`
	Totales   TotalesFinal   `json:"totales"`
}

// DisplayRow is one rendered line of a breakdown. At most one of the three
// amounts is non-zero per row, by construction of the mapper rules.
type DisplayRow struct {
	Concepto       string
	Remunerativo   float64
	NoRemunerativo float64 // non-remunerative (monthly) or indemnizable (final)
	Deduccion      float64
}

// FilaEscala is one row of the scale master, as stored by the stub
// calculation service. Mes is always a YYYY-MM token.
type FilaEscala struct {
	Rama      string  `json:"Rama"`
	Agrup     string  `json:"Agrupamiento"`
	Categoria string  `json:"Categoria"`
	Mes       string  `json:"Mes"`
	Basico    float64 `json:"Basico"`
	NoRem     float64 `json:"No Remunerativo"`
	SumaFija  float64 `json:"SUMA_FIJA"`
}
