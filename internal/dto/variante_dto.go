package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearVarianteRequest serves the three variant families; they share shape.
type CrearVarianteRequest struct {
	Nombre      string           `json:"nombre"       validate:"required,min=1,max=120"`
	Descripcion *string          `json:"descripcion"`
	AjusteCosto *decimal.Decimal `json:"ajuste_costo"`
}

type ActualizarVarianteRequest struct {
	Nombre      *string          `json:"nombre"       validate:"omitempty,min=1,max=120"`
	Descripcion *string          `json:"descripcion"`
	AjusteCosto *decimal.Decimal `json:"ajuste_costo"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type VarianteResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion *string         `json:"descripcion"`
	AjusteCosto decimal.Decimal `json:"ajuste_costo"`
	Activo      bool            `json:"activo"`
}

// VariantesTiposResponse is the combined payload of GET /variantes/tipos,
// each list filtered to active variants.
type VariantesTiposResponse struct {
	ColoresPVC      []VarianteResponse `json:"coloresPVC"`
	ColoresAluminio []VarianteResponse `json:"coloresAluminio"`
	TiposVidrio     []VarianteResponse `json:"tiposVidrio"`
}
