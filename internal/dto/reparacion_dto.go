package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearReparacionRequest struct {
	Nombre              string           `json:"nombre"                validate:"required,min=2,max=120"`
	Descripcion         *string          `json:"descripcion"`
	Categoria           string           `json:"categoria"             validate:"required"`
	PrecioBase          decimal.Decimal  `json:"precio_base"           validate:"min=0"`
	TiempoEstimadoHoras int              `json:"tiempo_estimado_horas" validate:"required,min=1"`
	IncluyeMateriales   bool             `json:"incluye_materiales"`
}

type ActualizarReparacionRequest struct {
	Nombre              *string          `json:"nombre"                validate:"omitempty,min=2,max=120"`
	Descripcion         *string          `json:"descripcion"`
	Categoria           *string          `json:"categoria"`
	PrecioBase          *decimal.Decimal `json:"precio_base"`
	TiempoEstimadoHoras *int             `json:"tiempo_estimado_horas" validate:"omitempty,min=1"`
	IncluyeMateriales   *bool            `json:"incluye_materiales"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ReparacionResponse struct {
	ID                  string          `json:"id"`
	Nombre              string          `json:"nombre"`
	Descripcion         *string         `json:"descripcion"`
	Categoria           string          `json:"categoria"`
	PrecioBase          decimal.Decimal `json:"precio_base"`
	TiempoEstimadoHoras int             `json:"tiempo_estimado_horas"`
	IncluyeMateriales   bool            `json:"incluye_materiales"`
	Activo              bool            `json:"activo"`
}
