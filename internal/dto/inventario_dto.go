package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// RegistrarMovimientoRequest records one ledger entry. PermitirNegativo is an
// explicit supervisor override for the no-negative-stock policy; without it a
// salida/transferencia that would drive stock below zero is rejected.
type RegistrarMovimientoRequest struct {
	MaterialID       string          `json:"material_id"       validate:"required,uuid"`
	Tipo             string          `json:"tipo"              validate:"required"`
	Motivo           string          `json:"motivo"            validate:"required"`
	Cantidad         decimal.Decimal `json:"cantidad"          validate:"required"`
	CostoUnitario    *decimal.Decimal `json:"costo_unitario"`
	OrdenTrabajoID   *string         `json:"orden_trabajo_id"  validate:"omitempty,uuid"`
	FacturaID        *string         `json:"factura_id"        validate:"omitempty,uuid"`
	ProveedorID      *string         `json:"proveedor_id"      validate:"omitempty,uuid"`
	Notas            string          `json:"notas"`
	PermitirNegativo bool            `json:"permitir_negativo"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type MovimientoFilter struct {
	MaterialID string `form:"material_id" validate:"omitempty,uuid"`
	Tipo       string `form:"tipo"`
	Motivo     string `form:"motivo"`
	Page       int    `form:"page,default=1"   validate:"min=1"`
	Limit      int    `form:"limit,default=100" validate:"min=1,max=500"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MovimientoResponse struct {
	ID               string          `json:"id"`
	Numero           int64           `json:"numero"`
	Tipo             string          `json:"tipo"`
	Motivo           string          `json:"motivo"`
	MaterialID       string          `json:"material_id"`
	Material         string          `json:"material,omitempty"`
	Cantidad         decimal.Decimal `json:"cantidad"`
	CantidadAnterior decimal.Decimal `json:"cantidad_anterior"`
	CantidadNueva    decimal.Decimal `json:"cantidad_nueva"`
	CostoUnitario    decimal.Decimal `json:"costo_unitario"`
	CostoTotal       decimal.Decimal `json:"costo_total"`
	Fecha            string          `json:"fecha"`
	UsuarioID        string          `json:"usuario_id"`
	OrdenTrabajoID   *string         `json:"orden_trabajo_id,omitempty"`
	FacturaID        *string         `json:"factura_id,omitempty"`
	ProveedorID      *string         `json:"proveedor_id,omitempty"`
	Notas            string          `json:"notas,omitempty"`
}

type MovimientoListResponse struct {
	Data       []MovimientoResponse `json:"data"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	TotalPages int                  `json:"total_pages"`
}
