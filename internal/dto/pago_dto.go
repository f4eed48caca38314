package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistrarPagoRequest struct {
	FacturaID string            `json:"factura_id" validate:"required,uuid"`
	ClienteID string            `json:"cliente_id" validate:"required,uuid"`
	Monto     decimal.Decimal   `json:"monto"      validate:"required,gt=0"`
	Metodo    string            `json:"metodo"     validate:"required"`
	Detalles  map[string]string `json:"detalles"`
	Notas     string            `json:"notas"`
	// ClienteEmail triggers receipt delivery once the payment is confirmed.
	ClienteEmail *string `json:"cliente_email" validate:"omitempty,email"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type PagoFilter struct {
	FacturaID string `form:"factura_id" validate:"omitempty,uuid"`
	ClienteID string `form:"cliente_id" validate:"omitempty,uuid"`
	Estado    string `form:"estado"`
	Metodo    string `form:"metodo"`
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=100" validate:"min=1,max=500"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PagoResponse struct {
	ID             string            `json:"id"`
	Numero         int64             `json:"numero"`
	FacturaID      string            `json:"factura_id"`
	ClienteID      string            `json:"cliente_id"`
	Monto          decimal.Decimal   `json:"monto"`
	Metodo         string            `json:"metodo"`
	Detalles       map[string]string `json:"detalles,omitempty"`
	Fecha          string            `json:"fecha"`
	Estado         string            `json:"estado"`
	Notas          string            `json:"notas,omitempty"`
	ComprobanteURL *string           `json:"comprobante_url"`
}

type PagoListResponse struct {
	Data       []PagoResponse `json:"data"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}
