package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearMaterialRequest struct {
	Nombre         string           `json:"nombre"          validate:"required,min=2,max=120"`
	Descripcion    *string          `json:"descripcion"`
	Unidad         string           `json:"unidad"`
	Costo          decimal.Decimal  `json:"costo"           validate:"min=0"`
	Stock          *decimal.Decimal `json:"stock"`
	StockMinimo    *decimal.Decimal `json:"stock_minimo"`
	TieneVariantes bool             `json:"tiene_variantes"`
	EsBase         bool             `json:"es_base"`
	ProveedorID    *string          `json:"proveedor_id"    validate:"omitempty,uuid"`
}

type ActualizarMaterialRequest struct {
	Nombre         *string          `json:"nombre"          validate:"omitempty,min=2,max=120"`
	Descripcion    *string          `json:"descripcion"`
	Unidad         *string          `json:"unidad"`
	Costo          *decimal.Decimal `json:"costo"`
	StockMinimo    *decimal.Decimal `json:"stock_minimo"`
	TieneVariantes *bool            `json:"tiene_variantes"`
	EsBase         *bool            `json:"es_base"`
	ProveedorID    *string          `json:"proveedor_id"    validate:"omitempty,uuid"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type MaterialFilter struct {
	Activo      string `form:"activo"`
	Nombre      string `form:"nombre"`
	ProveedorID string `form:"proveedor_id"`
	EsBase      *bool  `form:"es_base"`
	Page        int    `form:"page,default=1"   validate:"min=1"`
	Limit       int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MaterialResponse struct {
	ID             string          `json:"id"`
	Nombre         string          `json:"nombre"`
	Descripcion    *string         `json:"descripcion"`
	Unidad         string          `json:"unidad"`
	Costo          decimal.Decimal `json:"costo"`
	Stock          decimal.Decimal `json:"stock"`
	StockMinimo    decimal.Decimal `json:"stock_minimo"`
	TieneVariantes bool            `json:"tiene_variantes"`
	EsBase         bool            `json:"es_base"`
	ProveedorID    *string         `json:"proveedor_id"`
	Activo         bool            `json:"activo"`
}

type MaterialListResponse struct {
	Data       []MaterialResponse `json:"data"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}

// MaterialStatsResponse matches the legacy stats payload shape.
type MaterialStatsResponse struct {
	Total        int64 `json:"total"`
	ConVariantes int64 `json:"conVariantes"`
	SinStock     int64 `json:"sinStock"`
	Proveedores  int64 `json:"proveedores"`
}

// AlertaStockResponse reports a material at or below its minimum stock.
type AlertaStockResponse struct {
	MaterialID  string          `json:"material_id"`
	Nombre      string          `json:"nombre"`
	Stock       decimal.Decimal `json:"stock"`
	StockMinimo decimal.Decimal `json:"stock_minimo"`
	Unidad      string          `json:"unidad"`
}
