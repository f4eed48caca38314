package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearFormulaRequest struct {
	TipoProductoID string `json:"tipo_producto_id" validate:"required,uuid"`
	MaterialID     string `json:"material_id"      validate:"required,uuid"`
	Expresion      string `json:"expresion"        validate:"required,min=1"`
	Opcional       bool   `json:"opcional"`
	Orden          int    `json:"orden"            validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type FormulaResponse struct {
	ID             string `json:"id"`
	TipoProductoID string `json:"tipo_producto_id"`
	MaterialID     string `json:"material_id"`
	Material       string `json:"material,omitempty"`
	MaterialEsBase bool   `json:"material_es_base"`
	Expresion      string `json:"expresion"`
	Opcional       bool   `json:"opcional"`
	Orden          int    `json:"orden"`
	Activo         bool   `json:"activo"`
}
