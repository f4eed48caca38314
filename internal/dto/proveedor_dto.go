package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProveedorRequest struct {
	Nombre           string           `json:"nombre"            validate:"required,min=2"`
	Contacto         *string          `json:"contacto"`
	Telefono         *string          `json:"telefono"`
	Email            *string          `json:"email"             validate:"omitempty,email"`
	Direccion        *string          `json:"direccion"`
	Pais             *string          `json:"pais"`
	TiposMaterial    []string         `json:"tipos_material"`
	DescuentoGeneral *decimal.Decimal `json:"descuento_general"`
}

type ActualizarProveedorRequest struct {
	Nombre           *string          `json:"nombre"            validate:"omitempty,min=2"`
	Contacto         *string          `json:"contacto"`
	Telefono         *string          `json:"telefono"`
	Email            *string          `json:"email"             validate:"omitempty,email"`
	Direccion        *string          `json:"direccion"`
	Pais             *string          `json:"pais"`
	TiposMaterial    []string         `json:"tipos_material"`
	DescuentoGeneral *decimal.Decimal `json:"descuento_general"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProveedorResponse struct {
	ID               string          `json:"id"`
	Nombre           string          `json:"nombre"`
	Contacto         *string         `json:"contacto"`
	Telefono         *string         `json:"telefono"`
	Email            *string         `json:"email"`
	Direccion        *string         `json:"direccion"`
	Pais             string          `json:"pais"`
	TiposMaterial    []string        `json:"tipos_material"`
	DescuentoGeneral decimal.Decimal `json:"descuento_general"`
	Activo           bool            `json:"activo"`
}
