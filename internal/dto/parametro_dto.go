package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ConfigMallaInput struct {
	Materiales      []string `json:"materiales"        validate:"dive,uuid"`
	IncluyeManoObra bool     `json:"incluye_mano_obra"`
}

type CrearParametroManoObraRequest struct {
	Nombre         string            `json:"nombre"          validate:"required,min=2,max=120"`
	Descripcion    *string           `json:"descripcion"`
	Tipo           string            `json:"tipo"            validate:"required"`
	AplicaPVC      bool              `json:"aplica_pvc"`
	TarifaPVC      *decimal.Decimal  `json:"tarifa_pvc"`
	AplicaAluminio bool              `json:"aplica_aluminio"`
	TarifaAluminio *decimal.Decimal  `json:"tarifa_aluminio"`
	ConfigMalla    *ConfigMallaInput `json:"config_malla"`
}

type ActualizarParametroManoObraRequest struct {
	Nombre         *string           `json:"nombre"          validate:"omitempty,min=2,max=120"`
	Descripcion    *string           `json:"descripcion"`
	AplicaPVC      *bool             `json:"aplica_pvc"`
	TarifaPVC      *decimal.Decimal  `json:"tarifa_pvc"`
	AplicaAluminio *bool             `json:"aplica_aluminio"`
	TarifaAluminio *decimal.Decimal  `json:"tarifa_aluminio"`
	ConfigMalla    *ConfigMallaInput `json:"config_malla"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ConfigMallaResponse struct {
	Materiales      []string `json:"materiales"`
	IncluyeManoObra bool     `json:"incluye_mano_obra"`
}

type ParametroManoObraResponse struct {
	ID             string               `json:"id"`
	Nombre         string               `json:"nombre"`
	Descripcion    *string              `json:"descripcion"`
	Tipo           string               `json:"tipo"`
	AplicaPVC      bool                 `json:"aplica_pvc"`
	TarifaPVC      decimal.Decimal      `json:"tarifa_pvc"`
	AplicaAluminio bool                 `json:"aplica_aluminio"`
	TarifaAluminio decimal.Decimal      `json:"tarifa_aluminio"`
	ConfigMalla    *ConfigMallaResponse `json:"config_malla,omitempty"`
	Activo         bool                 `json:"activo"`
}
