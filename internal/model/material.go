package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Material is a raw material consumed by product formulas. EsBase marks the
// canonical base materials (perfiles, refuerzos) that formulas reference
// directly; the rest are direct materials such as herrajes or accesorios.
// Stock is decimal because profiles are cut and tracked in meters.
type Material struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre         string    `gorm:"index;not null"`
	Descripcion    *string
	Unidad         string          `gorm:"not null;default:'metro'"`
	Costo          decimal.Decimal `gorm:"type:decimal(12,4);not null;default:0"`
	Stock          decimal.Decimal `gorm:"type:decimal(12,4);not null;default:0"`
	StockMinimo    decimal.Decimal `gorm:"type:decimal(12,4);not null;default:0"`
	TieneVariantes bool            `gorm:"not null;default:false"`
	EsBase         bool            `gorm:"not null;default:false"`
	ProveedorID    *uuid.UUID      `gorm:"type:uuid;index"`
	Activo         bool            `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Proveedor *Proveedor `gorm:"foreignKey:ProveedorID"`
}

func (Material) TableName() string { return "materiales" }
