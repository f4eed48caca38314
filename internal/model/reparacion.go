package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Reparacion is a repair service definition offered alongside the catalog.
// TiempoEstimadoHoras must be at least 1.
type Reparacion struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre              string    `gorm:"not null"`
	Descripcion         *string
	Categoria           string          `gorm:"not null"`
	PrecioBase          decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TiempoEstimadoHoras int             `gorm:"not null;default:1"`
	IncluyeMateriales   bool            `gorm:"not null;default:false"`
	Activo              bool            `gorm:"not null;default:true"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (Reparacion) TableName() string { return "reparaciones" }
