package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Las variantes son atributos seleccionables de un producto (color, vidrio)
// con su propio ajuste de costo. Cada familia vive en su tabla fija.

type ColorPVC struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"uniqueIndex;not null"`
	Descripcion *string
	AjusteCosto decimal.Decimal `gorm:"type:decimal(12,4);not null;default:0"`
	Activo      bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ColorPVC) TableName() string { return "colores_pvc" }

type ColorAluminio struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"uniqueIndex;not null"`
	Descripcion *string
	AjusteCosto decimal.Decimal `gorm:"type:decimal(12,4);not null;default:0"`
	Activo      bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ColorAluminio) TableName() string { return "colores_aluminio" }

type TipoVidrio struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"uniqueIndex;not null"`
	Descripcion *string
	AjusteCosto decimal.Decimal `gorm:"type:decimal(12,4);not null;default:0"`
	Activo      bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (TipoVidrio) TableName() string { return "tipos_vidrio" }
