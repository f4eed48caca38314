package model

import (
	"time"

	"github.com/google/uuid"
)

// Formula links a product type to a material through an opaque computation
// expression ("alto * 2 + ancho * 2 - 0.12"). The expression is evaluated by
// the quotation engine, not here. A formula is never deleted: deactivating it
// keeps the audit trail while removing it from active listings.
//
// Both direct materials and base materials go through this single linkage;
// the discriminant lives on Material.EsBase.
type Formula struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TipoProductoID uuid.UUID `gorm:"type:uuid;not null;index:idx_formulas_tipo"`
	MaterialID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Expresion      string    `gorm:"not null"`
	Opcional       bool      `gorm:"not null;default:false"`
	Orden          int       `gorm:"not null;default:0"`
	Activo         bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time

	TipoProducto *TipoProducto `gorm:"foreignKey:TipoProductoID"`
	Material     *Material     `gorm:"foreignKey:MaterialID"`
}

func (Formula) TableName() string { return "formulas" }
