package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Etiquetas de tipo de material que un proveedor puede surtir.
var TiposMaterialProveedor = []string{
	"pvc", "aluminio", "vidrio", "herraje", "accesorio", "otro",
}

// Proveedor represents a supplier with commercial data. TiposMaterial is a
// fixed-enumeration tag list stored as JSON; DescuentoGeneral applies to
// every purchase and must stay within [0,100].
type Proveedor struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre           string    `gorm:"index;not null"`
	Contacto         *string
	Telefono         *string
	Email            *string
	Direccion        *string
	Pais             string          `gorm:"not null;default:'México'"`
	TiposMaterial    []string        `gorm:"serializer:json"`
	DescuentoGeneral decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	Activo           bool            `gorm:"not null;default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Materiales []Material `gorm:"foreignKey:ProveedorID"`
}

func (Proveedor) TableName() string { return "proveedores" }

// TipoMaterialValido reports whether t is a known supplier material tag.
func TipoMaterialValido(t string) bool {
	for _, v := range TiposMaterialProveedor {
		if v == t {
			return true
		}
	}
	return false
}
