package model

import (
	"time"

	"github.com/google/uuid"
)

// Categorías válidas para un tipo de producto.
const (
	CategoriaVentanas   = "ventanas"
	CategoriaPuertas    = "puertas"
	CategoriaBarandales = "barandales"
	CategoriaDivisiones = "divisiones"
	CategoriaOtro       = "otro"
)

// CategoriasProducto lists every valid product-type category.
var CategoriasProducto = []string{
	CategoriaVentanas, CategoriaPuertas, CategoriaBarandales,
	CategoriaDivisiones, CategoriaOtro,
}

// TipoProducto is a catalog family (e.g. "Ventana Corredera") that owns
// zero or more models. Deactivating a tipo does not touch its models; they
// simply become unreachable through the default active-parent listing.
type TipoProducto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"index;not null"`
	Descripcion *string
	Categoria   string `gorm:"type:varchar(20);not null"`
	Activo      bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Modelos []TipoProductoModelo `gorm:"foreignKey:TipoProductoID"`
}

func (TipoProducto) TableName() string { return "tipos_producto" }

// TipoProductoModelo is a concrete model under a product type (e.g. "VC-100").
type TipoProductoModelo struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TipoProductoID uuid.UUID `gorm:"type:uuid;not null;index"`
	Nombre         string    `gorm:"not null"`
	Descripcion    *string
	Codigo         *string
	Activo         bool `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (TipoProductoModelo) TableName() string { return "tipo_producto_modelos" }

// CategoriaValida reports whether c is a known product-type category.
func CategoriaValida(c string) bool {
	for _, v := range CategoriasProducto {
		if v == c {
			return true
		}
	}
	return false
}
