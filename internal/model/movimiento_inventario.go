package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovimientoEntrada       = "entrada"
	MovimientoSalida        = "salida"
	MovimientoAjuste        = "ajuste"
	MovimientoTransferencia = "transferencia"
)

var TiposMovimiento = []string{
	MovimientoEntrada, MovimientoSalida, MovimientoAjuste, MovimientoTransferencia,
}

// Motivos de movimiento.
var MotivosMovimiento = []string{
	"compra", "venta", "produccion", "ajuste", "merma", "devolucion",
}

// MovimientoInventario registra cada cambio de stock de un material.
// Es un libro mayor append-only: nunca se actualiza ni se borra; una
// corrección es siempre un movimiento compensatorio nuevo.
//
// Invariante: CantidadNueva = CantidadAnterior + Cantidad con signo según
// el tipo (entrada/ajuste suman, salida/transferencia restan).
type MovimientoInventario struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Numero           int64     `gorm:"uniqueIndex;not null"`
	Tipo             string    `gorm:"type:varchar(20);not null"`
	Motivo           string    `gorm:"type:varchar(20);not null"`
	MaterialID       uuid.UUID `gorm:"type:uuid;not null;index"`
	OrdenTrabajoID   *uuid.UUID `gorm:"type:uuid"`
	FacturaID        *uuid.UUID `gorm:"type:uuid"`
	ProveedorID      *uuid.UUID `gorm:"type:uuid"`
	Cantidad         decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	CantidadAnterior decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	CantidadNueva    decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	CostoUnitario    decimal.Decimal `gorm:"type:decimal(12,4);not null;default:0"`
	CostoTotal       decimal.Decimal `gorm:"type:decimal(14,4);not null;default:0"`
	Fecha            time.Time       `gorm:"not null"`
	UsuarioID        uuid.UUID       `gorm:"type:uuid;not null"`
	Notas            string
	CreatedAt        time.Time

	Material *Material `gorm:"foreignKey:MaterialID"`
}

func (MovimientoInventario) TableName() string { return "movimientos_inventario" }

// TipoMovimientoValido reports whether t is a known movement type.
func TipoMovimientoValido(t string) bool {
	for _, v := range TiposMovimiento {
		if v == t {
			return true
		}
	}
	return false
}

// MotivoMovimientoValido reports whether m is a known movement reason.
func MotivoMovimientoValido(m string) bool {
	for _, v := range MotivosMovimiento {
		if v == m {
			return true
		}
	}
	return false
}

// MovimientoSuma reports whether the movement type adds stock.
// entrada y ajuste suman; salida y transferencia restan.
func MovimientoSuma(tipo string) bool {
	return tipo == MovimientoEntrada || tipo == MovimientoAjuste
}
