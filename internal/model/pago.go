package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Métodos de pago.
const (
	PagoEfectivo       = "efectivo"
	PagoTransferencia  = "transferencia"
	PagoCheque         = "cheque"
	PagoTarjetaCredito = "tarjeta_credito"
	PagoTarjetaDebito  = "tarjeta_debito"
)

var MetodosPago = []string{
	PagoEfectivo, PagoTransferencia, PagoCheque, PagoTarjetaCredito, PagoTarjetaDebito,
}

// Estados de un pago. pendiente es el único estado no terminal.
const (
	PagoPendiente  = "pendiente"
	PagoConfirmado = "confirmado"
	PagoRechazado  = "rechazado"
)

// DetallesRequeridos maps each payment method to the detail fields it must
// carry (e.g. a cheque without numero_cheque is invalid).
var DetallesRequeridos = map[string][]string{
	PagoCheque:         {"numero_cheque", "banco"},
	PagoTransferencia:  {"referencia"},
	PagoTarjetaCredito: {"ultimos_digitos"},
	PagoTarjetaDebito:  {"ultimos_digitos"},
}

// Pago registra un pago contra una factura. Como el libro de inventario, es
// append-only: la única mutación permitida es la transición de estado
// pendiente → confirmado|rechazado (y la URL del comprobante generado).
type Pago struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Numero         int64     `gorm:"uniqueIndex;not null"`
	FacturaID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ClienteID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Monto          decimal.Decimal   `gorm:"type:decimal(14,2);not null"`
	Metodo         string            `gorm:"type:varchar(20);not null"`
	Detalles       map[string]string `gorm:"serializer:json"`
	Fecha          time.Time         `gorm:"not null"`
	Estado         string            `gorm:"type:varchar(20);not null;default:'pendiente'"`
	Notas          string
	ComprobanteURL *string
	CreatedAt      time.Time
}

func (Pago) TableName() string { return "pagos" }

// MetodoPagoValido reports whether m is a known payment method.
func MetodoPagoValido(m string) bool {
	for _, v := range MetodosPago {
		if v == m {
			return true
		}
	}
	return false
}
