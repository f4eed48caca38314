package repository

import (
	"context"
	"errors"

	"github.com/celvintr/arquialum-sub003/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrPagoNoPendiente reports a guarded transition that matched no row: the
// payment was already in a terminal state when the update ran.
var ErrPagoNoPendiente = errors.New("el pago ya no está pendiente")

// PagoFilter narrows payment listings.
type PagoFilter struct {
	FacturaID *uuid.UUID
	ClienteID *uuid.UUID
	Estado    string
	Metodo    string
	Page      int
	Limit     int
}

// PagoRepository is append-only except for the estado transition and the
// receipt URL written by the worker after rendering the PDF.
type PagoRepository interface {
	// Create draws the ledger number and inserts in one transaction, same as
	// the inventory ledger.
	Create(ctx context.Context, p *model.Pago) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Pago, error)
	List(ctx context.Context, filter PagoFilter) ([]model.Pago, int64, error)
	// TransicionarEstado moves a pending payment into a terminal state with a
	// guarded update. Returns ErrPagoNoPendiente when the row was already
	// terminal, so concurrent transitions have exactly one winner.
	TransicionarEstado(ctx context.Context, id uuid.UUID, estado string) error
	UpdateComprobanteURL(ctx context.Context, id uuid.UUID, url string) error
}

type pagoRepo struct{ db *gorm.DB }

func NewPagoRepository(db *gorm.DB) PagoRepository { return &pagoRepo{db: db} }

func (r *pagoRepo) Create(ctx context.Context, p *model.Pago) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Raw("SELECT nextval('pagos_numero_seq')").Scan(&p.Numero).Error; err != nil {
			return err
		}
		return tx.Create(p).Error
	})
}

func (r *pagoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Pago, error) {
	var p model.Pago
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *pagoRepo) List(ctx context.Context, filter PagoFilter) ([]model.Pago, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Pago{})

	if filter.FacturaID != nil {
		q = q.Where("factura_id = ?", *filter.FacturaID)
	}
	if filter.ClienteID != nil {
		q = q.Where("cliente_id = ?", *filter.ClienteID)
	}
	if filter.Estado != "" {
		q = q.Where("estado = ?", filter.Estado)
	}
	if filter.Metodo != "" {
		q = q.Where("metodo = ?", filter.Metodo)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	limit := filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 500 {
		limit = 100
	}
	offset := (page - 1) * limit

	var pagos []model.Pago
	err := q.Order("numero DESC").Offset(offset).Limit(limit).Find(&pagos).Error
	return pagos, total, err
}

func (r *pagoRepo) TransicionarEstado(ctx context.Context, id uuid.UUID, estado string) error {
	res := r.db.WithContext(ctx).Model(&model.Pago{}).
		Where("id = ? AND estado = ?", id, model.PagoPendiente).
		Update("estado", estado)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPagoNoPendiente
	}
	return nil
}

func (r *pagoRepo) UpdateComprobanteURL(ctx context.Context, id uuid.UUID, url string) error {
	return r.db.WithContext(ctx).Model(&model.Pago{}).Where("id = ?", id).Update("comprobante_url", url).Error
}
