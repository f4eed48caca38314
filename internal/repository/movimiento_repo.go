package repository

import (
	"context"

	"github.com/celvintr/arquialum-sub003/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MovimientoFilter narrows ledger listings.
type MovimientoFilter struct {
	MaterialID *uuid.UUID
	Tipo       string
	Motivo     string
	Page       int
	Limit      int
}

// MovimientoRepository is intentionally append-only: there is no Update and
// no Delete. Corrections are compensating movements.
type MovimientoRepository interface {
	CreateTx(tx *gorm.DB, m *model.MovimientoInventario) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.MovimientoInventario, error)
	List(ctx context.Context, filter MovimientoFilter) ([]model.MovimientoInventario, int64, error)
	// NextNumero draws the next ledger number from a PostgreSQL sequence so
	// concurrent writers never collide.
	NextNumero(ctx context.Context, tx *gorm.DB) (int64, error)
	DB() *gorm.DB
}

type movimientoRepo struct{ db *gorm.DB }

func NewMovimientoRepository(db *gorm.DB) MovimientoRepository { return &movimientoRepo{db: db} }

func (r *movimientoRepo) DB() *gorm.DB { return r.db }

func (r *movimientoRepo) CreateTx(tx *gorm.DB, m *model.MovimientoInventario) error {
	return tx.Create(m).Error
}

func (r *movimientoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.MovimientoInventario, error) {
	var m model.MovimientoInventario
	err := r.db.WithContext(ctx).Preload("Material").First(&m, id).Error
	return &m, err
}

func (r *movimientoRepo) List(ctx context.Context, filter MovimientoFilter) ([]model.MovimientoInventario, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.MovimientoInventario{}).Preload("Material")

	if filter.MaterialID != nil {
		q = q.Where("material_id = ?", *filter.MaterialID)
	}
	if filter.Tipo != "" {
		q = q.Where("tipo = ?", filter.Tipo)
	}
	if filter.Motivo != "" {
		q = q.Where("motivo = ?", filter.Motivo)
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

	var movimientos []model.MovimientoInventario
	err := q.Order("numero DESC").Offset(offset).Limit(limit).Find(&movimientos).Error
	return movimientos, total, err
}

func (r *movimientoRepo) NextNumero(ctx context.Context, tx *gorm.DB) (int64, error) {
	var num int64
	err := tx.WithContext(ctx).Raw("SELECT nextval('movimientos_inventario_numero_seq')").Scan(&num).Error
	return num, err
}
