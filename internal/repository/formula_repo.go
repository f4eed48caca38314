package repository

import (
	"context"

	"github.com/celvintr/arquialum-sub003/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FormulaRepository interface {
	Create(ctx context.Context, f *model.Formula) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Formula, error)
	// ListByTipoProducto returns active formulas ordered by orden ASC with
	// creation time as the stable tie-breaker.
	ListByTipoProducto(ctx context.Context, tipoID uuid.UUID, filter ActivoFilter) ([]model.Formula, error)
	// OrdenExiste reports whether an active formula of the product already
	// uses the given display order.
	OrdenExiste(ctx context.Context, tipoID uuid.UUID, orden int) (bool, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type formulaRepo struct{ db *gorm.DB }

func NewFormulaRepository(db *gorm.DB) FormulaRepository { return &formulaRepo{db: db} }

func (r *formulaRepo) Create(ctx context.Context, f *model.Formula) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *formulaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Formula, error) {
	var f model.Formula
	err := r.db.WithContext(ctx).Preload("Material").First(&f, id).Error
	return &f, err
}

func (r *formulaRepo) ListByTipoProducto(ctx context.Context, tipoID uuid.UUID, filter ActivoFilter) ([]model.Formula, error) {
	var formulas []model.Formula
	q := filter.Apply(r.db.WithContext(ctx).Model(&model.Formula{}).Where("tipo_producto_id = ?", tipoID))
	err := q.Preload("Material").Order("orden ASC, created_at ASC").Find(&formulas).Error
	return formulas, err
}

func (r *formulaRepo) OrdenExiste(ctx context.Context, tipoID uuid.UUID, orden int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Formula{}).
		Where("tipo_producto_id = ? AND orden = ? AND activo = true", tipoID, orden).
		Count(&count).Error
	return count > 0, err
}

func (r *formulaRepo) Desactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Formula{}).Where("id = ?", id).Update("activo", false).Error
}
