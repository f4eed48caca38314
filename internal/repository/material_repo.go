package repository

import (
	"context"

	"github.com/celvintr/arquialum-sub003/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MaterialFilter narrows material listings.
type MaterialFilter struct {
	ActivoFilter
	Nombre      string
	ProveedorID string
	EsBase      *bool
	Page        int
	Limit       int
}

// MaterialStats feeds GET /materiales/stats.
type MaterialStats struct {
	Total         int64 `json:"total"`
	ConVariantes  int64 `json:"conVariantes"`
	SinStock      int64 `json:"sinStock"`
	Proveedores   int64 `json:"proveedores"`
}

type MaterialRepository interface {
	Create(ctx context.Context, m *model.Material) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Material, error)
	List(ctx context.Context, filter MaterialFilter) ([]model.Material, int64, error)
	Update(ctx context.Context, m *model.Material) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*MaterialStats, error)
	ListBajoMinimo(ctx context.Context) ([]model.Material, error)

	// Used inside ledger transactions — callers must pass the tx instance.
	// FindByIDForUpdateTx takes a row lock so concurrent movements against the
	// same material serialize at the storage layer.
	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Material, error)
	SetStockTx(tx *gorm.DB, id uuid.UUID, stock decimal.Decimal) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type materialRepo struct{ db *gorm.DB }

func NewMaterialRepository(db *gorm.DB) MaterialRepository { return &materialRepo{db: db} }

func (r *materialRepo) DB() *gorm.DB { return r.db }

func (r *materialRepo) Create(ctx context.Context, m *model.Material) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *materialRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Material, error) {
	var m model.Material
	err := r.db.WithContext(ctx).First(&m, id).Error
	return &m, err
}

func (r *materialRepo) List(ctx context.Context, filter MaterialFilter) ([]model.Material, int64, error) {
	var materiales []model.Material
	var total int64

	q := filter.Apply(r.db.WithContext(ctx).Model(&model.Material{}))

	if filter.Nombre != "" {
		q = q.Where("nombre ILIKE ?", "%"+filter.Nombre+"%")
	}
	if filter.ProveedorID != "" {
		q = q.Where("proveedor_id = ?", filter.ProveedorID)
	}
	if filter.EsBase != nil {
		q = q.Where("es_base = ?", *filter.EsBase)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	limit := filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}
	offset := (page - 1) * limit

	err := q.Order("nombre ASC").Limit(limit).Offset(offset).Find(&materiales).Error
	return materiales, total, err
}

func (r *materialRepo) Update(ctx context.Context, m *model.Material) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *materialRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Material{}).Where("id = ?", id).Update("activo", false).Error
}

func (r *materialRepo) Reactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Material{}).Where("id = ?", id).Update("activo", true).Error
}

func (r *materialRepo) Stats(ctx context.Context) (*MaterialStats, error) {
	var stats MaterialStats
	base := r.db.WithContext(ctx).Model(&model.Material{}).Where("activo = true")

	if err := base.Session(&gorm.Session{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("tiene_variantes = true").Count(&stats.ConVariantes).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("stock <= 0").Count(&stats.SinStock).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&model.Proveedor{}).Where("activo = true").Count(&stats.Proveedores).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *materialRepo) ListBajoMinimo(ctx context.Context) ([]model.Material, error) {
	var materiales []model.Material
	err := r.db.WithContext(ctx).
		Where("activo = true AND stock <= stock_minimo").
		Order("stock ASC").
		Find(&materiales).Error
	return materiales, err
}

func (r *materialRepo) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Material, error) {
	var m model.Material
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, id).Error
	return &m, err
}

func (r *materialRepo) SetStockTx(tx *gorm.DB, id uuid.UUID, stock decimal.Decimal) error {
	return tx.Model(&model.Material{}).Where("id = ?", id).Update("stock", stock).Error
}
