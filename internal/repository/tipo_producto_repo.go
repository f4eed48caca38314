package repository

import (
	"context"

	"github.com/celvintr/arquialum-sub003/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TipoProductoRepository defines the data access contract for product types
// and their models. Services depend on this interface, not on the concrete
// GORM implementation, enabling clean unit testing via stubs.
type TipoProductoRepository interface {
	Create(ctx context.Context, t *model.TipoProducto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.TipoProducto, error)
	List(ctx context.Context, filter ActivoFilter) ([]model.TipoProducto, error)
	Update(ctx context.Context, t *model.TipoProducto) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error

	// Modelos
	CreateModelo(ctx context.Context, m *model.TipoProductoModelo) error
	FindModeloByID(ctx context.Context, id uuid.UUID) (*model.TipoProductoModelo, error)
	ListModelos(ctx context.Context, tipoID uuid.UUID, filter ActivoFilter) ([]model.TipoProductoModelo, error)
	SoftDeleteModelo(ctx context.Context, id uuid.UUID) error
}

// ActivoFilter mirrors the query convention used by every listing endpoint:
// "" or "true" = solo activos (default), "false" = inactivos, "all" = todos.
type ActivoFilter struct {
	Activo string
}

// Apply adds the activo clause to q.
func (f ActivoFilter) Apply(q *gorm.DB) *gorm.DB {
	switch f.Activo {
	case "false":
		return q.Where("activo = false")
	case "all":
		return q
	default:
		return q.Where("activo = true")
	}
}

type tipoProductoRepo struct{ db *gorm.DB }

func NewTipoProductoRepository(db *gorm.DB) TipoProductoRepository {
	return &tipoProductoRepo{db: db}
}

func (r *tipoProductoRepo) Create(ctx context.Context, t *model.TipoProducto) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tipoProductoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.TipoProducto, error) {
	var t model.TipoProducto
	err := r.db.WithContext(ctx).First(&t, id).Error
	return &t, err
}

func (r *tipoProductoRepo) List(ctx context.Context, filter ActivoFilter) ([]model.TipoProducto, error) {
	var tipos []model.TipoProducto
	q := filter.Apply(r.db.WithContext(ctx).Model(&model.TipoProducto{}))
	err := q.Order("nombre ASC").Find(&tipos).Error
	return tipos, err
}

func (r *tipoProductoRepo) Update(ctx context.Context, t *model.TipoProducto) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *tipoProductoRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.TipoProducto{}).Where("id = ?", id).Update("activo", false).Error
}

func (r *tipoProductoRepo) Reactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.TipoProducto{}).Where("id = ?", id).Update("activo", true).Error
}

func (r *tipoProductoRepo) CreateModelo(ctx context.Context, m *model.TipoProductoModelo) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *tipoProductoRepo) FindModeloByID(ctx context.Context, id uuid.UUID) (*model.TipoProductoModelo, error) {
	var m model.TipoProductoModelo
	err := r.db.WithContext(ctx).First(&m, id).Error
	return &m, err
}

func (r *tipoProductoRepo) ListModelos(ctx context.Context, tipoID uuid.UUID, filter ActivoFilter) ([]model.TipoProductoModelo, error) {
	var modelos []model.TipoProductoModelo
	q := filter.Apply(r.db.WithContext(ctx).Model(&model.TipoProductoModelo{}).Where("tipo_producto_id = ?", tipoID))
	err := q.Order("nombre ASC").Find(&modelos).Error
	return modelos, err
}

func (r *tipoProductoRepo) SoftDeleteModelo(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.TipoProductoModelo{}).Where("id = ?", id).Update("activo", false).Error
}
