package repository

import (
	"context"

	"github.com/celvintr/arquialum-sub003/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ParametroManoObraRepository interface {
	Create(ctx context.Context, p *model.ParametroManoObra) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ParametroManoObra, error)
	List(ctx context.Context, filter ActivoFilter) ([]model.ParametroManoObra, error)
	Update(ctx context.Context, p *model.ParametroManoObra) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type parametroManoObraRepo struct{ db *gorm.DB }

func NewParametroManoObraRepository(db *gorm.DB) ParametroManoObraRepository {
	return &parametroManoObraRepo{db: db}
}

func (r *parametroManoObraRepo) Create(ctx context.Context, p *model.ParametroManoObra) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *parametroManoObraRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ParametroManoObra, error) {
	var p model.ParametroManoObra
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *parametroManoObraRepo) List(ctx context.Context, filter ActivoFilter) ([]model.ParametroManoObra, error) {
	var parametros []model.ParametroManoObra
	q := filter.Apply(r.db.WithContext(ctx).Model(&model.ParametroManoObra{}))
	err := q.Order("nombre ASC").Find(&parametros).Error
	return parametros, err
}

func (r *parametroManoObraRepo) Update(ctx context.Context, p *model.ParametroManoObra) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *parametroManoObraRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.ParametroManoObra{}).Where("id = ?", id).Update("activo", false).Error
}
