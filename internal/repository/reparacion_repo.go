package repository

import (
	"context"

	"github.com/celvintr/arquialum-sub003/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReparacionRepository interface {
	Create(ctx context.Context, rep *model.Reparacion) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Reparacion, error)
	List(ctx context.Context, filter ActivoFilter) ([]model.Reparacion, error)
	Update(ctx context.Context, rep *model.Reparacion) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type reparacionRepo struct{ db *gorm.DB }

func NewReparacionRepository(db *gorm.DB) ReparacionRepository { return &reparacionRepo{db: db} }

func (r *reparacionRepo) Create(ctx context.Context, rep *model.Reparacion) error {
	return r.db.WithContext(ctx).Create(rep).Error
}

func (r *reparacionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Reparacion, error) {
	var rep model.Reparacion
	err := r.db.WithContext(ctx).First(&rep, id).Error
	return &rep, err
}

func (r *reparacionRepo) List(ctx context.Context, filter ActivoFilter) ([]model.Reparacion, error) {
	var reparaciones []model.Reparacion
	q := filter.Apply(r.db.WithContext(ctx).Model(&model.Reparacion{}))
	err := q.Order("nombre ASC").Find(&reparaciones).Error
	return reparaciones, err
}

func (r *reparacionRepo) Update(ctx context.Context, rep *model.Reparacion) error {
	return r.db.WithContext(ctx).Save(rep).Error
}

func (r *reparacionRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Reparacion{}).Where("id = ?", id).Update("activo", false).Error
}
