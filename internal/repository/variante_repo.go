package repository

import (
	"context"

	"github.com/celvintr/arquialum-sub003/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VarianteRepository covers the three fixed variant tables. The families are
// structurally identical but live in separate collections on purpose; the
// repository keeps that explicit instead of hiding it behind reflection.
type VarianteRepository interface {
	// ColorPVC
	CreateColorPVC(ctx context.Context, v *model.ColorPVC) error
	FindColorPVC(ctx context.Context, id uuid.UUID) (*model.ColorPVC, error)
	ListColoresPVC(ctx context.Context, filter ActivoFilter) ([]model.ColorPVC, error)
	UpdateColorPVC(ctx context.Context, v *model.ColorPVC) error
	SoftDeleteColorPVC(ctx context.Context, id uuid.UUID) error

	// ColorAluminio
	CreateColorAluminio(ctx context.Context, v *model.ColorAluminio) error
	FindColorAluminio(ctx context.Context, id uuid.UUID) (*model.ColorAluminio, error)
	ListColoresAluminio(ctx context.Context, filter ActivoFilter) ([]model.ColorAluminio, error)
	UpdateColorAluminio(ctx context.Context, v *model.ColorAluminio) error
	SoftDeleteColorAluminio(ctx context.Context, id uuid.UUID) error

	// TipoVidrio
	CreateTipoVidrio(ctx context.Context, v *model.TipoVidrio) error
	FindTipoVidrio(ctx context.Context, id uuid.UUID) (*model.TipoVidrio, error)
	ListTiposVidrio(ctx context.Context, filter ActivoFilter) ([]model.TipoVidrio, error)
	UpdateTipoVidrio(ctx context.Context, v *model.TipoVidrio) error
	SoftDeleteTipoVidrio(ctx context.Context, id uuid.UUID) error
}

type varianteRepo struct{ db *gorm.DB }

func NewVarianteRepository(db *gorm.DB) VarianteRepository { return &varianteRepo{db: db} }

// ── ColorPVC ─────────────────────────────────────────────────────────────────

func (r *varianteRepo) CreateColorPVC(ctx context.Context, v *model.ColorPVC) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *varianteRepo) FindColorPVC(ctx context.Context, id uuid.UUID) (*model.ColorPVC, error) {
	var v model.ColorPVC
	err := r.db.WithContext(ctx).First(&v, id).Error
	return &v, err
}

func (r *varianteRepo) ListColoresPVC(ctx context.Context, filter ActivoFilter) ([]model.ColorPVC, error) {
	var colores []model.ColorPVC
	q := filter.Apply(r.db.WithContext(ctx).Model(&model.ColorPVC{}))
	err := q.Order("nombre ASC").Find(&colores).Error
	return colores, err
}

func (r *varianteRepo) UpdateColorPVC(ctx context.Context, v *model.ColorPVC) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *varianteRepo) SoftDeleteColorPVC(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.ColorPVC{}).Where("id = ?", id).Update("activo", false).Error
}

// ── ColorAluminio ────────────────────────────────────────────────────────────

func (r *varianteRepo) CreateColorAluminio(ctx context.Context, v *model.ColorAluminio) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *varianteRepo) FindColorAluminio(ctx context.Context, id uuid.UUID) (*model.ColorAluminio, error) {
	var v model.ColorAluminio
	err := r.db.WithContext(ctx).First(&v, id).Error
	return &v, err
}

func (r *varianteRepo) ListColoresAluminio(ctx context.Context, filter ActivoFilter) ([]model.ColorAluminio, error) {
	var colores []model.ColorAluminio
	q := filter.Apply(r.db.WithContext(ctx).Model(&model.ColorAluminio{}))
	err := q.Order("nombre ASC").Find(&colores).Error
	return colores, err
}

func (r *varianteRepo) UpdateColorAluminio(ctx context.Context, v *model.ColorAluminio) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *varianteRepo) SoftDeleteColorAluminio(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.ColorAluminio{}).Where("id = ?", id).Update("activo", false).Error
}

// ── TipoVidrio ───────────────────────────────────────────────────────────────

func (r *varianteRepo) CreateTipoVidrio(ctx context.Context, v *model.TipoVidrio) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *varianteRepo) FindTipoVidrio(ctx context.Context, id uuid.UUID) (*model.TipoVidrio, error) {
	var v model.TipoVidrio
	err := r.db.WithContext(ctx).First(&v, id).Error
	return &v, err
}

func (r *varianteRepo) ListTiposVidrio(ctx context.Context, filter ActivoFilter) ([]model.TipoVidrio, error) {
	var tipos []model.TipoVidrio
	q := filter.Apply(r.db.WithContext(ctx).Model(&model.TipoVidrio{}))
	err := q.Order("nombre ASC").Find(&tipos).Error
	return tipos, err
}

func (r *varianteRepo) UpdateTipoVidrio(ctx context.Context, v *model.TipoVidrio) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *varianteRepo) SoftDeleteTipoVidrio(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.TipoVidrio{}).Where("id = ?", id).Update("activo", false).Error
}
