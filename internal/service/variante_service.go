package service

import (
	"context"

	"github.com/celvintr/arquialum-sub003/internal/apierror"
	"github.com/celvintr/arquialum-sub003/internal/dto"
	"github.com/celvintr/arquialum-sub003/internal/model"
	"github.com/celvintr/arquialum-sub003/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VarianteService handles the three variant families. The families share
// request/response shapes but stay in separate operations so each keeps its
// own table and uniqueness rules.
type VarianteService interface {
	CrearColorPVC(ctx context.Context, req dto.CrearVarianteRequest) (*dto.VarianteResponse, error)
	ListarColoresPVC(ctx context.Context, filter dto.ListFilter) ([]dto.VarianteResponse, error)
	ActualizarColorPVC(ctx context.Context, id uuid.UUID, req dto.ActualizarVarianteRequest) (*dto.VarianteResponse, error)
	DesactivarColorPVC(ctx context.Context, id uuid.UUID) error

	CrearColorAluminio(ctx context.Context, req dto.CrearVarianteRequest) (*dto.VarianteResponse, error)
	ListarColoresAluminio(ctx context.Context, filter dto.ListFilter) ([]dto.VarianteResponse, error)
	ActualizarColorAluminio(ctx context.Context, id uuid.UUID, req dto.ActualizarVarianteRequest) (*dto.VarianteResponse, error)
	DesactivarColorAluminio(ctx context.Context, id uuid.UUID) error

	CrearTipoVidrio(ctx context.Context, req dto.CrearVarianteRequest) (*dto.VarianteResponse, error)
	ListarTiposVidrio(ctx context.Context, filter dto.ListFilter) ([]dto.VarianteResponse, error)
	ActualizarTipoVidrio(ctx context.Context, id uuid.UUID, req dto.ActualizarVarianteRequest) (*dto.VarianteResponse, error)
	DesactivarTipoVidrio(ctx context.Context, id uuid.UUID) error

	// Tipos returns the three active families in one payload for the
	// quotation UI selectors.
	Tipos(ctx context.Context) (*dto.VariantesTiposResponse, error)
}

type varianteService struct {
	repo repository.VarianteRepository
}

func NewVarianteService(repo repository.VarianteRepository) VarianteService {
	return &varianteService{repo: repo}
}

// ── ColorPVC ─────────────────────────────────────────────────────────────────

func (s *varianteService) CrearColorPVC(ctx context.Context, req dto.CrearVarianteRequest) (*dto.VarianteResponse, error) {
	v := &model.ColorPVC{Nombre: req.Nombre, Descripcion: req.Descripcion, Activo: true}
	if req.AjusteCosto != nil {
		v.AjusteCosto = *req.AjusteCosto
	}
	if err := s.repo.CreateColorPVC(ctx, v); err != nil {
		return nil, apierror.Internal(err)
	}
	return varianteResponse(v.ID, v.Nombre, v.Descripcion, v.AjusteCosto, v.Activo), nil
}

func (s *varianteService) ListarColoresPVC(ctx context.Context, filter dto.ListFilter) ([]dto.VarianteResponse, error) {
	colores, err := s.repo.ListColoresPVC(ctx, filtro(filter.Activo))
	if err != nil {
		return nil, apierror.Internal(err)
	}
	resp := make([]dto.VarianteResponse, 0, len(colores))
	for i := range colores {
		v := &colores[i]
		resp = append(resp, *varianteResponse(v.ID, v.Nombre, v.Descripcion, v.AjusteCosto, v.Activo))
	}
	return resp, nil
}

func (s *varianteService) ActualizarColorPVC(ctx context.Context, id uuid.UUID, req dto.ActualizarVarianteRequest) (*dto.VarianteResponse, error) {
	v, err := s.repo.FindColorPVC(ctx, id)
	if err != nil {
		return nil, mapFindErr(err, "Color PVC no encontrado")
	}
	aplicarVariante(&v.Nombre, &v.Descripcion, &v.AjusteCosto, req)
	if err := s.repo.UpdateColorPVC(ctx, v); err != nil {
		return nil, apierror.Internal(err)
	}
	return varianteResponse(v.ID, v.Nombre, v.Descripcion, v.AjusteCosto, v.Activo), nil
}

func (s *varianteService) DesactivarColorPVC(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindColorPVC(ctx, id); err != nil {
		return mapFindErr(err, "Color PVC no encontrado")
	}
	if err := s.repo.SoftDeleteColorPVC(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}

// ── ColorAluminio ────────────────────────────────────────────────────────────

func (s *varianteService) CrearColorAluminio(ctx context.Context, req dto.CrearVarianteRequest) (*dto.VarianteResponse, error) {
	v := &model.ColorAluminio{Nombre: req.Nombre, Descripcion: req.Descripcion, Activo: true}
	if req.AjusteCosto != nil {
		v.AjusteCosto = *req.AjusteCosto
	}
	if err := s.repo.CreateColorAluminio(ctx, v); err != nil {
		return nil, apierror.Internal(err)
	}
	return varianteResponse(v.ID, v.Nombre, v.Descripcion, v.AjusteCosto, v.Activo), nil
}

func (s *varianteService) ListarColoresAluminio(ctx context.Context, filter dto.ListFilter) ([]dto.VarianteResponse, error) {
	colores, err := s.repo.ListColoresAluminio(ctx, filtro(filter.Activo))
	if err != nil {
		return nil, apierror.Internal(err)
	}
	resp := make([]dto.VarianteResponse, 0, len(colores))
	for i := range colores {
		v := &colores[i]
		resp = append(resp, *varianteResponse(v.ID, v.Nombre, v.Descripcion, v.AjusteCosto, v.Activo))
	}
	return resp, nil
}

func (s *varianteService) ActualizarColorAluminio(ctx context.Context, id uuid.UUID, req dto.ActualizarVarianteRequest) (*dto.VarianteResponse, error) {
	v, err := s.repo.FindColorAluminio(ctx, id)
	if err != nil {
		return nil, mapFindErr(err, "Color de aluminio no encontrado")
	}
	aplicarVariante(&v.Nombre, &v.Descripcion, &v.AjusteCosto, req)
	if err := s.repo.UpdateColorAluminio(ctx, v); err != nil {
		return nil, apierror.Internal(err)
	}
	return varianteResponse(v.ID, v.Nombre, v.Descripcion, v.AjusteCosto, v.Activo), nil
}

func (s *varianteService) DesactivarColorAluminio(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindColorAluminio(ctx, id); err != nil {
		return mapFindErr(err, "Color de aluminio no encontrado")
	}
	if err := s.repo.SoftDeleteColorAluminio(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}

// ── TipoVidrio ───────────────────────────────────────────────────────────────

func (s *varianteService) CrearTipoVidrio(ctx context.Context, req dto.CrearVarianteRequest) (*dto.VarianteResponse, error) {
	v := &model.TipoVidrio{Nombre: req.Nombre, Descripcion: req.Descripcion, Activo: true}
	if req.AjusteCosto != nil {
		v.AjusteCosto = *req.AjusteCosto
	}
	if err := s.repo.CreateTipoVidrio(ctx, v); err != nil {
		return nil, apierror.Internal(err)
	}
	return varianteResponse(v.ID, v.Nombre, v.Descripcion, v.AjusteCosto, v.Activo), nil
}

func (s *varianteService) ListarTiposVidrio(ctx context.Context, filter dto.ListFilter) ([]dto.VarianteResponse, error) {
	tipos, err := s.repo.ListTiposVidrio(ctx, filtro(filter.Activo))
	if err != nil {
		return nil, apierror.Internal(err)
	}
	resp := make([]dto.VarianteResponse, 0, len(tipos))
	for i := range tipos {
		v := &tipos[i]
		resp = append(resp, *varianteResponse(v.ID, v.Nombre, v.Descripcion, v.AjusteCosto, v.Activo))
	}
	return resp, nil
}

func (s *varianteService) ActualizarTipoVidrio(ctx context.Context, id uuid.UUID, req dto.ActualizarVarianteRequest) (*dto.VarianteResponse, error) {
	v, err := s.repo.FindTipoVidrio(ctx, id)
	if err != nil {
		return nil, mapFindErr(err, "Tipo de vidrio no encontrado")
	}
	aplicarVariante(&v.Nombre, &v.Descripcion, &v.AjusteCosto, req)
	if err := s.repo.UpdateTipoVidrio(ctx, v); err != nil {
		return nil, apierror.Internal(err)
	}
	return varianteResponse(v.ID, v.Nombre, v.Descripcion, v.AjusteCosto, v.Activo), nil
}

func (s *varianteService) DesactivarTipoVidrio(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindTipoVidrio(ctx, id); err != nil {
		return mapFindErr(err, "Tipo de vidrio no encontrado")
	}
	if err := s.repo.SoftDeleteTipoVidrio(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}

// ── Combined ─────────────────────────────────────────────────────────────────

func (s *varianteService) Tipos(ctx context.Context) (*dto.VariantesTiposResponse, error) {
	activos := dto.ListFilter{}

	pvc, err := s.ListarColoresPVC(ctx, activos)
	if err != nil {
		return nil, err
	}
	aluminio, err := s.ListarColoresAluminio(ctx, activos)
	if err != nil {
		return nil, err
	}
	vidrio, err := s.ListarTiposVidrio(ctx, activos)
	if err != nil {
		return nil, err
	}
	return &dto.VariantesTiposResponse{
		ColoresPVC:      pvc,
		ColoresAluminio: aluminio,
		TiposVidrio:     vidrio,
	}, nil
}

func aplicarVariante(nombre *string, descripcion **string, ajuste *decimal.Decimal, req dto.ActualizarVarianteRequest) {
	if req.Nombre != nil {
		*nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		*descripcion = req.Descripcion
	}
	if req.AjusteCosto != nil {
		*ajuste = *req.AjusteCosto
	}
}

func varianteResponse(id uuid.UUID, nombre string, descripcion *string, ajuste decimal.Decimal, activo bool) *dto.VarianteResponse {
	return &dto.VarianteResponse{
		ID:          id.String(),
		Nombre:      nombre,
		Descripcion: descripcion,
		AjusteCosto: ajuste,
		Activo:      activo,
	}
}
