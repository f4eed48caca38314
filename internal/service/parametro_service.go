package service

import (
	"context"
	"strings"

	"github.com/celvintr/arquialum-sub003/internal/apierror"
	"github.com/celvintr/arquialum-sub003/internal/dto"
	"github.com/celvintr/arquialum-sub003/internal/model"
	"github.com/celvintr/arquialum-sub003/internal/repository"

	"github.com/google/uuid"
)

// ParametroService manages labor rate definitions. Tipo is fixed at creation;
// a mesh parameter carries its extra ConfigMalla bag.
type ParametroService interface {
	Crear(ctx context.Context, req dto.CrearParametroManoObraRequest) (*dto.ParametroManoObraResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ParametroManoObraResponse, error)
	Listar(ctx context.Context, filter dto.ListFilter) ([]dto.ParametroManoObraResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarParametroManoObraRequest) (*dto.ParametroManoObraResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type parametroService struct {
	repo repository.ParametroManoObraRepository
}

func NewParametroService(repo repository.ParametroManoObraRepository) ParametroService {
	return &parametroService{repo: repo}
}

func (s *parametroService) Crear(ctx context.Context, req dto.CrearParametroManoObraRequest) (*dto.ParametroManoObraResponse, error) {
	if !model.TipoManoObraValido(req.Tipo) {
		return nil, apierror.Validationf("tipo", "debe ser uno de: %s", strings.Join(model.TiposManoObra, ", "))
	}
	if req.TarifaPVC != nil && req.TarifaPVC.IsNegative() {
		return nil, apierror.Validationf("tarifa_pvc", "no puede ser negativa")
	}
	if req.TarifaAluminio != nil && req.TarifaAluminio.IsNegative() {
		return nil, apierror.Validationf("tarifa_aluminio", "no puede ser negativa")
	}
	if req.ConfigMalla != nil && req.Tipo != model.ManoObraMalla {
		return nil, apierror.Validationf("config_malla", "sólo aplica al tipo malla")
	}

	p := &model.ParametroManoObra{
		Nombre:         req.Nombre,
		Descripcion:    req.Descripcion,
		Tipo:           req.Tipo,
		AplicaPVC:      req.AplicaPVC,
		AplicaAluminio: req.AplicaAluminio,
		Activo:         true,
	}
	if req.TarifaPVC != nil {
		p.TarifaPVC = *req.TarifaPVC
	}
	if req.TarifaAluminio != nil {
		p.TarifaAluminio = *req.TarifaAluminio
	}
	if req.ConfigMalla != nil {
		cfg, err := parseConfigMalla(req.ConfigMalla)
		if err != nil {
			return nil, err
		}
		p.ConfigMalla = cfg
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, apierror.Internal(err)
	}
	return parametroToResponse(p), nil
}

func (s *parametroService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ParametroManoObraResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapFindErr(err, "Parámetro de mano de obra no encontrado")
	}
	return parametroToResponse(p), nil
}

func (s *parametroService) Listar(ctx context.Context, filter dto.ListFilter) ([]dto.ParametroManoObraResponse, error) {
	parametros, err := s.repo.List(ctx, filtro(filter.Activo))
	if err != nil {
		return nil, apierror.Internal(err)
	}
	resp := make([]dto.ParametroManoObraResponse, 0, len(parametros))
	for i := range parametros {
		resp = append(resp, *parametroToResponse(&parametros[i]))
	}
	return resp, nil
}

func (s *parametroService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarParametroManoObraRequest) (*dto.ParametroManoObraResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapFindErr(err, "Parámetro de mano de obra no encontrado")
	}

	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		p.Descripcion = req.Descripcion
	}
	if req.AplicaPVC != nil {
		p.AplicaPVC = *req.AplicaPVC
	}
	if req.TarifaPVC != nil {
		if req.TarifaPVC.IsNegative() {
			return nil, apierror.Validationf("tarifa_pvc", "no puede ser negativa")
		}
		p.TarifaPVC = *req.TarifaPVC
	}
	if req.AplicaAluminio != nil {
		p.AplicaAluminio = *req.AplicaAluminio
	}
	if req.TarifaAluminio != nil {
		if req.TarifaAluminio.IsNegative() {
			return nil, apierror.Validationf("tarifa_aluminio", "no puede ser negativa")
		}
		p.TarifaAluminio = *req.TarifaAluminio
	}
	if req.ConfigMalla != nil {
		if p.Tipo != model.ManoObraMalla {
			return nil, apierror.Validationf("config_malla", "sólo aplica al tipo malla")
		}
		cfg, err := parseConfigMalla(req.ConfigMalla)
		if err != nil {
			return nil, err
		}
		p.ConfigMalla = cfg
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, apierror.Internal(err)
	}
	return parametroToResponse(p), nil
}

func (s *parametroService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapFindErr(err, "Parámetro de mano de obra no encontrado")
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}

func parseConfigMalla(in *dto.ConfigMallaInput) (*model.ConfigMalla, error) {
	materiales := make([]uuid.UUID, 0, len(in.Materiales))
	for _, raw := range in.Materiales {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, apierror.Validationf("config_malla.materiales", "uuid inválido %q", raw)
		}
		materiales = append(materiales, id)
	}
	return &model.ConfigMalla{
		Materiales:      materiales,
		IncluyeManoObra: in.IncluyeManoObra,
	}, nil
}

func parametroToResponse(p *model.ParametroManoObra) *dto.ParametroManoObraResponse {
	resp := &dto.ParametroManoObraResponse{
		ID:             p.ID.String(),
		Nombre:         p.Nombre,
		Descripcion:    p.Descripcion,
		Tipo:           p.Tipo,
		AplicaPVC:      p.AplicaPVC,
		TarifaPVC:      p.TarifaPVC,
		AplicaAluminio: p.AplicaAluminio,
		TarifaAluminio: p.TarifaAluminio,
		Activo:         p.Activo,
	}
	if p.ConfigMalla != nil {
		materiales := make([]string, 0, len(p.ConfigMalla.Materiales))
		for _, id := range p.ConfigMalla.Materiales {
			materiales = append(materiales, id.String())
		}
		resp.ConfigMalla = &dto.ConfigMallaResponse{
			Materiales:      materiales,
			IncluyeManoObra: p.ConfigMalla.IncluyeManoObra,
		}
	}
	return resp
}
