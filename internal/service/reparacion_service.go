package service

import (
	"context"

	"github.com/celvintr/arquialum-sub003/internal/apierror"
	"github.com/celvintr/arquialum-sub003/internal/dto"
	"github.com/celvintr/arquialum-sub003/internal/model"
	"github.com/celvintr/arquialum-sub003/internal/repository"

	"github.com/google/uuid"
)

type ReparacionService interface {
	Crear(ctx context.Context, req dto.CrearReparacionRequest) (*dto.ReparacionResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ReparacionResponse, error)
	Listar(ctx context.Context, filter dto.ListFilter) ([]dto.ReparacionResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarReparacionRequest) (*dto.ReparacionResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type reparacionService struct {
	repo repository.ReparacionRepository
}

func NewReparacionService(repo repository.ReparacionRepository) ReparacionService {
	return &reparacionService{repo: repo}
}

func (s *reparacionService) Crear(ctx context.Context, req dto.CrearReparacionRequest) (*dto.ReparacionResponse, error) {
	if req.PrecioBase.IsNegative() {
		return nil, apierror.Validationf("precio_base", "no puede ser negativo")
	}
	if req.TiempoEstimadoHoras < 1 {
		return nil, apierror.Validationf("tiempo_estimado_horas", "debe ser al menos 1")
	}

	rep := &model.Reparacion{
		Nombre:              req.Nombre,
		Descripcion:         req.Descripcion,
		Categoria:           req.Categoria,
		PrecioBase:          req.PrecioBase,
		TiempoEstimadoHoras: req.TiempoEstimadoHoras,
		IncluyeMateriales:   req.IncluyeMateriales,
		Activo:              true,
	}
	if err := s.repo.Create(ctx, rep); err != nil {
		return nil, apierror.Internal(err)
	}
	return reparacionToResponse(rep), nil
}

func (s *reparacionService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ReparacionResponse, error) {
	rep, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapFindErr(err, "Reparación no encontrada")
	}
	return reparacionToResponse(rep), nil
}

func (s *reparacionService) Listar(ctx context.Context, filter dto.ListFilter) ([]dto.ReparacionResponse, error) {
	reparaciones, err := s.repo.List(ctx, filtro(filter.Activo))
	if err != nil {
		return nil, apierror.Internal(err)
	}
	resp := make([]dto.ReparacionResponse, 0, len(reparaciones))
	for i := range reparaciones {
		resp = append(resp, *reparacionToResponse(&reparaciones[i]))
	}
	return resp, nil
}

func (s *reparacionService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarReparacionRequest) (*dto.ReparacionResponse, error) {
	rep, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapFindErr(err, "Reparación no encontrada")
	}

	if req.Nombre != nil {
		rep.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		rep.Descripcion = req.Descripcion
	}
	if req.Categoria != nil && *req.Categoria != "" {
		rep.Categoria = *req.Categoria
	}
	if req.PrecioBase != nil {
		if req.PrecioBase.IsNegative() {
			return nil, apierror.Validationf("precio_base", "no puede ser negativo")
		}
		rep.PrecioBase = *req.PrecioBase
	}
	if req.TiempoEstimadoHoras != nil {
		if *req.TiempoEstimadoHoras < 1 {
			return nil, apierror.Validationf("tiempo_estimado_horas", "debe ser al menos 1")
		}
		rep.TiempoEstimadoHoras = *req.TiempoEstimadoHoras
	}
	if req.IncluyeMateriales != nil {
		rep.IncluyeMateriales = *req.IncluyeMateriales
	}

	if err := s.repo.Update(ctx, rep); err != nil {
		return nil, apierror.Internal(err)
	}
	return reparacionToResponse(rep), nil
}

func (s *reparacionService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapFindErr(err, "Reparación no encontrada")
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}

func reparacionToResponse(r *model.Reparacion) *dto.ReparacionResponse {
	return &dto.ReparacionResponse{
		ID:                  r.ID.String(),
		Nombre:              r.Nombre,
		Descripcion:         r.Descripcion,
		Categoria:           r.Categoria,
		PrecioBase:          r.PrecioBase,
		TiempoEstimadoHoras: r.TiempoEstimadoHoras,
		IncluyeMateriales:   r.IncluyeMateriales,
		Activo:              r.Activo,
	}
}
