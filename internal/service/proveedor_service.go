package service

import (
	"context"
	"strings"

	"github.com/celvintr/arquialum-sub003/internal/apierror"
	"github.com/celvintr/arquialum-sub003/internal/dto"
	"github.com/celvintr/arquialum-sub003/internal/model"
	"github.com/celvintr/arquialum-sub003/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var cien = decimal.NewFromInt(100)

type ProveedorService interface {
	Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProveedorResponse, error)
	Listar(ctx context.Context, filter dto.ListFilter) ([]dto.ProveedorResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProveedorRequest) (*dto.ProveedorResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error
}

type proveedorService struct {
	repo repository.ProveedorRepository
}

func NewProveedorService(repo repository.ProveedorRepository) ProveedorService {
	return &proveedorService{repo: repo}
}

func (s *proveedorService) Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	if err := validarTiposMaterial(req.TiposMaterial); err != nil {
		return nil, err
	}

	p := &model.Proveedor{
		Nombre:        req.Nombre,
		Contacto:      req.Contacto,
		Telefono:      req.Telefono,
		Email:         req.Email,
		Direccion:     req.Direccion,
		TiposMaterial: req.TiposMaterial,
		Activo:        true,
	}
	if req.Pais != nil && *req.Pais != "" {
		p.Pais = *req.Pais
	} else {
		p.Pais = "México"
	}
	if req.DescuentoGeneral != nil {
		if err := validarDescuento(*req.DescuentoGeneral); err != nil {
			return nil, err
		}
		p.DescuentoGeneral = *req.DescuentoGeneral
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, apierror.Internal(err)
	}
	return proveedorToResponse(p), nil
}

func (s *proveedorService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProveedorResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapFindErr(err, "Proveedor no encontrado")
	}
	return proveedorToResponse(p), nil
}

func (s *proveedorService) Listar(ctx context.Context, filter dto.ListFilter) ([]dto.ProveedorResponse, error) {
	proveedores, err := s.repo.List(ctx, filtro(filter.Activo))
	if err != nil {
		return nil, apierror.Internal(err)
	}
	resp := make([]dto.ProveedorResponse, 0, len(proveedores))
	for i := range proveedores {
		resp = append(resp, *proveedorToResponse(&proveedores[i]))
	}
	return resp, nil
}

func (s *proveedorService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProveedorRequest) (*dto.ProveedorResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapFindErr(err, "Proveedor no encontrado")
	}

	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Contacto != nil {
		p.Contacto = req.Contacto
	}
	if req.Telefono != nil {
		p.Telefono = req.Telefono
	}
	if req.Email != nil {
		p.Email = req.Email
	}
	if req.Direccion != nil {
		p.Direccion = req.Direccion
	}
	if req.Pais != nil && *req.Pais != "" {
		p.Pais = *req.Pais
	}
	if req.TiposMaterial != nil {
		if err := validarTiposMaterial(req.TiposMaterial); err != nil {
			return nil, err
		}
		p.TiposMaterial = req.TiposMaterial
	}
	if req.DescuentoGeneral != nil {
		if err := validarDescuento(*req.DescuentoGeneral); err != nil {
			return nil, err
		}
		p.DescuentoGeneral = *req.DescuentoGeneral
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, apierror.Internal(err)
	}
	return proveedorToResponse(p), nil
}

func (s *proveedorService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapFindErr(err, "Proveedor no encontrado")
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}

func (s *proveedorService) Reactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapFindErr(err, "Proveedor no encontrado")
	}
	if err := s.repo.Reactivar(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}

func validarTiposMaterial(tipos []string) error {
	for _, t := range tipos {
		if !model.TipoMaterialValido(t) {
			return apierror.Validationf("tipos_material", "etiqueta desconocida %q, válidas: %s", t, strings.Join(model.TiposMaterialProveedor, ", "))
		}
	}
	return nil
}

func validarDescuento(d decimal.Decimal) error {
	if d.IsNegative() || d.GreaterThan(cien) {
		return apierror.Validationf("descuento_general", "debe estar entre 0 y 100")
	}
	return nil
}

func proveedorToResponse(p *model.Proveedor) *dto.ProveedorResponse {
	tipos := p.TiposMaterial
	if tipos == nil {
		tipos = []string{}
	}
	return &dto.ProveedorResponse{
		ID:               p.ID.String(),
		Nombre:           p.Nombre,
		Contacto:         p.Contacto,
		Telefono:         p.Telefono,
		Email:            p.Email,
		Direccion:        p.Direccion,
		Pais:             p.Pais,
		TiposMaterial:    tipos,
		DescuentoGeneral: p.DescuentoGeneral,
		Activo:           p.Activo,
	}
}
