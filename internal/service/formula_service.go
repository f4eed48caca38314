package service

import (
	"context"
	"errors"

	"github.com/celvintr/arquialum-sub003/internal/apierror"
	"github.com/celvintr/arquialum-sub003/internal/dto"
	"github.com/celvintr/arquialum-sub003/internal/model"
	"github.com/celvintr/arquialum-sub003/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FormulaService manages the product/material linkage. Formulas are
// append-then-deactivate: there is no update and no hard delete, so the
// quotation history of a product stays reconstructible.
type FormulaService interface {
	Crear(ctx context.Context, req dto.CrearFormulaRequest) (*dto.FormulaResponse, error)
	ListarPorTipoProducto(ctx context.Context, tipoID uuid.UUID, filter dto.ListFilter) ([]dto.FormulaResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type formulaService struct {
	repo         repository.FormulaRepository
	tipoRepo     repository.TipoProductoRepository
	materialRepo repository.MaterialRepository
}

func NewFormulaService(repo repository.FormulaRepository, tipoRepo repository.TipoProductoRepository, materialRepo repository.MaterialRepository) FormulaService {
	return &formulaService{repo: repo, tipoRepo: tipoRepo, materialRepo: materialRepo}
}

func (s *formulaService) Crear(ctx context.Context, req dto.CrearFormulaRequest) (*dto.FormulaResponse, error) {
	tipoID, err := uuid.Parse(req.TipoProductoID)
	if err != nil {
		return nil, apierror.Validationf("tipo_producto_id", "uuid inválido")
	}
	materialID, err := uuid.Parse(req.MaterialID)
	if err != nil {
		return nil, apierror.Validationf("material_id", "uuid inválido")
	}

	tipo, err := s.tipoRepo.FindByID(ctx, tipoID)
	if err != nil {
		return nil, mapFindErr(err, "Tipo de producto no encontrado")
	}
	if !tipo.Activo {
		return nil, apierror.Conflict("El tipo de producto está inactivo")
	}
	material, err := s.materialRepo.FindByID(ctx, materialID)
	if err != nil {
		return nil, mapFindErr(err, "Material no encontrado")
	}
	if !material.Activo {
		return nil, apierror.Conflict("El material está inactivo")
	}

	if req.Orden < 0 {
		return nil, apierror.Validationf("orden", "no puede ser negativo")
	}
	existe, err := s.repo.OrdenExiste(ctx, tipoID, req.Orden)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	if existe {
		return nil, apierror.Conflict("Ya existe una fórmula activa con ese orden para el producto")
	}

	f := &model.Formula{
		TipoProductoID: tipoID,
		MaterialID:     materialID,
		Expresion:      req.Expresion,
		Opcional:       req.Opcional,
		Orden:          req.Orden,
		Activo:         true,
		Material:       material,
	}
	if err := s.repo.Create(ctx, f); err != nil {
		// El índice parcial sobre (tipo_producto_id, orden) decide cuando dos
		// escritores pasan la pre-verificación a la vez.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("Ya existe una fórmula activa con ese orden para el producto")
		}
		return nil, apierror.Internal(err)
	}
	return formulaToResponse(f), nil
}

func (s *formulaService) ListarPorTipoProducto(ctx context.Context, tipoID uuid.UUID, filter dto.ListFilter) ([]dto.FormulaResponse, error) {
	if _, err := s.tipoRepo.FindByID(ctx, tipoID); err != nil {
		return nil, mapFindErr(err, "Tipo de producto no encontrado")
	}
	formulas, err := s.repo.ListByTipoProducto(ctx, tipoID, filtro(filter.Activo))
	if err != nil {
		return nil, apierror.Internal(err)
	}
	resp := make([]dto.FormulaResponse, 0, len(formulas))
	for i := range formulas {
		resp = append(resp, *formulaToResponse(&formulas[i]))
	}
	return resp, nil
}

func (s *formulaService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapFindErr(err, "Fórmula no encontrada")
	}
	if err := s.repo.Desactivar(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}

func formulaToResponse(f *model.Formula) *dto.FormulaResponse {
	resp := &dto.FormulaResponse{
		ID:             f.ID.String(),
		TipoProductoID: f.TipoProductoID.String(),
		MaterialID:     f.MaterialID.String(),
		Expresion:      f.Expresion,
		Opcional:       f.Opcional,
		Orden:          f.Orden,
		Activo:         f.Activo,
	}
	if f.Material != nil {
		resp.Material = f.Material.Nombre
		resp.MaterialEsBase = f.Material.EsBase
	}
	return resp
}
