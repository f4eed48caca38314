package service

import (
	"context"
	"strings"
	"time"

	"github.com/celvintr/arquialum-sub003/internal/apierror"
	"github.com/celvintr/arquialum-sub003/internal/dto"
	"github.com/celvintr/arquialum-sub003/internal/model"
	"github.com/celvintr/arquialum-sub003/internal/repository"

	"github.com/google/uuid"
)

// CatalogoService manages product types and their models. Models live only in
// the context of their owning product type: creation requires an active
// parent and listing is always parent-scoped.
type CatalogoService interface {
	CrearTipo(ctx context.Context, req dto.CrearTipoProductoRequest) (*dto.TipoProductoResponse, error)
	ObtenerTipo(ctx context.Context, id uuid.UUID) (*dto.TipoProductoResponse, error)
	ListarTipos(ctx context.Context, filter dto.ListFilter) ([]dto.TipoProductoResponse, error)
	ActualizarTipo(ctx context.Context, id uuid.UUID, req dto.ActualizarTipoProductoRequest) (*dto.TipoProductoResponse, error)
	DesactivarTipo(ctx context.Context, id uuid.UUID) error
	ReactivarTipo(ctx context.Context, id uuid.UUID) error

	CrearModelo(ctx context.Context, tipoID uuid.UUID, req dto.CrearModeloRequest) (*dto.ModeloResponse, error)
	ListarModelos(ctx context.Context, tipoID uuid.UUID, filter dto.ListFilter) ([]dto.ModeloResponse, error)
	EliminarModelo(ctx context.Context, tipoID, modeloID uuid.UUID) error
}

type catalogoService struct {
	repo repository.TipoProductoRepository
}

func NewCatalogoService(repo repository.TipoProductoRepository) CatalogoService {
	return &catalogoService{repo: repo}
}

func (s *catalogoService) CrearTipo(ctx context.Context, req dto.CrearTipoProductoRequest) (*dto.TipoProductoResponse, error) {
	fields := make(map[string]string)
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		fields["nombre"] = "requerido"
	}
	if !model.CategoriaValida(req.Categoria) {
		fields["categoria"] = "debe ser una de: " + strings.Join(model.CategoriasProducto, ", ")
	}
	if len(fields) > 0 {
		return nil, apierror.Validation(fields)
	}

	tipo := &model.TipoProducto{
		Nombre:      nombre,
		Descripcion: req.Descripcion,
		Categoria:   req.Categoria,
		Activo:      true,
	}
	if err := s.repo.Create(ctx, tipo); err != nil {
		return nil, apierror.Internal(err)
	}
	return tipoToResponse(tipo), nil
}

func (s *catalogoService) ObtenerTipo(ctx context.Context, id uuid.UUID) (*dto.TipoProductoResponse, error) {
	tipo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapFindErr(err, "Tipo de producto no encontrado")
	}
	return tipoToResponse(tipo), nil
}

func (s *catalogoService) ListarTipos(ctx context.Context, filter dto.ListFilter) ([]dto.TipoProductoResponse, error) {
	tipos, err := s.repo.List(ctx, filtro(filter.Activo))
	if err != nil {
		return nil, apierror.Internal(err)
	}
	resp := make([]dto.TipoProductoResponse, 0, len(tipos))
	for i := range tipos {
		resp = append(resp, *tipoToResponse(&tipos[i]))
	}
	return resp, nil
}

func (s *catalogoService) ActualizarTipo(ctx context.Context, id uuid.UUID, req dto.ActualizarTipoProductoRequest) (*dto.TipoProductoResponse, error) {
	tipo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapFindErr(err, "Tipo de producto no encontrado")
	}

	if req.Nombre != nil {
		nombre := strings.TrimSpace(*req.Nombre)
		if nombre == "" {
			return nil, apierror.Validationf("nombre", "requerido")
		}
		tipo.Nombre = nombre
	}
	if req.Descripcion != nil {
		tipo.Descripcion = req.Descripcion
	}
	if req.Categoria != nil {
		if !model.CategoriaValida(*req.Categoria) {
			return nil, apierror.Validationf("categoria", "debe ser una de: %s", strings.Join(model.CategoriasProducto, ", "))
		}
		tipo.Categoria = *req.Categoria
	}

	if err := s.repo.Update(ctx, tipo); err != nil {
		return nil, apierror.Internal(err)
	}
	return tipoToResponse(tipo), nil
}

// DesactivarTipo soft-deletes the product type. Its models are kept intact;
// they become unreachable through default listings of the parent.
func (s *catalogoService) DesactivarTipo(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapFindErr(err, "Tipo de producto no encontrado")
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}

func (s *catalogoService) ReactivarTipo(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapFindErr(err, "Tipo de producto no encontrado")
	}
	if err := s.repo.Reactivar(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}

func (s *catalogoService) CrearModelo(ctx context.Context, tipoID uuid.UUID, req dto.CrearModeloRequest) (*dto.ModeloResponse, error) {
	tipo, err := s.repo.FindByID(ctx, tipoID)
	if err != nil {
		return nil, mapFindErr(err, "Tipo de producto no encontrado")
	}
	if !tipo.Activo {
		return nil, apierror.Conflict("El tipo de producto está inactivo")
	}

	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, apierror.Validationf("nombre", "requerido")
	}

	modelo := &model.TipoProductoModelo{
		TipoProductoID: tipoID,
		Nombre:         nombre,
		Descripcion:    req.Descripcion,
		Codigo:         req.Codigo,
		Activo:         true,
	}
	if err := s.repo.CreateModelo(ctx, modelo); err != nil {
		return nil, apierror.Internal(err)
	}
	return modeloToResponse(modelo), nil
}

func (s *catalogoService) ListarModelos(ctx context.Context, tipoID uuid.UUID, filter dto.ListFilter) ([]dto.ModeloResponse, error) {
	if _, err := s.repo.FindByID(ctx, tipoID); err != nil {
		return nil, mapFindErr(err, "Tipo de producto no encontrado")
	}
	modelos, err := s.repo.ListModelos(ctx, tipoID, filtro(filter.Activo))
	if err != nil {
		return nil, apierror.Internal(err)
	}
	resp := make([]dto.ModeloResponse, 0, len(modelos))
	for i := range modelos {
		resp = append(resp, *modeloToResponse(&modelos[i]))
	}
	return resp, nil
}

func (s *catalogoService) EliminarModelo(ctx context.Context, tipoID, modeloID uuid.UUID) error {
	modelo, err := s.repo.FindModeloByID(ctx, modeloID)
	if err != nil {
		return mapFindErr(err, "Modelo no encontrado")
	}
	if modelo.TipoProductoID != tipoID {
		return apierror.NotFound("Modelo no encontrado")
	}
	if err := s.repo.SoftDeleteModelo(ctx, modeloID); err != nil {
		return apierror.Internal(err)
	}
	return nil
}

func tipoToResponse(t *model.TipoProducto) *dto.TipoProductoResponse {
	return &dto.TipoProductoResponse{
		ID:          t.ID.String(),
		Nombre:      t.Nombre,
		Descripcion: t.Descripcion,
		Categoria:   t.Categoria,
		Activo:      t.Activo,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}

func modeloToResponse(m *model.TipoProductoModelo) *dto.ModeloResponse {
	return &dto.ModeloResponse{
		ID:             m.ID.String(),
		TipoProductoID: m.TipoProductoID.String(),
		Nombre:         m.Nombre,
		Descripcion:    m.Descripcion,
		Codigo:         m.Codigo,
		Activo:         m.Activo,
	}
}
