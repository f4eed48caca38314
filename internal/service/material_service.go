package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/celvintr/arquialum-sub003/internal/apierror"
	"github.com/celvintr/arquialum-sub003/internal/dto"
	"github.com/celvintr/arquialum-sub003/internal/model"
	"github.com/celvintr/arquialum-sub003/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	statsCacheKey = "cache:materiales:stats"
	statsCacheTTL = 60 * time.Second
)

// MaterialService manages the raw material catalog. Stock is never written
// here: every stock change goes through the inventory ledger so the movement
// history stays complete.
type MaterialService interface {
	Crear(ctx context.Context, req dto.CrearMaterialRequest) (*dto.MaterialResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.MaterialResponse, error)
	Listar(ctx context.Context, filter dto.MaterialFilter) (*dto.MaterialListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMaterialRequest) (*dto.MaterialResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*dto.MaterialStatsResponse, error)
	AlertasStock(ctx context.Context) ([]dto.AlertaStockResponse, error)
}

type materialService struct {
	repo          repository.MaterialRepository
	proveedorRepo repository.ProveedorRepository
	rdb           *redis.Client
}

func NewMaterialService(repo repository.MaterialRepository, proveedorRepo repository.ProveedorRepository, rdb *redis.Client) MaterialService {
	return &materialService{repo: repo, proveedorRepo: proveedorRepo, rdb: rdb}
}

func (s *materialService) Crear(ctx context.Context, req dto.CrearMaterialRequest) (*dto.MaterialResponse, error) {
	if req.Costo.IsNegative() {
		return nil, apierror.Validationf("costo", "no puede ser negativo")
	}

	m := &model.Material{
		Nombre:         req.Nombre,
		Descripcion:    req.Descripcion,
		Unidad:         req.Unidad,
		Costo:          req.Costo,
		TieneVariantes: req.TieneVariantes,
		EsBase:         req.EsBase,
		Activo:         true,
	}
	if m.Unidad == "" {
		m.Unidad = "metro"
	}
	if req.Stock != nil {
		if req.Stock.IsNegative() {
			return nil, apierror.Validationf("stock", "no puede ser negativo")
		}
		m.Stock = *req.Stock
	}
	if req.StockMinimo != nil {
		if req.StockMinimo.IsNegative() {
			return nil, apierror.Validationf("stock_minimo", "no puede ser negativo")
		}
		m.StockMinimo = *req.StockMinimo
	}
	if req.ProveedorID != nil {
		pid, err := s.resolverProveedor(ctx, *req.ProveedorID)
		if err != nil {
			return nil, err
		}
		m.ProveedorID = pid
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, apierror.Internal(err)
	}
	s.invalidateStats(ctx)
	return materialToResponse(m), nil
}

func (s *materialService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.MaterialResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapFindErr(err, "Material no encontrado")
	}
	return materialToResponse(m), nil
}

func (s *materialService) Listar(ctx context.Context, filter dto.MaterialFilter) (*dto.MaterialListResponse, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 200 {
		limit = 50
	}

	materiales, total, err := s.repo.List(ctx, repository.MaterialFilter{
		ActivoFilter: filtro(filter.Activo),
		Nombre:       filter.Nombre,
		ProveedorID:  filter.ProveedorID,
		EsBase:       filter.EsBase,
		Page:         page,
		Limit:        limit,
	})
	if err != nil {
		return nil, apierror.Internal(err)
	}

	data := make([]dto.MaterialResponse, 0, len(materiales))
	for i := range materiales {
		data = append(data, *materialToResponse(&materiales[i]))
	}
	return &dto.MaterialListResponse{
		Data:       data,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// Actualizar nunca toca Stock: las existencias sólo cambian vía movimientos.
func (s *materialService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMaterialRequest) (*dto.MaterialResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapFindErr(err, "Material no encontrado")
	}

	if req.Nombre != nil {
		m.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		m.Descripcion = req.Descripcion
	}
	if req.Unidad != nil && *req.Unidad != "" {
		m.Unidad = *req.Unidad
	}
	if req.Costo != nil {
		if req.Costo.IsNegative() {
			return nil, apierror.Validationf("costo", "no puede ser negativo")
		}
		m.Costo = *req.Costo
	}
	if req.StockMinimo != nil {
		if req.StockMinimo.IsNegative() {
			return nil, apierror.Validationf("stock_minimo", "no puede ser negativo")
		}
		m.StockMinimo = *req.StockMinimo
	}
	if req.TieneVariantes != nil {
		m.TieneVariantes = *req.TieneVariantes
	}
	if req.EsBase != nil {
		m.EsBase = *req.EsBase
	}
	if req.ProveedorID != nil {
		if *req.ProveedorID == "" {
			m.ProveedorID = nil
		} else {
			pid, err := s.resolverProveedor(ctx, *req.ProveedorID)
			if err != nil {
				return nil, err
			}
			m.ProveedorID = pid
		}
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, apierror.Internal(err)
	}
	s.invalidateStats(ctx)
	return materialToResponse(m), nil
}

func (s *materialService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapFindErr(err, "Material no encontrado")
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	s.invalidateStats(ctx)
	return nil
}

func (s *materialService) Reactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapFindErr(err, "Material no encontrado")
	}
	if err := s.repo.Reactivar(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	s.invalidateStats(ctx)
	return nil
}

// Stats serves the aggregate counters with a short Redis cache in front. The
// cache is best-effort: Redis being down degrades to querying Postgres.
func (s *materialService) Stats(ctx context.Context) (*dto.MaterialStatsResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, statsCacheKey).Result(); err == nil {
			var resp dto.MaterialStatsResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return &resp, nil
			}
		}
	}

	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	resp := &dto.MaterialStatsResponse{
		Total:        stats.Total,
		ConVariantes: stats.ConVariantes,
		SinStock:     stats.SinStock,
		Proveedores:  stats.Proveedores,
	}

	if s.rdb != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, statsCacheKey, data, statsCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("stats cache: set failed")
			}
		}
	}
	return resp, nil
}

func (s *materialService) AlertasStock(ctx context.Context) ([]dto.AlertaStockResponse, error) {
	materiales, err := s.repo.ListBajoMinimo(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	alertas := make([]dto.AlertaStockResponse, 0, len(materiales))
	for i := range materiales {
		m := &materiales[i]
		alertas = append(alertas, dto.AlertaStockResponse{
			MaterialID:  m.ID.String(),
			Nombre:      m.Nombre,
			Stock:       m.Stock,
			StockMinimo: m.StockMinimo,
			Unidad:      m.Unidad,
		})
	}
	return alertas, nil
}

func (s *materialService) resolverProveedor(ctx context.Context, raw string) (*uuid.UUID, error) {
	pid, err := uuid.Parse(raw)
	if err != nil {
		return nil, apierror.Validationf("proveedor_id", "uuid inválido")
	}
	p, err := s.proveedorRepo.FindByID(ctx, pid)
	if err != nil {
		return nil, mapFindErr(err, "Proveedor no encontrado")
	}
	if !p.Activo {
		return nil, apierror.Conflict("El proveedor está inactivo")
	}
	return &pid, nil
}

func (s *materialService) invalidateStats(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, statsCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("stats cache: del failed")
	}
}

func materialToResponse(m *model.Material) *dto.MaterialResponse {
	var proveedorID *string
	if m.ProveedorID != nil {
		id := m.ProveedorID.String()
		proveedorID = &id
	}
	return &dto.MaterialResponse{
		ID:             m.ID.String(),
		Nombre:         m.Nombre,
		Descripcion:    m.Descripcion,
		Unidad:         m.Unidad,
		Costo:          m.Costo,
		Stock:          m.Stock,
		StockMinimo:    m.StockMinimo,
		TieneVariantes: m.TieneVariantes,
		EsBase:         m.EsBase,
		ProveedorID:    proveedorID,
		Activo:         m.Activo,
	}
}
