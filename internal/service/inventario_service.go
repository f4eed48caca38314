package service

import (
	"context"
	"fmt"
	"time"

	"github.com/celvintr/arquialum-sub003/internal/apierror"
	"github.com/celvintr/arquialum-sub003/internal/dto"
	"github.com/celvintr/arquialum-sub003/internal/model"
	"github.com/celvintr/arquialum-sub003/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// InventarioService owns the stock movement ledger. RegistrarMovimiento is the
// only way stock changes in the whole system; it runs inside a transaction
// with a row lock on the material so two concurrent movements can never read
// the same snapshot.
type InventarioService interface {
	RegistrarMovimiento(ctx context.Context, usuarioID uuid.UUID, req dto.RegistrarMovimientoRequest) (*dto.MovimientoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.MovimientoResponse, error)
	Listar(ctx context.Context, filter dto.MovimientoFilter) (*dto.MovimientoListResponse, error)
}

type inventarioService struct {
	movRepo      repository.MovimientoRepository
	materialRepo repository.MaterialRepository
}

func NewInventarioService(movRepo repository.MovimientoRepository, materialRepo repository.MaterialRepository) InventarioService {
	return &inventarioService{movRepo: movRepo, materialRepo: materialRepo}
}

func (s *inventarioService) RegistrarMovimiento(ctx context.Context, usuarioID uuid.UUID, req dto.RegistrarMovimientoRequest) (*dto.MovimientoResponse, error) {
	materialID, err := uuid.Parse(req.MaterialID)
	if err != nil {
		return nil, apierror.Validationf("material_id", "uuid inválido")
	}
	if !model.TipoMovimientoValido(req.Tipo) {
		return nil, apierror.Validationf("tipo", "tipo de movimiento desconocido %q", req.Tipo)
	}
	if !model.MotivoMovimientoValido(req.Motivo) {
		return nil, apierror.Validationf("motivo", "motivo desconocido %q", req.Motivo)
	}
	if !req.Cantidad.IsPositive() {
		return nil, apierror.Validationf("cantidad", "debe ser mayor a cero")
	}
	if req.CostoUnitario != nil && req.CostoUnitario.IsNegative() {
		return nil, apierror.Validationf("costo_unitario", "no puede ser negativo")
	}

	refs, err := parseRefs(req.OrdenTrabajoID, req.FacturaID, req.ProveedorID)
	if err != nil {
		return nil, err
	}

	var mov *model.MovimientoInventario
	txErr := runTx(ctx, s.movRepo.DB(), func(tx *gorm.DB) error {
		material, err := s.materialRepo.FindByIDForUpdateTx(tx, materialID)
		if err != nil {
			return mapFindErr(err, "Material no encontrado")
		}
		if !material.Activo {
			return apierror.Conflict("El material está inactivo")
		}

		anterior := material.Stock
		delta := req.Cantidad
		if !model.MovimientoSuma(req.Tipo) {
			delta = delta.Neg()
		}
		nueva := anterior.Add(delta)

		if nueva.IsNegative() && !req.PermitirNegativo {
			return apierror.InsufficientStock(fmt.Sprintf(
				"Stock insuficiente de %s: disponible %s, solicitado %s",
				material.Nombre, anterior.String(), req.Cantidad.String()))
		}

		numero, err := s.movRepo.NextNumero(ctx, tx)
		if err != nil {
			return apierror.Internal(err)
		}

		costoUnitario := material.Costo
		if req.CostoUnitario != nil {
			costoUnitario = *req.CostoUnitario
		}

		mov = &model.MovimientoInventario{
			Numero:           numero,
			Tipo:             req.Tipo,
			Motivo:           req.Motivo,
			MaterialID:       materialID,
			OrdenTrabajoID:   refs.ordenTrabajoID,
			FacturaID:        refs.facturaID,
			ProveedorID:      refs.proveedorID,
			Cantidad:         req.Cantidad,
			CantidadAnterior: anterior,
			CantidadNueva:    nueva,
			CostoUnitario:    costoUnitario,
			CostoTotal:       costoUnitario.Mul(req.Cantidad),
			Fecha:            time.Now().UTC(),
			UsuarioID:        usuarioID,
			Notas:            req.Notas,
			Material:         material,
		}

		if err := s.materialRepo.SetStockTx(tx, materialID, nueva); err != nil {
			return apierror.Internal(err)
		}
		if err := s.movRepo.CreateTx(tx, mov); err != nil {
			return apierror.Internal(err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	log.Info().
		Int64("numero", mov.Numero).
		Str("tipo", mov.Tipo).
		Str("material_id", materialID.String()).
		Str("cantidad", mov.Cantidad.String()).
		Msg("movimiento registrado")

	return movimientoToResponse(mov), nil
}

func (s *inventarioService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.MovimientoResponse, error) {
	mov, err := s.movRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapFindErr(err, "Movimiento no encontrado")
	}
	return movimientoToResponse(mov), nil
}

func (s *inventarioService) Listar(ctx context.Context, filter dto.MovimientoFilter) (*dto.MovimientoListResponse, error) {
	repoFilter := repository.MovimientoFilter{
		Tipo:   filter.Tipo,
		Motivo: filter.Motivo,
		Page:   filter.Page,
		Limit:  filter.Limit,
	}
	if filter.MaterialID != "" {
		mid, err := uuid.Parse(filter.MaterialID)
		if err != nil {
			return nil, apierror.Validationf("material_id", "uuid inválido")
		}
		repoFilter.MaterialID = &mid
	}
	if repoFilter.Page < 1 {
		repoFilter.Page = 1
	}
	if repoFilter.Limit < 1 || repoFilter.Limit > 500 {
		repoFilter.Limit = 100
	}

	movimientos, total, err := s.movRepo.List(ctx, repoFilter)
	if err != nil {
		return nil, apierror.Internal(err)
	}

	data := make([]dto.MovimientoResponse, 0, len(movimientos))
	for i := range movimientos {
		data = append(data, *movimientoToResponse(&movimientos[i]))
	}
	return &dto.MovimientoListResponse{
		Data:       data,
		Total:      total,
		Page:       repoFilter.Page,
		Limit:      repoFilter.Limit,
		TotalPages: totalPages(total, repoFilter.Limit),
	}, nil
}

type movimientoRefs struct {
	ordenTrabajoID *uuid.UUID
	facturaID      *uuid.UUID
	proveedorID    *uuid.UUID
}

func parseRefs(ordenTrabajo, factura, proveedor *string) (movimientoRefs, error) {
	var refs movimientoRefs
	parse := func(raw *string, field string) (*uuid.UUID, error) {
		if raw == nil || *raw == "" {
			return nil, nil
		}
		id, err := uuid.Parse(*raw)
		if err != nil {
			return nil, apierror.Validationf(field, "uuid inválido")
		}
		return &id, nil
	}
	var err error
	if refs.ordenTrabajoID, err = parse(ordenTrabajo, "orden_trabajo_id"); err != nil {
		return refs, err
	}
	if refs.facturaID, err = parse(factura, "factura_id"); err != nil {
		return refs, err
	}
	if refs.proveedorID, err = parse(proveedor, "proveedor_id"); err != nil {
		return refs, err
	}
	return refs, nil
}

func movimientoToResponse(m *model.MovimientoInventario) *dto.MovimientoResponse {
	resp := &dto.MovimientoResponse{
		ID:               m.ID.String(),
		Numero:           m.Numero,
		Tipo:             m.Tipo,
		Motivo:           m.Motivo,
		MaterialID:       m.MaterialID.String(),
		Cantidad:         m.Cantidad,
		CantidadAnterior: m.CantidadAnterior,
		CantidadNueva:    m.CantidadNueva,
		CostoUnitario:    m.CostoUnitario,
		CostoTotal:       m.CostoTotal,
		Fecha:            m.Fecha.Format(time.RFC3339),
		UsuarioID:        m.UsuarioID.String(),
		Notas:            m.Notas,
	}
	if m.Material != nil {
		resp.Material = m.Material.Nombre
	}
	if m.OrdenTrabajoID != nil {
		id := m.OrdenTrabajoID.String()
		resp.OrdenTrabajoID = &id
	}
	if m.FacturaID != nil {
		id := m.FacturaID.String()
		resp.FacturaID = &id
	}
	if m.ProveedorID != nil {
		id := m.ProveedorID.String()
		resp.ProveedorID = &id
	}
	return resp
}
