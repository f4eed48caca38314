package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/celvintr/arquialum-sub003/internal/apierror"
	"github.com/celvintr/arquialum-sub003/internal/dto"
	"github.com/celvintr/arquialum-sub003/internal/model"
	"github.com/celvintr/arquialum-sub003/internal/repository"
	"github.com/celvintr/arquialum-sub003/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// PagoService registra pagos contra facturas. Un pago nace pendiente y sólo
// admite una transición de estado: confirmado o rechazado, ambos terminales.
// Al confirmar se encola la generación asíncrona del recibo PDF.
type PagoService interface {
	Registrar(ctx context.Context, req dto.RegistrarPagoRequest) (*dto.PagoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.PagoResponse, error)
	Listar(ctx context.Context, filter dto.PagoFilter) (*dto.PagoListResponse, error)
	Confirmar(ctx context.Context, id uuid.UUID) (*dto.PagoResponse, error)
	Rechazar(ctx context.Context, id uuid.UUID) (*dto.PagoResponse, error)
}

type pagoService struct {
	repo       repository.PagoRepository
	dispatcher *worker.Dispatcher
}

func NewPagoService(repo repository.PagoRepository, dispatcher *worker.Dispatcher) PagoService {
	return &pagoService{repo: repo, dispatcher: dispatcher}
}

func (s *pagoService) Registrar(ctx context.Context, req dto.RegistrarPagoRequest) (*dto.PagoResponse, error) {
	facturaID, err := uuid.Parse(req.FacturaID)
	if err != nil {
		return nil, apierror.Validationf("factura_id", "uuid inválido")
	}
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, apierror.Validationf("cliente_id", "uuid inválido")
	}
	if !req.Monto.IsPositive() {
		return nil, apierror.Validationf("monto", "debe ser mayor a cero")
	}
	if !model.MetodoPagoValido(req.Metodo) {
		return nil, apierror.Validationf("metodo", "método desconocido %q, válidos: %s", req.Metodo, strings.Join(model.MetodosPago, ", "))
	}
	if err := validarDetalles(req.Metodo, req.Detalles); err != nil {
		return nil, err
	}

	detalles := make(map[string]string, len(req.Detalles)+1)
	for k, v := range req.Detalles {
		detalles[k] = v
	}
	// El email del cliente se guarda bajo una clave reservada del detalle
	// para que la confirmación sepa a dónde enviar el recibo.
	if req.ClienteEmail != nil && *req.ClienteEmail != "" {
		detalles[claveEmailRecibo] = *req.ClienteEmail
	}

	p := &model.Pago{
		FacturaID: facturaID,
		ClienteID: clienteID,
		Monto:     req.Monto,
		Metodo:    req.Metodo,
		Detalles:  detalles,
		Fecha:     time.Now().UTC(),
		Estado:    model.PagoPendiente,
		Notas:     req.Notas,
	}
	// El número de folio lo asigna el repositorio dentro de la misma
	// transacción que el insert.
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, apierror.Internal(err)
	}

	log.Info().Int64("numero", p.Numero).Str("metodo", p.Metodo).Msg("pago registrado")
	return pagoToResponse(p), nil
}

func (s *pagoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.PagoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapFindErr(err, "Pago no encontrado")
	}
	return pagoToResponse(p), nil
}

func (s *pagoService) Listar(ctx context.Context, filter dto.PagoFilter) (*dto.PagoListResponse, error) {
	repoFilter := repository.PagoFilter{
		Estado: filter.Estado,
		Metodo: filter.Metodo,
		Page:   filter.Page,
		Limit:  filter.Limit,
	}
	if filter.FacturaID != "" {
		fid, err := uuid.Parse(filter.FacturaID)
		if err != nil {
			return nil, apierror.Validationf("factura_id", "uuid inválido")
		}
		repoFilter.FacturaID = &fid
	}
	if filter.ClienteID != "" {
		cid, err := uuid.Parse(filter.ClienteID)
		if err != nil {
			return nil, apierror.Validationf("cliente_id", "uuid inválido")
		}
		repoFilter.ClienteID = &cid
	}
	if repoFilter.Page < 1 {
		repoFilter.Page = 1
	}
	if repoFilter.Limit < 1 || repoFilter.Limit > 500 {
		repoFilter.Limit = 100
	}

	pagos, total, err := s.repo.List(ctx, repoFilter)
	if err != nil {
		return nil, apierror.Internal(err)
	}

	data := make([]dto.PagoResponse, 0, len(pagos))
	for i := range pagos {
		data = append(data, *pagoToResponse(&pagos[i]))
	}
	return &dto.PagoListResponse{
		Data:       data,
		Total:      total,
		Page:       repoFilter.Page,
		Limit:      repoFilter.Limit,
		TotalPages: totalPages(total, repoFilter.Limit),
	}, nil
}

func (s *pagoService) Confirmar(ctx context.Context, id uuid.UUID) (*dto.PagoResponse, error) {
	p, err := s.transicionar(ctx, id, model.PagoConfirmado)
	if err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		payload := worker.ReciboPayload{PagoID: p.ID.String(), ClienteEmail: emailRecibo(p)}
		if err := s.dispatcher.EnqueueRecibo(ctx, payload); err != nil {
			// El recibo es recuperable reencolando a mano; la confirmación no
			// se revierte por una falla de encolado.
			log.Error().Err(err).Int64("numero", p.Numero).Msg("no se pudo encolar el recibo")
		}
	}
	return pagoToResponse(p), nil
}

func (s *pagoService) Rechazar(ctx context.Context, id uuid.UUID) (*dto.PagoResponse, error) {
	p, err := s.transicionar(ctx, id, model.PagoRechazado)
	if err != nil {
		return nil, err
	}
	return pagoToResponse(p), nil
}

func (s *pagoService) transicionar(ctx context.Context, id uuid.UUID, destino string) (*model.Pago, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapFindErr(err, "Pago no encontrado")
	}
	if p.Estado != model.PagoPendiente {
		return nil, apierror.Conflict("El pago ya está en estado terminal: " + p.Estado)
	}
	// La actualización guardada del repositorio decide bajo concurrencia:
	// sólo un escritor puede sacar al pago de pendiente.
	if err := s.repo.TransicionarEstado(ctx, id, destino); err != nil {
		if errors.Is(err, repository.ErrPagoNoPendiente) {
			if actual, ferr := s.repo.FindByID(ctx, id); ferr == nil {
				return nil, apierror.Conflict("El pago ya está en estado terminal: " + actual.Estado)
			}
			return nil, apierror.Conflict("El pago ya está en estado terminal")
		}
		return nil, apierror.Internal(err)
	}
	p.Estado = destino
	return p, nil
}

// claveEmailRecibo is the reserved detail key holding the receipt delivery
// address between registration and confirmation. Hidden from responses.
const claveEmailRecibo = "_email_recibo"

func emailRecibo(p *model.Pago) *string {
	if email, ok := p.Detalles[claveEmailRecibo]; ok && email != "" {
		return &email
	}
	return nil
}

// validarDetalles enforces per-method required detail fields. Every missing
// field is reported, not just the first.
func validarDetalles(metodo string, detalles map[string]string) error {
	requeridos, ok := model.DetallesRequeridos[metodo]
	if !ok {
		return nil
	}
	fields := make(map[string]string)
	for _, campo := range requeridos {
		if v, ok := detalles[campo]; !ok || strings.TrimSpace(v) == "" {
			fields["detalles."+campo] = "requerido para el método " + metodo
		}
	}
	if len(fields) > 0 {
		return apierror.Validation(fields)
	}
	return nil
}

func pagoToResponse(p *model.Pago) *dto.PagoResponse {
	detalles := make(map[string]string, len(p.Detalles))
	for k, v := range p.Detalles {
		if k == claveEmailRecibo {
			continue
		}
		detalles[k] = v
	}
	return &dto.PagoResponse{
		ID:             p.ID.String(),
		Numero:         p.Numero,
		FacturaID:      p.FacturaID.String(),
		ClienteID:      p.ClienteID.String(),
		Monto:          p.Monto,
		Metodo:         p.Metodo,
		Detalles:       detalles,
		Fecha:          p.Fecha.Format(time.RFC3339),
		Estado:         p.Estado,
		Notas:          p.Notas,
		ComprobanteURL: p.ComprobanteURL,
	}
}
