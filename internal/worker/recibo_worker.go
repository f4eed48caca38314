package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/celvintr/arquialum-sub003/internal/infra"
	"github.com/celvintr/arquialum-sub003/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ReciboPayload is the job body for receipt generation.
type ReciboPayload struct {
	PagoID       string  `json:"pago_id"`
	ClienteEmail *string `json:"cliente_email,omitempty"`
}

// ReciboWorker renders the PDF receipt for a confirmed payment, stores its
// path on the payment row, and optionally emails it to the client.
type ReciboWorker struct {
	pagoRepo    repository.PagoRepository
	mailer      *infra.Mailer
	storagePath string
}

func NewReciboWorker(pagoRepo repository.PagoRepository, mailer *infra.Mailer, storagePath string) *ReciboWorker {
	return &ReciboWorker{pagoRepo: pagoRepo, mailer: mailer, storagePath: storagePath}
}

func (w *ReciboWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload ReciboPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("recibo: unmarshal payload: %w", err)
	}

	pagoID, err := uuid.Parse(payload.PagoID)
	if err != nil {
		return fmt.Errorf("recibo: pago_id inválido: %w", err)
	}

	pago, err := w.pagoRepo.FindByID(ctx, pagoID)
	if err != nil {
		return fmt.Errorf("recibo: pago %s: %w", payload.PagoID, err)
	}

	pdfPath, err := infra.GenerateReciboPDF(pago, w.storagePath)
	if err != nil {
		return err
	}

	if err := w.pagoRepo.UpdateComprobanteURL(ctx, pagoID, pdfPath); err != nil {
		return fmt.Errorf("recibo: guardar URL: %w", err)
	}

	// Email delivery is best-effort: a bounced address should not requeue the
	// whole job and regenerate the PDF.
	if payload.ClienteEmail != nil && *payload.ClienteEmail != "" {
		subject := fmt.Sprintf("Recibo de pago N° %d", pago.Numero)
		body := fmt.Sprintf("Adjuntamos el recibo de su pago por $%s.", pago.Monto.StringFixed(2))
		if err := w.mailer.SendRecibo(*payload.ClienteEmail, subject, body, pdfPath); err != nil {
			log.Error().Str("pago_id", payload.PagoID).Err(err).Msg("recibo: envío de email falló")
		}
	}

	log.Info().Int64("numero", pago.Numero).Str("pdf", pdfPath).Msg("recibo generado")
	return nil
}
