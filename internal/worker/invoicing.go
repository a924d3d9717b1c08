package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	portssvc "github.com/crestprop/lease_ledger_app/internal/core/ports/services"
	"github.com/crestprop/lease_ledger_app/internal/middleware"
	"github.com/hibiken/asynq"
)

// InvoicingHandler processes lease invoicing tasks.
type InvoicingHandler struct {
	leaseInvoiceService portssvc.LeaseInvoiceSvcFacade
	logger              *slog.Logger
}

// NewInvoicingHandler creates the handler for invoicing tasks.
func NewInvoicingHandler(leaseInvoiceService portssvc.LeaseInvoiceSvcFacade, logger *slog.Logger) *InvoicingHandler {
	return &InvoicingHandler{leaseInvoiceService: leaseInvoiceService, logger: logger}
}

// HandleGenerateInvoices runs one invoicing pass. Per-contract failures are
// reported in the run summary, not retried at the task level.
func (h *InvoicingHandler) HandleGenerateInvoices(ctx context.Context, t *asynq.Task) error {
	var payload GenerateInvoicesPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		h.logger.Error("Malformed invoicing payload", slog.String("error", err.Error()))
		return asynq.SkipRetry
	}

	if payload.AsOf.IsZero() {
		payload.AsOf = time.Now().UTC()
	}
	actor := payload.ActorUserID
	if actor == "" {
		actor = SystemActorID
	}
	ctx = middleware.WithUserID(ctx, actor)

	logger := h.logger.With(
		slog.Time("as_of", payload.AsOf),
		slog.String("actor_user_id", actor),
	)
	logger.Info("Starting lease invoicing run")

	resp, err := h.leaseInvoiceService.GenerateDueInvoices(ctx, payload.AsOf, actor)
	if err != nil {
		logger.Error("Lease invoicing run failed", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Lease invoicing run finished",
		slog.Int("generated", resp.Generated),
		slog.Int("skipped", resp.Skipped),
		slog.Int("failures", len(resp.Failures)),
	)
	for _, failure := range resp.Failures {
		logger.Warn("Contract invoicing failed", slog.String("detail", failure))
	}
	return nil
}
