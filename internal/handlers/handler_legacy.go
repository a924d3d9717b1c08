package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/crestprop/lease_ledger_app/internal/core/ports/services"
	"github.com/crestprop/lease_ledger_app/internal/ledgerstore"
	"github.com/crestprop/lease_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// legacyHandler serves the numeric-mode execute endpoint kept for older
// integrations. Each domain segment maps to one voucher type; the mode number
// in the payload selects the operation.
type legacyHandler struct {
	dispatcher *ledgerstore.Dispatcher
}

func newLegacyHandler(voucherService portssvc.VoucherSvcFacade) *legacyHandler {
	return &legacyHandler{dispatcher: ledgerstore.NewDispatcher(voucherService)}
}

// execute godoc
// @Summary Execute a legacy numeric-mode voucher operation
// @Description Dispatches on the mode number (1=create, 2=update, 3=list, 4=get, 5=delete, 6=search, 7=approve/reject, 8=reverse)
// @Tags legacy
// @Accept json
// @Produce json
// @Param domain path string true "Voucher domain" Enums(journal, payment, lease-revenue)
// @Param request body ledgerstore.ExecuteRequest true "Mode and payload"
// @Success 200 {object} interface{}
// @Failure 400 {object} map[string]interface{} "Unknown mode or malformed payload"
// @Router /legacy/{domain}/execute [post]
func (h *legacyHandler) execute(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req ledgerstore.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		unauthorized(c, logger)
		return
	}

	dom := ledgerstore.Domain(c.Param("domain"))
	logger = logger.With(slog.String("legacy_domain", string(dom)), slog.Int("legacy_mode", int(req.Mode)))

	result, err := h.dispatcher.Execute(c.Request.Context(), dom, req, userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Legacy operation executed")
	c.JSON(http.StatusOK, result)
}

// registerLegacyRoutes registers the legacy execute endpoint
func registerLegacyRoutes(group *gin.RouterGroup, voucherService portssvc.VoucherSvcFacade) {
	h := newLegacyHandler(voucherService)
	group.POST("/legacy/:domain/execute", h.execute)
}
