package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/crestprop/lease_ledger_app/internal/core/ports/services"
	"github.com/crestprop/lease_ledger_app/internal/dto"
	"github.com/crestprop/lease_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// voucherHandler handles HTTP requests related to vouchers.
type voucherHandler struct {
	voucherService portssvc.VoucherSvcFacade
}

func newVoucherHandler(voucherService portssvc.VoucherSvcFacade) *voucherHandler {
	return &voucherHandler{voucherService: voucherService}
}

// createVoucher godoc
// @Summary Create a voucher draft
// @Description Validates and persists a new voucher; the store assigns the voucher number
// @Tags vouchers
// @Accept json
// @Produce json
// @Param voucher body dto.CreateVoucherRequest true "Voucher draft"
// @Success 201 {object} dto.VoucherResult
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Router /vouchers [post]
func (h *voucherHandler) createVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		unauthorized(c, logger)
		return
	}

	result, err := h.voucherService.Create(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Voucher created", slog.String("voucher_no", result.VoucherNo))
	c.JSON(http.StatusCreated, result)
}

// validateVoucher godoc
// @Summary Validate a voucher draft without persisting it
// @Tags vouchers
// @Accept json
// @Produce json
// @Param voucher body dto.CreateVoucherRequest true "Voucher draft"
// @Success 200 {object} dto.ValidateVoucherResponse
// @Router /vouchers/validate [post]
func (h *voucherHandler) validateVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	resp := dto.ValidateVoucherResponse{IsValid: true, Errors: []dto.ValidationErrorItem{}}
	if verrs := h.voucherService.Validate(req); verrs != nil {
		resp.IsValid = false
		for _, v := range verrs.Violations {
			resp.Errors = append(resp.Errors, dto.ValidationErrorItem{Field: v.Field, Message: v.Message})
		}
	}
	c.JSON(http.StatusOK, resp)
}

// getVoucher godoc
// @Summary Get a voucher with its lines
// @Tags vouchers
// @Produce json
// @Param voucherNo path string true "Voucher number"
// @Success 200 {object} dto.VoucherResponse
// @Failure 404 {object} map[string]string "Voucher not found"
// @Router /vouchers/{voucherNo} [get]
func (h *voucherHandler) getVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherNo := c.Param("voucherNo")

	voucher, err := h.voucherService.GetVoucher(c.Request.Context(), voucherNo)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

// listVouchers godoc
// @Summary List vouchers for a company
// @Tags vouchers
// @Produce json
// @Param companyID query string true "Company ID"
// @Success 200 {object} dto.ListVouchersResponse
// @Router /vouchers [get]
func (h *voucherHandler) listVouchers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID := c.Query("companyID")
	if companyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "companyID is required"})
		return
	}

	var params dto.ListVouchersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	resp, err := h.voucherService.ListVouchers(c.Request.Context(), companyID, params)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateVoucher godoc
// @Summary Replace a voucher draft
// @Description Revalidates and replaces the voucher; approved vouchers are protected
// @Tags vouchers
// @Accept json
// @Produce json
// @Param voucherNo path string true "Voucher number"
// @Param voucher body dto.UpdateVoucherRequest true "Replacement draft"
// @Success 200 {object} dto.VoucherResult
// @Router /vouchers/{voucherNo} [put]
func (h *voucherHandler) updateVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherNo := c.Param("voucherNo")

	var req dto.UpdateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		unauthorized(c, logger)
		return
	}

	result, err := h.voucherService.Update(c.Request.Context(), voucherNo, req, userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Voucher updated", slog.String("voucher_no", voucherNo))
	c.JSON(http.StatusOK, result)
}

// deleteVoucher godoc
// @Summary Delete a draft or pending voucher
// @Tags vouchers
// @Param voucherNo path string true "Voucher number"
// @Success 204 "Deleted"
// @Router /vouchers/{voucherNo} [delete]
func (h *voucherHandler) deleteVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherNo := c.Param("voucherNo")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		unauthorized(c, logger)
		return
	}

	if err := h.voucherService.Delete(c.Request.Context(), voucherNo, userID); err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Voucher deleted", slog.String("voucher_no", voucherNo))
	c.Status(http.StatusNoContent)
}

// submitVoucher godoc
// @Summary Submit a draft for approval
// @Tags vouchers
// @Param voucherNo path string true "Voucher number"
// @Success 200 {object} map[string]string
// @Router /vouchers/{voucherNo}/submit [post]
func (h *voucherHandler) submitVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherNo := c.Param("voucherNo")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		unauthorized(c, logger)
		return
	}

	if err := h.voucherService.SubmitForApproval(c.Request.Context(), voucherNo, userID); err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"voucherNo": voucherNo, "status": "submitted"})
}

// decideVoucher godoc
// @Summary Approve or reject a pending voucher
// @Description Rejections must carry a reason in the comments field
// @Tags vouchers
// @Accept json
// @Produce json
// @Param voucherNo path string true "Voucher number"
// @Param decision body dto.ApprovalActionRequest true "Approval decision"
// @Success 200 {object} map[string]string
// @Router /vouchers/{voucherNo}/decision [post]
func (h *voucherHandler) decideVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherNo := c.Param("voucherNo")

	var req dto.ApprovalActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		unauthorized(c, logger)
		return
	}

	if err := h.voucherService.ApproveOrReject(c.Request.Context(), voucherNo, req, userID); err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Approval decision recorded",
		slog.String("voucher_no", voucherNo), slog.String("action", req.Action))
	c.JSON(http.StatusOK, gin.H{"voucherNo": voucherNo, "action": req.Action})
}

// bulkDecideVouchers godoc
// @Summary Approve or reject several vouchers in one call
// @Description Each voucher succeeds or fails on its own; there is no rollback across items
// @Tags vouchers
// @Accept json
// @Produce json
// @Param decision body dto.BulkApprovalRequest true "Bulk decision"
// @Success 200 {object} dto.BulkApprovalResponse
// @Router /vouchers/bulk-decision [post]
func (h *voucherHandler) bulkDecideVouchers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BulkApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		unauthorized(c, logger)
		return
	}

	resp, err := h.voucherService.BulkApproveOrReject(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Bulk approval processed",
		slog.Int("succeeded", resp.Succeeded), slog.Int("failed", resp.Failed))
	c.JSON(http.StatusOK, resp)
}

// resetApproval godoc
// @Summary Return a decided voucher to pending approval
// @Tags vouchers
// @Param voucherNo path string true "Voucher number"
// @Success 200 {object} map[string]string
// @Router /vouchers/{voucherNo}/reset-approval [post]
func (h *voucherHandler) resetApproval(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherNo := c.Param("voucherNo")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		unauthorized(c, logger)
		return
	}

	if err := h.voucherService.ResetApproval(c.Request.Context(), voucherNo, userID); err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"voucherNo": voucherNo, "status": "approval reset"})
}

// reverseVoucher godoc
// @Summary Reverse a posted voucher
// @Description Posts a linked counter-entry with debits and credits swapped
// @Tags vouchers
// @Accept json
// @Produce json
// @Param voucherNo path string true "Voucher number"
// @Param reversal body dto.ReverseVoucherRequest true "Reversal reason"
// @Success 201 {object} dto.ReverseVoucherResult
// @Router /vouchers/{voucherNo}/reverse [post]
func (h *voucherHandler) reverseVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherNo := c.Param("voucherNo")

	var req dto.ReverseVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		unauthorized(c, logger)
		return
	}

	result, err := h.voucherService.Reverse(c.Request.Context(), voucherNo, req.Reason, userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Voucher reversed",
		slog.String("voucher_no", voucherNo),
		slog.String("reversal_voucher_no", result.ReversalVoucherNo))
	c.JSON(http.StatusCreated, result)
}

// addAttachment godoc
// @Summary Attach a document to a voucher
// @Tags vouchers
// @Accept json
// @Produce json
// @Param voucherNo path string true "Voucher number"
// @Param attachment body dto.AttachmentRequest true "Encoded attachment"
// @Success 201 {object} domain.Attachment
// @Router /vouchers/{voucherNo}/attachments [post]
func (h *voucherHandler) addAttachment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherNo := c.Param("voucherNo")

	var req dto.AttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		unauthorized(c, logger)
		return
	}

	attachment, err := h.voucherService.AddAttachment(c.Request.Context(), voucherNo, req, userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, attachment)
}

// removeAttachment godoc
// @Summary Detach a document from a voucher
// @Tags vouchers
// @Param voucherNo path string true "Voucher number"
// @Param attachmentID path string true "Attachment ID"
// @Success 204 "Deleted"
// @Router /vouchers/{voucherNo}/attachments/{attachmentID} [delete]
func (h *voucherHandler) removeAttachment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherNo := c.Param("voucherNo")
	attachmentID := c.Param("attachmentID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		unauthorized(c, logger)
		return
	}

	if err := h.voucherService.RemoveAttachment(c.Request.Context(), voucherNo, attachmentID, userID); err != nil {
		respondError(c, logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// getApprovalLog godoc
// @Summary Get the approval audit trail of a voucher
// @Tags vouchers
// @Produce json
// @Param voucherNo path string true "Voucher number"
// @Success 200 {array} domain.ApprovalLogEntry
// @Router /vouchers/{voucherNo}/approval-log [get]
func (h *voucherHandler) getApprovalLog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherNo := c.Param("voucherNo")

	entries, err := h.voucherService.ListApprovalLog(c.Request.Context(), voucherNo)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// registerVoucherRoutes registers voucher specific routes
func registerVoucherRoutes(group *gin.RouterGroup, voucherService portssvc.VoucherSvcFacade) {
	h := newVoucherHandler(voucherService)

	vouchers := group.Group("/vouchers")
	{
		vouchers.POST("", h.createVoucher)
		vouchers.GET("", h.listVouchers)
		vouchers.POST("/validate", h.validateVoucher)
		vouchers.POST("/bulk-decision", h.bulkDecideVouchers)
		vouchers.GET("/:voucherNo", h.getVoucher)
		vouchers.PUT("/:voucherNo", h.updateVoucher)
		vouchers.DELETE("/:voucherNo", h.deleteVoucher)
		vouchers.POST("/:voucherNo/submit", h.submitVoucher)
		vouchers.POST("/:voucherNo/decision", h.decideVoucher)
		vouchers.POST("/:voucherNo/reset-approval", h.resetApproval)
		vouchers.POST("/:voucherNo/reverse", h.reverseVoucher)
		vouchers.POST("/:voucherNo/attachments", h.addAttachment)
		vouchers.DELETE("/:voucherNo/attachments/:attachmentID", h.removeAttachment)
		vouchers.GET("/:voucherNo/approval-log", h.getApprovalLog)
	}
}
