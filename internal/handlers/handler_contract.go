package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/crestprop/lease_ledger_app/internal/core/ports/services"
	"github.com/crestprop/lease_ledger_app/internal/dto"
	"github.com/crestprop/lease_ledger_app/internal/middleware"
	"github.com/crestprop/lease_ledger_app/internal/worker"
	"github.com/gin-gonic/gin"
)

// contractHandler handles HTTP requests for lease contracts and invoicing.
type contractHandler struct {
	contractService     portssvc.ContractSvcFacade
	leaseInvoiceService portssvc.LeaseInvoiceSvcFacade
	jobClient           *worker.Client
}

func newContractHandler(contractService portssvc.ContractSvcFacade, leaseInvoiceService portssvc.LeaseInvoiceSvcFacade, jobClient *worker.Client) *contractHandler {
	return &contractHandler{
		contractService:     contractService,
		leaseInvoiceService: leaseInvoiceService,
		jobClient:           jobClient,
	}
}

// createContract godoc
// @Summary Register a lease contract
// @Tags contracts
// @Accept json
// @Produce json
// @Param contract body dto.CreateContractRequest true "Contract"
// @Success 201 {object} dto.ContractResponse
// @Router /contracts [post]
func (h *contractHandler) createContract(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		unauthorized(c, logger)
		return
	}

	contract, err := h.contractService.CreateContract(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Contract created", slog.String("contract_no", contract.ContractNo))
	c.JSON(http.StatusCreated, dto.ToContractResponse(contract))
}

// getContract godoc
// @Summary Get a lease contract
// @Tags contracts
// @Produce json
// @Param contractID path string true "Contract ID"
// @Success 200 {object} dto.ContractResponse
// @Router /contracts/{contractID} [get]
func (h *contractHandler) getContract(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	contract, err := h.contractService.GetContractByID(c.Request.Context(), c.Param("contractID"))
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToContractResponse(contract))
}

// listContracts godoc
// @Summary List lease contracts for a company
// @Tags contracts
// @Produce json
// @Param companyID query string true "Company ID"
// @Success 200 {object} dto.ListContractsResponse
// @Router /contracts [get]
func (h *contractHandler) listContracts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID := c.Query("companyID")
	if companyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "companyID is required"})
		return
	}

	var params dto.ListContractsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	resp, err := h.contractService.ListContracts(c.Request.Context(), companyID, params)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateContract godoc
// @Summary Amend a lease contract
// @Tags contracts
// @Accept json
// @Produce json
// @Param contractID path string true "Contract ID"
// @Param contract body dto.UpdateContractRequest true "Fields to change"
// @Success 200 {object} dto.ContractResponse
// @Router /contracts/{contractID} [put]
func (h *contractHandler) updateContract(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		unauthorized(c, logger)
		return
	}

	contract, err := h.contractService.UpdateContract(c.Request.Context(), c.Param("contractID"), req, userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToContractResponse(contract))
}

// terminateContract godoc
// @Summary Terminate a lease contract
// @Tags contracts
// @Accept json
// @Param contractID path string true "Contract ID"
// @Param termination body dto.TerminateContractRequest true "Termination date and reason"
// @Success 200 {object} map[string]string
// @Router /contracts/{contractID}/terminate [post]
func (h *contractHandler) terminateContract(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contractID := c.Param("contractID")

	var req dto.TerminateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		unauthorized(c, logger)
		return
	}

	if err := h.contractService.TerminateContract(c.Request.Context(), contractID, req, userID); err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Contract terminated", slog.String("contract_id", contractID))
	c.JSON(http.StatusOK, gin.H{"contractID": contractID, "status": "terminated"})
}

// listContractInvoices godoc
// @Summary List invoices generated for a contract
// @Tags contracts
// @Produce json
// @Param contractID path string true "Contract ID"
// @Success 200 {array} dto.LeaseInvoiceResponse
// @Router /contracts/{contractID}/invoices [get]
func (h *contractHandler) listContractInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	invoices, err := h.leaseInvoiceService.ListInvoicesByContract(c.Request.Context(), c.Param("contractID"))
	if err != nil {
		respondError(c, logger, err)
		return
	}

	resp := make([]dto.LeaseInvoiceResponse, len(invoices))
	for i := range invoices {
		resp[i] = dto.ToLeaseInvoiceResponse(&invoices[i])
	}
	c.JSON(http.StatusOK, resp)
}

// generateInvoices godoc
// @Summary Queue a lease invoicing run
// @Description Enqueues a background run that invoices every contract due as of the given date
// @Tags contracts
// @Accept json
// @Produce json
// @Param request body dto.GenerateInvoicesRequest true "Run scope"
// @Success 202 {object} map[string]string
// @Router /lease-invoices/generate [post]
func (h *contractHandler) generateInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.GenerateInvoicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		unauthorized(c, logger)
		return
	}

	asOf := req.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	info, err := h.jobClient.EnqueueGenerateInvoices(c.Request.Context(), worker.GenerateInvoicesPayload{
		AsOf:        asOf,
		ActorUserID: userID,
	})
	if err != nil {
		logger.Error("Failed to enqueue invoicing run", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to queue invoicing run"})
		return
	}

	logger.Info("Invoicing run queued", slog.String("task_id", info.ID))
	c.JSON(http.StatusAccepted, gin.H{"taskID": info.ID, "status": "queued"})
}

// registerContractRoutes registers contract and invoicing routes
func registerContractRoutes(group *gin.RouterGroup, contractService portssvc.ContractSvcFacade, leaseInvoiceService portssvc.LeaseInvoiceSvcFacade, jobClient *worker.Client) {
	h := newContractHandler(contractService, leaseInvoiceService, jobClient)

	contracts := group.Group("/contracts")
	{
		contracts.POST("", h.createContract)
		contracts.GET("", h.listContracts)
		contracts.GET("/:contractID", h.getContract)
		contracts.PUT("/:contractID", h.updateContract)
		contracts.POST("/:contractID/terminate", h.terminateContract)
		contracts.GET("/:contractID/invoices", h.listContractInvoices)
	}

	group.POST("/lease-invoices/generate", h.generateInvoices)
}
