package handlers

import (
	"net/http"

	portssvc "github.com/crestprop/lease_ledger_app/internal/core/ports/services"
	"github.com/crestprop/lease_ledger_app/internal/dto"
	"github.com/crestprop/lease_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// masterDataHandler handles HTTP requests for master data entities.
type masterDataHandler struct {
	masterDataService portssvc.MasterDataSvcFacade
}

func newMasterDataHandler(masterDataService portssvc.MasterDataSvcFacade) *masterDataHandler {
	return &masterDataHandler{masterDataService: masterDataService}
}

func (h *masterDataHandler) createBank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		unauthorized(c, logger)
		return
	}

	bank, err := h.masterDataService.CreateBank(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, bank)
}

func (h *masterDataHandler) getBank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	bank, err := h.masterDataService.GetBankByID(c.Request.Context(), c.Param("bankID"))
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, bank)
}

func (h *masterDataHandler) listBanks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	banks, err := h.masterDataService.ListBanks(c.Request.Context(), c.Query("activeOnly") == "true")
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, banks)
}

func (h *masterDataHandler) updateBank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		unauthorized(c, logger)
		return
	}

	bank, err := h.masterDataService.UpdateBank(c.Request.Context(), c.Param("bankID"), req, userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, bank)
}

func (h *masterDataHandler) createDepartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		unauthorized(c, logger)
		return
	}

	department, err := h.masterDataService.CreateDepartment(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, department)
}

func (h *masterDataHandler) listDepartments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	departments, err := h.masterDataService.ListDepartments(c.Request.Context(), c.Query("activeOnly") == "true")
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, departments)
}

func (h *masterDataHandler) createCountry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		unauthorized(c, logger)
		return
	}

	country, err := h.masterDataService.CreateCountry(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, country)
}

func (h *masterDataHandler) listCountries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	countries, err := h.masterDataService.ListCountries(c.Request.Context())
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, countries)
}

func (h *masterDataHandler) createDeduction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateDeductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		unauthorized(c, logger)
		return
	}

	deduction, err := h.masterDataService.CreateDeduction(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, deduction)
}

func (h *masterDataHandler) listDeductions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	deductions, err := h.masterDataService.ListDeductions(c.Request.Context(), c.Query("activeOnly") == "true")
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, deductions)
}

func (h *masterDataHandler) createFiscalYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateFiscalYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		unauthorized(c, logger)
		return
	}

	fy, err := h.masterDataService.CreateFiscalYear(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, fy)
}

func (h *masterDataHandler) listFiscalYears(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID := c.Query("companyID")
	if companyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "companyID is required"})
		return
	}

	years, err := h.masterDataService.ListFiscalYears(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, years)
}

func (h *masterDataHandler) closeFiscalYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID := c.Query("companyID")
	if companyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "companyID is required"})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		unauthorized(c, logger)
		return
	}

	fiscalYearID := c.Param("fiscalYearID")
	if err := h.masterDataService.CloseFiscalYear(c.Request.Context(), companyID, fiscalYearID, userID); err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fiscalYearID": fiscalYearID, "status": "closed"})
}

// registerMasterDataRoutes registers bank, department, country, deduction and
// fiscal year routes
func registerMasterDataRoutes(group *gin.RouterGroup, masterDataService portssvc.MasterDataSvcFacade) {
	h := newMasterDataHandler(masterDataService)

	banks := group.Group("/banks")
	{
		banks.POST("", h.createBank)
		banks.GET("", h.listBanks)
		banks.GET("/:bankID", h.getBank)
		banks.PUT("/:bankID", h.updateBank)
	}

	departments := group.Group("/departments")
	{
		departments.POST("", h.createDepartment)
		departments.GET("", h.listDepartments)
	}

	countries := group.Group("/countries")
	{
		countries.POST("", h.createCountry)
		countries.GET("", h.listCountries)
	}

	deductions := group.Group("/deductions")
	{
		deductions.POST("", h.createDeduction)
		deductions.GET("", h.listDeductions)
	}

	fiscalYears := group.Group("/fiscal-years")
	{
		fiscalYears.POST("", h.createFiscalYear)
		fiscalYears.GET("", h.listFiscalYears)
		fiscalYears.POST("/:fiscalYearID/close", h.closeFiscalYear)
	}
}
