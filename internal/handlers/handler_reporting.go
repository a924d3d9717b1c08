package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/crestprop/lease_ledger_app/internal/core/ports/services"
	"github.com/crestprop/lease_ledger_app/internal/dto"
	"github.com/crestprop/lease_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves the general ledger and voucher register reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(reportingService portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: reportingService}
}

// generalLedger godoc
// @Summary General ledger report
// @Tags reports
// @Produce json
// @Param companyID query string true "Company ID"
// @Param fiscalYear query string false "Fiscal year"
// @Param accountID query string false "Account ID"
// @Success 200 {object} dto.GeneralLedgerReport
// @Router /reports/general-ledger [get]
func (h *reportingHandler) generalLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.GeneralLedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	report, err := h.reportingService.GeneralLedger(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// generalLedgerExcel godoc
// @Summary General ledger report as an xlsx download
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param companyID query string true "Company ID"
// @Success 200 {file} binary
// @Router /reports/general-ledger.xlsx [get]
func (h *reportingHandler) generalLedgerExcel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.GeneralLedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	content, err := h.reportingService.GeneralLedgerExcel(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	fileName := fmt.Sprintf("general-ledger-%s.xlsx", time.Now().Format("20060102"))
	logger.Info("General ledger workbook generated", slog.Int("size_bytes", len(content)))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}

// voucherRegister godoc
// @Summary Voucher register report
// @Tags reports
// @Produce json
// @Param companyID query string true "Company ID"
// @Param fiscalYear query string true "Fiscal year"
// @Success 200 {array} dto.VoucherRegisterRow
// @Router /reports/voucher-register [get]
func (h *reportingHandler) voucherRegister(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID := c.Query("companyID")
	fiscalYear := c.Query("fiscalYear")
	if companyID == "" || fiscalYear == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "companyID and fiscalYear are required"})
		return
	}

	rows, err := h.reportingService.VoucherRegister(c.Request.Context(), companyID, fiscalYear)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// registerReportingRoutes registers report routes
func registerReportingRoutes(group *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := group.Group("/reports")
	{
		reports.GET("/general-ledger", h.generalLedger)
		reports.GET("/general-ledger.xlsx", h.generalLedgerExcel)
		reports.GET("/voucher-register", h.voucherRegister)
	}
}
