package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tillworks/tilldesk/internal/core/ports/services"
	"github.com/tillworks/tilldesk/internal/dto"
)

// reportingHandler handles HTTP requests for financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// registerReportingRoutes registers the financial report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := &reportingHandler{reportingService: reportingService}

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.trialBalance)
		reports.GET("/income-statement", h.incomeStatement)
		reports.GET("/balance-sheet", h.balanceSheet)
	}
}

// trialBalance godoc
// @Summary Trial balance
// @Description Lists every account's balance in debit/credit columns with a trailing Total row
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.TrialBalanceResponse
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) trialBalance(c *gin.Context) {
	report, err := h.reportingService.TrialBalance(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute trial balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(report))
}

// incomeStatement godoc
// @Summary Income statement
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.IncomeStatementResponse
// @Security BearerAuth
// @Router /reports/income-statement [get]
func (h *reportingHandler) incomeStatement(c *gin.Context) {
	stmt, err := h.reportingService.IncomeStatement(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute income statement")
		return
	}
	c.JSON(http.StatusOK, dto.ToIncomeStatementResponse(stmt))
}

// balanceSheet godoc
// @Summary Balance sheet
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.BalanceSheetResponse
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) balanceSheet(c *gin.Context) {
	sheet, err := h.reportingService.BalanceSheet(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute balance sheet")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(sheet))
}
