package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tillworks/tilldesk/internal/core/ports/services"
	"github.com/tillworks/tilldesk/internal/dto"
	"github.com/tillworks/tilldesk/internal/utils"
)

// saleHandler handles HTTP requests for point-of-sale transactions.
type saleHandler struct {
	saleService portssvc.SaleSvcFacade
}

// registerSaleRoutes registers routes related to sales.
func registerSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade) {
	h := &saleHandler{saleService: saleService}

	sales := rg.Group("/sales")
	{
		sales.POST("", h.completeSale)
		sales.GET("", h.listSales)
		sales.GET("/report", h.salesReport)
		sales.GET("/:id/items", h.saleItems)
	}
}

// completeSale godoc
// @Summary Complete a sale
// @Description Prices the lines at current list prices, decrements stock and posts to the ledger. A ledger posting failure is reported as a warning; the sale still completes.
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   sale body dto.CompleteSaleRequest true "Sale lines"
// @Success 201 {object} dto.SaleResponse
// @Failure 404 {object} map[string]string "Unknown product"
// @Failure 409 {object} map[string]string "Insufficient stock"
// @Security BearerAuth
// @Router /sales [post]
func (h *saleHandler) completeSale(c *gin.Context) {
	var req dto.CompleteSaleRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	sale, warning, err := h.saleService.CompleteSale(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to complete sale")
		return
	}

	resp := dto.ToSaleResponse(sale)
	resp.LedgerWarning = warning
	c.JSON(http.StatusCreated, resp)
}

// listSales godoc
// @Summary List sales
// @Tags sales
// @Produce  json
// @Param   from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   to query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {array} dto.SaleResponse
// @Security BearerAuth
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	var params dto.ListSalesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	sales, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list sales")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponses(sales))
}

// saleItems godoc
// @Summary Get the items of a sale
// @Tags sales
// @Produce  json
// @Param   id path string true "Sale ID"
// @Success 200 {array} dto.SaleItemResponse
// @Failure 404 {object} map[string]string "Sale not found"
// @Security BearerAuth
// @Router /sales/{id}/items [get]
func (h *saleHandler) saleItems(c *gin.Context) {
	items, err := h.saleService.SaleItems(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve sale items")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleItemResponses(items))
}

// salesReport godoc
// @Summary Sales report
// @Description Aggregates sale count and revenue over a date range
// @Tags sales
// @Produce  json
// @Param   from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   to query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.SalesReportResponse
// @Security BearerAuth
// @Router /sales/report [get]
func (h *saleHandler) salesReport(c *gin.Context) {
	var params dto.ListSalesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	summary, err := h.saleService.SalesReport(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to compute sales report")
		return
	}

	resp := dto.SalesReportResponse{
		SaleCount:      summary.SaleCount,
		TotalRevenue:   summary.TotalRevenue,
		FormattedTotal: utils.FormatMoney(summary.TotalRevenue),
	}
	if params.From != nil {
		resp.From = *params.From
	}
	if params.To != nil {
		resp.To = *params.To
	}
	c.JSON(http.StatusOK, resp)
}
