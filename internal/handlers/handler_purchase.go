package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tillworks/tilldesk/internal/core/ports/services"
	"github.com/tillworks/tilldesk/internal/dto"
	"github.com/tillworks/tilldesk/internal/utils"
)

// purchaseHandler handles HTTP requests for purchase orders and suppliers.
type purchaseHandler struct {
	purchaseService portssvc.PurchaseSvcFacade
	supplierService portssvc.SupplierSvcFacade
}

// registerPurchaseRoutes registers purchasing-related routes.
func registerPurchaseRoutes(rg *gin.RouterGroup, purchaseService portssvc.PurchaseSvcFacade, supplierService portssvc.SupplierSvcFacade) {
	h := &purchaseHandler{purchaseService: purchaseService, supplierService: supplierService}

	pos := rg.Group("/purchase-orders")
	{
		pos.POST("", h.completePO)
		pos.GET("", h.listPOs)
		pos.GET("/report", h.purchaseReport)
		pos.GET("/:id/items", h.poItems)
	}

	suppliers := rg.Group("/suppliers")
	{
		suppliers.POST("", h.createSupplier)
		suppliers.GET("", h.listSuppliers)
		suppliers.PUT("/:id", h.updateSupplier)
	}
}

// completePO godoc
// @Summary Complete a purchase order
// @Description Records the order, increments stock and posts to the ledger. A ledger posting failure is reported as a warning; the order still completes.
// @Tags purchasing
// @Accept  json
// @Produce  json
// @Param   order body dto.CompletePORequest true "Order lines"
// @Success 201 {object} dto.POResponse
// @Failure 404 {object} map[string]string "Unknown supplier or product"
// @Security BearerAuth
// @Router /purchase-orders [post]
func (h *purchaseHandler) completePO(c *gin.Context) {
	var req dto.CompletePORequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	po, warning, err := h.purchaseService.CompletePurchaseOrder(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to complete purchase order")
		return
	}

	resp := dto.ToPOResponse(po)
	resp.LedgerWarning = warning
	c.JSON(http.StatusCreated, resp)
}

// listPOs godoc
// @Summary List purchase orders
// @Tags purchasing
// @Produce  json
// @Param   from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   to query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {array} dto.POResponse
// @Security BearerAuth
// @Router /purchase-orders [get]
func (h *purchaseHandler) listPOs(c *gin.Context) {
	var params dto.ListPOParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	orders, err := h.purchaseService.ListPurchaseOrders(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list purchase orders")
		return
	}
	c.JSON(http.StatusOK, dto.ToPOResponses(orders))
}

// poItems godoc
// @Summary Get the items of a purchase order
// @Tags purchasing
// @Produce  json
// @Param   id path string true "Purchase order ID"
// @Success 200 {array} dto.POItemResponse
// @Failure 404 {object} map[string]string "Purchase order not found"
// @Security BearerAuth
// @Router /purchase-orders/{id}/items [get]
func (h *purchaseHandler) poItems(c *gin.Context) {
	items, err := h.purchaseService.PurchaseOrderItems(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve purchase order items")
		return
	}
	c.JSON(http.StatusOK, dto.ToPOItemResponses(items))
}

// purchaseReport godoc
// @Summary Purchases report
// @Description Aggregates order count and cost over a date range
// @Tags purchasing
// @Produce  json
// @Param   from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   to query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.PurchaseReportResponse
// @Security BearerAuth
// @Router /purchase-orders/report [get]
func (h *purchaseHandler) purchaseReport(c *gin.Context) {
	var params dto.ListPOParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	summary, err := h.purchaseService.PurchaseReport(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to compute purchases report")
		return
	}

	resp := dto.PurchaseReportResponse{
		OrderCount:     summary.OrderCount,
		TotalCost:      summary.TotalCost,
		FormattedTotal: utils.FormatMoney(summary.TotalCost),
	}
	if params.From != nil {
		resp.From = *params.From
	}
	if params.To != nil {
		resp.To = *params.To
	}
	c.JSON(http.StatusOK, resp)
}

// createSupplier godoc
// @Summary Create a supplier
// @Tags purchasing
// @Accept  json
// @Produce  json
// @Param   supplier body dto.CreateSupplierRequest true "Supplier details"
// @Success 201 {object} dto.SupplierResponse
// @Failure 409 {object} map[string]string "Supplier name already exists"
// @Security BearerAuth
// @Router /suppliers [post]
func (h *purchaseHandler) createSupplier(c *gin.Context) {
	var req dto.CreateSupplierRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	supplier, err := h.supplierService.CreateSupplier(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create supplier")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSupplierResponse(supplier))
}

// updateSupplier godoc
// @Summary Update a supplier
// @Tags purchasing
// @Accept  json
// @Produce  json
// @Param   id path string true "Supplier ID"
// @Param   supplier body dto.UpdateSupplierRequest true "Supplier details"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} map[string]string "Supplier not found"
// @Security BearerAuth
// @Router /suppliers/{id} [put]
func (h *purchaseHandler) updateSupplier(c *gin.Context) {
	var req dto.UpdateSupplierRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	supplier, err := h.supplierService.UpdateSupplier(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update supplier")
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

// listSuppliers godoc
// @Summary List suppliers
// @Tags purchasing
// @Produce  json
// @Success 200 {array} dto.SupplierResponse
// @Security BearerAuth
// @Router /suppliers [get]
func (h *purchaseHandler) listSuppliers(c *gin.Context) {
	suppliers, err := h.supplierService.ListSuppliers(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list suppliers")
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierResponses(suppliers))
}
