package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tillworks/tilldesk/internal/core/ports/services"
	"github.com/tillworks/tilldesk/internal/dto"
)

// directoryHandler handles HTTP requests for customers and stores.
type directoryHandler struct {
	customerService portssvc.CustomerSvcFacade
	storeService    portssvc.StoreSvcFacade
}

// registerDirectoryRoutes registers customer and store routes.
func registerDirectoryRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvcFacade, storeService portssvc.StoreSvcFacade) {
	h := &directoryHandler{customerService: customerService, storeService: storeService}

	customers := rg.Group("/customers")
	{
		customers.POST("", h.createCustomer)
		customers.GET("", h.listCustomers)
		customers.PUT("/:id", h.updateCustomer)
		customers.DELETE("/:id", h.deleteCustomer)
	}

	stores := rg.Group("/stores")
	{
		stores.POST("", h.createStore)
		stores.GET("", h.listStores)
		stores.GET("/:id", h.getStore)
	}
}

// createCustomer godoc
// @Summary Create a customer
// @Tags directory
// @Accept  json
// @Produce  json
// @Param   customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} dto.CustomerResponse
// @Failure 409 {object} map[string]string "Email already in use"
// @Security BearerAuth
// @Router /customers [post]
func (h *directoryHandler) createCustomer(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create customer")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// updateCustomer godoc
// @Summary Update a customer
// @Tags directory
// @Accept  json
// @Produce  json
// @Param   id path string true "Customer ID"
// @Param   customer body dto.UpdateCustomerRequest true "Customer details"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /customers/{id} [put]
func (h *directoryHandler) updateCustomer(c *gin.Context) {
	var req dto.UpdateCustomerRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update customer")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// deleteCustomer godoc
// @Summary Delete a customer
// @Description Removes a customer; past sales keep a detached reference
// @Tags directory
// @Param   id path string true "Customer ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /customers/{id} [delete]
func (h *directoryHandler) deleteCustomer(c *gin.Context) {
	if err := h.customerService.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete customer")
		return
	}
	c.Status(http.StatusNoContent)
}

// listCustomers godoc
// @Summary List customers
// @Tags directory
// @Produce  json
// @Success 200 {array} dto.CustomerResponse
// @Security BearerAuth
// @Router /customers [get]
func (h *directoryHandler) listCustomers(c *gin.Context) {
	customers, err := h.customerService.ListCustomers(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list customers")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponses(customers))
}

// createStore godoc
// @Summary Create a store
// @Tags directory
// @Accept  json
// @Produce  json
// @Param   store body dto.CreateStoreRequest true "Store details"
// @Success 201 {object} dto.StoreResponse
// @Security BearerAuth
// @Router /stores [post]
func (h *directoryHandler) createStore(c *gin.Context) {
	var req dto.CreateStoreRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	store, err := h.storeService.CreateStore(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create store")
		return
	}
	c.JSON(http.StatusCreated, dto.ToStoreResponse(store))
}

// getStore godoc
// @Summary Get a store by ID
// @Tags directory
// @Produce  json
// @Param   id path string true "Store ID"
// @Success 200 {object} dto.StoreResponse
// @Failure 404 {object} map[string]string "Store not found"
// @Security BearerAuth
// @Router /stores/{id} [get]
func (h *directoryHandler) getStore(c *gin.Context) {
	store, err := h.storeService.GetStoreByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve store")
		return
	}
	c.JSON(http.StatusOK, dto.ToStoreResponse(store))
}

// listStores godoc
// @Summary List stores
// @Tags directory
// @Produce  json
// @Success 200 {array} dto.StoreResponse
// @Security BearerAuth
// @Router /stores [get]
func (h *directoryHandler) listStores(c *gin.Context) {
	stores, err := h.storeService.ListStores(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list stores")
		return
	}
	c.JSON(http.StatusOK, dto.ToStoreResponses(stores))
}
