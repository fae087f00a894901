package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tillworks/tilldesk/internal/core/ports/services"
	"github.com/tillworks/tilldesk/internal/dto"
)

// productHandler handles HTTP requests for products and categories.
type productHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

// registerProductRoutes registers inventory-related routes.
func registerProductRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := &productHandler{inventoryService: inventoryService}

	products := rg.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/low-stock", h.lowStock)
		products.GET("/barcode/:barcode", h.getByBarcode)
		products.GET("/:id", h.getProduct)
		products.PUT("/:id", h.updateProduct)
		products.DELETE("/:id", h.deleteProduct)
	}

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
	}
}

// createProduct godoc
// @Summary Create a product
// @Tags products
// @Accept  json
// @Produce  json
// @Param   product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 409 {object} map[string]string "Barcode already in use"
// @Security BearerAuth
// @Router /products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	product, err := h.inventoryService.CreateProduct(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create product")
		return
	}
	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// listProducts godoc
// @Summary List products
// @Description Lists products, optionally narrowed by a name search
// @Tags products
// @Produce  json
// @Param   search query string false "Case-insensitive name substring"
// @Success 200 {array} dto.ProductResponse
// @Security BearerAuth
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	var params dto.ListProductsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	products, err := h.inventoryService.ListProducts(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list products")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponses(products))
}

// lowStock godoc
// @Summary Low stock report
// @Description Lists products at or below the configured stock threshold
// @Tags products
// @Produce  json
// @Success 200 {array} dto.ProductResponse
// @Security BearerAuth
// @Router /products/low-stock [get]
func (h *productHandler) lowStock(c *gin.Context) {
	products, err := h.inventoryService.LowStockReport(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute low stock report")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponses(products))
}

// getByBarcode godoc
// @Summary Look a product up by barcode
// @Tags products
// @Produce  json
// @Param   barcode path string true "Product barcode"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} map[string]string "No product with that barcode"
// @Security BearerAuth
// @Router /products/barcode/{barcode} [get]
func (h *productHandler) getByBarcode(c *gin.Context) {
	product, err := h.inventoryService.GetProductByBarcode(c.Request.Context(), c.Param("barcode"))
	if err != nil {
		respondError(c, err, "Failed to retrieve product")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// getProduct godoc
// @Summary Get a product by ID
// @Tags products
// @Produce  json
// @Param   id path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} map[string]string "Product not found"
// @Security BearerAuth
// @Router /products/{id} [get]
func (h *productHandler) getProduct(c *gin.Context) {
	product, err := h.inventoryService.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve product")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// updateProduct godoc
// @Summary Update a product
// @Tags products
// @Accept  json
// @Produce  json
// @Param   id path string true "Product ID"
// @Param   product body dto.UpdateProductRequest true "Product details"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} map[string]string "Product not found"
// @Security BearerAuth
// @Router /products/{id} [put]
func (h *productHandler) updateProduct(c *gin.Context) {
	var req dto.UpdateProductRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	product, err := h.inventoryService.UpdateProduct(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update product")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// deleteProduct godoc
// @Summary Delete a product
// @Description Removes a product not referenced by any sale or purchase order
// @Tags products
// @Param   id path string true "Product ID"
// @Success 204 "Deleted"
// @Failure 409 {object} map[string]string "Product is referenced by sales or orders"
// @Security BearerAuth
// @Router /products/{id} [delete]
func (h *productHandler) deleteProduct(c *gin.Context) {
	if err := h.inventoryService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete product")
		return
	}
	c.Status(http.StatusNoContent)
}

// createCategory godoc
// @Summary Create a category
// @Tags products
// @Accept  json
// @Produce  json
// @Param   category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 409 {object} map[string]string "Category name already exists"
// @Security BearerAuth
// @Router /categories [post]
func (h *productHandler) createCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.inventoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create category")
		return
	}
	c.JSON(http.StatusCreated, dto.CategoryResponse{CategoryID: category.CategoryID, Name: category.Name})
}

// listCategories godoc
// @Summary List categories
// @Tags products
// @Produce  json
// @Success 200 {array} dto.CategoryResponse
// @Security BearerAuth
// @Router /categories [get]
func (h *productHandler) listCategories(c *gin.Context) {
	categories, err := h.inventoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponses(categories))
}
