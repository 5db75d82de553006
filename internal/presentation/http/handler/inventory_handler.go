package handler

import (
	"github.com/fajara33/rd-company/internal/application/service"
	"github.com/fajara33/rd-company/internal/domain/enum"
	"github.com/fajara33/rd-company/internal/presentation/http/dto/request"
	"github.com/fajara33/rd-company/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// InventoryHandler handles stock-related HTTP requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// List handles listing stock items with an optional search filter
func (h *InventoryHandler) List(c *gin.Context) {
	var filter request.StockFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	items, err := h.inventoryService.ListStock(c.Request.Context(), filter.Search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock retrieved successfully", items)
}

// ListCategories handles listing the selectable stock categories
func (h *InventoryHandler) ListCategories(c *gin.Context) {
	response.OK(c, "Categories retrieved successfully", enum.Categories())
}

// Create handles adding a stock item
func (h *InventoryHandler) Create(c *gin.Context) {
	var req request.CreateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.inventoryService.AddStock(c.Request.Context(), &service.AddStockInput{
		Name:     req.Name,
		Category: enum.Category(req.Category),
		Price:    req.Price,
		Quantity: req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Stock item created successfully", item)
}

// Adjust handles applying a quantity delta to a stock item
func (h *InventoryHandler) Adjust(c *gin.Context) {
	var req request.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.inventoryService.AdjustStock(c.Request.Context(), c.Param("id"), req.Delta)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock quantity adjusted", item)
}
