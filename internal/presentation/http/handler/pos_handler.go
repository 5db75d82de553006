package handler

import (
	"github.com/fajara33/rd-company/internal/application/service"
	"github.com/fajara33/rd-company/internal/presentation/http/dto/request"
	"github.com/fajara33/rd-company/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// POSHandler handles checkout-related HTTP requests
type POSHandler struct {
	posService *service.POSService
}

// NewPOSHandler creates a new POS handler
func NewPOSHandler(posService *service.POSService) *POSHandler {
	return &POSHandler{posService: posService}
}

// ListLaundryServices handles listing the static laundry service catalog
func (h *POSHandler) ListLaundryServices(c *gin.Context) {
	response.OK(c, "Laundry services retrieved successfully", h.posService.ListLaundryServices())
}

// SuggestPrice handles the express toggle price suggestion
func (h *POSHandler) SuggestPrice(c *gin.Context) {
	var req request.PriceSuggestionRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	response.OK(c, "Price suggestion computed", gin.H{
		"price": h.posService.SuggestPrice(req.Price, req.Express),
	})
}

// LaundryCheckout handles a laundry sale
func (h *POSHandler) LaundryCheckout(c *gin.Context) {
	var req request.LaundryCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	receipt, err := h.posService.LaundryCheckout(c.Request.Context(), &service.LaundryCheckoutInput{
		CustomerName: req.CustomerName,
		ServiceID:    req.ServiceID,
		UnitPrice:    req.UnitPrice,
		Quantity:     req.Quantity,
		Express:      req.Express,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Laundry transaction recorded", receipt)
}

// RetailCheckout handles a retail sale
func (h *POSHandler) RetailCheckout(c *gin.Context) {
	var req request.RetailCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	receipt, err := h.posService.RetailCheckout(c.Request.Context(), req.ItemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Retail transaction recorded", receipt)
}

// KonterCheckout handles a phone-credit sale
func (h *POSHandler) KonterCheckout(c *gin.Context) {
	var req request.KonterCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	receipt, err := h.posService.KonterCheckout(c.Request.Context(), req.PhoneNumber, req.ItemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Konter transaction recorded", receipt)
}
