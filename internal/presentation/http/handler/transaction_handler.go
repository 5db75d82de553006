package handler

import (
	"github.com/fajara33/rd-company/internal/application/service"
	"github.com/fajara33/rd-company/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles ledger-related HTTP requests
type TransactionHandler struct {
	posService *service.POSService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(posService *service.POSService) *TransactionHandler {
	return &TransactionHandler{posService: posService}
}

// List handles listing the full transaction ledger in insertion order
func (h *TransactionHandler) List(c *gin.Context) {
	txs, err := h.posService.ListTransactions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transactions retrieved successfully", txs)
}
