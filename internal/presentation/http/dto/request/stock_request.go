package request

// CreateStockRequest represents a stock item creation request
type CreateStockRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=255"`
	Category string `json:"category" binding:"required"`
	Price    int64  `json:"price" binding:"min=0"`
	Quantity int    `json:"quantity" binding:"min=0"`
}

// AdjustStockRequest represents a stock quantity adjustment request
type AdjustStockRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// StockFilterRequest represents stock list filter parameters
type StockFilterRequest struct {
	Search string `form:"search"`
}
