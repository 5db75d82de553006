package request

// LaundryCheckoutRequest represents a laundry checkout request. The unit
// price is manually editable at the POS; express only changes the suggested
// price, never the charged one.
type LaundryCheckoutRequest struct {
	CustomerName string  `json:"customer_name" binding:"required"`
	ServiceID    string  `json:"service_id" binding:"required"`
	UnitPrice    int64   `json:"unit_price" binding:"min=0"`
	Quantity     float64 `json:"quantity" binding:"required,gt=0"`
	Express      bool    `json:"express"`
}

// RetailCheckoutRequest represents a retail checkout request
type RetailCheckoutRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

// KonterCheckoutRequest represents a phone-credit checkout request
type KonterCheckoutRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	ItemID      string `json:"item_id" binding:"required"`
}

// PriceSuggestionRequest represents the express price suggestion query
type PriceSuggestionRequest struct {
	Price   int64 `form:"price" binding:"min=0"`
	Express bool  `form:"express"`
}
