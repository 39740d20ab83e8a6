package models

import "time"

// MarketplaceItem is a listing on the peer marketplace
type MarketplaceItem struct {
	ID             string    `json:"id"`
	SellerID       string    `json:"seller_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Price          float64   `json:"price"`
	Category       string    `json:"category"`
	Images         []string  `json:"images"`
	Location       string    `json:"location"`
	Condition      string    `json:"condition"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	Views          int       `json:"views"`
	Favorites      []string  `json:"favorites"`
	PaymentMethods []string  `json:"payment_methods"`
}

// MarketplaceOrder is a purchase request for a listed item
type MarketplaceOrder struct {
	ID            string    `json:"id"`
	BuyerID       string    `json:"buyer_id"`
	SellerID      string    `json:"seller_id,omitempty"`
	ItemID        string    `json:"item_id"`
	Quantity      int       `json:"quantity"`
	TotalAmount   float64   `json:"total_amount"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
