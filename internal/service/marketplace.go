package service

import (
	"context"
	"time"

	"github.com/Dan9191/saveeasy/internal/models"
	"github.com/Dan9191/saveeasy/internal/utils"
)

var defaultPaymentMethods = []string{"cash", "bank_transfer", "mobile_money"}

// ListingRequest describes an item for sale
type ListingRequest struct {
	SellerID    string   `json:"seller_id,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Category    string   `json:"category,omitempty"`
	Images      []string `json:"images,omitempty"`
	Location    string   `json:"location,omitempty"`
	Condition   string   `json:"condition,omitempty"`
}

// ListItem simulates publishing a marketplace listing
func (s *Service) ListItem(ctx context.Context, req ListingRequest) Result[models.MarketplaceItem] {
	const op = "list_item"
	start := time.Now()

	if req.Price <= 0 {
		return observe(s, op, start, fail[models.MarketplaceItem]("Invalid price", "Price must be greater than 0"))
	}

	if err := s.wait(ctx, s.rules.Delays.MarketplaceList); err != nil {
		return observe(s, op, start, cancelled[models.MarketplaceItem](err))
	}

	item := models.MarketplaceItem{
		ID:             utils.GenerateID(),
		SellerID:       req.SellerID,
		Title:          req.Title,
		Description:    req.Description,
		Price:          req.Price,
		Category:       req.Category,
		Images:         append([]string{}, req.Images...),
		Location:       req.Location,
		Condition:      req.Condition,
		Status:         "available",
		CreatedAt:      s.now(),
		Favorites:      []string{},
		PaymentMethods: append([]string{}, defaultPaymentMethods...),
	}
	if item.Title == "" {
		item.Title = "New Item"
	}
	if item.Category == "" {
		item.Category = "electronics"
	}
	if item.Location == "" {
		item.Location = "Lagos, Nigeria"
	}
	if item.Condition == "" {
		item.Condition = "used"
	}

	return observe(s, op, start, ok(item, "Item listed successfully"))
}

// PurchaseRequest describes an order for a listed item. UnitPrice and
// SellerID come from the listing.
type PurchaseRequest struct {
	ItemID        string  `json:"item_id"`
	SellerID      string  `json:"seller_id,omitempty"`
	BuyerID       string  `json:"buyer_id,omitempty"`
	UnitPrice     float64 `json:"unit_price"`
	Quantity      int     `json:"quantity"`
	PaymentMethod string  `json:"payment_method,omitempty"`
}

// BuyItem simulates placing an order
func (s *Service) BuyItem(ctx context.Context, req PurchaseRequest) Result[models.MarketplaceOrder] {
	const op = "buy_item"
	start := time.Now()

	if req.ItemID == "" {
		return observe(s, op, start, fail[models.MarketplaceOrder]("Invalid item", "An item ID is required"))
	}
	if req.Quantity <= 0 {
		return observe(s, op, start, fail[models.MarketplaceOrder]("Invalid quantity", "Quantity must be at least 1"))
	}

	if err := s.wait(ctx, s.rules.Delays.MarketplaceBuy); err != nil {
		return observe(s, op, start, cancelled[models.MarketplaceOrder](err))
	}

	order := models.MarketplaceOrder{
		ID:            utils.GenerateID(),
		BuyerID:       req.BuyerID,
		SellerID:      req.SellerID,
		ItemID:        req.ItemID,
		Quantity:      req.Quantity,
		TotalAmount:   req.UnitPrice * float64(req.Quantity),
		PaymentMethod: req.PaymentMethod,
		Status:        "pending",
		CreatedAt:     s.now(),
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = "bank_transfer"
	}
	return observe(s, op, start, ok(order, "Purchase initiated. Seller has been notified."))
}
