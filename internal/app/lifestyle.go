package app

import (
	"context"

	"github.com/Dan9191/saveeasy/internal/models"
	"github.com/Dan9191/saveeasy/internal/service"
	"github.com/Dan9191/saveeasy/internal/store"
)

// ListItem publishes a marketplace listing for the user
func (a *App) ListItem(ctx context.Context, req service.ListingRequest) service.Result[models.MarketplaceItem] {
	req.SellerID = a.user().ID
	res := a.svc.ListItem(ctx, req)
	if res.Success {
		a.store.Dispatch(store.AddMarketplaceItem{Item: res.Data})
	}
	return res
}

// BuyItem orders an available listing
func (a *App) BuyItem(ctx context.Context, itemID string, quantity int, paymentMethod string) service.Result[models.MarketplaceOrder] {
	var item *models.MarketplaceItem
	for _, it := range a.store.Snapshot().MarketplaceItems {
		if it.ID == itemID && it.Status == "available" {
			item = &it
			break
		}
	}
	if item == nil {
		return notFound[models.MarketplaceOrder]("available item")
	}

	res := a.svc.BuyItem(ctx, service.PurchaseRequest{
		ItemID:        itemID,
		SellerID:      item.SellerID,
		BuyerID:       a.user().ID,
		UnitPrice:     item.Price,
		Quantity:      quantity,
		PaymentMethod: paymentMethod,
	})
	if res.Success {
		a.store.Dispatch(store.AddMarketplaceOrder{Order: res.Data})
	}
	return res
}

// Chat asks the assistant a question and keeps the exchange
func (a *App) Chat(ctx context.Context, message string) service.Result[models.AIConversation] {
	res := a.svc.Chat(ctx, message)
	if res.Success {
		a.store.Dispatch(store.AddConversation{Conversation: res.Data})
	}
	return res
}

// Insights returns financial tips
func (a *App) Insights(ctx context.Context) service.Result[[]string] {
	return a.svc.Insights(ctx)
}

// ProcessVoiceCommand interprets and records a voice command
func (a *App) ProcessVoiceCommand(ctx context.Context, command string) service.Result[models.VoiceCommand] {
	res := a.svc.ProcessVoiceCommand(ctx, command)
	if res.Success {
		a.store.Dispatch(store.AddVoiceCommand{Command: res.Data})
	}
	return res
}

// CreateBudget creates a spending plan for the user
func (a *App) CreateBudget(ctx context.Context, req service.BudgetRequest) service.Result[models.Budget] {
	req.UserID = a.user().ID
	res := a.svc.CreateBudget(ctx, req)
	if res.Success {
		a.store.Dispatch(store.AddBudget{Budget: res.Data})
	}
	return res
}

// TrackExpense records spending against a budget category
func (a *App) TrackExpense(ctx context.Context, req service.ExpenseRequest) service.Result[models.Expense] {
	found := false
	for _, b := range a.store.Snapshot().Budgets {
		if b.ID != req.BudgetID {
			continue
		}
		for _, c := range b.Categories {
			if c.ID == req.CategoryID {
				found = true
			}
		}
	}
	if !found {
		return notFound[models.Expense]("budget category")
	}

	res := a.svc.TrackExpense(ctx, req)
	if res.Success {
		a.store.Dispatch(store.TrackBudgetExpense{BudgetID: req.BudgetID, CategoryID: req.CategoryID, Amount: req.Amount})
	}
	return res
}

// SendNotification delivers an in-app notification
func (a *App) SendNotification(ctx context.Context, req service.NotificationRequest) service.Result[models.Notification] {
	res := a.svc.SendNotification(ctx, req)
	if res.Success {
		a.store.Dispatch(store.AddNotification{Notification: res.Data})
	}
	return res
}
