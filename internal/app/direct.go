package app

import (
	"github.com/Dan9191/saveeasy/internal/models"
	"github.com/Dan9191/saveeasy/internal/store"
)

// Direct actions have no simulated backend call and apply immediately.

func (a *App) MarkNotificationRead(id string) store.AppState {
	return a.store.Dispatch(store.MarkNotificationRead{ID: id})
}

func (a *App) UpdateUser(update models.UserUpdate) store.AppState {
	return a.commit(store.UpdateUser{Update: update})
}

func (a *App) UpdateTransaction(id string, update models.TransactionUpdate) store.AppState {
	return a.commit(store.UpdateTransaction{ID: id, Update: update})
}

func (a *App) UpdateModuleProgress(id string, progress float64, completed *bool) store.AppState {
	return a.store.Dispatch(store.UpdateModuleProgress{ID: id, Progress: progress, Completed: completed})
}

func (a *App) JoinChallenge(id string) store.AppState {
	return a.store.Dispatch(store.JoinChallenge{ID: id})
}

func (a *App) UpdateChallengeProgress(id string, amount float64) store.AppState {
	return a.store.Dispatch(store.UpdateChallengeProgress{ID: id, Amount: amount})
}

// RefreshAnalytics recomputes the stored analytics for the current month
func (a *App) RefreshAnalytics() store.AppState {
	return a.store.Dispatch(store.RefreshAnalytics{At: a.now()})
}
