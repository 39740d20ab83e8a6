package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Dan9191/saveeasy/internal/demo"
	"github.com/Dan9191/saveeasy/internal/models"
)

type progressRequest struct {
	Progress  float64 `json:"progress"`
	Completed *bool   `json:"completed,omitempty"`
}

// State returns the current snapshot
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.app.Snapshot())
}

// Analytics computes the projection for the current month without storing it
func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.app.Analytics())
}

func (h *Handler) RefreshAnalytics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.app.RefreshAnalytics())
}

func (h *Handler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	var update models.GoalUpdate
	if !decode(w, r, &update) {
		return
	}
	writeJSON(w, http.StatusOK, h.app.UpdateGoal(mux.Vars(r)["id"], update))
}

func (h *Handler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.app.DeleteGoal(mux.Vars(r)["id"]))
}

func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.app.MarkNotificationRead(mux.Vars(r)["id"]))
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var update models.UserUpdate
	if !decode(w, r, &update) {
		return
	}
	writeJSON(w, http.StatusOK, h.app.UpdateUser(update))
}

func (h *Handler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var update models.TransactionUpdate
	if !decode(w, r, &update) {
		return
	}
	writeJSON(w, http.StatusOK, h.app.UpdateTransaction(mux.Vars(r)["id"], update))
}

func (h *Handler) UpdateModuleProgress(w http.ResponseWriter, r *http.Request) {
	var req progressRequest
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, h.app.UpdateModuleProgress(mux.Vars(r)["id"], req.Progress, req.Completed))
}

func (h *Handler) JoinChallenge(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.app.JoinChallenge(mux.Vars(r)["id"]))
}

func (h *Handler) UpdateChallengeProgress(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, h.app.UpdateChallengeProgress(mux.Vars(r)["id"], req.Amount))
}

// DemoCatalog lists the runnable scenarios and quick actions
func (h *Handler) DemoCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"scenarios":     h.demo.Scenarios(),
		"quick_actions": h.demo.QuickActions(),
	})
}

func (h *Handler) RunScenario(w http.ResponseWriter, r *http.Request) {
	rep, err := h.demo.Run(r.Context(), mux.Vars(r)["scenario"])
	h.writeReport(w, rep, err)
}

func (h *Handler) RunQuickAction(w http.ResponseWriter, r *http.Request) {
	rep, err := h.demo.Quick(r.Context(), mux.Vars(r)["action"])
	h.writeReport(w, rep, err)
}

func (h *Handler) writeReport(w http.ResponseWriter, rep demo.Report, err error) {
	if errors.Is(err, demo.ErrUnknownScenario) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		h.logger.Errorf("Demo run failed: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rep)
}
