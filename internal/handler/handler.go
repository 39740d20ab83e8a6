package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/saveeasy/internal/app"
	"github.com/Dan9191/saveeasy/internal/demo"
	"github.com/Dan9191/saveeasy/internal/metrics"
	"github.com/Dan9191/saveeasy/internal/service"
)

const maxBody = 1 << 20

// Handler exposes the app facade over HTTP
type Handler struct {
	app    *app.App
	demo   *demo.Runner
	logger *logrus.Logger
}

// NewHandler creates a handler. runner may be nil to disable the demo routes.
func NewHandler(a *app.App, runner *demo.Runner, logger *logrus.Logger) *Handler {
	return &Handler{app: a, demo: runner, logger: logger}
}

// Router builds the route table
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(metrics.InstrumentHandler)

	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/ws", h.Stream).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/state", h.State).Methods(http.MethodGet)
	api.HandleFunc("/analytics", h.Analytics).Methods(http.MethodGet)
	api.HandleFunc("/analytics/refresh", h.RefreshAnalytics).Methods(http.MethodPost)

	api.HandleFunc("/savings/deposit", h.Deposit).Methods(http.MethodPost)
	api.HandleFunc("/savings/withdraw", h.Withdraw).Methods(http.MethodPost)
	api.HandleFunc("/savings/emergency", h.AccessEmergencyFund).Methods(http.MethodPost)
	api.HandleFunc("/goals", h.CreateGoal).Methods(http.MethodPost)
	api.HandleFunc("/goals/{id}", h.UpdateGoal).Methods(http.MethodPatch)
	api.HandleFunc("/goals/{id}", h.DeleteGoal).Methods(http.MethodDelete)

	api.HandleFunc("/groups", h.CreateGroup).Methods(http.MethodPost)
	api.HandleFunc("/groups/join", h.JoinGroup).Methods(http.MethodPost)
	api.HandleFunc("/groups/{id}/contributions", h.ContributeToGroup).Methods(http.MethodPost)

	api.HandleFunc("/bills/pay", h.PayBill).Methods(http.MethodPost)
	api.HandleFunc("/bills/autopay", h.SetupAutoPay).Methods(http.MethodPost)

	api.HandleFunc("/investments", h.BuyInvestment).Methods(http.MethodPost)
	api.HandleFunc("/investments/{id}/sell", h.SellInvestment).Methods(http.MethodPost)
	api.HandleFunc("/loans", h.ApplyForLoan).Methods(http.MethodPost)
	api.HandleFunc("/loans/{id}/payments", h.MakeLoanPayment).Methods(http.MethodPost)
	api.HandleFunc("/crypto/buy", h.BuyCrypto).Methods(http.MethodPost)
	api.HandleFunc("/crypto/sell", h.SellCrypto).Methods(http.MethodPost)

	api.HandleFunc("/marketplace/items", h.ListItem).Methods(http.MethodPost)
	api.HandleFunc("/marketplace/items/{id}/orders", h.BuyItem).Methods(http.MethodPost)
	api.HandleFunc("/assistant/chat", h.Chat).Methods(http.MethodPost)
	api.HandleFunc("/assistant/insights", h.Insights).Methods(http.MethodGet)
	api.HandleFunc("/voice", h.ProcessVoiceCommand).Methods(http.MethodPost)
	api.HandleFunc("/budgets", h.CreateBudget).Methods(http.MethodPost)
	api.HandleFunc("/budgets/expenses", h.TrackExpense).Methods(http.MethodPost)

	api.HandleFunc("/notifications", h.SendNotification).Methods(http.MethodPost)
	api.HandleFunc("/notifications/{id}/read", h.MarkNotificationRead).Methods(http.MethodPost)
	api.HandleFunc("/user", h.UpdateUser).Methods(http.MethodPatch)
	api.HandleFunc("/transactions/{id}", h.UpdateTransaction).Methods(http.MethodPatch)
	api.HandleFunc("/modules/{id}/progress", h.UpdateModuleProgress).Methods(http.MethodPost)
	api.HandleFunc("/challenges/{id}/join", h.JoinChallenge).Methods(http.MethodPost)
	api.HandleFunc("/challenges/{id}/progress", h.UpdateChallengeProgress).Methods(http.MethodPost)

	if h.demo != nil {
		api.HandleFunc("/demo", h.DemoCatalog).Methods(http.MethodGet)
		api.HandleFunc("/demo/quick/{action}", h.RunQuickAction).Methods(http.MethodPost)
		api.HandleFunc("/demo/{scenario}", h.RunScenario).Methods(http.MethodPost)
	}
	return r
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeResult maps a failed operation to 422; the body is the result
// either way
func writeResult[T any](w http.ResponseWriter, res service.Result[T]) {
	status := http.StatusOK
	if !res.Success {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, res)
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}
