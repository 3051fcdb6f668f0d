package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/charlles-dev/Unity-Bank/internal/httputil"
	"github.com/charlles-dev/Unity-Bank/internal/ledger"
	"github.com/charlles-dev/Unity-Bank/internal/logger"
	"github.com/charlles-dev/Unity-Bank/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Handler wires the HTTP shell to one ledger registry. All rendering,
// logging and metrics live here; the registry only returns domain errors.
type Handler struct {
	registry   *ledger.Registry
	tellerName string
	tellerHash []byte
}

func New(registry *ledger.Registry, tellerName string, tellerHash []byte) *Handler {
	return &Handler{
		registry:   registry,
		tellerName: tellerName,
		tellerHash: tellerHash,
	}
}

type createAccountRequest struct {
	HolderName string `json:"holder_name"`
	HolderID   string `json:"holder_id"`
}

type amountRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type transferRequest struct {
	From        int64           `json:"from"`
	To          int64           `json:"to"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type transferResponse struct {
	Source      ledger.Summary `json:"source"`
	Destination ledger.Summary `json:"destination"`
}

func accountNumber(r *http.Request) (int64, bool) {
	n, err := strconv.ParseInt(chi.URLParam(r, "number"), 10, 64)
	return n, err == nil
}

func (h *Handler) CreateAccountHandler(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	summary, err := h.registry.CreateAccount(req.HolderName, req.HolderID)
	metrics.Observe("create_account", err)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	metrics.AccountsOpen.Inc()

	httputil.WriteJSON(w, http.StatusCreated, summary)
}

func (h *Handler) ListAccountsHandler(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.registry.List())
}

func (h *Handler) SearchAccountsHandler(w http.ResponseWriter, r *http.Request) {
	fragment := r.URL.Query().Get("holder")
	httputil.WriteJSON(w, http.StatusOK, h.registry.SearchByHolder(fragment))
}

func (h *Handler) GetAccountHandler(w http.ResponseWriter, r *http.Request) {
	number, ok := accountNumber(r)
	if !ok {
		httputil.WriteError(w, http.StatusBadRequest, "invalid account number")
		return
	}

	summary, err := h.registry.Authenticate(number)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, summary)
}

func (h *Handler) StatementHandler(w http.ResponseWriter, r *http.Request) {
	number, ok := accountNumber(r)
	if !ok {
		httputil.WriteError(w, http.StatusBadRequest, "invalid account number")
		return
	}

	statement, err := h.registry.Statement(number)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, statement)
}

func (h *Handler) DepositHandler(w http.ResponseWriter, r *http.Request) {
	h.applyAmount(w, r, "deposit", h.registry.Deposit)
}

func (h *Handler) WithdrawHandler(w http.ResponseWriter, r *http.Request) {
	h.applyAmount(w, r, "withdraw", h.registry.Withdraw)
}

func (h *Handler) PayBillHandler(w http.ResponseWriter, r *http.Request) {
	h.applyAmount(w, r, "pay_bill", h.registry.PayBill)
}

// applyAmount handles the shared decode/validate/respond flow of the three
// single-account money operations.
func (h *Handler) applyAmount(w http.ResponseWriter, r *http.Request, operation string,
	apply func(int64, decimal.Decimal, string) (ledger.Summary, error)) {

	number, ok := accountNumber(r)
	if !ok {
		httputil.WriteError(w, http.StatusBadRequest, "invalid account number")
		return
	}

	var req amountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	summary, err := apply(number, req.Amount, req.Description)
	metrics.Observe(operation, err)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, summary)
}

func (h *Handler) TransferHandler(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	source, destination, err := h.registry.Transfer(req.From, req.To, req.Amount, req.Description)
	metrics.Observe("transfer", err)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, transferResponse{Source: source, Destination: destination})
}

func (h *Handler) RemoveAccountHandler(w http.ResponseWriter, r *http.Request) {
	number, ok := accountNumber(r)
	if !ok {
		httputil.WriteError(w, http.StatusBadRequest, "invalid account number")
		return
	}

	err := h.registry.RemoveAccount(number)
	metrics.Observe("remove_account", err)
	if err != nil {
		httputil.WriteDomainError(w, err)
		return
	}
	metrics.AccountsOpen.Dec()

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) StatisticsHandler(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.registry.Statistics())
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok", "bank": h.registry.Name()}); err != nil {
		logger.Log.Error("failed to encode health response", zap.Error(err))
	}
}
