package account

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/wealthdesk/wealthdesk/internal/utils"
)

type AccountDTO struct {
	Id          int64           `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	TypeLabel   string          `json:"typeLabel"`
	Institution string          `json:"institution,omitempty"`
	Balance     decimal.Decimal `json:"balance"`
}

type CreateAccountRequest struct {
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Institution string          `json:"institution"`
	Balance     json.RawMessage `json:"balance"`
}

type UpdateBalanceRequest struct {
	Balance json.RawMessage `json:"balance"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

// ListAccounts godoc
// @Summary List all accounts
// @Tags Accounts
// @Produce json
// @Success 200 {array} AccountDTO
// @Router /api/account [get]
func (handler *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	log.Debug("Listing accounts")
	w.Header().Set("Content-Type", "application/json")
	accounts := handler.service.List(r.Context())
	accountsDTO := make([]AccountDTO, 0, len(accounts))
	for _, acc := range accounts {
		accountsDTO = append(accountsDTO, AccountToDTO(acc))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(accountsDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// CreateAccount godoc
// @Summary Add an account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param account body CreateAccountRequest true "Account"
// @Success 201 {object} AccountDTO
// @Failure 400 {string} string "Bad Request"
// @Router /api/account [post]
func (handler *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating account")
	w.Header().Set("Content-Type", "application/json")
	var req CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	accountType, ok := ParseType(req.Type)
	if !ok {
		http.Error(w, "invalid account type", http.StatusBadRequest)
		return
	}

	account := handler.service.Add(r.Context(), Account{
		Name:        req.Name,
		Type:        accountType,
		Institution: req.Institution,
		Balance:     utils.ParseDecimalJSON(req.Balance),
	})

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(AccountToDTO(account)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// UpdateBalance godoc
// @Summary Update an account balance
// @Description Replace the balance of an account; other fields are untouched
// @Tags Accounts
// @Accept json
// @Produce json
// @Param accountId path int true "Account ID"
// @Param balance body UpdateBalanceRequest true "New balance"
// @Success 200 {object} AccountDTO
// @Failure 400 {string} string "Bad Request"
// @Failure 404 {string} string "Account Not Found"
// @Router /api/account/{accountId}/balance [put]
func (handler *Handler) UpdateBalance(w http.ResponseWriter, r *http.Request) {
	log.Debug("Updating account balance")
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	accountId, err := strconv.ParseInt(vars["accountId"], 10, 64)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var req UpdateBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	account, err := handler.service.UpdateBalance(r.Context(), accountId, utils.ParseDecimalJSON(req.Balance))
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(AccountToDTO(account)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// DeleteAccount godoc
// @Summary Delete an account
// @Tags Accounts
// @Param accountId path int true "Account ID"
// @Success 204
// @Failure 404 {string} string "Account Not Found"
// @Router /api/account/{accountId} [delete]
func (handler *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	log.Debug("Deleting account")
	vars := mux.Vars(r)
	accountId, err := strconv.ParseInt(vars["accountId"], 10, 64)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !handler.service.Delete(r.Context(), accountId) {
		http.Error(w, "account not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func AccountToDTO(account Account) AccountDTO {
	return AccountDTO{
		Id:          account.Id,
		Name:        account.Name,
		Type:        string(account.Type),
		TypeLabel:   account.Type.Label(),
		Institution: account.Institution,
		Balance:     account.Balance,
	}
}
