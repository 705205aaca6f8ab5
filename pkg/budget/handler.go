package budget

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/wealthdesk/wealthdesk/internal/utils"
)

type BudgetDTO struct {
	Income   []EntryDTO `json:"income"`
	Expenses []EntryDTO `json:"expenses"`
}

type EntryDTO struct {
	Id          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category,omitempty"`
}

// CreateEntryRequest carries user input. Amount stays raw because form input
// arrives either as a JSON number or a numeric string; unparsable amounts
// become 0.
type CreateEntryRequest struct {
	Description string          `json:"description"`
	Amount      json.RawMessage `json:"amount"`
	Category    string          `json:"category"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

// GetBudget godoc
// @Summary Get the budget
// @Description Get all income and expense entries
// @Tags Budget
// @Produce json
// @Success 200 {object} BudgetDTO
// @Router /api/budget [get]
func (handler *Handler) GetBudget(w http.ResponseWriter, r *http.Request) {
	log.Debug("Getting budget")
	w.Header().Set("Content-Type", "application/json")
	budget := handler.service.Snapshot(r.Context())
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(BudgetToDTO(budget)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// AddIncome godoc
// @Summary Add an income entry
// @Tags Budget
// @Accept json
// @Produce json
// @Param entry body CreateEntryRequest true "Income entry"
// @Success 201 {object} EntryDTO
// @Failure 400 {string} string "Bad Request"
// @Router /api/budget/income [post]
func (handler *Handler) AddIncome(w http.ResponseWriter, r *http.Request) {
	log.Debug("Adding income entry")
	handler.addEntry(w, r, handler.service.AddIncome)
}

// AddExpense godoc
// @Summary Add an expense entry
// @Tags Budget
// @Accept json
// @Produce json
// @Param entry body CreateEntryRequest true "Expense entry"
// @Success 201 {object} EntryDTO
// @Failure 400 {string} string "Bad Request"
// @Router /api/budget/expense [post]
func (handler *Handler) AddExpense(w http.ResponseWriter, r *http.Request) {
	log.Debug("Adding expense entry")
	handler.addEntry(w, r, handler.service.AddExpense)
}

// DeleteIncome godoc
// @Summary Delete an income entry
// @Tags Budget
// @Param entryId path int true "Entry ID"
// @Success 204
// @Failure 404 {string} string "Entry Not Found"
// @Router /api/budget/income/{entryId} [delete]
func (handler *Handler) DeleteIncome(w http.ResponseWriter, r *http.Request) {
	log.Debug("Deleting income entry")
	handler.deleteEntry(w, r, handler.service.DeleteIncome)
}

// DeleteExpense godoc
// @Summary Delete an expense entry
// @Tags Budget
// @Param entryId path int true "Entry ID"
// @Success 204
// @Failure 404 {string} string "Entry Not Found"
// @Router /api/budget/expense/{entryId} [delete]
func (handler *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	log.Debug("Deleting expense entry")
	handler.deleteEntry(w, r, handler.service.DeleteExpense)
}

func (handler *Handler) addEntry(w http.ResponseWriter, r *http.Request, add func(context.Context, Entry) Entry) {
	w.Header().Set("Content-Type", "application/json")
	var req CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		http.Error(w, "description is required", http.StatusBadRequest)
		return
	}

	entry := add(r.Context(), Entry{
		Description: req.Description,
		Amount:      utils.ParseDecimalJSON(req.Amount),
		Category:    req.Category,
	})

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(EntryDTO{
		Id:          entry.Id,
		Description: entry.Description,
		Amount:      entry.Amount,
		Category:    entry.Category,
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) deleteEntry(w http.ResponseWriter, r *http.Request, del func(context.Context, int64) bool) {
	vars := mux.Vars(r)
	entryId, err := strconv.ParseInt(vars["entryId"], 10, 64)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !del(r.Context(), entryId) {
		http.Error(w, "entry not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func BudgetToDTO(budget Budget) BudgetDTO {
	return BudgetDTO{
		Income:   entriesToDTO(budget.Income),
		Expenses: entriesToDTO(budget.Expenses),
	}
}

func entriesToDTO(entries []Entry) []EntryDTO {
	dtos := make([]EntryDTO, 0, len(entries))
	for _, entry := range entries {
		dtos = append(dtos, EntryDTO{
			Id:          entry.Id,
			Description: entry.Description,
			Amount:      entry.Amount,
			Category:    entry.Category,
		})
	}
	return dtos
}
