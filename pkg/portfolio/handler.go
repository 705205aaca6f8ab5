package portfolio

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/wealthdesk/wealthdesk/internal/utils"
	"github.com/wealthdesk/wealthdesk/pkg/screener"
)

type HoldingDTO struct {
	Id             int64           `json:"id"`
	Ticker         string          `json:"ticker"`
	Name           string          `json:"name"`
	Yield          decimal.Decimal `json:"yield"`
	Price          decimal.Decimal `json:"price"`
	Frequency      string          `json:"frequency"`
	Sector         string          `json:"sector"`
	Shares         decimal.Decimal `json:"shares"`
	PurchasePrice  decimal.Decimal `json:"purchasePrice"`
	PurchaseDate   time.Time       `json:"purchaseDate"`
	Value          decimal.Decimal `json:"value"`
	AnnualDividend decimal.Decimal `json:"annualDividend"`
}

type AddHoldingRequest struct {
	Ticker string          `json:"ticker"`
	Shares json.RawMessage `json:"shares"`
}

type Handler struct {
	service  Service
	screener screener.Service
}

func NewHandler(service Service, screenerService screener.Service) *Handler {
	return &Handler{service: service, screener: screenerService}
}

// GetPortfolio godoc
// @Summary List all holdings
// @Tags Portfolio
// @Produce json
// @Success 200 {array} HoldingDTO
// @Router /api/portfolio [get]
func (handler *Handler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	log.Debug("Getting portfolio")
	w.Header().Set("Content-Type", "application/json")
	holdings := handler.service.Snapshot(r.Context())
	holdingsDTO := make([]HoldingDTO, 0, len(holdings))
	for _, h := range holdings {
		holdingsDTO = append(holdingsDTO, HoldingToDTO(h))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(holdingsDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// AddHolding godoc
// @Summary Add a holding
// @Description Buy a catalog security into the portfolio at its current catalog price
// @Tags Portfolio
// @Accept json
// @Produce json
// @Param holding body AddHoldingRequest true "Ticker and share count"
// @Success 201 {object} HoldingDTO
// @Failure 400 {string} string "Bad Request"
// @Failure 404 {string} string "Security Not Found"
// @Router /api/portfolio/holding [post]
func (handler *Handler) AddHolding(w http.ResponseWriter, r *http.Request) {
	log.Debug("Adding holding")
	w.Header().Set("Content-Type", "application/json")
	var req AddHoldingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Ticker) == "" {
		http.Error(w, "ticker is required", http.StatusBadRequest)
		return
	}

	sec, err := handler.screener.Lookup(req.Ticker)
	if err != nil {
		if errors.Is(err, screener.ErrSecurityNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	holding, err := handler.service.Add(r.Context(), sec, utils.ParseDecimalJSON(req.Shares))
	if err != nil {
		if errors.Is(err, ErrInvalidShares) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(HoldingToDTO(holding)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// RemoveHolding godoc
// @Summary Remove a holding
// @Tags Portfolio
// @Param holdingId path int true "Holding ID"
// @Success 204
// @Failure 404 {string} string "Holding Not Found"
// @Router /api/portfolio/holding/{holdingId} [delete]
func (handler *Handler) RemoveHolding(w http.ResponseWriter, r *http.Request) {
	log.Debug("Removing holding")
	vars := mux.Vars(r)
	holdingId, err := strconv.ParseInt(vars["holdingId"], 10, 64)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !handler.service.Remove(r.Context(), holdingId) {
		http.Error(w, "holding not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func HoldingToDTO(h Holding) HoldingDTO {
	return HoldingDTO{
		Id:             h.Id,
		Ticker:         h.Ticker,
		Name:           h.Name,
		Yield:          h.Yield,
		Price:          h.Price,
		Frequency:      string(h.Frequency),
		Sector:         h.Sector,
		Shares:         h.Shares,
		PurchasePrice:  h.PurchasePrice,
		PurchaseDate:   h.PurchaseDate,
		Value:          h.Value(),
		AnnualDividend: h.AnnualDividend(),
	}
}
