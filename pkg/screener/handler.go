package screener

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/wealthdesk/wealthdesk/internal/utils"
)

type SecurityDTO struct {
	Ticker    string          `json:"ticker"`
	Name      string          `json:"name"`
	Yield     decimal.Decimal `json:"yield"`
	Price     decimal.Decimal `json:"price"`
	Frequency string          `json:"frequency"`
	Sector    string          `json:"sector"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

// ScreenSecurities godoc
// @Summary Screen the security catalog
// @Description List catalog securities filtered by minimum yield and payout frequency
// @Tags Screener
// @Produce json
// @Param minYield query number false "Minimum annualized yield in percent (default 0)"
// @Param frequency query string false "Payout frequency filter: all, weekly, monthly, quarterly" default(all)
// @Success 200 {array} SecurityDTO
// @Failure 400 {string} string "Bad Request"
// @Router /api/securities [get]
func (handler *Handler) ScreenSecurities(w http.ResponseWriter, r *http.Request) {
	log.Debug("Screening securities")
	w.Header().Set("Content-Type", "application/json")

	frequency, ok := ParseFrequency(r.URL.Query().Get("frequency"))
	if !ok {
		http.Error(w, "invalid frequency filter", http.StatusBadRequest)
		return
	}
	filter := Filter{
		MinYield:  utils.ParseDecimal(r.URL.Query().Get("minYield")),
		Frequency: frequency,
	}

	securities := handler.service.Screen(filter)
	securitiesDTO := make([]SecurityDTO, 0, len(securities))
	for _, sec := range securities {
		securitiesDTO = append(securitiesDTO, SecurityToDTO(sec))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(securitiesDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func SecurityToDTO(sec Security) SecurityDTO {
	return SecurityDTO{
		Ticker:    sec.Ticker,
		Name:      sec.Name,
		Yield:     sec.Yield,
		Price:     sec.Price,
		Frequency: string(sec.Frequency),
		Sector:    sec.Sector,
	}
}
