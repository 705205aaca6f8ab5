package dashboard

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/wealthdesk/wealthdesk/pkg/portfolio"
)

type SummaryDTO struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetCashFlow   decimal.Decimal `json:"netCashFlow"`

	PortfolioValue        decimal.Decimal `json:"portfolioValue"`
	AnnualDividendIncome  decimal.Decimal `json:"annualDividendIncome"`
	MonthlyDividendIncome decimal.Decimal `json:"monthlyDividendIncome"`

	TotalAccountBalance decimal.Decimal `json:"totalAccountBalance"`
	TotalNetWorth       decimal.Decimal `json:"totalNetWorth"`

	AccountCount int                    `json:"accountCount"`
	HoldingCount int                    `json:"holdingCount"`
	TopHoldings  []portfolio.HoldingDTO `json:"topHoldings"`

	LastChanged ActivityDTO `json:"lastChanged"`
}

type ActivityDTO struct {
	Budget    *time.Time `json:"budget,omitempty"`
	Portfolio *time.Time `json:"portfolio,omitempty"`
	Accounts  *time.Time `json:"accounts,omitempty"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

// GetSummary godoc
// @Summary Get the dashboard summary
// @Description All derived metrics recomputed from current state
// @Tags Dashboard
// @Produce json
// @Success 200 {object} SummaryDTO
// @Router /api/dashboard/summary [get]
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	log.Debug("Getting dashboard summary")
	w.Header().Set("Content-Type", "application/json")
	summary := handler.service.Summary(r.Context())
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(SummaryToDTO(summary)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func SummaryToDTO(summary Summary) SummaryDTO {
	topHoldings := make([]portfolio.HoldingDTO, 0, len(summary.TopHoldings))
	for _, h := range summary.TopHoldings {
		topHoldings = append(topHoldings, portfolio.HoldingToDTO(h))
	}
	return SummaryDTO{
		TotalIncome:           summary.TotalIncome,
		TotalExpenses:         summary.TotalExpenses,
		NetCashFlow:           summary.NetCashFlow,
		PortfolioValue:        summary.PortfolioValue,
		AnnualDividendIncome:  summary.AnnualDividendIncome,
		MonthlyDividendIncome: summary.MonthlyDividendIncome,
		TotalAccountBalance:   summary.TotalAccountBalance,
		TotalNetWorth:         summary.TotalNetWorth,
		AccountCount:          summary.AccountCount,
		HoldingCount:          summary.HoldingCount,
		TopHoldings:           topHoldings,
		LastChanged: ActivityDTO{
			Budget:    timeOrNil(summary.LastChanged.Budget),
			Portfolio: timeOrNil(summary.LastChanged.Portfolio),
			Accounts:  timeOrNil(summary.LastChanged.Accounts),
		},
	}
}

func timeOrNil(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
