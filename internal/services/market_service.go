package services

import (
	"strings"

	"kissan/internal/models/response_models"
)

// AllFilter is the sentinel meaning "no filter" for state and commodity.
const AllFilter = "All"

type MarketServiceInterface interface {
	Quotes(state, commodity, search string) response_models.MarketResponse
}

type MarketService struct {
	quotes []response_models.MarketQuote
}

func NewMarketService() MarketServiceInterface {
	return &MarketService{quotes: marketData}
}

// Quotes filters the dataset conjunctively: state AND commodity AND
// search, each optional. State and commodity match exactly; the search
// term matches case-insensitively against market and commodity names. The
// meta block always reflects the full dataset so filter dropdowns stay
// populated.
func (m *MarketService) Quotes(state, commodity, search string) response_models.MarketResponse {
	filtered := make([]response_models.MarketQuote, 0, len(m.quotes))
	term := strings.ToLower(search)

	for _, quote := range m.quotes {
		if state != "" && state != AllFilter && quote.State != state {
			continue
		}
		if commodity != "" && commodity != AllFilter && quote.Commodity != commodity {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(quote.Market), term) &&
			!strings.Contains(strings.ToLower(quote.Commodity), term) {
			continue
		}
		filtered = append(filtered, quote)
	}

	return response_models.MarketResponse{
		Data: filtered,
		Meta: response_models.MarketMeta{
			States:      m.distinctStates(),
			Commodities: m.distinctCommodities(),
			Total:       len(filtered),
		},
	}
}

func (m *MarketService) distinctStates() []string {
	seen := make(map[string]bool)
	var states []string
	for _, quote := range m.quotes {
		if !seen[quote.State] {
			seen[quote.State] = true
			states = append(states, quote.State)
		}
	}
	return states
}

func (m *MarketService) distinctCommodities() []string {
	seen := make(map[string]bool)
	var commodities []string
	for _, quote := range m.quotes {
		if !seen[quote.Commodity] {
			seen[quote.Commodity] = true
			commodities = append(commodities, quote.Commodity)
		}
	}
	return commodities
}
