package response_models

type MarketQuote struct {
	ID         int    `json:"id"`
	State      string `json:"state"`
	Market     string `json:"market"`
	Commodity  string `json:"commodity"`
	MinPrice   int    `json:"min_price"`
	MaxPrice   int    `json:"max_price"`
	ModalPrice int    `json:"modal_price"`
	Date       string `json:"date"`
	Trend      string `json:"trend"`
}

type MarketMeta struct {
	States      []string `json:"states"`
	Commodities []string `json:"commodities"`
	Total       int      `json:"total"`
}

type MarketResponse struct {
	Data []MarketQuote `json:"data"`
	Meta MarketMeta    `json:"meta"`
}
