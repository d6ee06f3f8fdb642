package services

import "kissan/internal/models/response_models"

// Static mandi dataset served while no live price feed is wired in.
var marketData = []response_models.MarketQuote{
	{ID: 1, State: "Punjab", Market: "Khanna", Commodity: "Wheat", MinPrice: 2100, MaxPrice: 2350, ModalPrice: 2275, Date: "2024-03-15", Trend: "up"},
	{ID: 2, State: "Punjab", Market: "Ludhiana", Commodity: "Rice (Basmati)", MinPrice: 3500, MaxPrice: 4200, ModalPrice: 3950, Date: "2024-03-15", Trend: "stable"},
	{ID: 3, State: "Haryana", Market: "Karnal", Commodity: "Wheat", MinPrice: 2150, MaxPrice: 2380, ModalPrice: 2300, Date: "2024-03-15", Trend: "up"},
	{ID: 4, State: "Haryana", Market: "Ambala", Commodity: "Potato", MinPrice: 600, MaxPrice: 850, ModalPrice: 750, Date: "2024-03-15", Trend: "down"},
	{ID: 5, State: "Maharashtra", Market: "Pune", Commodity: "Onion", MinPrice: 1200, MaxPrice: 1800, ModalPrice: 1550, Date: "2024-03-15", Trend: "up"},
	{ID: 6, State: "Maharashtra", Market: "Nashik", Commodity: "Tomato", MinPrice: 1500, MaxPrice: 2200, ModalPrice: 1900, Date: "2024-03-15", Trend: "down"},
	{ID: 7, State: "Uttar Pradesh", Market: "Agra", Commodity: "Potato", MinPrice: 650, MaxPrice: 900, ModalPrice: 800, Date: "2024-03-15", Trend: "stable"},
	{ID: 8, State: "Madhya Pradesh", Market: "Indore", Commodity: "Soybean", MinPrice: 4200, MaxPrice: 4800, ModalPrice: 4600, Date: "2024-03-15", Trend: "up"},
	{ID: 9, State: "Rajasthan", Market: "Jaipur", Commodity: "Mustard", MinPrice: 4800, MaxPrice: 5300, ModalPrice: 5100, Date: "2024-03-15", Trend: "down"},
	{ID: 10, State: "Gujarat", Market: "Surat", Commodity: "Cotton", MinPrice: 6500, MaxPrice: 7200, ModalPrice: 6900, Date: "2024-03-15", Trend: "up"},
}
