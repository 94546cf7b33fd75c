package dto

import "time"

// AssetResponse is a catalog asset with its latest price.
type AssetResponse struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Type          string  `json:"type"`
	Price         float64 `json:"price"`
	ChangePercent float64 `json:"change_percent"`
}

// PricePointResponse is one day of price history.
type PricePointResponse struct {
	Date  time.Time `json:"date" swaggertype:"string" format:"date"`
	Price float64   `json:"price"`
}

// AssetHistoryResponse is the price history of one symbol.
type AssetHistoryResponse struct {
	Symbol  string               `json:"symbol"`
	History []PricePointResponse `json:"history"`
}
