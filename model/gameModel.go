// model/game.go
package model

import "github.com/shopspring/decimal"

type Game struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Image       string          `json:"image"`
	StockTotal  int64           `json:"stockTotal"`
	PricePerDay decimal.Decimal `json:"pricePerDay"`
}

// GameInput is the catalog insert payload.
// swagger:model GameInput
type GameInput struct {
	Name        string          `json:"name"`
	Image       string          `json:"image"`
	StockTotal  int64           `json:"stockTotal"`
	PricePerDay decimal.Decimal `json:"pricePerDay"`
}
