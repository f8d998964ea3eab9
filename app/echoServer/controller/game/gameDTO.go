package game

import "github.com/shopspring/decimal"

type CreateGameReq struct {
	Name        string          `json:"name" validate:"required"`
	Image       string          `json:"image" validate:"required"`
	StockTotal  int64           `json:"stockTotal" validate:"required,gt=0"`
	PricePerDay decimal.Decimal `json:"pricePerDay" swaggertype:"number"`
}
