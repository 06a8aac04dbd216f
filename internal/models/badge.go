package models

import "github.com/shopspring/decimal"

// Badge is the catalogue view of one badge. Price is in token base units,
// PriceTokens in whole tokens for display.
type Badge struct {
	ID          uint64          `json:"id" example:"0"`
	Name        string          `json:"name" example:"Early Bird"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" swaggertype:"string" example:"20000000000000000000"`
	PriceTokens decimal.Decimal `json:"price_tokens" swaggertype:"string" example:"20"`
	Supply      uint64          `json:"supply" example:"100"`
	Remaining   uint64          `json:"remaining" example:"100"`
	Type        string          `json:"type" example:"EarlyBird"`
	Active      bool            `json:"active"`
	Earned      bool            `json:"earned"`
	Progress    *float64        `json:"progress,omitempty" example:"42.5"`
	SoldOut     bool            `json:"sold_out"`
}
