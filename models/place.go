package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Place is a named point stored together with its geohash cell.
type Place struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Latitude  decimal.Decimal `json:"latitude"`
	Longitude decimal.Decimal `json:"longitude"`
	Precision int             `json:"precision"`
	Geohash   string          `json:"geohash"`
	CreatedAt time.Time       `json:"created_at"`
}
