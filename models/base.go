package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Money travels as JSON numbers, matching what the dashboards send.
	decimal.MarshalJSONWithoutQuotes = true
}

// MaxMoney is the largest amount a decimal(20,2) column holds.
var MaxMoney = decimal.RequireFromString("999999999999999999.99")

func newID() string {
	return uuid.NewString()
}
