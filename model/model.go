// Package model holds the entities shared by the stores, services and controllers.
package model

import "github.com/shopspring/decimal"

func init() {
	// prices and fees go out as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}
