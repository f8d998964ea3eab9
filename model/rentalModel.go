// model/rental.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type RentalStatus string

const (
	RentalOpen   RentalStatus = "OPEN"
	RentalClosed RentalStatus = "CLOSED"
)

type Rental struct {
	ID            int64            `json:"id"`
	CustomerID    int64            `json:"customerId"`
	GameID        int64            `json:"gameId"`
	RentDate      time.Time        `json:"rentDate"`
	DaysRented    int64            `json:"daysRented"`
	ReturnDate    *time.Time       `json:"returnDate"`
	OriginalPrice decimal.Decimal  `json:"originalPrice"`
	DelayFee      *decimal.Decimal `json:"delayFee"`
}

// Open reports whether the rental still holds a unit.
func (r Rental) Open() bool { return r.ReturnDate == nil }

func (r Rental) Status() RentalStatus {
	if r.Open() {
		return RentalOpen
	}
	return RentalClosed
}

type RentalCustomer struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type RentalGame struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RentalView is the listing projection: a rental joined with its customer and game.
type RentalView struct {
	Rental
	Customer RentalCustomer `json:"customer"`
	Game     RentalGame     `json:"game"`
}

type RentalFilter struct {
	CustomerID int64
	GameID     int64
}
