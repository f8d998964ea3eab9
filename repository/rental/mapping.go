package rental

import (
	"fmt"
	"time"

	"boardcamp/model"
	"boardcamp/util/dates"

	"github.com/shopspring/decimal"
)

// Fill maps the stored rental columns that need conversion onto r. Both
// store backends read money as text and dates as timestamps; this is the one
// place that turns them into domain values.
func Fill(r *model.Rental, rentDate time.Time, returnDate *time.Time, originalPrice string, delayFee *string) error {
	r.RentDate = dates.Day(rentDate)
	r.ReturnDate = nil
	if returnDate != nil {
		d := dates.Day(*returnDate)
		r.ReturnDate = &d
	}

	p, err := decimal.NewFromString(originalPrice)
	if err != nil {
		return fmt.Errorf("rental %d: original_price %q: %w", r.ID, originalPrice, err)
	}
	r.OriginalPrice = p

	r.DelayFee = nil
	if delayFee != nil {
		f, err := decimal.NewFromString(*delayFee)
		if err != nil {
			return fmt.Errorf("rental %d: delay_fee %q: %w", r.ID, *delayFee, err)
		}
		r.DelayFee = &f
	}
	return nil
}
