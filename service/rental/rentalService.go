package rental

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"boardcamp/model"
	rrepo "boardcamp/repository/rental"
	"boardcamp/service/apperr"
	"boardcamp/util/dates"

	"github.com/shopspring/decimal"
)

// errors used by controllers

var (
	errCustomerNotFound = apperr.New(apperr.ErrNotFound, "customer not found")
	errGameNotFound     = apperr.New(apperr.ErrNotFound, "game not found")
	errRentalNotFound   = apperr.New(apperr.ErrNotFound, "rental not found")
	errNoStock          = apperr.New(apperr.ErrUnavailable, "no units to rent")
	errAlreadyReturned  = apperr.New(apperr.ErrInvalidState, "rental already finalized")
	errDeleteClosed     = apperr.New(apperr.ErrInvalidState, "cannot delete a finalized rental")
)

type Repo interface {
	WithinTx(ctx context.Context, fn func(tx rrepo.Tx) error) error
	List(ctx context.Context, f model.RentalFilter) ([]model.RentalView, error)
}

type Service interface {
	// Create opens a rental if the game still has a free unit.
	Create(ctx context.Context, customerID, gameID, daysRented int64) (int64, error)

	// Return closes an open rental today, charging the delay fee and releasing the unit.
	Return(ctx context.Context, rentalID int64) (*model.Rental, error)

	// ReturnAt is Return with an explicit return date.
	ReturnAt(ctx context.Context, rentalID int64, returnDate time.Time) (*model.Rental, error)

	// Delete removes a rental that was never returned.
	Delete(ctx context.Context, rentalID int64) error

	// List returns rentals joined with their customer and game.
	List(ctx context.Context, f model.RentalFilter) ([]model.RentalView, error)
}

type Option func(*service)

// WithClock replaces time.Now as the source of rent and return dates.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// WithStockRelease controls whether a return adds one unit to the game's
// stockTotal. See DESIGN.md, "stock model".
func WithStockRelease(on bool) Option {
	return func(s *service) { s.release = on }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *service) { s.log = l }
}

// ----- Service implementation -----

type service struct {
	r       Repo
	now     func() time.Time
	release bool
	log     *slog.Logger
}

func New(r Repo, opts ...Option) Service {
	s := &service{r: r, now: time.Now, release: true, log: slog.Default()}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *service) Create(ctx context.Context, customerID, gameID, daysRented int64) (int64, error) {
	if customerID <= 0 || gameID <= 0 || daysRented <= 0 {
		return 0, apperr.New(apperr.ErrInvalidInput, "customerId, gameId and daysRented must be positive integers")
	}
	rentDate := dates.Day(s.now())

	var id int64
	err := s.r.WithinTx(ctx, func(tx rrepo.Tx) error {
		customer, err := tx.FindCustomerByID(ctx, customerID)
		if err != nil {
			return apperr.Internal("load customer", err)
		}
		if customer == nil {
			return errCustomerNotFound
		}

		// locks the game row: the count below and the insert are serialized per game
		game, err := tx.FindGameByID(ctx, gameID)
		if err != nil {
			return apperr.Internal("load game", err)
		}
		if game == nil {
			return errGameNotFound
		}

		open, err := tx.CountOpenRentalsForGame(ctx, gameID)
		if err != nil {
			return apperr.Internal("count open rentals", err)
		}
		if open >= game.StockTotal {
			return errNoStock
		}

		price, err := parsePrice(game)
		if err != nil {
			return err
		}

		id, err = tx.InsertRental(ctx, &model.Rental{
			CustomerID:    customerID,
			GameID:        gameID,
			RentDate:      rentDate,
			DaysRented:    daysRented,
			OriginalPrice: price.Mul(decimal.NewFromInt(daysRented)),
		})
		if err != nil {
			return apperr.Internal("insert rental", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.Debug("rental opened", "rental_id", id, "customer_id", customerID, "game_id", gameID, "days", daysRented)
	return id, nil
}

func (s *service) Return(ctx context.Context, rentalID int64) (*model.Rental, error) {
	return s.ReturnAt(ctx, rentalID, s.now())
}

func (s *service) ReturnAt(ctx context.Context, rentalID int64, returnDate time.Time) (*model.Rental, error) {
	if rentalID <= 0 {
		return nil, apperr.New(apperr.ErrInvalidInput, "invalid rental id")
	}
	returnDay := dates.Day(returnDate)

	var out *model.Rental
	err := s.r.WithinTx(ctx, func(tx rrepo.Tx) error {
		r, err := tx.FindRentalByID(ctx, rentalID)
		if err != nil {
			return apperr.Internal("load rental", err)
		}
		if r == nil {
			return errRentalNotFound
		}
		if !r.Open() {
			return errAlreadyReturned
		}
		if returnDay.Before(r.RentDate) {
			return apperr.New(apperr.ErrInvalidInput, "return date is before the rent date")
		}

		// the fee uses today's price, not the one frozen in originalPrice
		game, err := tx.FindGameByID(ctx, r.GameID)
		if err != nil {
			return apperr.Internal("load game", err)
		}
		if game == nil {
			return apperr.New(apperr.ErrInternal, fmt.Sprintf("rental %d references missing game %d", r.ID, r.GameID))
		}
		price, err := parsePrice(game)
		if err != nil {
			return err
		}

		fee := DelayFee(r.RentDate, returnDay, r.DaysRented, price)

		n, err := tx.UpdateRentalOnReturn(ctx, r.ID, returnDay, fee)
		if err != nil {
			return apperr.Internal("close rental", err)
		}
		if n == 0 {
			return errAlreadyReturned
		}

		if s.release {
			if err := tx.IncrementGameStock(ctx, r.GameID, 1); err != nil {
				return apperr.Internal("release stock", err)
			}
		}

		r.ReturnDate = &returnDay
		r.DelayFee = &fee
		out = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug("rental closed", "rental_id", out.ID, "delay_fee", out.DelayFee.String(), "stock_released", s.release)
	return out, nil
}

func (s *service) Delete(ctx context.Context, rentalID int64) error {
	if rentalID <= 0 {
		return apperr.New(apperr.ErrInvalidInput, "invalid rental id")
	}
	return s.r.WithinTx(ctx, func(tx rrepo.Tx) error {
		r, err := tx.FindRentalByID(ctx, rentalID)
		if err != nil {
			return apperr.Internal("load rental", err)
		}
		if r == nil {
			return errRentalNotFound
		}
		if !r.Open() {
			return errDeleteClosed
		}

		n, err := tx.DeleteRental(ctx, rentalID)
		if err != nil {
			return apperr.Internal("delete rental", err)
		}
		if n == 0 {
			return errDeleteClosed
		}
		return nil
	})
}

func (s *service) List(ctx context.Context, f model.RentalFilter) ([]model.RentalView, error) {
	out, err := s.r.List(ctx, f)
	if err != nil {
		return nil, apperr.Internal("list rentals", err)
	}
	return out, nil
}

// DelayFee charges pricePerDay for every whole day past the rented period.
func DelayFee(rentDate, returnDate time.Time, daysRented int64, pricePerDay decimal.Decimal) decimal.Decimal {
	elapsed := dates.ElapsedDays(rentDate, returnDate)
	if elapsed <= daysRented {
		return decimal.Zero
	}
	return pricePerDay.Mul(decimal.NewFromInt(elapsed - daysRented))
}

func parsePrice(g *rrepo.GameRow) (decimal.Decimal, error) {
	p, err := decimal.NewFromString(g.PricePerDay)
	if err != nil {
		return decimal.Zero, apperr.Wrap(apperr.ErrInternal, fmt.Sprintf("game %d has an unreadable price", g.ID), err)
	}
	if !p.IsPositive() {
		return decimal.Zero, apperr.New(apperr.ErrInternal, fmt.Sprintf("game %d has a non-positive price", g.ID))
	}
	return p, nil
}
