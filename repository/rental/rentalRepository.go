// repository/rental/repo.go
package rental

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"boardcamp/model"
	"boardcamp/util/database"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// GameRow is the slice of a game the rental engine needs. PricePerDay is the
// raw stored value; the engine decides what an unreadable price means.
type GameRow struct {
	ID          int64
	Name        string
	StockTotal  int64
	PricePerDay string
}

// Tx is the store surface used inside one rental transaction. Finders return
// (nil, nil) when the row does not exist.
type Tx interface {
	FindCustomerByID(ctx context.Context, id int64) (*model.RentalCustomer, error)
	// FindGameByID locks the game row until the transaction ends.
	FindGameByID(ctx context.Context, id int64) (*GameRow, error)
	CountOpenRentalsForGame(ctx context.Context, gameID int64) (int64, error)
	InsertRental(ctx context.Context, r *model.Rental) (int64, error)
	// FindRentalByID locks the rental row until the transaction ends.
	FindRentalByID(ctx context.Context, id int64) (*model.Rental, error)
	UpdateRentalOnReturn(ctx context.Context, id int64, returnDate time.Time, delayFee decimal.Decimal) (int64, error)
	IncrementGameStock(ctx context.Context, gameID, by int64) error
	DeleteRental(ctx context.Context, id int64) (int64, error)
}

type Repo interface {
	WithinTx(ctx context.Context, fn func(tx Tx) error) error
	List(ctx context.Context, f model.RentalFilter) ([]model.RentalView, error)
}

type repo struct {
	db *database.DB
}

func New(db *database.DB) Repo { return &repo{db: db} }

func (r *repo) WithinTx(ctx context.Context, fn func(tx Tx) error) error {
	return r.db.InTx(ctx, func(tx pgx.Tx) error {
		return fn(&txRepo{tx: tx})
	})
}

type txRepo struct {
	tx pgx.Tx
}

func (t *txRepo) FindCustomerByID(ctx context.Context, id int64) (*model.RentalCustomer, error) {
	const q = `
		SELECT id, name
		FROM customers
		WHERE id = $1`
	var c model.RentalCustomer
	err := t.tx.QueryRow(ctx, q, id).Scan(&c.ID, &c.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (t *txRepo) FindGameByID(ctx context.Context, id int64) (*GameRow, error) {
	// Serializes every create and return touching this game.
	const q = `
		SELECT id, name, stock_total, price_per_day::text
		FROM games
		WHERE id = $1
		FOR UPDATE`
	var g GameRow
	err := t.tx.QueryRow(ctx, q, id).Scan(&g.ID, &g.Name, &g.StockTotal, &g.PricePerDay)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (t *txRepo) CountOpenRentalsForGame(ctx context.Context, gameID int64) (int64, error) {
	const q = `
		SELECT COUNT(*)
		FROM rentals
		WHERE game_id = $1
		AND return_date IS NULL`
	var n int64
	err := t.tx.QueryRow(ctx, q, gameID).Scan(&n)
	return n, err
}

func (t *txRepo) InsertRental(ctx context.Context, r *model.Rental) (int64, error) {
	const q = `
		INSERT INTO rentals (customer_id, game_id, rent_date, days_rented, return_date, original_price, delay_fee)
		VALUES ($1, $2, $3, $4, NULL, $5::numeric, NULL)
		RETURNING id`
	var id int64
	if err := t.tx.QueryRow(ctx, q, r.CustomerID, r.GameID, r.RentDate, r.DaysRented, r.OriginalPrice.String()).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (t *txRepo) FindRentalByID(ctx context.Context, id int64) (*model.Rental, error) {
	const q = `
		SELECT id, customer_id, game_id, rent_date, days_rented, return_date,
			original_price::text, delay_fee::text
		FROM rentals
		WHERE id = $1
		FOR UPDATE`
	r, err := scanRental(t.tx.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return r, err
}

func (t *txRepo) UpdateRentalOnReturn(ctx context.Context, id int64, returnDate time.Time, delayFee decimal.Decimal) (int64, error) {
	// Guard: only an open rental can be closed.
	const q = `
		UPDATE rentals
		SET return_date = $2,
			delay_fee = $3::numeric
		WHERE id = $1
		AND return_date IS NULL`
	tag, err := t.tx.Exec(ctx, q, id, returnDate, delayFee.String())
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (t *txRepo) IncrementGameStock(ctx context.Context, gameID, by int64) error {
	const q = `
		UPDATE games
		SET stock_total = stock_total + $2
		WHERE id = $1`
	_, err := t.tx.Exec(ctx, q, gameID, by)
	return err
}

func (t *txRepo) DeleteRental(ctx context.Context, id int64) (int64, error) {
	const q = `
		DELETE FROM rentals
		WHERE id = $1
		AND return_date IS NULL`
	tag, err := t.tx.Exec(ctx, q, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// History

func (r *repo) List(ctx context.Context, f model.RentalFilter) ([]model.RentalView, error) {
	q, args := listQuery(f)
	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.RentalView{}
	for rows.Next() {
		var (
			v                  model.RentalView
			rentDate           time.Time
			returnDate         *time.Time
			origPrice          string
			delayFee           *string
			customerName, game string
		)
		if err := rows.Scan(
			&v.ID, &v.CustomerID, &v.GameID, &rentDate, &v.DaysRented, &returnDate,
			&origPrice, &delayFee, &customerName, &game,
		); err != nil {
			return nil, err
		}
		if err := Fill(&v.Rental, rentDate, returnDate, origPrice, delayFee); err != nil {
			return nil, err
		}
		v.Customer = model.RentalCustomer{ID: v.CustomerID, Name: customerName}
		v.Game = model.RentalGame{ID: v.GameID, Name: game}
		out = append(out, v)
	}
	return out, rows.Err()
}

// listQuery builds the join with one numbered placeholder per active filter.
func listQuery(f model.RentalFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	if f.CustomerID > 0 {
		args = append(args, f.CustomerID)
		where = append(where, "r.customer_id = $"+strconv.Itoa(len(args)))
	}
	if f.GameID > 0 {
		args = append(args, f.GameID)
		where = append(where, "r.game_id = $"+strconv.Itoa(len(args)))
	}

	q := `
			SELECT
			r.id, r.customer_id, r.game_id, r.rent_date, r.days_rented, r.return_date,
			r.original_price::text, r.delay_fee::text,
			c.name AS customer_name,
			g.name AS game_name
			FROM rentals r
			JOIN customers c ON c.id = r.customer_id
			JOIN games g ON g.id = r.game_id`
	if len(where) > 0 {
		q += "\n\t\t\tWHERE " + strings.Join(where, " AND ")
	}
	q += "\n\t\t\tORDER BY r.id"
	return q, args
}

func scanRental(row pgx.Row) (*model.Rental, error) {
	var (
		r          model.Rental
		rentDate   time.Time
		returnDate *time.Time
		origPrice  string
		delayFee   *string
	)
	if err := row.Scan(&r.ID, &r.CustomerID, &r.GameID, &rentDate, &r.DaysRented, &returnDate, &origPrice, &delayFee); err != nil {
		return nil, err
	}
	if err := Fill(&r, rentDate, returnDate, origPrice, delayFee); err != nil {
		return nil, err
	}
	return &r, nil
}
