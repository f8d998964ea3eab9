package sqlite

import (
	"context"
	"errors"
	"time"

	"boardcamp/model"
	rentalrepo "boardcamp/repository/rental"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type rentals struct{ db *gorm.DB }

func NewRentalRepo(db *gorm.DB) rentalrepo.Repo { return &rentals{db: db} }

// WithinTx relies on the connection opening every transaction with
// BEGIN IMMEDIATE (see util/sqlitedb): the write lock is taken up front, so
// a count followed by an insert cannot interleave with another writer.
func (r *rentals) WithinTx(ctx context.Context, fn func(tx rentalrepo.Tx) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&rentalTx{db: tx})
	})
}

type rentalTx struct{ db *gorm.DB }

func (t *rentalTx) FindCustomerByID(ctx context.Context, id int64) (*model.RentalCustomer, error) {
	var rec customerRecord
	err := t.db.WithContext(ctx).Select("id", "name").Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &model.RentalCustomer{ID: rec.ID, Name: rec.Name}, nil
}

func (t *rentalTx) FindGameByID(ctx context.Context, id int64) (*rentalrepo.GameRow, error) {
	var rec gameRecord
	err := t.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rentalrepo.GameRow{
		ID:          rec.ID,
		Name:        rec.Name,
		StockTotal:  rec.StockTotal,
		PricePerDay: rec.PricePerDay,
	}, nil
}

func (t *rentalTx) CountOpenRentalsForGame(ctx context.Context, gameID int64) (int64, error) {
	var n int64
	err := t.db.WithContext(ctx).
		Model(&rentalRecord{}).
		Where("game_id = ? AND return_date IS NULL", gameID).
		Count(&n).Error
	return n, err
}

func (t *rentalTx) InsertRental(ctx context.Context, r *model.Rental) (int64, error) {
	rec := rentalRecord{
		CustomerID:    r.CustomerID,
		GameID:        r.GameID,
		RentDate:      r.RentDate,
		DaysRented:    r.DaysRented,
		OriginalPrice: r.OriginalPrice.String(),
	}
	if err := t.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (t *rentalTx) FindRentalByID(ctx context.Context, id int64) (*model.Rental, error) {
	var rec rentalRecord
	err := t.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec.toModel()
}

func (t *rentalTx) UpdateRentalOnReturn(ctx context.Context, id int64, returnDate time.Time, delayFee decimal.Decimal) (int64, error) {
	res := t.db.WithContext(ctx).
		Model(&rentalRecord{}).
		Where("id = ? AND return_date IS NULL", id).
		Updates(map[string]any{
			"return_date": returnDate,
			"delay_fee":   delayFee.String(),
		})
	return res.RowsAffected, res.Error
}

func (t *rentalTx) IncrementGameStock(ctx context.Context, gameID, by int64) error {
	return t.db.WithContext(ctx).
		Model(&gameRecord{}).
		Where("id = ?", gameID).
		Update("stock_total", gorm.Expr("stock_total + ?", by)).Error
}

func (t *rentalTx) DeleteRental(ctx context.Context, id int64) (int64, error) {
	res := t.db.WithContext(ctx).
		Where("id = ? AND return_date IS NULL", id).
		Delete(&rentalRecord{})
	return res.RowsAffected, res.Error
}

type rentalViewRow struct {
	ID            int64
	CustomerID    int64
	GameID        int64
	RentDate      time.Time
	DaysRented    int64
	ReturnDate    *time.Time
	OriginalPrice string
	DelayFee      *string
	CustomerName  string
	GameName      string
}

func (r *rentals) List(ctx context.Context, f model.RentalFilter) ([]model.RentalView, error) {
	q := r.db.WithContext(ctx).
		Table("rentals AS r").
		Select(`r.id, r.customer_id, r.game_id, r.rent_date, r.days_rented, r.return_date,
			r.original_price, r.delay_fee, c.name AS customer_name, g.name AS game_name`).
		Joins("JOIN customers c ON c.id = r.customer_id").
		Joins("JOIN games g ON g.id = r.game_id")
	if f.CustomerID > 0 {
		q = q.Where("r.customer_id = ?", f.CustomerID)
	}
	if f.GameID > 0 {
		q = q.Where("r.game_id = ?", f.GameID)
	}

	var rows []rentalViewRow
	if err := q.Order("r.id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]model.RentalView, 0, len(rows))
	for _, row := range rows {
		v := model.RentalView{
			Rental: model.Rental{
				ID:         row.ID,
				CustomerID: row.CustomerID,
				GameID:     row.GameID,
				DaysRented: row.DaysRented,
			},
			Customer: model.RentalCustomer{ID: row.CustomerID, Name: row.CustomerName},
			Game:     model.RentalGame{ID: row.GameID, Name: row.GameName},
		}
		if err := rentalrepo.Fill(&v.Rental, row.RentDate, row.ReturnDate, row.OriginalPrice, row.DelayFee); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (rec rentalRecord) toModel() (*model.Rental, error) {
	r := model.Rental{
		ID:         rec.ID,
		CustomerID: rec.CustomerID,
		GameID:     rec.GameID,
		DaysRented: rec.DaysRented,
	}
	if err := rentalrepo.Fill(&r, rec.RentDate, rec.ReturnDate, rec.OriginalPrice, rec.DelayFee); err != nil {
		return nil, err
	}
	return &r, nil
}
