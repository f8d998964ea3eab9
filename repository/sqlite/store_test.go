package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"boardcamp/model"
	"boardcamp/repository"
	rentalrepo "boardcamp/repository/rental"
	"boardcamp/repository/sqlite"
	"boardcamp/util/sqlitedb"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := sqlitedb.Memory(uuid.NewString())
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlitedb.Close(db) })
	require.NoError(t, sqlite.Migrate(db))
	return db
}

func TestCustomers(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()
	r := sqlite.NewCustomerRepo(db)

	bday := time.Date(1992, 10, 5, 0, 0, 0, 0, time.UTC)
	a := &model.Customer{Name: "Ana", Phone: "21998899222", NationalID: "01234567890", Birthday: bday}
	require.NoError(t, r.Create(ctx, a))
	require.NotZero(t, a.ID)

	dup := &model.Customer{Name: "Outra", Phone: "2133334444", NationalID: "01234567890", Birthday: bday}
	require.True(t, errors.Is(r.Create(ctx, dup), repository.ErrDuplicate))

	b := &model.Customer{Name: "Bia", Phone: "2133334444", NationalID: "98765432100", Birthday: bday}
	require.NoError(t, r.Create(ctx, b))

	got, err := r.ByNationalID(ctx, "98765432100")
	require.NoError(t, err)
	require.Equal(t, b.ID, got.ID)
	require.Equal(t, bday, got.Birthday)

	missing, err := r.ByID(ctx, 999)
	require.NoError(t, err)
	require.Nil(t, missing)

	list, err := r.List(ctx, "0123")
	require.NoError(t, err)
	require.Len(t, list, 1)

	all, err := r.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	// wildcards in the prefix are matched literally
	list, err = r.List(ctx, "0_2")
	require.NoError(t, err)
	require.Empty(t, list)
	list, err = r.List(ctx, "%")
	require.NoError(t, err)
	require.Empty(t, list)

	b.NationalID = "01234567890"
	_, err = r.Update(ctx, b)
	require.True(t, errors.Is(err, repository.ErrDuplicate))

	b.NationalID = "98765432100"
	b.Name = "Beatriz"
	n, err := r.Update(ctx, b)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	n, err = r.Update(ctx, &model.Customer{ID: 999, Name: "x", Phone: "2133334444", NationalID: "55555555555", Birthday: bday})
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestGames(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()
	r := sqlite.NewGameRepo(db)

	g := &model.Game{Name: "Banco Imobiliário", Image: "http://img/b.jpg", StockTotal: 3, PricePerDay: decimal.RequireFromString("15.50")}
	require.NoError(t, r.Create(ctx, g))
	require.True(t, errors.Is(r.Create(ctx, &model.Game{Name: "Banco Imobiliário", Image: "x", StockTotal: 1, PricePerDay: decimal.NewFromInt(1)}), repository.ErrDuplicate))

	got, err := r.ByID(ctx, g.ID)
	require.NoError(t, err)
	require.True(t, decimal.RequireFromString("15.5").Equal(got.PricePerDay))

	list, err := r.List(ctx, "banco")
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, r.Create(ctx, &model.Game{Name: "100% Dados", Image: "http://img/d.jpg", StockTotal: 1, PricePerDay: decimal.NewFromInt(2)}))
	list, err = r.List(ctx, "100%")
	require.NoError(t, err)
	require.Len(t, list, 1)
	list, err = r.List(ctx, "_")
	require.NoError(t, err)
	require.Empty(t, list)

	require.NoError(t, db.Exec("UPDATE games SET price_per_day = 'abc' WHERE id = ?", g.ID).Error)
	_, err = r.ByID(ctx, g.ID)
	require.Error(t, err)
}

func TestRentalTxGuards(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()

	c := &model.Customer{Name: "Ana", Phone: "21998899222", NationalID: "01234567890", Birthday: time.Date(1992, 10, 5, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, sqlite.NewCustomerRepo(db).Create(ctx, c))
	g := &model.Game{Name: "War", Image: "http://img/w.jpg", StockTotal: 2, PricePerDay: decimal.NewFromInt(5)}
	require.NoError(t, sqlite.NewGameRepo(db).Create(ctx, g))

	r := sqlite.NewRentalRepo(db)
	rentDate := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	var id int64
	require.NoError(t, r.WithinTx(ctx, func(tx rentalrepo.Tx) error {
		var err error
		id, err = tx.InsertRental(ctx, &model.Rental{CustomerID: c.ID, GameID: g.ID, RentDate: rentDate, DaysRented: 2, OriginalPrice: decimal.NewFromInt(10)})
		return err
	}))

	require.NoError(t, r.WithinTx(ctx, func(tx rentalrepo.Tx) error {
		n, err := tx.CountOpenRentalsForGame(ctx, g.ID)
		require.NoError(t, err)
		require.Equal(t, int64(1), n)

		got, err := tx.FindRentalByID(ctx, id)
		require.NoError(t, err)
		require.True(t, got.Open())
		require.Equal(t, rentDate, got.RentDate)

		rows, err := tx.UpdateRentalOnReturn(ctx, id, rentDate.AddDate(0, 0, 4), decimal.NewFromInt(10))
		require.NoError(t, err)
		require.Equal(t, int64(1), rows)

		rows, err = tx.UpdateRentalOnReturn(ctx, id, rentDate.AddDate(0, 0, 5), decimal.NewFromInt(15))
		require.NoError(t, err)
		require.Zero(t, rows)

		rows, err = tx.DeleteRental(ctx, id)
		require.NoError(t, err)
		require.Zero(t, rows)

		return tx.IncrementGameStock(ctx, g.ID, 1)
	}))

	game, err := sqlite.NewGameRepo(db).ByID(ctx, g.ID)
	require.NoError(t, err)
	require.Equal(t, int64(3), game.StockTotal)

	views, err := r.List(ctx, model.RentalFilter{CustomerID: c.ID, GameID: g.ID})
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.False(t, views[0].Open())
	require.True(t, decimal.NewFromInt(10).Equal(*views[0].DelayFee))

	none, err := r.List(ctx, model.RentalFilter{GameID: g.ID + 100})
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestWithinTxRollsBack(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()

	c := &model.Customer{Name: "Ana", Phone: "21998899222", NationalID: "01234567890", Birthday: time.Date(1992, 10, 5, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, sqlite.NewCustomerRepo(db).Create(ctx, c))
	g := &model.Game{Name: "War", Image: "http://img/w.jpg", StockTotal: 2, PricePerDay: decimal.NewFromInt(5)}
	require.NoError(t, sqlite.NewGameRepo(db).Create(ctx, g))

	r := sqlite.NewRentalRepo(db)
	boom := errors.New("boom")
	err := r.WithinTx(ctx, func(tx rentalrepo.Tx) error {
		if _, err := tx.InsertRental(ctx, &model.Rental{CustomerID: c.ID, GameID: g.ID, RentDate: time.Now().UTC(), DaysRented: 1, OriginalPrice: decimal.NewFromInt(5)}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	views, err := r.List(ctx, model.RentalFilter{})
	require.NoError(t, err)
	require.Empty(t, views)
}
