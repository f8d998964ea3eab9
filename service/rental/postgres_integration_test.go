//go:build integration
// +build integration

package rental_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"boardcamp/model"
	"boardcamp/repository"
	customerrepo "boardcamp/repository/customer"
	gamerepo "boardcamp/repository/game"
	rentalrepo "boardcamp/repository/rental"
	"boardcamp/service/apperr"
	"boardcamp/service/rental"
	"boardcamp/util/database"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgres starts a PostgreSQL container and returns a migrated DB
func setupPostgres(t *testing.T) *database.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("boardcamp"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.Migrate(ctx))
	// schema is idempotent
	require.NoError(t, db.Migrate(ctx))
	return db
}

func TestPostgresRentalLifecycle(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	customers := customerrepo.New(db)
	games := gamerepo.New(db)
	clk := &clock{now: time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)}
	svc := rental.New(rentalrepo.New(db), rental.WithClock(clk.Now))

	c := &model.Customer{Name: "João Alfredo", Phone: "21998899222", NationalID: "01234567890", Birthday: time.Date(1992, 10, 5, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, customers.Create(ctx, c))
	dup := *c
	require.True(t, errors.Is(customers.Create(ctx, &dup), repository.ErrDuplicate))

	g := &model.Game{Name: "Detetive", Image: "http://img/d.jpg", StockTotal: 1, PricePerDay: decimal.RequireFromString("10")}
	require.NoError(t, games.Create(ctx, g))
	byName, err := games.ByName(ctx, "Detetive")
	require.NoError(t, err)
	require.Equal(t, g.ID, byName.ID)
	listed, err := games.List(ctx, "det")
	require.NoError(t, err)
	require.Len(t, listed, 1)

	id, err := svc.Create(ctx, c.ID, g.ID, 3)
	require.NoError(t, err)

	_, err = svc.Create(ctx, c.ID, g.ID, 3)
	require.Equal(t, apperr.ErrUnavailable, apperr.Code(err))

	clk.advanceDays(5)
	closed, err := svc.Return(ctx, id)
	require.NoError(t, err)
	require.True(t, decimal.RequireFromString("30").Equal(closed.OriginalPrice))
	require.True(t, decimal.RequireFromString("20").Equal(*closed.DelayFee))

	_, err = svc.Return(ctx, id)
	require.Equal(t, apperr.ErrInvalidState, apperr.Code(err))
	require.Equal(t, apperr.ErrInvalidState, apperr.Code(svc.Delete(ctx, id)))

	after, err := games.ByID(ctx, g.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), after.StockTotal)

	views, err := svc.List(ctx, model.RentalFilter{GameID: g.ID})
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Equal(t, "João Alfredo", views[0].Customer.Name)
	require.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *views[0].ReturnDate)

	both, err := svc.List(ctx, model.RentalFilter{CustomerID: c.ID, GameID: g.ID})
	require.NoError(t, err)
	require.Len(t, both, 1)
	require.Equal(t, id, both[0].ID)

	other, err := svc.List(ctx, model.RentalFilter{CustomerID: c.ID, GameID: g.ID + 1})
	require.NoError(t, err)
	require.Empty(t, other)
}

func TestPostgresConcurrentCreatesRespectStock(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	c := &model.Customer{Name: "Maria", Phone: "2133334444", NationalID: "11122233344", Birthday: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, customerrepo.New(db).Create(ctx, c))
	g := &model.Game{Name: "War", Image: "http://img/war.jpg", StockTotal: 3, PricePerDay: decimal.RequireFromString("4.50")}
	require.NoError(t, gamerepo.New(db).Create(ctx, g))

	svc := rental.New(rentalrepo.New(db))

	const workers = 16
	var (
		wg          sync.WaitGroup
		ok, noStock atomic.Int32
		start       = make(chan struct{})
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := svc.Create(ctx, c.ID, g.ID, 2)
			switch {
			case err == nil:
				ok.Add(1)
			case apperr.Code(err) == apperr.ErrUnavailable:
				noStock.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	require.Equal(t, int32(3), ok.Load())
	require.Equal(t, int32(workers-3), noStock.Load())

	views, err := svc.List(ctx, model.RentalFilter{CustomerID: c.ID})
	require.NoError(t, err)
	require.Len(t, views, 3)
	require.True(t, decimal.RequireFromString("9").Equal(views[0].OriginalPrice))
}
