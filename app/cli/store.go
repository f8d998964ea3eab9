package cli

import (
	"context"
	"fmt"

	"boardcamp/config"
	customerrepo "boardcamp/repository/customer"
	gamerepo "boardcamp/repository/game"
	rentalrepo "boardcamp/repository/rental"
	"boardcamp/repository/sqlite"
	"boardcamp/util/database"
	"boardcamp/util/sqlitedb"
)

// store bundles the repositories of the configured backend.
type store struct {
	Customers customerrepo.Repo
	Games     gamerepo.Repo
	Rentals   rentalrepo.Repo

	migrate func(ctx context.Context) error
	close   func()
}

func openStore(ctx context.Context, cfg config.App) (*store, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		db, err := database.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return &store{
			Customers: customerrepo.New(db),
			Games:     gamerepo.New(db),
			Rentals:   rentalrepo.New(db),
			migrate:   db.Migrate,
			close:     db.Close,
		}, nil

	case config.DriverSQLite:
		db, err := sqlitedb.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &store{
			Customers: sqlite.NewCustomerRepo(db),
			Games:     sqlite.NewGameRepo(db),
			Rentals:   sqlite.NewRentalRepo(db),
			migrate:   func(context.Context) error { return sqlite.Migrate(db) },
			close:     func() { _ = sqlitedb.Close(db) },
		}, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
