package gamerepo

import (
	"context"
	"errors"
	"fmt"

	"boardcamp/model"
	"boardcamp/repository"
	"boardcamp/util/database"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type Repo interface {
	Create(ctx context.Context, g *model.Game) error
	List(ctx context.Context, namePrefix string) ([]model.Game, error)
	ByID(ctx context.Context, id int64) (*model.Game, error)
	ByName(ctx context.Context, name string) (*model.Game, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

const columns = `id, name, image, stock_total, price_per_day::text`

func (r *repo) Create(ctx context.Context, g *model.Game) error {
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO games (name, image, stock_total, price_per_day)
		VALUES ($1,$2,$3,$4::numeric)
		RETURNING id`,
		g.Name, g.Image, g.StockTotal, g.PricePerDay.String(),
	).Scan(&g.ID)
	if database.IsUniqueViolation(err) {
		return fmt.Errorf("insert game: %w", repository.ErrDuplicate)
	}
	return err
}

func (r *repo) List(ctx context.Context, namePrefix string) ([]model.Game, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT `+columns+`
		FROM games
		WHERE name ILIKE $1 ESCAPE '\'
		ORDER BY id`, repository.LikePrefix(namePrefix))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Game{}
	for rows.Next() {
		g, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *g)
	}
	return out, rows.Err()
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Game, error) {
	return one(r.db.Pool.QueryRow(ctx, `SELECT `+columns+` FROM games WHERE id=$1`, id))
}

func (r *repo) ByName(ctx context.Context, name string) (*model.Game, error) {
	return one(r.db.Pool.QueryRow(ctx, `SELECT `+columns+` FROM games WHERE name=$1`, name))
}

func one(row pgx.Row) (*model.Game, error) {
	g, err := scan(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return g, err
}

func scan(row pgx.Row) (*model.Game, error) {
	var g model.Game
	var price string
	if err := row.Scan(&g.ID, &g.Name, &g.Image, &g.StockTotal, &price); err != nil {
		return nil, err
	}
	p, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("game %d: price_per_day %q: %w", g.ID, price, err)
	}
	g.PricePerDay = p
	return &g, nil
}
