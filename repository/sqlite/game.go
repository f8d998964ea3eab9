package sqlite

import (
	"context"
	"errors"
	"fmt"

	"boardcamp/model"
	"boardcamp/repository"
	gamerepo "boardcamp/repository/game"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type games struct{ db *gorm.DB }

func NewGameRepo(db *gorm.DB) gamerepo.Repo { return &games{db: db} }

func (r *games) Create(ctx context.Context, g *model.Game) error {
	rec := gameRecord{
		Name:        g.Name,
		Image:       g.Image,
		StockTotal:  g.StockTotal,
		PricePerDay: g.PricePerDay.String(),
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return translate("insert game", err)
	}
	g.ID = rec.ID
	return nil
}

func (r *games) List(ctx context.Context, namePrefix string) ([]model.Game, error) {
	var recs []gameRecord
	// LIKE is case-insensitive for ASCII in SQLite.
	if err := r.db.WithContext(ctx).Where(`name LIKE ? ESCAPE '\'`, repository.LikePrefix(namePrefix)).Order("id").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]model.Game, 0, len(recs))
	for _, rec := range recs {
		g, err := rec.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

func (r *games) ByID(ctx context.Context, id int64) (*model.Game, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *games) ByName(ctx context.Context, name string) (*model.Game, error) {
	return r.first(ctx, "name = ?", name)
}

func (r *games) first(ctx context.Context, cond string, arg any) (*model.Game, error) {
	var rec gameRecord
	err := r.db.WithContext(ctx).Where(cond, arg).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	g, err := rec.toModel()
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (rec gameRecord) toModel() (model.Game, error) {
	p, err := decimal.NewFromString(rec.PricePerDay)
	if err != nil {
		return model.Game{}, fmt.Errorf("game %d: price_per_day %q: %w", rec.ID, rec.PricePerDay, err)
	}
	return model.Game{
		ID:          rec.ID,
		Name:        rec.Name,
		Image:       rec.Image,
		StockTotal:  rec.StockTotal,
		PricePerDay: p,
	}, nil
}
