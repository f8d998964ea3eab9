package gamesvc

import (
	"context"
	"errors"
	"strings"

	"boardcamp/model"
	"boardcamp/repository"
	"boardcamp/service/apperr"
)

type Game = model.Game

type Repo interface {
	Create(ctx context.Context, g *model.Game) error
	List(ctx context.Context, namePrefix string) ([]model.Game, error)
	ByID(ctx context.Context, id int64) (*model.Game, error)
	ByName(ctx context.Context, name string) (*model.Game, error)
}

type Service interface {
	ValidateForCreate(ctx context.Context, in model.GameInput) error
	Create(ctx context.Context, in model.GameInput) (*Game, error)
	List(ctx context.Context, namePrefix string) ([]Game, error)
	Detail(ctx context.Context, id int64) (*Game, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) ValidateForCreate(ctx context.Context, in model.GameInput) error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Image) == "" {
		return apperr.New(apperr.ErrInvalidInput, "name and image are required")
	}
	if in.StockTotal <= 0 || !in.PricePerDay.IsPositive() {
		return apperr.New(apperr.ErrInvalidInput, "stockTotal and pricePerDay must be greater than 0")
	}

	existing, err := s.r.ByName(ctx, strings.TrimSpace(in.Name))
	if err != nil {
		return apperr.Internal("lookup game name", err)
	}
	if existing != nil {
		return apperr.New(apperr.ErrConflict, "a game with this name already exists")
	}
	return nil
}

func (s *service) Create(ctx context.Context, in model.GameInput) (*Game, error) {
	if err := s.ValidateForCreate(ctx, in); err != nil {
		return nil, err
	}
	g := &model.Game{
		Name:        strings.TrimSpace(in.Name),
		Image:       strings.TrimSpace(in.Image),
		StockTotal:  in.StockTotal,
		PricePerDay: in.PricePerDay,
	}
	if err := s.r.Create(ctx, g); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Wrap(apperr.ErrConflict, "a game with this name already exists", err)
		}
		return nil, apperr.Internal("insert game", err)
	}
	return g, nil
}

func (s *service) List(ctx context.Context, namePrefix string) ([]Game, error) {
	out, err := s.r.List(ctx, strings.TrimSpace(namePrefix))
	if err != nil {
		return nil, apperr.Internal("list games", err)
	}
	return out, nil
}

func (s *service) Detail(ctx context.Context, id int64) (*Game, error) {
	if id <= 0 {
		return nil, apperr.New(apperr.ErrInvalidInput, "invalid id")
	}
	g, err := s.r.ByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("load game", err)
	}
	if g == nil {
		return nil, apperr.New(apperr.ErrNotFound, "game not found")
	}
	return g, nil
}
