// service/game/game_service_test.go
package gamesvc_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"boardcamp/model"
	"boardcamp/repository"
	"boardcamp/service/apperr"
	gamesvc "boardcamp/service/game"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type repoMock struct {
	createFn func(ctx context.Context, g *model.Game) error
	listFn   func(ctx context.Context, namePrefix string) ([]model.Game, error)
	byIDFn   func(ctx context.Context, id int64) (*model.Game, error)
	byNameFn func(ctx context.Context, name string) (*model.Game, error)
}

func (m *repoMock) Create(ctx context.Context, g *model.Game) error { return m.createFn(ctx, g) }
func (m *repoMock) List(ctx context.Context, p string) ([]model.Game, error) {
	return m.listFn(ctx, p)
}
func (m *repoMock) ByID(ctx context.Context, id int64) (*model.Game, error) { return m.byIDFn(ctx, id) }
func (m *repoMock) ByName(ctx context.Context, name string) (*model.Game, error) {
	if m.byNameFn == nil {
		return nil, nil
	}
	return m.byNameFn(ctx, name)
}

func input() model.GameInput {
	return model.GameInput{
		Name:        "Banco Imobiliário",
		Image:       "http://www.imagem.com.br/banco_imobiliario.jpg",
		StockTotal:  3,
		PricePerDay: decimal.NewFromInt(1500),
	}
}

func TestCreate_Validation(t *testing.T) {
	s := gamesvc.New(&repoMock{})
	mutations := []func(in *model.GameInput){
		func(in *model.GameInput) { in.Name = "" },
		func(in *model.GameInput) { in.Image = " " },
		func(in *model.GameInput) { in.StockTotal = 0 },
		func(in *model.GameInput) { in.StockTotal = -2 },
		func(in *model.GameInput) { in.PricePerDay = decimal.Zero },
		func(in *model.GameInput) { in.PricePerDay = decimal.NewFromInt(-1) },
	}
	for i, mutate := range mutations {
		in := input()
		mutate(&in)
		_, err := s.Create(context.Background(), in)
		require.Equal(t, apperr.ErrInvalidInput, apperr.Code(err), "case %d", i)
	}
}

func TestCreate_NameTaken(t *testing.T) {
	m := &repoMock{byNameFn: func(ctx context.Context, name string) (*model.Game, error) {
		return &model.Game{ID: 1, Name: name}, nil
	}}
	_, err := gamesvc.New(m).Create(context.Background(), input())
	require.Equal(t, apperr.ErrConflict, apperr.Code(err))
}

func TestCreate_UniqueViolationFallback(t *testing.T) {
	m := &repoMock{createFn: func(ctx context.Context, g *model.Game) error {
		return fmt.Errorf("insert game: %w", repository.ErrDuplicate)
	}}
	_, err := gamesvc.New(m).Create(context.Background(), input())
	require.Equal(t, apperr.ErrConflict, apperr.Code(err))
}

func TestCreate_Success(t *testing.T) {
	m := &repoMock{createFn: func(ctx context.Context, g *model.Game) error {
		if g.Name != "Banco Imobiliário" || g.StockTotal != 3 {
			return errors.New("bad args")
		}
		g.ID = 42
		return nil
	}}
	g, err := gamesvc.New(m).Create(context.Background(), input())
	require.NoError(t, err)
	require.Equal(t, int64(42), g.ID)
}

func TestDetailAndList(t *testing.T) {
	m := &repoMock{
		byIDFn: func(ctx context.Context, id int64) (*model.Game, error) { return nil, nil },
		listFn: func(ctx context.Context, p string) ([]model.Game, error) { return nil, errors.New("db down") },
	}
	s := gamesvc.New(m)

	_, err := s.Detail(context.Background(), 5)
	require.Equal(t, apperr.ErrNotFound, apperr.Code(err))

	_, err = s.List(context.Background(), "ban")
	require.Equal(t, apperr.ErrInternal, apperr.Code(err))
}
