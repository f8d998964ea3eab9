package customerrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"boardcamp/model"
	"boardcamp/repository"
	"boardcamp/util/database"

	"github.com/jackc/pgx/v5"
)

type Repo interface {
	Create(ctx context.Context, c *model.Customer) error
	Update(ctx context.Context, c *model.Customer) (int64, error)
	List(ctx context.Context, cpfPrefix string) ([]model.Customer, error)
	ByID(ctx context.Context, id int64) (*model.Customer, error)
	ByNationalID(ctx context.Context, cpf string) (*model.Customer, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

const columns = `id, name, phone, cpf, birthday`

func (r *repo) Create(ctx context.Context, c *model.Customer) error {
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO customers (name, phone, cpf, birthday)
		VALUES ($1,$2,$3,$4)
		RETURNING id`,
		c.Name, c.Phone, c.NationalID, c.Birthday,
	).Scan(&c.ID)
	if database.IsUniqueViolation(err) {
		return fmt.Errorf("insert customer: %w", repository.ErrDuplicate)
	}
	return err
}

func (r *repo) Update(ctx context.Context, c *model.Customer) (int64, error) {
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE customers
		SET name=$2, phone=$3, cpf=$4, birthday=$5
		WHERE id=$1`,
		c.ID, c.Name, c.Phone, c.NationalID, c.Birthday,
	)
	if database.IsUniqueViolation(err) {
		return 0, fmt.Errorf("update customer: %w", repository.ErrDuplicate)
	}
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *repo) List(ctx context.Context, cpfPrefix string) ([]model.Customer, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT `+columns+`
		FROM customers
		WHERE cpf LIKE $1 ESCAPE '\'
		ORDER BY id`, repository.LikePrefix(cpfPrefix))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Customer{}
	for rows.Next() {
		c, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Customer, error) {
	return one(r.db.Pool.QueryRow(ctx, `SELECT `+columns+` FROM customers WHERE id=$1`, id))
}

func (r *repo) ByNationalID(ctx context.Context, cpf string) (*model.Customer, error) {
	return one(r.db.Pool.QueryRow(ctx, `SELECT `+columns+` FROM customers WHERE cpf=$1`, cpf))
}

// one maps a missing row to (nil, nil).
func one(row pgx.Row) (*model.Customer, error) {
	c, err := scan(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return c, err
}

func scan(row pgx.Row) (*model.Customer, error) {
	var c model.Customer
	var birthday time.Time
	if err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.NationalID, &birthday); err != nil {
		return nil, err
	}
	c.Birthday = birthday.UTC()
	return &c, nil
}
