package customersvc

import (
	"context"
	"errors"
	"strings"

	"boardcamp/model"
	"boardcamp/repository"
	"boardcamp/service/apperr"
	"boardcamp/util/dates"
	"boardcamp/util/validate"

	"github.com/go-playground/validator/v10"
)

type Customer = model.Customer

type Repo interface {
	Create(ctx context.Context, c *model.Customer) error
	Update(ctx context.Context, c *model.Customer) (int64, error)
	List(ctx context.Context, cpfPrefix string) ([]model.Customer, error)
	ByID(ctx context.Context, id int64) (*model.Customer, error)
	ByNationalID(ctx context.Context, cpf string) (*model.Customer, error)
}

type Service interface {
	ValidateForCreate(ctx context.Context, in model.CustomerInput) error
	ValidateForUpdate(ctx context.Context, in model.CustomerInput, existingID int64) error

	Create(ctx context.Context, in model.CustomerInput) (*Customer, error)
	Update(ctx context.Context, id int64, in model.CustomerInput) (*Customer, error)
	List(ctx context.Context, cpfPrefix string) ([]Customer, error)
	Detail(ctx context.Context, id int64) (*Customer, error)
}

type service struct {
	r Repo
	v *validator.Validate
}

func New(r Repo) Service { return &service{r: r, v: validate.New()} }

type rule struct {
	value string
	tag   string
	msg   string
}

// checkFields applies the field rules in order and stops at the first failure:
// presence of every field, then cpf, then phone, then birthday.
func (s *service) checkFields(in model.CustomerInput) error {
	rules := []rule{
		{strings.TrimSpace(in.Name), "required", "name is required"},
		{in.Phone, "required", "phone is required"},
		{in.NationalID, "required", "cpf is required"},
		{in.Birthday, "required", "birthday is required"},
		{in.NationalID, "digits,len=11", "cpf must have exactly 11 digits"},
		{in.Phone, "digits,min=10,max=11", "phone must have 10 or 11 digits"},
		{in.Birthday, "datetime=" + dates.Layout, "birthday must be a valid date (YYYY-MM-DD)"},
	}
	for _, ru := range rules {
		if err := s.v.Var(ru.value, ru.tag); err != nil {
			return apperr.Wrap(apperr.ErrInvalidInput, ru.msg, err)
		}
	}
	return nil
}

func (s *service) ValidateForCreate(ctx context.Context, in model.CustomerInput) error {
	if err := s.checkFields(in); err != nil {
		return err
	}
	other, err := s.r.ByNationalID(ctx, in.NationalID)
	if err != nil {
		return apperr.Internal("lookup cpf", err)
	}
	if other != nil {
		return apperr.New(apperr.ErrConflict, "cpf already registered")
	}
	return nil
}

func (s *service) ValidateForUpdate(ctx context.Context, in model.CustomerInput, existingID int64) error {
	if err := s.checkFields(in); err != nil {
		return err
	}
	other, err := s.r.ByNationalID(ctx, in.NationalID)
	if err != nil {
		return apperr.Internal("lookup cpf", err)
	}
	if other != nil && other.ID != existingID {
		return apperr.New(apperr.ErrConflict, "cpf already registered")
	}
	return nil
}

func (s *service) Create(ctx context.Context, in model.CustomerInput) (*Customer, error) {
	if err := s.ValidateForCreate(ctx, in); err != nil {
		return nil, err
	}
	c := toCustomer(in)
	if err := s.r.Create(ctx, &c); err != nil {
		return nil, mapStoreErr("insert customer", err)
	}
	return &c, nil
}

func (s *service) Update(ctx context.Context, id int64, in model.CustomerInput) (*Customer, error) {
	if id <= 0 {
		return nil, apperr.New(apperr.ErrInvalidInput, "invalid id")
	}
	if err := s.checkFields(in); err != nil {
		return nil, err
	}
	existing, err := s.r.ByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("load customer", err)
	}
	if existing == nil {
		return nil, apperr.New(apperr.ErrNotFound, "customer not found")
	}
	if err := s.ValidateForUpdate(ctx, in, id); err != nil {
		return nil, err
	}

	c := toCustomer(in)
	c.ID = id
	n, err := s.r.Update(ctx, &c)
	if err != nil {
		return nil, mapStoreErr("update customer", err)
	}
	if n == 0 {
		return nil, apperr.New(apperr.ErrNotFound, "customer not found")
	}
	return &c, nil
}

func (s *service) List(ctx context.Context, cpfPrefix string) ([]Customer, error) {
	out, err := s.r.List(ctx, strings.TrimSpace(cpfPrefix))
	if err != nil {
		return nil, apperr.Internal("list customers", err)
	}
	return out, nil
}

func (s *service) Detail(ctx context.Context, id int64) (*Customer, error) {
	if id <= 0 {
		return nil, apperr.New(apperr.ErrInvalidInput, "invalid id")
	}
	c, err := s.r.ByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("load customer", err)
	}
	if c == nil {
		return nil, apperr.New(apperr.ErrNotFound, "customer not found")
	}
	return c, nil
}

// toCustomer expects input that already passed checkFields.
func toCustomer(in model.CustomerInput) model.Customer {
	b, _ := dates.Parse(in.Birthday)
	return model.Customer{
		Name:       strings.TrimSpace(in.Name),
		Phone:      in.Phone,
		NationalID: in.NationalID,
		Birthday:   b,
	}
}

// mapStoreErr turns a unique violation that slipped past the fast-path check
// into a conflict.
func mapStoreErr(op string, err error) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return apperr.Wrap(apperr.ErrConflict, "cpf already registered", err)
	}
	return apperr.Internal(op, err)
}
