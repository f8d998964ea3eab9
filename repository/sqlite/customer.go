package sqlite

import (
	"context"
	"errors"

	"boardcamp/model"
	"boardcamp/repository"
	customerrepo "boardcamp/repository/customer"

	"gorm.io/gorm"
)

type customers struct{ db *gorm.DB }

func NewCustomerRepo(db *gorm.DB) customerrepo.Repo { return &customers{db: db} }

func (r *customers) Create(ctx context.Context, c *model.Customer) error {
	rec := toCustomerRecord(c)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return translate("insert customer", err)
	}
	c.ID = rec.ID
	return nil
}

func (r *customers) Update(ctx context.Context, c *model.Customer) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&customerRecord{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"name":     c.Name,
			"phone":    c.Phone,
			"cpf":      c.NationalID,
			"birthday": c.Birthday,
		})
	if res.Error != nil {
		return 0, translate("update customer", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *customers) List(ctx context.Context, cpfPrefix string) ([]model.Customer, error) {
	var recs []customerRecord
	if err := r.db.WithContext(ctx).Where(`cpf LIKE ? ESCAPE '\'`, repository.LikePrefix(cpfPrefix)).Order("id").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]model.Customer, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toModel())
	}
	return out, nil
}

func (r *customers) ByID(ctx context.Context, id int64) (*model.Customer, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *customers) ByNationalID(ctx context.Context, cpf string) (*model.Customer, error) {
	return r.first(ctx, "cpf = ?", cpf)
}

func (r *customers) first(ctx context.Context, cond string, arg any) (*model.Customer, error) {
	var rec customerRecord
	err := r.db.WithContext(ctx).Where(cond, arg).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c := rec.toModel()
	return &c, nil
}

func toCustomerRecord(c *model.Customer) customerRecord {
	return customerRecord{
		ID:       c.ID,
		Name:     c.Name,
		Phone:    c.Phone,
		CPF:      c.NationalID,
		Birthday: c.Birthday,
	}
}

func (rec customerRecord) toModel() model.Customer {
	return model.Customer{
		ID:         rec.ID,
		Name:       rec.Name,
		Phone:      rec.Phone,
		NationalID: rec.CPF,
		Birthday:   rec.Birthday.UTC(),
	}
}
