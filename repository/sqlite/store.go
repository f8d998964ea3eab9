// Package sqlite implements the customer, game and rental repositories on
// SQLite through gorm. It backs local runs and the HTTP tests.
package sqlite

import (
	"errors"
	"fmt"
	"time"

	"boardcamp/repository"

	"gorm.io/gorm"
)

type customerRecord struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	Name     string    `gorm:"not null"`
	Phone    string    `gorm:"not null"`
	CPF      string    `gorm:"column:cpf;size:11;uniqueIndex;not null"`
	Birthday time.Time `gorm:"not null"`
}

func (customerRecord) TableName() string { return "customers" }

type gameRecord struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"uniqueIndex;not null"`
	Image       string `gorm:"not null"`
	StockTotal  int64  `gorm:"not null"`
	PricePerDay string `gorm:"type:text;not null"`
}

func (gameRecord) TableName() string { return "games" }

type rentalRecord struct {
	ID            int64      `gorm:"primaryKey;autoIncrement"`
	CustomerID    int64      `gorm:"index;not null"`
	GameID        int64      `gorm:"index;not null"`
	RentDate      time.Time  `gorm:"not null"`
	DaysRented    int64      `gorm:"not null"`
	ReturnDate    *time.Time `gorm:"index"`
	OriginalPrice string     `gorm:"type:text;not null"`
	DelayFee      *string    `gorm:"type:text"`
}

func (rentalRecord) TableName() string { return "rentals" }

// Migrate creates or updates the tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&customerRecord{}, &gameRecord{}, &rentalRecord{}); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

func translate(op string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%s: %w", op, repository.ErrDuplicate)
	}
	return err
}
