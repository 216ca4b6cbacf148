package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spendwell/backend/internal/types"
	"gorm.io/gorm"
)

// Expense is a single dated spending record attributed to a category.
// Expenses are created and deleted, never updated in place.
type Expense struct {
	DefaultModel
	UserID      uuid.UUID `gorm:"index"`
	User        User      `gorm:"constraint:OnDelete:CASCADE"`
	CategoryID  uuid.UUID `gorm:"index"`
	Category    Category  `gorm:"constraint:OnDelete:CASCADE"`
	Date        time.Time
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Description string
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)
	return e.checkIntegrity(tx)
}

// checkIntegrity verifies that the referenced category exists and
// belongs to the same user as the expense.
func (e *Expense) checkIntegrity(tx *gorm.DB) error {
	return tx.First(&Category{}, "id = ? AND user_id = ?", e.CategoryID, e.UserID).Error
}

// BeforeSave sets the timezone for the Date to UTC.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	e.Description = strings.TrimSpace(e.Description)

	return nil
}

func (e *Expense) AfterSave(_ *gorm.DB) error {
	if e.Amount.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}

// AfterFind updates the date to use UTC as timezone, not +0000.
func (e *Expense) AfterFind(tx *gorm.DB) error {
	err := e.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	e.Date = e.Date.In(time.UTC)
	return nil
}

// ExpenseSum returns the sum of all expenses of the user for the
// category within the month.
func ExpenseSum(userID, categoryID uuid.UUID, month types.Month) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := DB.Table("expenses").
		Select("SUM(amount)").
		Where("user_id = ? AND category_id = ? AND date >= ? AND date < ?", userID, categoryID, month.FirstDay(), month.Next().FirstDay()).
		Row().
		Scan(&sum)
	if err != nil {
		// Row results skip the error rewriting callbacks, map the
		// error here so that callers see a server error
		log.Error().Msgf("%T: %v", err, err.Error())
		return decimal.Zero, ErrGeneral
	}

	return sum.Decimal, nil
}
