package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwell/backend/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Budget is the spending ceiling for one category in one calendar
// month. There is at most one budget per (user, category, month), the
// composite unique index enforces this.
type Budget struct {
	DefaultModel
	UserID     uuid.UUID       `gorm:"uniqueIndex:budget_category_month"`
	User       User            `gorm:"constraint:OnDelete:CASCADE"`
	CategoryID uuid.UUID       `gorm:"uniqueIndex:budget_category_month"`
	Category   Category        `gorm:"constraint:OnDelete:CASCADE"`
	Month      types.Month     `gorm:"uniqueIndex:budget_category_month"`
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	_ = b.DefaultModel.BeforeCreate(tx)
	return b.checkIntegrity(tx)
}

// checkIntegrity verifies that the referenced category exists and
// belongs to the same user as the budget.
func (b *Budget) checkIntegrity(tx *gorm.DB) error {
	return tx.First(&Category{}, "id = ? AND user_id = ?", b.CategoryID, b.UserID).Error
}

func (b *Budget) AfterSave(_ *gorm.DB) error {
	if b.Amount.IsNegative() {
		return ErrBudgetAmountNegative
	}

	return nil
}

// SetBudget writes the budget with insert-or-update semantics.
//
// Setting a budget for a (category, month) that already has one
// overwrites the amount instead of creating a second row. The upsert
// is a single atomic statement, concurrent calls for the same key
// cannot interleave a read-modify-write.
func SetBudget(b *Budget) error {
	err := DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "category_id"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(b).Error
	if err != nil {
		return err
	}

	// Re-read the row into a fresh value: on a conflict the ID that
	// BeforeCreate generated is discarded in favor of the existing one,
	// so b must not constrain the query.
	var saved Budget
	err = DB.First(&saved, "user_id = ? AND category_id = ? AND month = ?", b.UserID, b.CategoryID, b.Month).Error
	if err != nil {
		return err
	}

	*b = saved
	return nil
}
