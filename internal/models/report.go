package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwell/backend/internal/types"
)

// BudgetStatus classifies the spending of a category in a month
// relative to its budget.
type BudgetStatus string

const (
	BudgetStatusNoBudget     BudgetStatus = "no_budget"
	BudgetStatusWithinBudget BudgetStatus = "within_budget"
	BudgetStatusOverBudget   BudgetStatus = "over_budget"
)

// ReportRow is the per-category summary of budget vs. actual spend for
// one month. Rows are computed on demand and never persisted.
type ReportRow struct {
	Category   Category
	Budget     decimal.Decimal
	Spent      decimal.Decimal
	Remaining  decimal.Decimal
	OverBudget bool
}

// MonthlyReport computes one ReportRow for every category the user
// owns, in category creation order.
//
// The report is category driven: categories without a budget or
// without expenses in the month get a row with zero values. Remaining
// is budget minus spent, a category is over budget only when remaining
// is strictly negative.
func MonthlyReport(userID uuid.UUID, month types.Month) ([]ReportRow, error) {
	var categories []Category
	err := DB.
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}

	var budgets []Budget
	err = DB.
		Where("user_id = ? AND month = ?", userID, month).
		Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	type categorySpend struct {
		CategoryID uuid.UUID
		Spent      decimal.NullDecimal
	}

	var spends []categorySpend
	err = DB.Table("expenses").
		Select("category_id, SUM(amount) AS spent").
		Where("user_id = ? AND date >= ? AND date < ?", userID, month.FirstDay(), month.Next().FirstDay()).
		Group("category_id").
		Scan(&spends).Error
	if err != nil {
		return nil, err
	}

	budgetByCategory := make(map[uuid.UUID]decimal.Decimal, len(budgets))
	for _, budget := range budgets {
		budgetByCategory[budget.CategoryID] = budget.Amount
	}

	spentByCategory := make(map[uuid.UUID]decimal.Decimal, len(spends))
	for _, spend := range spends {
		spentByCategory[spend.CategoryID] = spend.Spent.Decimal
	}

	rows := make([]ReportRow, 0, len(categories))
	for _, category := range categories {
		// Missing map entries default to a zero decimal
		budget := budgetByCategory[category.ID]
		spent := spentByCategory[category.ID]
		remaining := budget.Sub(spent)

		rows = append(rows, ReportRow{
			Category:   category,
			Budget:     budget,
			Spent:      spent,
			Remaining:  remaining,
			OverBudget: remaining.IsNegative(),
		})
	}

	return rows, nil
}

// ClassifyBudgetStatus reports how the total spend of a category in
// the month of date compares to the budget for that month.
//
// The total is always recomputed from all expenses in the month. An
// incremental counter could drift from the source of truth when
// expenses are deleted or budgets change after the fact.
func ClassifyBudgetStatus(userID, categoryID uuid.UUID, date time.Time) (BudgetStatus, error) {
	month := types.MonthOf(date)

	var budget Budget
	err := DB.First(&budget, "user_id = ? AND category_id = ? AND month = ?", userID, categoryID, month).Error
	if errors.Is(err, ErrResourceNotFound) {
		return BudgetStatusNoBudget, nil
	}
	if err != nil {
		return "", err
	}

	spent, err := ExpenseSum(userID, categoryID, month)
	if err != nil {
		return "", err
	}

	// Spending exactly the budget is still within it
	if spent.LessThanOrEqual(budget.Amount) {
		return BudgetStatusWithinBudget, nil
	}

	return BudgetStatusOverBudget, nil
}
