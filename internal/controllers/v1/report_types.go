package v1

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwell/backend/internal/models"
)

// ReportCategory identifies the category a report row is about.
type ReportCategory struct {
	ID    uuid.UUID `json:"id" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the category
	Name  string    `json:"name" example:"Groceries"`                          // Name of the category
	Color string    `json:"color" example:"#3B82F6"`                           // Display color of the category
}

// ReportRow is the budget-versus-spend summary for one category.
type ReportRow struct {
	Category     ReportCategory  `json:"category"`
	Budget       decimal.Decimal `json:"budget" example:"250"`        // Budgeted amount, 0 if no budget is set
	Spent        decimal.Decimal `json:"spent" example:"117.61"`      // Sum of the expenses in the month
	Remaining    decimal.Decimal `json:"remaining" example:"132.39"`  // Budget minus spent, negative when over budget
	IsOverBudget bool            `json:"isOverBudget" example:"false"` // Whether spending exceeds the budget
}

func newReportRow(row models.ReportRow) ReportRow {
	return ReportRow{
		Category: ReportCategory{
			ID:    row.Category.ID,
			Name:  row.Category.Name,
			Color: row.Category.Color,
		},
		Budget:       row.Budget,
		Spent:        row.Spent,
		Remaining:    row.Remaining,
		IsOverBudget: row.OverBudget,
	}
}

type ReportResponse struct {
	Data  []ReportRow `json:"data"`  // One row per category of the user
	Error *string     `json:"error"` // The error, if any occurred
}
