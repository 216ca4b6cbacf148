package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwell/backend/internal/models"
	ez_uuid "github.com/spendwell/backend/internal/uuid"
)

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	CategoryID  uuid.UUID       `json:"categoryId" binding:"required" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the category the expense belongs to
	Amount      decimal.Decimal `json:"amount" example:"14.50"`                                                      // Amount spent
	Date        time.Time       `json:"date" example:"2024-03-17T00:00:00Z"`                                         // Date of the expense. Defaults to the current time.
	Description string          `json:"description" example:"Lunch" default:""`                                      // Optional description
}

func (editable ExpenseEditable) model(userID uuid.UUID) models.Expense {
	return models.Expense{
		UserID:      userID,
		CategoryID:  editable.CategoryID,
		Amount:      editable.Amount,
		Date:        editable.Date,
		Description: editable.Description,
	}
}

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/expenses/d3c876d2-d420-4b5c-b5bd-1cb98cd5a82d"` // The expense itself
}

type Expense struct {
	models.DefaultModel
	CategoryID  uuid.UUID       `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the category the expense belongs to
	Amount      decimal.Decimal `json:"amount" example:"14.50"`                                    // Amount spent
	Date        time.Time       `json:"date" example:"2024-03-17T00:00:00Z"`                       // Date of the expense
	Description string          `json:"description" example:"Lunch"`                               // Optional description
	Links       ExpenseLinks    `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	url := c.GetString(string(models.DBContextURL))

	return Expense{
		DefaultModel: model.DefaultModel,
		CategoryID:   model.CategoryID,
		Amount:       model.Amount,
		Date:         model.Date,
		Description:  model.Description,
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
		},
	}
}

// CreatedExpense is the response data for a newly logged expense. The
// budget status is advisory: an expense that puts the category over
// its budget is still recorded.
type CreatedExpense struct {
	Expense
	BudgetStatus models.BudgetStatus `json:"budgetStatus" example:"within_budget" enums:"no_budget,within_budget,over_budget"`
}

type ExpenseCreateResponse struct {
	Data  *CreatedExpense `json:"data"`  // The created expense with its budget status
	Error *string         `json:"error"` // The error, if any occurred
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`       // List of expenses
	Error      *string     `json:"error"`      // The error, if any occurred
	Pagination *Pagination `json:"pagination"` // Pagination information
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`  // Data for the expense
	Error *string  `json:"error"` // The error, if any occurred
}

type ExpenseQueryFilter struct {
	CategoryID ez_uuid.UUID `form:"category"`                   // By ID of the category
	Month      int          `form:"month" filterField:"false"`  // By month, together with year
	Year       int          `form:"year" filterField:"false"`   // By year, together with month
	Offset     uint         `form:"offset" filterField:"false"` // The offset of the first Expense returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`  // Maximum number of Expenses to return. Defaults to 50.
}
