package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwell/backend/internal/models"
	"github.com/spendwell/backend/internal/types"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	CategoryID uuid.UUID       `json:"categoryId" binding:"required" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the category the budget is for
	Amount     decimal.Decimal `json:"amount" example:"250"`                                                        // Spending ceiling for the month
	Month      int             `json:"month" binding:"required,min=1,max=12" example:"3"`                           // Month of the year, 1 is January
	Year       int             `json:"year" binding:"required,min=1000,max=9999" example:"2024"`                    // Four-digit year
}

func (editable BudgetEditable) model(userID uuid.UUID) models.Budget {
	return models.Budget{
		UserID:     userID,
		CategoryID: editable.CategoryID,
		Month:      types.NewMonth(editable.Year, time.Month(editable.Month)),
		Amount:     editable.Amount,
	}
}

type BudgetLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/budgets/efdfa542-5b5a-43be-a8c5-1bf4d7340fcd"` // The budget itself
}

type Budget struct {
	models.DefaultModel
	CategoryID uuid.UUID       `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the category the budget is for
	Amount     decimal.Decimal `json:"amount" example:"250"`                                      // Spending ceiling for the month
	Month      int             `json:"month" example:"3"`                                         // Month of the year, 1 is January
	Year       int             `json:"year" example:"2024"`                                       // Four-digit year
	Links      BudgetLinks     `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		CategoryID:   model.CategoryID,
		Amount:       model.Amount,
		Month:        int(model.Month.Month()),
		Year:         model.Month.Year(),
		Links: BudgetLinks{
			Self: fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
		},
	}
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`  // List of budgets
	Error *string  `json:"error"` // The error, if any occurred
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`  // Data for the budget
	Error *string `json:"error"` // The error, if any occurred
}
