package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	v1 "github.com/spendwell/backend/internal/controllers/v1"
	"github.com/spendwell/backend/internal/models"
	"github.com/spendwell/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExpenseCreate() {
	user := registerTestUser(suite.T())
	category := createTestCategory(suite.T(), user.Token, v1.CategoryEditable{})

	expense := createTestExpense(suite.T(), user.Token, v1.ExpenseEditable{
		CategoryID:  category.Data.ID,
		Amount:      decimal.NewFromFloat(14.5),
		Date:        time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC),
		Description: "Lunch",
	})

	require.NotNil(suite.T(), expense.Data)
	assert.Equal(suite.T(), "Lunch", expense.Data.Description)
	assert.True(suite.T(), expense.Data.Amount.Equal(decimal.NewFromFloat(14.5)))

	// No budget is set for the category
	assert.Equal(suite.T(), models.BudgetStatusNoBudget, expense.Data.BudgetStatus)
}

// TestExpenseCreateBudgetStatus verifies that logging an expense reports
// the budget status resulting from the expense itself.
func (suite *TestSuiteStandard) TestExpenseCreateBudgetStatus() {
	user := registerTestUser(suite.T())
	category := createTestCategory(suite.T(), user.Token, v1.CategoryEditable{})

	setTestBudget(suite.T(), user.Token, v1.BudgetEditable{
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromFloat(100),
		Month:      3,
		Year:       2024,
	})

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	// Spending exactly the budget is still within it
	expense := createTestExpense(suite.T(), user.Token, v1.ExpenseEditable{
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromFloat(100),
		Date:       date,
	})
	assert.Equal(suite.T(), models.BudgetStatusWithinBudget, expense.Data.BudgetStatus)

	// The next cent is over budget, the expense is still recorded
	expense = createTestExpense(suite.T(), user.Token, v1.ExpenseEditable{
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromFloat(0.01),
		Date:       date,
	})
	assert.Equal(suite.T(), models.BudgetStatusOverBudget, expense.Data.BudgetStatus)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses", "", authHeaders(user.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 2)
}

func (suite *TestSuiteStandard) TestExpenseCreateInvalid() {
	user := registerTestUser(suite.T())
	category := createTestCategory(suite.T(), user.Token, v1.CategoryEditable{})

	tests := []struct {
		name   string
		body   v1.ExpenseEditable
		status int
	}{
		{"Unknown category", v1.ExpenseEditable{CategoryID: uuid.New(), Amount: decimal.NewFromFloat(10)}, http.StatusNotFound},
		{"Missing category", v1.ExpenseEditable{Amount: decimal.NewFromFloat(10)}, http.StatusBadRequest},
		{"Negative amount", v1.ExpenseEditable{CategoryID: category.Data.ID, Amount: decimal.NewFromFloat(-10)}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			createTestExpense(t, user.Token, tt.body, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesGetFilter() {
	user := registerTestUser(suite.T())
	food := createTestCategory(suite.T(), user.Token, v1.CategoryEditable{Name: "Food"})
	travel := createTestCategory(suite.T(), user.Token, v1.CategoryEditable{Name: "Trips"})

	createTestExpense(suite.T(), user.Token, v1.ExpenseEditable{
		CategoryID: food.Data.ID,
		Amount:     decimal.NewFromFloat(10),
		Date:       time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	})
	createTestExpense(suite.T(), user.Token, v1.ExpenseEditable{
		CategoryID: food.Data.ID,
		Amount:     decimal.NewFromFloat(20),
		Date:       time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC),
	})
	createTestExpense(suite.T(), user.Token, v1.ExpenseEditable{
		CategoryID: travel.Data.ID,
		Amount:     decimal.NewFromFloat(30),
		Date:       time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
	})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"No filter", "", 3},
		{"By category", fmt.Sprintf("category=%s", food.Data.ID), 2},
		{"By month", "month=3&year=2024", 2},
		{"By category and month", fmt.Sprintf("category=%s&month=3&year=2024", food.Data.ID), 1},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=2", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?%s", tt.query), "", authHeaders(user.Token))
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ExpenseListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

// TestExpensesGetFilterIncomplete verifies that month and year can only
// be used together.
func (suite *TestSuiteStandard) TestExpensesGetFilterIncomplete() {
	user := registerTestUser(suite.T())

	tests := []string{
		"http://example.com/v1/expenses?month=3",
		"http://example.com/v1/expenses?year=2024",
		"http://example.com/v1/expenses?month=13&year=2024",
	}

	for _, url := range tests {
		suite.T().Run(url, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, url, "", authHeaders(user.Token))
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesSortedByDate() {
	user := registerTestUser(suite.T())
	category := createTestCategory(suite.T(), user.Token, v1.CategoryEditable{})

	older := createTestExpense(suite.T(), user.Token, v1.ExpenseEditable{
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromFloat(1),
		Date:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	newer := createTestExpense(suite.T(), user.Token, v1.ExpenseEditable{
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromFloat(2),
		Date:       time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses", "", authHeaders(user.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	require.Len(suite.T(), list.Data, 2)

	// Newest first
	assert.Equal(suite.T(), newer.Data.ID, list.Data[0].ID)
	assert.Equal(suite.T(), older.Data.ID, list.Data[1].ID)
}

func (suite *TestSuiteStandard) TestExpenseDelete() {
	user := registerTestUser(suite.T())
	category := createTestCategory(suite.T(), user.Token, v1.CategoryEditable{})

	expense := createTestExpense(suite.T(), user.Token, v1.ExpenseEditable{
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromFloat(10),
	})

	r := test.Request(suite.T(), http.MethodDelete, expense.Data.Links.Self, "", authHeaders(user.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, expense.Data.Links.Self, "", authHeaders(user.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestExpenseImmutable verifies that expenses cannot be updated in place.
func (suite *TestSuiteStandard) TestExpenseImmutable() {
	user := registerTestUser(suite.T())
	category := createTestCategory(suite.T(), user.Token, v1.CategoryEditable{})

	expense := createTestExpense(suite.T(), user.Token, v1.ExpenseEditable{
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromFloat(10),
	})

	r := test.Request(suite.T(), http.MethodPatch, expense.Data.Links.Self, map[string]any{
		"amount": 20,
	}, authHeaders(user.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusMethodNotAllowed)

	r = test.Request(suite.T(), http.MethodOptions, expense.Data.Links.Self, "", authHeaders(user.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestExpenseIsolation() {
	owner := registerTestUser(suite.T())
	category := createTestCategory(suite.T(), owner.Token, v1.CategoryEditable{})
	expense := createTestExpense(suite.T(), owner.Token, v1.ExpenseEditable{
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromFloat(10),
	})

	other := registerTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodGet, expense.Data.Links.Self, "", authHeaders(other.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, expense.Data.Links.Self, "", authHeaders(other.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// Logging an expense against the category of another user fails
	createTestExpense(suite.T(), other.Token, v1.ExpenseEditable{
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromFloat(10),
	}, http.StatusNotFound)
}
