package models_test

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendwell/backend/internal/models"
	"github.com/spendwell/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestMonthlyReportOneRowPerCategory() {
	user := suite.createTestUser(models.User{})

	first := suite.createTestCategory(models.Category{UserID: user.ID, Name: "First"})
	second := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Second"})
	third := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Third"})

	rows, err := models.MonthlyReport(user.ID, types.NewMonth(2024, time.March))
	require.Nil(suite.T(), err)
	require.Len(suite.T(), rows, 3)

	// Rows are in category creation order
	assert.Equal(suite.T(), first.ID, rows[0].Category.ID)
	assert.Equal(suite.T(), second.ID, rows[1].Category.ID)
	assert.Equal(suite.T(), third.ID, rows[2].Category.ID)
}

func (suite *TestSuiteStandard) TestMonthlyReportZeroDefaults() {
	user := suite.createTestUser(models.User{})
	suite.createTestCategory(models.Category{UserID: user.ID, Name: "Untouched"})

	rows, err := models.MonthlyReport(user.ID, types.NewMonth(2024, time.March))
	require.Nil(suite.T(), err)
	require.Len(suite.T(), rows, 1)

	assert.True(suite.T(), rows[0].Budget.IsZero())
	assert.True(suite.T(), rows[0].Spent.IsZero())
	assert.True(suite.T(), rows[0].Remaining.IsZero())
	assert.False(suite.T(), rows[0].OverBudget)
}

func (suite *TestSuiteStandard) TestMonthlyReport() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Food"})
	march := types.NewMonth(2024, time.March)

	suite.createTestBudget(models.Budget{
		UserID:     user.ID,
		CategoryID: category.ID,
		Month:      march,
		Amount:     decimal.NewFromFloat(100),
	})

	for _, amount := range []float64{40, 35.5} {
		suite.createTestExpense(models.Expense{
			UserID:     user.ID,
			CategoryID: category.ID,
			Date:       time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			Amount:     decimal.NewFromFloat(amount),
		})
	}

	rows, err := models.MonthlyReport(user.ID, march)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), rows, 1)

	assert.True(suite.T(), rows[0].Budget.Equal(decimal.NewFromFloat(100)), "budget is %s", rows[0].Budget)
	assert.True(suite.T(), rows[0].Spent.Equal(decimal.NewFromFloat(75.5)), "spent is %s", rows[0].Spent)
	assert.True(suite.T(), rows[0].Remaining.Equal(decimal.NewFromFloat(24.5)), "remaining is %s", rows[0].Remaining)
	assert.False(suite.T(), rows[0].OverBudget)
}

func (suite *TestSuiteStandard) TestMonthlyReportOverBudgetBoundary() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})
	march := types.NewMonth(2024, time.March)

	suite.createTestBudget(models.Budget{
		UserID:     user.ID,
		CategoryID: category.ID,
		Month:      march,
		Amount:     decimal.NewFromFloat(100),
	})

	// Spending exactly the budget leaves zero remaining and is not over
	suite.createTestExpense(models.Expense{
		UserID:     user.ID,
		CategoryID: category.ID,
		Date:       time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromFloat(100),
	})

	rows, err := models.MonthlyReport(user.ID, march)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), rows, 1)
	assert.True(suite.T(), rows[0].Remaining.IsZero())
	assert.False(suite.T(), rows[0].OverBudget)

	// One cent more tips the category over
	suite.createTestExpense(models.Expense{
		UserID:     user.ID,
		CategoryID: category.ID,
		Date:       time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromFloat(0.01),
	})

	rows, err = models.MonthlyReport(user.ID, march)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), rows, 1)
	assert.True(suite.T(), rows[0].Remaining.Equal(decimal.NewFromFloat(-0.01)), "remaining is %s", rows[0].Remaining)
	assert.True(suite.T(), rows[0].OverBudget)
}

func (suite *TestSuiteStandard) TestMonthlyReportIsolatedPerUser() {
	march := types.NewMonth(2024, time.March)

	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})

	other := suite.createTestUser(models.User{})
	otherCategory := suite.createTestCategory(models.Category{UserID: other.ID})
	suite.createTestExpense(models.Expense{
		UserID:     other.ID,
		CategoryID: otherCategory.ID,
		Date:       time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromFloat(9000),
	})

	rows, err := models.MonthlyReport(user.ID, march)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), rows, 1)
	assert.Equal(suite.T(), category.ID, rows[0].Category.ID)
	assert.True(suite.T(), rows[0].Spent.IsZero())
}

func (suite *TestSuiteStandard) TestMonthlyReportIgnoresOtherMonths() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})

	suite.createTestBudget(models.Budget{
		UserID:     user.ID,
		CategoryID: category.ID,
		Month:      types.NewMonth(2024, time.February),
		Amount:     decimal.NewFromFloat(500),
	})
	suite.createTestExpense(models.Expense{
		UserID:     user.ID,
		CategoryID: category.ID,
		Date:       time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromFloat(250),
	})

	rows, err := models.MonthlyReport(user.ID, types.NewMonth(2024, time.March))
	require.Nil(suite.T(), err)
	require.Len(suite.T(), rows, 1)

	assert.True(suite.T(), rows[0].Budget.IsZero())
	assert.True(suite.T(), rows[0].Spent.IsZero())
}

func (suite *TestSuiteStandard) TestClassifyBudgetStatus() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	// Without a budget, spending never classifies as over
	suite.createTestExpense(models.Expense{
		UserID:     user.ID,
		CategoryID: category.ID,
		Date:       date,
		Amount:     decimal.NewFromFloat(1000),
	})

	budgetStatus, err := models.ClassifyBudgetStatus(user.ID, category.ID, date)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), models.BudgetStatusNoBudget, budgetStatus)

	budget := models.Budget{
		UserID:     user.ID,
		CategoryID: category.ID,
		Month:      types.MonthOf(date),
		Amount:     decimal.NewFromFloat(1000),
	}
	require.Nil(suite.T(), models.SetBudget(&budget))

	// Spending exactly the budget is still within it
	budgetStatus, err = models.ClassifyBudgetStatus(user.ID, category.ID, date)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), models.BudgetStatusWithinBudget, budgetStatus)

	suite.createTestExpense(models.Expense{
		UserID:     user.ID,
		CategoryID: category.ID,
		Date:       date,
		Amount:     decimal.NewFromFloat(0.01),
	})

	budgetStatus, err = models.ClassifyBudgetStatus(user.ID, category.ID, date)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), models.BudgetStatusOverBudget, budgetStatus)
}

func (suite *TestSuiteStandard) TestClassifyBudgetStatusOtherMonth() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})

	budget := models.Budget{
		UserID:     user.ID,
		CategoryID: category.ID,
		Month:      types.NewMonth(2024, time.February),
		Amount:     decimal.NewFromFloat(10),
	}
	require.Nil(suite.T(), models.SetBudget(&budget))

	// The budget of February does not apply to March
	budgetStatus, err := models.ClassifyBudgetStatus(user.ID, category.ID, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), models.BudgetStatusNoBudget, budgetStatus)
}
