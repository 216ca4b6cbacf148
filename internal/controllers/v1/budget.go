package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spendwell/backend/internal/httputil"
	"github.com/spendwell/backend/internal/models"
	"github.com/spendwell/backend/internal/types"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetList)
		r.POST("", SetBudget)
	}

	// Budgets for a specific month
	{
		r.OPTIONS("/:year/:month", OptionsBudgetMonth)
		r.GET("/:year/:month", GetBudgets)
	}

	// Budget with ID
	//
	// The month listing binds :year first, so the detail route reuses
	// the :year parameter name for the ID
	{
		r.OPTIONS("/:year", OptionsBudgetDetail)
		r.DELETE("/:year", DeleteBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets/{year}/{month} [options]
func OptionsBudgetMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the budget"
// @Router			/v1/budgets/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	uri, err := bindBudgetID(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Budget{}, "id = ? AND user_id = ?", uri.ID.UUID, currentUser(c).ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsDelete(c)
}

// bindBudgetID binds the budget ID from the :year URI parameter of the
// detail routes.
func bindBudgetID(c *gin.Context) (URIID, error) {
	var uri struct {
		ID string `uri:"year" binding:"required"`
	}
	if err := c.ShouldBindUri(&uri); err != nil {
		return URIID{}, err
	}

	var id URIID
	if err := id.ID.UnmarshalParam(uri.ID); err != nil {
		return URIID{}, err
	}

	return id, nil
}

// @Summary		Set budget
// @Description	Sets the budget for a category and month. An existing budget for the same category and month is overwritten.
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets [post]
func SetBudget(c *gin.Context) {
	var editable BudgetEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{
			Error: &s,
		})
		return
	}

	budget := editable.model(currentUser(c).ID)
	err = models.SetBudget(&budget)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Get budgets
// @Description	Returns the budgets of the user for a specific month
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetListResponse
// @Failure		400		{object}	BudgetListResponse
// @Failure		500		{object}	BudgetListResponse
// @Param			year	path		int	true	"Four-digit year"
// @Param			month	path		int	true	"Month of the year, 1 is January"
// @Router			/v1/budgets/{year}/{month} [get]
func GetBudgets(c *gin.Context) {
	var uri URIYearMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := errMonthOutOfRange.Error()
		c.JSON(http.StatusBadRequest, BudgetListResponse{
			Error: &s,
		})
		return
	}

	var budgets []models.Budget
	err = models.DB.
		Where("user_id = ? AND month = ?", currentUser(c).ID, types.NewMonth(uri.Year, time.Month(uri.Month))).
		Order("created_at ASC, id ASC").
		Find(&budgets).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Budget, 0, len(budgets))
	for _, budget := range budgets {
		data = append(data, newBudget(c, budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: data})
}

// @Summary		Delete budget
// @Description	Deletes a budget
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the budget"
// @Router			/v1/budgets/{id} [delete]
func DeleteBudget(c *gin.Context) {
	uri, err := bindBudgetID(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, "id = ? AND user_id = ?", uri.ID.UUID, currentUser(c).ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&budget).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
