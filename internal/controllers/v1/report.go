package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spendwell/backend/internal/httputil"
	"github.com/spendwell/backend/internal/models"
	"github.com/spendwell/backend/internal/types"
)

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:year/:month", OptionsReport)
	r.GET("/:year/:month", GetReport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports/{year}/{month} [options]
func OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Monthly report
// @Description	Returns the budget-versus-spend summary for every category the user owns, in category creation order
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	ReportResponse
// @Failure		400		{object}	ReportResponse
// @Failure		500		{object}	ReportResponse
// @Param			year	path		int	true	"Four-digit year"
// @Param			month	path		int	true	"Month of the year, 1 is January"
// @Router			/v1/reports/{year}/{month} [get]
func GetReport(c *gin.Context) {
	var uri URIYearMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := errMonthOutOfRange.Error()
		c.JSON(http.StatusBadRequest, ReportResponse{
			Error: &s,
		})
		return
	}

	rows, err := models.MonthlyReport(currentUser(c).ID, types.NewMonth(uri.Year, time.Month(uri.Month)))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReportResponse{
			Error: &s,
		})
		return
	}

	data := make([]ReportRow, 0, len(rows))
	for _, row := range rows {
		data = append(data, newReportRow(row))
	}

	c.JSON(http.StatusOK, ReportResponse{Data: data})
}
