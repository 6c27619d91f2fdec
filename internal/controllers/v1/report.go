package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spendguard/backend/internal/httputil"
	"github.com/spendguard/backend/internal/models"
	"github.com/spendguard/backend/internal/report"
	"github.com/spendguard/backend/internal/types"
)

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func (co Controller) RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/spend-vs-budget", OptionsSpendVsBudget)
	r.GET("/spend-vs-budget", co.GetSpendVsBudget)

	r.OPTIONS("/monthly-total", OptionsMonthlyTotal)
	r.GET("/monthly-total", co.GetMonthlyTotal)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports/spend-vs-budget [options]
func OptionsSpendVsBudget(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports/monthly-total [options]
func OptionsMonthlyTotal(c *gin.Context) {
	httputil.OptionsGet(c)
}

// bindReportFilter validates the shared report query parameters and
// resolves the optional person email to an ID.
func bindReportFilter(c *gin.Context) (ReportQueryFilter, uuid.UUID, error) {
	var filter ReportQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		return filter, uuid.Nil, err
	}

	if filter.Month < 1 || filter.Month > 12 {
		return filter, uuid.Nil, httputil.ErrInvalidMonth
	}

	personID := uuid.Nil
	if filter.Person != "" {
		var person models.Person
		err := models.DB.Where("email = ?", filter.Person).First(&person).Error
		if err != nil {
			return filter, uuid.Nil, err
		}
		personID = person.ID
	}

	return filter, personID, nil
}

// @Summary		Spend vs budget report
// @Description	Compares spending against the configured budgets for all categories in a month. The budget field of a row is null when no budget is configured, which is different from a budget with amount zero
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	SpendVsBudgetResponse
// @Failure		400	{object}	SpendVsBudgetResponse
// @Failure		404	{object}	SpendVsBudgetResponse
// @Failure		500	{object}	SpendVsBudgetResponse
// @Router			/v1/reports/spend-vs-budget [get]
// @Param			year		query	int		true	"Year"
// @Param			month		query	int		true	"Month"
// @Param			person		query	string	false	"Email of the person, empty for all people"
// @Param			category	query	string	false	"Glob pattern matched against category names"
func (co Controller) GetSpendVsBudget(c *gin.Context) {
	filter, personID, err := bindReportFilter(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SpendVsBudgetResponse{Error: &s})
		return
	}

	rows, err := report.SpendVsBudget(models.DB, types.NewMonth(filter.Year, time.Month(filter.Month)), personID, filter.Category)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SpendVsBudgetResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, SpendVsBudgetResponse{Data: rows})
}

// @Summary		Monthly total report
// @Description	Sums all spending in a month, optionally scoped to one person
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	MonthlyTotalResponse
// @Failure		400	{object}	MonthlyTotalResponse
// @Failure		404	{object}	MonthlyTotalResponse
// @Failure		500	{object}	MonthlyTotalResponse
// @Router			/v1/reports/monthly-total [get]
// @Param			year	query	int		true	"Year"
// @Param			month	query	int		true	"Month"
// @Param			person	query	string	false	"Email of the person, empty for all people"
func (co Controller) GetMonthlyTotal(c *gin.Context) {
	filter, personID, err := bindReportFilter(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyTotalResponse{Error: &s})
		return
	}

	month := types.NewMonth(filter.Year, time.Month(filter.Month))
	total, err := report.MonthlyTotal(models.DB, month, personID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyTotalResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, MonthlyTotalResponse{Data: &MonthlyTotal{
		Month: month,
		Total: total,
	}})
}
