package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spendguard/backend/internal/httputil"
	"github.com/spendguard/backend/internal/models"
	"github.com/spendguard/backend/internal/types"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBudgetList)
	r.GET("", co.GetBudget)
	r.POST("", co.SetBudget)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Set budget
// @Description	Creates the budget for a (category, person, month) scope or replaces its amount and alert threshold when it already exists
// @Tags			Budgets
// @Produce		json
// @Success		201		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets [post]
func (co Controller) SetBudget(c *gin.Context) {
	var editable BudgetEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	if editable.Month < 1 || editable.Month > 12 {
		s := httputil.ErrInvalidMonth.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{Error: &s})
		return
	}

	budget, err := co.Tracker.SetBudget(c.Request.Context(), editable.input())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, BudgetResponse{Data: &budget})
}

// @Summary		Get budget
// @Description	Returns the budget for a (category, person, month) scope. The data field is null when no budget is configured, which is different from a budget with amount zero
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Param			category	query	string	true	"Name of the category"
// @Param			person		query	string	false	"Email of the person, empty for the global budget"
// @Param			year		query	int		true	"Year"
// @Param			month		query	int		true	"Month"
// @Router			/v1/budgets [get]
func (co Controller) GetBudget(c *gin.Context) {
	var filter BudgetQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{Error: &s})
		return
	}

	if filter.Month < 1 || filter.Month > 12 {
		s := httputil.ErrInvalidMonth.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{Error: &s})
		return
	}

	var category models.Category
	err := models.DB.Where("name = ?", filter.Category).First(&category).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	personID := uuid.Nil
	if filter.Person != "" {
		var person models.Person
		err = models.DB.Where("email = ?", filter.Person).First(&person).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), BudgetResponse{Error: &s})
			return
		}
		personID = person.ID
	}

	budget, err := models.FindBudget(models.DB, category.ID, personID, types.NewMonth(filter.Year, time.Month(filter.Month)))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: budget})
}
