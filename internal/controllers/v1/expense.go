package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendguard/backend/internal/httputil"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExpenseList)
	r.POST("", co.CreateExpense)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Record expense
// @Description	Records a new expense, resolves the person and category by their natural keys and evaluates the budget for the expense's month
// @Tags			Expenses
// @Produce		json
// @Success		201			{object}	ExpenseResponse
// @Failure		400			{object}	ExpenseResponse
// @Failure		500			{object}	ExpenseResponse
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var editable ExpenseEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &s})
		return
	}

	input := editable.input()

	// A malformed date is an error. Only an absent date defaults to
	// today.
	input.Date, err = httputil.DateFromString(editable.Date)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &s})
		return
	}

	result, err := co.Tracker.RecordExpense(c.Request.Context(), input)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &s})
		return
	}

	data := newExpense(result)
	c.JSON(http.StatusCreated, ExpenseResponse{Data: &data})
}
