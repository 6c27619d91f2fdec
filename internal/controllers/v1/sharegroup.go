package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendguard/backend/internal/httputil"
	"github.com/spendguard/backend/internal/models"
)

// RegisterShareGroupRoutes registers the routes for share groups with
// the RouterGroup that is passed.
func (co Controller) RegisterShareGroupRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsShareGroupList)
		r.POST("", co.CreateShareGroup)
	}

	// ShareGroup with ID
	{
		r.OPTIONS("/:id/members", OptionsShareGroupMembers)
		r.POST("/:id/members", co.AddShareGroupMember)

		r.OPTIONS("/:id/expenses", OptionsShareGroupExpenses)
		r.GET("/:id/expenses", co.GetSharedExpenses)
		r.POST("/:id/expenses", co.CreateSharedExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			ShareGroups
// @Success		204
// @Router			/v1/share-groups [options]
func OptionsShareGroupList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			ShareGroups
// @Success		204
// @Failure		400	{object}	httpError
// @Router			/v1/share-groups/{id}/members [options]
func OptionsShareGroupMembers(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			ShareGroups
// @Success		204
// @Failure		400	{object}	httpError
// @Router			/v1/share-groups/{id}/expenses [options]
func OptionsShareGroupExpenses(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPost(c)
}

// @Summary		Create share group
// @Description	Creates a new share group. The owner is created when unknown and becomes the first member
// @Tags			ShareGroups
// @Produce		json
// @Success		201			{object}	ShareGroupResponse
// @Failure		400			{object}	ShareGroupResponse
// @Failure		500			{object}	ShareGroupResponse
// @Param			shareGroup	body		ShareGroupEditable	true	"ShareGroup"
// @Router			/v1/share-groups [post]
func (co Controller) CreateShareGroup(c *gin.Context) {
	var editable ShareGroupEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShareGroupResponse{Error: &s})
		return
	}

	group, err := co.Tracker.CreateShareGroup(c.Request.Context(), editable.Name, editable.OwnerEmail)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShareGroupResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, ShareGroupResponse{Data: &group})
}

// @Summary		Add group member
// @Description	Adds a person to the share group. The person is created when unknown
// @Tags			ShareGroups
// @Produce		json
// @Success		201		{object}	ShareGroupMemberResponse
// @Failure		400		{object}	ShareGroupMemberResponse
// @Failure		404		{object}	ShareGroupMemberResponse
// @Failure		500		{object}	ShareGroupMemberResponse
// @Param			member	body		ShareGroupMemberEditable	true	"Member"
// @Router			/v1/share-groups/{id}/members [post]
func (co Controller) AddShareGroupMember(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShareGroupMemberResponse{Error: &s})
		return
	}

	var editable ShareGroupMemberEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShareGroupMemberResponse{Error: &s})
		return
	}

	member, err := co.Tracker.AddGroupMember(c.Request.Context(), uri.ID.UUID, editable.Email)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShareGroupMemberResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, ShareGroupMemberResponse{Data: &member})
}

// @Summary		Record shared expense
// @Description	Records an expense paid by one member on behalf of the group. The amount is split evenly across the members that exist at recording time
// @Tags			ShareGroups
// @Produce		json
// @Success		201		{object}	SharedExpenseResponse
// @Failure		400		{object}	SharedExpenseResponse
// @Failure		404		{object}	SharedExpenseResponse
// @Failure		500		{object}	SharedExpenseResponse
// @Param			expense	body		SharedExpenseEditable	true	"Expense"
// @Router			/v1/share-groups/{id}/expenses [post]
func (co Controller) CreateSharedExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SharedExpenseResponse{Error: &s})
		return
	}

	var editable SharedExpenseEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SharedExpenseResponse{Error: &s})
		return
	}

	date, err := httputil.DateFromString(editable.Date)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SharedExpenseResponse{Error: &s})
		return
	}

	expense, err := co.Tracker.RecordSharedExpense(c.Request.Context(), uri.ID.UUID, editable.PayerEmail, editable.Amount, date, editable.Note)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SharedExpenseResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, SharedExpenseResponse{Data: &expense})
}

// @Summary		Get shared expenses
// @Description	Returns the expenses of the share group, newest first
// @Tags			ShareGroups
// @Produce		json
// @Success		200	{object}	SharedExpenseListResponse
// @Failure		400	{object}	SharedExpenseListResponse
// @Failure		404	{object}	SharedExpenseListResponse
// @Failure		500	{object}	SharedExpenseListResponse
// @Router			/v1/share-groups/{id}/expenses [get]
func (co Controller) GetSharedExpenses(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SharedExpenseListResponse{Error: &s})
		return
	}

	var group models.ShareGroup
	err = models.DB.First(&group, "id = ?", uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SharedExpenseListResponse{Error: &s})
		return
	}

	expenses, err := models.GroupExpenses(models.DB, group.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SharedExpenseListResponse{Error: &s})
		return
	}

	if expenses == nil {
		expenses = make([]models.SharedExpense, 0)
	}

	c.JSON(http.StatusOK, SharedExpenseListResponse{Data: expenses})
}
