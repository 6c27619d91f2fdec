package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendguard/backend/internal/httputil"
	"github.com/spendguard/backend/internal/models"
)

// RegisterPersonRoutes registers the routes for people with
// the RouterGroup that is passed.
func (co Controller) RegisterPersonRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsPersonList)
		r.GET("", co.GetPeople)
		r.POST("", co.CreatePerson)
	}

	// Person with ID
	{
		r.OPTIONS("/:id", OptionsPersonDetail)
		r.GET("/:id", co.GetPerson)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			People
// @Success		204
// @Router			/v1/people [options]
func OptionsPersonList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			People
// @Success		204
// @Failure		400	{object}	httpError
// @Router			/v1/people/{id} [options]
func OptionsPersonDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Create person
// @Description	Creates a new person
// @Tags			People
// @Produce		json
// @Success		201		{object}	PersonResponse
// @Failure		400		{object}	PersonResponse
// @Failure		500		{object}	PersonResponse
// @Param			person	body		PersonEditable	true	"Person"
// @Router			/v1/people [post]
func (co Controller) CreatePerson(c *gin.Context) {
	var editable PersonEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PersonResponse{Error: &s})
		return
	}

	person := editable.model()
	err = models.DB.Create(&person).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PersonResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, PersonResponse{Data: &person})
}

// @Summary		Get people
// @Description	Returns a list of people, ordered by email
// @Tags			People
// @Produce		json
// @Success		200	{object}	PersonListResponse
// @Failure		500	{object}	PersonListResponse
// @Router			/v1/people [get]
func (co Controller) GetPeople(c *gin.Context) {
	var people []models.Person
	err := models.DB.Order("email ASC").Find(&people).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PersonListResponse{Error: &s})
		return
	}

	if people == nil {
		people = make([]models.Person, 0)
	}

	c.JSON(http.StatusOK, PersonListResponse{Data: people})
}

// @Summary		Get person
// @Description	Returns a specific person
// @Tags			People
// @Produce		json
// @Success		200	{object}	PersonResponse
// @Failure		400	{object}	PersonResponse
// @Failure		404	{object}	PersonResponse
// @Failure		500	{object}	PersonResponse
// @Router			/v1/people/{id} [get]
func (co Controller) GetPerson(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PersonResponse{Error: &s})
		return
	}

	var person models.Person
	err = models.DB.First(&person, "id = ?", uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PersonResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, PersonResponse{Data: &person})
}
