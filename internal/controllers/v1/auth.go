package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendwell/backend/internal/httputil"
	"github.com/spendwell/backend/internal/models"
)

// RegisterAuthRoutes registers the routes for registration, login and
// logout with the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/register", OptionsAuthPost)
		r.POST("/register", Register)
	}

	{
		r.OPTIONS("/login", OptionsAuthPost)
		r.POST("/login", Login)
	}

	// Deleting the session requires a valid credential
	{
		r.OPTIONS("/session", OptionsAuthSession)
		r.DELETE("/session", Authenticate(), Logout)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Authentication
// @Success		204
// @Router			/v1/auth/register [options]
func OptionsAuthPost(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Authentication
// @Success		204
// @Router			/v1/auth/session [options]
func OptionsAuthSession(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// @Summary		Register
// @Description	Creates a new user with a default category set and returns a credential for it
// @Tags			Authentication
// @Produce		json
// @Success		201		{object}	AuthResponse
// @Failure		400		{object}	AuthResponse
// @Failure		500		{object}	AuthResponse
// @Param			user	body		RegisterEditable	true	"User"
// @Router			/v1/auth/register [post]
func Register(c *gin.Context) {
	var editable RegisterEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, AuthResponse{
			Error: &s,
		})
		return
	}

	user := models.User{Email: editable.Email}
	err = user.SetPassword(editable.Password)
	if err != nil {
		s := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, AuthResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Create(&user).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AuthResponse{
			Error: &s,
		})
		return
	}

	// New users get the default categories so that the account is
	// usable right away
	err = models.CreateDefaultCategories(user.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AuthResponse{
			Error: &s,
		})
		return
	}

	session, err := models.NewSession(user.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AuthResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		Data: &AuthData{
			User:  newUser(user),
			Token: session.Token,
		},
	})
}

// @Summary		Login
// @Description	Verifies the credentials and returns a new bearer credential
// @Tags			Authentication
// @Produce		json
// @Success		200			{object}	AuthResponse
// @Failure		400			{object}	AuthResponse
// @Failure		401			{object}	AuthResponse
// @Failure		500			{object}	AuthResponse
// @Param			credentials	body		LoginEditable	true	"Credentials"
// @Router			/v1/auth/login [post]
func Login(c *gin.Context) {
	var editable LoginEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, AuthResponse{
			Error: &s,
		})
		return
	}

	var user models.User
	err = models.DB.First(&user, "email = ?", models.NormalizeEmail(editable.Email)).Error

	// An unknown email and a wrong password return the same error so
	// that login attempts do not leak which emails are registered
	if errors.Is(err, models.ErrResourceNotFound) || (err == nil && !user.CheckPassword(editable.Password)) {
		s := errInvalidCredentials.Error()
		c.JSON(http.StatusUnauthorized, AuthResponse{
			Error: &s,
		})
		return
	}

	if err != nil {
		s := err.Error()
		c.JSON(status(err), AuthResponse{
			Error: &s,
		})
		return
	}

	session, err := models.NewSession(user.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AuthResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Data: &AuthData{
			User:  newUser(user),
			Token: session.Token,
		},
	})
}

// @Summary		Logout
// @Description	Invalidates the bearer credential of this request
// @Tags			Authentication
// @Success		204
// @Failure		401	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/auth/session [delete]
func Logout(c *gin.Context) {
	err := models.DeleteSession(c.GetString(contextSessionToken))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
