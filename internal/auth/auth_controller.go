package auth

import (
	"context"
	"ghost-theme-storefront/internal/api"
	"ghost-theme-storefront/internal/config"
	"ghost-theme-storefront/internal/environment"
	"ghost-theme-storefront/internal/middlewares"
	"ghost-theme-storefront/internal/models"
	"github.com/gin-gonic/gin"
	"io"
	"net/http"
)

// Api defines the authentication endpoints for page administration.
type Api interface {

	// Login validates admin credentials and issues a token
	Login(c *gin.Context)

	// CreatePasswordHash creates a hashed password which can then be used in the configuration
	CreatePasswordHash(c *gin.Context)
}

// Controller wires environment dependencies with authentication service methods.
// It fulfills the Api interface and delegates business logic to AuthService.
type Controller struct {
	*environment.Env
	*AuthService
}

// ensure Controller implements Api
var _ Api = &Controller{}

// Login validates admin credentials and issues a signed token.
//
// @ID login
// @Summary Issue authentication token
// @Tags auth
// @Router /auth/login [post]
// @Success 200 {object} api.RestJsonResponse{data=string}
// @Failure 401 {object} api.RestJsonErrorResponse
// @Failure 403 {object} api.RestJsonErrorResponse
func (ac *Controller) Login(c *gin.Context) {
	key := config.SigningKey()
	if len(key) == 0 {
		c.AbortWithStatusJSON(http.StatusForbidden, api.NewErrorResponse("Authentication is disabled"))
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		ac.LogErrorf(nil, "Error reading login info: %v", err)
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, api.NewErrorResponse("Error reading login info"))
		return
	}

	request := api.GenericRequest{}
	err = request.Load(body)
	if err != nil {
		ac.LogErrorf(nil, "Error loading request data: %v", err)
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, api.NewErrorResponse("Error reading login info"))
		return
	}

	user := models.User{}
	err = request.DecodeDataTo(&user)
	if err != nil {
		ac.LogErrorf(nil, "Error loading user data: %v", err)
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, api.NewErrorResponse("Error reading user info"))
		return
	}
	user.Prepare()
	err = user.Validate()
	if err != nil {
		ac.LogErrorf(nil, "Error validating user: %v", err)
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, api.NewErrorResponsef("Error validating User: %v", err))
		return
	}

	err = ac.DoLogin(&user)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, api.NewErrorResponse("Login not successful"))
		return
	}

	//issue token
	token, _, err := middlewares.GenerateToken(context.Background(), []byte(key), user.ID, user.Username, []string{"admin"})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadGateway, api.NewErrorResponse("Error creating JWT"))
		return
	}
	c.JSON(http.StatusOK, api.NewGenericResponse(api.Success, "", token))
}

// CreatePasswordHash returns the bcrypt hash for a password, for use
// when provisioning admin users.
//
// @ID createPasswordHash
// @Summary Hash a password
// @Tags auth
// @Router /auth/hash/{pw} [get]
// @Param pw path string true "Password to hash"
// @Success 200 {object} api.RestJsonResponse{data=string}
// @Failure 500 {object} api.RestJsonErrorResponse
func (ac *Controller) CreatePasswordHash(c *gin.Context) {
	password := c.Param("pw")
	hashPw, hashErr := models.Hash(password)
	if hashErr != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponsef("an error occurred"))
		return
	} else {
		c.JSON(http.StatusOK, api.NewGenericResponse(api.Success, "your encrypted (bcrypt) password", string(hashPw)))
	}
}
