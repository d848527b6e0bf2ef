package forms

import (
	"encoding/json"
	"errors"
	"fmt"
	"ghost-theme-storefront/internal/api"
	"ghost-theme-storefront/internal/environment"
	"ghost-theme-storefront/internal/logging"
	"ghost-theme-storefront/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/samborkent/uuidv7"
	"gorm.io/gorm"
	"io"
	"net/http"
	"regexp"
	"strings"
)

// emailPattern is intentionally loose: presence of a local part, an @,
// and a dotted domain segment. Not full RFC validation.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Api defines HTTP endpoints for inbound form submissions.
type Api interface {
	SubmitContact(c *gin.Context)
	Subscribe(c *gin.Context)
}

// Controller handles contact form and newsletter signups.
type Controller struct {
	*environment.Env
}

// ensure Controller implements Api
var _ Api = &Controller{}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type subscribeRequest struct {
	Email string `json:"email"`
}

// SubmitContact validates and persists a contact form submission. A 400
// names exactly which required fields are missing.
//
// @ID submitContact
// @Summary Submit the contact form
// @Tags forms
// @Router /contact [post]
// @Success 201
// @Failure 400 {object} api.RestJsonErrorResponse
// @Failure 500 {object} api.RestJsonErrorResponse
func (fc *Controller) SubmitContact(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, api.NewErrorResponsef("error reading request body: %s", err))
		return
	}

	var request contactRequest
	if err = json.Unmarshal(body, &request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, api.NewErrorResponsef("error unmarshaling request body: %s", err))
		return
	}

	missingFields := make([]string, 0, 4)
	if len(request.Name) <= 0 {
		missingFields = append(missingFields, "name")
	}
	if len(request.Email) <= 0 {
		missingFields = append(missingFields, "email")
	}
	if len(request.Subject) <= 0 {
		missingFields = append(missingFields, "subject")
	}
	if len(request.Message) <= 0 {
		missingFields = append(missingFields, "message")
	}
	if len(missingFields) > 0 {
		msg := fmt.Sprintf("Please fill in the following fields: %s", strings.Join(missingFields, ", "))
		c.AbortWithStatusJSON(http.StatusBadRequest, api.NewErrorResponse(msg))
		return
	}

	if !emailPattern.MatchString(request.Email) {
		c.AbortWithStatusJSON(http.StatusBadRequest, api.NewErrorResponse("Please provide a valid email address"))
		return
	}

	contact := models.Contact{
		ID:      uuidv7.New().String(),
		Name:    request.Name,
		Email:   request.Email,
		Subject: request.Subject,
		Message: request.Message,
	}

	if err = fc.CreateContact(ctx, &contact); err != nil {
		fc.LogError(logging.GetLogType("forms"), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponse("Failed to send message. Please try again later."))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Your message has been sent successfully! We'll get back to you within 24 hours.",
		"contact": gin.H{
			"id":    contact.ID,
			"name":  contact.Name,
			"email": contact.Email,
		},
	})
}

// Subscribe adds an email to the newsletter list. A duplicate email is
// rejected with a conflict, not upserted.
//
// @ID subscribe
// @Summary Subscribe to the newsletter
// @Tags forms
// @Router /subscribe [post]
// @Success 201
// @Failure 400 {object} api.RestJsonErrorResponse
// @Failure 409 {object} api.RestJsonErrorResponse
// @Failure 500 {object} api.RestJsonErrorResponse
func (fc *Controller) Subscribe(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, api.NewErrorResponsef("error reading request body: %s", err))
		return
	}

	var request subscribeRequest
	if err = json.Unmarshal(body, &request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, api.NewErrorResponsef("error unmarshaling request body: %s", err))
		return
	}

	if len(request.Email) <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, api.NewErrorResponse("Email is required"))
		return
	}

	if !emailPattern.MatchString(request.Email) {
		c.AbortWithStatusJSON(http.StatusBadRequest, api.NewErrorResponse("Please provide a valid email address"))
		return
	}

	var existing models.Subscriber
	err = fc.FindSubscriberByEmail(ctx, request.Email, &existing)
	if err == nil {
		c.AbortWithStatusJSON(http.StatusConflict, api.NewErrorResponse("This email is already subscribed"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		fc.LogError(logging.GetLogType("forms"), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponse("Failed to subscribe. Please try again later."))
		return
	}

	subscriber := models.Subscriber{
		ID:    uuidv7.New().String(),
		Email: request.Email,
	}

	if err = fc.CreateSubscriber(ctx, &subscriber); err != nil {
		fc.LogError(logging.GetLogType("forms"), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponse("Failed to subscribe. Please try again later."))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Successfully subscribed to newsletter!",
		"subscriber": gin.H{
			"id":    subscriber.ID,
			"email": subscriber.Email,
		},
	})
}
