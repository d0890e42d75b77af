// Package apiutil holds the request-shaping helpers shared by every resource
// handler: UUID path-parameter validation and binding-error formatting.
package apiutil

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// UUIDParam validates the :id path parameter before anything touches the
// store. On failure it writes the 400 response itself and returns ok=false.
func UUIDParam(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed (uuid is expected)"})
		return "", false
	}
	return id, true
}

// BindingError turns a ShouldBindJSON failure into a 400 body that lists
// every violated constraint, not just the first.
func BindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, constraintMessage(fe))
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": details})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "uuid", "uuid4":
		return fmt.Sprintf("%s must be a UUID", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed on the '%s' constraint", fe.Field(), fe.Tag())
	}
}
