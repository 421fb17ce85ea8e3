package validation

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const invalidQueryMessage = "invalid query parameters"

const (
	MissingField   = "Missing data for required field."
	InvalidInteger = "Not a valid integer."
)

var messages = map[string]string{
	"required": MissingField,
	"numeric":  InvalidInteger,
}

// ErrorResponse is the body of every 400 answer.
type ErrorResponse struct {
	Error   string              `json:"error"`
	Details map[string][]string `json:"details,omitempty"`
}

// Details maps validator errors onto the query parameter names declared in
// the form tags of query. It returns nil when err is not a validation error.
func Details(err error, query any) map[string][]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	t := reflect.TypeOf(query)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	details := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		name := paramName(t, fe)
		details[name] = append(details[name], message(fe))
	}
	return details
}

// BadRequest answers 400 with the validation details of err.
func BadRequest(c *gin.Context, err error, query any) {
	details := Details(err, query)
	if details == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: invalidQueryMessage, Details: details})
}

// Field answers 400 for a single parameter that failed after binding.
func Field(c *gin.Context, param, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   invalidQueryMessage,
		Details: map[string][]string{param: {msg}},
	})
}

func paramName(t reflect.Type, fe validator.FieldError) string {
	if t == nil || t.Kind() != reflect.Struct {
		return fe.Field()
	}
	sf, ok := t.FieldByName(fe.StructField())
	if !ok {
		return fe.Field()
	}
	if name := strings.Split(sf.Tag.Get("form"), ",")[0]; name != "" {
		return name
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	if msg, ok := messages[fe.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("Failed on the %q rule.", fe.Tag())
}
