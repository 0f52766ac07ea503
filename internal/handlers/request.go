package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strings"

	"jobtrack/internal/models"
	"jobtrack/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{3,50}$`)

// newValidator returns a validator that reports JSON field names and knows the
// application specific tags.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	mustRegister(v, "username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "jobstatus", func(fl validator.FieldLevel) bool {
		return models.JobStatus(fl.Field().String()).IsValid()
	})
	mustRegister(v, "preference", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case models.PreferenceRemote, models.PreferenceOnsite, models.PreferenceHybrid:
			return true
		}
		return false
	})
	return v
}

// mustRegister adds a custom tag and panics if the validator refuses it.
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("handlers: register validation %q: %v", tag, err))
	}
}

var validate = newValidator()

// decodeJSON strictly decodes the request body into dst: unknown fields, trailing
// data and an empty body are rejected.
func decodeJSON(c *fiber.Ctx, dst interface{}) error {
	body := c.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return apperror.BadRequest("Request body is required")
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperror.Validation("Invalid request body", map[string]string{"body": describeDecodeError(err)})
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return apperror.Validation("Invalid request body", map[string]string{"body": "must contain a single JSON object"})
	}
	return nil
}

func describeDecodeError(err error) string {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		return fmt.Sprintf("field %q has the wrong type", typeErr.Field)
	case errors.As(err, &syntaxErr):
		return "malformed JSON"
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		return strings.TrimPrefix(err.Error(), "json: ")
	default:
		return "malformed JSON"
	}
}

// bindJSON decodes and validates the request body.
func bindJSON(c *fiber.Ctx, dst interface{}) error {
	if err := decodeJSON(c, dst); err != nil {
		return err
	}
	return validateStruct(dst)
}

func validateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperror.BadRequest("Invalid request body")
	}
	details := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		details[e.Field()] = validationMessage(e)
	}
	return apperror.Validation("Validation failed", details)
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", e.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "username":
		return "must be 3-50 letters, digits, '_', '.' or '-'"
	case "jobstatus":
		return "must be one of Applied, Interviewing, Offered, Rejected"
	case "preference":
		return "must be one of Remote, Onsite, Hybrid"
	default:
		return fmt.Sprintf("failed on the '%s' rule", e.Tag())
	}
}

// currentUsername returns the identity the auth middleware stored on the request.
func currentUsername(c *fiber.Ctx) string {
	username, _ := c.Locals("username").(string)
	return username
}
