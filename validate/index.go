package validate

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/tandat198/movie-ticket-be/constants"
	"github.com/tandat198/movie-ticket-be/utils"
)

var validate = validator.New()

// GetById rejects non-numeric id params before the handler runs and stashes
// the parsed id in Locals.
func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil || valueKey <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		c.Locals("inputId", uint(valueKey))
		return c.Next()
	}
}

// Body is a request payload decoded without a fixed shape, so presence and
// type checks can run field by field.
type Body map[string]interface{}

// FieldErrors maps an input field to a human-readable message. An empty map
// means the payload passed the stage.
type FieldErrors map[string]string

// RequireFields reports every field that is absent, null or an empty string.
func RequireFields(body Body, fields []string) FieldErrors {
	errs := FieldErrors{}
	for _, field := range fields {
		value, ok := body[field]
		if !ok || value == nil {
			errs[field] = field + " is required"
			continue
		}
		if s, isString := value.(string); isString && strings.TrimSpace(s) == "" {
			errs[field] = field + " is required"
		}
	}
	return errs
}

// RequirePresentFields is the update-path variant: an empty string counts as
// provided, only absent or null fields are reported.
func RequirePresentFields(body Body, fields []string) FieldErrors {
	errs := FieldErrors{}
	for _, field := range fields {
		if value, ok := body[field]; !ok || value == nil {
			errs[field] = field + " is required"
		}
	}
	return errs
}

func IsString(value interface{}) bool {
	_, ok := value.(string)
	return ok
}

func IsURL(value interface{}) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	return validate.Var(s, "url") == nil
}

func IsEmail(value interface{}) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	return validate.Var(s, "email") == nil
}
