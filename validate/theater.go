package validate

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tandat198/movie-ticket-be/constants"
	"github.com/tandat198/movie-ticket-be/utils"
)

func CreateTheater() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body Body
		if err := c.BodyParser(&body); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if errs := RequireFields(body, []string{"name"}); len(errs) > 0 {
			return utils.ValidationErrorResponse(c, fiber.StatusBadRequest, errs)
		}
		if !IsString(body["name"]) {
			return utils.ValidationErrorResponse(c, fiber.StatusBadRequest, FieldErrors{"name": "name is invalid"})
		}

		name, _ := body["name"].(string)
		c.Locals("theaterName", name)
		return c.Next()
	}
}
