package validate

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tandat198/movie-ticket-be/constants"
	"github.com/tandat198/movie-ticket-be/database"
	"github.com/tandat198/movie-ticket-be/model"
	"github.com/tandat198/movie-ticket-be/utils"
	"gorm.io/gorm"
)

var showRequiredFields = []string{"theaterId", "movieId", "startTime"}

// CreateShow checks the referenced theater and movie before any ticket is
// written, so a show can never point at records that do not exist.
func CreateShow() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body Body
		if err := c.BodyParser(&body); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if errs := RequireFields(body, showRequiredFields); len(errs) > 0 {
			return utils.ValidationErrorResponse(c, fiber.StatusBadRequest, errs)
		}

		errs := FieldErrors{}
		theaterId, ok := utils.ToId(body["theaterId"])
		if !ok {
			errs["theaterId"] = "theaterId is invalid"
		}
		movieId, ok := utils.ToId(body["movieId"])
		if !ok {
			errs["movieId"] = "movieId is invalid"
		}
		rawStart, _ := body["startTime"].(string)
		startTime, err := time.Parse(time.RFC3339, rawStart)
		if err != nil {
			errs["startTime"] = "startTime must be an RFC3339 timestamp"
		}
		if len(errs) > 0 {
			return utils.ValidationErrorResponse(c, fiber.StatusBadRequest, errs)
		}

		var theater model.Theater
		if err := database.DB.First(&theater, theaterId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ValidationErrorResponse(c, fiber.StatusBadRequest, FieldErrors{"theaterId": "theater not found"})
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		var movie model.Movie
		if err := database.DB.Preload("Genres").First(&movie, movieId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ValidationErrorResponse(c, fiber.StatusBadRequest, FieldErrors{"movieId": "movie not found"})
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		c.Locals("theater", theater)
		c.Locals("movie", movie)
		c.Locals("startTime", startTime)
		return c.Next()
	}
}
