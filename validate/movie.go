package validate

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tandat198/movie-ticket-be/constants"
	"github.com/tandat198/movie-ticket-be/database"
	"github.com/tandat198/movie-ticket-be/model"
	"github.com/tandat198/movie-ticket-be/utils"
	"gorm.io/gorm"
)

var movieRequiredFields = []string{"name", "imageUrl", "runningTime", "description"}

func movieFormatErrors(body Body, checkDescription bool) FieldErrors {
	errs := FieldErrors{}
	if !IsString(body["name"]) {
		errs["name"] = "name is invalid"
	}
	if !IsURL(body["imageUrl"]) {
		errs["imageUrl"] = "imageUrl must be URL"
	}
	if minutes, ok := utils.ToInt(body["runningTime"]); !ok || minutes <= 0 {
		errs["runningTime"] = "runningTime is invalid"
	}
	if genres, ok := body["genres"].([]interface{}); !ok || len(genres) == 0 {
		errs["genres"] = "genres is invalid"
	}
	if checkDescription && !IsString(body["description"]) {
		errs["description"] = "description is invalid"
	}
	return errs
}

// genreIds coerces the genres array to record ids, failing on the first
// malformed element.
func genreIds(body Body) ([]uint, bool) {
	raw := body["genres"].([]interface{})
	ids := make([]uint, 0, len(raw))
	for _, value := range raw {
		id, ok := utils.ToId(value)
		if !ok {
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

// resolveGenres fetches the referenced genres and reorders them to match the
// request so the created movie keeps the caller's sequence.
func resolveGenres(ids []uint) ([]model.Genre, error) {
	var genres []model.Genre
	if err := database.DB.Where("id IN ?", ids).Find(&genres).Error; err != nil {
		return nil, err
	}
	if len(genres) != len(ids) {
		return nil, nil
	}
	byId := make(map[uint]model.Genre, len(genres))
	for _, genre := range genres {
		byId[genre.ID] = genre
	}
	ordered := make([]model.Genre, 0, len(ids))
	for _, id := range ids {
		ordered = append(ordered, byId[id])
	}
	return ordered, nil
}

func movieInputFromBody(body Body) model.CreateMovieInput {
	name, _ := body["name"].(string)
	imageUrl, _ := body["imageUrl"].(string)
	description, _ := body["description"].(string)
	runningTime, _ := utils.ToInt(body["runningTime"])
	return model.CreateMovieInput{
		Name:        name,
		ImageUrl:    imageUrl,
		RunningTime: runningTime,
		Description: description,
	}
}

func CreateMovie() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body Body
		if err := c.BodyParser(&body); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if errs := RequireFields(body, movieRequiredFields); len(errs) > 0 {
			return utils.ValidationErrorResponse(c, fiber.StatusBadRequest, errs)
		}
		if errs := movieFormatErrors(body, false); len(errs) > 0 {
			return utils.ValidationErrorResponse(c, fiber.StatusBadRequest, errs)
		}

		ids, ok := genreIds(body)
		if !ok {
			return utils.ValidationErrorResponse(c, fiber.StatusBadRequest, FieldErrors{"genres": "genres is invalid"})
		}
		genres, err := resolveGenres(ids)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if genres == nil {
			return utils.ValidationErrorResponse(c, fiber.StatusBadRequest, FieldErrors{"genres": "genres not found"})
		}

		c.Locals("inputCreateMovie", movieInputFromBody(body))
		c.Locals("genres", genres)
		return c.Next()
	}
}

func UpdateMovie(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		movieId, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var body Body
		if err := c.BodyParser(&body); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if errs := RequirePresentFields(body, movieRequiredFields); len(errs) > 0 {
			return utils.ValidationErrorResponse(c, fiber.StatusBadRequest, errs)
		}
		if errs := movieFormatErrors(body, true); len(errs) > 0 {
			return utils.ValidationErrorResponse(c, fiber.StatusBadRequest, errs)
		}

		ids, ok := genreIds(body)
		if !ok {
			return utils.ValidationErrorResponse(c, fiber.StatusBadRequest, FieldErrors{"genres": "genres is invalid"})
		}

		var movie model.Movie
		if err := database.DB.First(&movie, movieId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MOVIE_NOT_FOUND, fmt.Errorf("movie %d not found", movieId))
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		genres, err := resolveGenres(ids)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if genres == nil {
			return utils.ValidationErrorResponse(c, fiber.StatusBadRequest, FieldErrors{"genres": "genres not found"})
		}

		c.Locals("inputUpdateMovie", movieInputFromBody(body))
		c.Locals("movie", movie)
		c.Locals("genres", genres)
		return c.Next()
	}
}
