package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tandat198/movie-ticket-be/constants"
	"github.com/tandat198/movie-ticket-be/database"
	"github.com/tandat198/movie-ticket-be/model"
	"github.com/tandat198/movie-ticket-be/utils"
)

func GetTheaters(c *fiber.Ctx) error {
	db := database.DB
	var theaters []model.Theater
	if err := db.Order("id ASC").Find(&theaters).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	res := make([]model.TheaterResponse, 0, len(theaters))
	for _, theater := range theaters {
		res = append(res, theater.Transform())
	}
	return utils.SuccessResponse(c, fiber.StatusOK, res)
}

func CreateTheater(c *fiber.Ctx) error {
	db := database.DB
	name, ok := c.Locals("theaterName").(string)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing validated input"))
	}

	theater := model.Theater{Name: name}
	if err := db.Create(&theater).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, theater.Transform())
}

func GetGenres(c *fiber.Ctx) error {
	db := database.DB
	var genres []model.Genre
	if err := db.Order("name ASC").Find(&genres).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	res := make([]model.GenreResponse, 0, len(genres))
	for _, genre := range genres {
		res = append(res, genre.Transform())
	}
	return utils.SuccessResponse(c, fiber.StatusOK, res)
}
