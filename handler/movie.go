package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
	"github.com/jinzhu/copier"
	"github.com/tandat198/movie-ticket-be/constants"
	"github.com/tandat198/movie-ticket-be/database"
	"github.com/tandat198/movie-ticket-be/model"
	"github.com/tandat198/movie-ticket-be/utils"
	"gorm.io/gorm"
)

func GetMovies(c *fiber.Ctx) error {
	db := database.DB
	var movies []model.Movie
	if err := db.Preload("Genres").Order("id ASC").Find(&movies).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	resMovies := make([]model.MovieResponse, 0, len(movies))
	for _, movie := range movies {
		resMovies = append(resMovies, movie.Transform())
	}
	return utils.SuccessResponse(c, fiber.StatusOK, resMovies)
}

func GetMovieById(c *fiber.Ctx) error {
	movieId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing movie id"))
	}

	db := database.DB
	var movie model.Movie
	if err := db.Preload("Genres").First(&movie, movieId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MOVIE_NOT_FOUND, fmt.Errorf("movie %d not found", movieId))
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movie.Transform())
}

func CreateMovie(c *fiber.Ctx) error {
	db := database.DB
	movieInput, ok := c.Locals("inputCreateMovie").(model.CreateMovieInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing validated input"))
	}
	genres, ok := c.Locals("genres").([]model.Genre)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing validated input"))
	}

	movie := model.Movie{
		Name:        movieInput.Name,
		ImageUrl:    movieInput.ImageUrl,
		RunningTime: movieInput.RunningTime,
		Description: movieInput.Description,
		Slug:        slug.Make(movieInput.Name),
		Genres:      genres,
	}
	if err := db.Create(&movie).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, movie.Transform())
}

// UpdateMovie replaces every validated field, genre references included. The
// old payload is not merged; update is a full replace.
func UpdateMovie(c *fiber.Ctx) error {
	db := database.DB
	movieInput, ok := c.Locals("inputUpdateMovie").(model.CreateMovieInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing validated input"))
	}
	movie, ok := c.Locals("movie").(model.Movie)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing validated input"))
	}
	genres, ok := c.Locals("genres").([]model.Genre)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing validated input"))
	}

	copier.Copy(&movie, &movieInput)
	movie.Slug = slug.Make(movieInput.Name)

	tx := db.Begin()
	if err := tx.Save(&movie).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Model(&movie).Association("Genres").Replace(genres); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	movie.Genres = genres
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Updated successfully",
		"movie":   movie.Transform(),
	})
}

func DeleteMovie(c *fiber.Ctx) error {
	movieId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing movie id"))
	}

	db := database.DB
	var movie model.Movie
	if err := db.First(&movie, movieId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MOVIE_NOT_FOUND, fmt.Errorf("movie %d not found", movieId))
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	tx := db.Begin()
	if err := tx.Model(&movie).Association("Genres").Clear(); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Delete(&movie).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Deleted movie successfully",
		"id":      movieId,
	})
}
