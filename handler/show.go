package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tandat198/movie-ticket-be/constants"
	"github.com/tandat198/movie-ticket-be/database"
	"github.com/tandat198/movie-ticket-be/helper"
	"github.com/tandat198/movie-ticket-be/model"
	"github.com/tandat198/movie-ticket-be/utils"
)

// queryId reads an optional id query param. A missing param yields zero;
// anything present that is not a positive integer is rejected.
func queryId(c *fiber.Ctx, key string) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func transformShows(shows []model.Show) []model.ShowResponse {
	res := make([]model.ShowResponse, 0, len(shows))
	for _, show := range shows {
		res = append(res, show.Transform())
	}
	return res
}

// GetShows serves four mutually exclusive listing modes, picked by which
// query params are present: name patterns, theaterId, movieId, or no filter.
func GetShows(c *fiber.Ctx) error {
	db := database.DB
	theaterPattern := c.Query("theater")
	moviePattern := c.Query("movie")
	theaterId, ok := queryId(c, "theaterId")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("theaterId invalid"))
	}
	movieId, ok := queryId(c, "movieId")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("movieId invalid"))
	}

	if moviePattern != "" && theaterPattern != "" {
		var shows []model.Show
		err := db.
			Joins("JOIN movies ON movies.id = shows.movie_id").
			Joins("JOIN theaters ON theaters.id = shows.theater_id").
			Where("movies.name ~ ?", moviePattern).
			Where("theaters.name ~ ?", theaterPattern).
			Preload("Movie.Genres").Preload("Theater").
			Find(&shows).Error
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, transformShows(shows))
	}

	if theaterId > 0 {
		var shows []model.Show
		if err := db.Where("theater_id = ?", theaterId).Preload("Movie.Genres").Preload("Theater").Find(&shows).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		var movies []model.Movie
		err := db.
			Where("id IN (?)", db.Model(&model.Show{}).Select("DISTINCT movie_id").Where("theater_id = ?", theaterId)).
			Preload("Genres").
			Find(&movies).Error
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		resMovies := make([]model.MovieResponse, 0, len(movies))
		for _, movie := range movies {
			resMovies = append(resMovies, movie.Transform())
		}
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"shows":  transformShows(shows),
			"movies": resMovies,
		})
	}

	if movieId > 0 {
		var shows []model.Show
		if err := db.Where("movie_id = ?", movieId).Preload("Movie.Genres").Preload("Theater").Find(&shows).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		var theaters []model.Theater
		err := db.
			Where("id IN (?)", db.Model(&model.Show{}).Select("DISTINCT theater_id").Where("movie_id = ?", movieId)).
			Find(&theaters).Error
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		resTheaters := make([]model.TheaterResponse, 0, len(theaters))
		for _, theater := range theaters {
			resTheaters = append(resTheaters, theater.Transform())
		}
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"shows":    transformShows(shows),
			"theaters": resTheaters,
		})
	}

	var shows []model.Show
	if err := db.Preload("Movie.Genres").Preload("Theater").Find(&shows).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, transformShows(shows))
}

// CreateShow persists the show together with its full 64-ticket seat grid in
// one transaction, so a partial grid can never be observed.
func CreateShow(c *fiber.Ctx) error {
	db := database.DB
	theater, ok := c.Locals("theater").(model.Theater)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing validated input"))
	}
	movie, ok := c.Locals("movie").(model.Movie)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing validated input"))
	}
	startTime, ok := c.Locals("startTime").(time.Time)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing validated input"))
	}

	tickets := helper.GenerateSeatGrid()
	show := model.Show{
		StartTime: startTime,
		MovieId:   movie.ID,
		TheaterId: theater.ID,
		Tickets:   tickets,
	}
	if err := db.Create(&show).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	show.Movie = movie
	show.Theater = theater
	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"movie":           movie.Transform(),
		"theater":         theater.Transform(),
		"startTime":       startTime,
		"numberOfTickets": len(tickets),
		"show":            show.Transform(),
	})
}
