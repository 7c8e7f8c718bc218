package handler_test

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/tandat198/movie-ticket-be/handler"
	"github.com/tandat198/movie-ticket-be/model"
)

func TestCreateShowMissingFields(t *testing.T) {
	mock := newMockDB(t)
	app := newTestApp()

	req := jsonRequest("POST", "/shows", map[string]interface{}{})
	res, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 400, res.StatusCode)

	body := decodeBody(t, res)
	assert.Len(t, body, 3)
	assert.Equal(t, "theaterId is required", body["theaterId"])
	assert.Equal(t, "movieId is required", body["movieId"])
	assert.Equal(t, "startTime is required", body["startTime"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateShowTheaterNotFound(t *testing.T) {
	mock := newMockDB(t)
	app := newTestApp()

	mock.ExpectQuery(`SELECT \* FROM "theaters"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	req := jsonRequest("POST", "/shows", map[string]interface{}{
		"theaterId": 5,
		"movieId":   3,
		"startTime": "2026-09-01T19:30:00Z",
	})
	res, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 400, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, "theater not found", body["theaterId"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateShowPersistsFullTicketGrid(t *testing.T) {
	mock := newMockDB(t)
	app := newTestApp()

	mock.ExpectQuery(`SELECT \* FROM "theaters"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(5, "Galaxy Central"))
	mock.ExpectQuery(`SELECT \* FROM "movies"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "image_url", "running_time", "description"}).
			AddRow(3, "Alien", "https://example.com/alien.jpg", 117, "classic"))
	mock.ExpectQuery(`SELECT \* FROM "movie_genres"`).
		WillReturnRows(sqlmock.NewRows([]string{"movie_id", "genre_id"}))

	// Show and its 64 tickets commit as one aggregate.
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "shows"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	ticketRows := sqlmock.NewRows([]string{"id"})
	for i := 1; i <= 64; i++ {
		ticketRows.AddRow(i)
	}
	mock.ExpectQuery(`INSERT INTO "tickets"`).
		WillReturnRows(ticketRows)
	mock.ExpectCommit()

	req := jsonRequest("POST", "/shows", map[string]interface{}{
		"theaterId": 5,
		"movieId":   3,
		"startTime": "2026-09-01T19:30:00Z",
	})
	res, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 201, res.StatusCode)

	body := decodeBody(t, res)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(64), data["numberOfTickets"])

	show := data["show"].(map[string]interface{})
	tickets := show["tickets"].([]interface{})
	assert.Len(t, tickets, 64)

	seats := make(map[string]bool, len(tickets))
	for _, raw := range tickets {
		ticket := raw.(map[string]interface{})
		seats[ticket["seat"].(string)] = true
	}
	assert.Len(t, seats, 64)
	assert.True(t, seats["A1"])
	assert.True(t, seats["H8"])

	theater := data["theater"].(map[string]interface{})
	assert.Equal(t, float64(5), theater["id"])
	movie := data["movie"].(map[string]interface{})
	assert.Equal(t, float64(3), movie["id"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetShowsByNamePatterns(t *testing.T) {
	mock := newMockDB(t)
	app := newTestApp()

	mock.ExpectQuery(`FROM "shows" JOIN movies ON movies\.id = shows\.movie_id JOIN theaters ON theaters\.id = shows\.theater_id`).
		WithArgs("Alien", "Galaxy").
		WillReturnRows(sqlmock.NewRows([]string{"id", "start_time", "movie_id", "theater_id"}).
			AddRow(1, time.Date(2026, 9, 1, 19, 30, 0, 0, time.UTC), 3, 5))
	mock.ExpectQuery(`SELECT \* FROM "movies"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "Alien"))
	mock.ExpectQuery(`SELECT \* FROM "movie_genres"`).
		WillReturnRows(sqlmock.NewRows([]string{"movie_id", "genre_id"}))
	mock.ExpectQuery(`SELECT \* FROM "theaters"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(5, "Galaxy Central"))

	req := jsonRequest("GET", "/shows?movie=Alien&theater=Galaxy", nil)
	res, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)

	body := decodeBody(t, res)
	data := body["data"].([]interface{})
	assert.Len(t, data, 1)

	show := data[0].(map[string]interface{})
	assert.NotContains(t, show, "tickets")
	assert.Equal(t, "Alien", show["movie"].(map[string]interface{})["name"])
	assert.Equal(t, "Galaxy Central", show["theater"].(map[string]interface{})["name"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetShowsByTheaterId(t *testing.T) {
	mock := newMockDB(t)
	app := newTestApp()

	startTime := time.Date(2026, 9, 1, 19, 30, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT \* FROM "shows" WHERE theater_id = \$1`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "start_time", "movie_id", "theater_id"}).
			AddRow(1, startTime, 3, 5).
			AddRow(2, startTime.Add(3*time.Hour), 3, 5))
	mock.ExpectQuery(`SELECT \* FROM "movies"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "Alien"))
	mock.ExpectQuery(`SELECT \* FROM "movie_genres"`).
		WillReturnRows(sqlmock.NewRows([]string{"movie_id", "genre_id"}))
	mock.ExpectQuery(`SELECT \* FROM "theaters"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(5, "Galaxy Central"))

	// Movies playing at the theater come from a distinct movie_id subquery,
	// so two shows of the same movie list it once.
	mock.ExpectQuery(`SELECT \* FROM "movies" WHERE id IN \(SELECT DISTINCT movie_id FROM "shows" WHERE theater_id = \$1\)`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "Alien"))
	mock.ExpectQuery(`SELECT \* FROM "movie_genres"`).
		WillReturnRows(sqlmock.NewRows([]string{"movie_id", "genre_id"}).AddRow(3, 4))
	mock.ExpectQuery(`SELECT \* FROM "genres"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(4, "Sci-Fi"))

	req := jsonRequest("GET", "/shows?theaterId=5", nil)
	res, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)

	body := decodeBody(t, res)
	data := body["data"].(map[string]interface{})

	shows := data["shows"].([]interface{})
	assert.Len(t, shows, 2)
	for _, raw := range shows {
		show := raw.(map[string]interface{})
		theater := show["theater"].(map[string]interface{})
		assert.Equal(t, float64(5), theater["id"])
	}

	movies := data["movies"].([]interface{})
	assert.Len(t, movies, 1)
	movie := movies[0].(map[string]interface{})
	assert.Equal(t, "Alien", movie["name"])
	genres := movie["genres"].([]interface{})
	assert.Len(t, genres, 1)
	assert.Equal(t, "Sci-Fi", genres[0].(map[string]interface{})["name"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetShowsByMovieId(t *testing.T) {
	mock := newMockDB(t)
	app := newTestApp()

	startTime := time.Date(2026, 9, 2, 20, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT \* FROM "shows" WHERE movie_id = \$1`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "start_time", "movie_id", "theater_id"}).
			AddRow(1, startTime, 3, 5).
			AddRow(2, startTime, 3, 6))
	mock.ExpectQuery(`SELECT \* FROM "movies"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "Alien"))
	mock.ExpectQuery(`SELECT \* FROM "movie_genres"`).
		WillReturnRows(sqlmock.NewRows([]string{"movie_id", "genre_id"}))
	mock.ExpectQuery(`SELECT \* FROM "theaters"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(5, "Galaxy Central").
			AddRow(6, "Galaxy Riverside"))

	mock.ExpectQuery(`SELECT \* FROM "theaters" WHERE id IN \(SELECT DISTINCT theater_id FROM "shows" WHERE movie_id = \$1\)`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(5, "Galaxy Central").
			AddRow(6, "Galaxy Riverside"))

	req := jsonRequest("GET", "/shows?movieId=3", nil)
	res, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)

	body := decodeBody(t, res)
	data := body["data"].(map[string]interface{})

	shows := data["shows"].([]interface{})
	assert.Len(t, shows, 2)
	for _, raw := range shows {
		show := raw.(map[string]interface{})
		movie := show["movie"].(map[string]interface{})
		assert.Equal(t, float64(3), movie["id"])
	}

	theaters := data["theaters"].([]interface{})
	assert.Len(t, theaters, 2)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetShowsMalformedIdParam(t *testing.T) {
	mock := newMockDB(t)
	app := newTestApp()

	for _, target := range []string{"/shows?theaterId=abc", "/shows?movieId=abc", "/shows?theaterId=-1"} {
		req := jsonRequest("GET", target, nil)
		res, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equalf(t, 400, res.StatusCode, "target=%s", target)

		body := decodeBody(t, res)
		assert.Equal(t, "Id param must be a number", body["message"])
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetShowsNoFilter(t *testing.T) {
	mock := newMockDB(t)
	app := newTestApp()

	mock.ExpectQuery(`SELECT \* FROM "shows"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "start_time", "movie_id", "theater_id"}).
			AddRow(1, time.Date(2026, 9, 1, 19, 30, 0, 0, time.UTC), 3, 5))
	mock.ExpectQuery(`SELECT \* FROM "movies"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "Alien"))
	mock.ExpectQuery(`SELECT \* FROM "movie_genres"`).
		WillReturnRows(sqlmock.NewRows([]string{"movie_id", "genre_id"}))
	mock.ExpectQuery(`SELECT \* FROM "theaters"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(5, "Galaxy Central"))

	req := jsonRequest("GET", "/shows", nil)
	res, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)

	body := decodeBody(t, res)
	data := body["data"].([]interface{})
	assert.Len(t, data, 1)

	show := data[0].(map[string]interface{})
	assert.Equal(t, float64(1), show["id"])
	assert.NotContains(t, show, "tickets")
	assert.Equal(t, "Alien", show["movie"].(map[string]interface{})["name"])
	assert.Equal(t, "Galaxy Central", show["theater"].(map[string]interface{})["name"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateShowIncompleteContext(t *testing.T) {
	newMockDB(t)

	app := fiber.New()
	app.Post("/shows", func(c *fiber.Ctx) error {
		c.Locals("theater", model.Theater{DTO: model.DTO{ID: 5}})
		return c.Next()
	}, handler.CreateShow)

	res, err := app.Test(jsonRequest("POST", "/shows", nil))
	assert.NoError(t, err)
	assert.Equal(t, 500, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, "Cannot read validated input", body["message"])
}
