package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/tandat198/movie-ticket-be/handler"
	"github.com/tandat198/movie-ticket-be/middleware"
	"github.com/tandat198/movie-ticket-be/validate"
)

func SetupRoutes(app *fiber.App) {
	movie := app.Group("/movies", logger.New())
	movie.Get("/", handler.GetMovies)
	movie.Get("/:movieId", validate.GetById("movieId"), handler.GetMovieById)
	movie.Post("/", validate.CreateMovie(), handler.CreateMovie)
	movie.Put("/:movieId", validate.UpdateMovie("movieId"), handler.UpdateMovie)
	movie.Delete("/:movieId", validate.GetById("movieId"), handler.DeleteMovie)
	movie.Post("/:movieId/poster", middleware.Protected(), validate.GetById("movieId"), handler.UploadMoviePoster)

	show := app.Group("/shows", logger.New())
	show.Get("/", handler.GetShows)
	show.Post("/", validate.CreateShow(), handler.CreateShow)

	user := app.Group("/users", logger.New())
	user.Post("/", validate.RegisterUser(), handler.RegisterUser)
	user.Post("/signin", validate.SignIn(), handler.SignIn)
	user.Get("/me", middleware.Protected(), handler.Me)

	genre := app.Group("/genres", logger.New())
	genre.Get("/", handler.GetGenres)

	theater := app.Group("/theaters", logger.New())
	theater.Get("/", handler.GetTheaters)
	theater.Post("/", middleware.Protected(), validate.CreateTheater(), handler.CreateTheater)

	app.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateSignature)
}
