package validate

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tandat198/movie-ticket-be/constants"
	"github.com/tandat198/movie-ticket-be/database"
	"github.com/tandat198/movie-ticket-be/model"
	"github.com/tandat198/movie-ticket-be/utils"
	"gorm.io/gorm"
)

var registerRequiredFields = []string{"email", "password", "confirmPassword", "name"}

func registerFormatErrors(body Body) FieldErrors {
	errs := FieldErrors{}
	password, _ := body["password"].(string)
	confirmPassword, _ := body["confirmPassword"].(string)
	if len(password) < 8 {
		errs["password"] = "password must have at least 8 characters"
	}
	if password != confirmPassword {
		errs["confirmPassword"] = "password and confirmPassword does not match"
	}
	if !IsEmail(body["email"]) {
		errs["email"] = "email is invalid"
	}
	return errs
}

func RegisterUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body Body
		if err := c.BodyParser(&body); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if errs := RequireFields(body, registerRequiredFields); len(errs) > 0 {
			return utils.ValidationErrorResponse(c, fiber.StatusBadRequest, errs)
		}
		if errs := registerFormatErrors(body); len(errs) > 0 {
			return utils.ValidationErrorResponse(c, fiber.StatusBadRequest, errs)
		}

		email, _ := body["email"].(string)
		var existing model.User
		if err := database.DB.Where(&model.User{Email: email}).First(&existing).Error; err == nil {
			return utils.ValidationErrorResponse(c, fiber.StatusBadRequest, FieldErrors{"email": "email already exists"})
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		name, _ := body["name"].(string)
		password, _ := body["password"].(string)
		c.Locals("inputRegisterUser", model.RegisterUserInput{
			Email:    email,
			Name:     name,
			Password: password,
		})
		return c.Next()
	}
}

func SignIn() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body Body
		if err := c.BodyParser(&body); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if errs := RequireFields(body, []string{"email", "password"}); len(errs) > 0 {
			return utils.ValidationErrorResponse(c, fiber.StatusBadRequest, errs)
		}

		email, _ := body["email"].(string)
		password, _ := body["password"].(string)
		c.Locals("inputSignIn", model.SignInInput{Email: email, Password: password})
		return c.Next()
	}
}
