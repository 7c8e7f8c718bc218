package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"github.com/tandat198/movie-ticket-be/constants"
	"github.com/tandat198/movie-ticket-be/database"
	"github.com/tandat198/movie-ticket-be/helper"
	"github.com/tandat198/movie-ticket-be/model"
	"github.com/tandat198/movie-ticket-be/utils"
)

func RegisterUser(c *fiber.Ctx) error {
	db := database.DB
	userInput, ok := c.Locals("inputRegisterUser").(model.RegisterUserInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing validated input"))
	}

	hash, err := helper.HashPassword(userInput.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var newUser model.User
	copier.Copy(&newUser, &userInput)
	newUser.Password = hash
	newUser.UserType = constants.USER_TYPE_CLIENT

	if err := db.Create(&newUser).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	token, err := helper.GenerateAccessToken(model.TokenClaim{
		Id:       newUser.ID,
		Email:    newUser.Email,
		Name:     newUser.Name,
		UserType: newUser.UserType,
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"token": token})
}

func SignIn(c *fiber.Ctx) error {
	signInInput, ok := c.Locals("inputSignIn").(model.SignInInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing validated input"))
	}

	user, err := helper.GetUserByEmail(signInInput.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, errors.New("email not registered"))
	}

	if !helper.CheckPasswordHash(signInInput.Password, user.Password) {
		return utils.ValidationErrorResponse(c, fiber.StatusUnauthorized, map[string]string{"password": "password does not match"})
	}

	token, err := helper.GenerateAccessToken(model.TokenClaim{
		Id:       user.ID,
		Email:    user.Email,
		Name:     user.Name,
		UserType: user.UserType,
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": token})
}

func Me(c *fiber.Ctx) error {
	_, user := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", errors.New("user not found"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, user.Transform())
}
