package handler

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/tandat198/movie-ticket-be/config"
	"github.com/tandat198/movie-ticket-be/constants"
	"github.com/tandat198/movie-ticket-be/database"
	"github.com/tandat198/movie-ticket-be/helper"
	"github.com/tandat198/movie-ticket-be/model"
	"github.com/tandat198/movie-ticket-be/utils"
	"gorm.io/gorm"
)

// GenerateSignature signs upload params so the client can push poster images
// straight to Cloudinary without the API secret.
func GenerateSignature(c *fiber.Ctx) error {
	_, user := helper.GetInfoUserFromToken(c)
	if user == nil || user.UserType != constants.USER_TYPE_ADMIN {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, nil)
	}

	type SigParams struct {
		Folder   string `json:"folder"`
		PublicID string `json:"public_id"`
	}

	var params SigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	timestamp := time.Now().Unix()

	paramMap := map[string]string{
		"timestamp": fmt.Sprintf("%d", timestamp),
	}
	if params.Folder != "" {
		paramMap["folder"] = params.Folder
	}
	if params.PublicID != "" {
		paramMap["public_id"] = params.PublicID
	}

	keys := make([]string, 0, len(paramMap))
	for k := range paramMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Cloudinary signs the raw key=value pairs, no URL encoding.
	var stringToSign strings.Builder
	for i, k := range keys {
		if i > 0 {
			stringToSign.WriteString("&")
		}
		stringToSign.WriteString(k)
		stringToSign.WriteString("=")
		stringToSign.WriteString(paramMap[k])
	}
	stringToSign.WriteString(config.Config("CLOUDINARY_API_SECRET"))

	h := sha1.New()
	h.Write([]byte(stringToSign.String()))
	signature := hex.EncodeToString(h.Sum(nil))

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    config.Config("CLOUDINARY_API_KEY"),
		"cloudName": config.Config("CLOUDINARY_CLOUD_NAME"),
	})
}

// UploadMoviePoster uploads a poster file to Cloudinary and stores the
// resulting URL on the movie.
func UploadMoviePoster(c *fiber.Ctx) error {
	_, user := helper.GetInfoUserFromToken(c)
	if user == nil || user.UserType != constants.USER_TYPE_ADMIN {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, nil)
	}

	movieId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing movie id"))
	}

	var movie model.Movie
	if err := database.DB.First(&movie, movieId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MOVIE_NOT_FOUND, fmt.Errorf("movie %d not found", movieId))
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	posterFile, err := c.FormFile("poster")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "poster file is required", err)
	}
	posterReader, err := posterFile.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	defer posterReader.Close()

	cld := helper.InitCloudinary()
	result, err := cld.Upload.Upload(context.Background(), posterReader, uploader.UploadParams{
		Folder:       "movies/posters",
		PublicID:     fmt.Sprintf("movie_%d_poster_%d", movieId, time.Now().Unix()),
		ResourceType: "image",
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Model(&movie).Update("image_url", result.SecureURL).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	movie.ImageUrl = result.SecureURL
	return utils.SuccessResponse(c, fiber.StatusOK, movie.Transform())
}
