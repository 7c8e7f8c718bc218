package helper

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/tandat198/movie-ticket-be/config"
	"github.com/tandat198/movie-ticket-be/database"
	"github.com/tandat198/movie-ticket-be/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const TokenLifetime = 2 * time.Hour

func jwtSecret() []byte {
	return []byte(config.Config("JWT_SECRET"))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetUserByEmail(e string) (*model.User, error) {
	db := database.DB
	var user model.User
	if err := db.Where(&model.User{Email: e}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GenerateAccessToken signs a bearer token carrying the user's identity,
// valid for two hours.
func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["id"] = tokenClaim.Id
	claims["email"] = tokenClaim.Email
	claims["name"] = tokenClaim.Name
	claims["userType"] = tokenClaim.UserType
	claims["exp"] = time.Now().Add(TokenLifetime).Unix()

	t, err := token.SignedString(jwtSecret())
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})

	return token, err
}

// GetInfoUserFromToken reads the verified token placed in Locals by the auth
// middleware and loads the matching user record.
func GetInfoUserFromToken(c *fiber.Ctx) (model.TokenClaim, *model.User) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, nil
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, nil
	}

	idFloat, _ := claims["id"].(float64)
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	userType, _ := claims["userType"].(string)
	tokenClaim := model.TokenClaim{
		Id:       uint(idFloat),
		Email:    email,
		Name:     name,
		UserType: userType,
	}
	if tokenClaim.Id == 0 {
		return tokenClaim, nil
	}

	var user model.User
	if err := database.DB.First(&user, tokenClaim.Id).Error; err != nil {
		return tokenClaim, nil
	}
	return tokenClaim, &user
}
