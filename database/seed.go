package database

import (
	"log"

	"github.com/tandat198/movie-ticket-be/config"
	"github.com/tandat198/movie-ticket-be/constants"
	"github.com/tandat198/movie-ticket-be/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedData creates the reference records write endpoints depend on: the genre
// catalog, an initial set of theaters and one admin user.
func SeedData(db *gorm.DB) {
	genres := []model.Genre{
		{Name: "Action"},
		{Name: "Animation"},
		{Name: "Comedy"},
		{Name: "Drama"},
		{Name: "Horror"},
		{Name: "Romance"},
		{Name: "Sci-Fi"},
		{Name: "Thriller"},
	}
	for _, genre := range genres {
		if err := db.Where(model.Genre{Name: genre.Name}).FirstOrCreate(&genre).Error; err != nil {
			log.Println("failed to seed genre:", genre.Name, "error:", err)
		}
	}

	theaters := []model.Theater{
		{Name: "Galaxy Central"},
		{Name: "Starlight Downtown"},
		{Name: "Riverside Cineplex"},
	}
	for _, theater := range theaters {
		if err := db.Where(model.Theater{Name: theater.Name}).FirstOrCreate(&theater).Error; err != nil {
			log.Println("failed to seed theater:", theater.Name, "error:", err)
		}
	}

	adminPassword := config.Config("ADMIN_PASSWORD")
	if adminPassword == "" {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 10)
	if err != nil {
		log.Println("failed to hash admin password:", err)
		return
	}
	admin := model.User{
		Email:    "admin@movie-ticket.local",
		Name:     "Administrator",
		Password: string(hash),
		UserType: constants.USER_TYPE_ADMIN,
	}
	if err := db.Where(model.User{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
		log.Println("failed to seed admin user:", err)
	}
}
