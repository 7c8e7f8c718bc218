package model

type User struct {
	DTO
	Email    string `gorm:"type:varchar(255);not null;uniqueIndex" validate:"required,email" json:"email"`
	Name     string `gorm:"type:varchar(255);not null" validate:"required" json:"name"`
	Password string `gorm:"not null" validate:"required,min=8" json:"-"`
	UserType string `gorm:"type:varchar(20);not null;default:'client'" json:"userType"`
}

type RegisterUserInput struct {
	Email           string
	Name            string
	Password        string
	ConfirmPassword string
}

type SignInInput struct {
	Email    string
	Password string
}

type UserResponse struct {
	Id       uint   `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	UserType string `json:"userType"`
}

func (u User) Transform() UserResponse {
	return UserResponse{
		Id:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		UserType: u.UserType,
	}
}
