package dto

import "github.com/spec-kit/job-board-service/internal/domain"

// UserRegisterRequest payload for registration. Arrives as multipart form
// data when a profile photo accompanies it.
type UserRegisterRequest struct {
	FullName    string `json:"fullname" form:"fullname" validate:"required"`
	Email       string `json:"email" form:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" form:"phoneNumber" validate:"required"`
	Password    string `json:"password" form:"password" validate:"required,min=6"`
	Role        string `json:"role" form:"role" validate:"required,user_role"`
}

// UserLoginRequest payload for login.
type UserLoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
	Role     string `json:"role" form:"role" validate:"required,user_role"`
}

// ProfileUpdateRequest payload for profile updates. Skills is a
// comma-separated list.
type ProfileUpdateRequest struct {
	FullName    string `json:"fullname" form:"fullname" validate:"required"`
	Email       string `json:"email" form:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" form:"phoneNumber" validate:"required"`
	Bio         string `json:"bio" form:"bio" validate:"required"`
	Skills      string `json:"skills" form:"skills" validate:"required"`
}

// UserView is the public projection of a user returned by auth endpoints.
type UserView struct {
	ID          string          `json:"_id"`
	FullName    string          `json:"fullname"`
	Email       string          `json:"email"`
	PhoneNumber string          `json:"phoneNumber"`
	Role        domain.UserRole `json:"role"`
	Profile     domain.Profile  `json:"profile"`
}

// NewUserView projects a domain user, dropping the password hash.
func NewUserView(user *domain.User) UserView {
	return UserView{
		ID:          user.ID,
		FullName:    user.FullName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		Profile:     user.Profile,
	}
}
