package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/spec-kit/job-board-service/internal/api/dto"
	"github.com/spec-kit/job-board-service/internal/auth"
	"github.com/spec-kit/job-board-service/internal/domain"
	"github.com/spec-kit/job-board-service/internal/service"
	"github.com/spec-kit/job-board-service/internal/storage"
	apperrors "github.com/spec-kit/job-board-service/pkg/util"
)

// UsersHandler exposes registration, login, logout and profile endpoints.
type UsersHandler struct {
	auth         *service.AuthService
	uploads      storage.Storage
	cookieName   string
	cookieSecure bool
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService, uploads storage.Storage, cookieName string, cookieSecure bool) *UsersHandler {
	if cookieName == "" {
		cookieName = "token"
	}
	return &UsersHandler{auth: authService, uploads: uploads, cookieName: cookieName, cookieSecure: cookieSecure}
}

// Register handles POST /users/register.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.UserRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	role, _ := domain.ParseUserRole(req.Role)

	photoURL, err := h.uploadFormFile(c, "file", "profile")
	if err != nil {
		return err
	}

	user, err := h.auth.Register(c.UserContext(), service.RegisterInput{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		Role:        role,
		PhotoURL:    photoURL,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"success": true,
		"user":    dto.NewUserView(user),
	})
}

// Login handles POST /users/login.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.UserLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	role, _ := domain.ParseUserRole(req.Role)

	user, token, expiresAt, err := h.auth.Login(c.UserContext(), req.Email, req.Password, role)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Welcome, %s!", user.FullName),
		"success": true,
		"user":    dto.NewUserView(user),
	})
}

// Logout handles GET /users/logout. The session cookie is overwritten with
// an immediately expired empty value and the token is denylisted.
func (h *UsersHandler) Logout(c *fiber.Ctx) error {
	if principal, ok := auth.PrincipalFromContext(c); ok {
		if err := h.auth.Logout(c.UserContext(), principal.TokenID, principal.ExpiresAt); err != nil {
			return err
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
	return c.JSON(fiber.Map{
		"message": "Logged out successfully",
		"success": true,
	})
}

// UpdateProfile handles PUT /users/profile/update.
func (h *UsersHandler) UpdateProfile(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	input := service.ProfileUpdateInput{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Bio:         req.Bio,
		Skills:      dto.SplitCSV(req.Skills),
	}
	if file, err := c.FormFile("file"); err == nil && file != nil {
		url, uploadErr := h.uploadFile(c, file, "resumes")
		if uploadErr != nil {
			return uploadErr
		}
		input.ResumeURL = url
		input.ResumeOriginalName = file.Filename
	}

	user, err := h.auth.UpdateProfile(c.UserContext(), principal.UserID, input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Profile updated successfully!",
		"success": true,
		"user":    dto.NewUserView(user),
	})
}

// uploadFormFile stores the named multipart file when present. Absence is
// not an error.
func (h *UsersHandler) uploadFormFile(c *fiber.Ctx, field, prefix string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil || file == nil {
		return "", nil
	}
	return h.uploadFile(c, file, prefix)
}

func (h *UsersHandler) uploadFile(c *fiber.Ctx, file *multipart.FileHeader, prefix string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", apperrors.NewInternalError(err)
	}
	defer src.Close()

	key := fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), filepath.Ext(file.Filename))
	url, err := h.uploads.Upload(c.UserContext(), key, src, file.Header.Get("Content-Type"))
	if err != nil {
		return "", apperrors.NewInternalError(err)
	}
	return url, nil
}
