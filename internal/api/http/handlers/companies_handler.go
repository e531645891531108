package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/spec-kit/job-board-service/internal/api/dto"
	"github.com/spec-kit/job-board-service/internal/auth"
	"github.com/spec-kit/job-board-service/internal/service"
	"github.com/spec-kit/job-board-service/internal/storage"
	apperrors "github.com/spec-kit/job-board-service/pkg/util"
)

// CompaniesHandler exposes company endpoints.
type CompaniesHandler struct {
	companies *service.CompanyService
	uploads   storage.Storage
}

// NewCompaniesHandler constructs handler.
func NewCompaniesHandler(companyService *service.CompanyService, uploads storage.Storage) *CompaniesHandler {
	return &CompaniesHandler{companies: companyService, uploads: uploads}
}

// Register handles POST /company/register.
func (h *CompaniesHandler) Register(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.CompanyRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	company, err := h.companies.Register(c.UserContext(), principal.UserID, req.CompanyName)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Company registered successfully",
		"success": true,
		"company": company,
	})
}

// GetOwn handles GET /company/getCompany.
func (h *CompaniesHandler) GetOwn(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	companies, err := h.companies.ListOwn(c.UserContext(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":   "Companies found",
		"success":   true,
		"companies": companies,
	})
}

// GetByID handles GET /company/getCompany/:id.
func (h *CompaniesHandler) GetByID(c *fiber.Ctx) error {
	company, err := h.companies.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Company found",
		"success": true,
		"company": company,
	})
}

// Update handles PUT /company/update/:id.
func (h *CompaniesHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.CompanyUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}

	input := service.CompanyUpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Location:    req.Location,
	}
	if file, err := c.FormFile("file"); err == nil && file != nil {
		url, uploadErr := h.uploadLogo(c, file)
		if uploadErr != nil {
			return uploadErr
		}
		input.LogoURL = url
	}

	company, err := h.companies.Update(c.UserContext(), principal.UserID, c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Company updated successfully",
		"success": true,
		"company": company,
	})
}

func (h *CompaniesHandler) uploadLogo(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", apperrors.NewInternalError(err)
	}
	defer src.Close()

	key := fmt.Sprintf("logos/%s%s", uuid.NewString(), filepath.Ext(file.Filename))
	url, err := h.uploads.Upload(c.UserContext(), key, src, file.Header.Get("Content-Type"))
	if err != nil {
		return "", apperrors.NewInternalError(err)
	}
	return url, nil
}
