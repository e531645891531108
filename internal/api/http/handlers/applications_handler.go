package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board-service/internal/api/dto"
	"github.com/spec-kit/job-board-service/internal/auth"
	"github.com/spec-kit/job-board-service/internal/service"
	apperrors "github.com/spec-kit/job-board-service/pkg/util"
)

// ApplicationsHandler exposes application endpoints.
type ApplicationsHandler struct {
	applications *service.ApplicationService
}

// NewApplicationsHandler constructs handler.
func NewApplicationsHandler(applicationService *service.ApplicationService) *ApplicationsHandler {
	return &ApplicationsHandler{applications: applicationService}
}

// Apply handles POST /application/apply/:id (seeker only).
func (h *ApplicationsHandler) Apply(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	jobID := c.Params("id")
	if jobID == "" {
		return apperrors.NewBadRequest("job ID is required")
	}

	application, err := h.applications.Apply(c.UserContext(), principal.UserID, jobID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message":     "Application submitted successfully",
		"success":     true,
		"application": application,
	})
}

// GetApplied handles GET /application/get (seeker only).
func (h *ApplicationsHandler) GetApplied(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	applications, err := h.applications.ListForApplicant(c.UserContext(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":      "Applications found",
		"success":      true,
		"applications": applications,
	})
}

// GetApplicants handles GET /application/:id/applicants (admin only).
func (h *ApplicationsHandler) GetApplicants(c *fiber.Ctx) error {
	applications, err := h.applications.ListApplicants(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":      "Applications found",
		"success":      true,
		"applications": applications,
	})
}

// UpdateStatus handles PUT /application/status/:id (admin only).
func (h *ApplicationsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.ApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	application, err := h.applications.UpdateStatus(c.UserContext(), c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":     "Status updated successfully",
		"success":     true,
		"application": application,
	})
}
