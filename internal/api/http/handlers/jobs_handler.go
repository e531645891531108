package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board-service/internal/api/dto"
	"github.com/spec-kit/job-board-service/internal/auth"
	"github.com/spec-kit/job-board-service/internal/service"
	apperrors "github.com/spec-kit/job-board-service/pkg/util"
)

// JobsHandler exposes job endpoints.
type JobsHandler struct {
	jobs *service.JobService
}

// NewJobsHandler constructs handler.
func NewJobsHandler(jobService *service.JobService) *JobsHandler {
	return &JobsHandler{jobs: jobService}
}

// Post handles POST /job/post (admin only).
func (h *JobsHandler) Post(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.JobPostRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	job, err := h.jobs.Post(c.UserContext(), principal.UserID, service.JobPostInput{
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    dto.SplitCSV(req.Requirements),
		Salary:          req.Salary,
		Location:        req.Location,
		JobType:         req.JobType,
		ExperienceLevel: req.Experience,
		Position:        req.Position,
		CompanyID:       req.CompanyID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "New job created successfully",
		"success": true,
		"job":     job,
	})
}

// Search handles GET /job/get.
func (h *JobsHandler) Search(c *fiber.Ctx) error {
	jobs, err := h.jobs.Search(c.UserContext(), c.Query("keyword"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Jobs found successfully",
		"success": true,
		"jobs":    jobs,
	})
}

// GetByID handles GET /job/get/:id.
func (h *JobsHandler) GetByID(c *fiber.Ctx) error {
	job, err := h.jobs.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Job found",
		"success": true,
		"job":     job,
	})
}

// GetAdmin handles GET /job/getAdmin (admin only).
func (h *JobsHandler) GetAdmin(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	jobs, err := h.jobs.ListByCreator(c.UserContext(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Jobs found successfully",
		"success": true,
		"jobs":    jobs,
	})
}
