package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-board-service/internal/domain"
	"github.com/spec-kit/job-board-service/internal/events"
	"github.com/spec-kit/job-board-service/internal/repository"
	apperrors "github.com/spec-kit/job-board-service/pkg/util"
)

// JobService coordinates job posting and retrieval.
type JobService struct {
	jobs       repository.JobRepository
	companies  repository.CompanyRepository
	resolver   *Resolver
	dispatcher events.Dispatcher
}

// NewJobService builds the service.
func NewJobService(jobs repository.JobRepository, companies repository.CompanyRepository, resolver *Resolver, dispatcher events.Dispatcher) *JobService {
	return &JobService{jobs: jobs, companies: companies, resolver: resolver, dispatcher: dispatcher}
}

// JobPostInput describes the job creation payload.
type JobPostInput struct {
	Title           string
	Description     string
	Requirements    []string
	Salary          float64
	Location        string
	JobType         string
	ExperienceLevel string
	Position        int
	CompanyID       string
}

// Post creates a job for the given admin user. The referenced company must
// exist; job fields other than the derived application list are immutable
// after creation, so no update operation is offered.
func (s *JobService) Post(ctx context.Context, creatorUserID string, input JobPostInput) (*domain.Job, error) {
	if input.Salary < 0 {
		return nil, apperrors.NewBadRequest("salary must be non-negative")
	}
	if _, err := s.companies.GetByID(ctx, input.CompanyID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("company")
		}
		return nil, err
	}

	job := &domain.Job{
		Title:           input.Title,
		Description:     input.Description,
		Requirements:    input.Requirements,
		Salary:          input.Salary,
		Location:        input.Location,
		JobType:         input.JobType,
		ExperienceLevel: input.ExperienceLevel,
		Position:        input.Position,
		CompanyID:       input.CompanyID,
		CreatedBy:       creatorUserID,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:    events.EventJobPosted,
		ActorID: creatorUserID,
		Payload: events.JobPostedPayload{
			JobID:     job.ID,
			CompanyID: job.CompanyID,
			Title:     job.Title,
		},
	})
	return job, nil
}

// Search returns jobs matching the keyword, newest first, with company data
// expanded.
func (s *JobService) Search(ctx context.Context, keyword string) ([]JobView, error) {
	jobs, err := s.jobs.Search(ctx, keyword)
	if err != nil {
		return nil, err
	}
	return s.resolver.ExpandJobs(ctx, jobs, ExpandCompany)
}

// GetByID returns a job with its company and applications expanded.
func (s *JobService) GetByID(ctx context.Context, jobID string) (*JobView, error) {
	return s.resolver.ExpandJob(ctx, jobID, ExpandCompany, ExpandApplications)
}

// ListByCreator returns the jobs an admin user has posted, company expanded.
func (s *JobService) ListByCreator(ctx context.Context, creatorUserID string) ([]JobView, error) {
	jobs, err := s.jobs.ListByCreator(ctx, creatorUserID)
	if err != nil {
		return nil, err
	}
	return s.resolver.ExpandJobs(ctx, jobs, ExpandCompany)
}

func (s *JobService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
