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

// ApplicationService coordinates applying to jobs and reviewing applications.
type ApplicationService struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	resolver     *Resolver
	dispatcher   events.Dispatcher
}

// NewApplicationService builds the service.
func NewApplicationService(applications repository.ApplicationRepository, jobs repository.JobRepository, resolver *Resolver, dispatcher events.Dispatcher) *ApplicationService {
	return &ApplicationService{applications: applications, jobs: jobs, resolver: resolver, dispatcher: dispatcher}
}

// Apply submits an application for a job. The (job, applicant) uniqueness
// constraint in the database guards against duplicates, including concurrent
// submissions.
func (s *ApplicationService) Apply(ctx context.Context, applicantID, jobID string) (*domain.Application, error) {
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("job")
		}
		return nil, err
	}

	application := &domain.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      domain.StatusPending,
	}
	if err := s.applications.Create(ctx, application); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("you have already applied for this job")
		}
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:    events.EventApplicationSubmitted,
		ActorID: applicantID,
		Payload: events.ApplicationSubmittedPayload{
			ApplicationID: application.ID,
			JobID:         jobID,
			ApplicantID:   applicantID,
		},
	})
	return application, nil
}

// ListForApplicant returns the caller's applications, newest first, with the
// referenced job and its company expanded.
func (s *ApplicationService) ListForApplicant(ctx context.Context, applicantID string) ([]ApplicationView, error) {
	applications, err := s.applications.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	return s.resolver.ExpandApplications(ctx, applications, ExpandJob, ExpandJobCompany)
}

// ListApplicants returns a job's applications, newest first, with each
// applicant expanded. A missing job is reported as not found.
func (s *ApplicationService) ListApplicants(ctx context.Context, jobID string) ([]ApplicationView, error) {
	view, err := s.resolver.ExpandJob(ctx, jobID, ExpandApplicationsApplicant)
	if err != nil {
		return nil, err
	}
	return view.Applications, nil
}

// UpdateStatus changes an application's review status. Any input casing is
// accepted; the stored value is lowercase.
func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID, rawStatus string) (*domain.Application, error) {
	status, ok := domain.ParseApplicationStatus(rawStatus)
	if !ok {
		return nil, apperrors.NewBadRequest("status must be one of pending, accepted, rejected")
	}

	application, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("application")
		}
		return nil, err
	}

	oldStatus := application.Status
	if err := s.applications.UpdateStatus(ctx, applicationID, status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("application")
		}
		return nil, err
	}
	application.Status = status

	s.publish(ctx, events.Event{
		Type: events.EventApplicationStatusChanged,
		Payload: events.ApplicationStatusChangedPayload{
			ApplicationID: application.ID,
			OldStatus:     oldStatus,
			NewStatus:     status,
		},
	})
	return application, nil
}

func (s *ApplicationService) publish(ctx context.Context, event events.Event) {
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
