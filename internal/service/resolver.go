package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-board-service/internal/domain"
	"github.com/spec-kit/job-board-service/internal/repository"
	apperrors "github.com/spec-kit/job-board-service/pkg/util"
)

// ExpandPath names a reference path the resolver can expand at read time.
type ExpandPath string

const (
	ExpandCompany               ExpandPath = "company"
	ExpandApplications          ExpandPath = "applications"
	ExpandApplicationsApplicant ExpandPath = "applications.applicant"
	ExpandApplicant             ExpandPath = "applicant"
	ExpandJob                   ExpandPath = "job"
	ExpandJobCompany            ExpandPath = "job.company"
)

// JobView is a job with its references expanded. The expanded company
// shadows the stored company reference in JSON output; a missing referenced
// company renders as null. Applications is null when not expanded and an
// empty array when expanded with no applications.
type JobView struct {
	domain.Job
	Company      *domain.Company   `json:"company"`
	Applications []ApplicationView `json:"applications"`
}

// ApplicationView is an application with its references expanded. Unexpanded
// references serialize as null.
type ApplicationView struct {
	domain.Application
	Applicant *domain.User `json:"applicant"`
	Job       *JobView     `json:"job"`
}

// Resolver expands stored identifier references into full documents. Missing
// referenced documents become nil rather than failing the expansion; only a
// missing root entity is reported as not found.
type Resolver struct {
	users        repository.UserRepository
	companies    repository.CompanyRepository
	jobs         repository.JobRepository
	applications repository.ApplicationRepository
}

// NewResolver constructs the resolver.
func NewResolver(users repository.UserRepository, companies repository.CompanyRepository, jobs repository.JobRepository, applications repository.ApplicationRepository) *Resolver {
	return &Resolver{users: users, companies: companies, jobs: jobs, applications: applications}
}

// ExpandJob fetches a job by ID and expands the requested paths. A missing
// root job yields NotFoundError.
func (r *Resolver) ExpandJob(ctx context.Context, jobID string, paths ...ExpandPath) (*JobView, error) {
	job, err := r.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("job")
		}
		return nil, err
	}
	view, err := r.expandJob(ctx, *job, paths)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// ExpandJobs expands the requested paths on an already-fetched job list.
func (r *Resolver) ExpandJobs(ctx context.Context, jobs []domain.Job, paths ...ExpandPath) ([]JobView, error) {
	views := make([]JobView, 0, len(jobs))
	for _, job := range jobs {
		view, err := r.expandJob(ctx, job, paths)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (r *Resolver) expandJob(ctx context.Context, job domain.Job, paths []ExpandPath) (JobView, error) {
	view := JobView{Job: job}
	for _, path := range paths {
		switch path {
		case ExpandCompany:
			company, err := r.lookupCompany(ctx, job.CompanyID)
			if err != nil {
				return JobView{}, err
			}
			view.Company = company
		case ExpandApplications, ExpandApplicationsApplicant:
			if view.Applications != nil {
				continue
			}
			applications, err := r.applications.ListByJob(ctx, job.ID)
			if err != nil {
				return JobView{}, err
			}
			nested := []ExpandPath{}
			if path == ExpandApplicationsApplicant || containsPath(paths, ExpandApplicationsApplicant) {
				nested = append(nested, ExpandApplicant)
			}
			appViews, err := r.ExpandApplications(ctx, applications, nested...)
			if err != nil {
				return JobView{}, err
			}
			view.Applications = appViews
		}
	}
	return view, nil
}

// ExpandApplication fetches an application by ID and expands the requested
// paths. A missing root application yields NotFoundError.
func (r *Resolver) ExpandApplication(ctx context.Context, applicationID string, paths ...ExpandPath) (*ApplicationView, error) {
	application, err := r.applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("application")
		}
		return nil, err
	}
	views, err := r.ExpandApplications(ctx, []domain.Application{*application}, paths...)
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// ExpandApplications expands the requested paths on an already-fetched
// application list. Input order is preserved; callers rely on the repository
// returning applications sorted by creation time, newest first.
func (r *Resolver) ExpandApplications(ctx context.Context, applications []domain.Application, paths ...ExpandPath) ([]ApplicationView, error) {
	views := make([]ApplicationView, 0, len(applications))
	for _, application := range applications {
		view := ApplicationView{Application: application}
		for _, path := range paths {
			switch path {
			case ExpandApplicant:
				applicant, err := r.lookupUser(ctx, application.ApplicantID)
				if err != nil {
					return nil, err
				}
				view.Applicant = applicant
			case ExpandJob, ExpandJobCompany:
				if view.Job != nil {
					continue
				}
				job, err := r.lookupJob(ctx, application.JobID)
				if err != nil {
					return nil, err
				}
				if job == nil {
					continue
				}
				jobView := JobView{Job: *job}
				if path == ExpandJobCompany || containsPath(paths, ExpandJobCompany) {
					company, err := r.lookupCompany(ctx, job.CompanyID)
					if err != nil {
						return nil, err
					}
					jobView.Company = company
				}
				view.Job = &jobView
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// lookup helpers translate a missing referenced document into nil so one
// dangling reference cannot fail a whole expansion.

func (r *Resolver) lookupCompany(ctx context.Context, id string) (*domain.Company, error) {
	company, err := r.companies.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return company, err
}

func (r *Resolver) lookupUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := r.users.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return user, err
}

func (r *Resolver) lookupJob(ctx context.Context, id string) (*domain.Job, error) {
	job, err := r.jobs.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return job, err
}

func containsPath(paths []ExpandPath, target ExpandPath) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}
	return false
}
