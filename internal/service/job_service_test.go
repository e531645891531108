package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/job-board-service/internal/domain"
	"github.com/spec-kit/job-board-service/internal/events"
)

func newTestJobService() (*JobService, *fakeCompanyRepo, *fakeJobRepo, *fakeApplicationRepo) {
	resolver, _, companies, jobs, applications := newTestResolver()
	svc := NewJobService(jobs, companies, resolver, events.NewInMemoryDispatcher())
	return svc, companies, jobs, applications
}

func TestJobService_Post(t *testing.T) {
	svc, companies, _, _ := newTestJobService()
	ctx := context.Background()

	company := &domain.Company{Name: "Initech", OwnerUserID: "admin-1"}
	require.NoError(t, companies.Create(ctx, company))

	job, err := svc.Post(ctx, "admin-1", JobPostInput{
		Title:        "Backend Engineer",
		Description:  "Build the API",
		Requirements: []string{"Go", "Postgres"},
		Salary:       120000,
		Location:     "Remote",
		JobType:      "full-time",
		Position:     2,
		CompanyID:    company.ID,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, "admin-1", job.CreatedBy)
	assert.Equal(t, company.ID, job.CompanyID)
}

func TestJobService_PostNegativeSalary(t *testing.T) {
	svc, _, _, _ := newTestJobService()

	_, err := svc.Post(context.Background(), "admin-1", JobPostInput{Title: "x", Salary: -1, CompanyID: "company-1"})
	requireDomainError(t, err, "BadRequestError")
}

func TestJobService_PostMissingCompany(t *testing.T) {
	svc, _, _, _ := newTestJobService()

	_, err := svc.Post(context.Background(), "admin-1", JobPostInput{Title: "x", CompanyID: "missing"})
	requireDomainError(t, err, "NotFoundError")
}

func TestJobService_SearchExpandsCompany(t *testing.T) {
	svc, companies, jobs, _ := newTestJobService()
	ctx := context.Background()

	company := &domain.Company{Name: "Initech", OwnerUserID: "admin-1"}
	require.NoError(t, companies.Create(ctx, company))
	require.NoError(t, jobs.Create(ctx, &domain.Job{Title: "Backend Engineer", CompanyID: company.ID, CreatedBy: "admin-1"}))
	require.NoError(t, jobs.Create(ctx, &domain.Job{Title: "Gardener", CompanyID: company.ID, CreatedBy: "admin-1"}))

	views, err := svc.Search(ctx, "backend")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Backend Engineer", views[0].Title)
	require.NotNil(t, views[0].Company)
	assert.Equal(t, "Initech", views[0].Company.Name)
}

func TestJobService_SearchNoMatchesReturnsEmpty(t *testing.T) {
	svc, _, _, _ := newTestJobService()

	views, err := svc.Search(context.Background(), "nothing")
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestJobService_GetByIDExpandsApplications(t *testing.T) {
	svc, companies, jobs, applications := newTestJobService()
	ctx := context.Background()

	company := &domain.Company{Name: "Initech", OwnerUserID: "admin-1"}
	require.NoError(t, companies.Create(ctx, company))
	job := &domain.Job{Title: "Backend Engineer", CompanyID: company.ID, CreatedBy: "admin-1"}
	require.NoError(t, jobs.Create(ctx, job))
	require.NoError(t, applications.Create(ctx, &domain.Application{JobID: job.ID, ApplicantID: "user-2", Status: domain.StatusPending}))

	view, err := svc.GetByID(ctx, job.ID)
	require.NoError(t, err)
	require.NotNil(t, view.Company)
	require.Len(t, view.Applications, 1)
	assert.Equal(t, "user-2", view.Applications[0].ApplicantID)
}

func TestJobService_GetByIDMissing(t *testing.T) {
	svc, _, _, _ := newTestJobService()

	_, err := svc.GetByID(context.Background(), "missing")
	requireDomainError(t, err, "NotFoundError")
}

func TestJobService_ListByCreator(t *testing.T) {
	svc, companies, jobs, _ := newTestJobService()
	ctx := context.Background()

	company := &domain.Company{Name: "Initech", OwnerUserID: "admin-1"}
	require.NoError(t, companies.Create(ctx, company))
	require.NoError(t, jobs.Create(ctx, &domain.Job{Title: "Mine", CompanyID: company.ID, CreatedBy: "admin-1"}))
	require.NoError(t, jobs.Create(ctx, &domain.Job{Title: "Theirs", CompanyID: company.ID, CreatedBy: "admin-2"}))

	views, err := svc.ListByCreator(ctx, "admin-1")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Mine", views[0].Title)
}
