package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/job-board-service/internal/domain"
)

func newTestApplicationService() (*ApplicationService, *fakeJobRepo, *fakeApplicationRepo) {
	resolver, _, _, jobs, applications := newTestResolver()
	svc := NewApplicationService(applications, jobs, resolver, nil)
	return svc, jobs, applications
}

func TestApplicationService_Apply(t *testing.T) {
	svc, jobs, _ := newTestApplicationService()
	ctx := context.Background()

	job := &domain.Job{Title: "Backend Engineer", CompanyID: "company-1", CreatedBy: "user-9"}
	require.NoError(t, jobs.Create(ctx, job))

	application, err := svc.Apply(ctx, "user-2", job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, application.Status)
	assert.Equal(t, job.ID, application.JobID)
	assert.Equal(t, "user-2", application.ApplicantID)
}

func TestApplicationService_ApplyMissingJob(t *testing.T) {
	svc, _, _ := newTestApplicationService()

	_, err := svc.Apply(context.Background(), "user-2", "missing")
	requireDomainError(t, err, "NotFoundError")
}

func TestApplicationService_ApplyTwiceConflicts(t *testing.T) {
	svc, jobs, applications := newTestApplicationService()
	ctx := context.Background()

	job := &domain.Job{Title: "Backend Engineer", CompanyID: "company-1", CreatedBy: "user-9"}
	require.NoError(t, jobs.Create(ctx, job))

	_, err := svc.Apply(ctx, "user-2", job.ID)
	require.NoError(t, err)

	// The database enforces (job, applicant) uniqueness.
	applications.createErr = &pgconn.PgError{Code: "23505"}
	_, err = svc.Apply(ctx, "user-2", job.ID)
	requireDomainError(t, err, "ConflictError")
}

func TestApplicationService_UpdateStatusNormalizesCase(t *testing.T) {
	svc, jobs, _ := newTestApplicationService()
	ctx := context.Background()

	job := &domain.Job{Title: "Backend Engineer", CompanyID: "company-1", CreatedBy: "user-9"}
	require.NoError(t, jobs.Create(ctx, job))
	application, err := svc.Apply(ctx, "user-2", job.ID)
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, application.ID, "ACCEPTED")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, updated.Status)
}

func TestApplicationService_UpdateStatusRejectsUnknown(t *testing.T) {
	svc, _, _ := newTestApplicationService()

	_, err := svc.UpdateStatus(context.Background(), "application-1", "on-hold")
	requireDomainError(t, err, "BadRequestError")
}

func TestApplicationService_UpdateStatusMissingApplication(t *testing.T) {
	svc, _, _ := newTestApplicationService()

	_, err := svc.UpdateStatus(context.Background(), "missing", "accepted")
	requireDomainError(t, err, "NotFoundError")
}

func TestApplicationService_ListForApplicantExpandsJob(t *testing.T) {
	resolver, _, companies, jobs, applications := newTestResolver()
	svc := NewApplicationService(applications, jobs, resolver, nil)
	ctx := context.Background()

	company := &domain.Company{Name: "Initech", OwnerUserID: "user-9"}
	require.NoError(t, companies.Create(ctx, company))
	job := &domain.Job{Title: "Backend Engineer", CompanyID: company.ID, CreatedBy: "user-9"}
	require.NoError(t, jobs.Create(ctx, job))

	_, err := svc.Apply(ctx, "user-2", job.ID)
	require.NoError(t, err)

	views, err := svc.ListForApplicant(ctx, "user-2")
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.NotNil(t, views[0].Job)
	assert.Equal(t, "Backend Engineer", views[0].Job.Title)
	require.NotNil(t, views[0].Job.Company)
	assert.Equal(t, "Initech", views[0].Job.Company.Name)
}

func TestApplicationService_ListApplicantsMissingJob(t *testing.T) {
	svc, _, _ := newTestApplicationService()

	_, err := svc.ListApplicants(context.Background(), "missing")
	requireDomainError(t, err, "NotFoundError")
}
