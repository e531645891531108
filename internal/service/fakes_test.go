package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-board-service/internal/domain"
)

// In-memory repository fakes. Lookups miss with pgx.ErrNoRows, matching the
// behavior of the Postgres-backed implementations; createErr hooks simulate
// constraint violations.

type fakeUserRepo struct {
	users     map[string]*domain.User
	createErr error
	updateErr error
	seq       int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.seq++
	user.ID = fmt.Sprintf("user-%d", f.seq)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range f.users {
		if strings.EqualFold(user.Email, email) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

// fakeStorage records deletions so tests can assert replaced uploads are
// cleaned up.
type fakeStorage struct {
	deleted []string
}

func (f *fakeStorage) Upload(_ context.Context, key string, _ io.Reader, _ string) (string, error) {
	return "/uploads/" + key, nil
}

func (f *fakeStorage) Delete(_ context.Context, url string) error {
	f.deleted = append(f.deleted, url)
	return nil
}

type fakeCompanyRepo struct {
	companies map[string]*domain.Company
	createErr error
	seq       int
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[string]*domain.Company{}}
}

func (f *fakeCompanyRepo) Create(_ context.Context, company *domain.Company) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.seq++
	company.ID = fmt.Sprintf("company-%d", f.seq)
	company.CreatedAt = time.Now()
	company.UpdatedAt = company.CreatedAt
	stored := *company
	f.companies[company.ID] = &stored
	return nil
}

func (f *fakeCompanyRepo) Update(_ context.Context, company *domain.Company) error {
	if _, ok := f.companies[company.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *company
	f.companies[company.ID] = &stored
	return nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id string) (*domain.Company, error) {
	company, ok := f.companies[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *company
	return &copied, nil
}

func (f *fakeCompanyRepo) GetByName(_ context.Context, name string) (*domain.Company, error) {
	for _, company := range f.companies {
		if company.Name == name {
			copied := *company
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeCompanyRepo) ListByOwner(_ context.Context, ownerUserID string) ([]domain.Company, error) {
	result := []domain.Company{}
	for _, company := range f.companies {
		if company.OwnerUserID == ownerUserID {
			result = append(result, *company)
		}
	}
	return result, nil
}

type fakeJobRepo struct {
	jobs      map[string]*domain.Job
	createErr error
	seq       int
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[string]*domain.Job{}}
}

func (f *fakeJobRepo) Create(_ context.Context, job *domain.Job) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.seq++
	job.ID = fmt.Sprintf("job-%d", f.seq)
	job.CreatedAt = time.Now()
	job.UpdatedAt = job.CreatedAt
	stored := *job
	f.jobs[job.ID] = &stored
	return nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id string) (*domain.Job, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *job
	return &copied, nil
}

func (f *fakeJobRepo) Search(_ context.Context, keyword string) ([]domain.Job, error) {
	keyword = strings.ToLower(keyword)
	result := []domain.Job{}
	for _, job := range f.jobs {
		if keyword == "" ||
			strings.Contains(strings.ToLower(job.Title), keyword) ||
			strings.Contains(strings.ToLower(job.Description), keyword) {
			result = append(result, *job)
		}
	}
	return result, nil
}

func (f *fakeJobRepo) ListByCreator(_ context.Context, userID string) ([]domain.Job, error) {
	result := []domain.Job{}
	for _, job := range f.jobs {
		if job.CreatedBy == userID {
			result = append(result, *job)
		}
	}
	return result, nil
}

type fakeApplicationRepo struct {
	applications []*domain.Application
	createErr    error
	seq          int
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{}
}

func (f *fakeApplicationRepo) Create(_ context.Context, application *domain.Application) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.seq++
	application.ID = fmt.Sprintf("application-%d", f.seq)
	application.CreatedAt = time.Now()
	application.UpdatedAt = application.CreatedAt
	stored := *application
	f.applications = append(f.applications, &stored)
	return nil
}

func (f *fakeApplicationRepo) GetByID(_ context.Context, id string) (*domain.Application, error) {
	for _, application := range f.applications {
		if application.ID == id {
			copied := *application
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeApplicationRepo) UpdateStatus(_ context.Context, id string, status domain.ApplicationStatus) error {
	for _, application := range f.applications {
		if application.ID == id {
			application.Status = status
			application.UpdatedAt = time.Now()
			return nil
		}
	}
	return pgx.ErrNoRows
}

// listDesc mirrors the repository's ORDER BY created_at DESC contract.
func (f *fakeApplicationRepo) listDesc(match func(*domain.Application) bool) []domain.Application {
	result := []domain.Application{}
	for _, application := range f.applications {
		if match(application) {
			result = append(result, *application)
		}
	}
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		if result[i].CreatedAt.Before(result[j].CreatedAt) {
			result[i], result[j] = result[j], result[i]
		}
	}
	return result
}

func (f *fakeApplicationRepo) ListByApplicant(_ context.Context, applicantID string) ([]domain.Application, error) {
	return f.listDesc(func(a *domain.Application) bool { return a.ApplicantID == applicantID }), nil
}

func (f *fakeApplicationRepo) ListByJob(_ context.Context, jobID string) ([]domain.Application, error) {
	return f.listDesc(func(a *domain.Application) bool { return a.JobID == jobID }), nil
}
