package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-board-service/internal/domain"
)

// ApplicationRepository encapsulates application persistence. Duplicate
// submissions for the same (job, applicant) pair are rejected by a database
// uniqueness constraint rather than an application-level pre-check.
type ApplicationRepository interface {
	Create(ctx context.Context, application *domain.Application) error
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error
	ListByApplicant(ctx context.Context, applicantID string) ([]domain.Application, error)
	ListByJob(ctx context.Context, jobID string) ([]domain.Application, error)
}

type applicationRepository struct {
	db DB
}

// NewApplicationRepository instantiates repository.
func NewApplicationRepository(db DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, application *domain.Application) error {
	const query = `
        INSERT INTO applications (job_id, applicant_id, status)
        VALUES ($1,$2,$3)
        RETURNING id, created_at, updated_at`

	if application.Status == "" {
		application.Status = domain.StatusPending
	}
	return r.db.QueryRow(ctx, query,
		application.JobID,
		application.ApplicantID,
		application.Status,
	).Scan(&application.ID, &application.CreatedAt, &application.UpdatedAt)
}

const applicationSelect = `
        SELECT id, job_id, applicant_id, status, created_at, updated_at
        FROM applications`

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	var application domain.Application
	if err := r.db.QueryRow(ctx, applicationSelect+` WHERE id=$1`, id).Scan(
		&application.ID,
		&application.JobID,
		&application.ApplicantID,
		&application.Status,
		&application.CreatedAt,
		&application.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error {
	const query = `UPDATE applications SET status=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *applicationRepository) ListByApplicant(ctx context.Context, applicantID string) ([]domain.Application, error) {
	const query = applicationSelect + ` WHERE applicant_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, applicantID)
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID string) ([]domain.Application, error) {
	const query = applicationSelect + ` WHERE job_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, jobID)
}

func (r *applicationRepository) list(ctx context.Context, query string, arg any) ([]domain.Application, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Application{}
	for rows.Next() {
		var application domain.Application
		if err := rows.Scan(
			&application.ID,
			&application.JobID,
			&application.ApplicantID,
			&application.Status,
			&application.CreatedAt,
			&application.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, application)
	}
	return result, rows.Err()
}
