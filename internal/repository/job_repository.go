package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-board-service/internal/domain"
)

// JobRepository encapsulates job persistence.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	Search(ctx context.Context, keyword string) ([]domain.Job, error)
	ListByCreator(ctx context.Context, userID string) ([]domain.Job, error)
}

type jobRepository struct {
	db DB
}

// NewJobRepository instantiates repository.
func NewJobRepository(db DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	const query = `
        INSERT INTO jobs (title, description, requirements, salary, location, job_type, experience_level, position, company_id, created_by)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		job.Title,
		job.Description,
		job.Requirements,
		job.Salary,
		job.Location,
		job.JobType,
		job.ExperienceLevel,
		job.Position,
		job.CompanyID,
		job.CreatedBy,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
}

const jobSelect = `
        SELECT id, title, description, requirements, salary, location, job_type, experience_level,
               position, company_id, created_by, created_at, updated_at
        FROM jobs`

func (r *jobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	var job domain.Job
	if err := r.db.QueryRow(ctx, jobSelect+` WHERE id=$1`, id).Scan(
		&job.ID,
		&job.Title,
		&job.Description,
		&job.Requirements,
		&job.Salary,
		&job.Location,
		&job.JobType,
		&job.ExperienceLevel,
		&job.Position,
		&job.CompanyID,
		&job.CreatedBy,
		&job.CreatedAt,
		&job.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &job, nil
}

// Search matches the keyword case-insensitively against title or description,
// newest first. An empty keyword returns every job.
func (r *jobRepository) Search(ctx context.Context, keyword string) ([]domain.Job, error) {
	const query = jobSelect + `
        WHERE (title ILIKE $1 OR description ILIKE $1)
        ORDER BY created_at DESC`

	pattern := "%" + strings.TrimSpace(keyword) + "%"
	rows, err := r.db.Query(ctx, query, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func (r *jobRepository) ListByCreator(ctx context.Context, userID string) ([]domain.Job, error) {
	const query = jobSelect + ` WHERE created_by=$1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func scanJobs(rows pgx.Rows) ([]domain.Job, error) {
	result := []domain.Job{}
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID,
			&job.Title,
			&job.Description,
			&job.Requirements,
			&job.Salary,
			&job.Location,
			&job.JobType,
			&job.ExperienceLevel,
			&job.Position,
			&job.CompanyID,
			&job.CreatedBy,
			&job.CreatedAt,
			&job.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, job)
	}
	return result, rows.Err()
}
