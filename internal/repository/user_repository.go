package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-board-service/internal/domain"
)

// UserRepository defines persistence access for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type userRepository struct {
	db DB
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (full_name, email, phone_number, password_hash, role, bio, skills, resume_url, resume_original_name, photo_url)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		user.FullName,
		user.Email,
		user.PhoneNumber,
		user.PasswordHash,
		user.Role,
		user.Profile.Bio,
		user.Profile.Skills,
		user.Profile.ResumeURL,
		user.Profile.ResumeOriginalName,
		user.Profile.PhotoURL,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	const query = `
        UPDATE users SET full_name=$1, email=$2, phone_number=$3, password_hash=$4, bio=$5, skills=$6,
            resume_url=$7, resume_original_name=$8, photo_url=$9, updated_at=NOW()
        WHERE id=$10`

	cmd, err := r.db.Exec(ctx, query,
		user.FullName,
		user.Email,
		user.PhoneNumber,
		user.PasswordHash,
		user.Profile.Bio,
		user.Profile.Skills,
		user.Profile.ResumeURL,
		user.Profile.ResumeOriginalName,
		user.Profile.PhotoURL,
		user.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const query = userSelect + ` WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = userSelect + ` WHERE email=$1`
	return r.fetchSingle(ctx, query, email)
}

const userSelect = `
        SELECT id, full_name, email, phone_number, password_hash, role, bio, skills,
               resume_url, resume_original_name, photo_url, created_at, updated_at
        FROM users`

func (r *userRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	if err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.FullName,
		&user.Email,
		&user.PhoneNumber,
		&user.PasswordHash,
		&user.Role,
		&user.Profile.Bio,
		&user.Profile.Skills,
		&user.Profile.ResumeURL,
		&user.Profile.ResumeOriginalName,
		&user.Profile.PhotoURL,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}
