package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-board-service/internal/domain"
)

// CompanyRepository encapsulates company persistence.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	Update(ctx context.Context, company *domain.Company) error
	GetByID(ctx context.Context, id string) (*domain.Company, error)
	GetByName(ctx context.Context, name string) (*domain.Company, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]domain.Company, error)
}

type companyRepository struct {
	db DB
}

// NewCompanyRepository instantiates repository.
func NewCompanyRepository(db DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) error {
	const query = `
        INSERT INTO companies (name, description, website, location, logo_url, owner_user_id)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		company.Name,
		company.Description,
		company.Website,
		company.Location,
		company.LogoURL,
		company.OwnerUserID,
	).Scan(&company.ID, &company.CreatedAt, &company.UpdatedAt)
}

func (r *companyRepository) Update(ctx context.Context, company *domain.Company) error {
	const query = `
        UPDATE companies SET name=$1, description=$2, website=$3, location=$4, logo_url=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.db.Exec(ctx, query,
		company.Name,
		company.Description,
		company.Website,
		company.Location,
		company.LogoURL,
		company.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

const companySelect = `
        SELECT id, name, description, website, location, logo_url, owner_user_id, created_at, updated_at
        FROM companies`

func (r *companyRepository) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	return r.fetchSingle(ctx, companySelect+` WHERE id=$1`, id)
}

func (r *companyRepository) GetByName(ctx context.Context, name string) (*domain.Company, error) {
	return r.fetchSingle(ctx, companySelect+` WHERE name=$1`, name)
}

func (r *companyRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Company, error) {
	var company domain.Company
	if err := r.db.QueryRow(ctx, query, arg).Scan(
		&company.ID,
		&company.Name,
		&company.Description,
		&company.Website,
		&company.Location,
		&company.LogoURL,
		&company.OwnerUserID,
		&company.CreatedAt,
		&company.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) ListByOwner(ctx context.Context, ownerUserID string) ([]domain.Company, error) {
	const query = companySelect + ` WHERE owner_user_id=$1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Company{}
	for rows.Next() {
		var company domain.Company
		if err := rows.Scan(
			&company.ID,
			&company.Name,
			&company.Description,
			&company.Website,
			&company.Location,
			&company.LogoURL,
			&company.OwnerUserID,
			&company.CreatedAt,
			&company.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, company)
	}
	return result, rows.Err()
}
