package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-board-service/internal/domain"
	"github.com/spec-kit/job-board-service/internal/repository"
	"github.com/spec-kit/job-board-service/internal/storage"
	apperrors "github.com/spec-kit/job-board-service/pkg/util"
)

// CompanyService coordinates company registration and updates.
type CompanyService struct {
	companies repository.CompanyRepository
	uploads   storage.Storage
}

// NewCompanyService builds the service.
func NewCompanyService(companies repository.CompanyRepository, uploads storage.Storage) *CompanyService {
	return &CompanyService{companies: companies, uploads: uploads}
}

// CompanyUpdateInput describes mutable company fields. LogoURL is set only
// when a logo upload accompanied the request.
type CompanyUpdateInput struct {
	Name        string
	Description string
	Website     string
	Location    string
	LogoURL     string
}

// Register creates a company owned by the caller. Duplicate names conflict.
func (s *CompanyService) Register(ctx context.Context, ownerUserID, name string) (*domain.Company, error) {
	if _, err := s.companies.GetByName(ctx, name); err == nil {
		return nil, apperrors.NewConflict("a company with this name is already registered")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	company := &domain.Company{
		Name:        name,
		OwnerUserID: ownerUserID,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("a company with this name is already registered")
		}
		return nil, err
	}
	return company, nil
}

// ListOwn returns companies owned by the caller.
func (s *CompanyService) ListOwn(ctx context.Context, ownerUserID string) ([]domain.Company, error) {
	return s.companies.ListByOwner(ctx, ownerUserID)
}

// GetByID returns a single company.
func (s *CompanyService) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	company, err := s.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("company")
		}
		return nil, err
	}
	return company, nil
}

// Update mutates a company. Only the owning user may update it.
func (s *CompanyService) Update(ctx context.Context, callerUserID, companyID string, input CompanyUpdateInput) (*domain.Company, error) {
	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("company")
		}
		return nil, err
	}
	if company.OwnerUserID != callerUserID {
		return nil, apperrors.NewForbidden("only the company owner can update it")
	}

	if input.Name != "" {
		company.Name = input.Name
	}
	if input.Description != "" {
		company.Description = input.Description
	}
	if input.Website != "" {
		company.Website = input.Website
	}
	if input.Location != "" {
		company.Location = input.Location
	}
	replacedLogo := ""
	if input.LogoURL != "" {
		if company.LogoURL != "" && company.LogoURL != input.LogoURL {
			replacedLogo = company.LogoURL
		}
		company.LogoURL = input.LogoURL
	}

	if err := s.companies.Update(ctx, company); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("a company with this name is already registered")
		}
		return nil, err
	}

	if replacedLogo != "" && s.uploads != nil {
		_ = s.uploads.Delete(ctx, replacedLogo)
	}
	return company, nil
}
