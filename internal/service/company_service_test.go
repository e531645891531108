package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyService_RegisterDuplicateName(t *testing.T) {
	companies := newFakeCompanyRepo()
	svc := NewCompanyService(companies, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, "user-1", "Initech")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "user-2", "Initech")
	requireDomainError(t, err, "ConflictError")
}

func TestCompanyService_UpdateByOwner(t *testing.T) {
	companies := newFakeCompanyRepo()
	svc := NewCompanyService(companies, nil)
	ctx := context.Background()

	company, err := svc.Register(ctx, "user-1", "Initech")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "user-1", company.ID, CompanyUpdateInput{
		Description: "TPS report automation",
		Location:    "Austin",
	})
	require.NoError(t, err)
	assert.Equal(t, "Initech", updated.Name)
	assert.Equal(t, "TPS report automation", updated.Description)
	assert.Equal(t, "Austin", updated.Location)
}

func TestCompanyService_UpdateByNonOwnerForbidden(t *testing.T) {
	companies := newFakeCompanyRepo()
	svc := NewCompanyService(companies, nil)
	ctx := context.Background()

	company, err := svc.Register(ctx, "user-1", "Initech")
	require.NoError(t, err)

	_, err = svc.Update(ctx, "user-2", company.ID, CompanyUpdateInput{Name: "Hijacked"})
	requireDomainError(t, err, "ForbiddenError")

	stored, err := companies.GetByID(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, "Initech", stored.Name)
}

func TestCompanyService_UpdateDeletesReplacedLogo(t *testing.T) {
	companies := newFakeCompanyRepo()
	uploads := &fakeStorage{}
	svc := NewCompanyService(companies, uploads)
	ctx := context.Background()

	company, err := svc.Register(ctx, "user-1", "Initech")
	require.NoError(t, err)

	_, err = svc.Update(ctx, "user-1", company.ID, CompanyUpdateInput{LogoURL: "/uploads/logos/v1.png"})
	require.NoError(t, err)
	assert.Empty(t, uploads.deleted)

	_, err = svc.Update(ctx, "user-1", company.ID, CompanyUpdateInput{LogoURL: "/uploads/logos/v2.png"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/uploads/logos/v1.png"}, uploads.deleted)
}

func TestCompanyService_UpdateMissingCompany(t *testing.T) {
	svc := NewCompanyService(newFakeCompanyRepo(), nil)

	_, err := svc.Update(context.Background(), "user-1", "missing", CompanyUpdateInput{})
	requireDomainError(t, err, "NotFoundError")
}

func TestCompanyService_ListOwnEmpty(t *testing.T) {
	svc := NewCompanyService(newFakeCompanyRepo(), nil)

	companies, err := svc.ListOwn(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NotNil(t, companies)
	assert.Empty(t, companies)
}

func TestCompanyService_GetByIDMissing(t *testing.T) {
	svc := NewCompanyService(newFakeCompanyRepo(), nil)

	_, err := svc.GetByID(context.Background(), "missing")
	requireDomainError(t, err, "NotFoundError")
}
