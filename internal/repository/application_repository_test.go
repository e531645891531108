package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/job-board-service/internal/domain"
	apperrors "github.com/spec-kit/job-board-service/pkg/util"
)

func newApplicationMock(t *testing.T) (pgxmock.PgxPoolIface, ApplicationRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewApplicationRepository(mock)
}

func TestApplicationRepository_CreateDefaultsToPending(t *testing.T) {
	mock, repo := newApplicationMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO applications")).
		WithArgs("job-1", "user-2", domain.StatusPending).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("application-1", now, now))

	application := &domain.Application{JobID: "job-1", ApplicantID: "user-2"}
	require.NoError(t, repo.Create(context.Background(), application))
	assert.Equal(t, "application-1", application.ID)
	assert.Equal(t, domain.StatusPending, application.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_CreateDuplicatePair(t *testing.T) {
	mock, repo := newApplicationMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO applications")).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "applications_job_id_applicant_id_key"})

	err := repo.Create(context.Background(), &domain.Application{JobID: "job-1", ApplicantID: "user-2"})
	require.Error(t, err)
	assert.True(t, apperrors.IsUniqueViolation(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_ListByJobNewestFirst(t *testing.T) {
	mock, repo := newApplicationMock(t)
	newer := time.Now()
	older := newer.Add(-time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("FROM applications") + `.*WHERE job_id=\$1 ORDER BY created_at DESC`).
		WithArgs("job-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "job_id", "applicant_id", "status", "created_at", "updated_at"}).
			AddRow("application-2", "job-1", "user-3", domain.StatusPending, newer, newer).
			AddRow("application-1", "job-1", "user-2", domain.StatusAccepted, older, older))

	applications, err := repo.ListByJob(context.Background(), "job-1")
	require.NoError(t, err)
	require.Len(t, applications, 2)
	assert.Equal(t, "application-2", applications[0].ID)
	assert.Equal(t, domain.StatusAccepted, applications[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_ListByApplicantEmpty(t *testing.T) {
	mock, repo := newApplicationMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM applications") + `.*WHERE applicant_id=\$1 ORDER BY created_at DESC`).
		WithArgs("user-2").
		WillReturnRows(pgxmock.NewRows([]string{"id", "job_id", "applicant_id", "status", "created_at", "updated_at"}))

	applications, err := repo.ListByApplicant(context.Background(), "user-2")
	require.NoError(t, err)
	assert.NotNil(t, applications)
	assert.Empty(t, applications)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_UpdateStatusMissingRow(t *testing.T) {
	mock, repo := newApplicationMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE applications SET status=$1")).
		WithArgs(domain.StatusRejected, "missing").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateStatus(context.Background(), "missing", domain.StatusRejected)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
