package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mittalrohan/kirana/internal/pkg/apperrors"
	"github.com/mittalrohan/kirana/internal/pkg/models"
)

func setupSQLRepo(t *testing.T) (*SessionRepo, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	return NewSessionRepo(&models.Config{}, db, nil), mock
}

func profileColumns() []string {
	return []string{"subject_id", "phone", "email", "role", "created_at", "last_login_at"}
}

func upsertColumns() []string {
	return []string{"subject_id", "phone", "email", "role", "created_at", "last_login_at", "is_new"}
}

func TestUpsertProfile_FirstSighting(t *testing.T) {
	repo, mock := setupSQLRepo(t)

	subjectID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("INSERT INTO profiles").
		WithArgs(subjectID, "+919876543210", "", models.RoleUser, now).
		WillReturnRows(sqlmock.NewRows(upsertColumns()).
			AddRow(subjectID, "+919876543210", "", models.RoleUser, now, now, true))

	profile, isNew, err := repo.UpsertProfile(context.Background(), subjectID, "+919876543210", "", models.RoleUser, now)
	require.NoError(t, err)

	assert.True(t, isNew)
	assert.Equal(t, subjectID, profile.SubjectID)
	assert.Equal(t, "+919876543210", profile.Phone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertProfile_RepeatLogin(t *testing.T) {
	repo, mock := setupSQLRepo(t)

	subjectID := uuid.New()
	createdAt := time.Now().Add(-24 * time.Hour)
	now := time.Now()

	// Contact stays as stored even though this login brought an email
	mock.ExpectQuery("INSERT INTO profiles").
		WithArgs(subjectID, "", "ravi@example.com", models.RoleUser, now).
		WillReturnRows(sqlmock.NewRows(upsertColumns()).
			AddRow(subjectID, "+919876543210", "ravi@example.com", models.RoleUser, createdAt, now, false))

	profile, isNew, err := repo.UpsertProfile(context.Background(), subjectID, "", "ravi@example.com", models.RoleUser, now)
	require.NoError(t, err)

	assert.False(t, isNew)
	assert.Equal(t, "+919876543210", profile.Phone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// is_new comes from the row's transaction metadata, not from
// timestamps: a repeat login that lands in the same instant as the
// insert must still report an existing user.
func TestUpsertProfile_RepeatLoginSameTimestamp(t *testing.T) {
	repo, mock := setupSQLRepo(t)

	subjectID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("INSERT INTO profiles").
		WithArgs(subjectID, "+919876543210", "", models.RoleUser, now).
		WillReturnRows(sqlmock.NewRows(upsertColumns()).
			AddRow(subjectID, "+919876543210", "", models.RoleUser, now, now, false))

	_, isNew, err := repo.UpsertProfile(context.Background(), subjectID, "+919876543210", "", models.RoleUser, now)
	require.NoError(t, err)
	assert.False(t, isNew)
}

func TestGetProfile(t *testing.T) {
	repo, mock := setupSQLRepo(t)

	subjectID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("SELECT subject_id, phone, email, role, created_at, last_login_at").
		WithArgs(subjectID).
		WillReturnRows(sqlmock.NewRows(profileColumns()).
			AddRow(subjectID, "+919876543210", "", models.RoleUser, now, now))

	profile, err := repo.GetProfile(context.Background(), subjectID)
	require.NoError(t, err)
	assert.Equal(t, subjectID, profile.SubjectID)
}

func TestGetProfile_NotFound(t *testing.T) {
	repo, mock := setupSQLRepo(t)

	subjectID := uuid.New()
	mock.ExpectQuery("SELECT subject_id, phone, email, role, created_at, last_login_at").
		WithArgs(subjectID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetProfile(context.Background(), subjectID)
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
}

func TestGetSubjectByContact_Found(t *testing.T) {
	repo, mock := setupSQLRepo(t)

	subjectID := uuid.New()
	mock.ExpectQuery("SELECT subject_id").
		WithArgs("+919876543210", "").
		WillReturnRows(sqlmock.NewRows([]string{"subject_id"}).AddRow(subjectID))

	got, found, err := repo.GetSubjectByContact(context.Background(), "+919876543210", "")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, subjectID, got)
}

func TestGetSubjectByContact_NotFound(t *testing.T) {
	repo, mock := setupSQLRepo(t)

	mock.ExpectQuery("SELECT subject_id").
		WithArgs("+919876543210", "").
		WillReturnError(sql.ErrNoRows)

	got, found, err := repo.GetSubjectByContact(context.Background(), "+919876543210", "")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, uuid.Nil, got)
}

func TestUpdateRole(t *testing.T) {
	repo, mock := setupSQLRepo(t)

	subjectID := uuid.New()
	mock.ExpectExec("UPDATE profiles").
		WithArgs(subjectID, models.RoleAdmin).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateRole(context.Background(), subjectID, models.RoleAdmin)
	assert.NoError(t, err)
}

func TestUpdateRole_ProfileNotFound(t *testing.T) {
	repo, mock := setupSQLRepo(t)

	subjectID := uuid.New()
	mock.ExpectExec("UPDATE profiles").
		WithArgs(subjectID, models.RoleAdmin).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateRole(context.Background(), subjectID, models.RoleAdmin)
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
}
