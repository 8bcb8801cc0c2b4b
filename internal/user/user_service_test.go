package user

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/DhavalSuthar-24/lelo/internal/common"
	"github.com/DhavalSuthar-24/lelo/internal/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	db := dbtest.Open(t, &User{})
	return NewService(NewUserRepository(db))
}

func mustCreate(t *testing.T, s *Service, email, role string) *User {
	t.Helper()
	u, err := s.Create(context.Background(), CreateUserRequest{Email: email, Password: "password123", Role: role})
	require.NoError(t, err)
	return u
}

func TestCreateHashesAndNormalizes(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()

	u := mustCreate(t, s, "  Editor@Lelo.GE ", "")
	assert.NotZero(t, u.ID)
	assert.Equal(t, "editor@lelo.ge", u.Email)
	assert.Equal(t, common.RoleUser, u.Role)
	assert.NotEqual(t, "password123", u.Password)

	_, err := s.Create(ctx, CreateUserRequest{Email: "editor@lelo.ge", Password: "password123"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	users := s.List(ctx)
	require.Len(t, users, 1)
	assert.Equal(t, u.ID, users[0].ID)
}

func TestAuthenticate(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()
	mustCreate(t, s, "admin@lelo.ge", common.RoleAdmin)

	u, err := s.Authenticate(ctx, "ADMIN@lelo.ge", "password123")
	require.NoError(t, err)
	assert.True(t, u.IsAdmin())

	_, err = s.Authenticate(ctx, "admin@lelo.ge", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Authenticate(ctx, "nobody@lelo.ge", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestToggleRoleProtectsLastAdmin(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()
	admin := mustCreate(t, s, "admin@lelo.ge", common.RoleAdmin)
	editor := mustCreate(t, s, "editor@lelo.ge", "")

	_, err := s.SetRole(ctx, admin.ID, "")
	assert.ErrorIs(t, err, ErrLastAdmin)

	promoted, err := s.SetRole(ctx, editor.ID, "")
	require.NoError(t, err)
	assert.Equal(t, common.RoleAdmin, promoted.Role)

	demoted, err := s.SetRole(ctx, admin.ID, "")
	require.NoError(t, err)
	assert.Equal(t, common.RoleUser, demoted.Role)

	_, err = s.SetRole(ctx, editor.ID, common.RoleUser)
	assert.ErrorIs(t, err, ErrLastAdmin)

	_, err = s.SetRole(ctx, editor.ID, "owner")
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = s.SetRole(ctx, 999, common.RoleAdmin)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()
	admin := mustCreate(t, s, "admin@lelo.ge", common.RoleAdmin)
	editor := mustCreate(t, s, "editor@lelo.ge", "")

	assert.ErrorIs(t, s.Delete(ctx, admin.ID), ErrLastAdmin)
	require.NoError(t, s.Delete(ctx, editor.ID))
	assert.ErrorIs(t, s.Delete(ctx, editor.ID), ErrNotFound)

	users := s.List(ctx)
	require.Len(t, users, 1)
	assert.Equal(t, admin.ID, users[0].ID)
}

func TestEnsureAdmin(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()

	_, err := s.EnsureAdmin(ctx, "admin@lelo.ge", "Admin", "")
	assert.Error(t, err)

	created, err := s.EnsureAdmin(ctx, "admin@lelo.ge", "Admin", "s3cret-pass")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = s.EnsureAdmin(ctx, "admin@lelo.ge", "Admin", "s3cret-pass")
	require.NoError(t, err)
	assert.False(t, created)

	u, err := s.Authenticate(ctx, "admin@lelo.ge", "s3cret-pass")
	require.NoError(t, err)
	assert.True(t, u.IsAdmin())
}

func TestEnsureAdminPromotesExistingAccount(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()
	existing := mustCreate(t, s, "admin@lelo.ge", "")

	created, err := s.EnsureAdmin(ctx, "admin@lelo.ge", "Admin", "another-pass")
	require.NoError(t, err)
	assert.True(t, created)

	u, err := s.Get(ctx, existing.ID)
	require.NoError(t, err)
	assert.True(t, u.IsAdmin())
}

func TestListFailsSoft(t *testing.T) {
	db, mock := dbtest.Mock(t)
	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnError(errors.New("connection reset"))

	s := NewService(NewUserRepository(db))
	users := s.List(context.Background())

	assert.NotNil(t, users)
	assert.Empty(t, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDemotionLocksAdminRows(t *testing.T) {
	db, mock := dbtest.Mock(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "role"}).AddRow(1, "admin@lelo.ge", common.RoleAdmin))
	mock.ExpectQuery(`SELECT "id" FROM "users" WHERE role = \$1 ORDER BY id FOR UPDATE`).
		WithArgs(common.RoleAdmin).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectRollback()

	_, err := NewUserRepository(db).SetRole(context.Background(), 1, common.RoleUser)
	assert.ErrorIs(t, err, ErrLastAdmin)
	assert.NoError(t, mock.ExpectationsWereMet())
}
