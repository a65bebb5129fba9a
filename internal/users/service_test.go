package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riwi/jobboard-backend/pkg/db/models"
	"github.com/riwi/jobboard-backend/pkg/enums"
	pkgerrors "github.com/riwi/jobboard-backend/pkg/errors"
	"github.com/riwi/jobboard-backend/pkg/testutil/dbtest"
)

func newTestService(t *testing.T) (Service, *Repository) {
	t.Helper()
	client := dbtest.New(t)
	repo := NewRepository(client.DB())
	svc, err := NewService(repo)
	require.NoError(t, err)
	return svc, repo
}

func seedUser(t *testing.T, repo *Repository, email string, role enums.Role) *models.User {
	t.Helper()
	u := &models.User{Name: "User " + email, Email: email, PasswordHash: "x", Role: role, Status: models.UserStatusActive}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func strPtr(s string) *string { return &s }

func TestGetMissingUserIsNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Get(context.Background(), 404)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
	assert.Equal(t, "User not found", pkgerrors.As(err).Message())
}

func TestListExcludesSoftDeletedUsers(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	keep := seedUser(t, repo, "keep@riwi.io", enums.RoleCoder)
	gone := seedUser(t, repo, "gone@riwi.io", enums.RoleCoder)
	require.NoError(t, svc.Delete(ctx, gone.ID))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, keep.ID, list[0].ID)

	_, err = svc.Get(ctx, gone.ID)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestDeleteTwiceIsNotFound(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	u := seedUser(t, repo, "twice@riwi.io", enums.RoleCoder)

	require.NoError(t, svc.Delete(ctx, u.ID))
	err := svc.Delete(ctx, u.ID)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestUpdateChangesRoleStatusAndName(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	u := seedUser(t, repo, "promote@riwi.io", enums.RoleCoder)

	out, err := svc.Update(ctx, u.ID, UpdateUserRequest{
		Name:   strPtr("  New Name "),
		Role:   strPtr("GESTOR"),
		Status: strPtr("inactive"),
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", out.Name)
	assert.Equal(t, enums.RoleGestor, out.Role)
	assert.Equal(t, "inactive", out.Status)
}

func TestUpdateRejectsUnknownRole(t *testing.T) {
	svc, repo := newTestService(t)
	u := seedUser(t, repo, "role@riwi.io", enums.RoleCoder)

	_, err := svc.Update(context.Background(), u.ID, UpdateUserRequest{Role: strPtr("owner")})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestUpdateEmailCollisionIsConflict(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	seedUser(t, repo, "taken@riwi.io", enums.RoleCoder)
	u := seedUser(t, repo, "mine@riwi.io", enums.RoleCoder)

	_, err := svc.Update(ctx, u.ID, UpdateUserRequest{Email: strPtr("TAKEN@riwi.io")})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeConflict))
	assert.Equal(t, "Email already exists", pkgerrors.As(err).Message())

	out, err := svc.Update(ctx, u.ID, UpdateUserRequest{Email: strPtr("mine@riwi.io")})
	require.NoError(t, err, "keeping your own email is not a conflict")
	assert.Equal(t, "mine@riwi.io", out.Email)
}

func TestEmailFreedBySoftDeleteCanBeReused(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	old := seedUser(t, repo, "reuse@riwi.io", enums.RoleCoder)
	require.NoError(t, svc.Delete(ctx, old.ID))

	again := seedUser(t, repo, "reuse@riwi.io", enums.RoleCoder)
	assert.NotEqual(t, old.ID, again.ID)
}

func TestLiveEmailIndexRejectsDuplicates(t *testing.T) {
	_, repo := newTestService(t)
	seedUser(t, repo, "dup@riwi.io", enums.RoleCoder)

	err := repo.Create(context.Background(), &models.User{Name: "x", Email: "dup@riwi.io", PasswordHash: "x", Role: enums.RoleCoder})
	assert.Error(t, err)
}

func TestListNewestFirst(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	for i, email := range []string{"a@riwi.io", "b@riwi.io"} {
		u := &models.User{Name: email, Email: email, PasswordHash: "x", Role: enums.RoleCoder, CreatedAt: base.Add(time.Duration(i) * time.Hour)}
		require.NoError(t, repo.Create(ctx, u))
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b@riwi.io", list[0].Email)
}

func TestNewServiceRequiresRepo(t *testing.T) {
	_, err := NewService(nil)
	assert.Error(t, err)
}
