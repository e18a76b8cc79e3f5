package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/moodbites/backend/internal/models"
	"github.com/pageza/moodbites/backend/internal/service"
	"github.com/pageza/moodbites/backend/internal/testhelpers"
)

func TestGetProfile(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewProfileService(db)
	ctx := context.Background()

	plain := createUser(t, db, "alice")
	withPrefs := &models.User{
		Username:     "bob",
		PasswordHash: "x",
		Preferences:  models.JSONDocument(`{"diet":"vegan"}`),
	}
	require.NoError(t, db.Create(withPrefs).Error)

	user, err := svc.GetProfile(ctx, plain.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.PasswordHash)

	out, err := user.Preferences.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(out))

	user, err = svc.GetProfile(ctx, withPrefs.ID)
	require.NoError(t, err)
	out, err = user.Preferences.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"diet":"vegan"}`, string(out))

	_, err = svc.GetProfile(ctx, 9999)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}
