package op

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/filedrive-org/drived/internal/conf"
	"github.com/filedrive-org/drived/internal/errs"
	"github.com/filedrive-org/drived/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateShareValidation(t *testing.T) {
	setupTest(t)
	u := newTestUser(t, "share-create")
	root := rootOf(t, u)

	// neither target
	_, err := CreateShare(u.ID, "", "", "", "", nil)
	assert.Error(t, err)
	// both targets
	_, err = CreateShare(u.ID, "x", "y", "", "", nil)
	assert.Error(t, err)
	// unknown permission
	_, err = CreateShare(u.ID, "", root.ID, "admin", "", nil)
	assert.Error(t, err)

	s, err := CreateShare(u.ID, "", root.ID, "", "", nil)
	require.NoError(t, err)
	assert.Equal(t, model.SharePermRead, s.Permission)
}

func TestCreateShareDefaultExpiry(t *testing.T) {
	setupTest(t)
	require.NoError(t, SaveSettingItem(&model.SettingItem{
		Key: conf.ShareDefaultExpiry, Value: "7", Flag: conf.FlagPrivate,
	}))
	t.Cleanup(func() { _ = DeleteSettingItemByKey(conf.ShareDefaultExpiry) })
	u := newTestUser(t, "share-default-expiry")
	root := rootOf(t, u)

	s, err := CreateShare(u.ID, "", root.ID, "", "", nil)
	require.NoError(t, err)
	require.NotNil(t, s.ExpiresAt)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 7), *s.ExpiresAt, time.Minute)

	// an explicit expiry always wins over the default
	explicit := time.Now().Add(time.Hour)
	s, err = CreateShare(u.ID, "", root.ID, "", "", &explicit)
	require.NoError(t, err)
	require.NotNil(t, s.ExpiresAt)
	assert.WithinDuration(t, explicit, *s.ExpiresAt, time.Second)
}

func TestResolveShareExpiry(t *testing.T) {
	setupTest(t)
	u := newTestUser(t, "share-expiry")
	root := rootOf(t, u)

	past := time.Now().Add(-time.Hour)
	s, err := CreateShare(u.ID, "", root.ID, "", "", &past)
	require.NoError(t, err)

	_, err = ResolveShare(s.ID, "")
	assert.ErrorIs(t, err, errs.InvalidShare)

	_, err = ResolveShare("no-such-token", "")
	assert.ErrorIs(t, err, errs.InvalidShare)
}

func TestResolveSharePassword(t *testing.T) {
	setupTest(t)
	u := newTestUser(t, "share-pwd")
	root := rootOf(t, u)

	s, err := CreateShare(u.ID, "", root.ID, "", "hunter2", nil)
	require.NoError(t, err)

	_, err = ResolveShare(s.ID, "wrong")
	assert.ErrorIs(t, err, errs.WrongPassword)
	got, err := ResolveShare(s.ID, "hunter2")
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
}

func TestDeleteShareOwnership(t *testing.T) {
	setupTest(t)
	owner := newTestUser(t, "share-owner")
	stranger := newTestUser(t, "share-stranger")
	root := rootOf(t, owner)

	f, err := UploadFile(context.Background(), owner.ID, root.ID, "a.txt", "text/plain",
		strings.NewReader("x"), 1)
	require.NoError(t, err)
	s, err := CreateShare(owner.ID, f.ID, "", "", "", nil)
	require.NoError(t, err)

	err = DeleteShare(stranger.ID, s.ID, false)
	assert.ErrorIs(t, err, errs.NotFound)
	// admin may revoke anyone's share
	require.NoError(t, DeleteShare(stranger.ID, s.ID, true))
}

func TestDeleteFileDropsItsShares(t *testing.T) {
	setupTest(t)
	u := newTestUser(t, "share-cascade")
	root := rootOf(t, u)

	f, err := UploadFile(context.Background(), u.ID, root.ID, "a.txt", "text/plain",
		strings.NewReader("x"), 1)
	require.NoError(t, err)
	s, err := CreateShare(u.ID, f.ID, "", "", "", nil)
	require.NoError(t, err)

	require.NoError(t, DeleteFile(context.Background(), u.ID, f.ID))
	_, err = ResolveShare(s.ID, "")
	assert.ErrorIs(t, err, errs.InvalidShare)
}
