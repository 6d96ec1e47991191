package op

import (
	"context"
	"strings"
	"testing"

	"github.com/filedrive-org/drived/internal/errs"
	"github.com/filedrive-org/drived/internal/model"
	"github.com/filedrive-org/drived/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUser(t *testing.T) {
	setupTest(t)
	u := newTestUser(t, "user-register")

	// root folder and quota row exist right away
	root, err := GetRootFolder(u.ID)
	require.NoError(t, err)
	assert.True(t, root.IsRoot())
	_, err = GetQuota(u.ID)
	require.NoError(t, err)

	dup := &model.User{Username: "user-register"}
	assert.ErrorIs(t, RegisterUser(dup, "pw"), errs.UserExists)
	empty := &model.User{Username: "user-register-2"}
	assert.ErrorIs(t, RegisterUser(empty, ""), errs.EmptyPassword)
}

func TestRegisterUserCaseInsensitive(t *testing.T) {
	setupTest(t)
	newTestUser(t, "User-Case")

	dup := &model.User{Username: "user-case"}
	assert.ErrorIs(t, RegisterUser(dup, "pw123456"), errs.UserExists)
	shout := &model.User{Username: "USER-CASE"}
	assert.ErrorIs(t, RegisterUser(shout, "pw123456"), errs.UserExists)

	// lookups collapse case the same way
	u, err := GetUserByName("uSeR-cAsE")
	require.NoError(t, err)
	assert.Equal(t, "User-Case", u.Username)
}

func TestChangePasswordKeepsCurrentSession(t *testing.T) {
	setupTest(t)
	u := newTestUser(t, "user-chpwd")
	current := &model.Session{Key: utils.RandomString(32), UserID: u.ID}
	other := &model.Session{Key: utils.RandomString(32), UserID: u.ID}
	require.NoError(t, SaveSession(current))
	require.NoError(t, SaveSession(other))

	require.NoError(t, ChangePassword(u, "newsecret", current.Key))

	_, err := GetSessionByKey(current.Key)
	assert.NoError(t, err)
	_, err = GetSessionByKey(other.Key)
	assert.Error(t, err)
	assert.True(t, utils.CheckPwd(u.PwdHash, "newsecret"))

	// without a session to keep, everything goes
	require.NoError(t, ChangePassword(u, "thirdsecret", ""))
	_, err = GetSessionByKey(current.Key)
	assert.Error(t, err)
}

func TestDeleteUserProtectsAdmin(t *testing.T) {
	setupTest(t)
	admin := &model.User{Username: "user-admin", Role: model.ADMIN}
	require.NoError(t, RegisterUser(admin, "pw123456"))
	assert.ErrorIs(t, DeleteUserById(admin.ID), errs.PermissionDenied)

	mortal := newTestUser(t, "user-mortal")
	require.NoError(t, DeleteUserById(mortal.ID))
	_, err := GetUserById(mortal.ID)
	assert.Error(t, err)
}

func TestDeleteUserCascades(t *testing.T) {
	setupTest(t)
	u := newTestUser(t, "user-cascade")
	root := rootOf(t, u)
	f, err := UploadFile(context.Background(), u.ID, root.ID, "a.txt", "text/plain",
		strings.NewReader("hello"), 5)
	require.NoError(t, err)
	_, err = CreateShare(u.ID, f.ID, "", "", "", nil)
	require.NoError(t, err)

	require.NoError(t, DeleteUserById(u.ID))

	_, err = GetFile(u.ID, f.ID)
	assert.Error(t, err)
	_, err = GetRootFolder(u.ID)
	assert.Error(t, err)
	shares, total, err := ListShares(u.ID, model.PageReq{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, shares)
}
