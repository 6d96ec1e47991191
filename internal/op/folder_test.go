package op

import (
	"context"
	"strings"
	"testing"

	"github.com/filedrive-org/drived/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFolder(t *testing.T) {
	setupTest(t)
	u := newTestUser(t, "folder-create")
	root := rootOf(t, u)

	docs, err := CreateFolder(u.ID, root.ID, "docs")
	require.NoError(t, err)
	assert.Equal(t, root.ID, docs.ParentID)

	_, err = CreateFolder(u.ID, root.ID, "docs")
	assert.ErrorIs(t, err, errs.NameConflict)

	children, err := ListFolders(u.ID, root.ID)
	require.NoError(t, err)
	assert.Len(t, children, 1)
}

func TestMoveFolderCycle(t *testing.T) {
	setupTest(t)
	u := newTestUser(t, "folder-cycle")
	root := rootOf(t, u)

	a, err := CreateFolder(u.ID, root.ID, "a")
	require.NoError(t, err)
	b, err := CreateFolder(u.ID, a.ID, "b")
	require.NoError(t, err)
	c, err := CreateFolder(u.ID, b.ID, "c")
	require.NoError(t, err)

	// a -> its own grandchild
	_, err = MoveFolder(u.ID, a.ID, c.ID)
	assert.ErrorIs(t, err, errs.FolderCycle)

	// a -> itself
	_, err = MoveFolder(u.ID, a.ID, a.ID)
	assert.ErrorIs(t, err, errs.FolderCycle)

	// c -> root is fine
	moved, err := MoveFolder(u.ID, c.ID, root.ID)
	require.NoError(t, err)
	assert.Equal(t, root.ID, moved.ParentID)
}

func TestMoveFolderRootImmutable(t *testing.T) {
	setupTest(t)
	u := newTestUser(t, "folder-root")
	root := rootOf(t, u)
	a, err := CreateFolder(u.ID, root.ID, "a")
	require.NoError(t, err)

	_, err = MoveFolder(u.ID, root.ID, a.ID)
	assert.ErrorIs(t, err, errs.RootImmutable)
	_, err = RenameFolder(u.ID, root.ID, "new")
	assert.ErrorIs(t, err, errs.RootImmutable)
	err = DeleteFolder(context.Background(), u.ID, root.ID)
	assert.ErrorIs(t, err, errs.RootImmutable)
}

func TestFolderPath(t *testing.T) {
	setupTest(t)
	u := newTestUser(t, "folder-path")
	root := rootOf(t, u)
	a, err := CreateFolder(u.ID, root.ID, "a")
	require.NoError(t, err)
	b, err := CreateFolder(u.ID, a.ID, "b")
	require.NoError(t, err)

	p, err := FolderPath(u.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "/a/b", p)

	p, err = FolderPath(u.ID, root.ID)
	require.NoError(t, err)
	assert.Equal(t, "/", p)
}

func TestIsInSubtree(t *testing.T) {
	setupTest(t)
	u := newTestUser(t, "folder-subtree")
	root := rootOf(t, u)
	a, err := CreateFolder(u.ID, root.ID, "a")
	require.NoError(t, err)
	b, err := CreateFolder(u.ID, a.ID, "b")
	require.NoError(t, err)
	other, err := CreateFolder(u.ID, root.ID, "other")
	require.NoError(t, err)

	ok, err := IsInSubtree(u.ID, a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = IsInSubtree(u.ID, a.ID, a.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = IsInSubtree(u.ID, a.ID, other.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteFolderRecursive(t *testing.T) {
	setupTest(t)
	u := newTestUser(t, "folder-delete")
	root := rootOf(t, u)
	a, err := CreateFolder(u.ID, root.ID, "a")
	require.NoError(t, err)
	b, err := CreateFolder(u.ID, a.ID, "b")
	require.NoError(t, err)

	_, err = UploadFile(context.Background(), u.ID, b.ID, "deep.txt", "text/plain",
		strings.NewReader("hello"), 5)
	require.NoError(t, err)

	q, err := GetQuota(u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), q.UsedBytes)

	require.NoError(t, DeleteFolder(context.Background(), u.ID, a.ID))

	_, err = GetFolder(u.ID, b.ID)
	assert.Error(t, err)
	q, err = GetQuota(u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), q.UsedBytes)
}

func TestFolderOwnership(t *testing.T) {
	setupTest(t)
	u1 := newTestUser(t, "folder-owner-1")
	u2 := newTestUser(t, "folder-owner-2")
	root1 := rootOf(t, u1)

	_, err := GetFolder(u2.ID, root1.ID)
	assert.ErrorIs(t, err, errs.NotFound)
	_, err = CreateFolder(u2.ID, root1.ID, "sneaky")
	assert.Error(t, err)
}
