package local

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/filedrive-org/drived/internal/conf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalRoundTrip(t *testing.T) {
	conf.Conf = conf.DefaultConfig(t.TempDir())
	conf.Conf.Storage.RootPath = t.TempDir()

	d := &Local{}
	ctx := context.Background()
	require.NoError(t, d.Init(ctx))

	key := "abcdef0123456789"
	require.NoError(t, d.Put(ctx, key, strings.NewReader("blob data"), 9))

	rc, err := d.Get(ctx, key)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "blob data", string(data))

	require.NoError(t, d.Delete(ctx, key))
	_, err = d.Get(ctx, key)
	assert.Error(t, err)
	// deleting a missing key is not an error
	assert.NoError(t, d.Delete(ctx, key))
}

func TestBlobPathSharding(t *testing.T) {
	assert.Equal(t, "ab/abcd", blobPath("abcd"))
	assert.Equal(t, "x", blobPath("x"))
}
