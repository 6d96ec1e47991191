package op

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"sync"
	"testing"

	"github.com/filedrive-org/drived/internal/conf"
	"github.com/filedrive-org/drived/internal/db"
	"github.com/filedrive-org/drived/internal/driver"
	"github.com/filedrive-org/drived/internal/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTest(t *testing.T) {
	t.Helper()
	conf.Conf = conf.DefaultConfig(t.TempDir())
	conf.Conf.Storage.Driver = "mem"
	dB, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	db.Init(dB)
	SetCurrentDriver(newMemDriver())
	Quota = localQuota{}
}

func newTestUser(t *testing.T, name string) *model.User {
	t.Helper()
	u := &model.User{Username: name, BasePath: "/"}
	require.NoError(t, RegisterUser(u, "secret123"))
	return u
}

func rootOf(t *testing.T, u *model.User) *model.Folder {
	t.Helper()
	root, err := GetRootFolder(u.ID)
	require.NoError(t, err)
	return root
}

// memDriver keeps blobs in a map, enough to exercise the file ops.
type memDriver struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newMemDriver() *memDriver {
	return &memDriver{blobs: map[string][]byte{}}
}

func (d *memDriver) Config() driver.Config          { return driver.Config{Name: "mem"} }
func (d *memDriver) Init(ctx context.Context) error { return nil }
func (d *memDriver) Drop(ctx context.Context) error { return nil }

func (d *memDriver) Put(ctx context.Context, key string, r io.Reader, size int64) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.blobs[key] = data
	return nil
}

func (d *memDriver) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	data, ok := d.blobs[key]
	if !ok {
		return nil, errors.Errorf("no blob: %s", key)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (d *memDriver) Delete(ctx context.Context, key string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.blobs, key)
	return nil
}

func (d *memDriver) len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.blobs)
}
