package local

import (
	"context"
	"io"
	"os"
	stdpath "path"

	"github.com/filedrive-org/drived/internal/conf"
	"github.com/filedrive-org/drived/internal/driver"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

type Local struct {
	Addition
	fs afero.Fs
}

func (d *Local) Config() driver.Config {
	return config
}

func (d *Local) Init(ctx context.Context) error {
	d.RootPath = conf.Conf.Storage.RootPath
	if err := os.MkdirAll(d.RootPath, 0o755); err != nil {
		return errors.Wrap(err, "failed to create blob root")
	}
	d.fs = afero.NewBasePathFs(afero.NewOsFs(), d.RootPath)
	return nil
}

func (d *Local) Drop(ctx context.Context) error {
	return nil
}

// blobPath shards keys into two-char prefix dirs to keep directories
// small.
func blobPath(key string) string {
	if len(key) < 2 {
		return key
	}
	return stdpath.Join(key[:2], key)
}

func (d *Local) Put(ctx context.Context, key string, r io.Reader, size int64) error {
	p := blobPath(key)
	if err := d.fs.MkdirAll(stdpath.Dir(p), 0o755); err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(afero.WriteReader(d.fs, p, r))
}

func (d *Local) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	f, err := d.fs.Open(blobPath(key))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return f, nil
}

func (d *Local) Delete(ctx context.Context, key string) error {
	err := d.fs.Remove(blobPath(key))
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return errors.WithStack(err)
}

var _ driver.Driver = (*Local)(nil)
