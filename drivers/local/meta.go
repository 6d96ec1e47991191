package local

import (
	"github.com/filedrive-org/drived/internal/driver"
	"github.com/filedrive-org/drived/internal/op"
)

type Addition struct {
	RootPath string `json:"root_path" required:"true"`
}

var config = driver.Config{
	Name:      "local",
	LocalOnly: true,
}

func init() {
	op.RegisterDriver(func() driver.Driver {
		return &Local{}
	})
}
