package s3

import (
	"github.com/filedrive-org/drived/internal/driver"
	"github.com/filedrive-org/drived/internal/op"
)

type Addition struct {
	Bucket    string `json:"bucket" required:"true"`
	Region    string `json:"region" required:"true"`
	Endpoint  string `json:"endpoint"`
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
}

var config = driver.Config{
	Name: "s3",
}

func init() {
	op.RegisterDriver(func() driver.Driver {
		return &S3{}
	})
}
