package utils

import (
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var Json = jsoniter.ConfigCompatibleWithStandardLibrary

func WriteJsonToFile(dst string, data interface{}) error {
	str, err := Json.MarshalIndent(data, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal json")
	}
	return errors.WithStack(os.WriteFile(dst, str, 0o644))
}
