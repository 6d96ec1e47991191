package op

import (
	"github.com/filedrive-org/drived/internal/driver"
	"github.com/pkg/errors"
)

var driverNewMap = map[string]driver.New{}

func RegisterDriver(n driver.New) {
	c := n().Config()
	driverNewMap[c.Name] = n
}

func GetDriverNew(name string) (driver.New, error) {
	n, ok := driverNewMap[name]
	if !ok {
		return nil, errors.Errorf("no driver named: %s", name)
	}
	return n, nil
}

var currentDriver driver.Driver

// SetCurrentDriver is called once by bootstrap after Init succeeds.
func SetCurrentDriver(d driver.Driver) {
	currentDriver = d
}

func CurrentDriver() (driver.Driver, error) {
	if currentDriver == nil {
		return nil, errors.New("storage driver not initialized")
	}
	return currentDriver, nil
}
