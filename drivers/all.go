package drivers

import (
	_ "github.com/filedrive-org/drived/drivers/local"
	_ "github.com/filedrive-org/drived/drivers/s3"
)

// All do nothing,just for import
// same as _ import
func All() {

}
