package bootstrap

import (
	"context"

	"github.com/filedrive-org/drived/internal/conf"
	"github.com/filedrive-org/drived/internal/op"
	"github.com/filedrive-org/drived/pkg/utils"
)

// InitStorageDriver brings up the configured blob driver. A failed
// init gets one retry before the process refuses to start: serving the
// files API without a working blob store would only turn uploads into
// orphaned quota reservations.
func InitStorageDriver() {
	name := conf.Conf.Storage.Driver
	newFn, err := op.GetDriverNew(name)
	if err != nil {
		utils.Log.Fatalf("unknown storage driver [%s]: %+v", name, err)
	}
	d := newFn()
	if err := d.Init(context.Background()); err != nil {
		utils.Log.Warnf("failed init storage driver [%s], will retry: %+v", name, err)
		if err := d.Init(context.Background()); err != nil {
			utils.Log.Fatalf("failed init storage driver [%s]: %+v", name, err)
		}
	}
	op.SetCurrentDriver(d)
	utils.Log.Infof("success load storage driver: [%s]", name)
	conf.StoragesLoaded = true
}
