package cmd

import (
	"github.com/filedrive-org/drived/internal/bootstrap"
	"github.com/filedrive-org/drived/internal/client"
	"github.com/filedrive-org/drived/internal/db"
)

func Init() {
	bootstrap.InitConfig()
	bootstrap.Log()
	bootstrap.InitDB()
	bootstrap.InitData()
	client.Setup()
}

func Release() {
	db.Close()
}
