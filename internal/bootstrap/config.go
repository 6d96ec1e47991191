package bootstrap

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v9"
	"github.com/filedrive-org/drived/internal/conf"
	"github.com/filedrive-org/drived/pkg/utils"
)

func InitConfig() {
	configPath := filepath.Join(conf.DataDir, "config.json")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		utils.Log.Infof("config file not exists, creating default config file")
		if err := os.MkdirAll(conf.DataDir, 0o755); err != nil {
			utils.Log.Fatalf("failed to create data dir: %+v", err)
		}
		conf.Conf = conf.DefaultConfig(conf.DataDir)
		conf.Conf.JwtSecret = utils.RandomString(16)
		if err := utils.WriteJsonToFile(configPath, conf.Conf); err != nil {
			utils.Log.Fatalf("failed to create default config file: %+v", err)
		}
	} else {
		configBytes, err := os.ReadFile(configPath)
		if err != nil {
			utils.Log.Fatalf("reading config file error: %+v", err)
		}
		conf.Conf = conf.DefaultConfig(conf.DataDir)
		err = utils.Json.Unmarshal(configBytes, conf.Conf)
		if err != nil {
			utils.Log.Fatalf("load config error: %+v", err)
		}
		// update config.json struct to the latest
		err = utils.WriteJsonToFile(configPath, conf.Conf)
		if err != nil {
			utils.Log.Fatalf("update config struct error: %+v", err)
		}
	}
	if err := env.ParseWithOptions(conf.Conf, env.Options{Prefix: "DRIVED_"}); err != nil {
		utils.Log.Fatalf("load config from env error: %+v", err)
	}
	if err := os.MkdirAll(conf.Conf.TempDir, 0o755); err != nil {
		utils.Log.Fatalf("create temp dir error: %+v", err)
	}
}
