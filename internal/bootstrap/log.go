package bootstrap

import (
	"io"
	"os"

	"github.com/filedrive-org/drived/internal/conf"
	"github.com/filedrive-org/drived/pkg/utils"
	"github.com/natefinch/lumberjack"
	log "github.com/sirupsen/logrus"
)

func init() {
	formatter := log.TextFormatter{
		ForceColors:               true,
		EnvironmentOverrideColors: true,
		TimestampFormat:           "2006-01-02 15:04:05",
		FullTimestamp:             true,
	}
	log.SetFormatter(&formatter)
	utils.Log.SetFormatter(&formatter)
}

func setLog(l *log.Logger) {
	if conf.Debug {
		l.SetLevel(log.DebugLevel)
		l.SetReportCaller(true)
		return
	}
	level, err := log.ParseLevel(conf.Conf.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	l.SetLevel(level)
}

func Log() {
	setLog(log.StandardLogger())
	setLog(utils.Log)
	logConfig := conf.Conf.Log
	if logConfig.Enable {
		w := &lumberjack.Logger{
			Filename:   logConfig.Name,
			MaxSize:    logConfig.MaxSize, // megabytes
			MaxBackups: logConfig.MaxBackups,
			MaxAge:     logConfig.MaxAge, // days
			Compress:   logConfig.Compress,
		}
		logWriter := io.MultiWriter(os.Stdout, w)
		log.SetOutput(logWriter)
		utils.Log.SetOutput(logWriter)
	}
	log.Infof("init logrus...")
}
