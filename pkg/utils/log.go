package utils

import (
	"github.com/sirupsen/logrus"
)

// Log is the shared logger, configured by bootstrap.InitLog.
var Log = logrus.New()
