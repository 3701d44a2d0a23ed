package logging

import (
	"github.com/sirupsen/logrus"
)

// New returns a logrus logger configured for CLI use. The *logrus.Logger
// satisfies calculation.Logger directly (Debugf/Infof/Warnf/Errorf).
func New(verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger
}
