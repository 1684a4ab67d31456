package logger

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var once sync.Once
var log *logrus.Logger

// Get returns the shared logger. A singleton so the level can be
// adjusted once config is loaded.
func Get() *logrus.Logger {
	once.Do(func() {
		log = logrus.New()

		log.Out = os.Stderr
		log.SetLevel(logrus.InfoLevel)

		log.SetFormatter(&logrus.TextFormatter{
			DisableColors: false,
			FullTimestamp: true,
			PadLevelText:  true,
		})
	})

	return log
}

func SetLevel(level logrus.Level) {
	Get().SetLevel(level)
}
