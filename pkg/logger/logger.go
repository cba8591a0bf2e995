package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// New создает логгер сервиса: JSON-формат, вывод в stdout, уровень из
// конфигурации. Некорректный уровень не фатален - сервис стартует с info.
func New(logLevel string) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		log.Warnf("Unknown log level %q, falling back to info", logLevel)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
