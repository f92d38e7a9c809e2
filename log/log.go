package log

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// Setup configures the process-wide logger. Outside production the output
// stays human readable; production gets JSON lines.
func Setup(envName string) {
	log.SetOutput(os.Stdout)
	if envName == "production" || envName == "prod" {
		log.SetFormatter(&log.JSONFormatter{})
		log.SetLevel(log.InfoLevel)
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
		log.SetLevel(log.DebugLevel)
	}
}

func Debug(format string, args ...any) {
	log.Debugf(format, args...)
}

func Info(format string, args ...any) {
	log.Infof(format, args...)
}

func Warn(format string, args ...any) {
	log.Warnf(format, args...)
}

func Error(format string, args ...any) {
	log.Errorf(format, args...)
}

func Fatal(format string, args ...any) {
	log.Fatalf(format, args...)
}
