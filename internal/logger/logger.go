package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New arma el logger de la aplicación: texto legible en desarrollo,
// JSON nivel info en cualquier otro entorno.
func New(env string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if env == "development" {
		log.SetLevel(logrus.DebugLevel)
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	return log
}
