package log

import (
	"fmt"
	"os"

	"dialeradmin/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var log = New(config.GetConfig())

// New - logger for the given configuration
func New(c *viper.Viper) *logrus.Logger {

	l := logrus.New()

	// in dev
	if c.GetString("app.environment") != "production" {

		l.Formatter = &logrus.TextFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FullTimestamp:   true,
		}

		l.Out = os.Stdout

		l.Level = logrus.DebugLevel

		return l
	}

	l.Formatter = &logrus.JSONFormatter{}

	l.SetOutput(&lumberjack.Logger{
		Filename:   fmt.Sprintf("%s/dialeradmin.log", c.GetString("app.log_path")),
		MaxSize:    200, //mbs,
		MaxBackups: 2,
		MaxAge:     28, //days
	})

	l.SetLevel(logrus.InfoLevel)

	return l
}

// GetLogger - returns log
func GetLogger() *logrus.Logger {
	return log
}
