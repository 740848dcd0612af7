package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func NewLogger(level string) (*logrus.Logger, error) {
	logger := logrus.New()
	l, err := logrus.ParseLevel(level)
	if nil != err {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}
	logger.SetLevel(l)
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	return logger, nil
}
