package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupLogging configures the standard logrus logger: JSON to stdout and,
// when LogsDirectory is set, to a rotated file as well. The returned
// closer flushes the file.
func SetupLogging(cfg *Config) (io.Closer, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(level)

	if cfg.LogsDirectory == "" {
		logrus.SetOutput(os.Stdout)
		return io.NopCloser(nil), nil
	}

	runTimestamp := time.Now().UTC().Format("2006-01-02T15-04-05")
	rotating := &lumberjack.Logger{
		Filename:   fmt.Sprintf("%v/shipment-erp-%s.log", cfg.LogsDirectory, runTimestamp),
		MaxSize:    100, // MB
		MaxBackups: 7,
		MaxAge:     30, // days
		Compress:   true,
	}
	logrus.SetOutput(io.MultiWriter(os.Stdout, rotating))
	return rotating, nil
}

// LogError logs err with the module/function it came from.
func LogError(moduleName, funcName, context string, data any, err error) {
	fields := logrus.Fields{
		"module":   moduleName,
		"funcName": funcName,
		"context":  context,
	}
	if data != nil {
		fields["data"] = data
	}
	logrus.WithFields(fields).Error(err.Error())
}
