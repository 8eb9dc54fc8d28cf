package logger

import (
	"io"
	"os"
	"time"

	"github.com/natefinch/lumberjack"
	logrus "github.com/sirupsen/logrus"

	"wastewise_portal/internal/config"
)

// Setup initializes Logrus with a rotating log file. Outside production the
// log is mirrored to stdout as well.
func Setup(cfg *config.Config) {
	// 1) Lumberjack for file rotation
	rotator := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    10, // megabytes
		MaxBackups: 7,  // keep up to 7 old files
		MaxAge:     7,  // days
		Compress:   true,
	}

	var out io.Writer = rotator
	if cfg.Environment != "production" {
		out = io.MultiWriter(os.Stdout, rotator)
	}

	// 2) Configure Logrus to write to that sink
	logrus.SetOutput(out)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)
}
