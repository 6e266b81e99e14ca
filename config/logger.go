package config

import (
	"fmt"
	"os"
	"time"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.Logger

// InitLogger initializes the Zap logger with Lumberjack log rotation
// under a 'logs' folder. LOG_LEVEL=debug switches the level; anything
// else logs at Info.
func InitLogger() {
	err := os.MkdirAll("logs", os.ModePerm)
	if err != nil {
		panic(fmt.Sprintf("Failed to create logs directory: %v", err))
	}

	logFile := &lumberjack.Logger{
		Filename:   fmt.Sprintf("logs/%s.log", time.Now().Format("2006-01-02")), // one file per day
		MaxSize:    10, // Megabytes before rotation
		MaxBackups: 7,
		MaxAge:     28, // Days
		Compress:   true,
	}

	level := zapcore.InfoLevel
	if GetEnv("LOG_LEVEL") == "debug" {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	core := zapcore.NewCore(
		encoder,
		zapcore.AddSync(logFile),
		level,
	)

	Logger = zap.New(core)

	defer Logger.Sync()
}
