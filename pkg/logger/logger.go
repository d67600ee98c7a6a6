package logger

import (
	"fmt"
	"strings"

	"github.com/GlebRadaev/kioskhub/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"

	serviceName       = "kioskhub"
	consoleTimeLayout = "15:04:05 02-01-2006"
)

// levels accepted in LOG_LVL, case-insensitive.
var logLvlMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// New builds the service logger. Console output is for a terminal, json for
// log shippers; json entries also carry the caller and the service name.
func New(conf *config.Config) (*zap.Logger, error) {
	lvl, ok := logLvlMap[strings.ToLower(strings.TrimSpace(conf.LogLvl))]
	if !ok {
		return nil, fmt.Errorf("unsupported log lvl: %s", conf.LogLvl)
	}

	format := strings.ToLower(strings.TrimSpace(conf.LogFormat))
	if format == "" {
		format = FormatConsole
	}

	encodeConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.MillisDurationEncoder,
	}
	var opts []zap.Option
	switch format {
	case FormatConsole:
		encodeConfig.EncodeTime = zapcore.TimeEncoderOfLayout(consoleTimeLayout)
		encodeConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case FormatJSON:
		encodeConfig.CallerKey = "caller"
		encodeConfig.EncodeCaller = zapcore.ShortCallerEncoder
		encodeConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encodeConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
		opts = append(opts, zap.Fields(zap.String("service", serviceName)))
	default:
		return nil, fmt.Errorf("unsupported log format: %s", conf.LogFormat)
	}

	c := zap.Config{
		Level:             zap.NewAtomicLevelAt(lvl),
		Encoding:          format,
		EncoderConfig:     encodeConfig,
		DisableCaller:     format == FormatConsole,
		DisableStacktrace: lvl > zapcore.DebugLevel,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
	}

	logger, err := c.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create zap logger, error: %w", err)
	}
	return logger.Named(serviceName), nil
}

// InitLogger installs the logger built by New as the zap global.
func InitLogger(conf *config.Config) error {
	logger, err := New(conf)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}
