package pg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGooseLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	l := gooseLogger{}
	l.Printf("OK   %s (%v)\n", "00001_init.sql", "12.5ms")
	l.Fatalf("failed to apply %s", "00002_broken.sql")

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "OK   00001_init.sql (12.5ms)", entries[0].Message)
		assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
		assert.Equal(t, "migrations", entries[0].LoggerName)
		assert.Equal(t, "failed to apply 00002_broken.sql", entries[1].Message)
		assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	}
}
