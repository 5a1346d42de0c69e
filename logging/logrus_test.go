package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleFormatter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriterLogger(&buf, logrus.DebugLevel)

	log.WithField("corners", 3).WithField("b", "x").Warnf("recentered %s", "path")

	line := buf.String()
	assert.Contains(t, line, "[WAR] recentered path")
	assert.Contains(t, line, " b=x corners=3\n")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriterLogger(&buf, logrus.InfoLevel)

	log.Debugf("hidden")
	log.Infof("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[INF] shown")
}

func TestNopDiscards(t *testing.T) {
	log := Nop()
	log.Errorf("nothing %d", 1)
	log.WithField("k", "v").Infof("still nothing")
}

func TestNewLogrusLoggerWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	log, err := NewLogrusLogger("not-a-level", dir)
	require.NoError(t, err)

	log.Infof("session started")

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "[INF] session started")
}
