package logging

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "kanban.log")

	logger, closer, err := New("debug", path)
	require.NoError(t, err)
	logger.WithField("list", "l1").Debug("list added")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "list added")
	assert.Contains(t, string(data), "list=l1")
}

func TestNew_Stderr(t *testing.T) {
	logger, closer, err := New("warn", "-")
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, os.Stderr, logger.Out)
	assert.Equal(t, log.WarnLevel, logger.GetLevel())
}

func TestNew_InvalidLevel(t *testing.T) {
	_, _, err := New("loud", "-")

	assert.Error(t, err)
}
