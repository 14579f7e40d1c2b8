package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chickens/chatterbox/config"
)

// No other test in this package calls InitLogger, so the package-level
// defaults are what these assertions see first.
func TestLogger_UsableBeforeInit(t *testing.T) {
	require.NotNil(t, Logger)
	require.NotNil(t, Sugar)
	Sugar.Infow("boot", "ready", false)
	Logger.Info("boot")
}

func TestInitLogger_ReplacesDefaults(t *testing.T) {
	before := Logger
	err := InitLogger(config.AppConfig{
		LogLevel: "info",
		LogPath:  filepath.Join(t.TempDir(), "app.log"),
	})
	require.NoError(t, err)
	require.NotNil(t, Logger)
	require.NotNil(t, Sugar)
	assert.NotSame(t, before, Logger)
	Sugar.Infow("configured", "sink", "file")
}
