package core

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/config"
)

func TestNewSugaredLogger(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "cdbg.log")

	tests := []struct {
		name      string
		yaml      string
		expectErr bool
	}{
		{
			name: "json production",
			yaml: "logging:\n  level: info\n  encoding: json\n",
		},
		{
			name: "console development with file output",
			yaml: "logging:\n  level: debug\n  development: true\n  encoding: console\n  outputPaths:\n    - " + logFile + "\n",
		},
		{
			name:      "invalid level",
			yaml:      "logging:\n  level: loud\n",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := config.NewYAML(config.Source(strings.NewReader(tt.yaml)))
			require.NoError(t, err)

			sugar, err := NewSugaredLogger(provider)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, NewLogger(sugar))
			sugar.Infow("logger ready", "test", tt.name)
		})
	}
}
