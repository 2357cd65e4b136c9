package handler

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/cdbg-sync/src/cdbg/internal/serverinfofile/serverinfofilemock"
	"go.uber.org/config"
	"go.uber.org/mock/gomock"
)

func TestOutputDebuggerInfo(t *testing.T) {
	tests := []struct {
		name       string
		cfg        string
		setupMocks func(m *serverinfofilemock.MockServerInfoFile)
		wantErr    bool
	}{
		{
			name: "endpoint and pid",
			cfg:  "debugger:\n  endpoint: https://clouddebugger.example.com/\n",
			setupMocks: func(m *serverinfofilemock.MockServerInfoFile) {
				m.EXPECT().UpdateField(_infoKeyEndpoint, "https://clouddebugger.example.com/").Return(nil)
				m.EXPECT().UpdateField(_infoKeyPID, strconv.Itoa(os.Getpid())).Return(nil)
			},
		},
		{
			name: "default endpoint is not written",
			cfg:  "debugger:\n  clientVersion: test\n",
			setupMocks: func(m *serverinfofilemock.MockServerInfoFile) {
				m.EXPECT().UpdateField(_infoKeyPID, gomock.Any()).Return(nil)
			},
		},
		{
			name:       "invalid debugger section",
			cfg:        "debugger: sample\n",
			setupMocks: func(m *serverinfofilemock.MockServerInfoFile) {},
			wantErr:    true,
		},
		{
			name: "file update error",
			cfg:  "debugger:\n  endpoint: https://clouddebugger.example.com/\n",
			setupMocks: func(m *serverinfofilemock.MockServerInfoFile) {
				m.EXPECT().UpdateField(gomock.Any(), gomock.Any()).Return(errors.New("read-only"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			serverInfoFile := serverinfofilemock.NewMockServerInfoFile(ctrl)
			tt.setupMocks(serverInfoFile)

			cfg, err := config.NewYAML(config.Source(strings.NewReader(tt.cfg)))
			require.NoError(t, err)

			err = outputDebuggerInfo(cfg, serverInfoFile)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
