package jsonrpcfx

import (
	"context"
	"errors"
	"net"
	"strings"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/cdbg-sync/idl/mock/jsonrpc2mock"
	"github.com/uber/cdbg-sync/src/cdbg/internal/serverinfofile/serverinfofilemock"
	"go.uber.org/config"
	"go.uber.org/fx/fxtest"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		params  func(t *testing.T) Params
		wantErr bool
	}{
		{
			name:    "missing required params",
			params:  func(t *testing.T) Params { return Params{} },
			wantErr: true,
		},
		{
			name: "all required params are present",
			params: func(t *testing.T) Params {
				return Params{
					Lifecycle: fxtest.NewLifecycle(t),
					Config:    newConfigProvider(t, "valid"),
				}
			},
		},
		{
			name: "invalid config",
			params: func(t *testing.T) Params {
				return Params{
					Lifecycle: fxtest.NewLifecycle(t),
					Config:    newConfigProvider(t, "missingKey"),
				}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.params(t))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegisterConnectionManager(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := module{}

	mockConnectionManager := NewMockConnectionManager(ctrl)
	assert.NoError(t, m.RegisterConnectionManager(mockConnectionManager))
	assert.Error(t, m.RegisterConnectionManager(mockConnectionManager))
}

func TestServeStream(t *testing.T) {
	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())

	t.Run("no connection manager registered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := module{logger: zap.NewNop().Sugar()}
		assert.Error(t, m.ServeStream(ctx, jsonrpc2mock.NewMockConn(ctrl)))
	})

	t.Run("failed NewConnection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mgr := NewMockConnectionManager(ctrl)
		mgr.EXPECT().NewConnection(gomock.Any(), gomock.Any()).Return(nil, errors.New("sample error"))

		m := module{logger: zap.NewNop().Sugar()}
		require.NoError(t, m.RegisterConnectionManager(mgr))
		assert.Error(t, m.ServeStream(ctx, jsonrpc2mock.NewMockConn(ctrl)))
	})

	t.Run("successful NewConnection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		router := NewMockRouter(ctrl)
		router.EXPECT().UUID().Return(id).AnyTimes()

		mgr := NewMockConnectionManager(ctrl)
		mgr.EXPECT().NewConnection(gomock.Any(), gomock.Any()).Return(router, nil)
		mgr.EXPECT().RemoveConnection(ctx, id)

		done := make(chan struct{})
		close(done)
		conn := jsonrpc2mock.NewMockConn(ctrl)
		conn.EXPECT().Go(gomock.Any(), gomock.Any())
		conn.EXPECT().Done().Return(done)
		conn.EXPECT().Err().Return(nil)

		m := module{logger: zap.NewNop().Sugar()}
		require.NoError(t, m.RegisterConnectionManager(mgr))
		assert.NoError(t, m.ServeStream(ctx, conn))
	})
}

func TestSetup(t *testing.T) {
	m := module{logger: zap.NewNop().Sugar()}
	assert.Error(t, m.setup())

	m = module{Address: "127.0.0.1:0"}
	require.NoError(t, m.setup())
	assert.NoError(t, m.ln.Close())
}

func TestStartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	infoFile := serverinfofilemock.NewMockServerInfoFile(ctrl)

	m := &module{
		Address:        "127.0.0.1:0",
		serverInfoFile: infoFile,
		logger:         zap.NewNop().Sugar(),
	}

	var advertised string
	infoFile.EXPECT().UpdateField(_outputKey, gomock.Any()).DoAndReturn(func(key, value string) error {
		advertised = value
		return nil
	})

	require.NoError(t, m.OnStart(context.Background()))

	_, port, err := net.SplitHostPort(advertised)
	require.NoError(t, err)
	assert.NotEqual(t, "0", port, "the bound port is advertised")

	assert.NoError(t, m.OnStop(context.Background()))
	assert.NoError(t, m.OnStop(context.Background()), "stopping twice is harmless")
}

func TestOnStartErrors(t *testing.T) {
	t.Run("missing address", func(t *testing.T) {
		m := module{logger: zap.NewNop().Sugar()}
		assert.Error(t, m.OnStart(context.Background()))
	})

	t.Run("info file failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		infoFile := serverinfofilemock.NewMockServerInfoFile(ctrl)
		infoFile.EXPECT().UpdateField(_outputKey, gomock.Any()).Return(errors.New("read only"))

		m := module{Address: "127.0.0.1:0", serverInfoFile: infoFile, logger: zap.NewNop().Sugar()}
		assert.Error(t, m.OnStart(context.Background()))
	})
}

func TestProcessConfig(t *testing.T) {
	tests := []struct {
		name        string
		configKey   string
		wantErr     bool
		errorString string
	}{
		{
			name:      "valid configuration",
			configKey: "valid",
		},
		{
			name:        "missing address key",
			configKey:   "missingKey",
			wantErr:     true,
			errorString: "missing field \"jsonrpc.address\" in config",
		},
		{
			name:        "missing address value",
			configKey:   "missingValue",
			wantErr:     true,
			errorString: "missing field \"jsonrpc.address\" in config",
		},
		{
			name:      "incorrectly formatted entry",
			configKey: "formatProblem",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := module{logger: zap.NewNop().Sugar()}
			err := m.processConfig(newConfigProvider(t, tt.configKey))

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.errorString != "" {
				assert.Equal(t, tt.errorString, err.Error())
			}
		})
	}
}

func newConfigProvider(t *testing.T, configKey string) config.Provider {
	configs := map[string]string{
		"valid": `
jsonrpc:
  address: 127.0.0.1:5869`,
		"missingKey": `
jsonrpc:
  other: value`,
		"missingValue": `
jsonrpc:
  address:`,
		"formatProblem": `
jsonrpc:
  address:
    key: val`,
	}

	provider, err := config.NewYAML(config.Source(strings.NewReader(configs[configKey])))
	require.NoError(t, err)
	return provider
}
