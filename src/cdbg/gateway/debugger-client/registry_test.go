package debuggerclient

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/cdbg-sync/src/cdbg/gateway/cloud-sdk/cloudsdkmock"
	"go.uber.org/config"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"
)

func TestNewRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.NewYAML(config.Source(strings.NewReader("debugger:\n  clientVersion: cdbg-sync/1.0\n")))
		require.NoError(t, err)

		r, err := NewRegistry(RegistryParams{Config: cfg, CloudSDK: cloudsdkmock.NewMockGateway(ctrl), Logger: zap.NewNop().Sugar()})
		require.NoError(t, err)
		opts := r.(*registry).opts
		assert.Equal(t, _defaultEndpoint, opts.Endpoint)
		assert.Equal(t, _defaultRequestTimeout, opts.RequestTimeout)
		assert.Equal(t, "cdbg-sync/1.0", opts.ClientVersion)
	})

	t.Run("overrides", func(t *testing.T) {
		cfg, err := config.NewYAML(config.Source(strings.NewReader("debugger:\n  endpoint: http://localhost:9000/\n  requestTimeout: 5s\n")))
		require.NoError(t, err)

		r, err := NewRegistry(RegistryParams{Config: cfg, CloudSDK: cloudsdkmock.NewMockGateway(ctrl), Logger: zap.NewNop().Sugar()})
		require.NoError(t, err)
		opts := r.(*registry).opts
		assert.Equal(t, "http://localhost:9000/", opts.Endpoint)
		assert.Equal(t, 5*time.Second, opts.RequestTimeout)
	})

	t.Run("invalid config", func(t *testing.T) {
		cfg, err := config.NewYAML(config.Source(strings.NewReader("debugger:\n  requestTimeout: [1, 2]\n")))
		require.NoError(t, err)

		_, err = NewRegistry(RegistryParams{Config: cfg, CloudSDK: cloudsdkmock.NewMockGateway(ctrl), Logger: zap.NewNop().Sugar()})
		assert.Error(t, err)
	})
}

func TestRegistryGet(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	sdk := cloudsdkmock.NewMockGateway(ctrl)
	tokens := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "token"})

	var created []string
	r := &registry{
		opts:     Options{Endpoint: _defaultEndpoint},
		cloudSDK: sdk,
		logger:   zap.NewNop().Sugar(),
		gateways: make(map[string]Gateway),
	}
	r.newGateway = func(ctx context.Context, opts Options, logger *zap.SugaredLogger, clientOpts ...option.ClientOption) (Gateway, error) {
		assert.Equal(t, _defaultEndpoint, opts.Endpoint)
		assert.Len(t, clientOpts, 1)
		if len(created) == 2 {
			return nil, errors.New("transport unavailable")
		}
		g := &gateway{opts: opts}
		created = append(created, opts.Endpoint)
		return g, nil
	}

	sdk.EXPECT().TokenSource("alice@example.com").Return(tokens).Times(1)
	sdk.EXPECT().TokenSource("bob@example.com").Return(tokens).Times(1)
	sdk.EXPECT().TokenSource("carol@example.com").Return(tokens).Times(1)

	alice, err := r.Get(ctx, "alice@example.com")
	require.NoError(t, err)
	again, err := r.Get(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Same(t, alice, again)

	bob, err := r.Get(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.NotSame(t, alice, bob)
	assert.Len(t, created, 2)

	_, err = r.Get(ctx, "carol@example.com")
	assert.Error(t, err)
	assert.NotContains(t, r.gateways, "carol@example.com")
}
