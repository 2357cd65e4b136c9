package debuggerclient

import (
	"context"
	"fmt"
	"sync"
	"time"

	cloudsdk "github.com/uber/cdbg-sync/src/cdbg/gateway/cloud-sdk"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const (
	_nameKey   = "debugger-client"
	_configKey = "debugger"

	_defaultEndpoint       = "https://clouddebugger.googleapis.com/"
	_defaultRequestTimeout = 60 * time.Second
)

// Module provides the client Registry to an Fx application.
var Module = fx.Provide(NewRegistry)

// Registry owns one Gateway per account. Controllers receive it by injection instead of sharing clients globally.
type Registry interface {
	// Get returns the gateway for account, creating it on first use. An empty account uses the active gcloud account.
	Get(ctx context.Context, account string) (Gateway, error)
}

// Config holds the debugger configuration section used by the transport.
type Config struct {
	Endpoint       string        `yaml:"endpoint"`
	ClientVersion  string        `yaml:"clientVersion"`
	RequestTimeout time.Duration `yaml:"requestTimeout"`
}

// RegistryParams are the dependencies of the Registry.
type RegistryParams struct {
	fx.In

	Config   config.Provider
	CloudSDK cloudsdk.Gateway
	Logger   *zap.SugaredLogger
}

type newGatewayFunc func(ctx context.Context, opts Options, logger *zap.SugaredLogger, clientOpts ...option.ClientOption) (Gateway, error)

type registry struct {
	opts       Options
	cloudSDK   cloudsdk.Gateway
	logger     *zap.SugaredLogger
	newGateway newGatewayFunc

	mu       sync.Mutex
	gateways map[string]Gateway
}

// NewRegistry creates an empty Registry.
func NewRegistry(p RegistryParams) (Registry, error) {
	var cfg Config
	if err := p.Config.Get(_configKey).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKey, err)
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = _defaultEndpoint
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = _defaultRequestTimeout
	}

	return &registry{
		opts: Options{
			Endpoint:       cfg.Endpoint,
			ClientVersion:  cfg.ClientVersion,
			RequestTimeout: cfg.RequestTimeout,
		},
		cloudSDK:   p.CloudSDK,
		logger:     p.Logger.With("plugin", _nameKey),
		newGateway: New,
		gateways:   make(map[string]Gateway),
	}, nil
}

func (r *registry) Get(ctx context.Context, account string) (Gateway, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if g, ok := r.gateways[account]; ok {
		return g, nil
	}

	g, err := r.newGateway(ctx, r.opts, r.logger.With("account", account), option.WithTokenSource(r.cloudSDK.TokenSource(account)))
	if err != nil {
		return nil, err
	}
	r.gateways[account] = g
	return g, nil
}
