package breakpointsync

import (
	"fmt"
	"time"

	"github.com/uber-go/tally"
	debuggerclient "github.com/uber/cdbg-sync/src/cdbg/gateway/debugger-client"
	"github.com/uber/cdbg-sync/src/cdbg/internal/clock"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_nameKey   = "breakpoint_sync"
	_configKey = "debugger"

	_defaultPollDelay = 500 * time.Millisecond
	// _fallbackPollDelay paces polling when the wait token protocol is disabled.
	_fallbackPollDelay = time.Second
)

// Factory creates one Controller per debug session.
type Factory interface {
	New(gateway debuggerclient.Gateway, notifier AuthNotifier) Controller
}

// Config is the part of the debugger configuration section used by the controller.
type Config struct {
	PollDelay    time.Duration `yaml:"pollDelay"`
	UseWaitToken *bool         `yaml:"useWaitToken"`
}

// Params are the dependencies of the Factory.
type Params struct {
	fx.In

	Config config.Provider
	Clock  clock.Clock
	Stats  tally.Scope
	Logger *zap.SugaredLogger
}

type factory struct {
	opts Options
}

// NewFactory reads the polling configuration shared by all controllers.
func NewFactory(p Params) (Factory, error) {
	var cfg Config
	if err := p.Config.Get(_configKey).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKey, err)
	}

	opts := Options{
		Clock:        p.Clock,
		Stats:        p.Stats.SubScope(_nameKey),
		Logger:       p.Logger,
		PollDelay:    cfg.PollDelay,
		UseWaitToken: cfg.UseWaitToken == nil || *cfg.UseWaitToken,
	}
	switch {
	case !opts.UseWaitToken:
		opts.PollDelay = _fallbackPollDelay
	case opts.PollDelay <= 0:
		opts.PollDelay = _defaultPollDelay
	}
	return &factory{opts: opts}, nil
}

func (f *factory) New(gateway debuggerclient.Gateway, notifier AuthNotifier) Controller {
	opts := f.opts
	opts.Gateway = gateway
	opts.Notifier = notifier
	return New(opts)
}
