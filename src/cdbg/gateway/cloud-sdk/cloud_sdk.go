// Package cloudsdk provides credentials for the debugger backend using the locally installed Cloud SDK.
package cloudsdk

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/uber/cdbg-sync/src/cdbg/internal/clock"
	"github.com/uber/cdbg-sync/src/cdbg/internal/errors"
	"github.com/uber/cdbg-sync/src/cdbg/internal/executor"
	"github.com/uber/cdbg-sync/src/cdbg/internal/fs"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const (
	_nameKey   = "cloud-sdk"
	_configKey = "cloudSDK"

	_defaultGcloudPath = "gcloud"
	_gcloudConfigDir   = "gcloud"

	// Access tokens printed by gcloud are valid for one hour.
	_tokenLifetime    = time.Hour
	_tokenEarlyExpiry = 5 * time.Minute
	_commandTimeout   = 30 * time.Second

	_opPrintAccessToken = "gcloud auth print-access-token"
)

// Module provides the Cloud SDK gateway to an Fx application.
var Module = fx.Provide(New)

// Gateway exposes gcloud managed credentials.
type Gateway interface {
	// ActiveAccount returns the account gcloud is currently configured to use.
	ActiveAccount(ctx context.Context) (string, error)
	// TokenSource returns a token source for account. An empty account uses the active account.
	// The returned source stays valid across credential changes.
	TokenSource(account string) oauth2.TokenSource
	// Invalidate drops all cached tokens so the next request asks gcloud again.
	Invalidate()
}

// Config holds the cloudSDK configuration section.
type Config struct {
	GcloudPath      string `yaml:"gcloudPath"`
	ConfigDirectory string `yaml:"configDirectory"`
}

// Params are the dependencies of the Cloud SDK gateway.
type Params struct {
	fx.In

	Config    config.Provider
	Executor  executor.Executor
	FS        fs.FileSystem
	Clock     clock.Clock
	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
}

type gateway struct {
	cfg      Config
	executor executor.Executor
	fs       fs.FileSystem
	clock    clock.Clock
	logger   *zap.SugaredLogger

	mu      sync.Mutex
	sources map[string]oauth2.TokenSource

	watcher *fsnotify.Watcher
	wg      sync.WaitGroup
}

// New creates the Cloud SDK gateway. Cached tokens are dropped whenever the gcloud configuration directory changes.
func New(p Params) (Gateway, error) {
	g := &gateway{
		executor: p.Executor,
		fs:       p.FS,
		clock:    p.Clock,
		logger:   p.Logger.With("plugin", _nameKey),
		sources:  make(map[string]oauth2.TokenSource),
	}

	if err := p.Config.Get(_configKey).Populate(&g.cfg); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKey, err)
	}
	if g.cfg.GcloudPath == "" {
		g.cfg.GcloudPath = _defaultGcloudPath
	}
	if g.cfg.ConfigDirectory == "" {
		dir, err := p.FS.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("locating gcloud configuration: %w", err)
		}
		g.cfg.ConfigDirectory = filepath.Join(dir, _gcloudConfigDir)
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: g.onStart,
		OnStop:  g.onStop,
	})
	return g, nil
}

func (g *gateway) ActiveAccount(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, _commandTimeout)
	defer cancel()

	lines, err := g.gcloud(ctx, "config", "get-value", "account")
	if err != nil {
		return "", err
	}
	if len(lines) == 0 || lines[len(lines)-1] == "(unset)" {
		return "", fmt.Errorf("no active gcloud account, run 'gcloud auth login'")
	}
	return lines[len(lines)-1], nil
}

func (g *gateway) TokenSource(account string) oauth2.TokenSource {
	return &accountTokenSource{gateway: g, account: account}
}

func (g *gateway) Invalidate() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.sources) > 0 {
		g.logger.Debugw("dropping cached access tokens", "accounts", len(g.sources))
	}
	g.sources = make(map[string]oauth2.TokenSource)
}

// cached returns the reusing token source for account, creating it if needed.
func (g *gateway) cached(account string) oauth2.TokenSource {
	g.mu.Lock()
	defer g.mu.Unlock()

	src, ok := g.sources[account]
	if !ok {
		src = oauth2.ReuseTokenSourceWithExpiry(nil, &gcloudTokenSource{gateway: g, account: account}, _tokenEarlyExpiry)
		g.sources[account] = src
	}
	return src
}

func (g *gateway) gcloud(ctx context.Context, args ...string) ([]string, error) {
	result, err := g.executor.Run(ctx, nil, g.cfg.GcloudPath, args...)
	if err != nil {
		return nil, fmt.Errorf("running gcloud %s: %w", strings.Join(args, " "), err)
	}
	if result.ExitCode != 0 {
		return nil, fmt.Errorf("gcloud %s exited with code %d: %s", strings.Join(args, " "), result.ExitCode, strings.TrimSpace(result.Stderr))
	}
	return result.StdoutLines(), nil
}

func (g *gateway) onStart(ctx context.Context) error {
	exists, err := g.fs.DirExists(g.cfg.ConfigDirectory)
	if err != nil || !exists {
		g.logger.Infow("gcloud configuration directory not found, credential changes will not be detected", "directory", g.cfg.ConfigDirectory)
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating gcloud configuration watcher: %w", err)
	}
	if err := watcher.Add(g.cfg.ConfigDirectory); err != nil {
		watcher.Close()
		return fmt.Errorf("watching %q: %w", g.cfg.ConfigDirectory, err)
	}
	g.watcher = watcher

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		g.watch(watcher)
	}()
	return nil
}

func (g *gateway) onStop(ctx context.Context) error {
	if g.watcher == nil {
		return nil
	}
	err := g.watcher.Close()
	g.wg.Wait()
	return err
}

func (g *gateway) watch(watcher *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
				continue
			}
			g.logger.Debugw("gcloud configuration changed", "file", event.Name, "op", event.Op.String())
			g.Invalidate()
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			g.logger.Warnw("watching gcloud configuration", zap.Error(err))
		}
	}
}

// accountTokenSource resolves the cached source on every call so invalidation takes effect for existing clients.
type accountTokenSource struct {
	gateway *gateway
	account string
}

func (s *accountTokenSource) Token() (*oauth2.Token, error) {
	return s.gateway.cached(s.account).Token()
}

// gcloudTokenSource prints a fresh access token with gcloud. Failures are reported as AuthFailureError.
type gcloudTokenSource struct {
	gateway *gateway
	account string
}

func (s *gcloudTokenSource) Token() (*oauth2.Token, error) {
	ctx, cancel := context.WithTimeout(context.Background(), _commandTimeout)
	defer cancel()

	args := []string{"auth", "print-access-token"}
	if s.account != "" {
		args = append(args, s.account)
	}
	lines, err := s.gateway.gcloud(ctx, args...)
	if err != nil {
		return nil, &errors.AuthFailureError{Op: _opPrintAccessToken, Code: http.StatusUnauthorized, Err: err}
	}
	if len(lines) == 0 {
		return nil, &errors.AuthFailureError{Op: _opPrintAccessToken, Code: http.StatusUnauthorized, Err: errors.New("gcloud returned no access token")}
	}

	return &oauth2.Token{
		AccessToken: lines[len(lines)-1],
		TokenType:   "Bearer",
		Expiry:      s.gateway.clock.Now().Add(_tokenLifetime),
	}, nil
}
