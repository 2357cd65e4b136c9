package app

import (
	"context"
	"time"

	"github.com/uber-go/tally"
	cloudsdk "github.com/uber/cdbg-sync/src/cdbg/gateway/cloud-sdk"
	debuggerclient "github.com/uber/cdbg-sync/src/cdbg/gateway/debugger-client"
	ideclient "github.com/uber/cdbg-sync/src/cdbg/gateway/ide-client"
	"github.com/uber/cdbg-sync/src/cdbg/handler"
	"github.com/uber/cdbg-sync/src/cdbg/internal/clock"
	"github.com/uber/cdbg-sync/src/cdbg/internal/core"
	"github.com/uber/cdbg-sync/src/cdbg/internal/executor"
	"github.com/uber/cdbg-sync/src/cdbg/internal/fs"
	"github.com/uber/cdbg-sync/src/cdbg/internal/jsonrpcfx"
	"github.com/uber/cdbg-sync/src/cdbg/internal/serverinfofile"
	syncstate "github.com/uber/cdbg-sync/src/cdbg/repository/sync-state"
	"go.uber.org/fx"
)

// Module defines the cdbg-sync application module.
var Module = fx.Options(
	cloudsdk.Module,       // outbounds
	debuggerclient.Module, // outbounds
	handler.Module,        // inbounds
	syncstate.Module,
	jsonrpcfx.Module,
	fs.Module,
	clock.Module,
	executor.Module,
	serverinfofile.Module,
	core.ConfigModule,
	core.LoggerModule,
	fx.Provide(ideclient.New),
	fx.Provide(func(lc fx.Lifecycle) tally.Scope {
		rs, closer := tally.NewRootScope(tally.ScopeOptions{
			Tags: map[string]string{
				"service": "cdbg-sync",
			},
		}, 1*time.Second)

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})

		return rs
	}),
	fx.Decorate(decorateEnvContext),
	fx.Decorate(decorateConfigProvider),
	fx.Provide(func() Context {
		return Context{
			Environment:        EnvLocal,
			RuntimeEnvironment: EnvLocal,
		}
	}),
)
