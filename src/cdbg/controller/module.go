package controller

import (
	breakpointsync "github.com/uber/cdbg-sync/src/cdbg/controller/breakpoint-sync"
	clouddebugger "github.com/uber/cdbg-sync/src/cdbg/controller/cloud-debugger"
	"github.com/uber/cdbg-sync/src/cdbg/controller/scheduler"
	"go.uber.org/fx"
)

// Module provides the controllers of the daemon.
var Module = fx.Options(
	fx.Provide(clouddebugger.New),
	fx.Provide(breakpointsync.NewFactory),
	fx.Provide(scheduler.New),
)
