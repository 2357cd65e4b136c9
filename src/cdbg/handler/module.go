package handler

import (
	controller "github.com/uber/cdbg-sync/src/cdbg/controller"
	clouddebugger "github.com/uber/cdbg-sync/src/cdbg/controller/cloud-debugger"
	handler "github.com/uber/cdbg-sync/src/cdbg/handler/cloud-debugger"
	"github.com/uber/cdbg-sync/src/cdbg/repository/session"
	"go.uber.org/fx"
)

// Module provides the cdbg-sync server into an Fx application.
var Module = fx.Options(
	controller.Module,
	fx.Provide(session.New),
	fx.Provide(handler.New),
	fx.Invoke(outputDebuggerInfo),
	fx.Invoke(func(m handler.Handler) {}),
	fx.Invoke(func(m clouddebugger.Controller) {}),
)
