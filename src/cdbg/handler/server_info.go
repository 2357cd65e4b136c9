package handler

import (
	"fmt"
	"os"
	"strconv"

	debuggerclient "github.com/uber/cdbg-sync/src/cdbg/gateway/debugger-client"
	"github.com/uber/cdbg-sync/src/cdbg/internal/serverinfofile"
	"go.uber.org/config"
)

const (
	_configKeyDebugger = "debugger"

	_infoKeyEndpoint = "debugger-endpoint"
	_infoKeyPID      = "cdbg-pid"
)

// Output the backend and process of this daemon so IDEs can tell which instance they reach.
// The JSON-RPC module adds its own listen address to the same file.
func outputDebuggerInfo(cfg config.Provider, infofile serverinfofile.ServerInfoFile) error {
	var dbg debuggerclient.Config
	if err := cfg.Get(_configKeyDebugger).Populate(&dbg); err != nil {
		return fmt.Errorf("loading debugger config: %w", err)
	}

	if dbg.Endpoint != "" {
		if err := infofile.UpdateField(_infoKeyEndpoint, dbg.Endpoint); err != nil {
			return fmt.Errorf("outputting %q to info file: %w", _infoKeyEndpoint, err)
		}
	}
	if err := infofile.UpdateField(_infoKeyPID, strconv.Itoa(os.Getpid())); err != nil {
		return fmt.Errorf("outputting %q to info file: %w", _infoKeyPID, err)
	}
	return nil
}
