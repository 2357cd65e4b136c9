package mapper

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/uber/cdbg-sync/src/cdbg/entity"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/uri"
)

// RequestToParams decodes the parameters of a jsonrpc2.Request into a new value of type T.
func RequestToParams[T any](req jsonrpc2.Request) (*T, error) {
	var params T
	if len(req.Params()) == 0 {
		return &params, nil
	}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// URIToSourceLocation converts a file URI within the workspace root into a slash separated source path.
// Paths outside the workspace root are rejected.
func URIToSourceLocation(workspaceRoot string, fileURI string, line int) (*entity.SourceLocation, error) {
	if fileURI == "" {
		return nil, fmt.Errorf("empty uri")
	}
	filename := uri.New(fileURI).Filename()
	rel, err := filepath.Rel(workspaceRoot, filename)
	if err != nil {
		return nil, fmt.Errorf("resolving %q against %q: %w", filename, workspaceRoot, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("%q is outside of workspace %q", filename, workspaceRoot)
	}
	return &entity.SourceLocation{
		Path: filepath.ToSlash(rel),
		Line: line,
	}, nil
}

func wrapErrParse(err error) error {
	return fmt.Errorf("%s: %w", jsonrpc2.ErrParse, err)
}
