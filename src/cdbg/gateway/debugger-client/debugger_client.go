// Package debuggerclient is the transport to the Cloud Debugger v2 REST API.
package debuggerclient

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/uber/cdbg-sync/src/cdbg/entity"
	"github.com/uber/cdbg-sync/src/cdbg/internal/errors"
	"github.com/uber/cdbg-sync/src/cdbg/mapper"
	"github.com/uber/cdbg-sync/src/cdbg/model"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	htransport "google.golang.org/api/transport/http"
)

const (
	_cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

	_opListDebuggees    = "debuggees.list"
	_opListBreakpoints  = "breakpoints.list"
	_opGetBreakpoint    = "breakpoints.get"
	_opSetBreakpoint    = "breakpoints.set"
	_opDeleteBreakpoint = "breakpoints.delete"

	_kindBreakpoint = "breakpoint"
	_kindDebuggee   = "debuggee"

	_rejectedFallback = "The request was rejected by the debugger backend."
)

// ListResult is the outcome of one long poll.
type ListResult struct {
	Breakpoints   []*entity.Breakpoint
	NextWaitToken string
}

// Gateway is the remote breakpoint service of one account.
type Gateway interface {
	// ListDebuggees returns the active debuggees of a project.
	ListDebuggees(ctx context.Context, projectID string) ([]entity.Debuggee, error)
	// ListBreakpoints is a long poll. With a nil waitToken it returns immediately; otherwise the backend
	// holds the request until the breakpoint list differs from the one identified by the token.
	// An unchanged list after the server side wait fails with TransportTimeoutError.
	ListBreakpoints(ctx context.Context, debuggeeID string, waitToken *string) (ListResult, error)
	// GetBreakpoint returns the fully hydrated breakpoint, or NotFoundError.
	GetBreakpoint(ctx context.Context, debuggeeID, breakpointID string) (*entity.Breakpoint, error)
	// SetBreakpoint creates a breakpoint and returns it with the id assigned by the backend.
	// The backend may accept a definition and flag it with an error status, or refuse it with RemoteRejectedError.
	SetBreakpoint(ctx context.Context, debuggeeID string, bp *entity.Breakpoint) (*entity.Breakpoint, error)
	// DeleteBreakpoint removes a breakpoint. It fails with NotFoundError if the id is unknown.
	DeleteBreakpoint(ctx context.Context, debuggeeID, breakpointID string) error
}

// Options configure a REST gateway.
type Options struct {
	Endpoint      string
	ClientVersion string
	// RequestTimeout bounds a single call, including the server side wait of a long poll.
	RequestTimeout time.Duration
}

type gateway struct {
	httpClient *http.Client
	basePath   string
	opts       Options
	logger     *zap.SugaredLogger
}

// New creates a REST gateway. Authentication is taken from clientOpts, usually option.WithTokenSource.
func New(ctx context.Context, opts Options, logger *zap.SugaredLogger, clientOpts ...option.ClientOption) (Gateway, error) {
	clientOpts = append([]option.ClientOption{
		option.WithEndpoint(opts.Endpoint),
		option.WithScopes(_cloudPlatformScope),
	}, clientOpts...)

	client, endpoint, err := htransport.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating debugger http client: %w", err)
	}
	if endpoint == "" {
		endpoint = opts.Endpoint
	}

	return &gateway{
		httpClient: client,
		basePath:   endpoint,
		opts:       opts,
		logger:     logger,
	}, nil
}

func (g *gateway) ListDebuggees(ctx context.Context, projectID string) ([]entity.Debuggee, error) {
	params := url.Values{}
	params.Set("project", projectID)
	params.Set("includeInactive", "false")

	var resp model.ListDebuggeesResponse
	if err := g.do(ctx, http.MethodGet, "v2/debugger/debuggees", nil, params, nil, &resp); err != nil {
		return nil, mapError(_opListDebuggees, _kindDebuggee, projectID, err)
	}

	debuggees := make([]entity.Debuggee, 0, len(resp.Debuggees))
	for _, d := range resp.Debuggees {
		if d != nil {
			debuggees = append(debuggees, mapper.ModelToDebuggee(d))
		}
	}
	return debuggees, nil
}

func (g *gateway) ListBreakpoints(ctx context.Context, debuggeeID string, waitToken *string) (ListResult, error) {
	params := url.Values{}
	params.Set("includeAllUsers", "true")
	params.Set("includeInactive", "true")
	params.Set("stripResults", "true")
	if waitToken != nil {
		params.Set("waitToken", *waitToken)
	}

	var resp model.ListBreakpointsResponse
	err := g.do(ctx, http.MethodGet, "v2/debugger/debuggees/{debuggeeId}/breakpoints",
		map[string]string{"debuggeeId": debuggeeID}, params, nil, &resp)
	if err != nil {
		return ListResult{}, mapError(_opListBreakpoints, _kindDebuggee, debuggeeID, err)
	}
	if resp.WaitExpired {
		return ListResult{}, &errors.TransportTimeoutError{Op: _opListBreakpoints}
	}

	return ListResult{
		Breakpoints:   mapper.ModelsToBreakpoints(resp.Breakpoints),
		NextWaitToken: resp.NextWaitToken,
	}, nil
}

func (g *gateway) GetBreakpoint(ctx context.Context, debuggeeID, breakpointID string) (*entity.Breakpoint, error) {
	var resp model.GetBreakpointResponse
	err := g.do(ctx, http.MethodGet, "v2/debugger/debuggees/{debuggeeId}/breakpoints/{breakpointId}",
		map[string]string{"debuggeeId": debuggeeID, "breakpointId": breakpointID}, nil, nil, &resp)
	if err != nil {
		return nil, mapError(_opGetBreakpoint, _kindBreakpoint, breakpointID, err)
	}
	if resp.Breakpoint == nil {
		return nil, &errors.NotFoundError{Kind: _kindBreakpoint, ID: breakpointID}
	}
	return mapper.ModelToBreakpoint(resp.Breakpoint), nil
}

func (g *gateway) SetBreakpoint(ctx context.Context, debuggeeID string, bp *entity.Breakpoint) (*entity.Breakpoint, error) {
	body, err := json.Marshal(mapper.BreakpointToModel(bp))
	if err != nil {
		return nil, fmt.Errorf("encoding breakpoint: %w", err)
	}

	var resp model.SetBreakpointResponse
	err = g.do(ctx, http.MethodPost, "v2/debugger/debuggees/{debuggeeId}/breakpoints/set",
		map[string]string{"debuggeeId": debuggeeID}, nil, body, &resp)
	if err != nil {
		return nil, mapError(_opSetBreakpoint, _kindDebuggee, debuggeeID, err)
	}
	if resp.Breakpoint == nil {
		return nil, fmt.Errorf("%s: empty response", _opSetBreakpoint)
	}
	return mapper.ModelToBreakpoint(resp.Breakpoint), nil
}

func (g *gateway) DeleteBreakpoint(ctx context.Context, debuggeeID, breakpointID string) error {
	err := g.do(ctx, http.MethodDelete, "v2/debugger/debuggees/{debuggeeId}/breakpoints/{breakpointId}",
		map[string]string{"debuggeeId": debuggeeID, "breakpointId": breakpointID}, nil, nil, nil)
	if err != nil {
		return mapError(_opDeleteBreakpoint, _kindBreakpoint, breakpointID, err)
	}
	return nil
}

// do issues one request and decodes the JSON response into out, if set.
func (g *gateway) do(ctx context.Context, method, path string, expansions map[string]string, params url.Values, body []byte, out interface{}) error {
	if g.opts.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.opts.RequestTimeout)
		defer cancel()
	}

	if params == nil {
		params = url.Values{}
	}
	if g.opts.ClientVersion != "" {
		params.Set("clientVersion", g.opts.ClientVersion)
	}
	params.Set("alt", "json")

	urls := googleapi.ResolveRelative(g.basePath, path) + "?" + params.Encode()
	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, urls, reqBody)
	if err != nil {
		return err
	}
	googleapi.Expand(req.URL, expansions)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	g.logger.Debugw("debugger request", "method", method, "url", req.URL.Path)
	res, err := g.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer googleapi.CloseBody(res)

	if err := googleapi.CheckResponse(res); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil && !stderrors.Is(err, io.EOF) {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// mapError translates transport and HTTP failures into the daemon's error taxonomy.
func mapError(op, kind, id string, err error) error {
	if errors.IsAuthFailure(err) || errors.IsTimeout(err) {
		return err
	}

	var gerr *googleapi.Error
	if stderrors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return &errors.AuthFailureError{Op: op, Code: gerr.Code, Err: err}
		case http.StatusNotFound:
			return &errors.NotFoundError{Kind: kind, ID: id}
		case http.StatusConflict:
			return &errors.RemoteConflictError{Op: op, Err: err}
		case http.StatusRequestTimeout, http.StatusGatewayTimeout:
			return &errors.TransportTimeoutError{Op: op, Err: err}
		case http.StatusBadRequest:
			msg := gerr.Message
			if msg == "" {
				msg = _rejectedFallback
			}
			return &errors.RemoteRejectedError{Op: op, Message: msg}
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if stderrors.Is(err, context.DeadlineExceeded) {
		return &errors.TransportTimeoutError{Op: op, Err: err}
	}
	var netErr net.Error
	if stderrors.As(err, &netErr) && netErr.Timeout() {
		return &errors.TransportTimeoutError{Op: op, Err: err}
	}
	return fmt.Errorf("%s: %w", op, err)
}
