package clouddebugger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"
	"github.com/uber/cdbg-sync/src/cdbg/controller/cloud-debugger/clouddebuggermock"
	"github.com/uber/cdbg-sync/src/cdbg/entity"
	"github.com/uber/cdbg-sync/src/cdbg/factory"
	cdbgerrors "github.com/uber/cdbg-sync/src/cdbg/internal/errors"
	"github.com/uber/cdbg-sync/src/cdbg/mapper"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newRouter(t *testing.T) (*jsonRPCRouter, *clouddebuggermock.MockController, tally.TestScope) {
	c := clouddebuggermock.NewMockController(gomock.NewController(t))
	scope := tally.NewTestScope("testing", nil)
	return &jsonRPCRouter{
		cloudDebugger: c,
		uuid:          factory.UUID(),
		stats:         scope,
		logger:        zap.NewNop().Sugar(),
	}, c, scope
}

func call(t *testing.T, method string, params interface{}) jsonrpc2.Request {
	req, err := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), method, params)
	require.NoError(t, err)
	return req
}

func TestMethods(t *testing.T) {
	controllerErr := errors.New("controller error")

	tests := []struct {
		name    string
		method  string
		params  interface{}
		expect  func(c *clouddebuggermock.MockController, err error)
		result  interface{}
		ctrlErr error
	}{
		{
			name:   "register",
			method: MethodRegister,
			params: entity.RegisterParams{WorkspaceRoot: "/ws", ClientName: "vscode"},
			expect: func(c *clouddebuggermock.MockController, err error) {
				c.EXPECT().Register(gomock.Any(), &entity.RegisterParams{WorkspaceRoot: "/ws", ClientName: "vscode"}).Return(err)
			},
		},
		{
			name:   "list debuggees",
			method: MethodListDebuggees,
			params: entity.ListDebuggeesParams{ProjectID: "sample-project"},
			expect: func(c *clouddebuggermock.MockController, err error) {
				c.EXPECT().ListDebuggees(gomock.Any(), &entity.ListDebuggeesParams{ProjectID: "sample-project"}).
					Return([]entity.Debuggee{{ID: "debuggee-1"}}, err)
			},
			result: []entity.Debuggee{{ID: "debuggee-1"}},
		},
		{
			name:   "attach",
			method: MethodAttach,
			params: entity.AttachParams{RunConfiguration: "server", DebuggeeID: "debuggee-1"},
			expect: func(c *clouddebuggermock.MockController, err error) {
				c.EXPECT().Attach(gomock.Any(), &entity.AttachParams{RunConfiguration: "server", DebuggeeID: "debuggee-1"}).
					Return(&entity.AttachResult{RunConfiguration: "server", DebuggeeID: "debuggee-1"}, err)
			},
			result: &entity.AttachResult{RunConfiguration: "server", DebuggeeID: "debuggee-1"},
		},
		{
			name:   "detach",
			method: MethodDetach,
			params: entity.DetachParams{RunConfiguration: "server", KeepListening: true},
			expect: func(c *clouddebuggermock.MockController, err error) {
				c.EXPECT().Detach(gomock.Any(), &entity.DetachParams{RunConfiguration: "server", KeepListening: true}).Return(err)
			},
		},
		{
			name:   "set listen in background",
			method: MethodSetListenInBackground,
			params: entity.ListenParams{RunConfiguration: "server", Listen: true},
			expect: func(c *clouddebuggermock.MockController, err error) {
				c.EXPECT().SetListenInBackground(gomock.Any(), &entity.ListenParams{RunConfiguration: "server", Listen: true}).Return(err)
			},
		},
		{
			name:   "breakpoint added",
			method: MethodBreakpointAdded,
			params: entity.LocalBreakpointParams{RunConfiguration: "server", URI: "file:///ws/a.go", Line: 3},
			expect: func(c *clouddebuggermock.MockController, err error) {
				c.EXPECT().BreakpointAdded(gomock.Any(), &entity.LocalBreakpointParams{RunConfiguration: "server", URI: "file:///ws/a.go", Line: 3}).
					Return(&entity.LocalBreakpointInfo{ID: "ide-1"}, err)
			},
			result: &entity.LocalBreakpointInfo{ID: "ide-1"},
		},
		{
			name:   "breakpoint changed",
			method: MethodBreakpointChanged,
			params: entity.LocalBreakpointParams{RunConfiguration: "server", Breakpoint: entity.LocalBreakpointInfo{ID: "ide-1"}},
			expect: func(c *clouddebuggermock.MockController, err error) {
				c.EXPECT().BreakpointChanged(gomock.Any(), gomock.Any()).Return(&entity.LocalBreakpointInfo{ID: "ide-1"}, err)
			},
			result: &entity.LocalBreakpointInfo{ID: "ide-1"},
		},
		{
			name:   "breakpoint removed",
			method: MethodBreakpointRemoved,
			params: entity.LocalBreakpointParams{RunConfiguration: "server", Breakpoint: entity.LocalBreakpointInfo{ID: "ide-1"}, Temporary: true},
			expect: func(c *clouddebuggermock.MockController, err error) {
				c.EXPECT().BreakpointRemoved(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, p *entity.LocalBreakpointParams) error {
					assert.True(t, p.Temporary)
					return err
				})
			},
		},
		{
			name:   "list snapshots",
			method: MethodListSnapshots,
			params: entity.SnapshotParams{RunConfiguration: "server"},
			expect: func(c *clouddebuggermock.MockController, err error) {
				c.EXPECT().ListSnapshots(gomock.Any(), gomock.Any()).Return([]*entity.Breakpoint{{ID: "bp-1"}}, err)
			},
			result: []*entity.Breakpoint{{ID: "bp-1"}},
		},
		{
			name:   "resolve snapshot",
			method: MethodResolveSnapshot,
			params: entity.SnapshotParams{RunConfiguration: "server", IDs: []string{"bp-1"}},
			expect: func(c *clouddebuggermock.MockController, err error) {
				c.EXPECT().ResolveSnapshot(gomock.Any(), &entity.SnapshotParams{RunConfiguration: "server", IDs: []string{"bp-1"}}).
					Return(&entity.Breakpoint{ID: "bp-1"}, err)
			},
			result: &entity.Breakpoint{ID: "bp-1"},
		},
		{
			name:   "clone snapshots",
			method: MethodCloneSnapshots,
			params: entity.SnapshotParams{RunConfiguration: "server", IDs: []string{"bp-1"}},
			expect: func(c *clouddebuggermock.MockController, err error) {
				c.EXPECT().CloneSnapshots(gomock.Any(), gomock.Any()).Return(err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, c, scope := newRouter(t)
			tt.expect(c, nil)

			var result interface{}
			err := r.HandleReq(context.Background(), recordingReplier(&result), call(t, tt.method, tt.params))
			require.NoError(t, err)
			if tt.result != nil {
				assert.Equal(t, tt.result, result)
			}
			assert.Len(t, scope.Snapshot().Counters(), 1)
		})

		t.Run(tt.name+" error from controller", func(t *testing.T) {
			r, c, _ := newRouter(t)
			tt.expect(c, controllerErr)

			err := r.HandleReq(context.Background(), newMockReplier(), call(t, tt.method, tt.params))
			assert.ErrorIs(t, err, controllerErr)
		})

		t.Run(tt.name+" invalid params", func(t *testing.T) {
			r, _, _ := newRouter(t)
			req, err := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), tt.method, "not an object")
			require.NoError(t, err)

			err = r.HandleReq(context.Background(), newMockReplier(), req)
			assert.Error(t, err)
		})
	}
}

func TestBadRequest(t *testing.T) {
	r, c, _ := newRouter(t)
	c.EXPECT().Detach(gomock.Any(), gomock.Any()).Return(cdbgerrors.MissingRunConfigurationError)

	err := r.HandleReq(context.Background(), newMockReplier(), call(t, MethodDetach, entity.DetachParams{}))
	assert.ErrorIs(t, err, cdbgerrors.MissingRunConfigurationError)
	assert.Contains(t, err.Error(), jsonrpc2.ErrInvalidParams.Error())
}

func TestSessionContext(t *testing.T) {
	r, c, _ := newRouter(t)
	c.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, p *entity.RegisterParams) error {
		id, err := mapper.ContextToSessionUUID(ctx)
		require.NoError(t, err)
		assert.Equal(t, r.uuid, id)
		return nil
	})

	require.NoError(t, r.HandleReq(context.Background(), newMockReplier(), call(t, MethodRegister, entity.RegisterParams{WorkspaceRoot: "/ws"})))
}

func TestLifecycleMethods(t *testing.T) {
	t.Run("shutdown", func(t *testing.T) {
		r, c, _ := newRouter(t)
		c.EXPECT().Shutdown(gomock.Any()).Return(nil)
		assert.NoError(t, r.HandleReq(context.Background(), newMockReplier(), call(t, protocol.MethodShutdown, nil)))
	})

	t.Run("exit replies before ending the session", func(t *testing.T) {
		r, c, _ := newRouter(t)
		replied := false
		c.EXPECT().Exit(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
			assert.True(t, replied)
			return errors.New("no session")
		})

		err := r.HandleReq(context.Background(), func(ctx context.Context, result interface{}, err error) error {
			replied = true
			return nil
		}, call(t, protocol.MethodExit, nil))
		assert.Error(t, err)
	})
}
