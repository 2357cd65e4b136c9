package clouddebugger

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"
	"github.com/uber/cdbg-sync/idl/mock/jsonrpc2mock"
	"github.com/uber/cdbg-sync/src/cdbg/controller/cloud-debugger/clouddebuggermock"
	"github.com/uber/cdbg-sync/src/cdbg/factory"
	"github.com/uber/cdbg-sync/src/cdbg/internal/jsonrpcfx/jsonrpcfxmock"
	"github.com/uber/cdbg-sync/src/cdbg/mapper"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := clouddebuggermock.NewMockController(ctrl)
	testScope := tally.NewTestScope("testing", make(map[string]string, 0))

	t.Run("registers the connection manager", func(t *testing.T) {
		jsonRPCMock := jsonrpcfxmock.NewMockJSONRPCModule(ctrl)
		jsonRPCMock.EXPECT().RegisterConnectionManager(gomock.Any()).Return(nil)
		h, err := New(c, jsonRPCMock, testScope, zap.NewNop().Sugar())
		require.NoError(t, err)
		assert.IsType(t, &jsonRPCConnectionManager{}, h)
	})

	t.Run("duplicate registration", func(t *testing.T) {
		jsonRPCMock := jsonrpcfxmock.NewMockJSONRPCModule(ctrl)
		jsonRPCMock.EXPECT().RegisterConnectionManager(gomock.Any()).Return(errors.New("duplicate"))
		_, err := New(c, jsonRPCMock, testScope, zap.NewNop().Sugar())
		assert.Error(t, err)
	})
}

func TestNewConnection(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	c := clouddebuggermock.NewMockController(ctrl)
	mgr := jsonRPCConnectionManager{
		ctrl:   c,
		stats:  tally.NewTestScope("testing", make(map[string]string, 0)),
		logger: zap.NewNop().Sugar(),
	}

	mockConn := jsonrpc2mock.NewMockConn(ctrl)
	var conn jsonrpc2.Conn = mockConn

	t.Run("create success", func(t *testing.T) {
		id := factory.UUID()
		c.EXPECT().InitSession(gomock.Any(), gomock.Any()).Return(id, nil)
		router, err := mgr.NewConnection(ctx, &conn)
		require.NoError(t, err)
		assert.IsType(t, &jsonRPCRouter{}, router)
		assert.Equal(t, id, router.UUID())
	})

	t.Run("create failure", func(t *testing.T) {
		c.EXPECT().InitSession(gomock.Any(), gomock.Any()).Return(uuid.Nil, errors.New("error"))
		_, err := mgr.NewConnection(ctx, &conn)
		assert.Error(t, err)
	})
}

func TestRemoveConnection(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	c := clouddebuggermock.NewMockController(ctrl)
	id := factory.UUID()
	c.EXPECT().InitSession(gomock.Any(), gomock.Any()).Return(id, nil)
	c.EXPECT().EndSession(gomock.Any(), id).DoAndReturn(func(ctx context.Context, id uuid.UUID) error {
		resultID, err := mapper.ContextToSessionUUID(ctx)
		assert.NoError(t, err)
		assert.Equal(t, id, resultID)
		return errors.New("already ended")
	})

	mgr := jsonRPCConnectionManager{
		ctrl:   c,
		stats:  tally.NewTestScope("testing", make(map[string]string, 0)),
		logger: zap.NewNop().Sugar(),
	}

	mockConn := jsonrpc2mock.NewMockConn(ctrl)
	var conn jsonrpc2.Conn = mockConn
	router, err := mgr.NewConnection(ctx, &conn)
	require.NoError(t, err)

	mgr.RemoveConnection(ctx, router.UUID())
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newMockReplier() jsonrpc2.Replier {
	return func(ctx context.Context, result interface{}, err error) error {
		return err
	}
}

// recordingReplier captures the result passed to the replier.
func recordingReplier(result *interface{}) jsonrpc2.Replier {
	return func(ctx context.Context, r interface{}, err error) error {
		*result = r
		return err
	}
}
