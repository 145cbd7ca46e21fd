package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/lambda-feedback/replica/protocol"
	"github.com/lambda-feedback/replica/replica"
)

// --- Mock app ---
type mockApp struct {
	mock.Mock
}

func (m *mockApp) Serve(ctx context.Context, scope protocol.Scope, receive protocol.Receiver, send protocol.Sender) error {
	args := m.Called(ctx, scope, receive, send)

	if fn, ok := args.Get(0).(func(protocol.Sender) error); ok {
		return fn(send)
	}

	return args.Error(0)
}

func serve(t *testing.T, app protocol.App, req *http.Request) *http.Response {
	w := httptest.NewRecorder()

	Adapt(app, zaptest.NewLogger(t)).ServeHTTP(w, req)

	return w.Result()
}

func readBody(t *testing.T, res *http.Response) string {
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return string(body)
}

func TestAppHandler_FastResponse(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/fast", nil)

	res := serve(t, replica.FastResponse, req)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "text/plain", res.Header.Get("Content-Type"))
	assert.Len(t, res.Header, 1)
	assert.Equal(t, "Fast async response", readBody(t, res))
}

func TestAppHandler_Scope(t *testing.T) {
	app := new(mockApp)
	app.On("Serve", mock.Anything, mock.MatchedBy(func(s protocol.Scope) bool {
		return s.ID == "req-1" &&
			s.Method == http.MethodPost &&
			s.Path == "/fast" &&
			s.Query == "a=b" &&
			s.Header.Get("X-Test") == "yes"
	}), mock.Anything, mock.Anything).Return(func(send protocol.Sender) error {
		return replica.FastResponse(context.Background(), protocol.Scope{}, nil, send)
	})

	req := httptest.NewRequest(http.MethodPost, "/fast?a=b", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	req.Header.Set("X-Test", "yes")

	res := serve(t, app.Serve, req)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	app.AssertExpectations(t)
}

func TestAppHandler_GeneratesRequestID(t *testing.T) {
	var scope protocol.Scope
	app := func(ctx context.Context, s protocol.Scope, _ protocol.Receiver, send protocol.Sender) error {
		scope = s
		return replica.FastResponse(ctx, s, nil, send)
	}

	serve(t, app, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Len(t, scope.ID, 36)
}

func TestAppHandler_Receive(t *testing.T) {
	var received protocol.Message
	app := func(ctx context.Context, _ protocol.Scope, receive protocol.Receiver, send protocol.Sender) error {
		msg, err := receive.Receive(ctx)
		if err != nil {
			return err
		}
		received = msg
		return replica.FastResponse(ctx, protocol.Scope{}, nil, send)
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("payload"))

	res := serve(t, app, req)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, protocol.RequestBody{Body: []byte("payload")}, received)
}

func TestAppHandler_FailureBeforeStartAborts(t *testing.T) {
	app := func(context.Context, protocol.Scope, protocol.Receiver, protocol.Sender) error {
		return errors.New("transport unavailable")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.PanicsWithError(t, http.ErrAbortHandler.Error(), func() {
		Adapt(app, zap.NewNop()).ServeHTTP(httptest.NewRecorder(), req)
	})
}

func TestAppHandler_FailureAfterStartAborts(t *testing.T) {
	app := func(ctx context.Context, _ protocol.Scope, _ protocol.Receiver, send protocol.Sender) error {
		if err := send.Send(ctx, protocol.ResponseStart{StatusCode: http.StatusOK}); err != nil {
			return err
		}
		return errors.New("transport unavailable")
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.PanicsWithError(t, http.ErrAbortHandler.Error(), func() {
		Adapt(app, zap.NewNop()).ServeHTTP(w, req)
	})

	assert.Empty(t, w.Body.String())
}

func TestAppHandler_CancelledRequest(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequest(http.MethodGet, "/fast", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	assert.PanicsWithError(t, http.ErrAbortHandler.Error(), func() {
		Adapt(replica.FastResponse, zap.NewNop()).ServeHTTP(w, req)
	})

	assert.Empty(t, w.Body.String())
}

func TestResponseSender_Ordering(t *testing.T) {
	ctx := context.Background()

	t.Run("body before start", func(t *testing.T) {
		s := newResponseSender(httptest.NewRecorder())
		err := s.Send(ctx, protocol.ResponseBody{Body: []byte("x")})
		assert.ErrorIs(t, err, ErrResponseNotStarted)
		assert.False(t, s.started())
	})

	t.Run("duplicate start", func(t *testing.T) {
		s := newResponseSender(httptest.NewRecorder())
		require.NoError(t, s.Send(ctx, protocol.ResponseStart{StatusCode: http.StatusOK}))
		err := s.Send(ctx, protocol.ResponseStart{StatusCode: http.StatusOK})
		assert.ErrorIs(t, err, ErrResponseAlreadyStarted)
	})

	t.Run("second body", func(t *testing.T) {
		s := newResponseSender(httptest.NewRecorder())
		require.NoError(t, s.Send(ctx, protocol.ResponseStart{StatusCode: http.StatusOK}))
		require.NoError(t, s.Send(ctx, protocol.ResponseBody{}))
		assert.True(t, s.complete())

		err := s.Send(ctx, protocol.ResponseBody{})
		assert.ErrorIs(t, err, ErrResponseComplete)

		err = s.Send(ctx, protocol.ResponseStart{StatusCode: http.StatusOK})
		assert.ErrorIs(t, err, ErrResponseComplete)
	})

	t.Run("unknown message", func(t *testing.T) {
		s := newResponseSender(httptest.NewRecorder())
		err := s.Send(ctx, protocol.RequestBody{})
		assert.ErrorIs(t, err, ErrUnknownMessage)
	})
}

func TestResponseSender_HeaderOrder(t *testing.T) {
	w := httptest.NewRecorder()
	s := newResponseSender(w)

	err := s.Send(context.Background(), protocol.ResponseStart{
		StatusCode: http.StatusAccepted,
		Headers: []protocol.Header{
			protocol.NewHeader("x-multi", "one"),
			protocol.NewHeader("x-multi", "two"),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, []string{"one", "two"}, w.Header().Values("X-Multi"))
}

func TestBodyReceiver_Once(t *testing.T) {
	r := newBodyReceiver(strings.NewReader("abc"))

	msg, err := r.Receive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, protocol.RequestBody{Body: []byte("abc")}, msg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = r.Receive(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
