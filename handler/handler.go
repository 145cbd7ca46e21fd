package handler

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lambda-feedback/replica/protocol"
)

// RequestIDHeader is the header an upstream proxy may use to propagate
// a request id. A new id is generated if it is missing.
const RequestIDHeader = "X-Request-Id"

// AppHandler serves a protocol.App over net/http.
type AppHandler struct {
	app protocol.App
	log *zap.Logger
}

var _ http.Handler = (*AppHandler)(nil)

// Adapt wraps app in a http.Handler.
func Adapt(app protocol.App, log *zap.Logger) *AppHandler {
	return &AppHandler{
		app: app,
		log: log,
	}
}

func (h *AppHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	scope := newScope(r)

	log := h.log.With(
		zap.String("request_id", scope.ID),
		zap.String("path", scope.Path),
		zap.String("method", scope.Method),
	)

	send := newResponseSender(w)
	receive := newBodyReceiver(r.Body)

	err := h.app(r.Context(), scope, receive, send)

	if err != nil && !send.complete() {
		log.Error("failed to send response", zap.Error(err))
		// abort the connection, so the client observes a truncated or
		// absent response instead of a well-formed empty one
		panic(http.ErrAbortHandler)
	}

	if err != nil {
		log.Warn("app failed after completing the response", zap.Error(err))
		return
	}

	if !send.complete() {
		log.Warn("app returned without completing the response")
	}
}

func newScope(r *http.Request) protocol.Scope {
	id := r.Header.Get(RequestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}

	return protocol.Scope{
		ID:         id,
		Method:     strings.ToUpper(r.Method),
		Path:       r.URL.Path,
		Query:      r.URL.RawQuery,
		Header:     r.Header,
		RemoteAddr: r.RemoteAddr,
		Protocol:   r.Proto,
	}
}
