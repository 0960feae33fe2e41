package users

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dropDatabas3/usergate/internal/observability/logger"
	"github.com/dropDatabas3/usergate/internal/upstream"
)

// reply es una respuesta programada del fake.
type reply struct {
	status    int
	body      string
	transport bool
}

// fakeUpstream responde en orden con las replies programadas y guarda cada
// request recibido.
type fakeUpstream struct {
	mu      sync.Mutex
	replies []reply
	calls   []upstream.Request
}

func newFake(replies ...reply) *fakeUpstream {
	return &fakeUpstream{replies: replies}
}

func (f *fakeUpstream) Do(_ context.Context, req upstream.Request) (*upstream.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	idx := len(f.calls)
	f.calls = append(f.calls, req)
	if idx >= len(f.replies) {
		return nil, fmt.Errorf("%w: unexpected call #%d", upstream.ErrTransport, idx+1)
	}

	r := f.replies[idx]
	if r.transport {
		return nil, fmt.Errorf("%w: dial tcp: connection refused", upstream.ErrTransport)
	}
	resp := &upstream.Response{Status: r.status, Body: []byte(r.body)}
	if !resp.OK() {
		return resp, &upstream.StatusError{
			Resource: req.Resource,
			Method:   req.Method,
			Status:   r.status,
			Body:     r.body,
		}
	}
	return resp, nil
}

func (f *fakeUpstream) Calls() []upstream.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]upstream.Request(nil), f.calls...)
}

// bodyJSON re-serializa el body de un request para comparar con JSONEq.
func bodyJSON(t *testing.T, req upstream.Request) string {
	t.Helper()
	b, err := json.Marshal(req.Body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return string(b)
}

func observedCtx() (context.Context, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logger.ToContext(context.Background(), zap.New(core)), logs
}

func okIdentity(id, token string) reply {
	return reply{
		status: http.StatusOK,
		body:   fmt.Sprintf(`{"access_token":%q,"token_type":"bearer","expires_in":3600,"refresh_token":"r1","user":{"id":%q,"email":"a@b.com","role":"authenticated"}}`, token, id),
	}
}
