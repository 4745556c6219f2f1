package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pribylovaa/go-social-network/internal/service"
	"github.com/pribylovaa/go-social-network/internal/viewer"
	logctx "github.com/pribylovaa/go-social-network/pkg/log"
	"github.com/stretchr/testify/require"
)

// capHandler — тестовый slog.Handler:
//   - аккумулирует базовые attrs, приходящие через Logger.With(...);
//   - собирает attrs последней записи в map[string]any.
type capHandler struct {
	base      []slog.Attr
	lastMsg   string
	lastLevel slog.Level
	attrs     map[string]any
	count     int
}

func (h *capHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *capHandler) Handle(_ context.Context, r slog.Record) error {
	out := make(map[string]any, len(h.base)+8)

	for _, a := range h.base {
		out[a.Key] = a.Value.Any()
	}

	r.Attrs(func(a slog.Attr) bool {
		out[a.Key] = a.Value.Any()
		return true
	})

	h.count++
	h.lastMsg = r.Message
	h.lastLevel = r.Level
	h.attrs = out

	return nil
}

func (h *capHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) > 0 {
		h.base = append(h.base, attrs...)
	}

	return h
}

func (h *capHandler) WithGroup(string) slog.Handler { return h }

func makeReq(target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.RemoteAddr = (&net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 12345}).String()
	return req
}

type errEnvelope struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

// stubAuth — Authenticator с заранее заданным ответом; запоминает токен.
type stubAuth struct {
	v     viewer.Viewer
	err   error
	token string
}

func (a *stubAuth) Authenticate(_ context.Context, token string) (viewer.Viewer, error) {
	a.token = token
	return a.v, a.err
}

type observed struct {
	method, route string
	status        int
}

type stubObserver struct{ calls []observed }

func (o *stubObserver) ObserveHTTP(method, route string, status int, _ time.Duration) {
	o.calls = append(o.calls, observed{method: method, route: route, status: status})
}

func TestChain_Order(t *testing.T) {
	order := []string{}

	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name+"-begin")
				next.ServeHTTP(w, r)
				order = append(order, name+"-end")
			})
		}
	}

	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
		w.WriteHeader(http.StatusTeapot)
	})

	rr := httptest.NewRecorder()
	Chain(final, mw("m1"), mw("m2")).ServeHTTP(rr, makeReq("/chain"))

	require.Equal(t, []string{"m1-begin", "m2-begin", "handler", "m2-end", "m1-end"}, order)
	require.Equal(t, http.StatusTeapot, rr.Code)
}

func TestRequestID_GenerateAndPropagate(t *testing.T) {
	var seenHeader, seenCtx string

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenHeader = r.Header.Get("X-Request-Id")
		seenCtx = RequestIDFrom(r.Context())
	})

	rr := httptest.NewRecorder()
	Chain(h, RequestID()).ServeHTTP(rr, makeReq("/rid"))

	respID := rr.Header().Get("X-Request-Id")
	require.Len(t, respID, 32) // 16 байт → 32 hex-символа
	require.Equal(t, respID, seenHeader)
	require.Equal(t, respID, seenCtx)
}

func TestRequestID_UseExisting(t *testing.T) {
	const given = "abc123-existing-id"
	var seenCtx string

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenCtx = RequestIDFrom(r.Context())
	})

	rr := httptest.NewRecorder()
	req := makeReq("/rid2")
	req.Header.Set("X-Request-Id", given)
	Chain(h, RequestID()).ServeHTTP(rr, req)

	require.Equal(t, given, rr.Header().Get("X-Request-Id"))
	require.Equal(t, given, seenCtx)
}

func TestRequestID_ReplacesMalformed(t *testing.T) {
	tcs := []struct {
		name  string
		given string
	}{
		{"too_long", strings.Repeat("a", maxRequestIDLen+1)},
		{"space", "bad id"},
		{"markup", "<script>"},
		{"non_ascii", "запрос-1"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			var seenCtx string
			h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenCtx = RequestIDFrom(r.Context())
			})

			rr := httptest.NewRecorder()
			req := makeReq("/rid3")
			req.Header.Set("X-Request-Id", tc.given)
			Chain(h, RequestID()).ServeHTTP(rr, req)

			got := rr.Header().Get("X-Request-Id")
			require.NotEqual(t, tc.given, got)
			require.Len(t, got, 32)
			require.Equal(t, got, seenCtx)
			require.Equal(t, got, req.Header.Get("X-Request-Id"))
		})
	}
}

func TestAuth(t *testing.T) {
	uid := uuid.New()

	run := func(a *stubAuth, req *http.Request) (*httptest.ResponseRecorder, viewer.Viewer, bool) {
		var (
			got viewer.Viewer
			ok  bool
		)
		h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok = viewer.From(r.Context())
			w.WriteHeader(http.StatusNoContent)
		})

		rr := httptest.NewRecorder()
		Chain(h, Auth(a, "auth_session")).ServeHTTP(rr, req)
		return rr, got, ok
	}

	t.Run("cookie", func(t *testing.T) {
		a := &stubAuth{v: viewer.Viewer{ID: uid, SessionID: "s1"}}
		req := makeReq("/x")
		req.AddCookie(&http.Cookie{Name: "auth_session", Value: "cookie-token"})
		req.Header.Set("Authorization", "Bearer header-token")

		_, v, ok := run(a, req)
		require.True(t, ok)
		require.Equal(t, uid, v.ID)
		require.Equal(t, "cookie-token", a.token)
	})

	t.Run("bearer", func(t *testing.T) {
		a := &stubAuth{v: viewer.Viewer{ID: uid}}
		req := makeReq("/x")
		req.Header.Set("Authorization", "Bearer header-token")

		_, _, ok := run(a, req)
		require.True(t, ok)
		require.Equal(t, "header-token", a.token)
	})

	t.Run("no_token", func(t *testing.T) {
		a := &stubAuth{v: viewer.Viewer{ID: uid}}
		req := makeReq("/x")
		req.Header.Set("Authorization", "Basic aaa")

		rr, _, ok := run(a, req)
		require.False(t, ok)
		require.Empty(t, a.token)
		require.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("rejected_token_passes_without_viewer", func(t *testing.T) {
		a := &stubAuth{err: fmt.Errorf("op: %w", service.ErrUnauthorized)}
		req := makeReq("/x")
		req.Header.Set("Authorization", "Bearer bad")

		rr, _, ok := run(a, req)
		require.False(t, ok)
		require.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("cache_down", func(t *testing.T) {
		a := &stubAuth{err: fmt.Errorf("op: %w", service.ErrInternal)}
		req := makeReq("/x")
		req.Header.Set("Authorization", "Bearer tok")

		rr, _, ok := run(a, req)
		require.False(t, ok)
		require.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestAuth_EnrichesLogger(t *testing.T) {
	h := &capHandler{}
	uid := uuid.New()
	a := &stubAuth{v: viewer.Viewer{ID: uid}}

	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logctx.From(r.Context()).Info("inside")
	})

	req := makeReq("/x")
	req.Header.Set("Authorization", "Bearer tok")
	req = req.WithContext(logctx.Into(req.Context(), slog.New(h)))

	Chain(final, Auth(a, "")).ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, "inside", h.lastMsg)
	require.Equal(t, uid.String(), h.attrs["viewer_id"])
}

func TestTimeout_SetsDeadline_WhenAbsent(t *testing.T) {
	var hasDeadline bool

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
	})

	Chain(h, Timeout(50*time.Millisecond)).ServeHTTP(httptest.NewRecorder(), makeReq("/timeout"))

	require.True(t, hasDeadline)
}

func TestTimeout_DoesNotOverrideExistingDeadline(t *testing.T) {
	var childDL time.Time

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		childDL, _ = r.Context().Deadline()
	})

	parent, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	Chain(h, Timeout(time.Second)).ServeHTTP(httptest.NewRecorder(), makeReq("/timeout2").WithContext(parent))

	parentDL, _ := parent.Deadline()
	require.WithinDuration(t, parentDL, childDL, time.Millisecond)
}

// Хендлер, не уложившийся в deadline и ничего не записавший, даёт 504.
func TestTimeout_SilentHandler_Returns504(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	rr := httptest.NewRecorder()
	Chain(h, Timeout(10*time.Millisecond)).ServeHTTP(rr, makeReq("/slow"))

	require.Equal(t, http.StatusGatewayTimeout, rr.Code)

	var env errEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	require.Equal(t, "deadline_exceeded", env.Error.Code)
}

func TestTimeout_HandlerResponseKept(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	rr := httptest.NewRecorder()
	Chain(h, Timeout(10*time.Millisecond)).ServeHTTP(rr, makeReq("/slow2"))

	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	require.Empty(t, rr.Body.String())
}

func TestTimeout_Disabled_NoDeadline(t *testing.T) {
	var hasDeadline bool
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
	})

	rr := httptest.NewRecorder()
	Chain(h, Timeout(0)).ServeHTTP(rr, makeReq("/fast"))

	require.False(t, hasDeadline)
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestRecover_ConvertsPanicTo500(t *testing.T) {
	panicHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rr := httptest.NewRecorder()
	Chain(panicHandler, Recover()).ServeHTTP(rr, makeReq("/panic"))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var env errEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	require.Equal(t, "internal", env.Error.Code)
	require.NotContains(t, env.Error.Message, "boom")
}

func TestLogging_WritesRecord_WithStatusDurBytesAndRequestID(t *testing.T) {
	h := &capHandler{}

	const rid = "rid-456"
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("0123456789"))
	})

	rr := httptest.NewRecorder()
	req := makeReq("/log")
	req.Header.Set("X-Request-Id", rid)

	Chain(final, RequestID(), Logging(slog.New(h))).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, 1, h.count)
	require.Equal(t, "http", h.lastMsg)
	require.Equal(t, http.MethodGet, h.attrs["method"])
	require.Equal(t, "/log", h.attrs["path"])
	require.EqualValues(t, http.StatusOK, h.attrs["status"])
	require.EqualValues(t, 10, h.attrs["bytes"])
	require.Equal(t, rid, h.attrs["request_id"])

	_, hasDur := h.attrs["dur"]
	require.True(t, hasDur)
}

func TestRecover_ResponseStarted_KeepsStatus(t *testing.T) {
	h := &capHandler{}
	panicHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		panic("late boom")
	})

	rr := httptest.NewRecorder()
	req := makeReq("/panic2")
	req = req.WithContext(logctx.Into(req.Context(), slog.New(h)))
	Chain(panicHandler, Recover()).ServeHTTP(rr, req)

	require.Equal(t, http.StatusAccepted, rr.Code)
	require.Empty(t, rr.Body.String())
	require.Equal(t, "panic_recovered", h.lastMsg)
	require.Equal(t, true, h.attrs["response_started"])
	require.NotEmpty(t, h.attrs["stack"])
}

func TestLogging_LevelByStatus(t *testing.T) {
	tcs := []struct {
		status int
		want   slog.Level
	}{
		{http.StatusOK, slog.LevelInfo},
		{http.StatusNoContent, slog.LevelInfo},
		{http.StatusNotFound, slog.LevelWarn},
		{http.StatusGatewayTimeout, slog.LevelError},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprint(tc.status), func(t *testing.T) {
			h := &capHandler{}
			final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			})

			Chain(final, Logging(slog.New(h))).ServeHTTP(httptest.NewRecorder(), makeReq("/lvl"))

			require.Equal(t, tc.want, h.lastLevel)
			require.EqualValues(t, tc.status, h.attrs["status"])
		})
	}
}

func TestLogging_RecordsRoutePattern(t *testing.T) {
	h := &capHandler{}

	r := chi.NewRouter()
	r.Use(Logging(slog.New(h)))
	r.Get("/users/{id}", func(w http.ResponseWriter, r *http.Request) {})

	id := uuid.NewString()
	r.ServeHTTP(httptest.NewRecorder(), makeReq("/users/"+id))

	require.Equal(t, "/users/{id}", h.attrs["route"])
	require.Equal(t, "/users/"+id, h.attrs["path"])
}

func TestMetrics_UsesRoutePattern(t *testing.T) {
	o := &stubObserver{}

	r := chi.NewRouter()
	r.Use(Metrics(o))
	r.Get("/posts/{id}/likes", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) {})

	r.ServeHTTP(httptest.NewRecorder(), makeReq("/posts/"+uuid.NewString()+"/likes"))
	r.ServeHTTP(httptest.NewRecorder(), makeReq("/ok"))

	require.Equal(t, []observed{
		{method: http.MethodGet, route: "/posts/{id}/likes", status: http.StatusNotFound},
		{method: http.MethodGet, route: "/ok", status: http.StatusOK},
	}, o.calls)
}

func TestStatusWriter_CountsBytes_AndDefaultStatus200(t *testing.T) {
	sw := newStatusWriter(httptest.NewRecorder())

	_, _ = sw.Write([]byte("abcd"))

	require.Equal(t, http.StatusOK, sw.status)
	require.Equal(t, 4, sw.count)
}
