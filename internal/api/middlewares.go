package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/vacations/internal/entity"
	"github.com/samandr77/microservices/vacations/pkg/logger"
)

type Middleware struct {
	sessions *Sessions
}

func NewMiddleware(sessions *Sessions) *Middleware {
	return &Middleware{
		sessions: sessions,
	}
}

func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Origin, Accept")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.SetRequestID(r.Context(), uuid.Must(uuid.NewV4()).String())
		ctx = logger.SetURL(ctx, r.URL.String())
		ctx = logger.SetMethod(ctx, r.Method)
		ctx = logger.SetIP(ctx, clientIP(r))

		slog.InfoContext(ctx, "incoming request")

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func(ctx context.Context) {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "panic", "error", err, "stack", string(debug.Stack()))
				w.WriteHeader(http.StatusInternalServerError)
			}
		}(r.Context())
		next.ServeHTTP(w, r)
	})
}

// Auth rejects requests without a valid session and stores the session
// user in the request context.
func (m *Middleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		user, err := m.sessions.FromRequest(r)
		if err != nil {
			SendErr(ctx, w, http.StatusUnauthorized, err, entity.ErrMsgUnauthorized)
			return
		}

		ctx = logger.SetUserID(ctx, strconv.FormatInt(user.ID, 10))
		ctx = entity.SetUserToContext(ctx, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Admin must run after Auth.
func (m *Middleware) Admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		user, err := entity.UserFromContext(ctx)
		if err != nil {
			SendErr(ctx, w, http.StatusUnauthorized, err, entity.ErrMsgUnauthorized)
			return
		}

		if !user.IsAdmin() {
			SendErr(ctx, w, http.StatusForbidden, entity.ErrForbidden, entity.ErrMsgForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		ips := strings.Split(forwarded, ",")
		if ip := strings.TrimSpace(ips[0]); ip != "" {
			return ip
		}
	}

	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}
