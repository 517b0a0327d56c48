package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/vacations/internal/api"
	"github.com/samandr77/microservices/vacations/internal/entity"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestMiddleware_Auth(t *testing.T) {
	t.Parallel()

	sessions := api.NewSessions(testSecret, time.Hour, false)
	mw := api.NewMiddleware(sessions)

	token, _, err := sessions.Issue(customer, time.Now())
	require.NoError(t, err)

	var got entity.SessionUser

	h := mw.Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, err = entity.UserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("no session", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/vacations", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var resp api.ResponseError
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Equal(t, entity.ErrMsgUnauthorized, resp.Message)
	})

	t.Run("bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/vacations", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NoError(t, err)
		require.Equal(t, customer.ID, got.ID)
	})

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/vacations", nil)
		req.AddCookie(&http.Cookie{Name: api.SessionCookie, Value: token})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, customer.ID, got.ID)
	})

	t.Run("foreign signature", func(t *testing.T) {
		other, _, err := api.NewSessions("other", time.Hour, false).Issue(customer, time.Now())
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/vacations", nil)
		req.Header.Set("Authorization", "Bearer "+other)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestMiddleware_Admin(t *testing.T) {
	t.Parallel()

	mw := api.NewMiddleware(api.NewSessions(testSecret, time.Hour, false))
	h := mw.Admin(http.HandlerFunc(okHandler))

	tests := []struct {
		name string
		user *entity.SessionUser
		code int
	}{
		{name: "no user", code: http.StatusUnauthorized},
		{name: "customer", user: &entity.SessionUser{ID: customer.ID, RoleID: entity.RoleIDCustomer}, code: http.StatusForbidden},
		{name: "admin", user: &entity.SessionUser{ID: admin.ID, RoleID: entity.RoleIDAdmin}, code: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/api/vacations/1", nil)
			if tt.user != nil {
				req = req.WithContext(entity.SetUserToContext(req.Context(), *tt.user))
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestMiddleware_Cors(t *testing.T) {
	t.Parallel()

	mw := api.NewMiddleware(api.NewSessions(testSecret, time.Hour, false))
	h := mw.Cors(http.HandlerFunc(okHandler))

	req := httptest.NewRequest(http.MethodOptions, "/api/login", nil)
	req.Header.Set("Origin", "http://localhost:3000")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestMiddleware_Recover(t *testing.T) {
	t.Parallel()

	mw := api.NewMiddleware(api.NewSessions(testSecret, time.Hour, false))
	h := mw.Recover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
