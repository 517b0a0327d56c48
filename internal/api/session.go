package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang-jwt/jwt/v5/request"

	"github.com/samandr77/microservices/vacations/internal/entity"
)

const SessionCookie = "session"

type sessionClaims struct {
	jwt.RegisteredClaims
	Role int64  `json:"role"`
	Name string `json:"name"`
}

// Sessions issues and verifies HS256 session tokens.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewSessions(secret string, ttl time.Duration, secure bool) *Sessions {
	return &Sessions{
		secret: []byte(secret),
		ttl:    ttl,
		secure: secure,
	}
}

func (s *Sessions) Issue(user entity.User, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(s.ttl)

	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Role: user.RoleID,
		Name: user.FirstName,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session: %w", err)
	}

	return token, expiresAt, nil
}

func (s *Sessions) Parse(token string) (entity.SessionUser, error) {
	var claims sessionClaims

	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return entity.SessionUser{}, fmt.Errorf("%w: %w", entity.ErrUnauthorized, err)
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return entity.SessionUser{}, fmt.Errorf("%w: bad subject", entity.ErrUnauthorized)
	}

	return entity.SessionUser{
		ID:        id,
		RoleID:    claims.Role,
		FirstName: claims.Name,
	}, nil
}

// FromRequest reads the session token from the cookie or a bearer header.
func (s *Sessions) FromRequest(r *http.Request) (entity.SessionUser, error) {
	token, err := request.MultiExtractor{
		cookieExtractor(SessionCookie),
		request.BearerExtractor{},
	}.ExtractToken(r)
	if err != nil {
		return entity.SessionUser{}, fmt.Errorf("%w: %w", entity.ErrUnauthorized, err)
	}

	return s.Parse(token)
}

func (s *Sessions) SetCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Sessions) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

type cookieExtractor string

func (c cookieExtractor) ExtractToken(r *http.Request) (string, error) {
	cookie, err := r.Cookie(string(c))
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", request.ErrNoTokenInRequest
		}

		return "", err
	}

	if cookie.Value == "" {
		return "", request.ErrNoTokenInRequest
	}

	return cookie.Value, nil
}
